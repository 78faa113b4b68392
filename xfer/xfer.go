// Package xfer implements single-input single-output transfer functions
// as numerator and denominator polynomials over either timebase.
package xfer

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"ltikit/lti"
	"ltikit/matutil"
	"ltikit/timebase"
)

// TransferFunction represents the rational function
//
//	        Num[0] x^(m-1) + ... + Num[m-1]
//	H(x) = ---------------------------------
//	        Den[0] x^(n-1) + ... + Den[n-1]
//
// with coefficients in descending powers. The variable x is the Laplace
// variable s for a continuous timebase and the Z-transform variable z for
// a discrete one.
type TransferFunction struct {
	Num []float64
	Den []float64

	tb timebase.Timebase
}

// New creates a new transfer function from numerator and denominator
// coefficients in descending powers. Leading zero coefficients are
// trimmed. The denominator must not vanish identically.
func New(num, den []float64, tb timebase.Timebase) *TransferFunction {
	num = trimLeadingZeros(num)
	den = trimLeadingZeros(den)
	if len(den) == 0 {
		panic(errors.New("transfer function denominator is zero"))
	}
	if len(num) == 0 {
		num = []float64{0}
	}
	return &TransferFunction{Num: num, Den: den, tb: tb}
}

func trimLeadingZeros(coeffs []float64) []float64 {
	for len(coeffs) > 0 && coeffs[0] == 0 {
		coeffs = coeffs[1:]
	}
	return coeffs
}

// Timebase returns the sampling timebase of the transfer function.
func (tf *TransferFunction) Timebase() timebase.Timebase {
	return tf.tb
}

// Poles returns the roots of the denominator polynomial.
func (tf *TransferFunction) Poles() []complex128 {
	return roots(tf.Den)
}

// Zeros returns the roots of the numerator polynomial.
func (tf *TransferFunction) Zeros() []complex128 {
	return roots(tf.Num)
}

// Evaluate returns the transfer function value at a point of the complex
// plane.
func (tf *TransferFunction) Evaluate(x complex128) complex128 {
	return polyval(tf.Num, x) / polyval(tf.Den, x)
}

// DCGain returns the response of the transfer function to a constant
// input.
func (tf *TransferFunction) DCGain() complex128 {
	return lti.DCGain(tf)
}

// Damp returns the natural frequency, damping ratio and location of each
// pole.
func (tf *TransferFunction) Damp() (wn, zeta []float64, poles []complex128, err error) {
	return lti.Damp(tf)
}

// roots returns the zeros of the polynomial with the given descending
// coefficients, computed as the eigenvalues of its companion matrix.
func roots(coeffs []float64) []complex128 {
	coeffs = trimLeadingZeros(coeffs)
	if len(coeffs) < 2 {
		return nil
	}
	var eig mat.Eigen
	if ok := eig.Factorize(matutil.Companion(coeffs), mat.EigenNone); !ok {
		panic(errors.New("companion matrix eigendecomposition failed"))
	}
	return eig.Values(nil)
}

// polyval evaluates the polynomial with the given descending coefficients
// at a complex point using Horner's scheme.
func polyval(coeffs []float64, x complex128) complex128 {
	var y complex128
	for _, c := range coeffs {
		y = y*x + complex(c, 0)
	}
	return y
}
