package xfer

import (
	"errors"
	"fmt"
	"math/cmplx"

	"ltikit/timebase"
)

// Discretize samples a continuous-time transfer function at period Ts
// using matched pole-zero mapping: every pole and zero s is carried to
// exp(s*Ts) and the gain is chosen so that the DC gain is preserved.
func (tf *TransferFunction) Discretize(Ts float64) (*TransferFunction, error) {
	if Ts <= 0 {
		return nil, fmt.Errorf("sampling period must be positive, got %v", Ts)
	}
	if tf.tb.IsDiscrete(true) {
		return nil, errors.New("model is already discrete time")
	}

	zpoles := mapRoots(tf.Poles(), Ts)
	zzeros := mapRoots(tf.Zeros(), Ts)

	num := polyFromRoots(zzeros)
	den := polyFromRoots(zpoles)

	// Match the discrete gain at z = 1 to the continuous gain at s = 0.
	sgain := tf.Evaluate(0)
	zgain := polyval(num, 1) / polyval(den, 1)
	k := real(sgain / zgain)
	for i := range num {
		num[i] *= k
	}

	return New(num, den, timebase.Discrete(Ts)), nil
}

func mapRoots(srcRoots []complex128, Ts float64) []complex128 {
	mapped := make([]complex128, len(srcRoots))
	for i, r := range srcRoots {
		mapped[i] = cmplx.Exp(r * complex(Ts, 0))
	}
	return mapped
}

// polyFromRoots expands a monic polynomial from its roots. Conjugate
// pairs cancel in the imaginary parts, so only the real parts are kept.
func polyFromRoots(zs []complex128) []float64 {
	coeffs := []complex128{1}
	for _, z := range zs {
		next := make([]complex128, len(coeffs)+1)
		for i, c := range coeffs {
			next[i] += c
			next[i+1] -= c * z
		}
		coeffs = next
	}
	out := make([]float64, len(coeffs))
	for i, c := range coeffs {
		out[i] = real(c)
	}
	return out
}
