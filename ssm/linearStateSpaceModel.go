// Package ssm implements linear state space realizations
//
//	x'(t) = A x(t) + B u(t)        (continuous time)
//	x[k+1] = A x[k] + B u[k]       (discrete time)
//	y      = C x    + D u
//
// tagged with a sampling timebase.
package ssm

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"ltikit/matutil"
	"ltikit/timebase"
	"ltikit/xfer"
)

// LinearStateSpaceModel struct represents the system realization. The
// interpretation of A and B follows the model's timebase.
type LinearStateSpaceModel struct {
	// State dynamics
	A mat.Matrix
	// Input matrix
	B mat.Matrix
	// Observation matrix
	C mat.Matrix
	// Feedthrough matrix
	D mat.Matrix

	tb timebase.Timebase
}

// NewLinearStateSpaceModel creates a new linear state space model. A nil
// feedthrough matrix D is taken as zero.
func NewLinearStateSpaceModel(A, B, C, D mat.Matrix, tb timebase.Timebase) *LinearStateSpaceModel {
	// Check that system parameters match
	n, nA := A.Dims()
	nB, m := B.Dims()
	p, nC := C.Dims()
	if n != nA || nB != n || nC != n {
		panic(errors.New("system parameters don't match"))
	}
	if D == nil {
		D = mat.NewDense(p, m, nil)
	}
	pD, mD := D.Dims()
	if pD != p || mD != m {
		panic(errors.New("system parameters don't match"))
	}
	return &LinearStateSpaceModel{A, B, C, D, tb}
}

// Order returns the state space order.
func (sys *LinearStateSpaceModel) Order() int {
	n, _ := sys.A.Dims()
	return n
}

// Timebase returns the sampling timebase of the model.
func (sys *LinearStateSpaceModel) Timebase() timebase.Timebase {
	return sys.tb
}

// Poles returns the eigenvalues of the state dynamics matrix.
func (sys *LinearStateSpaceModel) Poles() []complex128 {
	var eig mat.Eigen
	if ok := eig.Factorize(sys.A, mat.EigenNone); !ok {
		panic(errors.New("eigendecomposition of the state dynamics failed"))
	}
	return eig.Values(nil)
}

// Zeros returns the transmission zeros of the model. The model must be
// single-input single-output.
func (sys *LinearStateSpaceModel) Zeros() []complex128 {
	tf, err := sys.TransferFunction()
	if err != nil {
		panic(err)
	}
	return tf.Zeros()
}

// Evaluate returns the transfer function value of a single-input
// single-output model at a point of the complex plane.
func (sys *LinearStateSpaceModel) Evaluate(x complex128) complex128 {
	tf, err := sys.TransferFunction()
	if err != nil {
		panic(err)
	}
	return tf.Evaluate(x)
}

// TransferFunction converts a single-input single-output realization into
// its transfer function
//
//	H(x) = C (xI - A)^-1 B + D
//
// using the Faddeev-LeVerrier expansion of the resolvent.
func (sys *LinearStateSpaceModel) TransferFunction() (*xfer.TransferFunction, error) {
	p, _ := sys.C.Dims()
	_, m := sys.B.Dims()
	if p != 1 || m != 1 {
		return nil, fmt.Errorf("transfer function conversion needs a SISO model, got %d outputs and %d inputs", p, m)
	}

	n := sys.Order()
	den := make([]float64, n+1)
	den[0] = 1
	adjugate := make([]float64, n)

	// M iterates over the resolvent expansion terms, starting from the
	// identity.
	var M mat.Matrix = matutil.Eye(n, n)
	for k := 1; k <= n; k++ {
		var cm, cmb mat.Dense
		cm.Mul(sys.C, M)
		cmb.Mul(&cm, sys.B)
		adjugate[k-1] = cmb.At(0, 0)

		var am mat.Dense
		am.Mul(sys.A, M)
		den[k] = -mat.Trace(&am) / float64(k)

		next := mat.NewDense(n, n, nil)
		next.Copy(&am)
		for i := 0; i < n; i++ {
			next.Set(i, i, next.At(i, i)+den[k])
		}
		M = next
	}

	num := make([]float64, n+1)
	d := sys.D.At(0, 0)
	for i := range den {
		num[i] = d * den[i]
	}
	for i, value := range adjugate {
		num[i+1] += value
	}
	return xfer.New(num, den, sys.tb), nil
}

// DCGainMatrix returns the steady state gain matrix of the model:
// D - C A^-1 B for a continuous timebase and D + C (I - A)^-1 B for a
// discrete one. An unspecified timebase is treated as continuous. The
// gain is undefined when the model has a pole at its DC point.
func (sys *LinearStateSpaceModel) DCGainMatrix() (mat.Matrix, error) {
	n := sys.Order()
	var x mat.Dense
	if sys.tb.IsDiscrete(true) {
		var ima mat.Dense
		ima.Sub(matutil.Eye(n, n), sys.A)
		if err := x.Solve(&ima, sys.B); err != nil {
			return nil, fmt.Errorf("dc gain is undefined: %w", err)
		}
		var cx, g mat.Dense
		cx.Mul(sys.C, &x)
		g.Add(sys.D, &cx)
		return &g, nil
	}
	if err := x.Solve(sys.A, sys.B); err != nil {
		return nil, fmt.Errorf("dc gain is undefined: %w", err)
	}
	var cx, g mat.Dense
	cx.Mul(sys.C, &x)
	g.Sub(sys.D, &cx)
	return &g, nil
}
