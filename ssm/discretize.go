package ssm

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"ltikit/matutil"
	"ltikit/ode"
	"ltikit/timebase"
)

// discretizationSteps is the fixed Runge-Kutta step count used per
// sampling period when computing the matrix exponential.
const discretizationSteps = 128

// matrixSystem is the variational system X' = M X.
type matrixSystem struct {
	M mat.Matrix
}

func (s matrixSystem) Derivative(t float64, state mat.Vector) mat.Vector {
	var out mat.VecDense
	out.MulVec(s.M, state)
	return &out
}

// Discretize samples a continuous-time model with a zero-order hold at
// period Ts. The discrete dynamics are the matrix exponential of the
// augmented system
//
//	[ A B ]         [ Ad Bd ]
//	[ 0 0 ] * Ts -> [ 0  I  ]
//
// so that every continuous pole s is carried to exp(s*Ts).
func (sys *LinearStateSpaceModel) Discretize(Ts float64) (*LinearStateSpaceModel, error) {
	if Ts <= 0 {
		return nil, fmt.Errorf("sampling period must be positive, got %v", Ts)
	}
	if sys.tb.IsDiscrete(true) {
		return nil, errors.New("model is already discrete time")
	}

	n := sys.Order()
	_, m := sys.B.Dims()

	augmented := mat.NewDense(n+m, n+m, nil)
	augmented.Slice(0, n, 0, n).(*mat.Dense).Copy(sys.A)
	augmented.Slice(0, n, n, n+m).(*mat.Dense).Copy(sys.B)

	exponential := mat.NewDense(n+m, n+m, nil)
	exponential.Copy(matutil.Eye(n+m, n+m))
	err := ode.NewRK4().IntegrateMatrix(0, Ts, discretizationSteps, exponential, matrixSystem{augmented})
	if err != nil {
		return nil, err
	}
	if matutil.NaNOrInf(exponential) {
		return nil, errors.New("matrix exponential diverged")
	}

	Ad := exponential.Slice(0, n, 0, n)
	Bd := exponential.Slice(0, n, n, n+m)
	return NewLinearStateSpaceModel(Ad, Bd, sys.C, sys.D, timebase.Discrete(Ts)), nil
}
