package lti_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"ltikit/lti"
	"ltikit/ssm"
	"ltikit/timebase"
	"ltikit/xfer"
)

func TestDampContinuousFirstOrder(t *testing.T) {
	// Pole at s = -3: critically damped by convention.
	sys := xfer.New([]float64{1}, []float64{1, 3}, timebase.Continuous())

	wn, zeta, poles, err := lti.Damp(sys)
	require.NoError(t, err)
	require.Len(t, poles, 1)
	assert.InDelta(t, 3, wn[0], 1e-12)
	assert.InDelta(t, 1, zeta[0], 1e-12)
}

func TestDampPoleAtOrigin(t *testing.T) {
	// An integrator has wn = 0 and damping ratio 1 by definition.
	sys := xfer.New([]float64{1}, []float64{1, 0}, timebase.Continuous())

	wn, zeta, _, err := lti.Damp(sys)
	require.NoError(t, err)
	assert.Equal(t, 0., wn[0])
	assert.Equal(t, 1., zeta[0])
}

func TestDampUnspecifiedTreatedAsContinuous(t *testing.T) {
	sys := xfer.New([]float64{1}, []float64{1, 3}, timebase.Unspecified())

	wn, zeta, _, err := lti.Damp(sys)
	require.NoError(t, err)
	assert.InDelta(t, 3, wn[0], 1e-12)
	assert.InDelta(t, 1, zeta[0], 1e-12)
}

func TestDampDiscreteMapsThroughLog(t *testing.T) {
	Ts := 0.5
	// Pole at z = exp(-2 Ts) images back to s = -2.
	sys := xfer.New([]float64{1}, []float64{1, -math.Exp(-2 * Ts)}, timebase.Discrete(Ts))

	wn, zeta, poles, err := lti.Damp(sys)
	require.NoError(t, err)
	require.Len(t, poles, 1)
	assert.InDelta(t, math.Exp(-2*Ts), real(poles[0]), 1e-12)
	assert.InDelta(t, 2, wn[0], 1e-9)
	assert.InDelta(t, 1, zeta[0], 1e-9)
}

func TestDampDiscreteWildcardUsesUnitPeriod(t *testing.T) {
	sys := xfer.New([]float64{1}, []float64{1, -math.Exp(-1)}, timebase.DiscreteUnspecified())

	wn, zeta, _, err := lti.Damp(sys)
	require.NoError(t, err)
	assert.InDelta(t, 1, wn[0], 1e-9)
	assert.InDelta(t, 1, zeta[0], 1e-9)
}

func TestDampZeroDiscretePole(t *testing.T) {
	// H(z) = 1/z has its pole at the origin; log(0) is undefined.
	sys := xfer.New([]float64{1}, []float64{1, 0}, timebase.Discrete(0.1))

	_, _, _, err := lti.Damp(sys)
	assert.ErrorIs(t, err, lti.ErrZeroPole)
}

func TestDampPreservesPoleOrderAndMultiplicity(t *testing.T) {
	// (s+1)^2 (s+2): a repeated pole stays repeated.
	sys := xfer.New([]float64{1}, []float64{1, 4, 5, 2}, timebase.Continuous())

	wn, zeta, poles, err := lti.Damp(sys)
	require.NoError(t, err)
	require.Len(t, poles, 3)
	require.Len(t, wn, 3)
	require.Len(t, zeta, 3)
	for i, p := range poles {
		assert.InDelta(t, math.Hypot(real(p), imag(p)), wn[i], 1e-9)
	}
}

func TestDCGainDiscreteEvaluatesAtUnity(t *testing.T) {
	// H(z) = 1 / (z - 0.5) has DC gain 2.
	sys := xfer.New([]float64{1}, []float64{1, -0.5}, timebase.Discrete(0.1))
	assert.InDelta(t, 2, real(lti.DCGain(sys)), 1e-12)
}

func TestCommonTimebaseAcrossModelKinds(t *testing.T) {
	tf := xfer.New([]float64{1}, []float64{1, 1}, timebase.Unspecified())
	A := mat.NewDense(1, 1, []float64{-1})
	B := mat.NewDense(1, 1, []float64{1})
	C := mat.NewDense(1, 1, []float64{1})
	ss := ssm.NewLinearStateSpaceModel(A, B, C, nil, timebase.Discrete(0.1))

	tb, err := lti.CommonTimebase(tf, ss)
	require.NoError(t, err)
	period, ok := tb.Period()
	require.True(t, ok)
	assert.Equal(t, 0.1, period)

	tb, err = lti.CommonTimebase(ss, tf)
	require.NoError(t, err)
	assert.True(t, tb.Identical(timebase.Discrete(0.1)))
}

func TestCommonTimebaseIncompatibleModels(t *testing.T) {
	ct := xfer.New([]float64{1}, []float64{1, 1}, timebase.Continuous())
	dt := xfer.New([]float64{1}, []float64{1, 0.5}, timebase.Discrete(1))

	_, err := lti.CommonTimebase(ct, dt)
	assert.ErrorIs(t, err, timebase.ErrIncompatible)
}

func TestTimebaseEqualLegacy(t *testing.T) {
	unspec := xfer.New([]float64{1}, []float64{1, 2, 3}, timebase.Unspecified())
	wildcard := xfer.New([]float64{1}, []float64{1, 4, 5}, timebase.DiscreteUnspecified())
	fixed := xfer.New([]float64{1}, []float64{1, 4, 5}, timebase.Discrete(1))

	assert.True(t, lti.TimebaseEqual(unspec, fixed))
	assert.False(t, lti.TimebaseEqual(unspec, wildcard))
	assert.False(t, lti.TimebaseEqual(fixed, wildcard))
	assert.True(t, lti.TimebaseEqual(wildcard, wildcard))
}
