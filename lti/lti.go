// Package lti defines the common surface of linear time-invariant models
// and the spectral characterizations derived from it: pole and zero
// locations, natural frequency, damping ratio and DC gain.
//
// The package works on any model through the System interface; the model
// packages (xfer, ssm) provide the realizations.
package lti

import (
	"errors"
	"fmt"
	"math/cmplx"

	"ltikit/timebase"
)

// ErrZeroPole is returned by Damp for a discrete-time model with a pole at
// the origin, whose continuous-time image log(0)/Ts is undefined.
var ErrZeroPole = errors.New("discrete pole at origin has no continuous-time image")

// System is a linear time-invariant model. Pole and zero sequences are
// reported in the model's own domain (Laplace plane for continuous time,
// Z plane for discrete time) and are owned by the model; callers must not
// mutate them.
type System interface {
	// Timebase returns the model's sampling timebase.
	Timebase() timebase.Timebase
	// Poles returns the poles of the model.
	Poles() []complex128
	// Zeros returns the zeros of the model.
	Zeros() []complex128
	// Evaluate returns the value of the model's transfer function at a
	// point of the complex plane.
	Evaluate(x complex128) complex128
}

// Poles returns the poles of sys.
func Poles(sys System) []complex128 {
	return sys.Poles()
}

// Zeros returns the zeros of sys.
func Zeros(sys System) []complex128 {
	return sys.Zeros()
}

// DCGain returns the gain of sys for a constant input: the transfer
// function evaluated at s = 0 for a continuous-time model and at z = 1
// for a discrete-time one. An unspecified timebase is treated as
// continuous.
func DCGain(sys System) complex128 {
	if sys.Timebase().IsDiscrete(true) {
		return sys.Evaluate(1)
	}
	return sys.Evaluate(0)
}

// Damp returns the natural frequency, damping ratio and location of every
// pole of sys, in the order the model reports its poles. Conjugate pairs
// are reported individually.
//
// For a discrete-time model with period Ts each pole p is first mapped to
// its continuous-time image log(p)/Ts before the second-order formulas
// apply; a discrete timebase without a fixed period uses Ts = 1. An
// unspecified timebase is treated as continuous.
func Damp(sys System) (wn, zeta []float64, poles []complex128, err error) {
	poles = sys.Poles()
	splane := poles

	tb := sys.Timebase()
	if tb.IsDiscrete(true) {
		Ts := 1.
		if period, ok := tb.Period(); ok {
			Ts = period
		}
		splane = make([]complex128, len(poles))
		for i, p := range poles {
			if p == 0 {
				return nil, nil, nil, fmt.Errorf("%w: pole %d", ErrZeroPole, i)
			}
			splane[i] = cmplx.Log(p) / complex(Ts, 0)
		}
	}

	wn = make([]float64, len(splane))
	zeta = make([]float64, len(splane))
	for i, p := range splane {
		wn[i] = cmplx.Abs(p)
		if wn[i] == 0 {
			zeta[i] = 1
			continue
		}
		zeta[i] = -real(p) / wn[i]
	}
	return wn, zeta, poles, nil
}

// CommonTimebase returns the reconciled timebase of two models being
// combined, or an error matching timebase.ErrIncompatible when the models
// may not be combined.
func CommonTimebase(a, b System) (timebase.Timebase, error) {
	return timebase.Common(a.Timebase(), b.Timebase())
}
