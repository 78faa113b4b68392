// Package timebase classifies and reconciles the sampling timebase of
// linear time-invariant models. A timebase is one of four things: no
// commitment at all, explicitly continuous time, discrete time with the
// sampling period still open, or discrete time with a fixed period.
//
// The conventions follow the usual block-diagram rules: an unspecified
// timebase is compatible with anything, a discrete timebase with an open
// period absorbs any specific period, and everything else must match
// exactly.
package timebase

import (
	"errors"
	"fmt"
)

// ErrIncompatible is returned by Common when two timebases name different
// sampling domains or different fixed periods.
var ErrIncompatible = errors.New("incompatible timebases")

type kind uint8

const (
	unspecified kind = iota
	continuous
	discreteWildcard
	discretePeriod
)

// Timebase is the sampling-domain tag of a model. The zero value is the
// unspecified timebase.
type Timebase struct {
	kind   kind
	period float64
}

// Unspecified returns the timebase of a model that has made no
// sampling-domain commitment.
func Unspecified() Timebase {
	return Timebase{}
}

// Continuous returns the explicitly continuous timebase.
func Continuous() Timebase {
	return Timebase{kind: continuous}
}

// DiscreteUnspecified returns a discrete timebase whose sampling period has
// not been fixed yet.
func DiscreteUnspecified() Timebase {
	return Timebase{kind: discreteWildcard}
}

// Discrete returns a discrete timebase with sampling period Ts.
// The period must be strictly positive.
func Discrete(Ts float64) Timebase {
	if Ts <= 0 {
		panic(errors.New("sampling period must be positive"))
	}
	return Timebase{kind: discretePeriod, period: Ts}
}

// IsDiscrete reports whether the timebase denotes discrete time. In the
// permissive interpretation (strict false) an unspecified timebase counts
// as discrete, since it has made no claim either way. Under strict it
// does not.
func (tb Timebase) IsDiscrete(strict bool) bool {
	switch tb.kind {
	case unspecified:
		return !strict
	case continuous:
		return false
	default:
		return true
	}
}

// IsContinuous reports whether the timebase denotes continuous time.
// For a committed timebase this is the negation of IsDiscrete. For an
// unspecified timebase it mirrors IsDiscrete instead: permissively an
// uncommitted model looks continuous as well as discrete, strictly it is
// neither. This asymmetry is deliberate.
func (tb Timebase) IsContinuous(strict bool) bool {
	if tb.kind == unspecified {
		return !strict
	}
	return !tb.IsDiscrete(strict)
}

// Period returns the sampling period and true when the timebase is
// discrete with a fixed period, 0 and false otherwise.
func (tb Timebase) Period() (float64, bool) {
	if tb.kind != discretePeriod {
		return 0, false
	}
	return tb.period, true
}

// Identical reports whether two timebases are the same variant with the
// same period. Unlike Common it performs no reconciliation.
func (tb Timebase) Identical(other Timebase) bool {
	if tb.kind != other.kind {
		return false
	}
	if tb.kind == discretePeriod {
		return tb.period == other.period
	}
	return true
}

func (tb Timebase) String() string {
	switch tb.kind {
	case continuous:
		return "continuous"
	case discreteWildcard:
		return "discrete, unspecified period"
	case discretePeriod:
		return fmt.Sprintf("discrete, Ts = %v", tb.period)
	default:
		return "unspecified"
	}
}

// Common returns the reconciled timebase of two models being combined.
// An unspecified timebase yields the other operand, an open discrete
// period is absorbed by a fixed one, and identical timebases yield
// themselves. Every other pairing fails with ErrIncompatible. Common is
// commutative.
func Common(a, b Timebase) (Timebase, error) {
	if a.Identical(b) {
		return a, nil
	}
	if a.kind == unspecified {
		return b, nil
	}
	if b.kind == unspecified {
		return a, nil
	}
	if a.kind == discreteWildcard && b.kind == discretePeriod {
		return b, nil
	}
	if b.kind == discreteWildcard && a.kind == discretePeriod {
		return a, nil
	}
	return Timebase{}, fmt.Errorf("%w: %v and %v", ErrIncompatible, a, b)
}
