package timebase

import "log/slog"

// Equal reports whether two timebases are considered equal under the
// legacy equality convention: an open discrete period equals only another
// open discrete period, an unspecified timebase equals anything that is
// not an open discrete period, and fixed periods compare exactly.
//
// Note that Equal(Unspecified(), DiscreteUnspecified()) is false even
// though Common reconciles the pair; that divergence is frozen here for
// backward compatibility.
//
// Deprecated: use Common, which also reports the reconciled timebase.
func Equal(a, b Timebase) bool {
	slog.Warn("timebase.Equal is deprecated, use timebase.Common instead")
	if a.kind == discreteWildcard || b.kind == discreteWildcard {
		return a.kind == b.kind
	}
	if a.kind == unspecified || b.kind == unspecified {
		return true
	}
	return a.Identical(b)
}
