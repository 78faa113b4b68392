package lti

import "ltikit/timebase"

// TimebaseEqual reports whether two models agree under the legacy
// timebase equality convention. It never fails; incompatible timebases
// simply compare unequal.
//
// Deprecated: use CommonTimebase.
func TimebaseEqual(a, b System) bool {
	return timebase.Equal(a.Timebase(), b.Timebase())
}
