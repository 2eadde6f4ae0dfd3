// SPDX-License-Identifier: MIT

package numeric

import "math"

// Epsilon is the single process-wide floating-point tolerance τ used by
// every near-zero and near-equality comparison in lssforge. It is fixed at
// construction time for this package and is intentionally NOT configurable
// per call site: the geometry and dynamics operators are tuned for
// τ ≈ 1e-8, and scale-independence would require auditing every comparison
// site, which this repo does not attempt.
const Epsilon = 1e-8

// Zero reports whether v is within Epsilon of zero.
func Zero(v float64) bool {
	return math.Abs(v) < Epsilon
}

// Equal reports whether a and b are within Epsilon of each other.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// AngleLTE reports whether angle a (radians) is within Epsilon of being at
// most b, accounting for the usual floating error in atan2-derived angles.
// Used by mergeByAngle to keep the 2D canonical halfspace ordering stable
// when two edges' angles differ only by rounding noise.
func AngleLTE(a, b float64) bool {
	return a < b+Epsilon
}
