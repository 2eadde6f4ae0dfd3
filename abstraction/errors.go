// SPDX-License-Identifier: MIT
// Package abstraction: sentinel error set.

package abstraction

import "errors"

// ErrDimensionMismatch flags constructor and operator arguments whose
// dimensions disagree with the underlying LSS.
var ErrDimensionMismatch = errors.New("abstraction: dimension mismatch")

// ErrValue flags a value-level bug: a partition that does not
// cover the state it was computed for, or a reference to a state label
// that no longer exists.
var ErrValue = errors.New("abstraction: value error")

// ErrInvariant flags an internal-invariant violation: a decided state
// reassigned to UNDECIDED, or a SATISFYING/NONSATISFYING state reassigned
// to the opposite class via UpdateKinds.
var ErrInvariant = errors.New("abstraction: invariant violation")
