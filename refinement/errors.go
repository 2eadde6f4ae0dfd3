// SPDX-License-Identifier: MIT
// Package refinement: sentinel error set.

package refinement

import "errors"

// ErrDimensionMismatch flags refinery arguments whose dimension disagrees
// with the state under refinement.
var ErrDimensionMismatch = errors.New("refinement: dimension mismatch")

// ErrValue flags a value-level bug: a referenced state label that no
// longer exists, a Refinery returning a nil Union, or a Layered refinery
// run without WithLayering. An unsupported layering generator name makes
// WithLayering panic instead.
var ErrValue = errors.New("refinement: value error")

// ErrPartitionNotCovering is raised by Run when the done/remainder pieces
// a refinery list produces for a state do not sum back (by volume) to the
// state's own region: a Refinery violated its done ⊎ rest' = rest
// contract.
var ErrPartitionNotCovering = errors.New("refinement: partition does not cover state")
