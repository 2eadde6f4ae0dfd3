// SPDX-License-Identifier: MIT
// Package polytope: sentinel error set.

package polytope

import "errors"

var (
	// ErrDimensionMismatch indicates an operation mixed polytopes/vectors
	// of incompatible dimension (e.g. intersecting a 1D interval with a 2D
	// polygon).
	ErrDimensionMismatch = errors.New("polytope: dimension mismatch")

	// ErrNoRepresentation indicates a conversion was requested (Vertices
	// or Halfspaces) on a polytope value that carries neither form — a
	// construction bug, never produced by this package's own
	// constructors.
	ErrNoRepresentation = errors.New("polytope: neither V-form nor H-form available")

	// ErrUnsupportedDimension indicates a dimension outside {1, 2}; higher
	// dimensions are out of scope for this package.
	ErrUnsupportedDimension = errors.New("polytope: only dimensions 1 and 2 are supported")
)
