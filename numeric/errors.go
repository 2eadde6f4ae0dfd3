// SPDX-License-Identifier: MIT
// Package numeric: sentinel error set.
//
// All algorithms in this package MUST return these sentinels (wrapped with
// %w for context where useful) and tests MUST check them via errors.Is.
// Panics are reserved for programmer errors (nil receivers, impossible
// static dimensions known at construction time), never for caller data.

package numeric

import "errors"

var (
	// ErrDimensionMismatch indicates incompatible vector/matrix shapes
	// (e.g. adding two vectors of different length, or A.Cols() != x.Len()).
	ErrDimensionMismatch = errors.New("numeric: dimension mismatch")

	// ErrSingular indicates a matrix inversion or solve was attempted on a
	// matrix whose pivot is within tolerance of zero.
	ErrSingular = errors.New("numeric: matrix is singular")

	// ErrBadShape indicates a requested shape is invalid (e.g. rows<=0).
	ErrBadShape = errors.New("numeric: invalid shape")
)
