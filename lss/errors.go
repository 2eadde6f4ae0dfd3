// SPDX-License-Identifier: MIT
// Package lss: sentinel error set.

package lss

import "errors"

var (
	// ErrDimensionMismatch indicates A, B, X, W, or U were constructed
	// with incompatible shapes or dimensions: A must be d×d, B must be
	// d×m, X.Dim()=W.Dim()=d, and U.Dim()=m.
	ErrDimensionMismatch = errors.New("lss: dimension mismatch")
)
