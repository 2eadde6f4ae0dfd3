// SPDX-License-Identifier: MIT
// Package halfspace: sentinel error set.

package halfspace

import "errors"

var (
	// ErrDimensionMismatch indicates a translate/apply call received a
	// vector or matrix whose dimension disagrees with the halfspace's.
	ErrDimensionMismatch = errors.New("halfspace: dimension mismatch")
)
