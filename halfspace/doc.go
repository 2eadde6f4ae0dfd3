// SPDX-License-Identifier: MIT

// Package halfspace implements the oriented halfspace `n·x ≤ o` that
// underlies every polytope representation in lssforge: a normal vector n of
// unit L2 norm and an offset o ∈ ℝ ∪ {+∞, -∞}.
//
// The ±∞ offsets are not edge-case noise: they are how a rank-reducing
// linear map (e.g. projecting 2D onto 1D) is encoded without losing whether
// the collapsed halfspace meant "everything" or "nothing". See Normalize.
package halfspace
