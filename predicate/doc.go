// SPDX-License-Identifier: MIT

// Package predicate parses textual linear inequations such as
// "x + 2*y < 3" over a fixed two-variable alphabet {x, y} (or the
// single-variable alphabet {x} in 1D) into a halfspace.Halfspace.
//
// This is an input-surface concern, not a hot path: a regex-tokenized
// stream feeds a precedence-climbing recursive-descent parser.
package predicate
