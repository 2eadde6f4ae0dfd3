// SPDX-License-Identifier: MIT

// Package numeric provides the dense vector/matrix primitives and the
// single process-wide tolerance used by every comparison in lssforge.
//
// Everything above this package (halfspace, polytope, lss, abstraction,
// refinement) reads reals through Vector/Matrix and compares them through
// the Tolerance-aware helpers in this package; nothing above it is allowed
// to introduce its own epsilon.
package numeric
