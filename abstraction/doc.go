// SPDX-License-Identifier: MIT

// Package abstraction builds and maintains the finite labeled-cell
// abstraction of an lss.LSS: initial decomposition by predicates, lazy
// per-state Action/ActionSupport construction via the precise-operator
// partition, and the refine/updateKinds mutators that keep the finite
// game consistent across many refinement passes.
//
// The AbstractedLSS owns every State; each State owns its Actions; each
// Action owns its ActionSupports. Action.targets are stored as state
// labels rather than pointers, so refinement's delete-and-replace cannot
// leave a dangling reference — a State's reachable-witness set is what
// the refiner consults to decide which cached Actions must be dropped.
package abstraction
