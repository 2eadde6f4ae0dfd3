// SPDX-License-Identifier: MIT

// Package lss implements the discrete-time linear stochastic system
// xₜ₊₁ = A·xₜ + B·uₜ + wₜ and the dynamics operators (Post, Pre, PreR,
// Attr, AttrR, ActionPolytope) that map sets of points in state or control
// space through those equations. Every operator is expressed purely in
// terms of the polytope package's Apply/ApplyRight/Minkowski/Pontryagin/
// Intersect/Remove primitives — this package owns no geometry of its own,
// only the wiring between them that each operator's definition specifies.
package lss
