// SPDX-License-Identifier: MIT

// Package polytope implements bounded, full-dimensional convex polytopes in
// one and two dimensions, in dual vertex/halfspace representation, plus the
// Union type (a finite list of convex polytopes) and the set-theoretic and
// Minkowski-style operators the LSS dynamics layer composes.
//
// Dimension is handled as a sum type: Interval (1D) and Polygon (2D) both
// implement Polytope, rather than a single generic struct switching on a
// dimension field, trading a little duplication for dispatch that the
// compiler checks. Operations that can change the ambient dimension (Apply,
// ApplyRight) branch on the *resulting* dimension to decide which concrete
// type to build.
//
// Both representations are canonical: vertices are ordered counterclockwise
// (2D) or [left,right] (1D); halfspaces are ordered by counterclockwise
// angle from (-1,0) (2D) or [left-facing,right-facing] (1D). A Polygon
// derives its H-form lazily and memoizes it (see hsCache in polygon.go);
// an Interval derives both forms directly from its endpoints.
package polytope
