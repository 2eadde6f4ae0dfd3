// Package lssforge synthesizes controllers for discrete-time linear
// stochastic systems via polytopic abstraction.
//
// A system xₜ₊₁ = A·xₜ + B·uₜ + wₜ is abstracted into a finite set of
// labeled convex regions ("states") of its state space, connected by
// "actions" whose reachable targets are computed directly from the
// system's geometry rather than sampled. Abstractions are refined
// incrementally — splitting one state's region into finer pieces without
// rebuilding the rest of the graph — and the result can be handed to a
// game-graph solver or serialized for external consumption.
//
// Packages:
//
//	numeric/     — vectors, matrices; the one shared tolerance epsilon
//	halfspace/   — {x : n·x ≤ c} halfspaces and predicate labels
//	predicate/   — parser for halfspace predicate expressions
//	polytope/    — convex polytopes (interval/polygon) and polytope unions
//	lss/         — the LSS tuple and its Post/Pre/PreR/Attr/AttrR operators
//	abstraction/ — AbstractedLSS, State, Action, refine, GameGraph adapter
//	refinement/  — Refinery families and the Run composer
//	snapshot/    — JSON wire format for an abstraction and its geometry
package lssforge
