// SPDX-License-Identifier: MIT

// Package refinement implements the pluggable partition policies that
// drive AbstractedLSS.Refine: a Refinery carves a "done" subregion out of
// a maybe-cell's unallocated remainder, based on operator regions and the
// external solver's per-automaton-state analysis. Running a list of
// Refineries over every relevant automaton state and composing their
// outputs produces the per-state partition map fed to
// abstraction.AbstractedLSS.Refine.
package refinement
