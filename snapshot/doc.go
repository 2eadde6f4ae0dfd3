// SPDX-License-Identifier: MIT

// Package snapshot implements a JSON wire format for an AbstractedLSS:
// pure data-transform types mirroring its shape, plus
// FromAbstractedLSS/WithActions to produce a Document and
// ToPredicates/ToLSS to recover constructor arguments from one. Nothing
// here mutates an AbstractedLSS; persistence and file I/O are an external
// collaborator's job.
package snapshot
