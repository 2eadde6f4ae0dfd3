// SPDX-License-Identifier: MIT
// Package predicate: sentinel error set.

package predicate

import "errors"

// ErrParse is the sentinel wrapped by every parse failure. Use errors.Is to
// detect a parse failure and the returned error's message (which embeds the
// offending text) for diagnostics; there is no position tracking, only a
// descriptive string naming what went wrong.
var ErrParse = errors.New("predicate: parse error")

// ErrUnknownVariable is wrapped by ErrParse when an identifier outside the
// configured variable alphabet is used.
var ErrUnknownVariable = errors.New("predicate: unknown variable")
