// SPDX-License-Identifier: MIT
// Package snapshot: sentinel error set.

package snapshot

import "errors"

// ErrValue flags a Document that cannot be used: a polytope record with
// neither vertices nor halfspaces passed to a To* reconstruction helper,
// or a state label that WithActions cannot find in the AbstractedLSS. An
// empty control-space piece list is accepted as an empty Union.
var ErrValue = errors.New("snapshot: value error")
