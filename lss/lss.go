// SPDX-License-Identifier: MIT

package lss

import (
	"fmt"

	"github.com/polyhedra/lssforge/numeric"
	"github.com/polyhedra/lssforge/polytope"
)

// LSS is the immutable tuple (A, B, X, W, U): a discrete-time linear
// stochastic system xₜ₊₁ = A·xₜ + B·uₜ + wₜ together with its state space
// X, disturbance space W (both dimension d = A.Rows()), and control space
// U (dimension m = B.Cols()), a polytope union.
type LSS struct {
	A, B numeric.Matrix
	X, W polytope.Polytope
	U    *polytope.Union

	extendedX *polytope.Union // lazy, memoized; see ExtendedX
}

// New validates shapes and builds an LSS. A must be square
// (d×d); B must have d rows; X and W must both be dimension d; U must be
// dimension m = B.Cols().
func New(a, b numeric.Matrix, x, w polytope.Polytope, u *polytope.Union) (*LSS, error) {
	d := a.Rows()
	if a.Cols() != d {
		return nil, fmt.Errorf("lss.New: A is %dx%d, not square: %w", a.Rows(), a.Cols(), ErrDimensionMismatch)
	}
	if b.Rows() != d {
		return nil, fmt.Errorf("lss.New: B has %d rows, want %d: %w", b.Rows(), d, ErrDimensionMismatch)
	}
	if x.Dim() != d {
		return nil, fmt.Errorf("lss.New: X.Dim()=%d, want %d: %w", x.Dim(), d, ErrDimensionMismatch)
	}
	if w.Dim() != d {
		return nil, fmt.Errorf("lss.New: W.Dim()=%d, want %d: %w", w.Dim(), d, ErrDimensionMismatch)
	}
	if u.Dim() != b.Cols() {
		return nil, fmt.Errorf("lss.New: U.Dim()=%d, want %d: %w", u.Dim(), b.Cols(), ErrDimensionMismatch)
	}
	return &LSS{A: a, B: b, X: x, W: w, U: u}, nil
}

// ExtendedX returns disjunctify({X} ∪ Post(X,U)), the system's extended
// state space used as the "universe" Attr/AttrR subtract their target's
// complement from. Computed once and memoized — the LSS is immutable after
// construction, so this can never go stale.
func (l *LSS) ExtendedX() (*polytope.Union, error) {
	if l.extendedX != nil {
		return l.extendedX, nil
	}
	post, err := Post(l, l.X, l.U)
	if err != nil {
		return nil, err
	}
	pieces := append([]polytope.Polytope{l.X}, post.Pieces()...)
	ext, err := polytope.NewUnion(l.X.Dim(), pieces...)
	if err != nil {
		return nil, err
	}
	l.extendedX = ext
	return ext, nil
}
