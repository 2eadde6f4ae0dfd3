// SPDX-License-Identifier: MIT

package lss

import (
	"github.com/polyhedra/lssforge/numeric"
	"github.com/polyhedra/lssforge/polytope"
)

// hullUnionPieces re-hulls each piece of u independently, collapsing any
// non-canonical vertex ordering a prior Minkowski/Pontryagin step may have
// left behind. Used where an operator's definition explicitly wraps an
// intermediate set in hull(...).
func hullUnionPieces(u *polytope.Union) (*polytope.Union, error) {
	var pieces []polytope.Polytope
	for _, p := range u.Pieces() {
		verts, err := p.Vertices()
		if err != nil {
			return nil, err
		}
		hulled, err := polytope.Hull(verts)
		if err != nil {
			return nil, err
		}
		if !hulled.IsEmpty() {
			pieces = append(pieces, hulled)
		}
	}
	return polytope.NewUnion(u.Dim(), pieces...)
}

// unionApplyRight applies ApplyRight piecewise; the resulting dimension is
// m.Cols() regardless of u's own dimension (ApplyRight may change it, e.g.
// pulling a state-space set back into control space via B).
func unionApplyRight(u *polytope.Union, m numeric.Matrix) (*polytope.Union, error) {
	var pieces []polytope.Polytope
	for _, p := range u.Pieces() {
		np, err := p.ApplyRight(m)
		if err != nil {
			return nil, err
		}
		if !np.IsEmpty() {
			pieces = append(pieces, np)
		}
	}
	return polytope.NewUnion(m.Cols(), pieces...)
}

// Post computes the one-step reachable set from X under any control in U:
// disjunctify({ hull(A·X ⊕ B·u ⊕ W) : u ∈ U }).
//
// Blueprint:
//
//	Stage 1 (Prepare): lift X through A once; it is shared across every
//	  piece of U.
//	Stage 2 (Per-control sweep): for each piece u of U, sum A·X, B·u and W
//	  via Minkowski, then re-hull the result into canonical form.
//	Stage 3 (Finalize): disjunctify the per-piece results into a Union.
func Post(l *LSS, x polytope.Polytope, u *polytope.Union) (*polytope.Union, error) {
	ax, err := x.Apply(l.A)
	if err != nil {
		return nil, err
	}
	var pieces []polytope.Polytope
	for _, up := range u.Pieces() {
		bu, err := up.Apply(l.B)
		if err != nil {
			return nil, err
		}
		sum, err := ax.Minkowski(bu)
		if err != nil {
			return nil, err
		}
		sum, err = sum.Minkowski(l.W)
		if err != nil {
			return nil, err
		}
		verts, err := sum.Vertices()
		if err != nil {
			return nil, err
		}
		hulled, err := polytope.Hull(verts)
		if err != nil {
			return nil, err
		}
		if !hulled.IsEmpty() {
			pieces = append(pieces, hulled)
		}
	}
	return polytope.NewUnion(x.Dim(), pieces...)
}

// Pre computes the set of points from which some control in U drives
// possibly into Y: union over (u∈U, y∈Y) of
// X ∩ applyRight(A, hull(y ⊖ (B·u ⊕ W))), disjunctified.
func Pre(l *LSS, x polytope.Polytope, u, y *polytope.Union) (*polytope.Union, error) {
	var pieces []polytope.Polytope
	for _, up := range u.Pieces() {
		bu, err := up.Apply(l.B)
		if err != nil {
			return nil, err
		}
		buW, err := bu.Minkowski(l.W)
		if err != nil {
			return nil, err
		}
		for _, yp := range y.Pieces() {
			diff, err := yp.Pontryagin(buW)
			if err != nil {
				return nil, err
			}
			if diff.IsEmpty() {
				continue
			}
			verts, err := diff.Vertices()
			if err != nil {
				return nil, err
			}
			hulled, err := polytope.Hull(verts)
			if err != nil {
				return nil, err
			}
			if hulled.IsEmpty() {
				continue
			}
			back, err := hulled.ApplyRight(l.A)
			if err != nil {
				return nil, err
			}
			piece, err := x.Intersect(back)
			if err != nil {
				return nil, err
			}
			if !piece.IsEmpty() {
				pieces = append(pieces, piece)
			}
		}
	}
	return polytope.NewUnion(x.Dim(), pieces...)
}

// PreR computes the robust variant of Pre using the Pontryagin difference:
// precompute pontry = pontryagin(Y, W); if empty, the result is empty;
// otherwise union over u∈U of X ∩ applyRight(A, hull(pontry ⊖ B·u)).
func PreR(l *LSS, x polytope.Polytope, u, y *polytope.Union) (*polytope.Union, error) {
	pontry, err := y.Pontryagin(l.W)
	if err != nil {
		return nil, err
	}
	if pontry.IsEmpty() {
		return polytope.NewUnion(x.Dim())
	}
	var pieces []polytope.Polytope
	for _, up := range u.Pieces() {
		bu, err := up.Apply(l.B)
		if err != nil {
			return nil, err
		}
		diff, err := pontry.Pontryagin(bu)
		if err != nil {
			return nil, err
		}
		if diff.IsEmpty() {
			continue
		}
		hulled, err := hullUnionPieces(diff)
		if err != nil {
			return nil, err
		}
		back, err := unionApplyRight(hulled, l.A)
		if err != nil {
			return nil, err
		}
		for _, bp := range back.Pieces() {
			piece, err := x.Intersect(bp)
			if err != nil {
				return nil, err
			}
			if !piece.IsEmpty() {
				pieces = append(pieces, piece)
			}
		}
	}
	return polytope.NewUnion(x.Dim(), pieces...)
}

// Attr computes the points of X that cannot escape Y's complement
// (relative to the system's extended state space) robustly: X \ PreR(X, U,
// extendedX \ Y).
func Attr(l *LSS, x polytope.Polytope, u, y *polytope.Union) (*polytope.Union, error) {
	ext, err := l.ExtendedX()
	if err != nil {
		return nil, err
	}
	outside, err := ext.RemoveUnion(y)
	if err != nil {
		return nil, err
	}
	preR, err := PreR(l, x, u, outside)
	if err != nil {
		return nil, err
	}
	remainder, err := x.Remove(preR.Pieces())
	if err != nil {
		return nil, err
	}
	return polytope.NewUnion(x.Dim(), remainder...)
}

// AttrR computes the points of X that cannot escape Y's complement even
// under an adversarial disturbance: X \ Pre(X, U, extendedX \ Y).
func AttrR(l *LSS, x polytope.Polytope, u, y *polytope.Union) (*polytope.Union, error) {
	ext, err := l.ExtendedX()
	if err != nil {
		return nil, err
	}
	outside, err := ext.RemoveUnion(y)
	if err != nil {
		return nil, err
	}
	pre, err := Pre(l, x, u, outside)
	if err != nil {
		return nil, err
	}
	remainder, err := x.Remove(pre.Pieces())
	if err != nil {
		return nil, err
	}
	return polytope.NewUnion(x.Dim(), remainder...)
}

// ActionPolytope returns the set of controls in U such that applying any
// of them at some point of x could lead into y:
// intersect(applyRight(B, hull(y ⊖ (A·x ⊕ W))), U).
func ActionPolytope(l *LSS, x, y polytope.Polytope) (*polytope.Union, error) {
	ax, err := x.Apply(l.A)
	if err != nil {
		return nil, err
	}
	axW, err := ax.Minkowski(l.W)
	if err != nil {
		return nil, err
	}
	diff, err := y.Pontryagin(axW)
	if err != nil {
		return nil, err
	}
	if diff.IsEmpty() {
		return polytope.NewUnion(l.U.Dim())
	}
	verts, err := diff.Vertices()
	if err != nil {
		return nil, err
	}
	hulled, err := polytope.Hull(verts)
	if err != nil {
		return nil, err
	}
	if hulled.IsEmpty() {
		return polytope.NewUnion(l.U.Dim())
	}
	back, err := hulled.ApplyRight(l.B)
	if err != nil {
		return nil, err
	}
	var pieces []polytope.Polytope
	for _, up := range l.U.Pieces() {
		inter, err := back.Intersect(up)
		if err != nil {
			return nil, err
		}
		if !inter.IsEmpty() {
			pieces = append(pieces, inter)
		}
	}
	return polytope.NewUnion(l.U.Dim(), pieces...)
}
