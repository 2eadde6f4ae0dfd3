// SPDX-License-Identifier: MIT
//
// Union represents a finite, possibly non-convex region as a list of
// convex Polytope pieces. It intentionally does not
// implement the Polytope interface itself — a union is not convex in
// general, so Apply, Invert and the rest of the single-convex-region
// contract do not apply to it uniformly; only the set-level operators
// below are provided.

package polytope

import (
	"fmt"
	"math"
	"sort"

	"github.com/polyhedra/lssforge/numeric"
)

// Union is a finite set of convex pieces of the same dimension, made
// pairwise-disjoint at construction (disjunctify).
type Union struct {
	dim    int
	pieces []Polytope
}

// NewUnion builds a Union from arbitrary (possibly overlapping, possibly
// empty, possibly nil) pieces, disjunctifying them.
func NewUnion(dim int, pieces ...Polytope) (*Union, error) {
	for _, p := range pieces {
		if p != nil && p.Dim() != dim {
			return nil, fmt.Errorf("polytope.NewUnion: %w", ErrDimensionMismatch)
		}
	}
	disjoint, err := disjunctify(pieces)
	if err != nil {
		return nil, err
	}
	return &Union{dim: dim, pieces: disjoint}, nil
}

// disjunctify sorts members by descending volume (small-first removal
// would amplify numerical noise by subtracting large regions from tiny
// remainders) then successively subtracts previously accepted members,
// dropping empties.
func disjunctify(pieces []Polytope) ([]Polytope, error) {
	filtered := make([]Polytope, 0, len(pieces))
	for _, p := range pieces {
		if p != nil && !p.IsEmpty() {
			filtered = append(filtered, p)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Volume() > filtered[j].Volume() })

	var accepted []Polytope
	for _, p := range filtered {
		frags, err := p.Remove(accepted)
		if err != nil {
			return nil, err
		}
		for _, f := range frags {
			if !f.IsEmpty() {
				accepted = append(accepted, f)
			}
		}
	}
	return accepted, nil
}

func (u *Union) Dim() int { return u.dim }

func (u *Union) IsEmpty() bool { return len(u.pieces) == 0 }

// Pieces returns the disjoint convex pieces (copy of the slice header; the
// Polytope values themselves are immutable).
func (u *Union) Pieces() []Polytope {
	out := make([]Polytope, len(u.pieces))
	copy(out, u.pieces)
	return out
}

// Contains reports whether any piece contains p.
func (u *Union) Contains(p numeric.Vector) bool {
	for _, piece := range u.pieces {
		if piece.Contains(p) {
			return true
		}
	}
	return false
}

// Volume sums the pieces' volumes — valid because they are pairwise
// disjoint by construction.
func (u *Union) Volume() float64 {
	var total float64
	for _, p := range u.pieces {
		total += p.Volume()
	}
	return total
}

// Extent returns the per-axis [min,max] bound across every piece.
func (u *Union) Extent() [][2]float64 {
	if u.IsEmpty() {
		return nil
	}
	ext := append([][2]float64(nil), u.pieces[0].Extent()...)
	for _, p := range u.pieces[1:] {
		e := p.Extent()
		for i := range ext {
			ext[i][0] = math.Min(ext[i][0], e[i][0])
			ext[i][1] = math.Max(ext[i][1], e[i][1])
		}
	}
	return ext
}

// BoundingBox returns the axis-aligned box enclosing every piece.
func (u *Union) BoundingBox() (Polytope, error) {
	ext := u.Extent()
	if ext == nil {
		return Empty(u.dim), nil
	}
	switch u.dim {
	case 1:
		return NewInterval(ext[0][0], ext[0][1]), nil
	case 2:
		verts := []numeric.Vector{
			numeric.NewVector(ext[0][0], ext[1][0]),
			numeric.NewVector(ext[0][1], ext[1][0]),
			numeric.NewVector(ext[0][1], ext[1][1]),
			numeric.NewVector(ext[0][0], ext[1][1]),
		}
		return NewPolygonFromVertices(verts), nil
	default:
		return nil, fmt.Errorf("polytope.Union.BoundingBox: dim=%d: %w", u.dim, ErrUnsupportedDimension)
	}
}

// Hull returns the convex hull of every vertex across every piece.
func (u *Union) Hull() (Polytope, error) {
	if u.IsEmpty() {
		return Empty(u.dim), nil
	}
	var allVerts []numeric.Vector
	for _, p := range u.pieces {
		v, err := p.Vertices()
		if err != nil {
			return nil, err
		}
		allVerts = append(allVerts, v...)
	}
	return Hull(allVerts)
}

// Covers reports whether self covers other: removing self from other
// leaves nothing.
func (u *Union) Covers(other *Union) bool {
	diff, err := other.RemoveUnion(u)
	if err != nil {
		return false
	}
	return diff.IsEmpty()
}

// IsSameAs reports whether u and v describe the same region, via mutual
// covering.
func (u *Union) IsSameAs(v *Union) bool {
	if u.dim != v.dim {
		return false
	}
	return u.Covers(v) && v.Covers(u)
}

// Simplify returns [hull(self)] if self already covers its own convex
// hull (i.e. self is itself convex), otherwise a disjunctified copy of
// self.
func (u *Union) Simplify() (*Union, error) {
	if u.IsEmpty() {
		return u, nil
	}
	hull, err := u.Hull()
	if err != nil {
		return nil, err
	}
	hullUnion, err := NewUnion(u.dim, hull)
	if err != nil {
		return nil, err
	}
	if u.Covers(hullUnion) {
		return hullUnion, nil
	}
	return NewUnion(u.dim, u.pieces...)
}

// Intersect returns self ∩ other. Each piece stays convex and disjoint
// after intersecting with a single convex other, so the result needs no
// further disjunctify pass, but NewUnion is used uniformly for safety.
func (u *Union) Intersect(other Polytope) (*Union, error) {
	if other.Dim() != u.dim {
		return nil, fmt.Errorf("polytope.Union.Intersect: %w", ErrDimensionMismatch)
	}
	var out []Polytope
	for _, p := range u.pieces {
		r, err := p.Intersect(other)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return NewUnion(u.dim, out...)
}

// Remove returns self \ other, flattening x.Remove(other) over each piece
// x of self.
func (u *Union) Remove(other Polytope) (*Union, error) {
	if other.Dim() != u.dim {
		return nil, fmt.Errorf("polytope.Union.Remove: %w", ErrDimensionMismatch)
	}
	var out []Polytope
	for _, p := range u.pieces {
		frags, err := p.Remove([]Polytope{other})
		if err != nil {
			return nil, err
		}
		out = append(out, frags...)
	}
	return NewUnion(u.dim, out...)
}

// RemoveUnion returns self \ other, by subtracting other's pieces one at a
// time.
func (u *Union) RemoveUnion(other *Union) (*Union, error) {
	if other.dim != u.dim {
		return nil, fmt.Errorf("polytope.Union.RemoveUnion: %w", ErrDimensionMismatch)
	}
	cur := u
	for _, p := range other.pieces {
		next, err := cur.Remove(p)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// Minkowski returns self ⊕ q: disjunctify([x.minkowski(q) for x in self]).
func (u *Union) Minkowski(q Polytope) (*Union, error) {
	if q.Dim() != u.dim {
		return nil, fmt.Errorf("polytope.Union.Minkowski: %w", ErrDimensionMismatch)
	}
	var out []Polytope
	for _, p := range u.pieces {
		s, err := p.Minkowski(q)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return NewUnion(u.dim, out...)
}

// Pontryagin returns self ⊖ q for a (possibly non-convex) union.
//
// Erosion does not distribute over union the way it distributes over
// intersection, because of shared edges between pieces: a point x can
// satisfy x+Q ⊆ (A∪B) without x+Q being a subset of either A or B
// individually, near the seam. The exact answer is computed via
// self's own bounding box B:
//
//	self ⊖ q = B.pontryagin(q) \ ( (B \ self) ⊕ invert(q) )
//
// i.e. erode the bounding box directly, then remove whatever the dilated
// complement of self (inside B) would have reclaimed.
func (u *Union) Pontryagin(q Polytope) (*Union, error) {
	if q.Dim() != u.dim {
		return nil, fmt.Errorf("polytope.Union.Pontryagin: %w", ErrDimensionMismatch)
	}
	if u.IsEmpty() {
		return u, nil
	}
	box, err := u.BoundingBox()
	if err != nil {
		return nil, err
	}

	compFrags, err := box.Remove(u.pieces)
	if err != nil {
		return nil, err
	}
	complement, err := NewUnion(u.dim, compFrags...)
	if err != nil {
		return nil, err
	}

	dilatedComplement, err := complement.Minkowski(q.Invert())
	if err != nil {
		return nil, err
	}

	boxErosion, err := box.Pontryagin(q)
	if err != nil {
		return nil, err
	}
	boxErosionUnion, err := NewUnion(u.dim, boxErosion)
	if err != nil {
		return nil, err
	}

	return boxErosionUnion.RemoveUnion(dilatedComplement)
}
