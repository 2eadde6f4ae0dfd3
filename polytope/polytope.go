// SPDX-License-Identifier: MIT

package polytope

import (
	"fmt"
	"sort"

	"github.com/polyhedra/lssforge/halfspace"
	"github.com/polyhedra/lssforge/numeric"
)

// Polytope is a bounded, full-dimensional convex set in 1 or 2 dimensions,
// available in either or both of the dual V-form (vertex list) / H-form
// (halfspace list) canonical representations.
type Polytope interface {
	// Dim reports the ambient dimension (1 or 2).
	Dim() int
	// IsEmpty reports whether this polytope is the degenerate empty set:
	// either representation has fewer than Dim()+1 members, or the
	// computed volume is below numeric.Epsilon.
	IsEmpty() bool
	// Vertices returns the canonical V-form, computing and memoizing it
	// from the H-form if necessary. ErrNoRepresentation indicates a
	// construction bug (neither form available).
	Vertices() ([]numeric.Vector, error)
	// Halfspaces returns the canonical H-form, computing and memoizing it
	// from the V-form if necessary.
	Halfspaces() ([]halfspace.Halfspace, error)
	// Contains reports whether every halfspace of this polytope contains p.
	Contains(p numeric.Vector) bool
	// Volume returns the (1D: length, 2D: shoelace) volume.
	Volume() float64
	// Centroid returns the (1D: midpoint, 2D: Green's-formula) centroid.
	Centroid() numeric.Vector
	// Extent returns the per-axis [min,max] bounding interval.
	Extent() [][2]float64
	// BoundingBox returns the axis-aligned bounding box as a Polytope of
	// the same dimension.
	BoundingBox() Polytope
	// Translate shifts every vertex by v.
	Translate(v numeric.Vector) (Polytope, error)
	// Invert point-reflects through the origin.
	Invert() Polytope
	// Apply left-multiplies every vertex by m; may change dimension.
	Apply(m numeric.Matrix) (Polytope, error)
	// ApplyRight right-multiplies every normal by m; may change dimension.
	// For invertible m this equals Apply(m^-1).
	ApplyRight(m numeric.Matrix) (Polytope, error)
	// Minkowski returns the Minkowski sum self ⊕ q as the hull of pairwise
	// vertex sums.
	Minkowski(q Polytope) (Polytope, error)
	// Pontryagin returns the Minkowski difference self ⊖ q.
	Pontryagin(q Polytope) (Polytope, error)
	// Intersect returns self ∩ (∩ others).
	Intersect(others ...Polytope) (Polytope, error)
	// Split recursively partitions self by each halfspace in hs and its
	// flip, returning the union of resulting (possibly empty) pieces.
	Split(hs []halfspace.Halfspace) ([]Polytope, error)
	// Remove returns disjoint pieces whose union is self \ (∪ others)
	// (regiondiff).
	Remove(others []Polytope) ([]Polytope, error)
	// IsSameAs reports whether q describes the same set up to canonical
	// rotation of the vertex list.
	IsSameAs(q Polytope) bool
}

// dualForm pairs the two representations of one polytope. Interval and
// Polygon do not use it: Polygon memoizes its H-form in its own hsCache
// field, and Interval derives both forms directly from its endpoints.
type dualForm struct {
	vertices   []numeric.Vector
	halfspaces []halfspace.Halfspace
}

// Hull builds the convex hull of points, dispatching on their (shared)
// dimension: leftmost/rightmost in 1D, Andrew's monotone chain in 2D.
// Returns Empty(dim) if points is empty or degenerate.
func Hull(points []numeric.Vector) (Polytope, error) {
	if len(points) == 0 {
		return Empty(0), nil
	}
	dim := points[0].Dim()
	for _, p := range points {
		if p.Dim() != dim {
			return nil, fmt.Errorf("polytope.Hull: mixed dimensions: %w", ErrDimensionMismatch)
		}
	}
	switch dim {
	case 1:
		return hull1D(points), nil
	case 2:
		return hull2D(points), nil
	default:
		return nil, fmt.Errorf("polytope.Hull: dim=%d: %w", dim, ErrUnsupportedDimension)
	}
}

// Intersection builds the (possibly empty) polytope described by the
// conjunction of hs, sorting 2D halfspaces into canonical angle order
// before delegating to NoRedund.
func Intersection(hs []halfspace.Halfspace) (Polytope, error) {
	if len(hs) == 0 {
		return Empty(0), nil
	}
	dim := hs[0].Dim()
	for _, h := range hs {
		if h.Dim() != dim {
			return nil, fmt.Errorf("polytope.Intersection: mixed dimensions: %w", ErrDimensionMismatch)
		}
	}
	switch dim {
	case 1:
		return noRedund1D(hs), nil
	case 2:
		sorted := append([]halfspace.Halfspace(nil), hs...)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Angle() < sorted[j].Angle() })
		return noRedund2D(sorted), nil
	default:
		return nil, fmt.Errorf("polytope.Intersection: dim=%d: %w", dim, ErrUnsupportedDimension)
	}
}

// DoIntersect reports whether a and b overlap, without the caller having to
// build and discard the intersection polytope itself.
func DoIntersect(a, b Polytope) (bool, error) {
	r, err := a.Intersect(b)
	if err != nil {
		return false, err
	}
	return !r.IsEmpty(), nil
}

// NoRedund expects hs already in canonical angle order (2D) and reduces it
// to a non-redundant halfspace list, or empty if infeasible/unbounded.
func NoRedund(hs []halfspace.Halfspace) (Polytope, error) {
	if len(hs) == 0 {
		return Empty(0), nil
	}
	dim := hs[0].Dim()
	switch dim {
	case 1:
		return noRedund1D(hs), nil
	case 2:
		return noRedund2D(hs), nil
	default:
		return nil, fmt.Errorf("polytope.NoRedund: dim=%d: %w", dim, ErrUnsupportedDimension)
	}
}

// emptyPolytope is the shared canonical empty instance for a given
// dimension: both lists empty, avoiding repeated allocation.
type emptyPolytope struct{ dim int }

func (e emptyPolytope) Dim() int      { return e.dim }
func (e emptyPolytope) IsEmpty() bool { return true }
func (e emptyPolytope) Vertices() ([]numeric.Vector, error) {
	return nil, nil
}
func (e emptyPolytope) Halfspaces() ([]halfspace.Halfspace, error) {
	return nil, nil
}
func (e emptyPolytope) Contains(numeric.Vector) bool   { return false }
func (e emptyPolytope) Volume() float64                { return 0 }
func (e emptyPolytope) Centroid() numeric.Vector       { return numeric.Zeros(e.dim) }
func (e emptyPolytope) Extent() [][2]float64           { return nil }
func (e emptyPolytope) BoundingBox() Polytope          { return e }
func (e emptyPolytope) Invert() Polytope               { return e }
func (e emptyPolytope) IsSameAs(q Polytope) bool        { return q.IsEmpty() }
func (e emptyPolytope) Translate(numeric.Vector) (Polytope, error) {
	return e, nil
}
func (e emptyPolytope) Apply(m numeric.Matrix) (Polytope, error) {
	return emptyPolytope{dim: m.Rows()}, nil
}
func (e emptyPolytope) ApplyRight(m numeric.Matrix) (Polytope, error) {
	return emptyPolytope{dim: m.Cols()}, nil
}
func (e emptyPolytope) Minkowski(Polytope) (Polytope, error)  { return e, nil }
func (e emptyPolytope) Pontryagin(Polytope) (Polytope, error) { return e, nil }
func (e emptyPolytope) Intersect(...Polytope) (Polytope, error) {
	return e, nil
}
func (e emptyPolytope) Split([]halfspace.Halfspace) ([]Polytope, error) {
	return nil, nil
}
func (e emptyPolytope) Remove([]Polytope) ([]Polytope, error) {
	return nil, nil
}

// Empty returns the canonical empty polytope of the given dimension.
func Empty(dim int) Polytope {
	return emptyPolytope{dim: dim}
}
