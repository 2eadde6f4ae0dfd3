// SPDX-License-Identifier: MIT

package polytope

import (
	"fmt"
	"math"

	"github.com/polyhedra/lssforge/halfspace"
	"github.com/polyhedra/lssforge/numeric"
)

// Interval is the 1D Polytope: the closed range [left, right].
type Interval struct {
	left, right float64
}

// NewInterval builds [left, right] directly, or Empty(1) if the range is
// degenerate (right-left below Epsilon).
func NewInterval(left, right float64) Polytope {
	if right-left < numeric.Epsilon {
		return Empty(1)
	}
	return Interval{left: left, right: right}
}

func hull1D(points []numeric.Vector) Polytope {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		v := p.At(0)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return NewInterval(lo, hi)
}

// noRedund1D reduces a 1D halfspace list: pick the tightest
// right-facing (smallest offset) and tightest left-facing (largest -offset)
// halfspace; empty if they don't overlap by more than Epsilon.
func noRedund1D(hs []halfspace.Halfspace) Polytope {
	upper := math.Inf(1)
	lower := math.Inf(-1)
	for _, h := range hs {
		if h.IsTrivial() {
			continue
		}
		if h.IsInfeasible() {
			return Empty(1)
		}
		n := h.Normal().At(0)
		if n > 0 { // right-facing: x <= o/n
			bound := h.Offset() / n
			if bound < upper {
				upper = bound
			}
		} else { // left-facing: x >= o/n
			bound := h.Offset() / n
			if bound > lower {
				lower = bound
			}
		}
	}
	if math.IsInf(upper, 1) || math.IsInf(lower, -1) {
		return Empty(1) // unbounded on at least one side: not representable (non-goal)
	}
	if lower > upper+numeric.Epsilon {
		return Empty(1)
	}
	return NewInterval(lower, upper)
}

func (iv Interval) Dim() int { return 1 }

func (iv Interval) IsEmpty() bool {
	return iv.right-iv.left < numeric.Epsilon
}

func (iv Interval) Vertices() ([]numeric.Vector, error) {
	return []numeric.Vector{numeric.NewVector(iv.left), numeric.NewVector(iv.right)}, nil
}

func (iv Interval) Halfspaces() ([]halfspace.Halfspace, error) {
	left := halfspace.Normalize(numeric.NewVector(-1), -iv.left)
	right := halfspace.Normalize(numeric.NewVector(1), iv.right)
	return []halfspace.Halfspace{left, right}, nil
}

func (iv Interval) Contains(p numeric.Vector) bool {
	if p.Dim() != 1 {
		return false
	}
	x := p.At(0)
	return x-iv.left > -numeric.Epsilon && x-iv.right < numeric.Epsilon
}

func (iv Interval) Volume() float64 { return iv.right - iv.left }

func (iv Interval) Centroid() numeric.Vector {
	return numeric.NewVector(numeric.MidPoint(iv.left, iv.right))
}

func (iv Interval) Extent() [][2]float64 {
	return [][2]float64{{iv.left, iv.right}}
}

func (iv Interval) BoundingBox() Polytope { return iv }

func (iv Interval) Translate(v numeric.Vector) (Polytope, error) {
	if v.Dim() != 1 {
		return nil, fmt.Errorf("Interval.Translate: %w", ErrDimensionMismatch)
	}
	d := v.At(0)
	return NewInterval(iv.left+d, iv.right+d), nil
}

func (iv Interval) Invert() Polytope {
	return NewInterval(-iv.right, -iv.left)
}

func (iv Interval) Apply(m numeric.Matrix) (Polytope, error) {
	if m.Cols() != 1 {
		return nil, fmt.Errorf("Interval.Apply: cols=%d: %w", m.Cols(), ErrDimensionMismatch)
	}
	verts, _ := iv.Vertices()
	out := make([]numeric.Vector, len(verts))
	for i, v := range verts {
		mv, err := m.MulVec(v)
		if err != nil {
			return nil, err
		}
		out[i] = mv
	}
	return Hull(out)
}

func (iv Interval) ApplyRight(m numeric.Matrix) (Polytope, error) {
	hs, _ := iv.Halfspaces()
	out := make([]halfspace.Halfspace, len(hs))
	for i, h := range hs {
		nh, err := h.ApplyRight(m)
		if err != nil {
			return nil, err
		}
		out[i] = nh
	}
	return Intersection(out)
}

func (iv Interval) Minkowski(q Polytope) (Polytope, error) {
	if q.Dim() != 1 {
		return nil, fmt.Errorf("Interval.Minkowski: %w", ErrDimensionMismatch)
	}
	if q.IsEmpty() || iv.IsEmpty() {
		return Empty(1), nil
	}
	qv, _ := q.Vertices()
	var pts []numeric.Vector
	selfV, _ := iv.Vertices()
	for _, a := range selfV {
		for _, b := range qv {
			sum, _ := a.Add(b)
			pts = append(pts, sum)
		}
	}
	return Hull(pts)
}

func (iv Interval) Pontryagin(q Polytope) (Polytope, error) {
	if q.Dim() != 1 {
		return nil, fmt.Errorf("Interval.Pontryagin: %w", ErrDimensionMismatch)
	}
	if q.IsEmpty() {
		return iv, nil
	}
	qv, _ := q.Vertices()
	// P ⊖ Q = {x : x+Q ⊆ P}; in 1D with Q=[ql,qr], result is
	// [left-ql, right-qr] (shrink by Q's extent on both sides).
	ql := qv[0].At(0)
	qr := qv[len(qv)-1].At(0)
	return NewInterval(iv.left-ql, iv.right-qr), nil
}

func (iv Interval) Intersect(others ...Polytope) (Polytope, error) {
	hs, _ := iv.Halfspaces()
	all := append([]halfspace.Halfspace(nil), hs...)
	for _, o := range others {
		if o.IsEmpty() {
			return Empty(1), nil
		}
		if o.Dim() != 1 {
			return nil, fmt.Errorf("Interval.Intersect: %w", ErrDimensionMismatch)
		}
		ohs, err := o.Halfspaces()
		if err != nil {
			return nil, err
		}
		all = append(all, ohs...)
	}
	return Intersection(all)
}

func (iv Interval) Split(hs []halfspace.Halfspace) ([]Polytope, error) {
	return genericSplit(iv, hs)
}

func (iv Interval) Remove(others []Polytope) ([]Polytope, error) {
	return genericRemove(iv, others)
}

func (iv Interval) IsSameAs(q Polytope) bool {
	if q.IsEmpty() != iv.IsEmpty() {
		return false
	}
	if iv.IsEmpty() {
		return true
	}
	if q.Dim() != 1 {
		return false
	}
	qv, err := q.Vertices()
	if err != nil || len(qv) != 2 {
		return false
	}
	return numeric.Equal(qv[0].At(0), iv.left) && numeric.Equal(qv[1].At(0), iv.right)
}
