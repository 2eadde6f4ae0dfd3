// SPDX-License-Identifier: MIT
//
// Shared, dimension-agnostic implementations of Split and Remove (regiondiff),
// expressed purely in terms of the Polytope interface so Interval and
// Polygon need not each re-derive the recursion.

package polytope

import "github.com/polyhedra/lssforge/halfspace"

// intersectHalfspace returns poly ∩ {x : h}, by appending h to poly's own
// (already bounded) H-form and re-reducing. A single halfspace is
// unbounded on its own in both 1D and 2D, so it cannot be represented as a
// free-standing Polytope and intersected the ordinary way — cutting poly's
// existing boundary with h directly is what keeps every intermediate
// result bounded.
func intersectHalfspace(poly Polytope, h halfspace.Halfspace) (Polytope, error) {
	hs, err := poly.Halfspaces()
	if err != nil {
		return nil, err
	}
	combined := append(append([]halfspace.Halfspace(nil), hs...), h)
	return Intersection(combined)
}

// IntersectHalfspace returns poly ∩ {x : h}. Exported for callers (e.g. the
// abstraction package's predicate-driven decomposition) that need to cut a
// region by a single predicate halfspace without building a free-standing,
// necessarily-unbounded Polytope for it first.
func IntersectHalfspace(poly Polytope, h halfspace.Halfspace) (Polytope, error) {
	return intersectHalfspace(poly, h)
}

// genericSplit recursively partitions poly by each halfspace in hs and its
// flip: cut poly by the first halfspace and its flip, recurse on the rest,
// and return the union of the (possibly empty) pieces.
func genericSplit(poly Polytope, hs []halfspace.Halfspace) ([]Polytope, error) {
	if poly.IsEmpty() {
		return nil, nil
	}
	if len(hs) == 0 {
		return []Polytope{poly}, nil
	}
	h := hs[0]
	rest := hs[1:]

	withH, err := intersectHalfspace(poly, h)
	if err != nil {
		return nil, err
	}
	a, err := withH.Split(rest)
	if err != nil {
		return nil, err
	}

	withFlip, err := intersectHalfspace(poly, h.Flip())
	if err != nil {
		return nil, err
	}
	b, err := withFlip.Split(rest)
	if err != nil {
		return nil, err
	}

	return append(a, b...), nil
}

// genericRemove implements regiondiff: self \ (∪ others), returning a list
// of disjoint, possibly-empty-filtered pieces.
//
// Blueprint:
//
//	Stage 1: find the first `other` that actually intersects the current
//	  working polytope; if none, nothing needs removing.
//	Stage 2: for each halfspace h of that other, the candidate piece
//	  `poly ∩ flip(h)` lies entirely outside `other` along h — recurse
//	  subtracting the remaining others from it — then narrow poly to
//	  `poly ∩ h` before moving to the next halfspace of `other`, so later
//	  candidates don't re-cover already-emitted regions.
func genericRemove(poly Polytope, others []Polytope) ([]Polytope, error) {
	if poly.IsEmpty() {
		return nil, nil
	}

	idx := -1
	for i, o := range others {
		if o.IsEmpty() {
			continue
		}
		hit, err := DoIntersect(poly, o)
		if err != nil {
			return nil, err
		}
		if hit {
			idx = i
			break
		}
	}
	if idx == -1 {
		return []Polytope{poly}, nil
	}

	o := others[idx]
	rest := make([]Polytope, 0, len(others)-1)
	rest = append(rest, others[:idx]...)
	rest = append(rest, others[idx+1:]...)

	oHS, err := o.Halfspaces()
	if err != nil {
		return nil, err
	}

	var results []Polytope
	cur := poly
	for _, h := range oHS {
		candidate, err := intersectHalfspace(cur, h.Flip())
		if err != nil {
			return nil, err
		}
		if !candidate.IsEmpty() {
			sub, err := genericRemove(candidate, rest)
			if err != nil {
				return nil, err
			}
			results = append(results, sub...)
		}

		cur, err = intersectHalfspace(cur, h)
		if err != nil {
			return nil, err
		}
		if cur.IsEmpty() {
			break
		}
	}
	return results, nil
}
