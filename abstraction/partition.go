// SPDX-License-Identifier: MIT

package abstraction

import "github.com/polyhedra/lssforge/polytope"

// part is one (region, items) pair of the precise-operator-partition
// sweep: region is the subregion every item in items maps onto via the
// operator, and items is exactly the set of inputs whose operator-image
// covers region.
type part[T any] struct {
	region *polytope.Union
	items  []T
}

// precisePartition implements the precise-operator-partition
// algorithm: given items and an operator mapping each item to a polytope
// union, it associates every maximal subregion with exactly the subset of
// items whose operator-image covers it. Shared by initial decomposition
// (operator p ↦ X∩p over predicates) and per-state Action construction
// (operator s ↦ ActionPolytope(x.poly, s.poly) over reachable states).
//
// Blueprint:
//
//	Stage 1 (Per item): compute remaining = op(item).
//	Stage 2 (Split existing parts): for each part p already in the list,
//	  intersect remaining with p.region; if the overlap doesn't cover all
//	  of p.region, shrink p to the uncovered remainder and queue a new
//	  part for the overlap (carrying p's items plus the new item);
//	  otherwise the overlap covers p.region exactly, so just append the
//	  new item to p.items. Subtract the overlap from remaining either way.
//	Stage 3 (Leftover): if remaining is still non-empty after every
//	  existing part, queue one more new part for it alone.
//	Stage 4 (Commit): append every part queued this round — they are
//	  never revisited for the same item, only by later items.
func precisePartition[T any](items []T, op func(T) (*polytope.Union, error)) ([]part[T], error) {
	var parts []part[T]
	for _, item := range items {
		remaining, err := op(item)
		if err != nil {
			return nil, err
		}
		if remaining == nil || remaining.IsEmpty() {
			continue
		}

		var queued []part[T]
		for i := range parts {
			p := &parts[i]
			common, err := regionIntersectUnion(p.region, remaining)
			if err != nil {
				return nil, err
			}
			if common.IsEmpty() {
				continue
			}
			notCommon, err := p.region.RemoveUnion(common)
			if err != nil {
				return nil, err
			}
			if notCommon.IsEmpty() {
				p.items = append(p.items, item)
			} else {
				newItems := append(append([]T(nil), p.items...), item)
				p.region = notCommon
				queued = append(queued, part[T]{region: common, items: newItems})
			}
			remaining, err = remaining.RemoveUnion(common)
			if err != nil {
				return nil, err
			}
			if remaining.IsEmpty() {
				break
			}
		}
		if !remaining.IsEmpty() {
			queued = append(queued, part[T]{region: remaining, items: []T{item}})
		}
		parts = append(parts, queued...)
	}
	return parts, nil
}

// regionIntersectUnion intersects two unions by intersecting a with every
// piece of b and merging the pieces back into one union.
func regionIntersectUnion(a, b *polytope.Union) (*polytope.Union, error) {
	var pieces []polytope.Polytope
	for _, piece := range b.Pieces() {
		r, err := a.Intersect(piece)
		if err != nil {
			return nil, err
		}
		pieces = append(pieces, r.Pieces()...)
	}
	return polytope.NewUnion(a.Dim(), pieces...)
}
