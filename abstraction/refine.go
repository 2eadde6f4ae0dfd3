// SPDX-License-Identifier: MIT

package abstraction

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/polyhedra/lssforge/polytope"
)

// Refine replaces states with finer pieces: for each state label
// mapped to ≥2 polytope pieces whose union equals that state's region,
// the state is replaced by one new state per piece (inheriting kind and
// predicate labels); labels with fewer than 2 pieces are left untouched
// (this is what makes the trivial partition {state: [state.poly]} a
// no-op). A partition whose union does not match its state's region is a
// malformed partition and returns an error wrapping ErrValue.
//
// After every replacement, every surviving state whose memoized
// reachable-witness intersects the refined-set has its action cache
// invalidated: callers see the old snapshot of states while the sweep
// runs, with invalidation applied only once the sweep is complete.
func (a *AbstractedLSS) Refine(partitions map[int][]polytope.Polytope) error {
	refinedSet := hashset.New()
	for label, pieces := range partitions {
		if len(pieces) < 2 {
			continue
		}
		st := a.State(label)
		if st == nil {
			return fmt.Errorf("abstraction.Refine: state %d not found: %w", label, ErrValue)
		}
		covers, err := coversRegion(st.poly, pieces)
		if err != nil {
			return err
		}
		if !covers {
			return fmt.Errorf("abstraction.Refine: state %d: partition does not cover its region: %w", label, ErrValue)
		}

		predLabels := st.PredicateLabels()
		for _, piece := range pieces {
			if piece.IsEmpty() {
				continue
			}
			a.newState(piece, st.kind, predLabels)
		}
		a.removeState(label)
		refinedSet.Add(label)
	}
	if refinedSet.Size() == 0 {
		return nil
	}

	for _, st := range a.States() {
		st.mu.Lock()
		reach := st.reachable
		st.mu.Unlock()
		if reach == nil {
			continue
		}
		stale := false
		for _, v := range reach.Values() {
			if refinedSet.Contains(v) {
				stale = true
				break
			}
		}
		if stale {
			st.invalidate()
		}
	}
	return nil
}

// coversRegion reports whether pieces union to exactly region, via mutual
// covering on a dimension-matched Union pair.
func coversRegion(region polytope.Polytope, pieces []polytope.Polytope) (bool, error) {
	partUnion, err := polytope.NewUnion(region.Dim(), pieces...)
	if err != nil {
		return false, err
	}
	regionUnion, err := polytope.NewUnion(region.Dim(), region)
	if err != nil {
		return false, err
	}
	return partUnion.IsSameAs(regionUnion), nil
}

// removeState deletes label from the state map under the write lock. The
// caller is responsible for having already collected anything it needs
// from the state (predicate labels, polytope) before calling this.
func (a *AbstractedLSS) removeState(label int) {
	a.muStates.Lock()
	defer a.muStates.Unlock()
	delete(a.states, label)
}

// UpdateKinds reclassifies states as SATISFYING (yes) or NONSATISFYING
// (no). OUTER states are left OUTER regardless of which
// list they appear in — they lie outside the state space and can never
// satisfy or fail the objective. Reassigning a SATISFYING state to
// NONSATISFYING, or vice versa, is an internal invariant violation.
func (a *AbstractedLSS) UpdateKinds(yes, no []int) error {
	for _, label := range yes {
		st := a.State(label)
		if st == nil {
			return fmt.Errorf("abstraction.UpdateKinds: state %d not found: %w", label, ErrValue)
		}
		if st.kind == Outer {
			continue
		}
		if st.kind == NonSatisfying {
			return fmt.Errorf("abstraction.UpdateKinds: state %d is NONSATISFYING, cannot become SATISFYING: %w", label, ErrInvariant)
		}
		st.kind = Satisfying
	}
	for _, label := range no {
		st := a.State(label)
		if st == nil {
			return fmt.Errorf("abstraction.UpdateKinds: state %d not found: %w", label, ErrValue)
		}
		if st.kind == Outer {
			continue
		}
		if st.kind == Satisfying {
			return fmt.Errorf("abstraction.UpdateKinds: state %d is SATISFYING, cannot become NONSATISFYING: %w", label, ErrInvariant)
		}
		st.kind = NonSatisfying
	}
	return nil
}
