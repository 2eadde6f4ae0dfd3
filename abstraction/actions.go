// SPDX-License-Identifier: MIT

package abstraction

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/polyhedra/lssforge/lss"
	"github.com/polyhedra/lssforge/polytope"
)

// Actions returns the state's lazily-computed action list, computing and
// memoizing it (along with the reachable-witness used for cache
// invalidation) on first call. OUTER states permanently have no actions.
func (s *State) Actions() ([]*Action, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.actionsReady {
		return s.actions, s.actionsErr
	}
	if s.kind == Outer {
		s.actions, s.actionsErr, s.reachable = nil, nil, hashset.New()
		s.actionsReady = true
		return nil, nil
	}
	actions, reachable, err := s.computeActions()
	s.actions, s.actionsErr, s.reachable = actions, err, reachable
	s.actionsReady = true
	return actions, err
}

// computeActions builds the set of Actions reachable from one state.
//
// Blueprint:
//
//	Stage 1 (Reachable set): Post(x.poly, U) ∩ s.poly non-empty picks out
//	  every candidate target state; the set of their labels is memoized as
//	  the reachable witness.
//	Stage 2 (Precise partition): partition the reachable states by the
//	  operator s ↦ ActionPolytope(x.poly, s.poly); each resulting part
//	  becomes one Action, its control region simplified into canonical
//	  form.
func (s *State) computeActions() ([]*Action, *hashset.Set, error) {
	sys := s.owner.sys
	post, err := lss.Post(sys, s.poly, sys.U)
	if err != nil {
		return nil, nil, err
	}

	reachable := hashset.New()
	var candidates []*State
	for _, other := range s.owner.States() {
		inter, err := post.Intersect(other.poly)
		if err != nil {
			return nil, nil, err
		}
		if !inter.IsEmpty() {
			candidates = append(candidates, other)
			reachable.Add(other.label)
		}
	}

	op := func(t *State) (*polytope.Union, error) {
		return lss.ActionPolytope(sys, s.poly, t.poly)
	}
	parts, err := precisePartition(candidates, op)
	if err != nil {
		return nil, nil, err
	}

	actions := make([]*Action, 0, len(parts))
	for _, p := range parts {
		controls, err := p.region.Simplify()
		if err != nil {
			return nil, nil, err
		}
		targets := make([]int, len(p.items))
		for i, t := range p.items {
			targets[i] = t.label
		}
		actions = append(actions, &Action{origin: s, targets: targets, controls: controls})
	}
	return actions, reachable, nil
}

// Supports returns the action's lazily-computed support list, computing
// and memoizing it on first call.
func (a *Action) Supports() ([]*ActionSupport, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.supportsReady {
		return a.supports, a.supportsErr
	}
	supports, err := a.computeSupports()
	a.supports, a.supportsErr = supports, err
	a.supportsReady = true
	return supports, err
}

// computeSupports builds the set of ActionSupports for one Action.
//
// Blueprint:
//
//	Stage 1 (Robust predecessor floor): prer = simplify(PreR(x.poly,
//	  a.controls, a.targets)) bounds every support's origin region from
//	  above.
//	Stage 2 (Precise partition): partition a.targets by the operator
//	  t ↦ Pre(x.poly, a.controls, {t.poly}); each part's origin region is
//	  that part's polytope union intersected with prer, simplified, and
//	  dropped entirely if that intersection is empty.
func (a *Action) computeSupports() ([]*ActionSupport, error) {
	sys := a.origin.owner.sys
	targetStates := make([]*State, 0, len(a.targets))
	var targetPieces []polytope.Polytope
	for _, label := range a.targets {
		t := a.origin.owner.State(label)
		if t == nil {
			return nil, fmt.Errorf("abstraction: action target state %d no longer exists: %w", label, ErrValue)
		}
		targetStates = append(targetStates, t)
		targetPieces = append(targetPieces, t.poly)
	}
	targets, err := polytope.NewUnion(sys.X.Dim(), targetPieces...)
	if err != nil {
		return nil, err
	}

	preR, err := lss.PreR(sys, a.origin.poly, a.controls, targets)
	if err != nil {
		return nil, err
	}
	prer, err := preR.Simplify()
	if err != nil {
		return nil, err
	}

	op := func(t *State) (*polytope.Union, error) {
		single, err := polytope.NewUnion(sys.X.Dim(), t.poly)
		if err != nil {
			return nil, err
		}
		return lss.Pre(sys, a.origin.poly, a.controls, single)
	}
	parts, err := precisePartition(targetStates, op)
	if err != nil {
		return nil, err
	}

	var supports []*ActionSupport
	for _, p := range parts {
		originRegion, err := regionIntersectUnion(prer, p.region)
		if err != nil {
			return nil, err
		}
		if originRegion.IsEmpty() {
			continue
		}
		simplified, err := originRegion.Simplify()
		if err != nil {
			return nil, err
		}
		targetLabels := make([]int, len(p.items))
		for i, t := range p.items {
			targetLabels[i] = t.label
		}
		supports = append(supports, &ActionSupport{targets: targetLabels, origin: simplified})
	}
	return supports, nil
}
