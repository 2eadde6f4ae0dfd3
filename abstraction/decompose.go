// SPDX-License-Identifier: MIT

package abstraction

import (
	"fmt"

	"github.com/polyhedra/lssforge/halfspace"
	"github.com/polyhedra/lssforge/lss"
	"github.com/polyhedra/lssforge/polytope"
)

// New builds the initial AbstractedLSS for sys, decomposing its state
// space by the given predicates.
//
// labels assigns a name to each entry of predicates at the same index; an
// empty string auto-generates "p<i>". Passing a nil labels slice is
// equivalent to passing an all-empty one.
//
// Blueprint:
//
//	Stage 1 (OUTER cells): every piece of Post(X,U)\X becomes an OUTER
//	  state with no predicates and, permanently, no actions.
//	Stage 2 (Precise partition): run the precise-operator-partition with
//	  operator p ↦ {X ∩ p} over the labeled predicates; each resulting
//	  part names a maximal subregion of X and exactly the predicate
//	  labels that hold there. Every piece of every part's region becomes
//	  one UNDECIDED state carrying that part's predicate labels.
//	Stage 3 (Catch-all): if X ∩ ⋀ flip(Pᵢ) is non-empty, it becomes one
//	  final UNDECIDED state with no predicate labels.
func New(sys *lss.LSS, predicates []halfspace.Halfspace, labels []string) (*AbstractedLSS, error) {
	predLabels, predMap, err := namePredicates(sys.X.Dim(), predicates, labels)
	if err != nil {
		return nil, err
	}

	abs := &AbstractedLSS{
		sys:        sys,
		states:     make(map[int]*State),
		predicates: predMap,
	}

	if err := abs.addOuterCells(); err != nil {
		return nil, err
	}
	if err := abs.addPredicateCells(predLabels, predMap); err != nil {
		return nil, err
	}
	if err := abs.addCatchAllCell(predLabels, predMap); err != nil {
		return nil, err
	}
	return abs, nil
}

func namePredicates(dim int, predicates []halfspace.Halfspace, labels []string) ([]string, map[string]halfspace.Halfspace, error) {
	predMap := make(map[string]halfspace.Halfspace, len(predicates))
	names := make([]string, len(predicates))
	for i, p := range predicates {
		if p.Dim() != dim {
			return nil, nil, fmt.Errorf("abstraction.New: predicate %d: dim %d != %d: %w", i, p.Dim(), dim, ErrDimensionMismatch)
		}
		name := ""
		if i < len(labels) {
			name = labels[i]
		}
		if name == "" {
			name = fmt.Sprintf("p%d", i)
		}
		names[i] = name
		predMap[name] = p
	}
	return names, predMap, nil
}

func (a *AbstractedLSS) addOuterCells() error {
	post, err := lss.Post(a.sys, a.sys.X, a.sys.U)
	if err != nil {
		return err
	}
	outer, err := post.Remove(a.sys.X)
	if err != nil {
		return err
	}
	for _, piece := range outer.Pieces() {
		a.newState(piece, Outer, nil)
	}
	return nil
}

func (a *AbstractedLSS) addPredicateCells(predLabels []string, predMap map[string]halfspace.Halfspace) error {
	if len(predLabels) == 0 {
		return nil
	}
	op := func(label string) (*polytope.Union, error) {
		piece, err := polytope.IntersectHalfspace(a.sys.X, predMap[label])
		if err != nil {
			return nil, err
		}
		return polytope.NewUnion(a.sys.X.Dim(), piece)
	}
	parts, err := precisePartition(predLabels, op)
	if err != nil {
		return err
	}
	for _, p := range parts {
		for _, piece := range p.region.Pieces() {
			a.newState(piece, Undecided, p.items)
		}
	}
	return nil
}

func (a *AbstractedLSS) addCatchAllCell(predLabels []string, predMap map[string]halfspace.Halfspace) error {
	cur := a.sys.X
	for _, label := range predLabels {
		var err error
		cur, err = polytope.IntersectHalfspace(cur, predMap[label].Flip())
		if err != nil {
			return err
		}
		if cur.IsEmpty() {
			return nil
		}
	}
	if !cur.IsEmpty() {
		a.newState(cur, Undecided, nil)
	}
	return nil
}
