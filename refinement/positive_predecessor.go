// SPDX-License-Identifier: MIT

package refinement

import (
	"github.com/polyhedra/lssforge/abstraction"
	"github.com/polyhedra/lssforge/lss"
	"github.com/polyhedra/lssforge/polytope"
)

// PositiveRobustPredecessor marks the part of a maybe-cell from which some
// control robustly reaches the union of the q-satisfying states as done:
// PreR(X, U, Union(yes-states for q)) intersected with the cell.
type PositiveRobustPredecessor struct {
	opts []Option
}

// NewPositiveRobustPredecessor builds the refinery with the given options
// (WithExpandTarget applies to the yes-states union before PreR).
func NewPositiveRobustPredecessor(opts ...Option) *PositiveRobustPredecessor {
	return &PositiveRobustPredecessor{opts: opts}
}

func (r *PositiveRobustPredecessor) Partition(abs *abstraction.AbstractedLSS, state *abstraction.State, q int, analysis Analysis, rest *polytope.Union) (*polytope.Union, *polytope.Union, error) {
	cfg := newConfig(r.opts...)
	sys := abs.LSS()
	dim := state.Polytope().Dim()

	yesUnion, err := statesUnion(abs, dim, analysis.Yes)
	if err != nil {
		return nil, nil, err
	}
	yesUnion, err = maybeExpand(cfg, yesUnion)
	if err != nil {
		return nil, nil, err
	}
	if yesUnion.IsEmpty() {
		empty, err := polytope.NewUnion(dim)
		if err != nil {
			return nil, nil, err
		}
		return empty, rest, nil
	}

	preR, err := lss.PreR(sys, sys.X, sys.U, yesUnion)
	if err != nil {
		return nil, nil, err
	}

	done, err := intersectUnions(rest, preR)
	if err != nil {
		return nil, nil, err
	}
	remainder, err := rest.RemoveUnion(done)
	if err != nil {
		return nil, nil, err
	}
	return done, remainder, nil
}
