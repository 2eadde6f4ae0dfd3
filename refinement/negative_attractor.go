// SPDX-License-Identifier: MIT

package refinement

import (
	"github.com/polyhedra/lssforge/abstraction"
	"github.com/polyhedra/lssforge/lss"
	"github.com/polyhedra/lssforge/polytope"
)

// NegativeAttractor marks the part of a maybe-cell that can never escape
// the union of the q-nonsatisfying states as done: on each call it
// computes Attr(X, U, Union(no-states for q)) and intersects that
// attractor with whatever subregion of the cell is still unallocated.
type NegativeAttractor struct {
	opts []Option
}

// NewNegativeAttractor builds a NegativeAttractor refinery with the given
// options (WithExpandTarget applies to the no-states union before Attr).
func NewNegativeAttractor(opts ...Option) *NegativeAttractor {
	return &NegativeAttractor{opts: opts}
}

func (r *NegativeAttractor) Partition(abs *abstraction.AbstractedLSS, state *abstraction.State, q int, analysis Analysis, rest *polytope.Union) (*polytope.Union, *polytope.Union, error) {
	cfg := newConfig(r.opts...)
	sys := abs.LSS()
	dim := state.Polytope().Dim()

	noUnion, err := statesUnion(abs, dim, analysis.No)
	if err != nil {
		return nil, nil, err
	}
	noUnion, err = maybeExpand(cfg, noUnion)
	if err != nil {
		return nil, nil, err
	}
	if noUnion.IsEmpty() {
		empty, err := polytope.NewUnion(dim)
		if err != nil {
			return nil, nil, err
		}
		return empty, rest, nil
	}

	// Attr is taken over the whole state space X, not the cell itself, and
	// is recomputed on every call: no attractor is cached across cells.
	attr, err := lss.Attr(sys, sys.X, sys.U, noUnion)
	if err != nil {
		return nil, nil, err
	}

	done, err := intersectUnions(rest, attr)
	if err != nil {
		return nil, nil, err
	}
	remainder, err := rest.RemoveUnion(done)
	if err != nil {
		return nil, nil, err
	}
	return done, remainder, nil
}
