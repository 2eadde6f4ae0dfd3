// SPDX-License-Identifier: MIT

package refinement

import (
	"github.com/polyhedra/lssforge/abstraction"
	"github.com/polyhedra/lssforge/lss"
	"github.com/polyhedra/lssforge/polytope"
)

// SelfLoop marks the subregion of a maybe-cell guaranteed to stay within
// the cell under some control as done, regardless of the automaton state
// q (safety is a property of the cell's own dynamics, not of any
// particular objective classification): Attr(X, U, {cell}) restricted to
// the cell itself, intersected with whatever remains unallocated.
type SelfLoop struct{}

// NewSelfLoop builds the refinery. It takes no options: dilation and
// small-piece suppression are meaningless against a cell's own boundary.
func NewSelfLoop() *SelfLoop { return &SelfLoop{} }

func (r *SelfLoop) Partition(abs *abstraction.AbstractedLSS, state *abstraction.State, q int, analysis Analysis, rest *polytope.Union) (*polytope.Union, *polytope.Union, error) {
	sys := abs.LSS()
	dim := state.Polytope().Dim()

	self, err := polytope.NewUnion(dim, state.Polytope())
	if err != nil {
		return nil, nil, err
	}

	attr, err := lss.Attr(sys, state.Polytope(), sys.U, self)
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
