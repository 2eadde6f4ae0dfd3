// SPDX-License-Identifier: MIT

package refinement_test

import (
	"testing"

	"github.com/polyhedra/lssforge/abstraction"
	"github.com/polyhedra/lssforge/halfspace"
	"github.com/polyhedra/lssforge/lss"
	"github.com/polyhedra/lssforge/numeric"
	"github.com/polyhedra/lssforge/polytope"
	"github.com/polyhedra/lssforge/refinement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(t *testing.T, x0, x1, y0, y1 float64) polytope.Polytope {
	t.Helper()
	p, err := polytope.Intersection([]halfspace.Halfspace{
		halfspace.Normalize(numeric.NewVector(1, 0), x1),
		halfspace.Normalize(numeric.NewVector(-1, 0), -x0),
		halfspace.Normalize(numeric.NewVector(0, 1), y1),
		halfspace.Normalize(numeric.NewVector(0, -1), -y0),
	})
	require.NoError(t, err)
	require.False(t, p.IsEmpty())
	return p
}

func twoCellLSS(t *testing.T) (*lss.LSS, *abstraction.AbstractedLSS) {
	t.Helper()
	a := numeric.Identity(2)
	b := numeric.Identity(2)
	x := box(t, 0, 4, 0, 2)
	w := box(t, -0.05, 0.05, -0.05, 0.05)
	uPiece := box(t, -1, 1, -1, 1)
	u, err := polytope.NewUnion(2, uPiece)
	require.NoError(t, err)
	sys, err := lss.New(a, b, x, w, u)
	require.NoError(t, err)

	xGT2 := halfspace.Normalize(numeric.NewVector(-1, 0), -2)
	abs, err := abstraction.New(sys, []halfspace.Halfspace{xGT2}, []string{"x>2"})
	require.NoError(t, err)
	return sys, abs
}

func undecidedStates(abs *abstraction.AbstractedLSS) []*abstraction.State {
	var out []*abstraction.State
	for _, s := range abs.States() {
		if s.Kind() == abstraction.Undecided {
			out = append(out, s)
		}
	}
	return out
}

func TestWithPostProcessingPanicsOnUnknownMode(t *testing.T) {
	assert.Panics(t, func() {
		refinement.WithPostProcessing(refinement.PostProcessing(99))
	})
}

func TestWithLayeringPanicsOnInvalidValues(t *testing.T) {
	assert.Panics(t, func() { refinement.WithLayering("BFS", 0.5, 1, 3) })
	assert.Panics(t, func() { refinement.WithLayering("PreR", 1.5, 1, 3) })
	assert.Panics(t, func() { refinement.WithLayering("PreR", 0.5, 3, 1) })
}

// TestNegativeAttractorStaysWithinRest checks the Refinery contract
// directly: done must be a subregion of rest, and done ⊎ remainder must
// reconstruct rest's volume exactly.
func TestNegativeAttractorStaysWithinRest(t *testing.T) {
	_, abs := twoCellLSS(t)
	states := undecidedStates(abs)
	require.NotEmpty(t, states)
	target := states[0]

	rest, err := polytope.NewUnion(target.Polytope().Dim(), target.Polytope())
	require.NoError(t, err)

	analysis := refinement.Analysis{No: []int{target.Label()}}
	r := refinement.NewNegativeAttractor()
	done, remainder, err := r.Partition(abs, target, 0, analysis, rest)
	require.NoError(t, err)

	assert.LessOrEqual(t, done.Volume(), rest.Volume()+1e-9)
	assert.InDelta(t, rest.Volume(), done.Volume()+remainder.Volume(), 1e-6)
}

// TestPositiveRobustPredecessorEmptyYesIsNoOp checks that with no
// satisfying states at all, the refinery marks nothing done.
func TestPositiveRobustPredecessorEmptyYesIsNoOp(t *testing.T) {
	_, abs := twoCellLSS(t)
	states := undecidedStates(abs)
	require.NotEmpty(t, states)
	target := states[0]

	rest, err := polytope.NewUnion(target.Polytope().Dim(), target.Polytope())
	require.NoError(t, err)

	r := refinement.NewPositiveRobustPredecessor()
	done, remainder, err := r.Partition(abs, target, 0, refinement.Analysis{}, rest)
	require.NoError(t, err)
	assert.True(t, done.IsEmpty())
	assert.InDelta(t, rest.Volume(), remainder.Volume(), 1e-9)
}

// TestSelfLoopProducesSubsetOfCell exercises the safety/self-loop family:
// the robustly-safe subregion can never exceed the cell's own volume.
func TestSelfLoopProducesSubsetOfCell(t *testing.T) {
	_, abs := twoCellLSS(t)
	states := undecidedStates(abs)
	require.NotEmpty(t, states)
	target := states[0]

	rest, err := polytope.NewUnion(target.Polytope().Dim(), target.Polytope())
	require.NoError(t, err)

	r := refinement.NewSelfLoop()
	done, remainder, err := r.Partition(abs, target, 0, refinement.Analysis{}, rest)
	require.NoError(t, err)
	assert.LessOrEqual(t, done.Volume(), target.Polytope().Volume()+1e-9)
	assert.InDelta(t, rest.Volume(), done.Volume()+remainder.Volume(), 1e-6)
}

// TestRunComposesAndCoversCell drives Run with a single SelfLoop refinery
// over one automaton state and checks the composed partition's total
// volume reconstructs the state's own volume (the done ⊎ rest' = rest
// contract, end to end through the q-sweep).
func TestRunComposesAndCoversCell(t *testing.T) {
	_, abs := twoCellLSS(t)
	states := undecidedStates(abs)
	require.NotEmpty(t, states)
	target := states[0]

	pieces, err := refinement.Run(abs, target, []int{0}, map[int]refinement.Analysis{}, []refinement.Refinery{refinement.NewSelfLoop()})
	require.NoError(t, err)

	var total float64
	for _, p := range pieces {
		total += p.Volume()
	}
	assert.InDelta(t, target.Polytope().Volume(), total, 1e-6)
}

// stubRefinery lets a test hand Run a Refinery that violates the covering
// contract on purpose.
type stubRefinery struct {
	done, remainder *polytope.Union
}

func (s stubRefinery) Partition(_ *abstraction.AbstractedLSS, _ *abstraction.State, _ int, _ refinement.Analysis, _ *polytope.Union) (*polytope.Union, *polytope.Union, error) {
	return s.done, s.remainder, nil
}

func TestRunRejectsNonCoveringRefinery(t *testing.T) {
	_, abs := twoCellLSS(t)
	states := undecidedStates(abs)
	require.NotEmpty(t, states)
	target := states[0]

	emptyDone, err := polytope.NewUnion(target.Polytope().Dim())
	require.NoError(t, err)
	emptyRemainder, err := polytope.NewUnion(target.Polytope().Dim())
	require.NoError(t, err)

	_, err = refinement.Run(abs, target, []int{0}, map[int]refinement.Analysis{}, []refinement.Refinery{
		stubRefinery{done: emptyDone, remainder: emptyRemainder},
	})
	assert.ErrorIs(t, err, refinement.ErrPartitionNotCovering)
}
