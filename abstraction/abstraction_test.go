// SPDX-License-Identifier: MIT

package abstraction_test

import (
	"testing"

	"github.com/polyhedra/lssforge/abstraction"
	"github.com/polyhedra/lssforge/halfspace"
	"github.com/polyhedra/lssforge/lss"
	"github.com/polyhedra/lssforge/numeric"
	"github.com/polyhedra/lssforge/polytope"
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

// illustrativeLSS builds a small illustrative example: A = B = I2,
// X = [0,4]x[0,2], W = [-0.1,0.1]^2, U = [-1,1]^2.
func illustrativeLSS(t *testing.T) *lss.LSS {
	t.Helper()
	a := numeric.Identity(2)
	b := numeric.Identity(2)
	x := box(t, 0, 4, 0, 2)
	w := box(t, -0.1, 0.1, -0.1, 0.1)
	uPiece := box(t, -1, 1, -1, 1)
	u, err := polytope.NewUnion(2, uPiece)
	require.NoError(t, err)
	sys, err := lss.New(a, b, x, w, u)
	require.NoError(t, err)
	return sys
}

func predicateXGT2() halfspace.Halfspace {
	// x > 2  <=>  -x < -2  <=>  normalize((-1,0), -2).
	return halfspace.Normalize(numeric.NewVector(-1, 0), -2)
}

// TestNewDecomposesIntoOuterAndUndecided exercises the illustrative-example
// scenario exactly: 6 States (4 outer + 2
// undecided), 0 satisfying, 18 actions in total, and OUTER states must
// have zero actions.
func TestNewDecomposesIntoOuterAndUndecided(t *testing.T) {
	sys := illustrativeLSS(t)
	abs, err := abstraction.New(sys, []halfspace.Halfspace{predicateXGT2()}, []string{"x>2"})
	require.NoError(t, err)

	states := abs.States()
	var outer, undecided, satisfying, totalActions int
	for _, s := range states {
		switch s.Kind() {
		case abstraction.Outer:
			outer++
			actions, err := s.Actions()
			require.NoError(t, err)
			assert.Empty(t, actions, "OUTER states must have no actions")
		case abstraction.Undecided:
			undecided++
			actions, err := s.Actions()
			require.NoError(t, err)
			totalActions += len(actions)
		case abstraction.Satisfying:
			satisfying++
		}
	}
	assert.Equal(t, 6, len(states))
	assert.Equal(t, 4, outer)
	assert.Equal(t, 2, undecided)
	assert.Equal(t, 0, satisfying)
	assert.Equal(t, 18, totalActions)
	assert.Equal(t, len(states), outer+undecided+satisfying)
}

// TestActionControlRegionsCoverUAndAreDisjoint exercises the
// covering/disjointness property for every non-OUTER state: the union of
// an action's control regions across all its actions equals U.
func TestActionControlRegionsCoverUAndAreDisjoint(t *testing.T) {
	sys := illustrativeLSS(t)
	abs, err := abstraction.New(sys, []halfspace.Halfspace{predicateXGT2()}, []string{"x>2"})
	require.NoError(t, err)

	for _, s := range abs.States() {
		if s.Kind() == abstraction.Outer {
			continue
		}
		actions, err := s.Actions()
		require.NoError(t, err)
		require.NotEmpty(t, actions, "every non-OUTER state must reach at least one target")

		var pieces []polytope.Polytope
		for _, a := range actions {
			pieces = append(pieces, a.Controls().Pieces()...)
		}
		merged, err := polytope.NewUnion(sys.U.Dim(), pieces...)
		require.NoError(t, err)
		assert.InDelta(t, sys.U.Volume(), merged.Volume(), 1e-6)
	}
}

func TestRefineWithTrivialPartitionIsNoOp(t *testing.T) {
	sys := illustrativeLSS(t)
	abs, err := abstraction.New(sys, []halfspace.Halfspace{predicateXGT2()}, []string{"x>2"})
	require.NoError(t, err)

	before := abs.States()
	beforeLabels := make(map[int]bool, len(before))
	trivial := make(map[int][]polytope.Polytope, len(before))
	for _, s := range before {
		beforeLabels[s.Label()] = true
		trivial[s.Label()] = []polytope.Polytope{s.Polytope()}
	}

	require.NoError(t, abs.Refine(trivial))

	after := abs.States()
	require.Equal(t, len(before), len(after))
	for _, s := range after {
		assert.True(t, beforeLabels[s.Label()])
	}
}

// TestRefineInvalidatesDependentActionCache refines one of the two
// UNDECIDED states and checks that the other one (which certainly reaches
// it, since they share a boundary within the system's step size)
// recomputes its actions after the refinement. If the cache were not
// invalidated, stale Action.targets would still
// name the deleted label, and resolving any of its supports through the
// GameGraph adapter would fail.
func TestRefineInvalidatesDependentActionCache(t *testing.T) {
	sys := illustrativeLSS(t)
	abs, err := abstraction.New(sys, []halfspace.Halfspace{predicateXGT2()}, []string{"x>2"})
	require.NoError(t, err)

	var left, right *abstraction.State
	for _, s := range abs.States() {
		if s.Kind() != abstraction.Undecided {
			continue
		}
		ext := s.Polytope().Extent()
		if ext[0][1] <= 2.0+numeric.Epsilon {
			left = s
		} else {
			right = s
		}
	}
	require.NotNil(t, left)
	require.NotNil(t, right)

	_, err = left.Actions() // populate left's reachable witness (should include right)
	require.NoError(t, err)

	rightPoly := right.Polytope()
	ext := rightPoly.Extent()
	top := box(t, ext[0][0], ext[0][1], (ext[1][0]+ext[1][1])/2, ext[1][1])
	bottom := box(t, ext[0][0], ext[0][1], ext[1][0], (ext[1][0]+ext[1][1])/2)
	require.NoError(t, abs.Refine(map[int][]polytope.Polytope{
		right.Label(): {top, bottom},
	}))

	gg := abstraction.NewGameGraph(abs)
	count, err := gg.ActionCount(left.Label())
	require.NoError(t, err)
	for a := 0; a < count; a++ {
		supCount, err := gg.SupportCount(left.Label(), a)
		require.NoError(t, err)
		for sup := 0; sup < supCount; sup++ {
			targets, err := gg.TargetLabels(left.Label(), a, sup)
			require.NoError(t, err)
			for _, tgt := range targets {
				assert.NotNil(t, abs.State(tgt), "stale target label %d survived invalidation", tgt)
			}
		}
	}
}

func TestUpdateKindsRejectsOppositeReassignment(t *testing.T) {
	sys := illustrativeLSS(t)
	abs, err := abstraction.New(sys, nil, nil)
	require.NoError(t, err)
	label := abs.States()[0].Label()

	require.NoError(t, abs.UpdateKinds([]int{label}, nil))
	assert.Equal(t, abstraction.Satisfying, abs.State(label).Kind())

	err = abs.UpdateKinds(nil, []int{label})
	assert.ErrorIs(t, err, abstraction.ErrInvariant)
}

func TestUpdateKindsLeavesOuterStatesAlone(t *testing.T) {
	sys := illustrativeLSS(t)
	abs, err := abstraction.New(sys, []halfspace.Halfspace{predicateXGT2()}, []string{"x>2"})
	require.NoError(t, err)

	var outerLabel int
	found := false
	for _, s := range abs.States() {
		if s.Kind() == abstraction.Outer {
			outerLabel = s.Label()
			found = true
			break
		}
	}
	require.True(t, found)

	require.NoError(t, abs.UpdateKinds([]int{outerLabel}, nil))
	assert.Equal(t, abstraction.Outer, abs.State(outerLabel).Kind())
}

func TestGameGraphAdapterReportsConsistentCounts(t *testing.T) {
	sys := illustrativeLSS(t)
	abs, err := abstraction.New(sys, []halfspace.Halfspace{predicateXGT2()}, []string{"x>2"})
	require.NoError(t, err)

	gg := abstraction.NewGameGraph(abs)
	for _, label := range gg.StateLabels() {
		count, err := gg.ActionCount(label)
		require.NoError(t, err)
		for a := 0; a < count; a++ {
			supCount, err := gg.SupportCount(label, a)
			require.NoError(t, err)
			for sup := 0; sup < supCount; sup++ {
				targets, err := gg.TargetLabels(label, a, sup)
				require.NoError(t, err)
				assert.NotEmpty(t, targets)
			}
		}
	}
}
