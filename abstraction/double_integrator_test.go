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

// doubleIntegratorLSS builds a discretized double integrator
// (position/velocity state, scalar acceleration control).
func doubleIntegratorLSS(t *testing.T) *lss.LSS {
	t.Helper()
	a, err := numeric.NewMatrix(2, 2, []float64{1, 1, 0, 1})
	require.NoError(t, err)
	b, err := numeric.NewMatrix(2, 1, []float64{0.5, 1})
	require.NoError(t, err)
	x := box(t, -5, 5, -3, 3)
	w := box(t, -0.1, 0.1, -0.1, 0.1)

	uPiece, err := polytope.Intersection([]halfspace.Halfspace{
		halfspace.Normalize(numeric.NewVector(1), 1),
		halfspace.Normalize(numeric.NewVector(-1), 1),
	})
	require.NoError(t, err)
	u, err := polytope.NewUnion(1, uPiece)
	require.NoError(t, err)

	sys, err := lss.New(a, b, x, w, u)
	require.NoError(t, err)
	return sys
}

func doubleIntegratorPredicates() ([]halfspace.Halfspace, []string) {
	return []halfspace.Halfspace{
			halfspace.Normalize(numeric.NewVector(-1, 0), 1), // -1 < x
			halfspace.Normalize(numeric.NewVector(1, 0), 1),  // x < 1
			halfspace.Normalize(numeric.NewVector(0, -1), 1), // -1 < y
			halfspace.Normalize(numeric.NewVector(0, 1), 1),  // y < 1
		}, []string{"x>-1", "x<1", "y>-1", "y<1"}
}

// TestDoubleIntegratorDecompositionCounts exercises the double
// integrator's decomposition against its exact expected state/action
// counts.
func TestDoubleIntegratorDecompositionCounts(t *testing.T) {
	sys := doubleIntegratorLSS(t)
	preds, labels := doubleIntegratorPredicates()
	abs, err := abstraction.New(sys, preds, labels)
	require.NoError(t, err)

	states := abs.States()
	assert.Equal(t, 13, len(states))

	var undecided, totalActions int
	for _, s := range states {
		if s.Kind() == abstraction.Undecided {
			undecided++
		}
		if s.Kind() == abstraction.Outer {
			continue
		}
		actions, err := s.Actions()
		require.NoError(t, err)
		totalActions += len(actions)
	}
	assert.Equal(t, 9, undecided)
	assert.Equal(t, 27, totalActions)
}

// TestDoubleIntegratorActionsCoverAndDisjoint checks the same union
// property as the illustrative example: an
// action's control regions, merged across all of a state's actions with
// NewUnion, cover U's full volume.
func TestDoubleIntegratorActionsCoverAndDisjoint(t *testing.T) {
	sys := doubleIntegratorLSS(t)
	preds, labels := doubleIntegratorPredicates()
	abs, err := abstraction.New(sys, preds, labels)
	require.NoError(t, err)

	for _, s := range abs.States() {
		if s.Kind() == abstraction.Outer {
			continue
		}
		actions, err := s.Actions()
		require.NoError(t, err)
		require.NotEmpty(t, actions)

		var pieces []polytope.Polytope
		for _, a := range actions {
			pieces = append(pieces, a.Controls().Pieces()...)
		}
		merged, err := polytope.NewUnion(sys.U.Dim(), pieces...)
		require.NoError(t, err)
		assert.InDelta(t, sys.U.Volume(), merged.Volume(), 1e-6)
	}
}
