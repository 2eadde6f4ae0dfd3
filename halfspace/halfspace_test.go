// SPDX-License-Identifier: MIT

package halfspace_test

import (
	"math"
	"testing"

	"github.com/polyhedra/lssforge/halfspace"
	"github.com/polyhedra/lssforge/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBasic(t *testing.T) {
	h := halfspace.Normalize(numeric.NewVector(3, 4), 10)
	assert.InDelta(t, 1.0, h.Normal().Norm(), numeric.Epsilon)
	assert.InDelta(t, 2.0, h.Offset(), numeric.Epsilon)
}

func TestNormalizeDegenerate(t *testing.T) {
	trivial := halfspace.Normalize(numeric.NewVector(0, 0), 5)
	assert.True(t, trivial.IsTrivial())

	infeasible := halfspace.Normalize(numeric.NewVector(0, 0), -5)
	assert.True(t, infeasible.IsInfeasible())
}

func TestFlipInvolution(t *testing.T) {
	h := halfspace.Normalize(numeric.NewVector(1, 0), 2)
	assert.True(t, h.Flip().Flip().Equal(h))

	trivial := halfspace.Trivial(2)
	assert.True(t, trivial.Flip().IsInfeasible())
	assert.True(t, trivial.Flip().Flip().Equal(trivial))
}

func TestContains(t *testing.T) {
	h := halfspace.Normalize(numeric.NewVector(1, 0), 2) // x <= 2
	assert.True(t, h.Contains(numeric.NewVector(1, 100)))
	assert.True(t, h.Contains(numeric.NewVector(2, 0)))
	assert.False(t, h.Contains(numeric.NewVector(3, 0)))
}

func TestTranslate(t *testing.T) {
	h := halfspace.Normalize(numeric.NewVector(1, 0), 2) // x <= 2
	shifted, err := h.Translate(numeric.NewVector(1, 0)) // now x <= 3
	require.NoError(t, err)
	assert.True(t, shifted.Contains(numeric.NewVector(3, 0)))
	assert.False(t, shifted.Contains(numeric.NewVector(3.5, 0)))

	back, err := shifted.Translate(numeric.NewVector(-1, 0))
	require.NoError(t, err)
	assert.True(t, back.Equal(h))
}

func TestApplyRightInvertible(t *testing.T) {
	h := halfspace.Normalize(numeric.NewVector(1, 0), 2)
	m, err := numeric.NewMatrix(2, 2, []float64{2, 0, 0, 2})
	require.NoError(t, err)
	out, err := h.ApplyRight(m)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, out.Offset(), numeric.Epsilon)
}

func TestAngleReferenceDirection(t *testing.T) {
	ref := halfspace.Normalize(numeric.NewVector(-1, 0), 0)
	assert.InDelta(t, 0, ref.Angle(), numeric.Epsilon)

	quarter := halfspace.Normalize(numeric.NewVector(0, 1), 0)
	assert.InDelta(t, 3*math.Pi/2, quarter.Angle(), 1e-6)
}
