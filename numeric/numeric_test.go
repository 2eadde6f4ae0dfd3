// SPDX-License-Identifier: MIT

package numeric_test

import (
	"testing"

	"github.com/polyhedra/lssforge/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorArithmetic(t *testing.T) {
	a := numeric.NewVector(1, 2)
	b := numeric.NewVector(3, 4)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.ApproxEqual(numeric.NewVector(4, 6)))

	diff, err := b.Sub(a)
	require.NoError(t, err)
	assert.True(t, diff.ApproxEqual(numeric.NewVector(2, 2)))

	dot, err := a.Dot(b)
	require.NoError(t, err)
	assert.InDelta(t, 11.0, dot, numeric.Epsilon)

	_, err = a.Add(numeric.NewVector(1, 2, 3))
	assert.ErrorIs(t, err, numeric.ErrDimensionMismatch)
}

func TestMatrixInverse(t *testing.T) {
	m, err := numeric.NewMatrix(2, 2, []float64{2, 0, 0, 2})
	require.NoError(t, err)

	inv, err := m.Inverse()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, inv.At(0, 0), numeric.Epsilon)
	assert.InDelta(t, 0.5, inv.At(1, 1), numeric.Epsilon)

	singular, err := numeric.NewMatrix(2, 2, []float64{1, 1, 1, 1})
	require.NoError(t, err)
	_, err = singular.Inverse()
	assert.ErrorIs(t, err, numeric.ErrSingular)
}

func TestMatrixMulVec(t *testing.T) {
	ident := numeric.Identity(2)
	x := numeric.NewVector(3, -5)
	y, err := ident.MulVec(x)
	require.NoError(t, err)
	assert.True(t, y.ApproxEqual(x))
}

func TestToleranceHelpers(t *testing.T) {
	assert.True(t, numeric.Zero(1e-10))
	assert.False(t, numeric.Zero(1e-3))
	assert.True(t, numeric.Equal(1.0, 1.0+1e-10))
	assert.True(t, numeric.AngleLTE(1.0, 1.0))
	assert.False(t, numeric.AngleLTE(1.0+1e-3, 1.0))
}
