// SPDX-License-Identifier: MIT

package polytope_test

import (
	"testing"

	"github.com/polyhedra/lssforge/halfspace"
	"github.com/polyhedra/lssforge/numeric"
	"github.com/polyhedra/lssforge/polytope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitSquareHalfspaces() []halfspace.Halfspace {
	return []halfspace.Halfspace{
		halfspace.Normalize(numeric.NewVector(1, 0), 1),  // x <= 1
		halfspace.Normalize(numeric.NewVector(-1, 0), 0), // x >= 0
		halfspace.Normalize(numeric.NewVector(0, 1), 1),  // y <= 1
		halfspace.Normalize(numeric.NewVector(0, -1), 0), // y >= 0
	}
}

func TestIntervalHullAndContains(t *testing.T) {
	p, err := polytope.Hull([]numeric.Vector{
		numeric.NewVector(3), numeric.NewVector(-1), numeric.NewVector(1),
	})
	require.NoError(t, err)
	assert.False(t, p.IsEmpty())
	assert.InDelta(t, 4.0, p.Volume(), numeric.Epsilon)
	assert.True(t, p.Contains(numeric.NewVector(0)))
	assert.False(t, p.Contains(numeric.NewVector(4)))
}

func TestIntervalIntersectionEmpty(t *testing.T) {
	p, err := polytope.Intersection([]halfspace.Halfspace{
		halfspace.Normalize(numeric.NewVector(1), 1),  // x <= 1
		halfspace.Normalize(numeric.NewVector(-1), -2), // x >= 2 -- disjoint
	})
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())
}

func TestIntervalUnbounded(t *testing.T) {
	p, err := polytope.Intersection([]halfspace.Halfspace{
		halfspace.Normalize(numeric.NewVector(1), 1), // x <= 1, no lower bound
	})
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())
}

func TestPolygonHullSquare(t *testing.T) {
	p, err := polytope.Hull([]numeric.Vector{
		numeric.NewVector(0, 0), numeric.NewVector(1, 0),
		numeric.NewVector(1, 1), numeric.NewVector(0, 1),
		numeric.NewVector(0.5, 0.5), // interior point: must not survive the hull
	})
	require.NoError(t, err)
	require.False(t, p.IsEmpty())
	assert.InDelta(t, 1.0, p.Volume(), 1e-9)
	verts, err := p.Vertices()
	require.NoError(t, err)
	assert.Len(t, verts, 4)
}

func TestPolygonFromHalfspacesIsUnitSquare(t *testing.T) {
	p, err := polytope.Intersection(unitSquareHalfspaces())
	require.NoError(t, err)
	require.False(t, p.IsEmpty())
	assert.InDelta(t, 1.0, p.Volume(), 1e-9)
	c := p.Centroid()
	assert.InDelta(t, 0.5, c.At(0), 1e-6)
	assert.InDelta(t, 0.5, c.At(1), 1e-6)
}

func TestPolygonInfeasible(t *testing.T) {
	hs := unitSquareHalfspaces()
	hs = append(hs, halfspace.Normalize(numeric.NewVector(1, 0), -1)) // x <= -1
	p, err := polytope.Intersection(hs)
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())
}

func TestPolygonUnbounded(t *testing.T) {
	p, err := polytope.Intersection([]halfspace.Halfspace{
		halfspace.Normalize(numeric.NewVector(1, 0), 1), // only x <= 1
	})
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())
}

func TestPolygonContainsAndBoundingBox(t *testing.T) {
	p, err := polytope.Intersection(unitSquareHalfspaces())
	require.NoError(t, err)
	assert.True(t, p.Contains(numeric.NewVector(0.5, 0.5)))
	assert.False(t, p.Contains(numeric.NewVector(2, 2)))

	bb := p.BoundingBox()
	assert.InDelta(t, 1.0, bb.Volume(), 1e-9)
}

func TestPolygonTranslateAndInvert(t *testing.T) {
	p, err := polytope.Intersection(unitSquareHalfspaces())
	require.NoError(t, err)

	shifted, err := p.Translate(numeric.NewVector(2, 0))
	require.NoError(t, err)
	assert.True(t, shifted.Contains(numeric.NewVector(2.5, 0.5)))
	assert.False(t, shifted.Contains(numeric.NewVector(0.5, 0.5)))

	inv := p.Invert()
	assert.True(t, inv.Contains(numeric.NewVector(-0.5, -0.5)))
}

func TestPolygonIntersectTwoSquares(t *testing.T) {
	unit, err := polytope.Intersection(unitSquareHalfspaces())
	require.NoError(t, err)

	shifted, err := unit.Translate(numeric.NewVector(0.5, 0.5))
	require.NoError(t, err)

	inter, err := unit.Intersect(shifted)
	require.NoError(t, err)
	require.False(t, inter.IsEmpty())
	assert.InDelta(t, 0.25, inter.Volume(), 1e-9)
}

func TestPolygonMinkowskiAndPontryaginRoundTrip(t *testing.T) {
	unit, err := polytope.Intersection(unitSquareHalfspaces())
	require.NoError(t, err)

	small, err := polytope.Intersection([]halfspace.Halfspace{
		halfspace.Normalize(numeric.NewVector(1, 0), 0.1),
		halfspace.Normalize(numeric.NewVector(-1, 0), 0.1),
		halfspace.Normalize(numeric.NewVector(0, 1), 0.1),
		halfspace.Normalize(numeric.NewVector(0, -1), 0.1),
	})
	require.NoError(t, err)

	grown, err := unit.Minkowski(small)
	require.NoError(t, err)
	assert.InDelta(t, 1.44, grown.Volume(), 1e-6) // (1.2)^2

	shrunk, err := grown.Pontryagin(small)
	require.NoError(t, err)
	assert.True(t, shrunk.IsSameAs(unit))
}

func TestPolygonIsSameAsRotation(t *testing.T) {
	square, err := polytope.Hull([]numeric.Vector{
		numeric.NewVector(0, 0), numeric.NewVector(1, 0),
		numeric.NewVector(1, 1), numeric.NewVector(0, 1),
	})
	require.NoError(t, err)
	rotatedOrder, err := polytope.Hull([]numeric.Vector{
		numeric.NewVector(1, 1), numeric.NewVector(0, 1),
		numeric.NewVector(0, 0), numeric.NewVector(1, 0),
	})
	require.NoError(t, err)
	assert.True(t, square.IsSameAs(rotatedOrder))
}

func TestPolygonSplitByHalfspace(t *testing.T) {
	unit, err := polytope.Intersection(unitSquareHalfspaces())
	require.NoError(t, err)

	vertical := halfspace.Normalize(numeric.NewVector(1, 0), 0.5) // x <= 0.5
	pieces, err := unit.Split([]halfspace.Halfspace{vertical})
	require.NoError(t, err)
	require.Len(t, pieces, 2)
	total := pieces[0].Volume() + pieces[1].Volume()
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestPolygonRemoveSubregion(t *testing.T) {
	unit, err := polytope.Intersection(unitSquareHalfspaces())
	require.NoError(t, err)

	quarter, err := polytope.Intersection([]halfspace.Halfspace{
		halfspace.Normalize(numeric.NewVector(1, 0), 0.5),
		halfspace.Normalize(numeric.NewVector(-1, 0), 0),
		halfspace.Normalize(numeric.NewVector(0, 1), 0.5),
		halfspace.Normalize(numeric.NewVector(0, -1), 0),
	})
	require.NoError(t, err)

	remainder, err := unit.Remove([]polytope.Polytope{quarter})
	require.NoError(t, err)
	var total float64
	for _, r := range remainder {
		total += r.Volume()
	}
	assert.InDelta(t, 0.75, total, 1e-9)
}

func TestEmptyPolytopeAbsorbs(t *testing.T) {
	empty := polytope.Empty(2)
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 0.0, empty.Volume())

	unit, err := polytope.Intersection(unitSquareHalfspaces())
	require.NoError(t, err)
	inter, err := unit.Intersect(empty)
	require.NoError(t, err)
	assert.True(t, inter.IsEmpty())
}
