// SPDX-License-Identifier: MIT

package predicate_test

import (
	"testing"

	"github.com/polyhedra/lssforge/halfspace"
	"github.com/polyhedra/lssforge/numeric"
	"github.com/polyhedra/lssforge/predicate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	h, err := predicate.Parse("x + 2y < 1")
	require.NoError(t, err)

	want := halfspace.Normalize(numeric.NewVector(1, 2), 1)
	assert.True(t, h.Equal(want), "got %s want %s", h, want)
}

func TestParseExplicitStar(t *testing.T) {
	h, err := predicate.Parse("x + 2*y < 1")
	require.NoError(t, err)
	want := halfspace.Normalize(numeric.NewVector(1, 2), 1)
	assert.True(t, h.Equal(want))
}

func TestParseGreaterThanFlips(t *testing.T) {
	h, err := predicate.Parse("x > 2")
	require.NoError(t, err)
	// x > 2  <=>  -x < -2
	want := halfspace.Normalize(numeric.NewVector(-1, 0), -2)
	assert.True(t, h.Equal(want))
}

func TestParseRejectsConstantOnly(t *testing.T) {
	_, err := predicate.Parse("23 < 2")
	assert.ErrorIs(t, err, predicate.ErrParse)
}

func TestParseRejectsTautology(t *testing.T) {
	_, err := predicate.Parse("x < x")
	assert.ErrorIs(t, err, predicate.ErrParse)
}

func TestParseRejectsMalformedNumber(t *testing.T) {
	_, err := predicate.Parse("1.x < 5")
	assert.ErrorIs(t, err, predicate.ErrParse)
}

func TestParseRejectsUnknownVariable(t *testing.T) {
	_, err := predicate.Parse("z < 5")
	assert.ErrorIs(t, err, predicate.ErrUnknownVariable)
}

func TestParse1D(t *testing.T) {
	h, err := predicate.Parse1D("x <= 3")
	require.NoError(t, err)
	assert.Equal(t, 1, h.Dim())
	assert.True(t, h.Contains(numeric.NewVector(3)))
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { predicate.MustParse("23 < 2") })
}
