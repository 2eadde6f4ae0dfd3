// SPDX-License-Identifier: MIT

package predicate

import (
	"fmt"

	"github.com/polyhedra/lssforge/halfspace"
	"github.com/polyhedra/lssforge/numeric"
)

// DefaultVariables is the variable alphabet used when Parse is called
// without an explicit alphabet: the 2D (x, y) case. Use Parse1D or pass an
// explicit alphabet via ParseWithVars for other dimensionalities.
var DefaultVariables = []string{"x", "y"}

// Parse parses a linear inequation such as "x + 2*y < 3" over the
// DefaultVariables alphabet (x, y) into a halfspace.Halfspace.
//
// `<` and `<=` are not distinguished: both produce a non-strict halfspace;
// `>` and `>=` parse as their flipped `<`/`<=` form. Rejected inputs
// (unknown identifiers, malformed numbers, non-linear terms, or
// inequations with no variable term at all, e.g. "23 < 2" or "x < x")
// return an error wrapping ErrParse.
func Parse(s string) (halfspace.Halfspace, error) {
	return ParseWithVars(s, DefaultVariables)
}

// Parse1D parses an inequation over the single-variable alphabet {x}.
func Parse1D(s string) (halfspace.Halfspace, error) {
	return ParseWithVars(s, []string{"x"})
}

// MustParse panics on error instead of returning one; intended for tests
// and examples where the input is a compile-time literal known to parse.
func MustParse(s string) halfspace.Halfspace {
	h, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return h
}

// ParseWithVars parses s over an explicit ordered variable alphabet; the
// resulting Halfspace's normal vector has one component per entry of vars,
// in order.
//
// Blueprint:
//
//	Stage 1 (Tokenize): regex-tokenize the input stream.
//	Stage 2 (Parse): precedence-climbing recursive descent into a
//	  comparison AST.
//	Stage 3 (Flatten): reduce both sides to coefficient-variable linear
//	  forms, summing duplicate variable occurrences.
//	Stage 4 (Normalize): combine into n·x <= o, validate every variable
//	  name against the alphabet, reject degenerate (variable-free)
//	  inequations, flip for > / >=, and normalize.
func ParseWithVars(s string, vars []string) (halfspace.Halfspace, error) {
	toks, err := tokenize(s)
	if err != nil {
		return halfspace.Halfspace{}, err
	}
	cmp, err := parseComparison(s, toks)
	if err != nil {
		return halfspace.Halfspace{}, err
	}

	lhs, err := flatten(cmp.lhs)
	if err != nil {
		return halfspace.Halfspace{}, err
	}
	rhs, err := flatten(cmp.rhs)
	if err != nil {
		return halfspace.Halfspace{}, err
	}

	// n·x + k <= 0 form: (lhs - rhs) <= 0.
	diff := lhs.add(rhs, -1)

	coeffs := make([]float64, len(vars))
	index := make(map[string]int, len(vars))
	for i, v := range vars {
		index[v] = i
	}
	anyNonZero := false
	for name, c := range diff.coeffs {
		i, ok := index[name]
		if !ok {
			return halfspace.Halfspace{}, fmt.Errorf("predicate: %q: %w %q: %w", s, ErrUnknownVariable, name, ErrParse)
		}
		coeffs[i] = c
		if !numeric.Zero(c) {
			anyNonZero = true
		}
	}
	if !anyNonZero {
		return halfspace.Halfspace{}, fmt.Errorf("predicate: %q: no variable term: %w", s, ErrParse)
	}

	// diff <= 0  =>  n·x <= -k
	offset := -diff.k
	n := numeric.NewVector(coeffs...)

	switch cmp.op {
	case tokLT, tokLTE:
		return halfspace.Normalize(n, offset), nil
	case tokGT, tokGTE:
		// a > b  <=>  -a < -b  <=>  flip the halfspace.
		return halfspace.Normalize(n.Negate(), -offset), nil
	default:
		return halfspace.Halfspace{}, fmt.Errorf("predicate: %q: unknown comparison operator: %w", s, ErrParse)
	}
}
