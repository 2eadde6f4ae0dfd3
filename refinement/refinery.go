// SPDX-License-Identifier: MIT

package refinement

import (
	"fmt"

	"github.com/polyhedra/lssforge/abstraction"
	"github.com/polyhedra/lssforge/halfspace"
	"github.com/polyhedra/lssforge/numeric"
	"github.com/polyhedra/lssforge/polytope"
)

// Analysis is the external solver's verdict on one automaton state q: the
// abstraction state labels it has classified as satisfying (Yes) or
// non-satisfying (No) with respect to q. Labels absent from both lists are
// "maybe" under q.
type Analysis struct {
	Yes []int
	No  []int
}

// Refinery carves a "done" subregion out of rest, the unallocated part of
// state's own region, for one automaton state q. It must return pieces
// satisfying done ⊎ remainder = rest; either return value may be an empty
// Union, but not nil.
type Refinery interface {
	Partition(abs *abstraction.AbstractedLSS, state *abstraction.State, q int, analysis Analysis, rest *polytope.Union) (done, remainder *polytope.Union, err error)
}

// statesUnion collects the polytopes of the given state labels into a
// single Union, erroring if any label has been refined away.
func statesUnion(abs *abstraction.AbstractedLSS, dim int, labels []int) (*polytope.Union, error) {
	var pieces []polytope.Polytope
	for _, l := range labels {
		s := abs.State(l)
		if s == nil {
			return nil, fmt.Errorf("refinement: state label %d: %w", l, ErrValue)
		}
		pieces = append(pieces, s.Polytope())
	}
	return polytope.NewUnion(dim, pieces...)
}

// intersectUnions returns a ∩ b, piecewise, disjunctified by NewUnion.
func intersectUnions(a, b *polytope.Union) (*polytope.Union, error) {
	var pieces []polytope.Polytope
	for _, pa := range a.Pieces() {
		for _, pb := range b.Pieces() {
			r, err := pa.Intersect(pb)
			if err != nil {
				return nil, err
			}
			if !r.IsEmpty() {
				pieces = append(pieces, r)
			}
		}
	}
	return polytope.NewUnion(a.Dim(), pieces...)
}

// hyperCube builds the axis-aligned box [-r, r]^dim as a Polytope, used by
// WithExpandTarget to dilate a target union by a small fixed buffer before
// computing an operator region against it. Scoped to dim 1 or 2, matching
// the polytope package's own interval/polygon coverage.
func hyperCube(dim int, r float64) (polytope.Polytope, error) {
	hs := make([]halfspace.Halfspace, 0, 2*dim)
	for i := 0; i < dim; i++ {
		pos := make([]float64, dim)
		pos[i] = 1
		hs = append(hs, halfspace.Normalize(numeric.NewVector(pos...), r))
		neg := make([]float64, dim)
		neg[i] = -1
		hs = append(hs, halfspace.Normalize(numeric.NewVector(neg...), r))
	}
	return polytope.Intersection(hs)
}

// expandRadius is the fixed dilation WithExpandTarget applies. Larger than
// τ by several orders of magnitude so it closes real floating-point
// boundary gaps without merging genuinely distinct nearby targets.
const expandRadius = 1e3 * numeric.Epsilon

// maybeExpand dilates u by expandRadius when cfg.expandTarget is set,
// otherwise returns u unchanged.
func maybeExpand(cfg *config, u *polytope.Union) (*polytope.Union, error) {
	if !cfg.expandTarget || u.IsEmpty() {
		return u, nil
	}
	ball, err := hyperCube(u.Dim(), expandRadius)
	if err != nil {
		return nil, err
	}
	return u.Minkowski(ball)
}

// Run composes a list of Refineries over a state, sweeping the automaton
// states in qs in order: for each q, every refinery in
// turn consumes the previous one's remainder and contributes its done
// region; the final remainder after all refineries for q is re-absorbed
// as the rest fed into q's successor, so a part left undone under q
// remains subject to refinement under later q's. Whatever survives after
// the last q becomes the final maybe-remainder. The returned slice is the
// per-state partition ready to hand to AbstractedLSS.Refine (after
// accounting for every other state being refined in the same pass).
func Run(abs *abstraction.AbstractedLSS, state *abstraction.State, qs []int, analyses map[int]Analysis, refineries []Refinery, opts ...Option) ([]polytope.Polytope, error) {
	cfg := newConfig(opts...)

	dim := state.Polytope().Dim()
	rest, err := polytope.NewUnion(dim, state.Polytope())
	if err != nil {
		return nil, err
	}

	var pieces []polytope.Polytope
	for _, q := range qs {
		analysis := analyses[q]
		for _, r := range refineries {
			if rest.IsEmpty() {
				break
			}
			done, remainder, err := r.Partition(abs, state, q, analysis, rest)
			if err != nil {
				return nil, err
			}
			if done == nil || remainder == nil {
				return nil, fmt.Errorf("refinement: Refinery returned a nil Union: %w", ErrValue)
			}
			if cfg.dontRefineSmall && !done.IsEmpty() && done.Volume() < smallVolumeThreshold {
				remainder, err = unionConcat(remainder, done)
				if err != nil {
					return nil, err
				}
				done, err = polytope.NewUnion(dim)
				if err != nil {
					return nil, err
				}
			}
			if !done.IsEmpty() {
				pieces = append(pieces, done.Pieces()...)
			}
			rest = remainder
		}
	}
	if !rest.IsEmpty() {
		pieces = append(pieces, rest.Pieces()...)
	}

	tolerance := numeric.Epsilon
	if cfg.postProcessing == PostSuppress {
		var dropped int
		pieces, dropped = suppressSmall(pieces)
		// Each suppressed sliver forfeits at most smallVolumeThreshold of
		// coverage by construction; widen the contract check accordingly
		// instead of silently accepting an unbounded gap.
		tolerance += float64(dropped) * smallVolumeThreshold
	}

	if err := checkCovers(state.Polytope(), pieces, tolerance); err != nil {
		return nil, err
	}
	return pieces, nil
}

// unionConcat merges two Unions' pieces into one; NewUnion disjunctifies
// the combined list (the caller's inputs are normally already disjoint,
// e.g. a remainder and a done-but-too-small piece being folded back
// together).
func unionConcat(a, b *polytope.Union) (*polytope.Union, error) {
	pieces := append(append([]polytope.Polytope{}, a.Pieces()...), b.Pieces()...)
	return polytope.NewUnion(a.Dim(), pieces...)
}

// suppressSmall drops any piece smaller than smallVolumeThreshold, always
// keeping at least one piece (the largest) so a state is never refined
// into nothing. Returns the surviving pieces and how many were dropped.
func suppressSmall(pieces []polytope.Polytope) ([]polytope.Polytope, int) {
	if len(pieces) <= 1 {
		return pieces, 0
	}
	largest := 0
	for i, p := range pieces {
		if p.Volume() > pieces[largest].Volume() {
			largest = i
		}
	}
	out := make([]polytope.Polytope, 0, len(pieces))
	dropped := 0
	for i, p := range pieces {
		if i != largest && p.Volume() < smallVolumeThreshold {
			dropped++
			continue
		}
		out = append(out, p)
	}
	return out, dropped
}

// checkCovers verifies the composed pieces' total volume is not below the
// state polytope's own volume by more than the given tolerance, catching a
// Refinery that lost part of rest; a total above the state's volume is
// not reported.
func checkCovers(whole polytope.Polytope, pieces []polytope.Polytope, tolerance float64) error {
	var total float64
	for _, p := range pieces {
		total += p.Volume()
	}
	if total < whole.Volume()-tolerance {
		return fmt.Errorf("refinement: composed partition covers %.9g of %.9g: %w", total, whole.Volume(), ErrPartitionNotCovering)
	}
	return nil
}
