// SPDX-License-Identifier: MIT

package refinement

import (
	"fmt"

	"github.com/polyhedra/lssforge/abstraction"
	"github.com/polyhedra/lssforge/lss"
	"github.com/polyhedra/lssforge/numeric"
	"github.com/polyhedra/lssforge/polytope"
)

// Layered iterates a generator (PreR, optionally against a disturbance set
// shrunk by a fixed scaling factor) a configurable number of times,
// growing a sequence of nested target rings outward from the q-satisfying
// states. Each newly added band, intersected with the cell's unallocated
// remainder, is marked done; the innermost ring (the yes-states
// themselves) is never re-marked since it isn't part of any maybe-cell.
type Layered struct {
	opts []Option
}

// NewLayered builds a Layered refinery. Requires WithLayering among opts;
// Partition returns ErrValue if it is absent.
func NewLayered(opts ...Option) *Layered {
	return &Layered{opts: opts}
}

func (r *Layered) Partition(abs *abstraction.AbstractedLSS, state *abstraction.State, q int, analysis Analysis, rest *polytope.Union) (*polytope.Union, *polytope.Union, error) {
	cfg := newConfig(r.opts...)
	if cfg.layering == nil {
		return nil, nil, fmt.Errorf("refinement: Layered.Partition requires WithLayering: %w", ErrValue)
	}

	sys := abs.LSS()
	dim := state.Polytope().Dim()

	ring, err := statesUnion(abs, dim, analysis.Yes)
	if err != nil {
		return nil, nil, err
	}
	ring, err = maybeExpand(cfg, ring)
	if err != nil {
		return nil, nil, err
	}

	generatorSys := sys
	if cfg.layering.scaling != 1 {
		scaledW, err := scalePolytope(sys.W, cfg.layering.scaling)
		if err != nil {
			return nil, nil, err
		}
		generatorSys, err = lss.New(sys.A, sys.B, sys.X, scaledW, sys.U)
		if err != nil {
			return nil, nil, err
		}
	}

	empty, err := polytope.NewUnion(dim)
	if err != nil {
		return nil, nil, err
	}
	done := empty
	curRest := rest

	for i := 0; i < cfg.layering.max; i++ {
		if ring.IsEmpty() || curRest.IsEmpty() {
			break
		}
		grown, err := lss.PreR(generatorSys, sys.X, sys.U, ring)
		if err != nil {
			return nil, nil, err
		}
		band, err := grown.RemoveUnion(ring)
		if err != nil {
			return nil, nil, err
		}
		if band.IsEmpty() {
			break // the generator has converged; no further ring to add
		}
		bandInCell, err := intersectUnions(curRest, band)
		if err != nil {
			return nil, nil, err
		}
		if !bandInCell.IsEmpty() {
			done, err = unionConcat(done, bandInCell)
			if err != nil {
				return nil, nil, err
			}
			curRest, err = curRest.RemoveUnion(bandInCell)
			if err != nil {
				return nil, nil, err
			}
		}
		ring = grown
	}

	return done, curRest, nil
}

// scalePolytope returns p scaled by factor about the origin, via
// Apply(factor·I).
func scalePolytope(p polytope.Polytope, factor float64) (polytope.Polytope, error) {
	dim := p.Dim()
	data := make([]float64, dim*dim)
	for i := 0; i < dim; i++ {
		data[i*dim+i] = factor
	}
	m, err := numeric.NewMatrix(dim, dim, data)
	if err != nil {
		return nil, err
	}
	return p.Apply(m)
}
