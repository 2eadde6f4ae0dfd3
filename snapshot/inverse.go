// SPDX-License-Identifier: MIT

package snapshot

import (
	"fmt"
	"sort"

	"github.com/polyhedra/lssforge/halfspace"
	"github.com/polyhedra/lssforge/lss"
	"github.com/polyhedra/lssforge/numeric"
	"github.com/polyhedra/lssforge/polytope"
)

func recordToMatrix(r MatrixRecord) (numeric.Matrix, error) {
	return numeric.NewMatrix(r.Rows, r.Cols, r.Data)
}

func recordToHalfspace(r HalfspaceRecord) halfspace.Halfspace {
	return halfspace.Normalize(numeric.NewVector(r.Normal...), r.Offset)
}

// recordToPolytope prefers the halfspace form when present (Intersection
// is exact for an H-form description); falls back to the vertex form via
// Hull otherwise. Returns ErrValue if neither is present.
func recordToPolytope(r PolytopeRecord) (polytope.Polytope, error) {
	if len(r.Halfspaces) > 0 {
		hs := make([]halfspace.Halfspace, len(r.Halfspaces))
		for i, h := range r.Halfspaces {
			hs[i] = recordToHalfspace(h)
		}
		return polytope.Intersection(hs)
	}
	if len(r.Vertices) > 0 {
		verts := make([]numeric.Vector, len(r.Vertices))
		for i, v := range r.Vertices {
			verts[i] = numeric.NewVector(v...)
		}
		return polytope.Hull(verts)
	}
	return nil, fmt.Errorf("snapshot: polytope record has neither vertices nor halfspaces: %w", ErrValue)
}

func recordsToUnion(dim int, recs []PolytopeRecord) (*polytope.Union, error) {
	pieces := make([]polytope.Polytope, 0, len(recs))
	for _, r := range recs {
		p, err := recordToPolytope(r)
		if err != nil {
			return nil, err
		}
		pieces = append(pieces, p)
	}
	return polytope.NewUnion(dim, pieces...)
}

// ToLSS reconstructs an *lss.LSS from a Document's LSS record, used to
// recover constructor arguments for abstraction.New. It never touches an
// AbstractedLSS; the Document is the only input.
func ToLSS(doc Document) (*lss.LSS, error) {
	a, err := recordToMatrix(doc.LSS.A)
	if err != nil {
		return nil, err
	}
	b, err := recordToMatrix(doc.LSS.B)
	if err != nil {
		return nil, err
	}
	x, err := recordToPolytope(doc.LSS.StateSpace)
	if err != nil {
		return nil, err
	}
	w, err := recordToPolytope(doc.LSS.RandomSpace)
	if err != nil {
		return nil, err
	}
	u, err := recordsToUnion(b.Cols(), doc.LSS.ControlSpace)
	if err != nil {
		return nil, err
	}
	return lss.New(a, b, x, w, u)
}

// ToPredicates reconstructs the predicate halfspaces and their labels
// from a Document, in label-sorted order — suitable for passing directly
// as abstraction.New's predicates/labels arguments.
func ToPredicates(doc Document) ([]halfspace.Halfspace, []string) {
	labels := make([]string, 0, len(doc.Predicates))
	for label := range doc.Predicates {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	hs := make([]halfspace.Halfspace, len(labels))
	for i, label := range labels {
		hs[i] = recordToHalfspace(doc.Predicates[label])
	}
	return hs, labels
}
