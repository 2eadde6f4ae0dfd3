// SPDX-License-Identifier: MIT

package snapshot

import (
	"sort"

	"github.com/polyhedra/lssforge/abstraction"
	"github.com/polyhedra/lssforge/halfspace"
	"github.com/polyhedra/lssforge/lss"
	"github.com/polyhedra/lssforge/numeric"
	"github.com/polyhedra/lssforge/polytope"
)

func matrixToRecord(m numeric.Matrix) MatrixRecord {
	rows, cols := m.Rows(), m.Cols()
	data := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data = append(data, m.At(i, j))
		}
	}
	return MatrixRecord{Rows: rows, Cols: cols, Data: data}
}

func halfspaceToRecord(h halfspace.Halfspace) HalfspaceRecord {
	n := h.Normal()
	comps := make([]float64, n.Dim())
	for i := range comps {
		comps[i] = n.At(i)
	}
	return HalfspaceRecord{Normal: comps, Offset: h.Offset()}
}

// polytopeToRecord serializes p's dual representation best-effort: both
// forms when both resolve, either alone when only one does. At least one
// must be present, or p isn't a well-formed Polytope.
func polytopeToRecord(p polytope.Polytope) (PolytopeRecord, error) {
	rec := PolytopeRecord{Dim: p.Dim()}

	verts, vErr := p.Vertices()
	if vErr == nil {
		rec.Vertices = make([][]float64, len(verts))
		for i, v := range verts {
			row := make([]float64, v.Dim())
			for j := range row {
				row[j] = v.At(j)
			}
			rec.Vertices[i] = row
		}
	}

	hs, hErr := p.Halfspaces()
	if hErr == nil {
		rec.Halfspaces = make([]HalfspaceRecord, len(hs))
		for i, h := range hs {
			rec.Halfspaces[i] = halfspaceToRecord(h)
		}
	}

	if vErr != nil && hErr != nil {
		return PolytopeRecord{}, vErr
	}
	return rec, nil
}

func unionToRecords(u *polytope.Union) ([]PolytopeRecord, error) {
	pieces := u.Pieces()
	out := make([]PolytopeRecord, 0, len(pieces))
	for _, p := range pieces {
		rec, err := polytopeToRecord(p)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func lssToRecord(sys *lss.LSS) (LSSRecord, error) {
	stateSpace, err := polytopeToRecord(sys.X)
	if err != nil {
		return LSSRecord{}, err
	}
	randomSpace, err := polytopeToRecord(sys.W)
	if err != nil {
		return LSSRecord{}, err
	}
	controlSpace, err := unionToRecords(sys.U)
	if err != nil {
		return LSSRecord{}, err
	}
	return LSSRecord{
		A:            matrixToRecord(sys.A),
		B:            matrixToRecord(sys.B),
		StateSpace:   stateSpace,
		RandomSpace:  randomSpace,
		ControlSpace: controlSpace,
	}, nil
}

// FromAbstractedLSS transforms abs into a Document: the LSS, the
// predicate registry, and every current state's label/polytope/
// predicates/kind. Actions is left nil (JSON null); call WithActions to
// populate it.
func FromAbstractedLSS(abs *abstraction.AbstractedLSS) (Document, error) {
	lssRec, err := lssToRecord(abs.LSS())
	if err != nil {
		return Document{}, err
	}

	preds := abs.Predicates()
	predRec := make(map[string]HalfspaceRecord, len(preds))
	for label, h := range preds {
		predRec[label] = halfspaceToRecord(h)
	}

	states := abs.States()
	stateRecs := make([]StateRecord, 0, len(states))
	for _, s := range states {
		polyRec, err := polytopeToRecord(s.Polytope())
		if err != nil {
			return Document{}, err
		}
		stateRecs = append(stateRecs, StateRecord{
			Label:      s.Label(),
			Polytope:   polyRec,
			Predicates: sortedStrings(s.PredicateLabels()),
			Kind:       int(s.Kind()),
		})
	}

	return Document{
		LSS:        lssRec,
		Predicates: predRec,
		States:     stateRecs,
		Actions:    nil,
		LabelNum:   abs.LabelNum(),
	}, nil
}

// WithActions returns a copy of doc with Actions populated by computing
// every non-OUTER state's Action/ActionSupport geometry from abs. abs
// must be the same AbstractedLSS doc was built from (or one with
// identical live labels); this does not mutate abs beyond its ordinary
// lazy action-cache memoization.
func WithActions(doc Document, abs *abstraction.AbstractedLSS) (Document, error) {
	actions := make(map[int][]ActionRecord, len(doc.States))
	for _, st := range doc.States {
		if st.Kind == int(abstraction.Outer) {
			continue
		}
		s := abs.State(st.Label)
		if s == nil {
			return Document{}, ErrValue
		}
		stateActions, err := s.Actions()
		if err != nil {
			return Document{}, err
		}
		recs := make([]ActionRecord, 0, len(stateActions))
		for _, a := range stateActions {
			controls, err := unionToRecords(a.Controls())
			if err != nil {
				return Document{}, err
			}
			supports, err := a.Supports()
			if err != nil {
				return Document{}, err
			}
			supRecs := make([]SupportRecord, 0, len(supports))
			for _, sup := range supports {
				origins, err := unionToRecords(sup.Origin())
				if err != nil {
					return Document{}, err
				}
				supRecs = append(supRecs, SupportRecord{Targets: sup.Targets(), Origins: origins})
			}
			recs = append(recs, ActionRecord{Targets: a.Targets(), Controls: controls, Supports: supRecs})
		}
		actions[st.Label] = recs
	}
	doc.Actions = actions
	return doc, nil
}

func sortedStrings(ss []string) []string {
	out := append([]string{}, ss...)
	sort.Strings(out)
	return out
}
