// SPDX-License-Identifier: MIT

package snapshot

// MatrixRecord is the wire form of a numeric.Matrix: row-major data with
// explicit shape, since JSON arrays alone can't distinguish a 1x4 from a
// 2x2 matrix.
type MatrixRecord struct {
	Rows int       `json:"rows"`
	Cols int       `json:"cols"`
	Data []float64 `json:"data"`
}

// HalfspaceRecord is the wire form of a halfspace.Halfspace: n·x <= o.
type HalfspaceRecord struct {
	Normal []float64 `json:"normal"`
	Offset float64   `json:"offset"`
}

// PolytopeRecord is the `{ dim, vertices?, halfspaces? }` wire shape for a
// polytope.Polytope. FromAbstractedLSS computes both forms and populates
// each one that resolves without error; at least one is populated.
type PolytopeRecord struct {
	Dim        int               `json:"dim"`
	Vertices   [][]float64       `json:"vertices,omitempty"`
	Halfspaces []HalfspaceRecord `json:"halfspaces,omitempty"`
}

// LSSRecord is the wire form of an lss.LSS. ControlSpace is a list of
// pieces (U is a Union, not a single Polytope).
type LSSRecord struct {
	A            MatrixRecord     `json:"A"`
	B            MatrixRecord     `json:"B"`
	StateSpace   PolytopeRecord   `json:"stateSpace"`
	RandomSpace  PolytopeRecord   `json:"randomSpace"`
	ControlSpace []PolytopeRecord `json:"controlSpace"`
}

// StateRecord is the wire form of one abstraction.State.
type StateRecord struct {
	Label      int            `json:"label"`
	Polytope   PolytopeRecord `json:"polytope"`
	Predicates []string       `json:"predicates"`
	Kind       int            `json:"kind"`
}

// SupportRecord is the wire form of one abstraction.ActionSupport.
type SupportRecord struct {
	Targets []int            `json:"targets"`
	Origins []PolytopeRecord `json:"origins"`
}

// ActionRecord is the wire form of one abstraction.Action.
type ActionRecord struct {
	Targets  []int            `json:"targets"`
	Controls []PolytopeRecord `json:"controls"`
	Supports []SupportRecord  `json:"supports"`
}

// Document is the top-level snapshot. Actions is nil (encodes as JSON
// null) until WithActions populates it: action/
// support geometry is the most expensive part of a snapshot to compute,
// so producing it is an explicit second step rather than bundled into
// every FromAbstractedLSS call.
type Document struct {
	LSS        LSSRecord                  `json:"lss"`
	Predicates map[string]HalfspaceRecord `json:"predicates"`
	States     []StateRecord              `json:"states"`
	Actions    map[int][]ActionRecord     `json:"actions"`
	LabelNum   int                        `json:"labelNum"`
}
