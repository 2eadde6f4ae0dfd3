// SPDX-License-Identifier: MIT

package halfspace

import (
	"fmt"
	"math"

	"github.com/polyhedra/lssforge/numeric"
)

// Halfspace is the oriented set {x : n·x <= o}, with n normalized to unit
// L2 norm. It is immutable: every transform returns a fresh value.
//
// Sentinels:
//   - Offset == +Inf denotes the trivial halfspace (all of R^d).
//   - Offset == -Inf denotes the infeasible halfspace (empty set).
type Halfspace struct {
	normal numeric.Vector
	offset float64
}

// Normalize builds a Halfspace from a raw normal and offset, normalizing n
// to unit length.
//
// Blueprint:
//
//	Stage 1 (Degenerate normal): if ||n|| < Epsilon, the normal carries no
//	  directional information; the halfspace can only be trivial (o>=0,
//	  "no constraint") or infeasible (o<0, "unsatisfiable constraint"). The
//	  sign of the *original* offset decides which, and we encode the answer
//	  as a signed infinity so that every later comparison ("is this
//	  trivial?", "is this infeasible?") is a simple Offset check.
//	Stage 2 (Normal case): divide n and o by ||n||.
func Normalize(n numeric.Vector, o float64) Halfspace {
	norm := n.Norm()
	if numeric.Zero(norm) {
		if o >= 0 {
			return Halfspace{normal: numeric.Zeros(n.Dim()), offset: math.Inf(1)}
		}
		return Halfspace{normal: numeric.Zeros(n.Dim()), offset: math.Inf(-1)}
	}
	return Halfspace{normal: n.Scale(1 / norm), offset: o / norm}
}

// Trivial returns the halfspace containing all of R^d.
func Trivial(dim int) Halfspace {
	return Halfspace{normal: numeric.Zeros(dim), offset: math.Inf(1)}
}

// Infeasible returns the empty halfspace.
func Infeasible(dim int) Halfspace {
	return Halfspace{normal: numeric.Zeros(dim), offset: math.Inf(-1)}
}

// Dim reports the ambient dimension.
func (h Halfspace) Dim() int { return h.normal.Dim() }

// Normal returns the (unit-norm, possibly zero if trivial/infeasible)
// normal vector.
func (h Halfspace) Normal() numeric.Vector { return h.normal }

// Offset returns o (possibly ±Inf).
func (h Halfspace) Offset() float64 { return h.offset }

// IsTrivial reports whether this halfspace is the entire ambient space.
func (h Halfspace) IsTrivial() bool { return math.IsInf(h.offset, 1) }

// IsInfeasible reports whether this halfspace is empty.
func (h Halfspace) IsInfeasible() bool { return math.IsInf(h.offset, -1) }

// Flip returns a fresh halfspace with negated normal and offset: the
// complement boundary-inclusive halfspace.
func (h Halfspace) Flip() Halfspace {
	if h.IsTrivial() {
		return Infeasible(h.Dim())
	}
	if h.IsInfeasible() {
		return Trivial(h.Dim())
	}
	return Halfspace{normal: h.normal.Negate(), offset: -h.offset}
}

// Contains reports whether n·p - o < Epsilon, i.e. p lies in the (closed,
// tolerance-fuzzed) halfspace.
func (h Halfspace) Contains(p numeric.Vector) bool {
	if h.IsTrivial() {
		return true
	}
	if h.IsInfeasible() {
		return false
	}
	dot, err := h.normal.Dot(p)
	if err != nil {
		return false
	}
	return dot-h.offset < numeric.Epsilon
}

// Translate returns the halfspace shifted by v: the offset becomes o + n·v
// with the normal unchanged, i.e. {x : n·x <= o} translated by v is
// {x : n·(x-v) <= o} = {x : n·x <= o+n·v}.
func (h Halfspace) Translate(v numeric.Vector) (Halfspace, error) {
	if h.IsTrivial() || h.IsInfeasible() {
		return h, nil
	}
	if v.Dim() != h.Dim() {
		return Halfspace{}, fmt.Errorf("Halfspace.Translate: dim %d != %d: %w", v.Dim(), h.Dim(), ErrDimensionMismatch)
	}
	dot, _ := h.normal.Dot(v)
	return Halfspace{normal: h.normal, offset: h.offset + dot}, nil
}

// ApplyRight returns the halfspace obtained by right-multiplying the normal
// by M: the new normal is n·M, i.e. Mᵀ·n (which may change dimension from
// M.Rows() to M.Cols(), e.g. pulling state space back into control space
// via B), renormalized. The offset is unchanged before renormalization.
//
// The result describes {x : (Mᵀ·n)·x <= o} = {x : M·x ∈ h}, the standard
// halfspace pullback under M; for invertible M this equals mapping h
// forward by M⁻¹.
func (h Halfspace) ApplyRight(m numeric.Matrix) (Halfspace, error) {
	if h.IsTrivial() {
		return Trivial(m.Cols()), nil
	}
	if h.IsInfeasible() {
		return Infeasible(m.Cols()), nil
	}
	if m.Rows() != h.Dim() {
		return Halfspace{}, fmt.Errorf("Halfspace.ApplyRight: rows %d != dim %d: %w", m.Rows(), h.Dim(), ErrDimensionMismatch)
	}
	newNormal, err := m.Transpose().MulVec(h.normal)
	if err != nil {
		return Halfspace{}, fmt.Errorf("Halfspace.ApplyRight: %w", err)
	}
	return Normalize(newNormal, h.offset), nil
}

// Equal reports approximate equality: close normals and close offsets (with
// the usual ±Inf sentinels matching exactly).
func (h Halfspace) Equal(o Halfspace) bool {
	if h.IsTrivial() != o.IsTrivial() || h.IsInfeasible() != o.IsInfeasible() {
		return false
	}
	if h.IsTrivial() || h.IsInfeasible() {
		return true
	}
	return h.normal.ApproxEqual(o.normal) && numeric.Equal(h.offset, o.offset)
}

// String renders the halfspace for debugging.
func (h Halfspace) String() string {
	if h.IsTrivial() {
		return "Halfspace(trivial)"
	}
	if h.IsInfeasible() {
		return "Halfspace(infeasible)"
	}
	return fmt.Sprintf("Halfspace(n=%s, o=%.6g)", h.normal, h.offset)
}

// Angle returns the counterclockwise angle (radians, in [0, 2π)) of the
// normal measured from the reference direction (-1, 0). Only meaningful for
// 2D halfspaces; used to build the canonical H-form ordering in polytope.
//
// Complexity: O(1).
func (h Halfspace) Angle() float64 {
	ref := math.Atan2(0, -1) // reference direction (-1,0) -> angle π
	a := math.Atan2(h.normal.At(1), h.normal.At(0))
	d := a - ref
	for d < 0 {
		d += 2 * math.Pi
	}
	for d >= 2*math.Pi {
		d -= 2 * math.Pi
	}
	return d
}
