// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Vector is a finite ordered sequence of reals of fixed dimension, backed by
// gonum's dense vector storage. Vectors are small in this codebase (dim 1 or
// 2) but the type itself is dimension-agnostic; dimension checks live at the
// call sites that know the intended dimensionality (halfspace, polytope).
type Vector struct {
	v *mat.VecDense
}

// NewVector builds a Vector from explicit components.
// Complexity: O(len(components)).
func NewVector(components ...float64) Vector {
	cp := make([]float64, len(components))
	copy(cp, components)
	return Vector{v: mat.NewVecDense(len(cp), cp)}
}

// Zeros returns the zero vector of dimension dim.
func Zeros(dim int) Vector {
	return Vector{v: mat.NewVecDense(dim, make([]float64, dim))}
}

// Dim reports the vector's dimension.
func (a Vector) Dim() int {
	if a.v == nil {
		return 0
	}
	return a.v.Len()
}

// At returns the i-th component.
func (a Vector) At(i int) float64 {
	return a.v.AtVec(i)
}

// Slice materializes the vector as a plain []float64 (copy).
func (a Vector) Slice() []float64 {
	out := make([]float64, a.Dim())
	for i := range out {
		out[i] = a.At(i)
	}
	return out
}

// Add returns a+b, or ErrDimensionMismatch when dimensions differ —
// dimension mismatches are always caller data errors, never programmer
// errors, so they're returned rather than panicked.
func (a Vector) Add(b Vector) (Vector, error) {
	if a.Dim() != b.Dim() {
		return Vector{}, fmt.Errorf("Vector.Add: %d != %d: %w", a.Dim(), b.Dim(), ErrDimensionMismatch)
	}
	out := mat.NewVecDense(a.Dim(), nil)
	out.AddVec(a.v, b.v)
	return Vector{v: out}, nil
}

// Sub returns a-b.
func (a Vector) Sub(b Vector) (Vector, error) {
	if a.Dim() != b.Dim() {
		return Vector{}, fmt.Errorf("Vector.Sub: %d != %d: %w", a.Dim(), b.Dim(), ErrDimensionMismatch)
	}
	out := mat.NewVecDense(a.Dim(), nil)
	out.SubVec(a.v, b.v)
	return Vector{v: out}, nil
}

// Scale returns c*a.
func (a Vector) Scale(c float64) Vector {
	out := mat.NewVecDense(a.Dim(), nil)
	out.ScaleVec(c, a.v)
	return Vector{v: out}
}

// Negate returns -a.
func (a Vector) Negate() Vector {
	return a.Scale(-1)
}

// Dot returns a·b.
func (a Vector) Dot(b Vector) (float64, error) {
	if a.Dim() != b.Dim() {
		return 0, fmt.Errorf("Vector.Dot: %d != %d: %w", a.Dim(), b.Dim(), ErrDimensionMismatch)
	}
	return mat.Dot(a.v, b.v), nil
}

// Norm returns the Euclidean (L2) norm of a.
func (a Vector) Norm() float64 {
	return mat.Norm(a.v, 2)
}

// ApproxEqual reports whether a and b are τ-close component-wise.
func (a Vector) ApproxEqual(b Vector) bool {
	if a.Dim() != b.Dim() {
		return false
	}
	for i := 0; i < a.Dim(); i++ {
		if !Equal(a.At(i), b.At(i)) {
			return false
		}
	}
	return true
}

// String renders the vector for debugging/test failure output.
func (a Vector) String() string {
	return fmt.Sprintf("%v", a.Slice())
}

// MidPoint returns the arithmetic midpoint of a and b; used by 1D interval
// centroid computation.
func MidPoint(a, b float64) float64 {
	return (a + b) / 2
}

// Hypot2 returns sqrt(x*x+y*y) without overflow for the 2D case; used by
// the polytope package's 2D point distance.
func Hypot2(x, y float64) float64 {
	return math.Hypot(x, y)
}
