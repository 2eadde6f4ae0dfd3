// SPDX-License-Identifier: MIT
//
// Matrix wraps gonum's dense storage with the shape-validation discipline
// lvlath/matrix/validators.go applies to its own local Matrix interface:
// every operation checks shapes up front and returns a sentinel error
// rather than letting gonum panic on the caller's behalf.

package numeric

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a rectangular array of reals.
type Matrix struct {
	m *mat.Dense
}

// NewMatrix builds a Matrix from a row-major flat slice of length rows*cols.
// Complexity: O(rows*cols).
func NewMatrix(rows, cols int, data []float64) (Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return Matrix{}, fmt.Errorf("NewMatrix: %dx%d: %w", rows, cols, ErrBadShape)
	}
	if len(data) != rows*cols {
		return Matrix{}, fmt.Errorf("NewMatrix: got %d values, want %d: %w", len(data), rows*cols, ErrDimensionMismatch)
	}
	cp := make([]float64, len(data))
	copy(cp, data)
	return Matrix{m: mat.NewDense(rows, cols, cp)}, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) Matrix {
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		out.Set(i, i, 1)
	}
	return Matrix{m: out}
}

// Rows reports the row count.
func (m Matrix) Rows() int {
	if m.m == nil {
		return 0
	}
	r, _ := m.m.Dims()
	return r
}

// Cols reports the column count.
func (m Matrix) Cols() int {
	if m.m == nil {
		return 0
	}
	_, c := m.m.Dims()
	return c
}

// At returns the (i,j) entry.
func (m Matrix) At(i, j int) float64 {
	return m.m.At(i, j)
}

// MulVec returns M·x. Returns ErrDimensionMismatch when M.Cols() != x.Dim().
func (m Matrix) MulVec(x Vector) (Vector, error) {
	if m.Cols() != x.Dim() {
		return Vector{}, fmt.Errorf("Matrix.MulVec: cols=%d dim=%d: %w", m.Cols(), x.Dim(), ErrDimensionMismatch)
	}
	out := mat.NewVecDense(m.Rows(), nil)
	out.MulVec(m.m, x.v)
	return Vector{v: out}, nil
}

// Mul returns M·N.
func (m Matrix) Mul(n Matrix) (Matrix, error) {
	if m.Cols() != n.Rows() {
		return Matrix{}, fmt.Errorf("Matrix.Mul: %dx%d * %dx%d: %w", m.Rows(), m.Cols(), n.Rows(), n.Cols(), ErrDimensionMismatch)
	}
	out := mat.NewDense(m.Rows(), n.Cols(), nil)
	out.Mul(m.m, n.m)
	return Matrix{m: out}, nil
}

// Transpose returns Mᵀ.
func (m Matrix) Transpose() Matrix {
	r, c := m.Rows(), m.Cols()
	out := mat.NewDense(c, r, nil)
	out.Copy(m.m.T())
	return Matrix{m: out}
}

// Inverse returns M⁻¹ via gonum's LU-based solver.
//
// Blueprint:
//
//	Stage 1 (Validate): require square.
//	Stage 2 (Decompose+Solve): delegate to gonum's Dense.Inverse, which
//	  itself runs LU with partial pivoting.
//	Stage 3 (Finalize): translate gonum's singular-matrix error into our
//	  ErrSingular sentinel so callers never depend on gonum's error type.
func (m Matrix) Inverse() (Matrix, error) {
	if m.Rows() != m.Cols() {
		return Matrix{}, fmt.Errorf("Matrix.Inverse: %dx%d not square: %w", m.Rows(), m.Cols(), ErrDimensionMismatch)
	}
	out := mat.NewDense(m.Rows(), m.Cols(), nil)
	if err := out.Inverse(m.m); err != nil {
		return Matrix{}, fmt.Errorf("Matrix.Inverse: %w: %v", ErrSingular, err)
	}
	return Matrix{m: out}, nil
}

// Solve returns x such that M·x = b, via gonum's Solve (LU-based).
func (m Matrix) Solve(b Vector) (Vector, error) {
	if m.Rows() != b.Dim() {
		return Vector{}, fmt.Errorf("Matrix.Solve: rows=%d dim=%d: %w", m.Rows(), b.Dim(), ErrDimensionMismatch)
	}
	out := mat.NewVecDense(m.Cols(), nil)
	if err := out.SolveVec(m.m, b.v); err != nil {
		return Vector{}, fmt.Errorf("Matrix.Solve: %w: %v", ErrSingular, err)
	}
	return Vector{v: out}, nil
}

// Col returns column j as a Vector (copy).
func (m Matrix) Col(j int) Vector {
	out := make([]float64, m.Rows())
	for i := range out {
		out[i] = m.At(i, j)
	}
	return NewVector(out...)
}

// Row returns row i as a Vector (copy).
func (m Matrix) Row(i int) Vector {
	out := make([]float64, m.Cols())
	for j := range out {
		out[j] = m.At(i, j)
	}
	return NewVector(out...)
}
