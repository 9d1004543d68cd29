// SPDX-License-Identifier: MIT
// Package matrix provides the few whole-matrix kernels lattice code needs:
// matrix multiplication, transpose and the Gram matrix B·Bᵀ. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Notes:
//   - Inputs are never mutated; every result is a freshly allocated Dense.
//   - All kernels use central validators and wrap failures via matrixErrorf.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opGram      = "Gram"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j with row-major strides, skipping zero A[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}
	res.validateNaNInf = m.validateNaNInf

	return res, nil
}

// Gram returns the Gram matrix G = M·Mᵀ, G[i][j] = ⟨row i, row j⟩.
// G is symmetric rows×rows; only the upper triangle is computed and mirrored.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r²*c), Space O(r²).
func Gram(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	n := m.r
	g, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	var i, j int
	var dot float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			dot, err = m.ScalarProduct(i, j)
			if err != nil {
				return nil, matrixErrorf(opGram, err)
			}
			g.data[i*n+j] = dot
			g.data[j*n+i] = dot
		}
	}

	return g, nil
}
