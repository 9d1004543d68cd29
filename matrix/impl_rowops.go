// SPDX-License-Identifier: MIT
// Package matrix - elementary row operations on Dense.
//
// Purpose:
//   - Provide the primitive mutations lattice algorithms are built from:
//     scalar product of two rows, row -= mult*row, row swap and row copy.
//   - Keep them index-checked at the public surface (ErrOutOfRange), while the
//     inner loops run on the flat row-major buffer.
//
// Determinism:
//   - Fixed column order; the dot and axpy kernels come from gonum/floats and
//     produce bit-identical results for identical inputs.
//
// AI-Hints:
//   - Indices derived from 0..Rows() never trip the guards; the checks exist for
//     external callers.
//   - SubtractRow(i, i, mult) is legal but meaningless (it scales row i by 1-mult).

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

const (
	opScalarProduct = "ScalarProduct"
	opSubtractRow   = "SubtractRow"
	opSwapRows      = "SwapRows"
	opAssignRow     = "AssignRow"
)

// rowOpErrorf tags a row-operation failure with its name and operands.
func rowOpErrorf(op string, i, j int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", op, i, j, err)
}

// checkRowPair validates both row indices of a binary row operation.
func (m *Dense) checkRowPair(op string, i, j int) error {
	if err := ValidateNotNil(m); err != nil {
		return rowOpErrorf(op, i, j, err)
	}
	if err := ValidateRowIndex(m, i); err != nil {
		return rowOpErrorf(op, i, j, err)
	}
	if err := ValidateRowIndex(m, j); err != nil {
		return rowOpErrorf(op, i, j, err)
	}

	return nil
}

// ScalarProduct returns Σ_c M[i][c]*M[j][c]. No side effects.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) ScalarProduct(i, j int) (float64, error) {
	if err := m.checkRowPair(opScalarProduct, i, j); err != nil {
		return 0, err
	}

	return floats.Dot(m.row(i), m.row(j)), nil
}

// SubtractRow performs M[i][c] -= mult*M[j][c] for every column c, in place.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrNaNInf (mult non-finite while the finite policy is on).
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) SubtractRow(i, j int, mult float64) error {
	if err := m.checkRowPair(opSubtractRow, i, j); err != nil {
		return err
	}
	if m.validateNaNInf && isNonFinite(mult) {
		return rowOpErrorf(opSubtractRow, i, j, ErrNaNInf)
	}
	if mult == 0 {
		return nil
	}
	floats.AddScaled(m.row(i), -mult, m.row(j))

	return nil
}

// SwapRows exchanges the full contents of rows i and j.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) SwapRows(i, j int) error {
	if err := m.checkRowPair(opSwapRows, i, j); err != nil {
		return err
	}
	if i == j {
		return nil
	}
	ri, rj := m.row(i), m.row(j)
	for c := range ri {
		ri[c], rj[c] = rj[c], ri[c]
	}

	return nil
}

// AssignRow copies row index of src into row index of dst verbatim.
// Both matrices must have the same column count and contain the row.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrOutOfRange.
//
// Complexity:
//   - Time O(c), Space O(1).
func AssignRow(dst, src *Dense, index int) error {
	if err := ValidateNotNil(dst); err != nil {
		return rowOpErrorf(opAssignRow, index, index, err)
	}
	if err := ValidateNotNil(src); err != nil {
		return rowOpErrorf(opAssignRow, index, index, err)
	}
	if dst.c != src.c {
		return rowOpErrorf(opAssignRow, index, index, ErrDimensionMismatch)
	}
	if err := ValidateRowIndex(dst, index); err != nil {
		return rowOpErrorf(opAssignRow, index, index, err)
	}
	if err := ValidateRowIndex(src, index); err != nil {
		return rowOpErrorf(opAssignRow, index, index, err)
	}
	copy(dst.row(index), src.row(index))

	return nil
}
