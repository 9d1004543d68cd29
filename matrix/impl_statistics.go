// SPDX-License-Identifier: MIT
// Package matrix - row statistics and tolerance comparison.
//
// Purpose:
//   - Summaries over the rows of a basis: Euclidean (L2) and L1 norms, and the
//     normalized rows used to measure how close to orthogonal a basis is.
//   - AllClose, the elementwise |a-b| ≤ atol + rtol·|b| comparison used wherever
//     float results are checked against an exact expectation.
//
// Exposed API:
//   - RowNormsL2(X)     -> []float64        // ‖x_i‖₂ per row
//   - RowNormsL1(X)     -> []float64        // Σ_j |x_ij| per row
//   - NormalizeRows(X)  -> (Y, norms)       // Y_i = x_i/‖x_i‖₂ (zero rows unchanged)
//   - AllClose(a,b,r,a) -> bool             // elementwise tolerance comparison
//
// Determinism:
//   - Fixed i→j traversal over the flat row-major buffer; no randomness.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	opRowNormsL2    = "RowNormsL2"
	opRowNormsL1    = "RowNormsL1"
	opNormalizeRows = "NormalizeRows"
	opAllClose      = "AllClose"
)

// RowNormsL2 returns the Euclidean norm of every row of X.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func RowNormsL2(X *Dense) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowNormsL2, err)
	}
	norms := make([]float64, X.r)
	for i := 0; i < X.r; i++ {
		norms[i] = floats.Norm(X.row(i), 2)
	}

	return norms, nil
}

// RowNormsL1 returns Σ_j |x_ij| for every row of X.
//
// Errors:
//   - ErrNilMatrix.
func RowNormsL1(X *Dense) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowNormsL1, err)
	}
	norms := make([]float64, X.r)
	for i := 0; i < X.r; i++ {
		norms[i] = floats.Norm(X.row(i), 1)
	}

	return norms, nil
}

// NormalizeRows returns a copy of X whose rows have unit L2 norm, together with
// the original norms. Rows of norm 0 are copied unchanged.
//
// Errors:
//   - ErrNilMatrix.
//
// AI-Hints:
//   - Gram(NormalizeRows(B)) is the cosine matrix of the basis vectors; its
//     off-diagonal entries measure pairwise non-orthogonality.
func NormalizeRows(X *Dense) (*Dense, []float64, error) {
	norms, err := RowNormsL2(X)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRows, err)
	}
	Y := X.Clone()
	for i, n := range norms {
		if n > 0 {
			floats.Scale(1/n, Y.row(i))
		}
	}

	return Y, norms, nil
}

// AllClose reports whether every element satisfies |a-b| ≤ atol + rtol·|b|.
// Negative tolerances are taken by absolute value.
//
// Errors:
//   - ErrNaNInf (non-finite tolerance), ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1); stops at the first violation.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	for idx, av := range a.data {
		bv := b.data[idx]
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}
