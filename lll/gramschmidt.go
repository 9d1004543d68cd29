// SPDX-License-Identifier: MIT
// Package lll - classical Gram-Schmidt orthogonalization.
//
// Given a basis X with rows b_0..b_{m-1}, compute Y with rows b*_0..b*_{m-1}
// and the strictly lower-triangular μ such that
//
//	b_i = b*_i + Σ_{j<i} μ(i,j)·b*_j,   μ(i,j) = ⟨b_i, b*_j⟩ / ⟨b*_j, b*_j⟩.
//
// The classical (non-modified) process is used, but each coefficient is
// computed on Y[i] as already reduced by the previous projections, and
// ‖b*_j‖² is cached once row j is final.
//
// A vanished row (‖b*_i‖² ≤ ε·‖b_i‖²) is reported as ErrDegenerateBasis
// before anything divides by it.

package lll

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lattice/matrix"
)

const opOrthogonalize = "Orthogonalize"

// Orthogonalize recomputes y (orthogonal basis) and mu (coefficients) from x.
// y must have the shape of x and mu must be rows×rows; both are overwritten.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (shapes).
//   - ErrDegenerateBasis (linearly dependent rows), matrix.ErrNaNInf (overflow).
//
// Complexity:
//   - Time O(m²·n), Space O(m) for the cached squared norms.
func Orthogonalize(x, y, mu *matrix.Dense, opts ...Option) error {
	if err := matrix.ValidateBinarySameShape(x, y); err != nil {
		return fmt.Errorf("%s: %w", opOrthogonalize, err)
	}
	if err := matrix.ValidateSquare(mu, x.Rows()); err != nil {
		return fmt.Errorf("%s: %w", opOrthogonalize, err)
	}
	o := gatherOptions(opts...)
	norms := make([]float64, x.Rows())
	if err := orthogonalize(x, y, mu, norms, o.eps); err != nil {
		return fmt.Errorf("%s: %w", opOrthogonalize, err)
	}

	return nil
}

// GramSchmidt allocates and returns the orthogonal basis and coefficients of x.
func GramSchmidt(x *matrix.Dense, opts ...Option) (y, mu *matrix.Dense, err error) {
	if err = matrix.ValidateNotNil(x); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opOrthogonalize, err)
	}
	o := gatherOptions(opts...)
	y, mu, _, err = gramSchmidt(x, o.eps)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opOrthogonalize, err)
	}

	return y, mu, nil
}

// SquaredNorms returns ‖row i‖² for every row of y.
func SquaredNorms(y *matrix.Dense) ([]float64, error) {
	if err := matrix.ValidateNotNil(y); err != nil {
		return nil, err
	}
	out := make([]float64, y.Rows())
	var err error
	for i := range out {
		if out[i], err = y.ScalarProduct(i, i); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// gramSchmidt allocates scratch and runs orthogonalize; norms are returned too.
func gramSchmidt(x *matrix.Dense, eps float64) (y, mu *matrix.Dense, norms []float64, err error) {
	rows := x.Rows()
	if y, err = matrix.ZerosLike(x); err != nil {
		return nil, nil, nil, err
	}
	if mu, err = matrix.NewZeros(rows, rows); err != nil {
		return nil, nil, nil, err
	}
	norms = make([]float64, rows)
	if err = orthogonalize(x, y, mu, norms, eps); err != nil {
		return nil, nil, nil, err
	}

	return y, mu, norms, nil
}

// orthogonalize is the kernel shared by Orthogonalize and the reducer.
// Shapes are trusted; norms must have length Rows(x) and receives ‖b*_i‖².
func orthogonalize(x, y, mu *matrix.Dense, norms []float64, eps float64) error {
	rows := x.Rows()
	var (
		i, j       int
		dot, coeff float64
		sourceNorm float64
		err        error
	)
	for i = 0; i < rows; i++ {
		// b*_i starts as b_i.
		if err = matrix.AssignRow(y, x, i); err != nil {
			return err
		}
		for j = 0; j < i; j++ {
			if dot, err = y.ScalarProduct(i, j); err != nil {
				return err
			}
			coeff = dot / norms[j]
			if err = mu.Set(i, j, coeff); err != nil {
				return err
			}
			if err = y.SubtractRow(i, j, coeff); err != nil {
				return err
			}
		}
		// Upper part (j >= i) stays zero.
		for j = i; j < rows; j++ {
			if err = mu.Set(i, j, 0); err != nil {
				return err
			}
		}

		if norms[i], err = y.ScalarProduct(i, i); err != nil {
			return err
		}
		if sourceNorm, err = x.ScalarProduct(i, i); err != nil {
			return err
		}
		if math.IsNaN(norms[i]) || math.IsInf(norms[i], 0) || math.IsInf(sourceNorm, 0) {
			return fmt.Errorf("row %d: %w", i, matrix.ErrNaNInf)
		}
		if sourceNorm == 0 || norms[i] <= eps*sourceNorm {
			return fmt.Errorf("row %d: ‖b*‖²=%g: %w", i, norms[i], ErrDegenerateBasis)
		}
	}

	return nil
}
