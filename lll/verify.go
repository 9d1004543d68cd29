// SPDX-License-Identifier: MIT
// Package lll - reduction certificates.
//
// Purpose:
//   - Check the two defining properties of a δ-LLL-reduced basis
//     (size reduction and the Lovász condition) on a fresh orthogonalization.
//   - Compare two bases of the same lattice: Gram determinant, the transform
//     T with T·original = reduced, and its unimodularity.
//   - Expose the GSO profile log2‖b*_i‖ used for diagnostics and charts.

package lll

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lattice/matrix"
)

const (
	opCheck           = "Check"
	opGramDeterminant = "GramDeterminant"
	opTransform       = "Transform"
	opIsUnimodular    = "IsUnimodular"
	opProfile         = "Profile"
)

// Report is the outcome of Check.
type Report struct {
	SizeReduced          bool    // every |μ[k][j]| ≤ 1/2 (+tol)
	LovaszSatisfied      bool    // every consecutive pair passes the Lovász test (+tol)
	MaxAbsMu             float64 // max |μ[k][j]| over j < k
	FirstLovaszViolation int     // smallest k failing the Lovász test, -1 if none
}

// Reduced reports whether the basis is δ-LLL-reduced.
func (r Report) Reduced() bool { return r.SizeReduced && r.LovaszSatisfied }

// Check orthogonalizes basis and tests size reduction and the Lovász condition.
// The basis is not modified.
//
// Errors:
//   - ErrInvalidParameter, matrix.ErrNilMatrix, ErrDegenerateBasis.
func Check(basis *matrix.Dense, delta float64, opts ...Option) (Report, error) {
	rep := Report{FirstLovaszViolation: -1}
	if err := ValidateDelta(delta); err != nil {
		return rep, fmt.Errorf("%s: %w", opCheck, err)
	}
	if err := matrix.ValidateNotNil(basis); err != nil {
		return rep, fmt.Errorf("%s: %w", opCheck, err)
	}
	o := gatherOptions(opts...)
	_, mu, norms, err := gramSchmidt(basis, o.eps)
	if err != nil {
		return rep, fmt.Errorf("%s: %w", opCheck, err)
	}

	rep.SizeReduced, rep.LovaszSatisfied = true, true
	var (
		k, j   int
		m, lhs float64
	)
	for k = 1; k < basis.Rows(); k++ {
		for j = 0; j < k; j++ {
			if m, err = mu.At(k, j); err != nil {
				return rep, fmt.Errorf("%s: %w", opCheck, err)
			}
			rep.MaxAbsMu = math.Max(rep.MaxAbsMu, math.Abs(m))
			if math.Abs(m) > sizeReductionBound+o.tol {
				rep.SizeReduced = false
			}
		}
		if m, err = mu.At(k, k-1); err != nil {
			return rep, fmt.Errorf("%s: %w", opCheck, err)
		}
		lhs = (delta - m*m) * norms[k-1]
		if lhs-norms[k] > o.tol*math.Max(1, norms[k-1]) && rep.LovaszSatisfied {
			rep.LovaszSatisfied = false
			rep.FirstLovaszViolation = k
		}
	}

	return rep, nil
}

// GramDeterminant returns det(B·Bᵀ), the squared covolume of the lattice.
// It is invariant under unimodular row operations.
//
// Errors:
//   - matrix.ErrNilMatrix.
func GramDeterminant(basis *matrix.Dense) (float64, error) {
	g, err := matrix.Gram(basis)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opGramDeterminant, err)
	}
	n := g.Rows()

	return mat.Det(mat.NewDense(n, n, g.RawData())), nil
}

// Transform solves T·original = reduced for the rows×rows matrix T
// (least squares on the transposed system originalᵀ·Tᵀ = reducedᵀ).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrDegenerateBasis
//     (rows > cols or a singular system).
func Transform(original, reduced *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateBinarySameShape(original, reduced); err != nil {
		return nil, fmt.Errorf("%s: %w", opTransform, err)
	}
	rows, cols := original.Shape()
	if rows > cols {
		return nil, fmt.Errorf("%s: %d rows in dimension %d: %w", opTransform, rows, cols, ErrDegenerateBasis)
	}
	ot, err := matrix.Transpose(original)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTransform, err)
	}
	rt, err := matrix.Transpose(reduced)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTransform, err)
	}

	var tt mat.Dense // Tᵀ, rows×rows
	a := mat.NewDense(cols, rows, ot.RawData())
	b := mat.NewDense(cols, rows, rt.RawData())
	if err = tt.Solve(a, b); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", opTransform, err, ErrDegenerateBasis)
	}

	t, err := matrix.NewZeros(rows, rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTransform, err)
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < rows; j++ {
			if err = t.Set(i, j, tt.At(j, i)); err != nil {
				return nil, fmt.Errorf("%s: %w", opTransform, err)
			}
		}
	}

	return t, nil
}

// IsUnimodular reports whether reduced = T·original for an integer matrix T
// with |det T| = 1, i.e. both bases generate the same lattice.
// tol bounds the distance of T's entries to integers, of |det T| to 1, and
// (relative to the largest |entry| of reduced) of T·original to reduced.
//
// Errors: as Transform.
func IsUnimodular(original, reduced *matrix.Dense, tol float64) (bool, error) {
	t, err := Transform(original, reduced)
	if err != nil {
		return false, fmt.Errorf("%s: %w", opIsUnimodular, err)
	}
	n := t.Rows()
	rounded, err := matrix.NewZeros(n, n)
	if err != nil {
		return false, fmt.Errorf("%s: %w", opIsUnimodular, err)
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = t.At(i, j); err != nil {
				return false, fmt.Errorf("%s: %w", opIsUnimodular, err)
			}
			if math.Abs(v-math.Round(v)) > tol {
				return false, nil
			}
			if err = rounded.Set(i, j, math.Round(v)); err != nil {
				return false, fmt.Errorf("%s: %w", opIsUnimodular, err)
			}
		}
	}
	if det := mat.Det(mat.NewDense(n, n, rounded.RawData())); math.Abs(math.Abs(det)-1) > tol {
		return false, nil
	}

	// The integer transform must reproduce reduced from original.
	back, err := matrix.Mul(rounded, original)
	if err != nil {
		return false, fmt.Errorf("%s: %w", opIsUnimodular, err)
	}
	scale := 1.0
	for _, v = range reduced.RawData() {
		scale = math.Max(scale, math.Abs(v))
	}
	ok, err := matrix.AllClose(back, reduced, 0, tol*scale)
	if err != nil {
		return false, fmt.Errorf("%s: %w", opIsUnimodular, err)
	}

	return ok, nil
}

// Profile returns log2‖b*_i‖ for every row of basis (the GSO profile).
//
// Errors:
//   - matrix.ErrNilMatrix, ErrDegenerateBasis.
func Profile(basis *matrix.Dense, opts ...Option) ([]float64, error) {
	if err := matrix.ValidateNotNil(basis); err != nil {
		return nil, fmt.Errorf("%s: %w", opProfile, err)
	}
	o := gatherOptions(opts...)
	_, _, norms, err := gramSchmidt(basis, o.eps)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opProfile, err)
	}
	out := make([]float64, len(norms))
	for i, n := range norms {
		out[i] = 0.5 * math.Log2(n)
	}

	return out, nil
}
