// SPDX-License-Identifier: MIT
// Package lll - basis quality measures.
//
// All measures compare the row lengths ‖b_i‖ with the Gram-Schmidt lengths
// ‖b*_i‖, whose product is the covolume √det(B·Bᵀ):
//
//	defect = Π‖b_i‖ / Π‖b*_i‖            ≥ 1, = 1 iff the rows are orthogonal
//	ratio  = defect^(-1/m)               ∈ (0, 1]
//
// Products are accumulated as sums of logarithms.

package lll

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lattice/matrix"
)

const opQuality = "Quality"

// Quality summarizes how short and how orthogonal a basis is.
type Quality struct {
	RowNorms            []float64 `json:"row_norms"`            // ‖b_i‖
	Shortest            float64   `json:"shortest"`             // min ‖b_i‖
	OrthogonalityDefect float64   `json:"orthogonality_defect"` // Π‖b_i‖ / covolume
	HadamardRatio       float64   `json:"hadamard_ratio"`       // defect^(-1/m)
	MaxCosine           float64   `json:"max_cosine"`           // max |cos∠(b_i, b_j)|, i ≠ j
}

// Measure computes the Quality of basis. The basis is not modified.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrDegenerateBasis.
func Measure(basis *matrix.Dense, opts ...Option) (Quality, error) {
	var q Quality
	if err := matrix.ValidateNotNil(basis); err != nil {
		return q, fmt.Errorf("%s: %w", opQuality, err)
	}
	o := gatherOptions(opts...)
	_, _, gso, err := gramSchmidt(basis, o.eps)
	if err != nil {
		return q, fmt.Errorf("%s: %w", opQuality, err)
	}
	unit, norms, err := matrix.NormalizeRows(basis)
	if err != nil {
		return q, fmt.Errorf("%s: %w", opQuality, err)
	}
	cos, err := matrix.Gram(unit)
	if err != nil {
		return q, fmt.Errorf("%s: %w", opQuality, err)
	}

	var logDefect float64
	q.RowNorms = norms
	q.Shortest = math.Inf(1)
	for i, n := range norms {
		q.Shortest = math.Min(q.Shortest, n)
		logDefect += math.Log(n) - 0.5*math.Log(gso[i])
	}
	// Rounding may push an orthogonal basis a hair below 1.
	logDefect = math.Max(logDefect, 0)
	q.OrthogonalityDefect = math.Exp(logDefect)
	q.HadamardRatio = math.Exp(-logDefect / float64(len(norms)))

	rows := basis.Rows()
	var (
		i, j int
		c    float64
	)
	for i = 0; i < rows; i++ {
		for j = i + 1; j < rows; j++ {
			if c, err = cos.At(i, j); err != nil {
				return q, fmt.Errorf("%s: %w", opQuality, err)
			}
			q.MaxCosine = math.Max(q.MaxCosine, math.Abs(c))
		}
	}

	return q, nil
}
