// SPDX-License-Identifier: MIT
// Package lll - LLL basis reduction.
//
// State machine over a single index k, 1 ≤ k < rows:
//
//  1. Orthogonalize the basis, k = 1.
//  2. For j = k-1 down to 0: if |μ[k][j]| > 1/2, b_k -= round(μ[k][j])·b_j and
//     re-orthogonalize from scratch.
//  3. Lovász test: (δ - μ[k][k-1]²)·‖b*_{k-1}‖² ≤ ‖b*_k‖² ⇒ k++.
//  4. Otherwise swap b_k and b_{k-1}, re-orthogonalize, k = max(k-1, 1).
//  5. Stop at k == rows.
//
// Every recomputation is a full Gram-Schmidt pass; the cost is dominated by
// re-orthogonalization, not by the row updates.
//
// Rounding uses math.Round: nearest integer, ties away from zero.

package lll

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lattice/matrix"
)

const opReduce = "Reduce"

// Stats counts the work done by the last Reduce call.
type Stats struct {
	Iterations         int // main-loop passes (one per visited k)
	SizeReductions     int // b_k -= q·b_j steps with q != 0
	Swaps              int // Lovász failures
	Orthogonalizations int // full Gram-Schmidt passes
}

// Reducer runs δ-LLL reduction with a fixed δ and options.
// A Reducer is not safe for concurrent use; create one per goroutine.
type Reducer struct {
	delta float64
	opts  Options
	stats Stats
}

// ValidateDelta checks 0.25 < delta < 1.
//
// Errors: ErrInvalidParameter.
func ValidateDelta(delta float64) error {
	if math.IsNaN(delta) || delta <= 0.25 || delta >= 1 {
		return fmt.Errorf("delta=%g outside (0.25, 1): %w", delta, ErrInvalidParameter)
	}

	return nil
}

// NewReducer validates delta and resolves options.
//
// Errors: ErrInvalidParameter.
func NewReducer(delta float64, opts ...Option) (*Reducer, error) {
	if err := ValidateDelta(delta); err != nil {
		return nil, fmt.Errorf("%s: %w", opReduce, err)
	}

	return &Reducer{delta: delta, opts: gatherOptions(opts...)}, nil
}

// Delta returns the Lovász parameter of r.
func (r *Reducer) Delta() float64 { return r.delta }

// Stats returns the counters of the last Reduce call.
func (r *Reducer) Stats() Stats { return r.stats }

// Reduce transforms basis in place into a δ-LLL-reduced basis of the same lattice.
// On any error the basis is restored to its input value.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrDegenerateBasis, matrix.ErrNaNInf, ErrIterationLimit.
//
// Complexity:
//   - Each iteration costs O(m²·n) per re-orthogonalization.
func (r *Reducer) Reduce(basis *matrix.Dense) error {
	r.stats = Stats{}
	if err := matrix.ValidateNotNil(basis); err != nil {
		return fmt.Errorf("%s: %w", opReduce, err)
	}
	snapshot := basis.Clone()
	if err := r.run(basis); err != nil {
		_ = basis.CopyFrom(snapshot) // same shape by construction
		return fmt.Errorf("%s: %w", opReduce, err)
	}

	return nil
}

// run is the reduction loop. Scratch matrices are allocated once per call.
func (r *Reducer) run(b *matrix.Dense) error {
	rows := b.Rows()
	log := r.opts.logger

	y, err := matrix.ZerosLike(b)
	if err != nil {
		return err
	}
	mu, err := matrix.NewZeros(rows, rows)
	if err != nil {
		return err
	}
	norms := make([]float64, rows)

	reorthogonalize := func() error {
		r.stats.Orthogonalizations++
		return orthogonalize(b, y, mu, norms, r.opts.eps)
	}
	if err = reorthogonalize(); err != nil {
		return err
	}

	var (
		j       int
		m, q, a float64
	)
	k := 1
	for k < rows {
		r.stats.Iterations++
		if r.opts.maxIter > 0 && r.stats.Iterations > r.opts.maxIter {
			return fmt.Errorf("after %d iterations: %w", r.opts.maxIter, ErrIterationLimit)
		}

		// Size reduction of b_k against b_{k-1}..b_0.
		for j = k - 1; j >= 0; j-- {
			if m, err = mu.At(k, j); err != nil {
				return err
			}
			if math.Abs(m) <= sizeReductionBound {
				continue
			}
			q = math.Round(m)
			if err = b.SubtractRow(k, j, q); err != nil {
				return err
			}
			r.stats.SizeReductions++
			log.Debug("size reduction",
				zap.Int("k", k), zap.Int("j", j), zap.Float64("mu", m), zap.Float64("q", q))
			if err = reorthogonalize(); err != nil {
				return err
			}
		}

		// Lovász condition for the pair (k-1, k).
		if m, err = mu.At(k, k-1); err != nil {
			return err
		}
		a = (r.delta - m*m) * norms[k-1]
		if a <= norms[k] {
			k++
			continue
		}

		if err = b.SwapRows(k, k-1); err != nil {
			return err
		}
		r.stats.Swaps++
		log.Debug("swap", zap.Int("k", k), zap.Float64("lhs", a), zap.Float64("rhs", norms[k]))
		if err = reorthogonalize(); err != nil {
			return err
		}
		k = max(k-1, 1)
	}

	log.Debug("reduction finished",
		zap.Int("rows", rows),
		zap.Int("cols", b.Cols()),
		zap.Float64("delta", r.delta),
		zap.Int("iterations", r.stats.Iterations),
		zap.Int("size_reductions", r.stats.SizeReductions),
		zap.Int("swaps", r.stats.Swaps),
		zap.Int("orthogonalizations", r.stats.Orthogonalizations),
	)

	return nil
}

// Reduce is the one-shot facade: NewReducer(delta, opts...).Reduce(basis).
//
// AI-Hints:
//   - Use NewReducer when you need Stats or want to reuse options across bases.
func Reduce(basis *matrix.Dense, delta float64, opts ...Option) error {
	r, err := NewReducer(delta, opts...)
	if err != nil {
		return err
	}

	return r.Reduce(basis)
}
