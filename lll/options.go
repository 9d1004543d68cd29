// SPDX-License-Identifier: MIT

// Package lll: functional configuration for orthogonalization, reduction and
// verification.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: option constructors panic only on nonsensical
//     values (programmer error); runtime input problems are returned as errors.
package lll

import (
	"math"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDelta is the conventional Lovász parameter.
	DefaultDelta = 0.75

	// DefaultEpsilon is the relative squared-norm threshold below which a
	// Gram-Schmidt vector is treated as vanished: ‖b*_i‖² ≤ ε·‖b_i‖².
	DefaultEpsilon = 1e-24

	// DefaultTolerance is the absolute slack Check allows on |μ| ≤ 1/2 and on
	// the Lovász inequality (scaled by max(1, ‖b*_{k-1}‖²)).
	DefaultTolerance = 1e-9

	// DefaultMaxIterations disables the iteration cap.
	DefaultMaxIterations = 0
)

// sizeReductionBound is the |μ| threshold above which a row is size-reduced.
const sizeReductionBound = 0.5

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid       = "lll: WithEpsilon: eps must be finite, non-negative"
	panicToleranceInvalid     = "lll: WithTolerance: tol must be finite, non-negative"
	panicMaxIterationsInvalid = "lll: WithMaxIterations: n must be non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps     float64     // DefaultEpsilon
	tol     float64     // DefaultTolerance
	maxIter int         // DefaultMaxIterations
	logger  *zap.Logger // no-op unless WithLogger
}

// WithEpsilon sets the degeneracy threshold used by Gram-Schmidt.
// Panics when eps is negative or non-finite.
//
// AI-Hints:
//   - 0 only rejects exactly vanished vectors; raise it for noisy real-valued input.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithTolerance sets the slack used by Check and IsUnimodular-style comparisons.
// Panics when tol is negative or non-finite.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations caps the number of main-loop iterations (0 = unbounded).
// Exceeding the cap yields ErrIterationLimit and leaves the basis unchanged.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithLogger routes debug events (size reductions, swaps, summary) to l.
// A nil logger restores the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:     DefaultEpsilon,
		tol:     DefaultTolerance,
		maxIter: DefaultMaxIterations,
		logger:  zap.NewNop(),
	}
}

// gatherOptions applies setters on top of defaults (last-writer-wins).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
