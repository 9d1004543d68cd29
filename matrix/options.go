// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction and numeric
// policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

// DefaultValidateNaNInf toggles strict finite-value validation on ingestion,
// Set and row operations.
const DefaultValidateNaNInf = true

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables strict finite-value validation (the default).
//
// Complexity:
//   - Time O(1), Space O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on the constructed matrix.
//
// Notes:
//   - This flag propagates only on creation (and through Clone); existing matrices are unaffected.
//
// AI-Hints:
//   - Useful for scratch buffers that must observe intermediate overflow
//     instead of failing at the first write.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves option setters against documented defaults.
// Last-writer-wins semantics.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{validateNaNInf: DefaultValidateNaNInf}
}

// gatherOptions applies user-provided Option setters on top of defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// ValidatesNaNInf reports whether the resolved options reject non-finite values.
func (o Options) ValidatesNaNInf() bool { return o.validateNaNInf }
