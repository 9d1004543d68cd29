// SPDX-License-Identifier: MIT
// Package lll: sentinel error set.
// Every exported function returns these sentinels wrapped with an operation
// tag; match them with errors.Is. Matrix-level failures (nil basis, shape
// mismatch, non-finite values) surface as the matrix package sentinels.

package lll

import (
	"errors"

	"github.com/katalvlaran/lattice/matrix"
)

var (
	// ErrInvalidParameter is returned when delta lies outside the open interval (0.25, 1),
	// where termination of the reduction is guaranteed.
	ErrInvalidParameter = errors.New("lll: invalid parameter")

	// ErrDegenerateBasis is returned when a Gram-Schmidt vector vanishes (or becomes
	// negligible relative to its source row), i.e. the rows are linearly dependent.
	ErrDegenerateBasis = errors.New("lll: degenerate basis")

	// ErrIterationLimit is returned when WithMaxIterations is set and the main loop
	// exceeds it.
	ErrIterationLimit = errors.New("lll: iteration limit exceeded")
)

// ErrInvalidDimensions is the matrix sentinel for malformed input shapes,
// re-exported so callers of this package need a single import for matching.
var ErrInvalidDimensions = matrix.ErrInvalidDimensions
