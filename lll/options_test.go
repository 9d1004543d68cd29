// SPDX-License-Identifier: MIT
package lll_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lattice/lll"
)

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { lll.WithEpsilon(-1) })
	assert.Panics(t, func() { lll.WithEpsilon(math.NaN()) })
	assert.Panics(t, func() { lll.WithEpsilon(math.Inf(1)) })
	assert.Panics(t, func() { lll.WithTolerance(-1e-3) })
	assert.Panics(t, func() { lll.WithTolerance(math.Inf(1)) })
	assert.Panics(t, func() { lll.WithMaxIterations(-1) })
}

func TestOptions_Valid(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = lll.Reduce(mustBasis(t, [][]float64{{1, 0}, {5, 1}}), lll.DefaultDelta,
			lll.WithEpsilon(0),
			lll.WithTolerance(0),
			lll.WithMaxIterations(0),
			lll.WithLogger(nil),
			nil,
		)
	})
}

func TestValidateDelta(t *testing.T) {
	assert.NoError(t, lll.ValidateDelta(0.2500001))
	assert.NoError(t, lll.ValidateDelta(0.999))
	assert.ErrorIs(t, lll.ValidateDelta(0.25), lll.ErrInvalidParameter)
	assert.ErrorIs(t, lll.ValidateDelta(1), lll.ErrInvalidParameter)
}
