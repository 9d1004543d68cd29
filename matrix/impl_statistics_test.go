// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattice/matrix"
)

const epsTight = 1e-12

func TestRowNorms(t *testing.T) {
	t.Parallel()

	X := MustRows(t, [][]float64{{3, 4}, {0, 0}, {-1, 2}})

	l2, err := matrix.RowNormsL2(X)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{5, 0, math.Sqrt(5)}, l2, epsTight)

	l1, err := matrix.RowNormsL1(X)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 0, 3}, l1)

	_, err = matrix.RowNormsL2(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.RowNormsL1(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNormalizeRows(t *testing.T) {
	t.Parallel()

	X := MustRows(t, [][]float64{{3, 4}, {0, 0}})
	Y, norms, err := matrix.NormalizeRows(X)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 0}, norms)
	assert.InDelta(t, 0.6, MustAt(t, Y, 0, 0), epsTight)
	assert.InDelta(t, 0.8, MustAt(t, Y, 0, 1), epsTight)
	assert.Equal(t, 0.0, MustAt(t, Y, 1, 0), "zero rows are left unchanged")

	// Input untouched.
	CompareExact(t, [][]float64{{3, 4}, {0, 0}}, X)
}

func TestNormalizeRows_UnitNorms(t *testing.T) {
	t.Parallel()

	X := MustDense(t, 4, 6)
	RandomFill(t, X, 11)
	Y, _, err := matrix.NormalizeRows(X)
	require.NoError(t, err)
	norms, err := matrix.RowNormsL2(Y)
	require.NoError(t, err)
	for i, n := range norms {
		assert.InDelta(t, 1.0, n, epsTight, "row %d", i)
	}
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]float64{{1, 2}, {3, 4 + 1e-9}})

	ok, err := matrix.AllClose(a, b, 0, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-8)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose(a, b, 1e-9, 0)
	require.NoError(t, err)
	assert.True(t, ok, "relative tolerance scales with |b|")

	ok, err = matrix.AllClose(a, b, 0, -1e-8)
	require.NoError(t, err)
	assert.True(t, ok, "negative tolerances are taken by absolute value")
}

func TestAllClose_Errors(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 2, 2)
	_, err := matrix.AllClose(a, MustDense(t, 2, 3), 0, 0)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.AllClose(nil, a, 0, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.AllClose(a, a, math.NaN(), 0)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(a, a, 0, math.Inf(1))
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}
