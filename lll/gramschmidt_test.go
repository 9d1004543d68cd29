// SPDX-License-Identifier: MIT
package lll_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattice/lll"
	"github.com/katalvlaran/lattice/matrix"
)

func TestGramSchmidt_TwoByTwo(t *testing.T) {
	x := mustBasis(t, [][]float64{{1, 1}, {-1, 2}})
	y, mu, err := lll.GramSchmidt(x)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{1, 1}, {-1.5, 1.5}}, y.ToRows())
	assert.Equal(t, [][]float64{{0, 0}, {0.5, 0}}, mu.ToRows())

	norms, err := lll.SquaredNorms(y)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4.5}, norms)

	// x is untouched.
	assert.Equal(t, [][]float64{{1, 1}, {-1, 2}}, x.ToRows())
}

func TestOrthogonalize_Identity(t *testing.T) {
	x, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	y, err := matrix.ZerosLike(x)
	require.NoError(t, err)
	mu, err := matrix.NewZeros(3, 3)
	require.NoError(t, err)

	// Stale values in mu must be overwritten.
	require.NoError(t, mu.Set(0, 2, 7))

	require.NoError(t, lll.Orthogonalize(x, y, mu))
	assert.True(t, y.Equal(x))
	for _, v := range mu.RawData() {
		assert.Zero(t, v)
	}
}

// Every b_i is recovered as b*_i + Σ_{j<i} μ(i,j)·b*_j and the b*_i are pairwise orthogonal.
func TestGramSchmidt_Reconstruction(t *testing.T) {
	x := mustBasis(t, random6)
	y, mu, err := lll.GramSchmidt(x)
	require.NoError(t, err)

	rows, cols := x.Shape()
	var i, j, c int
	for i = 0; i < rows; i++ {
		for c = 0; c < cols; c++ {
			sum, _ := y.At(i, c)
			for j = 0; j < i; j++ {
				m, _ := mu.At(i, j)
				yc, _ := y.At(j, c)
				sum += m * yc
			}
			want, _ := x.At(i, c)
			assert.InDelta(t, want, sum, 1e-9, "b[%d][%d]", i, c)
		}
		for j = 0; j < i; j++ {
			dot, err := y.ScalarProduct(i, j)
			require.NoError(t, err)
			assert.InDelta(t, 0, dot, 1e-7, "<b*_%d, b*_%d>", i, j)
		}
	}
}

func TestGramSchmidt_Degenerate(t *testing.T) {
	for name, rows := range map[string][][]float64{
		"parallel rows": {{1, 2}, {2, 4}},
		"zero row":      {{0, 0}, {1, 1}},
		"dependent 3x3": {{1, 0, 0}, {0, 1, 0}, {1, 1, 0}},
		"too many rows": {{1, 0}, {0, 1}, {1, 1}},
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := lll.GramSchmidt(mustBasis(t, rows))
			assert.ErrorIs(t, err, lll.ErrDegenerateBasis)
		})
	}
}

func TestOrthogonalize_ShapeErrors(t *testing.T) {
	x := mustBasis(t, [][]float64{{1, 0}, {0, 1}})
	y, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)
	mu, err := matrix.NewZeros(2, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, lll.Orthogonalize(x, y, mu), matrix.ErrDimensionMismatch)

	y, err = matrix.ZerosLike(x)
	require.NoError(t, err)
	badMu, err := matrix.NewZeros(3, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, lll.Orthogonalize(x, y, badMu), matrix.ErrDimensionMismatch)

	assert.ErrorIs(t, lll.Orthogonalize(nil, y, mu), matrix.ErrNilMatrix)
	assert.ErrorIs(t, lll.Orthogonalize(x, y, nil), matrix.ErrNilMatrix)

	_, _, err = lll.GramSchmidt(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestGramSchmidt_Overflow(t *testing.T) {
	big := math.MaxFloat64 / 2
	_, _, err := lll.GramSchmidt(mustBasis(t, [][]float64{{big, big}, {1, 0}}))
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestGramSchmidt_EpsilonOption(t *testing.T) {
	// b*_1 = [0, 1e-6], relative squared norm 1e-12.
	rows := [][]float64{{1, 0}, {1, 1e-6}}
	_, _, err := lll.GramSchmidt(mustBasis(t, rows))
	require.NoError(t, err)

	_, _, err = lll.GramSchmidt(mustBasis(t, rows), lll.WithEpsilon(1e-10))
	assert.ErrorIs(t, err, lll.ErrDegenerateBasis)
}
