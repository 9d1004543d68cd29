// SPDX-License-Identifier: MIT
package lll_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattice/lll"
	"github.com/katalvlaran/lattice/matrix"
)

// mustBasis builds a *matrix.Dense from literal rows or fails the test.
func mustBasis(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	b, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return b
}

// mustReduced returns a reduced copy of rows and the reducer stats.
func mustReduced(t testing.TB, rows [][]float64, delta float64, opts ...lll.Option) (*matrix.Dense, lll.Stats) {
	t.Helper()
	b := mustBasis(t, rows)
	r, err := lll.NewReducer(delta, opts...)
	require.NoError(t, err)
	require.NoError(t, r.Reduce(b))

	return b, r.Stats()
}

// knapsack5 is a 5×6 integer-relation basis (identity | scaled constants).
var knapsack5 = [][]float64{
	{1, 0, 0, 0, 0, 31416},
	{0, 1, 0, 0, 0, 27183},
	{0, 0, 1, 0, 0, 14142},
	{0, 0, 0, 1, 0, 17321},
	{0, 0, 0, 0, 1, 22361},
}

// random6 is a dense 6×6 integer basis of full rank.
var random6 = [][]float64{
	{19, 2, 32, 46, 3, 33},
	{15, 42, 11, 0, 3, 24},
	{43, 15, 0, 24, 4, 16},
	{20, 44, 44, 0, 18, 15},
	{0, 48, 35, 16, 31, 31},
	{48, 33, 32, 9, 1, 29},
}
