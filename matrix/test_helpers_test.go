// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for row operations and kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lattice/matrix"
)

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows BUILDS a *Dense from literal rows or fails the test.
//
// AI-Hints:
//   - Use with CompareExact for integer-like matrices.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows(%v): %v", rows, err)
	}

	return m
}

// MustAt READS (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandomFill FILLS a Dense with deterministic U(-1,1) values by seed.
// Deterministic for a fixed seed; keeps values finite.
func RandomFill(t testing.TB, m *matrix.Dense, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, rng.Float64()*2-1); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// CompareExact ASSERTS bitwise equality between want rows and m.
func CompareExact(t testing.TB, want [][]float64, m *matrix.Dense) {
	t.Helper()
	if len(want) != m.Rows() {
		t.Fatalf("rows: want %d, got %d", len(want), m.Rows())
	}
	for i := range want {
		if len(want[i]) != m.Cols() {
			t.Fatalf("cols: want %d, got %d", len(want[i]), m.Cols())
		}
		for j := range want[i] {
			if got := MustAt(t, m, i, j); got != want[i][j] {
				t.Fatalf("[%d,%d]: want %g, got %g", i, j, want[i][j], got)
			}
		}
	}
}
