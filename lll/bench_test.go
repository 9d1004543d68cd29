// Package lll_test benchmarks the reduction on fixed integer bases.
package lll_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lattice/lll"
	"github.com/katalvlaran/lattice/matrix"
)

// knapsackBasis builds an n×(n+1) identity | random-weights basis.
func knapsackBasis(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(n, n+1)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		_ = m.Set(i, i, 1)
		_ = m.Set(i, n, float64(rng.Intn(1<<16)+1))
	}

	return m
}

func BenchmarkReduce(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{4, 8, 12} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := knapsackBasis(b, n, 1337)
			work := src.Clone()
			r, err := lll.NewReducer(lll.DefaultDelta)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = work.CopyFrom(src)
				if err = r.Reduce(work); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkGramSchmidt(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{8, 32} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := knapsackBasis(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, _, err := lll.GramSchmidt(src); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
