// Package invcache_test benchmarks cache hits against full recomputation.
package invcache_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/matcache/invcache"
	"github.com/katalvlaran/matcache/matrix"
)

// sink to defeat dead-code elimination
var sinkM matrix.Matrix

// benchSource builds an n×n invertible source with a dominant diagonal.
func benchSource(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := rng.Float64() - 0.5
			if i == j {
				v += float64(n)
			}
			if err := m.Set(i, j, v); err != nil {
				b.Fatal(err)
			}
		}
	}

	return m
}

func BenchmarkInverse_Hit(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{8, 32, 64} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			cell := invcache.New(benchSource(b, n, 7))
			if _, err := invcache.Inverse(cell); err != nil { // warm the cache
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := invcache.Inverse(cell)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkInverse_Miss(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{8, 32, 64} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := benchSource(b, n, 7)
			cell := invcache.New(src)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				cell.SetSource(src) // invalidate: force a recomputation
				m, err := invcache.Inverse(cell)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
