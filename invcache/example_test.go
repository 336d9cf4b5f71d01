package invcache_test

import (
	"fmt"

	"github.com/katalvlaran/matcache/invcache"
	"github.com/katalvlaran/matcache/matrix"
)

// Example demonstrates the full memoization lifecycle: compute, hit,
// invalidate, recompute.
func Example() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{0.5, -1},
		{-0.25, 0.75},
	})
	cell := invcache.New(m,
		invcache.WithOnHit(func() { fmt.Println("serving cached result") }),
		invcache.WithOnMiss(func() { fmt.Println("computing inverse") }),
	)

	inv, _ := invcache.Inverse(cell) // miss: computes and caches
	fmt.Print(inv)

	_, _ = invcache.Inverse(cell) // hit: served from cache

	next, _ := matrix.NewDenseFromRows([][]float64{
		{2, 0},
		{0, 2},
	})
	cell.SetSource(next) // invalidates

	inv, _ = invcache.Inverse(cell) // miss again: recomputes
	fmt.Print(inv)

	stats := cell.Stats()
	fmt.Printf("hits=%d misses=%d\n", stats.Hits, stats.Misses)

	// Output:
	// computing inverse
	// [6, 8]
	// [2, 4]
	// serving cached result
	// computing inverse
	// [0.5, 0]
	// [0, 0.5]
	// hits=1 misses=2
}

// ExampleCell_Cached shows the explicit present/absent cache probe.
func ExampleCell_Cached() {
	m, _ := matrix.NewDenseFromRows([][]float64{{4}})
	cell := invcache.New(m)

	_, ok := cell.Cached()
	fmt.Println("cached before fetch:", ok)

	_, _ = invcache.Inverse(cell)

	_, ok = cell.Cached()
	fmt.Println("cached after fetch:", ok)

	// Output:
	// cached before fetch: false
	// cached after fetch: true
}
