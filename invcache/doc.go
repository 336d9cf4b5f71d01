// Package invcache memoizes matrix inversion: a Cell holds a source matrix
// together with an optional cached inverse, and Inverse(cell) serves the
// cached result when it is still valid, computing and storing it otherwise.
//
// 🚀 Why memoize inversion?
//
//	Forming A⁻¹ is O(n³). When the same matrix is inverted repeatedly —
//	iterative solvers, covariance updates, repeated preconditioning —
//	recomputing it on every call is pure waste. A Cell pays the O(n³)
//	cost once and answers every following request in O(1), until the
//	source changes.
//
// ✨ Key behaviors:
//   - SetSource always clears the cache, even when the new matrix equals
//     the old one (conservative invalidation: correctness over a spared
//     recomputation).
//   - Cached() returns an explicit (Matrix, bool) pair — the empty state is
//     a real absent state, never a magic matrix value.
//   - Failed inversions are never cached: a singular source errors on every
//     call, and the first fetch after a SetSource to an invertible matrix
//     succeeds normally.
//   - Hit/miss hooks and counters expose cache behavior without any textual
//     output; plug in your own logger via WithOnHit / WithOnMiss.
//
// ⚙️ Usage:
//
//	m, _ := matrix.NewDenseFromRows([][]float64{{0.5, -1}, {-0.25, 0.75}})
//	cell := invcache.New(m)
//
//	inv, err := invcache.Inverse(cell) // computes and caches
//	inv, err  = invcache.Inverse(cell) // served from cache
//
//	cell.SetSource(other)              // invalidates
//	inv, err  = invcache.Inverse(cell) // recomputes from `other`
//
// A Cell is not safe for concurrent use. Callers that share one across
// goroutines must guard the (source, cached) pair with a single mutex so
// readers always observe a consistent pair.
package invcache
