// Package matcache is a small memoized matrix-inversion toolkit: compute a
// matrix inverse once, then serve it from cache until the source changes.
//
// 🚀 What is matcache?
//
//	A pure-Go pair of packages implementing compute-or-fetch inversion
//	over dense float64 matrices:
//		• matrix/   — bounds-checked Matrix interface, row-major Dense,
//		  deterministic Mul / LU / Inverse kernels, EqualApprox
//		• invcache/ — Cell (a source matrix plus its optional cached
//		  inverse, invalidated on every source write) and the
//		  Inverse(cell) compute-or-fetch facade
//
// ✨ Why choose matcache?
//
//   - Correct invalidation – SetSource always clears the cache, so a
//     present cache is always the inverse of the current source
//   - Explicit empty state – Cached() returns (Matrix, bool), never a
//     magic sentinel matrix
//   - Honest failures – singular and non-square sources error via
//     errors.Is-matchable sentinels and are never memoized
//   - Observable – hit/miss hooks and counters, no forced logging
//
// Quick example:
//
//	m, _ := matrix.NewDenseFromRows([][]float64{{0.5, -1}, {-0.25, 0.75}})
//	cell := invcache.New(m)
//	inv, err := invcache.Inverse(cell) // O(n³) once...
//	inv, err  = invcache.Inverse(cell) // ...then O(1) until SetSource
//
// See the package docs of matrix and invcache for details and runnable
// examples.
//
//	go get github.com/katalvlaran/matcache
package matcache
