// Package matrix provides the dense linear-algebra primitives backing
// matcache: a bounds-checked Matrix interface, a row-major Dense
// implementation, and deterministic Mul / LU / Inverse kernels.
//
// The package is intentionally small:
//
//   - Dense stores float64 values in a flat row-major slice for cache
//     friendliness; At/Set return sentinel errors instead of panicking.
//   - Inverse computes A⁻¹ via Doolittle LU factorization (no pivoting)
//     and reports ErrSingular on a zero pivot, ErrDimensionMismatch on a
//     non-square input.
//   - EqualApprox compares matrices elementwise within a tolerance, which
//     is how callers verify the round-trip property M × M⁻¹ ≈ I.
//
// All kernels use fixed loop orders and never mutate their inputs, so
// identical inputs always produce identical outputs.
package matrix
