// SPDX-License-Identifier: MIT
// Package invcache - the compute-or-fetch facade.
package invcache

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matcache/matrix"
)

// ErrNilCell indicates that a nil *Cell was passed to Inverse.
var ErrNilCell = errors.New("invcache: nil cell")

// Inverse returns the inverse of c's current source matrix, serving the
// cached result when one is present and computing it otherwise.
//
// Implementation:
//   - Stage 1 (Fetch): if the cached slot is populated, fire the hit hook,
//     bump Stats.Hits and return the cached matrix unchanged.
//   - Stage 2 (Compute): fire the miss hook, bump Stats.Misses, delegate to
//     matrix.Inverse(c.Source()).
//   - Stage 3 (Store): on success, store the inverse via SetCached and
//     return it. On failure, store nothing — the cell stays cache-empty and
//     the next call retries the computation from scratch.
//
// Errors:
//   - ErrNilCell                  — c is nil.
//   - matrix.ErrSingular          — the source is not invertible (zero pivot).
//   - matrix.ErrDimensionMismatch — the source is not square.
//     Both propagate unchanged from the inversion primitive and match via
//     errors.Is; failures are never memoized.
//
// Side effects: may populate c's cached slot; never mutates the source.
// Complexity: O(1) on a hit, O(n³) on a miss.
func Inverse(c *Cell) (matrix.Matrix, error) {
	if c == nil {
		return nil, ErrNilCell
	}

	// Stage 1: serve from cache when valid.
	if inv, ok := c.Cached(); ok {
		if c.opts.onHit != nil {
			c.opts.onHit() // advisory "serving cached result" signal
		}
		c.stats.Hits++

		return inv, nil
	}

	// Stage 2: cache miss — delegate to the inversion primitive.
	if c.opts.onMiss != nil {
		c.opts.onMiss()
	}
	c.stats.Misses++

	inv, err := matrix.Inverse(c.Source())
	if err != nil {
		// Failures are not cached: the cell remains cache-empty and a later
		// call retries unconditionally.
		return nil, fmt.Errorf("invcache: %w", err)
	}

	// Stage 3: populate the cache and return the fresh inverse.
	c.SetCached(inv)

	return inv, nil
}
