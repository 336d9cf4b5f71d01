// Package invcache - Cell: a source matrix paired with an optional cached inverse.
package invcache

import "github.com/katalvlaran/matcache/matrix"

// placeholderDim is the shape of the default source installed by New(nil).
// The matrix constructor rejects empty shapes, so the smallest valid Dense
// stands in for "no source yet"; inverting it yields ErrSingular.
const placeholderDim = 1

// Cell holds a source matrix and, when valid, its cached inverse.
//
// The cell has exactly two states: cache-empty (initial, and after every
// SetSource) and cache-valid (after SetCached). Between calls the cached
// slot, when present, always corresponds to the current source — SetSource
// clears it before returning.
//
// A Cell is not safe for concurrent use; guard the (source, cached) pair
// with one mutex if shared across goroutines.
type Cell struct {
	source matrix.Matrix // current source matrix, never nil after New
	cached matrix.Matrix // cached inverse of source; nil means cache-empty
	opts   options       // resolved observability hooks
	stats  Stats         // hit/miss counters, updated by Inverse
}

// New constructs a Cell with source = initial and an empty cache.
// A nil initial installs a 1×1 zero placeholder, so a freshly constructed
// Cell is always in a well-defined state (its inverse just fails with
// matrix.ErrSingular until a real source is set).
// Complexity: O(1) beyond the placeholder allocation.
func New(initial matrix.Matrix, opts ...Option) *Cell {
	if initial == nil {
		// NewDense cannot fail for a positive constant shape.
		initial, _ = matrix.NewDense(placeholderDim, placeholderDim)
	}

	return &Cell{
		source: initial,
		opts:   gatherOptions(opts...),
	}
}

// SetSource replaces the source with m and unconditionally clears the
// cached inverse — even when m is value-equal to the old source.
// Conservative invalidation trades a possible extra recomputation for the
// guarantee that a present cache always matches the current source.
// Complexity: O(1).
func (c *Cell) SetSource(m matrix.Matrix) {
	c.source = m
	c.cached = nil // invalidate before returning, no exceptions
}

// Source returns the current source matrix. No side effects.
// Complexity: O(1).
func (c *Cell) Source() matrix.Matrix {
	return c.source
}

// SetCached overwrites the cached slot with m and moves the cell to the
// cache-valid state. No validation is performed: the Inverse facade is
// solely responsible for only storing true inverses of the current source.
// Complexity: O(1).
func (c *Cell) SetCached(m matrix.Matrix) {
	c.cached = m
}

// Cached returns the cached inverse and whether it is present. The absent
// state is an explicit second return, distinguishable from every valid
// matrix value. No side effects.
// Complexity: O(1).
func (c *Cell) Cached() (matrix.Matrix, bool) {
	if c.cached == nil {
		return nil, false
	}

	return c.cached, true
}
