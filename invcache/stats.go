// Package invcache - fetch counters.
package invcache

// Stats counts how Inverse calls were served. Counters are advisory
// instrumentation: they never affect the functional result, and tests use
// them to assert that a second fetch performed no recomputation.
type Stats struct {
	// Hits is the number of fetches served from the cached inverse.
	Hits uint64

	// Misses is the number of fetches that invoked the inversion primitive,
	// including invocations that failed (failures are not memoized, so each
	// retry counts again).
	Misses uint64
}

// Stats returns a snapshot of the cell's fetch counters.
// Complexity: O(1).
func (c *Cell) Stats() Stats {
	return c.stats
}
