// Package invcache_test verifies the Cell state machine: construction,
// source replacement, and cache invalidation.
package invcache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcache/invcache"
	"github.com/katalvlaran/matcache/matrix"
)

// mustFromRows builds a Dense from rows or fails the test.
func mustFromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func TestNew_WithInitialSource(t *testing.T) {
	src := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	cell := invcache.New(src)

	assert.Same(t, matrix.Matrix(src), cell.Source(), "Source must return the exact matrix passed to New")

	_, ok := cell.Cached()
	assert.False(t, ok, "a fresh cell starts with an empty cache")
}

func TestNew_NilSourceGetsPlaceholder(t *testing.T) {
	cell := invcache.New(nil)

	src := cell.Source()
	require.NotNil(t, src, "nil initial must be replaced by a placeholder")
	assert.Equal(t, 1, src.Rows())
	assert.Equal(t, 1, src.Cols())

	// the placeholder is the zero matrix, so its inverse fails
	_, err := invcache.Inverse(cell)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestSetSource_ClearsCache(t *testing.T) {
	cell := invcache.New(mustFromRows(t, [][]float64{{2, 0}, {0, 2}}))

	_, err := invcache.Inverse(cell)
	require.NoError(t, err)
	_, ok := cell.Cached()
	require.True(t, ok, "fetch must populate the cache")

	next := mustFromRows(t, [][]float64{{4, 0}, {0, 4}})
	cell.SetSource(next)

	assert.Same(t, matrix.Matrix(next), cell.Source())
	_, ok = cell.Cached()
	assert.False(t, ok, "SetSource must clear the cache")
}

func TestSetSource_ClearsCacheEvenForEqualMatrix(t *testing.T) {
	src := mustFromRows(t, [][]float64{{2, 0}, {0, 2}})
	cell := invcache.New(src)

	_, err := invcache.Inverse(cell)
	require.NoError(t, err)

	// conservative invalidation: a value-equal (even identical) matrix
	// still invalidates
	cell.SetSource(src)
	_, ok := cell.Cached()
	assert.False(t, ok, "invalidation must not compare values")
}

func TestSetCached_MakesCacheValid(t *testing.T) {
	cell := invcache.New(mustFromRows(t, [][]float64{{1}}))

	stored := mustFromRows(t, [][]float64{{42}})
	cell.SetCached(stored)

	got, ok := cell.Cached()
	require.True(t, ok)
	assert.Same(t, matrix.Matrix(stored), got, "SetCached stores the value verbatim, no validation")
}

func TestCell_ReusableAfterManyTransitions(t *testing.T) {
	cell := invcache.New(nil)

	// empty → valid → empty → valid: no terminal state
	for i := 0; i < 3; i++ {
		src := mustFromRows(t, [][]float64{{float64(i + 2)}})
		cell.SetSource(src)

		inv, err := invcache.Inverse(cell)
		require.NoError(t, err)

		v, err := inv.At(0, 0)
		require.NoError(t, err)
		assert.InDelta(t, 1/float64(i+2), v, matrix.DefaultEpsilon)

		_, ok := cell.Cached()
		assert.True(t, ok)
	}
}
