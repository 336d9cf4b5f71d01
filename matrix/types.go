// Package matrix defines the core Matrix interface for linear algebra operations.
//
// What & Why:
//
//	The Matrix interface provides a uniform abstraction over two-dimensional
//	mutable arrays of float64 values, so the inversion kernels and the
//	invcache facade can operate generically on any implementation (e.g.,
//	Dense). Bounds checking on the accessors and deep cloning keep
//	algorithm pipelines safe from aliasing surprises.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Each method enforces bounds checking and returns clear errors on misuse.
// Users can implement this interface to provide custom storage layouts.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
