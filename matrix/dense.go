// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Enforce a numeric policy (rejection of NaN/Inf on write) from a single source of truth.
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// DefaultValidateNaNInf toggles strict finite-value validation on Set and
// row ingestion. Kept as a documented constant so the policy has a single
// source of truth.
const DefaultValidateNaNInf = true

// ---------- Formatting literals ----------
const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = ", "
)

// denseErrorf wraps an underlying sentinel with Dense method context and
// callsite coordinates, preserving the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set (policy default above).
//
// Dense is not safe for concurrent mutation; callers needing shared access
// must add their own synchronization.
type Dense struct {
	r, c           int       // row and column counts (> 0)
	data           []float64 // contiguous row-major storage, len == r*c
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice (zero-filled by make).
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewDenseFromRows builds a Dense from a 2D slice, copying every element.
// Stage 1 (Validate): rows non-empty, all rows equal length, values finite.
// Stage 2 (Execute): copy values row by row into the flat buffer.
// Stage 3 (Finalize): return the populated Dense.
//
// Errors:
//   - ErrInvalidDimensions — rows is empty or the first row is empty.
//   - ErrDimensionMismatch — ragged input (row lengths differ).
//   - ErrNaNInf            — a NaN or ±Inf entry under the numeric policy.
//
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	// Validate outer shape.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])

	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int // loop iterators (deterministic order)
	for i = 0; i < r; i++ {
		// Reject ragged input before touching values.
		if len(rows[i]) != c {
			return nil, denseErrorf("NewDenseFromRows", i, len(rows[i]), ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, err // carries coordinates and the sentinel already
			}
		}
	}

	return m, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	ident, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ {
		ident.data[i*n+i] = 1.0
	}

	return ident, nil
}

// Rows returns the number of rows in the matrix. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index.
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index.
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset.
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf; reject NaN/±Inf under policy.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Numeric policy: finite values only.
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf("Set", row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for the copy.
func (m *Dense) Clone() Matrix {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData, validateNaNInf: m.validateNaNInf}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteString(fmtRowOpen)
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			sb.WriteString(fmt.Sprintf("%g", m.data[i*m.c+j]))
			if j < m.c-1 {
				sb.WriteString(fmtSep)
			}
		}
		sb.WriteString(fmtRowClose)
	}

	return sb.String()
}
