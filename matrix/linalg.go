// SPDX-License-Identifier: MIT
// Package matrix — deterministic linear-algebra kernels.
//
// Purpose:
//   - Declare the canonical kernels used by matcache: Mul, LU, Inverse.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - All kernels use central validators and wrap failures via matrixErrorf.
//   - Fixed loop orders everywhere: identical inputs yield identical outputs.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for substitution and dot-product loops.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Inverse routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul     = "Mul"
	opLU      = "LU"
	opInverse = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As keep matching the underlying sentinel. Use only when
// err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and
//     skip zeros; otherwise use i→j→k with a fixed order.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless multiplies.
//
// AI-Hints:
//   - Keep operands as *Dense to unlock the cache-friendly fast path.
func Mul(a, b Matrix) (Matrix, error) {
	// Validate inputs via canonical validators.
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	// Allocate result Dense.
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// row-major multiplication into res.data
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue // skip zero for performance
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv // accumulate product
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L
// (no pivoting).
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate Dense L,U; set diag(L)=1.
//   - Stage 2: For i=0..n-1, build row i of U and column i of L in fixed order.
//
// Returns:
//   - Matrix: L (unit lower triangular).
//   - Matrix: U (upper triangular).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (if U[i,i]==0 during
//     factorization).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - No pivoting: determinism is traded for numerical stability. Callers
//     with stability-sensitive inputs should precondition upstream.
func LU(m Matrix) (Matrix, Matrix, error) {
	// Validate input non-nil and square.
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Allocate L and U.
	n := m.Rows()
	lower, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	upper, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Initialize L diagonal to 1 (unit lower triangular).
	for i := 0; i < n; i++ {
		lower.data[i*n+i] = 1.0
	}

	// Detect fast-path on *Dense input.
	src, useFast := m.(*Dense)
	var i, j, k int // loop iterators
	var sum, pivot float64
	if useFast {
		// Fast-path: operate directly on flat slices.
		var baseI, baseJ int
		for i = 0; i < n; i++ {
			// Compute U[i][j] for j >= i.
			baseI = i * n
			for j = i; j < n; j++ {
				sum = ZeroSum
				for k = 0; k < i; k++ {
					sum += lower.data[baseI+k] * upper.data[k*n+j]
				}
				upper.data[baseI+j] = src.data[baseI+j] - sum
			}

			// Zero-pivot guard (deterministic singularity detection).
			pivot = upper.data[baseI+i]
			if pivot == ZeroPivot {
				return nil, nil, matrixErrorf(opLU, ErrSingular)
			}

			// Compute L[j][i] for j > i.
			for j = i + 1; j < n; j++ {
				sum = ZeroSum
				baseJ = j * n
				for k = 0; k < i; k++ {
					sum += lower.data[baseJ+k] * upper.data[k*n+i]
				}
				lower.data[baseJ+i] = (src.data[baseJ+i] - sum) / pivot
			}
		}

		return lower, upper, nil
	}

	// Fallback: generic interface version.
	var a, l, u float64
	for i = 0; i < n; i++ {
		// Compute U[i][j] for j >= i.
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				l, err = lower.At(i, k)
				if err != nil {
					return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				u, err = upper.At(k, j)
				if err != nil {
					return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				sum += l * u
			}
			a, err = m.At(i, j)
			if err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = upper.Set(i, j, a-sum); err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}

		// Zero-pivot guard (generic path).
		pivot, err = upper.At(i, i)
		if err != nil {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
		if pivot == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		// Compute L[j][i] for j > i.
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				l, err = lower.At(j, k)
				if err != nil {
					return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", j, k, err))
				}
				u, err = upper.At(k, i)
				if err != nil {
					return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", k, i, err))
				}
				sum += l * u
			}
			a, err = m.At(j, i)
			if err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", j, i, err))
			}
			if err = lower.Set(j, i, (a-sum)/pivot); err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return lower, upper, nil
}

// Inverse computes A⁻¹ using Doolittle LU factorization without pivoting.
// The input must be non-nil and square. Returns ErrSingular if a zero pivot
// is detected. Produces a new Dense matrix; does not mutate the input.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m) and ValidateSquare(m). Factorize via LU(m)
//     → L (unit lower), U (upper). Allocate inv(n×n) and workspace y, x.
//   - Stage 2: For each canonical basis column e_col:
//     forward solve L*y = e_col (top-down), backward solve U*x = y
//     (bottom-up, checking nonzero pivots), write x into column col of inv.
//
// Errors:
//   - ErrNilMatrix         (ValidateNotNil).
//   - ErrDimensionMismatch (ValidateSquare — the non-square case).
//   - ErrSingular          (zero pivot during LU or backward substitution).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// AI-Hints:
//   - If you only need A⁻¹*b, solve via LU once and apply triangular solves
//     (cheaper than forming A⁻¹).
func Inverse(m Matrix) (Matrix, error) {
	// Validate input non-nil and square.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// LU decomposition (Doolittle).
	lower, upper, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Prepare result container and scratch arrays.
	n := m.Rows()
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k  int // loop iterators
		sum, pivot float64
		y          = make([]float64, n) // forward substitution workspace
		x          = make([]float64, n) // backward substitution workspace
	)
	// Fast-path: LU always returns *Dense factors.
	ld, okL := lower.(*Dense)
	ud, okU := upper.(*Dense)
	if okL && okU {
		var baseLi, baseUi int // row-major strides
		for col = 0; col < n; col++ {
			// Forward substitution: L*y = e_col.
			for i = 0; i < n; i++ {
				sum = ZeroSum
				baseLi = i * n
				for k = 0; k < i; k++ {
					sum += ld.data[baseLi+k] * y[k]
				}
				if i == col {
					y[i] = 1.0 - sum
				} else {
					y[i] = -sum
				}
			}
			// Backward substitution: U*x = y.
			for i = n - 1; i >= 0; i-- {
				sum = ZeroSum
				baseUi = i * n
				for k = i + 1; k < n; k++ {
					sum += ud.data[baseUi+k] * x[k]
				}
				pivot = ud.data[baseUi+i]
				if pivot == ZeroPivot {
					return nil, matrixErrorf(opInverse, ErrSingular)
				}
				x[i] = (y[i] - sum) / pivot
			}
			// Write x into column col of inv.
			for i = 0; i < n; i++ {
				inv.data[i*n+col] = x[i]
			}
		}

		return inv, nil
	}

	// Fallback: generic interface version.
	var v float64
	for col = 0; col < n; col++ {
		// Forward substitution: L*y = e_col.
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				v, err = lower.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opInverse, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				sum += v * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution: U*x = y.
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				v, err = upper.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opInverse, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				sum += v * x[k]
			}
			pivot, err = upper.At(i, i)
			if err != nil {
				return nil, matrixErrorf(opInverse, fmt.Errorf("At(%d,%d): %w", i, i, err))
			}
			if pivot == ZeroPivot {
				return nil, matrixErrorf(opInverse, ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
		}
		// Write x into column col of inv.
		for i = 0; i < n; i++ {
			if err = inv.Set(i, col, x[i]); err != nil {
				return nil, matrixErrorf(opInverse, fmt.Errorf("Set(%d,%d): %w", i, col, err))
			}
		}
	}

	return inv, nil
}
