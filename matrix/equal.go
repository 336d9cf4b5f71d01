// Package matrix - approximate elementwise comparison.
package matrix

import "math"

// DefaultEpsilon defines the non-negative tolerance used by approximate
// comparisons, sized for float64 round-off in small dense kernels.
const DefaultEpsilon = 1e-9

// EqualApprox reports whether a and b have the same shape and all elements
// agree within eps (|a[i,j]-b[i,j]| <= eps). A nil operand or a shape
// mismatch reports false rather than erroring, which keeps call sites in
// tests and verification loops branch-free.
//
// Determinism: fixed i→j traversal. Complexity: O(r*c).
func EqualApprox(a, b Matrix, eps float64) bool {
	if ValidateNotNil(a) != nil || ValidateNotNil(b) != nil {
		return false
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}

	// Fast-path: both *Dense → single flat loop over backing slices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if math.Abs(da.data[idx]-db.data[idx]) > eps {
					return false
				}
			}

			return true
		}
	}

	// Fallback: interface path with fixed i→j order.
	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, err = a.At(i, j)
			if err != nil {
				return false
			}
			bv, err = b.At(i, j)
			if err != nil {
				return false
			}
			if math.Abs(av-bv) > eps {
				return false
			}
		}
	}

	return true
}
