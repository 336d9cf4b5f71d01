package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matcache/matrix"
)

// ExampleInverse demonstrates inverting a 2×2 matrix and verifying the
// round-trip property M × M⁻¹ = I.
func ExampleInverse() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{0.5, -1},
		{-0.25, 0.75},
	})

	inv, err := matrix.Inverse(m)
	if err != nil {
		fmt.Println("inverse failed:", err)
		return
	}
	fmt.Print(inv)

	prod, _ := matrix.Mul(m, inv)
	ident, _ := matrix.NewIdentity(2)
	fmt.Println("round-trip is identity:", matrix.EqualApprox(ident, prod, matrix.DefaultEpsilon))

	// Output:
	// [6, 8]
	// [2, 4]
	// round-trip is identity: true
}

// ExampleInverse_singular shows the sentinel returned for a non-invertible
// input; match it with errors.Is.
func ExampleInverse_singular() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{1, 2},
		{2, 4},
	})

	_, err := matrix.Inverse(m)
	fmt.Println("singular:", errors.Is(err, matrix.ErrSingular))

	// Output:
	// singular: true
}
