// SPDX-License-Identifier: MIT

package matop_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/toonijn/spectra"
	"github.com/toonijn/spectra/matop"
	"github.com/toonijn/spectra/sparse"
)

// ExampleShiftSolve applies (A − σI)⁻¹ to a vector for a small
// symmetric matrix given by its lower triangle.
func ExampleShiftSolve() {
	a := mat.NewDense(2, 2, []float64{
		2, 1,
		1, 2,
	})
	op, _ := matop.NewShiftSolve(a, spectra.Lower)
	_ = op.SetShift(0)

	y, _ := op.Apply([]float64{1, 0})
	fmt.Printf("%.4f %.4f\n", y[0], y[1])
	// Output:
	// 0.6667 -0.3333
}

// ExampleShiftInvert applies (A − σB)⁻¹ with a dense A and a sparse
// identity B.
func ExampleShiftInvert() {
	a := mat.NewDense(2, 2, []float64{
		2, 1,
		1, 2,
	})
	coo, _ := sparse.NewCOO(2, 2)
	_ = coo.Append(0, 0, 1)
	_ = coo.Append(1, 1, 1)
	b := coo.ToCSR()

	op, _ := matop.NewShiftInvert(
		matop.DenseOperand(a, spectra.Lower),
		matop.SparseOperand(b, spectra.Lower),
	)
	_ = op.SetShift(-1) // factorizes A + B

	y, _ := op.Apply([]float64{8, 0})
	fmt.Printf("%.1f %.1f\n", y[0], y[1])
	// Output:
	// 3.0 -1.0
}
