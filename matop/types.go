// SPDX-License-Identifier: MIT

package matop

import (
	"gonum.org/v1/gonum/mat"

	"github.com/toonijn/spectra"
	"github.com/toonijn/spectra/sparse"
)

// Operator is the contract a shift-invert eigensolver driver consumes.
// Rows and Cols size the driver's workspace; SetShift re-assembles and
// re-factorizes; Apply performs one inverse application per call
// without re-factorizing.
type Operator interface {
	Rows() int
	Cols() int
	SetShift(sigma float64) error
	Apply(x []float64) ([]float64, error)
}

// opState is the operator lifecycle:
// Unshifted → (SetShift ok) → Ready → (SetShift fail) → Faulted.
// Apply is legal only in Ready; a later successful SetShift leaves
// Faulted again. There is no explicit reset.
type opState int

const (
	opUnshifted opState = iota
	opReady
	opFaulted
)

// Operand describes one symmetric input of ShiftInvert: a dense or
// sparse matrix handle plus the triangle selector naming its
// authoritative half. Build with DenseOperand or SparseOperand.
// The handle is borrowed, never copied.
type Operand struct {
	dense mat.Matrix
	sp    *sparse.CSR
	uplo  spectra.Triangle
}

// DenseOperand wraps a dense symmetric matrix whose uplo triangle is
// authoritative. Only that triangle is ever read.
func DenseOperand(m mat.Matrix, uplo spectra.Triangle) Operand {
	return Operand{dense: m, uplo: uplo}
}

// SparseOperand wraps a sparse symmetric matrix whose uplo triangle is
// authoritative. Stored entries outside that triangle are ignored.
func SparseOperand(m *sparse.CSR, uplo spectra.Triangle) Operand {
	return Operand{sp: m, uplo: uplo}
}

// sparseKind reports whether the operand is sparse.
func (o Operand) sparseKind() bool { return o.sp != nil }

// dims validates the operand and returns its square size.
func (o Operand) dims() (int, error) {
	if !o.uplo.Valid() {
		return 0, ErrBadTriangle
	}
	if o.sp != nil {
		r, c := o.sp.Dims()
		if r != c {
			return 0, ErrNonSquare
		}

		return r, nil
	}
	if o.dense == nil {
		return 0, ErrNilMatrix
	}
	r, c := o.dense.Dims()
	if r != c {
		return 0, ErrNonSquare
	}

	return r, nil
}
