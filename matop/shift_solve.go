// SPDX-License-Identifier: MIT

package matop

import (
	"gonum.org/v1/gonum/mat"

	"github.com/toonijn/spectra"
	"github.com/toonijn/spectra/linalg"
)

// ShiftSolve is the standard-case operator: y = (A − σI)⁻¹x for one
// symmetric dense matrix A. The matrix handle is borrowed; the caller
// keeps A alive and unmodified for the operator's lifetime. Not safe
// for concurrent use.
type ShiftSolve struct {
	a     mat.Matrix
	uplo  spectra.Triangle
	n     int
	fac   linalg.BKLDLT
	state opState
}

// NewShiftSolve wraps symmetric matrix a, of which only the uplo
// triangle is read. Fails with ErrNonSquare when a is not square.
func NewShiftSolve(a mat.Matrix, uplo spectra.Triangle) (*ShiftSolve, error) {
	if a == nil {
		return nil, matopErrorf(opNewShiftSolve, ErrNilMatrix)
	}
	if !uplo.Valid() {
		return nil, matopErrorf(opNewShiftSolve, ErrBadTriangle)
	}
	r, c := a.Dims()
	if r != c {
		return nil, matopErrorf(opNewShiftSolve, ErrNonSquare)
	}

	return &ShiftSolve{a: a, uplo: uplo, n: r}, nil
}

// Rows returns the operator size n.
func (op *ShiftSolve) Rows() int { return op.n }

// Cols returns the operator size n.
func (op *ShiftSolve) Cols() int { return op.n }

// SetShift factorizes A − σI. The backend reads only the designated
// triangle of A and subtracts σ on the diagonal while copying, so no
// shifted copy of A is assembled here. On backend failure the operator
// enters Faulted and ErrFactorizationFailed is returned; a later call
// with a better shift restores Ready.
func (op *ShiftSolve) SetShift(sigma float64) error {
	if err := op.fac.Compute(op.a, op.uplo, sigma); err != nil {
		op.state = opFaulted

		return matopErrorf(opSetShift, ErrFactorizationFailed)
	}
	op.state = opReady

	return nil
}

// Apply computes y = (A − σI)⁻¹x for the current shift. Requires a
// prior successful SetShift (ErrShiftNotSet otherwise) and len(x) == n
// (ErrVectorLength). One triangular-solve pass; no reassembly.
func (op *ShiftSolve) Apply(x []float64) ([]float64, error) {
	if op.state != opReady {
		return nil, matopErrorf(opApply, ErrShiftNotSet)
	}
	if len(x) != op.n {
		return nil, matopErrorf(opApply, ErrVectorLength)
	}
	y, err := op.fac.Solve(x)
	if err != nil {
		return nil, matopErrorf(opApply, err)
	}

	return y, nil
}
