// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set. All entry points return these
// sentinels (possibly wrapped with fmt.Errorf("ctx: %w", ...)) and tests
// check them via errors.Is. No function panics on user-triggered
// conditions.

package sparse

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. SymShifted on differently sized matrices or MulVec
	// with a wrong vector length.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("sparse: matrix is not square")

	// ErrNilMatrix indicates a nil *COO or *CSR receiver or argument.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)
