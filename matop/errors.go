// SPDX-License-Identifier: MIT
// Package matop: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matop package. All operators MUST return these sentinels and tests
// MUST check them via errors.Is. No operator panics on user-triggered
// error conditions.

package matop

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates a nil matrix handle at construction.
	ErrNilMatrix = errors.New("matop: nil matrix")

	// ErrNonSquare is returned at construction when an operand is not
	// square. Fatal: no operator value is produced.
	ErrNonSquare = errors.New("matop: matrix is not square")

	// ErrDimensionMismatch is returned at construction when A and B
	// differ in size. Fatal: no operator value is produced.
	ErrDimensionMismatch = errors.New("matop: A and B dimensions differ")

	// ErrBadTriangle signals an undefined Triangle selector.
	ErrBadTriangle = errors.New("matop: invalid triangle selector")

	// ErrFactorizationFailed is returned by SetShift when the selected
	// backend reports non-success for the assembled shifted matrix. The
	// operator enters the Faulted state; the driver may retry with a
	// different shift.
	ErrFactorizationFailed = errors.New("matop: factorization failed with the given shift")

	// ErrShiftNotSet is returned by Apply before any successful SetShift
	// and after a failed one (the Faulted state). Stale decompositions
	// are never consulted.
	ErrShiftNotSet = errors.New("matop: no successful shift has been set")

	// ErrVectorLength indicates an Apply vector of the wrong length.
	ErrVectorLength = errors.New("matop: vector length mismatch")
)

// Operation name constants for unified error wrapping.
const (
	opNewShiftSolve  = "NewShiftSolve"
	opNewShiftInvert = "NewShiftInvert"
	opSetShift       = "SetShift"
	opApply          = "Apply"
)

// matopErrorf wraps err with an operation tag, preserving the original
// sentinel for errors.Is. Call only with err != nil.
func matopErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
