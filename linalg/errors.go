// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set. All backends return these
// sentinels, wrapped at the facade with an operation tag, and tests
// match them via errors.Is.

package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrBadTriangle signals an undefined Triangle selector.
	ErrBadTriangle = errors.New("linalg: invalid triangle selector")

	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("linalg: nil matrix")

	// ErrSingular is returned by Compute when an exactly singular pivot
	// (or singular 2×2 block) makes the decomposition impossible.
	ErrSingular = errors.New("linalg: matrix is singular")

	// ErrNotComputed is returned by Solve when no successful Compute has
	// run, including after a Compute that failed.
	ErrNotComputed = errors.New("linalg: factorization not computed")

	// ErrVectorLength indicates a right-hand side or destination vector
	// whose length does not match the factorized size.
	ErrVectorLength = errors.New("linalg: vector length mismatch")
)

// Operation name constants for unified error wrapping.
const (
	opCompute = "Compute"
	opSolve   = "Solve"
)

// linalgErrorf wraps err with an operation tag, preserving the original
// sentinel for errors.Is. Call only with err != nil.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
