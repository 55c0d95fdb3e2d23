// SPDX-License-Identifier: MIT

// Package linalg: functional configuration for the SparseLU backend.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.

package linalg

import "math"

// DefaultPivotTolerance is the relative threshold used by SparseLU's
// pivot acceptance test: a candidate pivot p in column k is acceptable
// when |p| >= tol * colmax(k). The value mirrors the classical sparse
// solver default (Sparse 1.x family).
const DefaultPivotTolerance = 1e-3

// DefaultSymmetric controls whether SparseLU assumes a symmetric
// nonzero pattern and prefers diagonal pivots. The operator layer
// enables it explicitly for the sparse/sparse assembly path.
const DefaultSymmetric = false

const panicPivotToleranceInvalid = "linalg: WithPivotTolerance: tol must be in (0, 1]"

// Option mutates SparseLU configuration. Safe to apply repeatedly.
type Option func(*options)

// options stores the effective configuration after applying setters.
type options struct {
	pivTol    float64 // pivot acceptance threshold, (0, 1]
	symmetric bool    // symmetric-pattern hint (diagonal preference)
}

// WithPivotTolerance sets the relative pivot acceptance threshold.
// Smaller values preserve more of the original pattern (less row
// exchange, more fill-friendly) at the cost of numerical safety margin;
// tol = 1 degenerates to plain partial pivoting.
// Panics with a stable message when tol is outside (0, 1].
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || tol <= 0 || tol > 1 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *options) { o.pivTol = tol }
}

// WithSymmetric declares the matrix pattern symmetric. The factorization
// then keeps the diagonal entry as pivot whenever it passes the
// threshold test, which preserves the symmetric fill structure.
func WithSymmetric() Option {
	return func(o *options) { o.symmetric = true }
}

// WithoutSymmetric disables the symmetric-pattern hint (default).
func WithoutSymmetric() Option {
	return func(o *options) { o.symmetric = false }
}

// gatherOptions applies setters on top of documented defaults,
// last-writer-wins.
func gatherOptions(user ...Option) options {
	o := options{
		pivTol:    DefaultPivotTolerance,
		symmetric: DefaultSymmetric,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
