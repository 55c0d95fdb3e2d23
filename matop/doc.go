// Package matop provides the shift-invert matrix operators consumed by
// iterative eigenvalue solvers.
//
// The matop package provides:
//
//   - ShiftSolve, wrapping one symmetric dense matrix A: after
//     SetShift(σ), Apply computes y = (A − σI)⁻¹x.
//   - ShiftInvert, wrapping two symmetric matrices A and B (each
//     independently dense or sparse): after SetShift(σ), Apply computes
//     y = (A − σB)⁻¹x.
//
// Both operators share one lifecycle: construct once, call SetShift
// whenever σ changes (each call re-assembles the shifted matrix and
// re-factorizes), then call Apply many times per shift. Apply before a
// successful SetShift, or after a failed one, is a reported error —
// never a silent computation on stale state.
//
// The heart of ShiftInvert is the assembly strategy: one of four
// storage-combination algorithms, bound at construction, builds A − σB
// with the minimum amount of copying. When both operands are sparse the
// result is assembled sparse and handed to a sparse LU; in every other
// combination only a single triangular half of a dense scratch matrix
// is written — reading the second operand transposed when the two
// triangle selectors disagree — and handed to a dense Bunch–Kaufman
// LDLᵀ. A sparse operand is never expanded into a dense copy.
//
// Operators hold non-owning references: the caller must keep A and B
// alive and unmodified for the operator's lifetime. An operator
// instance is not safe for concurrent use; distinct instances are
// fully independent.
package matop
