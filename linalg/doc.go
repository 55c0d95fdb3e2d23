// Package linalg provides the two interchangeable factorization backends
// behind the shift-invert operators.
//
// The linalg package provides:
//
//   - BKLDLT, a dense Bunch–Kaufman LDLᵀ factorization with 1×1/2×2
//     diagonal pivoting. It reads a single triangular half of a symmetric
//     matrix (optionally subtracting a shift from the diagonal) and stays
//     valid for indefinite and singular-adjacent input.
//   - SparseLU, an LU factorization with threshold partial pivoting over
//     row-map sparse storage, with a diagonal-preference mode for systems
//     whose pattern is symmetric.
//
// Both expose the same contract: Compute, Solve and an Info status query.
// A failed Compute leaves the backend refusing Solve until a later
// Compute succeeds; backends never retry internally.
package linalg
