// Package sparse provides the compressed sparse storage consumed by the
// factorization and operator layers.
//
// The sparse package provides:
//
//   - COO, a coordinate (triplet) builder: append entries in any order,
//     duplicates are summed on conversion.
//   - CSR, compressed sparse rows with O(nnz) traversal, matrix-vector
//     products and transposition.
//   - SymView / SymShifted, the symmetric-view arithmetic used to build
//     the shifted matrix A − σB when both operands are sparse.
//
// CSR values are immutable after construction; build through COO.
package sparse
