// Package spectra provides shift-invert linear operators for iterative
// eigenvalue solvers over symmetric (and symmetric-definite generalized)
// eigenproblems.
//
// 🚀 What is spectra?
//
//	A small, pure-Go library that, given symmetric matrices A (and
//	optionally B) and a real shift σ, builds an operator applying
//	y = (A − σI)⁻¹x or y = (A − σB)⁻¹x without the caller caring
//	whether A and B are stored densely or sparsely, or which
//	triangular half of each is populated:
//		• matop/  — the operator layer: ShiftSolve (standard case),
//		  ShiftInvert (generalized case) and the storage-aware
//		  assembly of A − σB with minimal copying
//		• linalg/ — factorization backends: a dense Bunch–Kaufman
//		  LDLᵀ tolerant of indefinite and singular-adjacent input,
//		  and a pivoted sparse LU for symmetric sparse systems
//		• sparse/ — compressed sparse storage (COO/CSR) with the
//		  symmetric-view arithmetic the assembly layer needs
//
// The root package holds only the shared vocabulary: the Triangle
// selector (Lower/Upper) naming which half of a symmetric matrix is
// authoritative, and the CompInfo status reported by factorizations.
//
// A typical driver constructs an operator once, calls SetShift(σ)
// whenever the shift changes (each call re-assembles and re-factorizes),
// then calls Apply many times per shift:
//
//	op, err := matop.NewShiftInvert(
//		matop.DenseOperand(a, spectra.Lower),
//		matop.SparseOperand(b, spectra.Upper),
//	)
//	if err != nil { ... }
//	if err := op.SetShift(sigma); err != nil { ... }
//	y, err := op.Apply(x)
//
// Dense matrices are any gonum mat.Matrix; sparse matrices use the
// sparse package's CSR type. Operators hold non-owning references: the
// caller must keep A and B alive and unmodified for the operator's
// lifetime.
package spectra
