// SPDX-License-Identifier: MIT
// Package matop: the four assembly cases behind ShiftInvert.SetShift.
//
// Each case builds the shifted matrix A − σB for one storage
// combination and hands it to the matching backend. The contract that
// all four respect:
//
//   - the result is sparse only when BOTH operands are sparse; then the
//     symmetric views are expanded and combined sparsely and a sparse LU
//     factorizes the result, avoiding dense fill-in;
//   - in every mixed or dense case, only ONE triangular half of the
//     dense scratch matrix is written — the non-sparse operand's
//     triangle (A's when both are dense). When the other operand's
//     selector disagrees, its triangle is read transposed into
//     alignment. The other operand is never symmetrized in full, and a
//     sparse operand is never materialized densely: the realignment
//     costs O(n²) or O(nnz) instead of a full symmetric copy.
//
// The scratch matrix is owned by the operator and overwritten in place
// on every shift; only the backend's decomposition outlives the call.

package matop

import "github.com/toonijn/spectra/sparse"

// assembleDenseDense: A dense, B dense. Copy A's triangle, subtract
// σ·B within it (transposed read when the selectors disagree),
// factorize with A's triangle.
func (op *ShiftInvert) assembleDenseDense(sigma float64) error {
	n := op.n
	uploA, uploB := op.a.uplo, op.b.uplo
	aligned := uploA == uploB
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if !uploA.Contains(i, j) {
				continue
			}
			v = op.a.dense.At(i, j)
			if aligned {
				v -= sigma * op.b.dense.At(i, j)
			} else {
				v -= sigma * op.b.dense.At(j, i)
			}
			op.scratch.Set(i, j, v)
		}
	}

	return op.fac.Compute(op.scratch, uploA, 0)
}

// assembleDenseSparse: A dense, B sparse. Copy A's triangle, then
// scatter −σ·B's stored triangle entries into it, transposing indices
// when the selectors disagree. B stays sparse throughout.
func (op *ShiftInvert) assembleDenseSparse(sigma float64) error {
	n := op.n
	uploA, uploB := op.a.uplo, op.b.uplo
	aligned := uploA == uploB
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if uploA.Contains(i, j) {
				op.scratch.Set(i, j, op.a.dense.At(i, j))
			}
		}
	}
	op.b.sp.DoNonZero(func(i, j int, v float64) {
		if !uploB.Contains(i, j) {
			return
		}
		if !aligned {
			i, j = j, i
		}
		op.scratch.Set(i, j, op.scratch.At(i, j)-sigma*v)
	})

	return op.fac.Compute(op.scratch, uploA, 0)
}

// assembleSparseDense: A sparse, B dense. Symmetric to the previous
// case but driven by B's triangle: build −σ·B restricted to it, add
// A's stored triangle entries (transposed when the selectors
// disagree), factorize with B's triangle.
func (op *ShiftInvert) assembleSparseDense(sigma float64) error {
	n := op.n
	uploA, uploB := op.a.uplo, op.b.uplo
	aligned := uploA == uploB
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if uploB.Contains(i, j) {
				op.scratch.Set(i, j, -sigma*op.b.dense.At(i, j))
			}
		}
	}
	op.a.sp.DoNonZero(func(i, j int, v float64) {
		if !uploA.Contains(i, j) {
			return
		}
		if !aligned {
			i, j = j, i
		}
		op.scratch.Set(i, j, op.scratch.At(i, j)+v)
	})

	return op.fac.Compute(op.scratch, uploB, 0)
}

// assembleSparseSparse: the default case. Expand the symmetric views of
// both operands, combine sym(A) − σ·sym(B) sparsely and factorize with
// the sparse LU in symmetric mode.
func (op *ShiftInvert) assembleSparseSparse(sigma float64) error {
	m, err := sparse.SymShifted(op.a.sp, op.b.sp, op.a.uplo, op.b.uplo, sigma)
	if err != nil {
		return err
	}

	return op.slu.Compute(m)
}
