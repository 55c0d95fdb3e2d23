// SPDX-License-Identifier: MIT
// Package linalg: dense Bunch–Kaufman LDLᵀ factorization.
//
// BKLDLT decomposes P·M·Pᵀ = L·D·Lᵀ for a symmetric matrix M given by
// one triangular half, where L is unit lower triangular, D is block
// diagonal with 1×1 and 2×2 blocks, and P is a permutation chosen by
// the Bunch–Kaufman partial pivoting test. The 2×2 blocks are what keep
// the decomposition valid for indefinite matrices, including those with
// zero diagonal entries.
//
// The working copy is always normalized to lower-triangular row-major
// storage: an Upper input is transposed while copying, so a single
// kernel serves both selectors. Symmetric interchanges swap entire
// virtual rows/columns (including the already-computed part of L) and
// are mirrored into a permutation vector, so one global P relates the
// factors to the input.

package linalg

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/toonijn/spectra"
)

// bkAlpha is the Bunch–Kaufman pivot threshold (1+√17)/8, the value
// minimizing the worst-case element growth bound.
var bkAlpha = (1.0 + math.Sqrt(17.0)) / 8.0

// BKLDLT holds the factorization state of one matrix. The zero value is
// ready to use; buffers are reused across Compute calls of the same
// size, so a repeatedly re-shifted operator allocates only once.
// Not safe for concurrent use.
type BKLDLT struct {
	n      int
	w      []float64 // row-major n×n working copy; lower triangle authoritative
	perm   []int     // perm[i] = input index of pivoted row i
	blocks []int8    // 1: 1×1 block start; 2: 2×2 block start; 0: trailing column of a 2×2
	z      []float64 // solve workspace
	l1, l2 []float64 // 2×2 elimination workspace
	info   spectra.CompInfo
}

// Info returns the status of the most recent Compute, or NotComputed.
func (f *BKLDLT) Info() spectra.CompInfo { return f.info }

// Compute factorizes M − shift·I, where M is the symmetric matrix whose
// uplo triangle is stored in a. Only that triangle of a is read; the
// shift is subtracted from the diagonal while copying, so no shifted
// copy of a is ever formed by the caller.
//
// On success Info reports Successful and Solve becomes available. An
// exactly singular pivot reports NumericalIssue and returns ErrSingular;
// previous factorization state is overwritten either way.
// Complexity: O(n³) time, O(n²) space (reused across equal-size calls).
func (f *BKLDLT) Compute(a mat.Matrix, uplo spectra.Triangle, shift float64) error {
	f.info = spectra.NotComputed
	if a == nil {
		return linalgErrorf(opCompute, ErrNilMatrix)
	}
	if !uplo.Valid() {
		return linalgErrorf(opCompute, ErrBadTriangle)
	}
	r, c := a.Dims()
	if r != c {
		return linalgErrorf(opCompute, ErrNonSquare)
	}
	f.resize(r)

	n := f.n
	w := f.w
	// Copy the authoritative triangle into lower storage, transposing an
	// Upper input, and apply the diagonal shift in the same pass.
	var i, j int
	for i = 0; i < n; i++ {
		if uplo == spectra.Lower {
			for j = 0; j <= i; j++ {
				w[i*n+j] = a.At(i, j)
			}
		} else {
			for j = 0; j <= i; j++ {
				w[i*n+j] = a.At(j, i)
			}
		}
		w[i*n+i] -= shift
		f.perm[i] = i
		f.blocks[i] = 0
	}

	for k := 0; k < n; {
		kp, twoByTwo, ok := f.selectPivot(k)
		if !ok {
			f.info = spectra.NumericalIssue
			return linalgErrorf(opCompute, ErrSingular)
		}
		if !twoByTwo {
			if kp != k {
				f.symSwap(k, kp)
			}
			if !f.eliminate1x1(k) {
				f.info = spectra.NumericalIssue
				return linalgErrorf(opCompute, ErrSingular)
			}
			f.blocks[k] = 1
			k++
			continue
		}
		if kp != k+1 {
			f.symSwap(k+1, kp)
		}
		if !f.eliminate2x2(k) {
			f.info = spectra.NumericalIssue
			return linalgErrorf(opCompute, ErrSingular)
		}
		f.blocks[k] = 2
		f.blocks[k+1] = 0
		k += 2
	}
	f.info = spectra.Successful

	return nil
}

// resize (re)allocates working storage when the problem size changes.
func (f *BKLDLT) resize(n int) {
	if f.n == n && f.w != nil {
		return
	}
	f.n = n
	f.w = make([]float64, n*n)
	f.perm = make([]int, n)
	f.blocks = make([]int8, n)
	f.z = make([]float64, n)
	f.l1 = make([]float64, n)
	f.l2 = make([]float64, n)
}

// selectPivot runs the Bunch–Kaufman test at column k.
// Returns the interchange target kp, whether a 2×2 pivot was chosen,
// and ok=false when column k is exactly zero (no usable pivot).
func (f *BKLDLT) selectPivot(k int) (kp int, twoByTwo, ok bool) {
	n, w := f.n, f.w
	absakk := math.Abs(w[k*n+k])

	// colmax: largest subdiagonal magnitude in column k.
	colmax := 0.0
	imax := k
	for i := k + 1; i < n; i++ {
		if a := math.Abs(w[i*n+k]); a > colmax {
			colmax, imax = a, i
		}
	}
	if absakk == 0 && colmax == 0 {
		return k, false, false
	}
	if absakk >= bkAlpha*colmax {
		return k, false, true
	}

	// rowmax: largest off-diagonal magnitude in virtual row imax,
	// gathered from lower storage (row part left of the diagonal,
	// column part below it). colmax > 0 here, and w[imax,k] is one of
	// the scanned entries, so rowmax > 0.
	rowmax := 0.0
	for j := k; j < imax; j++ {
		if a := math.Abs(w[imax*n+j]); a > rowmax {
			rowmax = a
		}
	}
	for i := imax + 1; i < n; i++ {
		if a := math.Abs(w[i*n+imax]); a > rowmax {
			rowmax = a
		}
	}
	switch {
	case absakk*rowmax >= bkAlpha*colmax*colmax:
		return k, false, true
	case math.Abs(w[imax*n+imax]) >= bkAlpha*rowmax:
		return imax, false, true
	default:
		return imax, true, true
	}
}

// symSwap applies the symmetric interchange of virtual rows/columns
// r < s to the lower-triangular storage, previously computed L columns
// included, and mirrors it into the permutation vector.
func (f *BKLDLT) symSwap(r, s int) {
	n, w := f.n, f.w
	for j := 0; j < r; j++ {
		w[r*n+j], w[s*n+j] = w[s*n+j], w[r*n+j]
	}
	for i := r + 1; i < s; i++ {
		// (i, r) pairs with (s, i): both store sides of the same
		// off-diagonal entry after the interchange.
		w[i*n+r], w[s*n+i] = w[s*n+i], w[i*n+r]
	}
	w[r*n+r], w[s*n+s] = w[s*n+s], w[r*n+r]
	// the (s, r) entry is invariant under the transposition
	for i := s + 1; i < n; i++ {
		w[i*n+r], w[i*n+s] = w[i*n+s], w[i*n+r]
	}
	f.perm[r], f.perm[s] = f.perm[s], f.perm[r]
}

// eliminate1x1 applies a 1×1 pivot at k: trailing update
// S' = S − c·cᵀ/d with c the subdiagonal of column k, then stores
// L(:,k) = c/d in place. Reports false on an exactly zero pivot.
func (f *BKLDLT) eliminate1x1(k int) bool {
	n, w := f.n, f.w
	d := w[k*n+k]
	if d == 0 {
		return false
	}
	var i, j int
	var lik float64
	for i = k + 1; i < n; i++ {
		lik = w[i*n+k] / d
		if lik == 0 {
			continue
		}
		for j = k + 1; j <= i; j++ {
			w[i*n+j] -= lik * w[j*n+k]
		}
	}
	for i = k + 1; i < n; i++ {
		w[i*n+k] /= d
	}

	return true
}

// eliminate2x2 applies a 2×2 pivot at columns k, k+1: with
// E = [[e11, e21], [e21, e22]] and W the rows below the block, the
// trailing update is S' = S − W·E⁻¹·Wᵀ and L21 = W·E⁻¹. The L factors
// are buffered so the update reads the original W throughout, then
// written over columns k and k+1. Reports false when E is singular.
func (f *BKLDLT) eliminate2x2(k int) bool {
	n, w := f.n, f.w
	e11 := w[k*n+k]
	e21 := w[(k+1)*n+k]
	e22 := w[(k+1)*n+k+1]
	det := e11*e22 - e21*e21
	if det == 0 {
		return false
	}
	var i, j int
	var wi1, wi2 float64
	for i = k + 2; i < n; i++ {
		wi1, wi2 = w[i*n+k], w[i*n+k+1]
		f.l1[i] = (e22*wi1 - e21*wi2) / det
		f.l2[i] = (e11*wi2 - e21*wi1) / det
	}
	for i = k + 2; i < n; i++ {
		for j = k + 2; j <= i; j++ {
			w[i*n+j] -= f.l1[i]*w[j*n+k] + f.l2[i]*w[j*n+k+1]
		}
	}
	for i = k + 2; i < n; i++ {
		w[i*n+k] = f.l1[i]
		w[i*n+k+1] = f.l2[i]
	}

	return true
}

// SolveTo solves (M − shift·I)·y = x into dst using the most recent
// successful factorization: permute, unit-lower forward pass, block
// diagonal solve, transposed back pass, inverse permute. dst and x may
// alias. Complexity: O(n²).
func (f *BKLDLT) SolveTo(dst, x []float64) error {
	if f.info != spectra.Successful {
		return linalgErrorf(opSolve, ErrNotComputed)
	}
	n := f.n
	if len(x) != n || len(dst) != n {
		return linalgErrorf(opSolve, ErrVectorLength)
	}
	w, z := f.w, f.z
	var i, k int
	for i = 0; i < n; i++ {
		z[i] = x[f.perm[i]]
	}

	// forward: L·u = z, block by block (L rows inside a 2×2 block are
	// identity rows; the stored subdiagonal there belongs to D)
	for k = 0; k < n; {
		if f.blocks[k] == 1 {
			zk := z[k]
			if zk != 0 {
				for i = k + 1; i < n; i++ {
					z[i] -= w[i*n+k] * zk
				}
			}
			k++
			continue
		}
		zk, zk1 := z[k], z[k+1]
		for i = k + 2; i < n; i++ {
			z[i] -= w[i*n+k]*zk + w[i*n+k+1]*zk1
		}
		k += 2
	}

	// diagonal: D·v = u
	for k = 0; k < n; {
		if f.blocks[k] == 1 {
			z[k] /= w[k*n+k]
			k++
			continue
		}
		e11 := w[k*n+k]
		e21 := w[(k+1)*n+k]
		e22 := w[(k+1)*n+k+1]
		det := e11*e22 - e21*e21
		z[k], z[k+1] = (e22*z[k]-e21*z[k+1])/det, (e11*z[k+1]-e21*z[k])/det
		k += 2
	}

	// backward: Lᵀ·t = v, blocks in reverse order
	for k = n - 1; k >= 0; {
		if f.blocks[k] == 1 {
			acc := z[k]
			for i = k + 1; i < n; i++ {
				acc -= w[i*n+k] * z[i]
			}
			z[k] = acc
			k--
			continue
		}
		// blocks[k] == 0: trailing column of the 2×2 block at k-1
		kb := k - 1
		a1, a2 := z[kb], z[k]
		for i = k + 1; i < n; i++ {
			a1 -= w[i*n+kb] * z[i]
			a2 -= w[i*n+k] * z[i]
		}
		z[kb], z[k] = a1, a2
		k -= 2
	}

	for i = 0; i < n; i++ {
		dst[f.perm[i]] = z[i]
	}

	return nil
}

// Solve is the allocating form of SolveTo.
func (f *BKLDLT) Solve(x []float64) ([]float64, error) {
	dst := make([]float64, f.n)
	if err := f.SolveTo(dst, x); err != nil {
		return nil, err
	}

	return dst, nil
}
