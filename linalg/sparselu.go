// SPDX-License-Identifier: MIT
// Package linalg: sparse LU factorization.
//
// SparseLU eliminates a CSR matrix into P·M = L·U with partial
// pivoting. In symmetric mode the diagonal entry is kept as pivot
// whenever its magnitude passes tol·colmax (threshold pivoting, which
// preserves the symmetric fill structure); otherwise, and whenever the
// test fails, the largest column candidate is exchanged in. Rows
// live in per-row maps during elimination so fill-in costs O(1) per
// created entry; the finished factors are compressed into sorted
// per-row arrays so repeated Solve calls are cheap and deterministic.

package linalg

import (
	"math"
	"sort"

	"github.com/toonijn/spectra"
	"github.com/toonijn/spectra/sparse"
)

// luRow is one compressed factor row: sorted column indices and values.
type luRow struct {
	ind  []int
	vals []float64
}

// SparseLU holds the factorization state of one sparse matrix.
// Construct with NewSparseLU; the zero value uses zeroed options and is
// not meant for direct use. Not safe for concurrent use.
type SparseLU struct {
	opts options
	n    int
	perm []int   // perm[k] = input row eliminated at step k
	l    []luRow // unit lower triangle, diagonal omitted
	u    []luRow // upper triangle, diagonal included
	z    []float64
	info spectra.CompInfo
}

// NewSparseLU creates a backend with the given options.
func NewSparseLU(opts ...Option) *SparseLU {
	return &SparseLU{opts: gatherOptions(opts...)}
}

// Info returns the status of the most recent Compute, or NotComputed.
func (f *SparseLU) Info() spectra.CompInfo { return f.info }

// Compute factorizes a. The matrix must be square; a column with no
// usable pivot (exactly singular system) reports NumericalIssue and
// returns ErrSingular. Previous factorization state is discarded.
// Complexity: O(n² + fill) worst case, O(nnz + fill) arithmetic.
func (f *SparseLU) Compute(a *sparse.CSR) error {
	f.info = spectra.NotComputed
	if a == nil {
		return linalgErrorf(opCompute, ErrNilMatrix)
	}
	r, c := a.Dims()
	if r != c {
		return linalgErrorf(opCompute, ErrNonSquare)
	}
	n := r
	f.n = n
	f.perm = make([]int, n)
	f.l = make([]luRow, n)
	f.u = make([]luRow, n)
	f.z = make([]float64, n)

	// Working rows as maps; fill-in inserts are O(1).
	rows := make([]map[int]float64, n)
	a.DoNonZero(func(i, j int, v float64) {
		if rows[i] == nil {
			rows[i] = make(map[int]float64)
		}
		rows[i][j] += v
	})
	for i := 0; i < n; i++ {
		if rows[i] == nil {
			rows[i] = make(map[int]float64)
		}
		f.perm[i] = i
	}
	lmaps := make([]map[int]float64, n)
	for i := range lmaps {
		lmaps[i] = make(map[int]float64)
	}

	for k := 0; k < n; k++ {
		// Pivot search over column k of the remaining rows.
		colmax := 0.0
		imax := k
		for i := k; i < n; i++ {
			if mag := math.Abs(rows[i][k]); mag > colmax {
				colmax, imax = mag, i
			}
		}
		if colmax == 0 {
			f.info = spectra.NumericalIssue
			return linalgErrorf(opCompute, ErrSingular)
		}
		p := imax
		if f.opts.symmetric && math.Abs(rows[k][k]) >= f.opts.pivTol*colmax {
			// Diagonal preference: keeping row k as pivot preserves the
			// symmetric fill structure whenever it is numerically safe.
			p = k
		}
		if p != k {
			rows[k], rows[p] = rows[p], rows[k]
			lmaps[k], lmaps[p] = lmaps[p], lmaps[k]
			f.perm[k], f.perm[p] = f.perm[p], f.perm[k]
		}

		piv := rows[k][k]
		for i := k + 1; i < n; i++ {
			e, found := rows[i][k]
			if !found || e == 0 {
				continue
			}
			mult := e / piv
			lmaps[i][k] = mult
			delete(rows[i], k)
			for j, v := range rows[k] {
				if j > k {
					rows[i][j] -= mult * v
				}
			}
		}
	}

	// Compress factors into sorted rows for deterministic, cheap solves.
	for i := 0; i < n; i++ {
		f.l[i] = compressRow(lmaps[i])
		f.u[i] = compressRow(rows[i])
	}
	f.info = spectra.Successful

	return nil
}

// compressRow flattens a map row into ascending column order.
func compressRow(m map[int]float64) luRow {
	row := luRow{
		ind:  make([]int, 0, len(m)),
		vals: make([]float64, 0, len(m)),
	}
	for j := range m {
		row.ind = append(row.ind, j)
	}
	sort.Ints(row.ind)
	for _, j := range row.ind {
		row.vals = append(row.vals, m[j])
	}

	return row
}

// SolveTo solves M·y = x into dst using the most recent successful
// factorization: permute the right-hand side by the recorded row
// exchanges, forward-substitute through unit-lower L, back-substitute
// through U. dst and x may alias. Complexity: O(nnz(L) + nnz(U)).
func (f *SparseLU) SolveTo(dst, x []float64) error {
	if f.info != spectra.Successful {
		return linalgErrorf(opSolve, ErrNotComputed)
	}
	n := f.n
	if len(x) != n || len(dst) != n {
		return linalgErrorf(opSolve, ErrVectorLength)
	}
	z := f.z
	var i, k int
	for i = 0; i < n; i++ {
		z[i] = x[f.perm[i]]
	}
	// forward: L has unit diagonal, entries strictly left of it
	for i = 0; i < n; i++ {
		acc := z[i]
		row := f.l[i]
		for k = range row.ind {
			acc -= row.vals[k] * z[row.ind[k]]
		}
		z[i] = acc
	}
	// backward: U rows start at the diagonal
	for i = n - 1; i >= 0; i-- {
		acc := z[i]
		row := f.u[i]
		div := 0.0
		for k = range row.ind {
			if row.ind[k] == i {
				div = row.vals[k]
				continue
			}
			acc -= row.vals[k] * z[row.ind[k]]
		}
		z[i] = acc / div
	}
	copy(dst, z)

	return nil
}

// Solve is the allocating form of SolveTo.
func (f *SparseLU) Solve(x []float64) ([]float64, error) {
	dst := make([]float64, f.n)
	if err := f.SolveTo(dst, x); err != nil {
		return nil, err
	}

	return dst, nil
}
