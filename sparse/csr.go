// SPDX-License-Identifier: MIT

package sparse

import "fmt"

// CSR is a compressed-sparse-row matrix of float64 values.
// Row i occupies ind[indptr[i]:indptr[i+1]] (column indices, ascending)
// and the matching vals range. CSR values are read-only after
// construction; build them through COO.ToCSR.
type CSR struct {
	r, c   int       // shape
	indptr []int     // row pointers, length r+1
	ind    []int     // column indices, length nnz
	vals   []float64 // values, length nnz
}

// Dims returns the matrix shape.
func (m *CSR) Dims() (r, c int) { return m.r, m.c }

// NNZ returns the number of stored entries (including explicit zeros).
func (m *CSR) NNZ() int { return len(m.vals) }

// At returns the value at (i, j), zero when the position is not stored.
// Returns ErrOutOfRange on an out-of-bounds index.
// Complexity: O(row nnz) scan; rows are short in the intended workloads.
func (m *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r {
		return 0, fmt.Errorf("At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if j < 0 || j >= m.c {
		return 0, fmt.Errorf("At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
		if m.ind[k] == j {
			return m.vals[k], nil
		}
	}

	return 0, nil
}

// DoNonZero calls fn once per stored entry in row-major order.
func (m *CSR) DoNonZero(fn func(i, j int, v float64)) {
	for i := 0; i < m.r; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			fn(i, m.ind[k], m.vals[k])
		}
	}
}

// MulVec computes dst = m * x.
// dst must have length r and x length c; dst is fully overwritten.
// Complexity: O(nnz).
func (m *CSR) MulVec(dst, x []float64) error {
	if len(x) != m.c || len(dst) != m.r {
		return fmt.Errorf("MulVec: %w", ErrDimensionMismatch)
	}
	var acc float64
	for i := 0; i < m.r; i++ {
		acc = 0
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			acc += m.vals[k] * x[m.ind[k]]
		}
		dst[i] = acc
	}

	return nil
}

// Transpose returns a freshly allocated mᵀ.
// Counting pass + scatter pass; deterministic output order.
// Complexity: O(nnz + r + c).
func (m *CSR) Transpose() *CSR {
	out := &CSR{
		r:      m.c,
		c:      m.r,
		indptr: make([]int, m.c+1),
		ind:    make([]int, len(m.ind)),
		vals:   make([]float64, len(m.vals)),
	}
	// count entries per output row (= input column)
	for _, j := range m.ind {
		out.indptr[j+1]++
	}
	for j := 0; j < m.c; j++ {
		out.indptr[j+1] += out.indptr[j]
	}
	// scatter; next tracks the write cursor per output row
	next := make([]int, m.c)
	copy(next, out.indptr[:m.c])
	for i := 0; i < m.r; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			j := m.ind[k]
			p := next[j]
			out.ind[p] = i
			out.vals[p] = m.vals[k]
			next[j]++
		}
	}

	return out
}

// Clone returns a deep copy.
func (m *CSR) Clone() *CSR {
	out := &CSR{
		r:      m.r,
		c:      m.c,
		indptr: make([]int, len(m.indptr)),
		ind:    make([]int, len(m.ind)),
		vals:   make([]float64, len(m.vals)),
	}
	copy(out.indptr, m.indptr)
	copy(out.ind, m.ind)
	copy(out.vals, m.vals)

	return out
}
