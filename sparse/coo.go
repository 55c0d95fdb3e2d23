// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"sort"
)

// COO is a coordinate-format (triplet) sparse matrix builder.
// Entries may be appended in any order; duplicates at the same position
// are summed when converting to CSR. COO is append-only.
type COO struct {
	r, c int       // shape
	rows []int     // row index per entry
	cols []int     // column index per entry
	vals []float64 // value per entry
}

// NewCOO creates an empty r×c coordinate matrix.
// Returns ErrBadShape when r <= 0 or c <= 0.
func NewCOO(rows, cols int) (*COO, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &COO{r: rows, c: cols}, nil
}

// Dims returns the matrix shape.
func (m *COO) Dims() (r, c int) { return m.r, m.c }

// NNZ returns the number of appended entries (duplicates counted).
func (m *COO) NNZ() int { return len(m.vals) }

// Append records entry (i, j) = v. Duplicate positions are legal and are
// summed by ToCSR. Returns ErrOutOfRange on an out-of-bounds index.
func (m *COO) Append(i, j int, v float64) error {
	if i < 0 || i >= m.r {
		return fmt.Errorf("Append(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if j < 0 || j >= m.c {
		return fmt.Errorf("Append(%d,%d): %w", i, j, ErrOutOfRange)
	}
	m.rows = append(m.rows, i)
	m.cols = append(m.cols, j)
	m.vals = append(m.vals, v)

	return nil
}

// ToCSR compresses the triplets into a CSR matrix.
// Entries are sorted by (row, col) with a stable deterministic order and
// duplicates are summed in append order. Explicit zeros that survive
// summation are kept; callers that care can rebuild without them.
// Complexity: O(nnz log nnz) time, O(nnz) extra space.
func (m *COO) ToCSR() *CSR {
	nnz := len(m.vals)
	order := make([]int, nnz)
	for k := range order {
		order[k] = k
	}
	// Stable sort keeps append order inside a duplicate group, so the
	// summation order below is deterministic.
	sort.SliceStable(order, func(a, b int) bool {
		ka, kb := order[a], order[b]
		if m.rows[ka] != m.rows[kb] {
			return m.rows[ka] < m.rows[kb]
		}

		return m.cols[ka] < m.cols[kb]
	})

	out := &CSR{
		r:      m.r,
		c:      m.c,
		indptr: make([]int, m.r+1),
	}
	var prevI, prevJ = -1, -1 // previous compressed position
	for _, k := range order {
		i, j, v := m.rows[k], m.cols[k], m.vals[k]
		if i == prevI && j == prevJ {
			// duplicate: accumulate into the last compressed entry
			out.vals[len(out.vals)-1] += v
			continue
		}
		out.ind = append(out.ind, j)
		out.vals = append(out.vals, v)
		out.indptr[i+1]++
		prevI, prevJ = i, j
	}
	// prefix-sum row counts into row pointers
	for i := 0; i < m.r; i++ {
		out.indptr[i+1] += out.indptr[i]
	}

	return out
}
