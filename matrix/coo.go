// SPDX-License-Identifier: MIT

// Package matrix - COO (coordinate list) staging buffer.
//
// Purpose:
//   - Collect (row, col, value) triplets in any order, then freeze them into CSR.
//   - Validate every triplet at ingestion time so CSR never holds NaN/Inf or
//     out-of-range indices.
//
// Policy:
//   - Duplicate (row, col) pushes are NOT accumulated: the last push wins.
//     Weight builders rely on this overwrite semantics.

package matrix

import (
	"cmp"
	"slices"
)

const (
	opNewCOO = "NewCOO"
	opPush   = "COO.Push"
)

// COO is an append-only triplet buffer of shape r×c.
type COO struct {
	r, c int
	rows []int
	cols []int
	vals []float64
}

// NewCOO returns an empty r×c triplet buffer.
// Errors: ErrInvalidDimensions when r or c is negative.
// Complexity: O(1).
func NewCOO(r, c int) (*COO, error) {
	if err := ValidateDims(r, c); err != nil {
		return nil, matrixErrorf(opNewCOO, err)
	}

	return &COO{r: r, c: c}, nil
}

// Dims returns the declared shape.
func (m *COO) Dims() (int, int) { return m.r, m.c }

// Len returns the number of pushed triplets, duplicates included.
func (m *COO) Len() int { return len(m.vals) }

// Push appends the triplet (i, j, v).
// Errors: ErrOutOfRange for indices outside the shape, ErrNaNInf for non-finite v.
// Complexity: amortised O(1).
func (m *COO) Push(i, j int, v float64) error {
	if m == nil {
		return matrixErrorf(opPush, ErrNilMatrix)
	}
	if err := ValidateIndex(i, j, m.r, m.c); err != nil {
		return matrixErrorf(opPush, err)
	}
	if err := ValidateFinite(v); err != nil {
		return matrixErrorf(opPush, err)
	}
	m.rows = append(m.rows, i)
	m.cols = append(m.cols, j)
	m.vals = append(m.vals, v)

	return nil
}

// ToCSR freezes the buffer into compressed sparse row form.
// Columns inside each row are sorted ascending; for duplicate (i, j) the
// last pushed value is kept. Explicit zeros are stored as given.
//
// Complexity: O(k log k) for k pushed triplets.
func (m *COO) ToCSR() *CSR {
	k := len(m.vals)
	order := make([]int, k)
	for t := range order {
		order[t] = t
	}
	// Stable sort keeps push order among duplicates, so the last one is the winner.
	slices.SortStableFunc(order, func(a, b int) int {
		if c := cmp.Compare(m.rows[a], m.rows[b]); c != 0 {
			return c
		}
		return cmp.Compare(m.cols[a], m.cols[b])
	})

	out := &CSR{
		r:       m.r,
		c:       m.c,
		indptr:  make([]int, m.r+1),
		indices: make([]int, 0, k),
		data:    make([]float64, 0, k),
	}
	for t := 0; t < k; t++ {
		cur := order[t]
		if t+1 < k {
			next := order[t+1]
			if m.rows[next] == m.rows[cur] && m.cols[next] == m.cols[cur] {
				continue // a later duplicate overwrites this one
			}
		}
		out.indices = append(out.indices, m.cols[cur])
		out.data = append(out.data, m.vals[cur])
		out.indptr[m.rows[cur]+1]++
	}
	for i := 0; i < m.r; i++ {
		out.indptr[i+1] += out.indptr[i]
	}

	return out
}
