// SPDX-License-Identifier: MIT

// Package matrix - CSR (compressed sparse row) storage.
//
// Purpose:
//   - Hold an r×c sparse matrix as indptr/indices/data with sorted columns per row.
//   - Offer the two kernels spatial statistics need: row normalisation and y = A·x.
//   - Interoperate with gonum through the mat.Matrix interface.
//
// Immutability:
//   - A CSR is never mutated after ToCSR/NormalizeRows returns it. Every method
//     that hands out row data returns copies, so a CSR can be shared read-only
//     by any number of goroutines.
//
// Complexity quicksheet:
//   - At/Get: O(log nnz(row)); Row: O(nnz(row)); MulVec/RowSums/NormalizeRows: O(nnz).

package matrix

import (
	"fmt"
	"slices"
	"strings"

	"gonum.org/v1/gonum/mat"
)

const (
	opGet    = "CSR.Get"
	opRow    = "CSR.Row"
	opMulVec = "CSR.MulVec"
)

// CSR is an immutable compressed-sparse-row matrix.
type CSR struct {
	r, c    int
	indptr  []int     // len r+1; row i occupies [indptr[i], indptr[i+1])
	indices []int     // column ids, ascending inside each row
	data    []float64 // values aligned with indices
}

// CSR plugs into gonum routines that accept a read-only matrix.
var (
	_ mat.Matrix   = (*CSR)(nil)
	_ fmt.Stringer = (*CSR)(nil)
)

// Dims returns (rows, cols). Part of mat.Matrix.
func (m *CSR) Dims() (int, int) { return m.r, m.c }

// At returns the element at (i, j); missing entries are 0.
// Part of mat.Matrix and therefore follows gonum's contract: it panics with
// mat.ErrRowAccess / mat.ErrColAccess on out-of-range indices. Use Get for an
// error-returning accessor.
func (m *CSR) At(i, j int) float64 {
	if i < 0 || i >= m.r {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= m.c {
		panic(mat.ErrColAccess)
	}

	return m.at(i, j)
}

// T returns the implicit transpose. Part of mat.Matrix.
func (m *CSR) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// Get returns the element at (i, j) or ErrOutOfRange.
func (m *CSR) Get(i, j int) (float64, error) {
	if err := ValidateIndex(i, j, m.r, m.c); err != nil {
		return 0, matrixErrorf(opGet, err)
	}

	return m.at(i, j), nil
}

func (m *CSR) at(i, j int) float64 {
	lo, hi := m.indptr[i], m.indptr[i+1]
	if k, ok := slices.BinarySearch(m.indices[lo:hi], j); ok {
		return m.data[lo+k]
	}

	return 0
}

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int { return len(m.data) }

// RowNNZ returns the number of stored entries in row i (0 for out-of-range rows).
func (m *CSR) RowNNZ(i int) int {
	if i < 0 || i >= m.r {
		return 0
	}

	return m.indptr[i+1] - m.indptr[i]
}

// Row returns copies of the column ids and values stored in row i,
// in ascending column order.
// Errors: ErrOutOfRange.
func (m *CSR) Row(i int) ([]int, []float64, error) {
	if i < 0 || i >= m.r {
		return nil, nil, matrixErrorf(opRow, ErrOutOfRange)
	}
	lo, hi := m.indptr[i], m.indptr[i+1]

	return slices.Clone(m.indices[lo:hi]), slices.Clone(m.data[lo:hi]), nil
}

// RowSums returns s where s[i] = Σ_j A[i,j].
func (m *CSR) RowSums() []float64 {
	sums := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			sums[i] += m.data[k]
		}
	}

	return sums
}

// MulVec returns y = A·x.
// Errors: ErrDimensionMismatch when len(x) != Cols.
// Complexity: O(nnz).
func (m *CSR) MulVec(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	y := make([]float64, m.r)
	var s float64
	for i := 0; i < m.r; i++ {
		s = 0
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			s += m.data[k] * x[m.indices[k]]
		}
		y[i] = s
	}

	return y, nil
}

// NormalizeRows returns a copy where every row is divided by its sum, plus the
// per-row sums. Rows whose sum is 0 (islands) stay as they are, so an empty
// row keeps contributing a zero product.
// Complexity: O(nnz).
func (m *CSR) NormalizeRows() (*CSR, []float64) {
	sums := m.RowSums()
	out := &CSR{
		r:       m.r,
		c:       m.c,
		indptr:  slices.Clone(m.indptr),
		indices: slices.Clone(m.indices),
		data:    make([]float64, len(m.data)),
	}
	for i := 0; i < m.r; i++ {
		scale := 1.0
		if sums[i] != 0 {
			scale = 1.0 / sums[i]
		}
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			out.data[k] = m.data[k] * scale
		}
	}

	return out, sums
}

// Equal reports whether a and b have identical shape, structure and values.
func (m *CSR) Equal(o *CSR) bool {
	if m == nil || o == nil {
		return m == o
	}

	return m.r == o.r && m.c == o.c &&
		slices.Equal(m.indptr, o.indptr) &&
		slices.Equal(m.indices, o.indices) &&
		slices.Equal(m.data, o.data)
}

// ToDense materialises the matrix as a gonum *mat.Dense.
// A 0-sized matrix yields an empty (zero value) Dense.
// Complexity: O(r*c).
func (m *CSR) ToDense() *mat.Dense {
	if m.r == 0 || m.c == 0 {
		return &mat.Dense{}
	}
	d := mat.NewDense(m.r, m.c, nil)
	for i := 0; i < m.r; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			d.Set(i, m.indices[k], m.data[k])
		}
	}

	return d
}

// String renders one line per non-empty row: "i: [j=v, ...]".
func (m *CSR) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "CSR %dx%d nnz=%d\n", m.r, m.c, len(m.data))
	for i := 0; i < m.r; i++ {
		lo, hi := m.indptr[i], m.indptr[i+1]
		if lo == hi {
			continue
		}
		fmt.Fprintf(&sb, "%d: [", i)
		for k := lo; k < hi; k++ {
			if k > lo {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d=%g", m.indices[k], m.data[k])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
