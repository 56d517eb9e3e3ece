// SPDX-License-Identifier: MIT
// Package: geolisa/weights
//
// weights.go — the spatial weight matrix W: for each observation id in
// [0,N) a mapping neighbour-id → weight.
//
// Invariants:
//   • No self-pairs: id is never its own neighbour.
//   • Every stored neighbour id lies in [0,N).
//   • Builders create an entry for every id; an empty entry is an island.
//   • The Matrix is immutable once returned and safe for concurrent reads.

package weights

import (
	"fmt"
	"sort"
	"strings"
)

// Matrix is a sparse spatial weight matrix over N observations.
type Matrix struct {
	n    int
	rows map[int]map[int]float64
}

// newMatrix returns an N-element matrix where every id has an empty entry.
func newMatrix(n int) *Matrix {
	rows := make(map[int]map[int]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make(map[int]float64)
	}
	return &Matrix{n: n, rows: rows}
}

// link stores w at (o,d) and (d,o). Callers guarantee o != d.
func (m *Matrix) link(o, d int, w float64) {
	m.rows[o][d] = w
	m.rows[d][o] = w
}

// N returns the number of observations.
func (m *Matrix) N() int { return m.n }

// HasEntry reports whether id has an entry (possibly empty).
func (m *Matrix) HasEntry(id int) bool {
	_, ok := m.rows[id]
	return ok
}

// entry resolves id to its neighbour map or a contextual error.
func (m *Matrix) entry(method string, id int) (map[int]float64, error) {
	if id < 0 || id >= m.n {
		return nil, fmt.Errorf("%s: id %d (N=%d): %w", method, id, m.n, ErrIDOutOfRange)
	}
	row, ok := m.rows[id]
	if !ok {
		return nil, fmt.Errorf("%s: id %d: %w", method, id, ErrUnknownID)
	}

	return row, nil
}

// Neighbors returns the neighbour ids of id in ascending order. Islands
// yield an empty, non-nil slice.
func (m *Matrix) Neighbors(id int) ([]int, error) {
	row, err := m.entry("Neighbors", id)
	if err != nil {
		return nil, err
	}

	return sortedKeys(row), nil
}

// AreNeighbors reports whether dest is a neighbour of origin.
// An out-of-range dest is simply not a neighbour.
func (m *Matrix) AreNeighbors(origin, dest int) (bool, error) {
	row, err := m.entry("AreNeighbors", origin)
	if err != nil {
		return false, err
	}
	_, ok := row[dest]

	return ok, nil
}

// Weight returns the stored weight of (origin, dest) and whether the pair is
// linked. Unknown ids are reported as unlinked.
func (m *Matrix) Weight(origin, dest int) (float64, bool) {
	w, ok := m.rows[origin][dest]
	return w, ok
}

// Cardinalities returns the neighbour count of every id; ids without an
// entry count as zero.
func (m *Matrix) Cardinalities() []int {
	out := make([]int, m.n)
	for id, row := range m.rows {
		out[id] = len(row)
	}
	return out
}

// MaxNeighbors returns the largest neighbour count.
func (m *Matrix) MaxNeighbors() int {
	var best int
	for _, row := range m.rows {
		if len(row) > best {
			best = len(row)
		}
	}
	return best
}

// Islands returns, ascending, the ids with no neighbours.
func (m *Matrix) Islands() []int {
	out := make([]int, 0)
	for id := 0; id < m.n; id++ {
		if len(m.rows[id]) == 0 {
			out = append(out, id)
		}
	}
	return out
}

// NumLinks returns the number of directed (origin, dest) pairs stored.
func (m *Matrix) NumLinks() int {
	var total int
	for _, row := range m.rows {
		total += len(row)
	}
	return total
}

// IsSymmetric reports whether every link (o,d,w) has a reverse (d,o,w).
func (m *Matrix) IsSymmetric() bool {
	for o, row := range m.rows {
		for d, w := range row {
			back, ok := m.rows[d][o]
			if !ok || back != w {
				return false
			}
		}
	}
	return true
}

// String renders one line per id: "id: [d=w, ...]".
func (m *Matrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "weights.Matrix N=%d links=%d\n", m.n, m.NumLinks())
	for id := 0; id < m.n; id++ {
		row, ok := m.rows[id]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "%d: [", id)
		for k, d := range sortedKeys(row) {
			if k > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d=%g", d, row[d])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

func sortedKeys(row map[int]float64) []int {
	keys := make([]int, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}
