package weights

import (
	"fmt"
	"math"
)

// New validates rows and returns an N-element Matrix holding a deep copy.
// Ids absent from rows have no entry (Neighbors reports ErrUnknownID for them).
// Links are stored as given; no symmetry is implied.
func New(rows map[int]map[int]float64, n int) (*Matrix, error) {
	const method = "New"
	if n < 0 {
		return nil, weightsErrorf(method, ErrInvalidSize)
	}

	m := &Matrix{n: n, rows: make(map[int]map[int]float64, len(rows))}
	for o, row := range rows {
		if o < 0 || o >= n {
			return nil, fmt.Errorf("%s: origin %d (N=%d): %w", method, o, n, ErrIDOutOfRange)
		}
		cp := make(map[int]float64, len(row))
		for d, w := range row {
			if err := checkLink(o, d, w, n); err != nil {
				return nil, weightsErrorf(method, err)
			}
			cp[d] = w
		}
		m.rows[o] = cp
	}

	return m, nil
}

// FromListRep builds a symmetric Matrix from parallel lists: for every k the
// pair (origins[k], dests[k]) is linked both ways with weight w[k]. A pair
// listed again overwrites the earlier weight. Only ids that appear in a pair
// get an entry.
func FromListRep(origins, dests []int, w []float64, n int) (*Matrix, error) {
	const method = "FromListRep"
	if n < 0 {
		return nil, weightsErrorf(method, ErrInvalidSize)
	}
	if len(origins) != len(dests) || len(origins) != len(w) {
		return nil, fmt.Errorf("%s: origins=%d dests=%d weights=%d: %w",
			method, len(origins), len(dests), len(w), ErrListLengthMismatch)
	}

	m := &Matrix{n: n, rows: make(map[int]map[int]float64)}
	for k := range origins {
		o, d := origins[k], dests[k]
		if err := checkLink(o, d, w[k], n); err != nil {
			return nil, fmt.Errorf("%s: pair %d: %w", method, k, err)
		}
		if m.rows[o] == nil {
			m.rows[o] = make(map[int]float64)
		}
		if m.rows[d] == nil {
			m.rows[d] = make(map[int]float64)
		}
		m.link(o, d, w[k])
	}

	return m, nil
}

// checkLink enforces the data-model rules for a single stored link.
func checkLink(o, d int, w float64, n int) error {
	if o < 0 || o >= n || d < 0 || d >= n {
		return fmt.Errorf("(%d,%d) with N=%d: %w", o, d, n, ErrIDOutOfRange)
	}
	if o == d {
		return fmt.Errorf("id %d: %w", o, ErrSelfNeighbor)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return fmt.Errorf("(%d,%d) weight %v: %w", o, d, w, ErrInvalidWeight)
	}

	return nil
}
