package weights

import (
	"fmt"

	"github.com/katalvlaran/geolisa/matrix"
)

// Transform selects how stored weights are rescaled when exported.
type Transform int

const (
	// TransformNone exports stored weights unchanged.
	TransformNone Transform = iota
	// TransformRow divides each row by its sum; island rows stay zero.
	TransformRow
	// TransformBinary exports 1.0 for every link.
	TransformBinary
	// TransformDoublyStandardized divides every weight by the global sum.
	// Not implemented; ToSparse rejects it.
	TransformDoublyStandardized
)

// String returns the conventional short code (O, R, B, D).
func (t Transform) String() string {
	switch t {
	case TransformNone:
		return "O"
	case TransformRow:
		return "R"
	case TransformBinary:
		return "B"
	case TransformDoublyStandardized:
		return "D"
	default:
		return fmt.Sprintf("Transform(%d)", int(t))
	}
}

// ToSparse exports W as an N×N CSR matrix under transform t. Columns are
// sorted within each row, so repeated calls yield Equal matrices.
func (m *Matrix) ToSparse(t Transform) (*matrix.CSR, error) {
	const method = "ToSparse"
	switch t {
	case TransformNone, TransformRow, TransformBinary:
	default:
		return nil, fmt.Errorf("%s: %v: %w", method, t, ErrUnsupportedTransform)
	}

	coo, err := matrix.NewCOO(m.n, m.n)
	if err != nil {
		return nil, weightsErrorf(method, err)
	}
	for o := 0; o < m.n; o++ {
		row := m.rows[o]
		for _, d := range sortedKeys(row) {
			v := row[d]
			if t == TransformBinary {
				v = 1.0
			}
			if err = coo.Push(o, d, v); err != nil {
				return nil, weightsErrorf(method, err)
			}
		}
	}

	csr := coo.ToCSR()
	if t == TransformRow {
		csr, _ = csr.NormalizeRows()
	}

	return csr, nil
}
