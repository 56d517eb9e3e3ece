package weights

import (
	"math"

	"github.com/paulmach/orb"
)

// QuantizedCoord is a coordinate snapped to an integer grid of spacing
// 1/scale. Two vertices are "the same" for contiguity purposes iff their
// QuantizedCoord values are equal.
type QuantizedCoord struct {
	X, Y int64
}

// Quantize maps v to floor(v·scale). Floor (not truncation) keeps negative
// coordinates consistent: Quantize(-20.23423, 10000) == -202343.
func Quantize(v, scale float64) int64 {
	return int64(math.Floor(v * scale))
}

// QuantizePoint quantizes both axes of p.
func QuantizePoint(p orb.Point, scale float64) QuantizedCoord {
	return QuantizedCoord{X: Quantize(p.X(), scale), Y: Quantize(p.Y(), scale)}
}

// less orders keys lexicographically by (X, Y).
func (q QuantizedCoord) less(o QuantizedCoord) bool {
	if q.X != o.X {
		return q.X < o.X
	}
	return q.Y < o.Y
}

// edgeKey identifies an undirected edge: A is never greater than B.
type edgeKey struct {
	A, B QuantizedCoord
}

// newEdgeKey normalises (a, b) so an edge recorded with either winding order
// hashes to the same key.
func newEdgeKey(a, b QuantizedCoord) edgeKey {
	if b.less(a) {
		a, b = b, a
	}
	return edgeKey{A: a, B: b}
}
