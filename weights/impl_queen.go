package weights

import (
	"github.com/paulmach/orb"
)

// Queen builds contiguity weights where two geometries are neighbours iff
// they share at least one vertex after quantisation.
type Queen struct {
	contiguity
}

// NewQueen returns a Queen builder quantising with scale (see Quantize).
// scale must be finite and > 0.
func NewQueen(scale float64, opts ...Option) (*Queen, error) {
	c, err := newContiguity("NewQueen", scale, opts)
	if err != nil {
		return nil, err
	}
	return &Queen{contiguity: c}, nil
}

// Kind returns KindQueen.
func (q *Queen) Kind() Kind { return KindQueen }

// Build returns a symmetric binary Matrix over geoms; every geometry gets
// an entry and those sharing no vertex are islands.
//
// Time:   O(V + Σ b²) for V vertices and bucket sizes b.
// Memory: O(V).
func (q *Queen) Build(geoms []orb.Geometry) (*Matrix, error) {
	const method = "Queen.Build"
	if err := q.validate(method, geoms); err != nil {
		return nil, err
	}

	buckets := make(map[QuantizedCoord][]int)
	for i, g := range geoms {
		forEachVertex(g, func(p orb.Point) {
			key := QuantizePoint(p, q.scale)
			buckets[key] = appendOnce(buckets[key], i)
		})
	}

	m := newMatrix(len(geoms))
	linkBuckets(m, buckets)
	q.cfg.logger.Debug("weights built",
		"kind", KindQueen, "geometries", len(geoms), "vertex_keys", len(buckets),
		"links", m.NumLinks(), "islands", len(m.Islands()))

	return m, nil
}
