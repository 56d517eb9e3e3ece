package weights

import (
	"github.com/paulmach/orb"
)

// Rook builds contiguity weights where two geometries are neighbours iff
// they share at least one edge after quantisation. Edges are undirected, so
// rings wound in opposite directions still match. Rook pairs are a subset of
// Queen pairs at the same scale.
type Rook struct {
	contiguity
}

// NewRook returns a Rook builder quantising with scale.
func NewRook(scale float64, opts ...Option) (*Rook, error) {
	c, err := newContiguity("NewRook", scale, opts)
	if err != nil {
		return nil, err
	}
	return &Rook{contiguity: c}, nil
}

// Kind returns KindRook.
func (r *Rook) Kind() Kind { return KindRook }

// Build returns a symmetric binary Matrix over geoms. Points and MultiPoints
// have no edges and are always islands.
func (r *Rook) Build(geoms []orb.Geometry) (*Matrix, error) {
	const method = "Rook.Build"
	if err := r.validate(method, geoms); err != nil {
		return nil, err
	}

	buckets := make(map[edgeKey][]int)
	var degenerate int
	for i, g := range geoms {
		forEachEdge(g, func(a, b orb.Point) {
			qa, qb := QuantizePoint(a, r.scale), QuantizePoint(b, r.scale)
			if qa == qb {
				degenerate++
				return
			}
			key := newEdgeKey(qa, qb)
			buckets[key] = appendOnce(buckets[key], i)
		})
	}

	m := newMatrix(len(geoms))
	linkBuckets(m, buckets)
	r.cfg.logger.Debug("weights built",
		"kind", KindRook, "geometries", len(geoms), "edge_keys", len(buckets),
		"degenerate_edges", degenerate, "links", m.NumLinks(), "islands", len(m.Islands()))

	return m, nil
}
