package weights

import (
	"github.com/paulmach/orb"
)

// contiguity holds what Queen and Rook share: the quantisation scale and
// the resolved options.
type contiguity struct {
	scale float64
	cfg   builderConfig
}

func newContiguity(method string, scale float64, opts []Option) (contiguity, error) {
	if !validTolerance(scale) {
		return contiguity{}, weightsErrorf(method, ErrInvalidTolerance)
	}
	return contiguity{scale: scale, cfg: newBuilderConfig(opts...)}, nil
}

// Scale returns the quantisation scale.
func (c contiguity) Scale() float64 { return c.scale }

// validate checks the geometry set before any hashing is done.
func (c contiguity) validate(method string, geoms []orb.Geometry) error {
	if len(geoms) == 0 {
		return weightsErrorf(method, ErrEmptyGeometrySet)
	}
	for i, g := range geoms {
		if err := checkSupported(g); err != nil {
			return geometryErrorf(method, i, err)
		}
	}
	return nil
}

// linkBuckets turns every bucket of geometry indices into a clique of
// weight-1 links. A geometry listed twice in one bucket (a shared vertex
// inside a MultiPolygon, a repeated closing vertex) does not link to itself.
func linkBuckets[K comparable](m *Matrix, buckets map[K][]int) {
	for _, members := range buckets {
		for a := 0; a < len(members); a++ {
			for b := a + 1; b < len(members); b++ {
				if members[a] != members[b] {
					m.link(members[a], members[b], 1.0)
				}
			}
		}
	}
}

// appendOnce appends i unless it is already the last member; geometries are
// visited in index order, so this keeps buckets free of consecutive repeats.
func appendOnce(members []int, i int) []int {
	if n := len(members); n > 0 && members[n-1] == i {
		return members
	}
	return append(members, i)
}
