package weights

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LinkGeometries draws W for inspection: one LineString feature per directed
// link, from the origin centroid to the destination centroid, with string
// properties "origin" and "dest". When ix is non-nil the properties carry
// external ids instead of positions. Features are ordered by (origin, dest).
func (m *Matrix) LinkGeometries(geoms []orb.Geometry, ix *Index) (*geojson.FeatureCollection, error) {
	const method = "LinkGeometries"
	if len(geoms) != m.n {
		return nil, fmt.Errorf("%s: %d geometries for N=%d: %w", method, len(geoms), m.n, ErrDimensionMismatch)
	}
	if ix != nil && ix.Len() != m.n {
		return nil, fmt.Errorf("%s: index of %d ids for N=%d: %w", method, ix.Len(), m.n, ErrDimensionMismatch)
	}

	cents, err := centroids(method, geoms)
	if err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()
	for o := 0; o < m.n; o++ {
		for _, d := range sortedKeys(m.rows[o]) {
			f := geojson.NewFeature(orb.LineString{cents[o], cents[d]})
			f.Properties["origin"] = ix.label(o)
			f.Properties["dest"] = ix.label(d)
			fc.Append(f)
		}
	}

	return fc, nil
}
