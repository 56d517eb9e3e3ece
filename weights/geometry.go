package weights

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// checkSupported reports ErrUnsupportedGeometry for kinds the builders cannot use.
func checkSupported(g orb.Geometry) error {
	switch g.(type) {
	case orb.Point, orb.MultiPoint, orb.Polygon, orb.MultiPolygon:
		return nil
	default:
		return ErrUnsupportedGeometry
	}
}

// forEachVertex calls fn for every stored coordinate of g, closing vertices included.
func forEachVertex(g orb.Geometry, fn func(orb.Point)) {
	switch v := g.(type) {
	case orb.Point:
		fn(v)
	case orb.MultiPoint:
		for _, p := range v {
			fn(p)
		}
	default:
		forEachRing(g, func(r orb.Ring) {
			for _, p := range r {
				fn(p)
			}
		})
	}
}

// forEachRing calls fn for every ring (exterior and holes) of a polygonal g.
// Points have no rings.
func forEachRing(g orb.Geometry, fn func(orb.Ring)) {
	switch v := g.(type) {
	case orb.Polygon:
		for _, r := range v {
			fn(r)
		}
	case orb.MultiPolygon:
		for _, poly := range v {
			for _, r := range poly {
				fn(r)
			}
		}
	}
}

// forEachEdge calls fn for consecutive vertex pairs of every ring. An open
// ring gets its closing edge (last → first) as well.
func forEachEdge(g orb.Geometry, fn func(a, b orb.Point)) {
	forEachRing(g, func(r orb.Ring) {
		if len(r) < 2 {
			return
		}
		for i := 0; i+1 < len(r); i++ {
			fn(r[i], r[i+1])
		}
		if !r.Closed() {
			fn(r[len(r)-1], r[0])
		}
	})
}

// centroid returns the representative point used by distance weights:
// the point itself for orb.Point, the planar centroid otherwise.
func centroid(g orb.Geometry) (orb.Point, error) {
	if err := checkSupported(g); err != nil {
		return orb.Point{}, err
	}
	if p, ok := g.(orb.Point); ok {
		if !finitePoint(p) {
			return orb.Point{}, ErrDegenerateGeometry
		}
		return p, nil
	}

	var count int
	forEachVertex(g, func(orb.Point) { count++ })
	if count == 0 {
		return orb.Point{}, ErrDegenerateGeometry
	}
	c, _ := planar.CentroidArea(g)
	if !finitePoint(c) {
		return orb.Point{}, ErrDegenerateGeometry
	}

	return c, nil
}

// centroids resolves the centroid of every geometry, failing on the first bad one.
func centroids(method string, geoms []orb.Geometry) ([]orb.Point, error) {
	out := make([]orb.Point, len(geoms))
	for i, g := range geoms {
		c, err := centroid(g)
		if err != nil {
			return nil, geometryErrorf(method, i, err)
		}
		out[i] = c
	}

	return out, nil
}

func finitePoint(p orb.Point) bool {
	return !math.IsNaN(p[0]) && !math.IsInf(p[0], 0) && !math.IsNaN(p[1]) && !math.IsInf(p[1], 0)
}
