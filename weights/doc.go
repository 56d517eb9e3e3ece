// SPDX-License-Identifier: MIT

// Package weights builds spatial weight matrices over planar geometries.
//
// A weight matrix W records, for every observation id in [0,N), which other
// observations are its neighbours and with what weight. Three builders are
// provided:
//
//   - Queen: geometries sharing a vertex are neighbours (weight 1).
//   - Rook: geometries sharing an edge are neighbours (weight 1).
//   - Distance: centroid distance below a cutoff, optionally weighted by
//     the distance itself.
//
// Contiguity builders compare vertices after quantisation: a coordinate v
// becomes floor(v·scale), so with the default scale of 10000 coordinates
// that agree to four decimal places coincide. Geometries are orb values
// (Point, MultiPoint, Polygon, MultiPolygon); the position of a geometry in
// the input slice is its id.
//
// The resulting Matrix is immutable. It answers neighbour queries, exports
// a sparse CSR form (raw, binary or row-standardised) for linear algebra,
// reports structure (islands, cardinalities, connected components) and can
// render its links as a GeoJSON FeatureCollection.
//
// Example:
//
//	q, _ := weights.NewQueen(weights.DefaultTolerance)
//	w, err := q.Build(geoms)
//	if err != nil { ... }
//	ns, _ := w.Neighbors(0)
//
// Builders can also be described in YAML and created with LoadConfig and
// Config.NewBuilder. Diagnostics go to a *slog.Logger supplied with
// WithLogger; by default nothing is logged.
package weights
