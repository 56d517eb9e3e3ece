// Package geolisa is a spatial-statistics toolkit: it turns planar
// geometries into spatial weight matrices and runs Local Indicators of
// Spatial Association (local Moran's I) over them.
//
// What is inside:
//
//	weights/ — Queen, Rook and Distance builders over orb geometries,
//	           the immutable weight Matrix, CSR export, GeoJSON link export,
//	           YAML builder configuration
//	lisa/    — local Moran's I, quadrants, conditional permutation
//	           p-values (full or lookup sampling), seeded parallel streams
//	matrix/  — COO/CSR sparse storage implementing gonum's mat.Matrix
//
// Typical flow:
//
//	q, _ := weights.NewQueen(weights.DefaultTolerance)
//	w, _ := q.Build(geoms)
//	res, _ := lisa.Compute(w, values, lisa.NewOptions(lisa.WithSeed(1)))
//	hot := res.Clusters(0.05)
//
// A tiny weight matrix:
//
//	┌───┬───┐
//	│ 0 │ 1 │     Rook:  0–1, 0–2, 1–3, 2–3
//	├───┼───┤     Queen: Rook + 0–3, 1–2
//	│ 2 │ 3 │
//	└───┴───┘
//
// Everything is pure Go; randomness is seeded per task, so a fixed seed
// gives identical results on any number of workers.
//
//	go get github.com/katalvlaran/geolisa
package geolisa
