// SPDX-License-Identifier: MIT
// Package: geolisa/weights
//
// errors.go — sentinel errors for the weights package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with weightsErrorf ("Queen.Build: geometry 3: %w").
//   • Builders and queries MUST NOT panic at runtime; validation panics are
//     confined to option constructors (WithX...).
//
// Taxonomy:
//   • configuration  — ErrInvalidTolerance, ErrInvalidCutoff, ErrNoAdjacencyRule,
//                      ErrUnsupportedGeometry, ErrUnsupportedTransform, ErrUnknownKind.
//   • degenerate     — ErrEmptyGeometrySet, ErrDegenerateGeometry.
//   • referential    — ErrUnknownID, ErrIDOutOfRange, ErrDuplicateID, ErrEmptyID.
//   • construction   — ErrListLengthMismatch, ErrSelfNeighbor, ErrInvalidWeight,
//                      ErrInvalidSize, ErrDimensionMismatch.

package weights

import (
	"errors"
	"fmt"
)

// ErrEmptyGeometrySet indicates a builder received no geometries.
var ErrEmptyGeometrySet = errors.New("weights: empty geometry set")

// ErrUnsupportedGeometry indicates a geometry kind other than Point,
// MultiPoint, Polygon or MultiPolygon (or a nil geometry).
var ErrUnsupportedGeometry = errors.New("weights: unsupported geometry kind")

// ErrDegenerateGeometry indicates a geometry whose centroid cannot be
// computed (no vertices, or a non-finite result).
var ErrDegenerateGeometry = errors.New("weights: degenerate geometry")

// ErrInvalidTolerance indicates a quantisation scale that is not finite and > 0.
var ErrInvalidTolerance = errors.New("weights: tolerance scale must be finite and > 0")

// ErrInvalidCutoff indicates a distance cutoff that is not finite and > 0.
var ErrInvalidCutoff = errors.New("weights: cutoff must be finite and > 0")

// ErrNoAdjacencyRule indicates a distance builder with neither a cutoff nor
// use-distance-as-weight; adjacency is undecidable.
var ErrNoAdjacencyRule = errors.New("weights: need a cutoff or distance-as-weight")

// ErrUnsupportedTransform indicates a transform that has no implementation
// (DoublyStandardized) or an unknown transform value.
var ErrUnsupportedTransform = errors.New("weights: unsupported transform")

// ErrUnknownKind indicates a builder kind outside {queen, rook, distance}.
var ErrUnknownKind = errors.New("weights: unknown builder kind")

// ErrUnknownID indicates an id in [0,N) that has no entry in the matrix.
var ErrUnknownID = errors.New("weights: id has no entry")

// ErrIDOutOfRange indicates an id outside [0,N).
var ErrIDOutOfRange = errors.New("weights: id out of range")

// ErrDuplicateID indicates an external identifier listed twice.
var ErrDuplicateID = errors.New("weights: duplicate external id")

// ErrEmptyID indicates an empty external identifier.
var ErrEmptyID = errors.New("weights: empty external id")

// ErrListLengthMismatch indicates origins, dests and weights of different lengths.
var ErrListLengthMismatch = errors.New("weights: list representation length mismatch")

// ErrSelfNeighbor indicates a link from an id to itself.
var ErrSelfNeighbor = errors.New("weights: self-pairs are not allowed")

// ErrInvalidWeight indicates a weight that is NaN, ±Inf, zero or negative.
var ErrInvalidWeight = errors.New("weights: weight must be finite and > 0")

// ErrInvalidSize indicates a negative element count.
var ErrInvalidSize = errors.New("weights: element count must be >= 0")

// ErrDimensionMismatch indicates an input sequence whose length is not N.
var ErrDimensionMismatch = errors.New("weights: length does not match element count")

// weightsErrorf prefixes err with the method context and preserves it for errors.Is.
func weightsErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// geometryErrorf attaches the offending geometry index.
func geometryErrorf(method string, idx int, err error) error {
	return fmt.Errorf("%s: geometry %d: %w", method, idx, err)
}
