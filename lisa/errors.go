// SPDX-License-Identifier: MIT
// Package: geolisa/lisa
//
// errors.go — sentinel errors for the LISA engine.
//
// Error policy:
//   • Only sentinels are exported; wrap with lisaErrorf to add context.
//   • All failures are detected before any permutation work starts.
//   • Nothing in the engine panics on user input.

package lisa

import (
	"errors"
	"fmt"
)

// ErrNilWeights indicates Compute was called without a weight matrix.
var ErrNilWeights = errors.New("lisa: weight matrix is nil")

// ErrEmptyInput indicates an empty observation vector.
var ErrEmptyInput = errors.New("lisa: empty observation vector")

// ErrDimensionMismatch indicates len(values) differs from the matrix size.
var ErrDimensionMismatch = errors.New("lisa: values length does not match weight matrix")

// ErrZeroVariance indicates constant input; standardisation is undefined.
var ErrZeroVariance = errors.New("lisa: observation vector has zero variance")

// ErrNonFiniteInput indicates the mean or standard deviation is NaN or ±Inf.
var ErrNonFiniteInput = errors.New("lisa: observation vector is not finite")

// ErrOptionViolation indicates an invalid Options value.
var ErrOptionViolation = errors.New("lisa: invalid option supplied")

// ErrUnknownMethod indicates a permutation method other than full or lookup.
var ErrUnknownMethod = errors.New("lisa: unknown permutation method")

// ErrNeighborCount indicates a neighbour count the lookup table cannot serve
// (k > N-1 or k not tabulated).
var ErrNeighborCount = errors.New("lisa: neighbour count outside permutation table")

func lisaErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
