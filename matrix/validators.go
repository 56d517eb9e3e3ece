// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/index/value checks here.
//  - Return plain sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import "math"

// ValidateDims ensures r and c are non-negative. Zero is legal: an empty
// weight set still has a well-defined 0×0 numeric form.
// Complexity: O(1).
func ValidateDims(r, c int) error {
	if r < 0 || c < 0 {
		return ErrInvalidDimensions
	}

	return nil
}

// ValidateIndex ensures (i, j) lies inside an r×c shape.
// Complexity: O(1).
func ValidateIndex(i, j, r, c int) error {
	if i < 0 || i >= r || j < 0 || j >= c {
		return ErrOutOfRange
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf.
// Complexity: O(1).
func ValidateFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil vector is accepted only when n == 0.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return ErrDimensionMismatch
	}

	return nil
}
