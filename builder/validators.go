// SPDX-License-Identifier: MIT
// Package: graphgen/builder
//
// validators.go - shared parameter checks returning wrapped sentinels.

package builder

import (
	"fmt"
	"math"
)

// validateMin returns ErrTooFewVertices if got < min.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability returns ErrInvalidProbability unless p ∈ [0,1].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability || math.IsNaN(p) {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}
