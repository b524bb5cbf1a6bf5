// SPDX-License-Identifier: MIT

package builder

// validateMin ensures got ≥ min.
// Returns "<Method>: parameter must be ≥ <min>, got <got>: ErrTooFewNodes".
// Complexity: O(1).
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewNodes, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateRange ensures 0 ≤ r.Min ≤ r.Max.
// Complexity: O(1).
func validateRange(method, attr string, r Range) error {
	if r.Min < 0 || r.Max < r.Min {
		return builderErrorf(method, ErrBadRange, "%s range [%d,%d]", attr, r.Min, r.Max)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Complexity: O(1).
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return builderErrorf(method, ErrInvalidProbability,
			"probability must be in [%.1f,%.1f], got %f", MinProbability, MaxProbability, p)
	}

	return nil
}
