// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns an error wrapping the matching sentinel
// when its precondition is violated.
package builder

import "fmt"

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: <name>=<got> < min=<min>: ErrTooFewVertices" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
//
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	// The negated form also rejects NaN.
	if !(p >= MinProbability && p <= MaxProbability) {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// validateAttachment enforces 1 ≤ m ≤ n for the DPA model.
//
// Complexity: O(1) time and space.
func validateAttachment(method string, n, m int) error {
	if err := validateMin(method, "m", m, MinAttachment); err != nil {
		return err
	}
	if m > n {
		return fmt.Errorf("%s: m=%d > n=%d: %w", method, m, n, ErrInvalidParameter)
	}

	return nil
}
