// SPDX-License-Identifier: MIT
// Package: citegraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • ErrTooFewVertices and ErrInvalidProbability are refinements of
//     ErrInvalidParameter: errors.Is matches both the refinement and the root.
//   • ErrInvariantViolation is fatal. It signals a generator bug (empty bag,
//     dangling neighbor, out-of-order commit), never bad input.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is the root of every validation failure on generator
// inputs (m > n, m < 1, p outside [0,1], negative n).
// Usage: if errors.Is(err, ErrInvalidParameter) { /* report bad input */ }.
var ErrInvalidParameter = errors.New("builder: invalid parameter")

// ErrTooFewVertices indicates that a numeric size parameter (n, m) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewVertices = fmt.Errorf("builder: parameter too small: %w", ErrInvalidParameter)

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = fmt.Errorf("builder: probability out of range: %w", ErrInvalidParameter)

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor could not be applied to the
// target graph as given (nil constructor, non-empty target for DPA).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrInvariantViolation indicates corrupted generator state. The run is
// aborted; retrying with the same inputs will fail the same way.
var ErrInvariantViolation = errors.New("builder: invariant violation")

// --- Implementation Notes ----------------------------------------------------
//
// 1) Wrapping style (required):
//      fmt.Errorf("%s: m=%d > n=%d: %w", MethodDPA, m, n, ErrInvalidParameter)
//    keeps the sentinel for errors.Is and a deterministic "<Method>: " prefix.
//
// 2) Priority when several validations fail:
//    • ErrTooFewVertices       - size/domain checks first (n, m).
//    • ErrInvalidParameter     - then relations between parameters (m ≤ n).
//    • ErrInvalidProbability   - then probability ranges.
//    • ErrNeedRandSource       - then RNG presence for stochastic builders.
//    • ErrConstructFailed      - then target-graph preconditions.
