// SPDX-License-Identifier: MIT
// Package: citegraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng           = nil                   (pure/deterministic unless seeded)
//   • ctx           = context.Background()  (never cancelled)
//   • logger        = zerolog.Nop()         (silent)
//   • progressEvery = 0                     (no per-step progress logs)

package builder

import (
	"context"
	"math/rand"

	"github.com/rs/zerolog"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// ctx is polled between DPA growth steps.
	ctx context.Context
	// logger receives debug progress from long-running constructors.
	logger zerolog.Logger
	// progressEvery logs DPA progress every N grown nodes; 0 disables.
	progressEvery int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:           nil,
		ctx:           context.Background(),
		logger:        zerolog.Nop(),
		progressEvery: 0,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
