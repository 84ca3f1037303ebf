// SPDX-License-Identifier: MIT
// Package: citegraph/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"context"
	"math/rand"

	"github.com/rs/zerolog"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
// The RNG is used from a single goroutine; do not share it across
// concurrent BuildGraph calls.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithContext lets a long generation run be abandoned between growth steps.
// Panics on nil.
func WithContext(ctx context.Context) BuilderOption {
	if ctx == nil {
		panic("builder: WithContext(nil)")
	}
	return func(c *builderConfig) {
		c.ctx = ctx
	}
}

// WithLogger routes constructor diagnostics to l (debug level only).
func WithLogger(l zerolog.Logger) BuilderOption {
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithProgressEvery logs DPA progress every n grown nodes. n == 0 disables
// progress logs; negative n panics.
func WithProgressEvery(n int) BuilderOption {
	if n < 0 {
		panic("builder: WithProgressEvery(n<0)")
	}
	return func(c *builderConfig) {
		c.progressEvery = n
	}
}
