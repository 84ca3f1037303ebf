// SPDX-License-Identifier: MIT
// Package: citegraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go (single place to read docs).
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"context"
	"fmt"

	"github.com/katalvlaran/citegraph/digraph"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Only add nodes/edges through digraph.Graph so its invariants hold.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *digraph.Graph, cfg builderConfig) error

// BuildGraph creates a new digraph.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error is
// wrapped with the context "BuildGraph: %w" and returned with a nil graph;
// a partially grown graph is never handed out.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*digraph.Graph, error) {
	g := digraph.New()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Generator factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Complete builds the complete directed graph on n ≥ 1 nodes (ids 0..n-1).
// Complexity: O(n²) edges. No randomness.
//func Complete(n int) Constructor
//
// ErdosRenyi includes each ordered pair (u,v), u≠v, independently with prob p.
// n ≥ 0, 0 ≤ p ≤ 1; rng required for 0<p<1. Complexity: O(n²) trials.
//func ErdosRenyi(n int, p float64) Constructor
//
// DPA grows a directed preferential-attachment graph to n nodes from a
// complete seed on m nodes, 1 ≤ m ≤ n. Complexity: O(n·m) expected.
//func DPA(n, m int) Constructor

// BuildComplete is a thin helper around BuildGraph(opts, Complete(n)).
func BuildComplete(n int, opts ...BuilderOption) (*digraph.Graph, error) {
	return BuildGraph(opts, Complete(n))
}

// BuildErdosRenyi is a thin helper around BuildGraph(opts, ErdosRenyi(n, p)).
func BuildErdosRenyi(n int, p float64, opts ...BuilderOption) (*digraph.Graph, error) {
	return BuildGraph(opts, ErdosRenyi(n, p))
}

// BuildDPA runs DPA(n, m) under ctx. ctx is applied before opts, so an
// explicit WithContext in opts wins.
func BuildDPA(ctx context.Context, n, m int, opts ...BuilderOption) (*digraph.Graph, error) {
	all := make([]BuilderOption, 0, len(opts)+1)
	all = append(all, WithContext(ctx))
	all = append(all, opts...)

	return BuildGraph(all, DPA(n, m))
}
