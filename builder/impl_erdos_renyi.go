// SPDX-License-Identifier: MIT
// Package: citegraph/builder
//
// impl_erdos_renyi.go - implementation of ErdosRenyi(n, p) constructor.
//
// Canonical model:
//   - Directed G(n,p): every ordered pair (u,v), u≠v, is an independent
//     Bernoulli(p) trial; the edge u→v is kept iff rng.Float64() < p.
//
// Contract:
//   - n ≥ 0 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//   - Adds nodes in ascending index order (0..n-1).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) nodes + O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable edge-trial order: for each u asc, v asc.
//   - Deterministic outcomes for fixed seed due to fixed trial order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citegraph/digraph"
)

// ErdosRenyi returns a Constructor that samples a directed Erdős–Rényi graph
// over n nodes with independent edge probability p.
func ErdosRenyi(n int, p float64) Constructor {
	return func(g *digraph.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := validateMin(MethodErdosRenyi, "n", n, MinErdosRenyiNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodErdosRenyi, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required for p=%.6f: %w", MethodErdosRenyi, p, ErrNeedRandSource)
		}

		// 2) Add all nodes deterministically (ids 0..n-1).
		if err := addSequentialNodes(MethodErdosRenyi, g, 0, n); err != nil {
			return err
		}

		// 3) Bernoulli trials over ordered pairs in a stable order.
		var u, v int
		for u = 0; u < n; u++ {
			for v = 0; v < n; v++ {
				if u == v {
					continue
				}
				if !keepEdge(cfg, p) {
					continue
				}
				if err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d): %w", MethodErdosRenyi, u, v, err)
				}
			}
		}

		return nil
	}
}

// keepEdge decides one Bernoulli(p) trial. Without an RNG only p ∈ {0,1}
// reaches this point, so the outcome is p == 1.
func keepEdge(cfg builderConfig, p float64) bool {
	if cfg.rng == nil {
		return p == MaxProbability
	}

	return cfg.rng.Float64() < p
}
