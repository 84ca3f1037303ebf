// SPDX-License-Identifier: MIT
// Package: citegraph/builder
//
// impl_dpa.go - implementation of DPA(n, m), directed preferential attachment.
//
// Canonical model:
//   1. Seed: complete directed graph on m nodes (out-degree m-1 each).
//   2. Multiset seeded with m copies of every seed id.
//   3. For i = m..n-1: neighbors = DrawDistinct(m); add node i with out-edges
//      to neighbors; Commit(i, neighbors).
//
// Contract:
//   - 1 ≤ m ≤ n (ErrTooFewVertices / ErrInvalidParameter).
//   - cfg.rng required when n > m (ErrNeedRandSource).
//   - Target graph must be empty (ErrConstructFailed).
//   - Each growth step is atomic; cfg.ctx is polled between steps only and a
//     cancelled run returns the context error wrapped.
//   - A neighbor the graph rejects as unknown is reported as ErrInvariantViolation.
//
// Complexity:
//   - Time: O(m²) seed + O((n-m)·m) expected growth.
//   - Space: O(m² + n·m) for the bag.
//
// Determinism:
//   - Fixed seed ⇒ identical graph (draws and commits happen in a fixed order).

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/citegraph/digraph"
)

// DPA returns a Constructor that grows a preferential-attachment digraph to n nodes.
func DPA(n, m int) Constructor {
	return func(g *digraph.Graph, cfg builderConfig) error {
		if err := validateAttachment(MethodDPA, n, m); err != nil {
			return err
		}
		if n > m && cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodDPA, ErrNeedRandSource)
		}
		if err := requireEmpty(MethodDPA, g); err != nil {
			return err
		}

		if err := addComplete(MethodDPA, g, m); err != nil {
			return err
		}
		if n == m {
			return nil
		}

		ms, err := NewMultiset(m, cfg.rng)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodDPA, err)
		}

		log := cfg.logger.With().Str("method", MethodDPA).Int("n", n).Int("m", m).Logger()
		log.Debug().Int("bag", ms.Len()).Msg("seed ready")

		for i := m; i < n; i++ {
			if err = cfg.ctx.Err(); err != nil {
				return fmt.Errorf("%s: aborted before node %d of %d: %w", MethodDPA, i, n, err)
			}
			if err = growStep(g, ms, i, m); err != nil {
				return err
			}
			if cfg.progressEvery > 0 && (i-m+1)%cfg.progressEvery == 0 {
				log.Debug().Int("node", i).Int("bag", ms.Len()).Int("edges", g.EdgeCount()).Msg("growth progress")
			}
		}

		log.Debug().Int("bag", ms.Len()).Int("edges", g.EdgeCount()).Msg("growth done")

		return nil
	}
}

// growStep adds node id with out-edges to up to m preferential neighbors and
// commits the draw back into the bag.
func growStep(g *digraph.Graph, ms *Multiset, id, m int) error {
	neighbors, err := ms.DrawDistinct(m)
	if err != nil {
		return fmt.Errorf("%s: node %d: %w", MethodDPA, id, err)
	}
	if err = g.AddNode(id); err != nil {
		return fmt.Errorf("%s: AddNode(%d): %w", MethodDPA, id, err)
	}
	for _, to := range neighbors.Sorted() {
		if err = g.AddEdge(id, to); err != nil {
			if errors.Is(err, digraph.ErrNodeNotFound) || errors.Is(err, digraph.ErrSelfLoop) {
				return fmt.Errorf("%s: node %d drew %d: %v: %w", MethodDPA, id, to, err, ErrInvariantViolation)
			}
			return fmt.Errorf("%s: AddEdge(%d→%d): %w", MethodDPA, id, to, err)
		}
	}
	if err = ms.Commit(id, neighbors); err != nil {
		return fmt.Errorf("%s: %w", MethodDPA, err)
	}

	return nil
}
