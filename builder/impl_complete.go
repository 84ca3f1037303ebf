// SPDX-License-Identifier: MIT
// Package: citegraph/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds nodes 0..n-1 in ascending order, then every ordered pair (i,j), i≠j.
//   • Result is symmetric: i→j exists iff j→i exists; out-degree n-1 everywhere.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) nodes + O(n²) edges.
//   • Space: O(1) extra.
//
// Determinism:
//   • No randomness; pair order is lexicographic by (i,j).

package builder

import (
	"fmt"

	"github.com/katalvlaran/citegraph/digraph"
)

// Complete returns a Constructor that builds the complete directed graph K_n.
func Complete(n int) Constructor {
	return func(g *digraph.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}

		return addComplete(MethodComplete, g, n)
	}
}

// addComplete adds nodes 0..n-1 and all n(n-1) directed edges among them.
// Shared by Complete and the DPA seed so both report the caller's method.
func addComplete(method string, g *digraph.Graph, n int) error {
	if err := addSequentialNodes(method, g, 0, n); err != nil {
		return err
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if err := g.AddEdge(i, j); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d): %w", method, i, j, err)
			}
		}
	}

	return nil
}
