// SPDX-License-Identifier: MIT
// Package: citegraph/digraph
//
// gonum.go - conversion to and from gonum's simple.DirectedGraph, so generated
// graphs can be handed to the wider gonum ecosystem without re-encoding.

package digraph

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// ToGonum copies g into a new gonum simple.DirectedGraph. Node ids map 1:1
// onto gonum int64 ids.
// Complexity: O(V+E).
func (g *Graph) ToGonum() *simple.DirectedGraph {
	dst := simple.NewDirectedGraph()
	g.mu.RLock()
	defer g.mu.RUnlock()
	for id := range g.adjacency {
		dst.AddNode(simple.Node(int64(id)))
	}
	for from, out := range g.adjacency {
		for to := range out {
			dst.SetEdge(simple.Edge{F: simple.Node(int64(from)), T: simple.Node(int64(to))})
		}
	}

	return dst
}

// FromGonum copies any gonum directed graph into a new Graph.
//
// Errors: ErrNegativeID for gonum node ids below zero, ErrSelfLoop when src
// carries a loop.
// Complexity: O(V+E).
func FromGonum(src graph.Directed) (*Graph, error) {
	g := New()
	nodes := graph.NodesOf(src.Nodes())
	for _, n := range nodes {
		if err := g.AddNode(int(n.ID())); err != nil {
			return nil, fmt.Errorf("FromGonum: %w", err)
		}
	}
	for _, n := range nodes {
		to := src.From(n.ID())
		for to.Next() {
			if err := g.AddEdge(int(n.ID()), int(to.Node().ID())); err != nil {
				return nil, fmt.Errorf("FromGonum: %w", err)
			}
		}
	}

	return g, nil
}
