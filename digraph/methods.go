// SPDX-License-Identifier: MIT
// Package: citegraph/digraph
//
// methods.go - node/edge lifecycle and read-only queries.
// Concurrency:
//   - Mutations under mu write lock.
//   - Queries under mu read lock; returned slices and sets are copies.

package digraph

import (
	"fmt"
	"sort"
)

// AddNode inserts id with an empty neighbor set. Re-adding is a no-op.
//
// Errors: ErrNegativeID.
// Complexity: O(1).
func (g *Graph) AddNode(id int) error {
	if id < 0 {
		return fmt.Errorf("AddNode(%d): %w", id, ErrNegativeID)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(NodeSet)
	}

	return nil
}

// AddEdge inserts the directed edge from→to. Both endpoints must already be
// nodes; an existing edge is left untouched.
//
// Errors: ErrSelfLoop, ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to int) error {
	if from == to {
		return fmt.Errorf("AddEdge(%d→%d): %w", from, to, ErrSelfLoop)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	out, ok := g.adjacency[from]
	if !ok {
		return fmt.Errorf("AddEdge(%d→%d): source: %w", from, to, ErrNodeNotFound)
	}
	if _, ok = g.adjacency[to]; !ok {
		return fmt.Errorf("AddEdge(%d→%d): target: %w", from, to, ErrNodeNotFound)
	}
	if _, dup := out[to]; !dup {
		out[to] = struct{}{}
		g.edges++
	}

	return nil
}

// HasNode reports whether id is a key of the graph.
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// HasEdge reports whether the edge from→to exists.
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Nodes returns all node ids in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]int, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Neighbors returns the out-neighbors of id in ascending order.
//
// Errors: ErrNodeNotFound.
// Complexity: O(k log k) for out-degree k.
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrNodeNotFound)
	}

	return out.Sorted(), nil
}

// NeighborSet returns a copy of the out-neighbor set of id, or nil when id is
// not a node.
func (g *Graph) NeighborSet(id int) NodeSet {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out, ok := g.adjacency[id]
	if !ok {
		return nil
	}
	cp := make(NodeSet, len(out))
	for v := range out {
		cp[v] = struct{}{}
	}

	return cp
}

// OutDegree returns |Neighbors(id)|, or 0 when id is not a node.
func (g *Graph) OutDegree(id int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of directed edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Range calls fn for every node in unspecified order, passing the live
// neighbor set. fn must not mutate the set or call mutating methods on g.
// Iteration stops early when fn returns false.
func (g *Graph) Range(fn func(id int, out NodeSet) bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for id, out := range g.adjacency {
		if !fn(id, out) {
			return
		}
	}
}

// Stats returns a snapshot summary of the graph.
// Complexity: O(V+E).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()
	st := GraphStats{NodeCount: len(g.adjacency), EdgeCount: g.edges}
	hasIn := make(map[int]bool, len(g.adjacency))
	for _, out := range g.adjacency {
		if len(out) > st.MaxOutDegree {
			st.MaxOutDegree = len(out)
		}
		for v := range out {
			hasIn[v] = true
		}
	}
	for id, out := range g.adjacency {
		if len(out) == 0 && !hasIn[id] {
			st.Isolated++
		}
	}

	return st
}

// Validate checks that every neighbor id is itself a node and that no node
// points at itself. Graphs built through AddEdge always pass; the check
// exists for graphs received from outside the package.
//
// Errors: ErrDanglingNeighbor, ErrSelfLoop.
// Complexity: O(V+E).
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for from, out := range g.adjacency {
		for to := range out {
			if to == from {
				return fmt.Errorf("Validate: %d→%d: %w", from, to, ErrSelfLoop)
			}
			if _, ok := g.adjacency[to]; !ok {
				return danglingf(from, to)
			}
		}
	}

	return nil
}

// Clone returns a deep copy of g.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	cp := &Graph{adjacency: make(map[int]NodeSet, len(g.adjacency)), edges: g.edges}
	for id, out := range g.adjacency {
		set := make(NodeSet, len(out))
		for v := range out {
			set[v] = struct{}{}
		}
		cp.adjacency[id] = set
	}

	return cp
}

// AdjacencyList returns a plain copy id → sorted neighbors, the inverse of FromAdjacency.
func (g *Graph) AdjacencyList() map[int][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj := make(map[int][]int, len(g.adjacency))
	for id, out := range g.adjacency {
		adj[id] = out.Sorted()
	}

	return adj
}

func danglingf(from, to int) error {
	return fmt.Errorf("edge %d→%d: %w", from, to, ErrDanglingNeighbor)
}
