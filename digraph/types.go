// SPDX-License-Identifier: MIT
// Package: citegraph/digraph
//
// types.go - Graph, NodeSet, GraphStats and sentinel errors.

package digraph

import (
	"errors"
	"sort"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrNegativeID indicates a node id below zero.
	ErrNegativeID = errors.New("digraph: node id is negative")

	// ErrNodeNotFound indicates an operation referenced a node that is not a key of the graph.
	ErrNodeNotFound = errors.New("digraph: node not found")

	// ErrSelfLoop indicates an edge u→u was attempted.
	ErrSelfLoop = errors.New("digraph: self-loop not allowed")

	// ErrDanglingNeighbor indicates a neighbor id that is not itself a node of the graph.
	ErrDanglingNeighbor = errors.New("digraph: dangling neighbor")
)

// NodeSet is a set of node ids.
type NodeSet map[int]struct{}

// NewNodeSet returns a set holding ids.
func NewNodeSet(ids ...int) NodeSet {
	s := make(NodeSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// Has reports whether id is a member of s.
func (s NodeSet) Has(id int) bool {
	_, ok := s[id]

	return ok
}

// Sorted returns the members of s in ascending order.
// Complexity: O(k log k).
func (s NodeSet) Sorted() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Graph is a directed graph: node id → set of out-neighbor ids.
//
// The zero value is not usable; construct with New.
type Graph struct {
	mu sync.RWMutex // guards adjacency and edges

	// adjacency[from] = set of to-ids; every node has an entry, possibly empty.
	adjacency map[int]NodeSet

	// edges caches Σ|adjacency[v]| so EdgeCount is O(1).
	edges int
}

// GraphStats is a point-in-time summary of a graph.
type GraphStats struct {
	NodeCount int
	EdgeCount int
	// MaxOutDegree is the largest neighbor-set size (0 for an empty graph).
	MaxOutDegree int
	// Isolated counts nodes with neither in- nor out-edges.
	Isolated int
}

// New creates an empty Graph.
// Complexity: O(1).
func New() *Graph {
	return &Graph{adjacency: make(map[int]NodeSet)}
}

// FromAdjacency builds a graph from a plain adjacency map, the literal form
// used by tests and fixtures. Every neighbor must also be a key.
//
// Errors: ErrNegativeID, ErrSelfLoop, ErrDanglingNeighbor.
// Complexity: O(V+E).
func FromAdjacency(adj map[int][]int) (*Graph, error) {
	g := New()
	for id := range adj {
		if err := g.AddNode(id); err != nil {
			return nil, err
		}
	}
	for from, tos := range adj {
		for _, to := range tos {
			if err := g.AddEdge(from, to); err != nil {
				if errors.Is(err, ErrNodeNotFound) {
					return nil, danglingf(from, to)
				}
				return nil, err
			}
		}
	}

	return g, nil
}
