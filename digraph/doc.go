// SPDX-License-Identifier: MIT
// Package: citegraph/digraph
//
// Package digraph defines the directed Graph used by every generator and
// analyzer in citegraph: a mapping from non-negative integer node ids to the
// set of node ids they point at.
//
// Invariants (enforced on every mutation):
//   - Directed edges only, no self-loops (ErrSelfLoop).
//   - Set semantics: a second AddEdge(u,v) is a no-op, never a parallel edge.
//   - No dangling references: AddEdge requires both endpoints to already be
//     nodes (ErrNodeNotFound). Validate re-checks graphs assembled elsewhere.
//
// Concurrency:
//   - A single sync.RWMutex guards the adjacency map; queries take the read
//     lock, mutations the write lock. Generators still grow a graph from a
//     single goroutine, analysis may fan out over a finished graph.
//
// Determinism:
//   - Nodes() and Neighbors() return ascending ids so logs, encoders and
//     golden tests are stable regardless of map iteration order.
//
// Interop:
//   - ToGonum / FromGonum convert to and from gonum's simple.DirectedGraph.
//
//	    0 ──► 1
//	    ▲  ╲  │
//	    │   ╲ ▼
//	    3    ►2
package digraph
