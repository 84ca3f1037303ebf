// SPDX-License-Identifier: MIT
// Package: citegraph/degree
//
// Package degree counts in- and out-degrees of a digraph.Graph and turns them
// into the sparse histograms used to compare generated graphs with real
// citation networks.
//
// Representation:
//   - Degrees:      node id → degree, every node present (zeros included).
//   - Distribution: degree → number of nodes, only degrees that occur.
//   - Normalized:   degree → fraction of nodes; sums to 1 over its keys.
//
// The degree-0 bucket is kept in both Distribution and Normalized. Log-log
// consumers call Normalized.WithoutZero first, since log(0) is undefined.
//
// All functions are read-only over the graph and deterministic.
package degree
