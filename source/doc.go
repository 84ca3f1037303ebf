// SPDX-License-Identifier: MIT
// Package: citegraph/source
//
// Package source reads and writes the whitespace-delimited edge-list format
// used by the published physics citation graph:
//
//	node_id neighbor_1 neighbor_2 ... neighbor_k<space>
//
// one line per node, trailing separators ignored, blank lines skipped.
//
// Parsed graphs never dangle: a neighbor id that has no line of its own is
// added as a node with an empty out-set. Self-references are dropped and
// counted, since digraph.Graph forbids loops.
package source
