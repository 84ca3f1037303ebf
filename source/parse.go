// SPDX-License-Identifier: MIT
// Package: citegraph/source
//
// parse.go - edge-list decoder and encoder.

package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/citegraph/digraph"
)

// ErrMalformedLine indicates a token that is not a non-negative integer id.
var ErrMalformedLine = errors.New("source: malformed line")

const (
	// initialLineBuffer is the scanner's starting buffer size.
	initialLineBuffer = 64 * 1024
	// maxLineBytes bounds a single line; hub nodes list thousands of ids.
	maxLineBytes = 16 * 1024 * 1024
)

// ParseStats reports what Parse saw beyond the resulting graph.
type ParseStats struct {
	Lines        int // non-blank lines
	Nodes        int // nodes in the result
	Edges        int // edges in the result
	Materialized int // neighbors added as nodes because they had no line
	SelfLoops    int // self-references dropped
}

// Parse decodes an edge list into a graph. See ParseWithStats.
func Parse(r io.Reader) (*digraph.Graph, error) {
	g, _, err := ParseWithStats(r)

	return g, err
}

// ParseWithStats decodes an edge list and reports parse statistics.
// Repeated lines for the same node are merged.
//
// Errors: ErrMalformedLine (with 1-based line number), read errors.
// Complexity: O(V+E) plus O(V log V) for deterministic insertion order.
func ParseWithStats(r io.Reader) (*digraph.Graph, ParseStats, error) {
	var st ParseStats
	adj := make(map[int][]int)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initialLineBuffer), maxLineBytes)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		st.Lines++

		ids := make([]int, len(fields))
		for i, f := range fields {
			id, err := strconv.Atoi(f)
			if err != nil || id < 0 {
				return nil, st, fmt.Errorf("Parse: line %d: token %q: %w", lineNo, f, ErrMalformedLine)
			}
			ids[i] = id
		}
		node := ids[0]
		adj[node] = append(adj[node], ids[1:]...)
	}
	if err := sc.Err(); err != nil {
		return nil, st, fmt.Errorf("Parse: line %d: %w", lineNo+1, err)
	}

	g := digraph.New()
	sources := make([]int, 0, len(adj))
	for id := range adj {
		sources = append(sources, id)
	}
	sort.Ints(sources)
	for _, id := range sources {
		if err := g.AddNode(id); err != nil {
			return nil, st, fmt.Errorf("Parse: %w", err)
		}
	}
	for _, id := range sources {
		for _, to := range adj[id] {
			if !g.HasNode(to) {
				if err := g.AddNode(to); err != nil {
					return nil, st, fmt.Errorf("Parse: %w", err)
				}
				st.Materialized++
			}
		}
	}
	for _, id := range sources {
		for _, to := range adj[id] {
			if to == id {
				st.SelfLoops++
				continue
			}
			if err := g.AddEdge(id, to); err != nil {
				return nil, st, fmt.Errorf("Parse: %w", err)
			}
		}
	}

	st.Nodes, st.Edges = g.NodeCount(), g.EdgeCount()

	return g, st, nil
}

// Encode writes g in edge-list form, nodes and neighbors ascending, every id
// followed by a single space as in the published citation file.
func Encode(w io.Writer, g *digraph.Graph) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for _, id := range g.Nodes() {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return fmt.Errorf("Encode: %w", err)
		}
		buf = buf[:0]
		buf = strconv.AppendInt(buf, int64(id), 10)
		buf = append(buf, ' ')
		for _, v := range nbrs {
			buf = strconv.AppendInt(buf, int64(v), 10)
			buf = append(buf, ' ')
		}
		buf = append(buf, '\n')
		if _, err = bw.Write(buf); err != nil {
			return fmt.Errorf("Encode: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	return nil
}
