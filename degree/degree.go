// SPDX-License-Identifier: MIT
// Package: citegraph/degree
//
// degree.go - per-node degree maps and sparse histograms.

package degree

import (
	"sort"

	"github.com/katalvlaran/citegraph/digraph"
)

// Degrees maps node id to a degree value.
type Degrees map[int]int

// Distribution maps a degree value to the number of nodes that have it.
// Degrees no node has are absent.
type Distribution map[int]int

// Normalized maps a degree value to the fraction of nodes that have it.
type Normalized map[int]float64

// InDegrees counts, for every node, how many nodes list it as a neighbor.
// Nodes nobody points at appear with 0.
// Complexity: O(V+E).
func InDegrees(g *digraph.Graph) Degrees {
	in := make(Degrees, g.NodeCount())
	g.Range(func(id int, _ digraph.NodeSet) bool {
		in[id] = 0
		return true
	})
	g.Range(func(_ int, out digraph.NodeSet) bool {
		for v := range out {
			in[v]++
		}
		return true
	})

	return in
}

// OutDegrees returns each node's neighbor-set size.
// Complexity: O(V).
func OutDegrees(g *digraph.Graph) Degrees {
	out := make(Degrees, g.NodeCount())
	g.Range(func(id int, nbrs digraph.NodeSet) bool {
		out[id] = len(nbrs)
		return true
	})

	return out
}

// MeanOutDegree returns E/V, or 0 for a graph without nodes.
func MeanOutDegree(g *digraph.Graph) float64 {
	v := g.NodeCount()
	if v == 0 {
		return 0
	}

	return float64(g.EdgeCount()) / float64(v)
}

// Histogram folds per-node degrees into a sparse Distribution.
// Complexity: O(V).
func Histogram(d Degrees) Distribution {
	dist := make(Distribution)
	for _, k := range d {
		dist[k]++
	}

	return dist
}

// InDegreeDistribution is Histogram(InDegrees(g)).
func InDegreeDistribution(g *digraph.Graph) Distribution {
	return Histogram(InDegrees(g))
}

// OutDegreeDistribution is Histogram(OutDegrees(g)).
func OutDegreeDistribution(g *digraph.Graph) Distribution {
	return Histogram(OutDegrees(g))
}

// Total returns Σ counts, i.e. the number of nodes the histogram covers.
func (d Distribution) Total() int {
	total := 0
	for _, c := range d {
		total += c
	}

	return total
}

// Degrees returns the degree values present, ascending.
func (d Distribution) Degrees() []int {
	return sortedKeys(d)
}

// Normalize divides every count by the total node count. The degree-0 bucket
// is kept, so the values sum to 1.
// Complexity: O(len(d)).
func Normalize(d Distribution) Normalized {
	norm := make(Normalized, len(d))
	total := d.Total()
	if total == 0 {
		return norm
	}
	for k, c := range d {
		norm[k] = float64(c) / float64(total)
	}

	return norm
}

// WithoutZero returns a copy without the degree-0 bucket, ready for log-log
// plotting. The result no longer sums to 1 when a zero bucket existed.
func (n Normalized) WithoutZero() Normalized {
	cp := make(Normalized, len(n))
	for k, p := range n {
		if k != 0 {
			cp[k] = p
		}
	}

	return cp
}

// Degrees returns the degree values present, ascending.
func (n Normalized) Degrees() []int {
	return sortedKeys(n)
}

// Sum returns Σ probabilities.
func (n Normalized) Sum() float64 {
	s := 0.0
	for _, k := range n.Degrees() {
		s += n[k]
	}

	return s
}

func sortedKeys[M ~map[int]V, V int | float64](m M) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}
