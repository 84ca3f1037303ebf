package degree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citegraph/digraph"
)

// Small reference digraphs with hand-checked degrees.
var (
	exGraph0 = map[int][]int{0: {1, 2}, 1: {}, 2: {}}

	exGraph1 = map[int][]int{
		0: {1, 4, 5}, 1: {2, 6}, 2: {3}, 3: {0}, 4: {1}, 5: {2}, 6: {},
	}

	exGraph2 = map[int][]int{
		0: {1, 4, 5}, 1: {2, 6}, 2: {3, 7}, 3: {7}, 4: {1},
		5: {2}, 6: {}, 7: {3}, 8: {1, 2}, 9: {0, 3, 4, 5, 6, 7},
	}
)

func mustGraph(t *testing.T, adj map[int][]int) *digraph.Graph {
	t.Helper()
	g, err := digraph.FromAdjacency(adj)
	require.NoError(t, err)
	return g
}
