package degree_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citegraph/builder"
	"github.com/katalvlaran/citegraph/degree"
	"github.com/katalvlaran/citegraph/digraph"
)

func TestInDegrees(t *testing.T) {
	tests := []struct {
		name string
		adj  map[int][]int
		want degree.Degrees
	}{
		{"graph0", exGraph0, degree.Degrees{0: 0, 1: 1, 2: 1}},
		{"graph1", exGraph1, degree.Degrees{0: 1, 1: 2, 2: 2, 3: 1, 4: 1, 5: 1, 6: 1}},
		{"graph2", exGraph2, degree.Degrees{0: 1, 1: 3, 2: 3, 3: 3, 4: 2, 5: 2, 6: 2, 7: 3, 8: 0, 9: 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGraph(t, tc.adj)
			require.Equal(t, tc.want, degree.InDegrees(g))
		})
	}
}

func TestInDegrees_Idempotent(t *testing.T) {
	g := mustGraph(t, exGraph2)
	require.Equal(t, degree.InDegrees(g), degree.InDegrees(g))
}

func TestOutDegrees(t *testing.T) {
	g := mustGraph(t, exGraph2)
	require.Equal(t, degree.Degrees{0: 3, 1: 2, 2: 2, 3: 1, 4: 1, 5: 1, 6: 0, 7: 1, 8: 2, 9: 6}, degree.OutDegrees(g))
	require.InDelta(t, 1.9, degree.MeanOutDegree(g), 1e-12)
	require.Equal(t, 0.0, degree.MeanOutDegree(digraph.New()))
	require.Equal(t, degree.Distribution{0: 1, 1: 4, 2: 3, 3: 1, 6: 1}, degree.OutDegreeDistribution(g))
}

func TestInDegreeDistribution(t *testing.T) {
	tests := []struct {
		name string
		adj  map[int][]int
		want degree.Distribution
	}{
		{"graph0", exGraph0, degree.Distribution{0: 1, 1: 2}},
		{"graph1", exGraph1, degree.Distribution{1: 5, 2: 2}},
		{"graph2", exGraph2, degree.Distribution{0: 2, 1: 1, 2: 3, 3: 4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGraph(t, tc.adj)
			dist := degree.InDegreeDistribution(g)
			require.Equal(t, tc.want, dist)
			require.Equal(t, g.NodeCount(), dist.Total())
		})
	}
}

// TestDistribution_GeneratedGraphs checks Σcounts = n and Σp = 1 on model graphs.
func TestDistribution_GeneratedGraphs(t *testing.T) {
	dpa, err := builder.BuildDPA(context.Background(), 1500, 6, builder.WithSeed(4))
	require.NoError(t, err)
	er, err := builder.BuildErdosRenyi(120, 0.05, builder.WithSeed(4))
	require.NoError(t, err)
	k, err := builder.BuildComplete(9)
	require.NoError(t, err)

	for name, g := range map[string]*digraph.Graph{"dpa": dpa, "er": er, "complete": k} {
		t.Run(name, func(t *testing.T) {
			dist := degree.InDegreeDistribution(g)
			require.Equal(t, g.NodeCount(), dist.Total())
			norm := degree.Normalize(dist)
			require.InDelta(t, 1.0, norm.Sum(), 1e-9)
			for d := range dist {
				require.Greater(t, dist[d], 0, "sparse: no zero-count buckets")
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	dist := degree.Distribution{0: 2, 1: 1, 2: 3, 3: 4}
	norm := degree.Normalize(dist)
	assert.InDelta(t, 0.2, norm[0], 1e-12, "degree 0 stays in the normalized map")
	assert.InDelta(t, 0.1, norm[1], 1e-12)
	assert.InDelta(t, 0.3, norm[2], 1e-12)
	assert.InDelta(t, 0.4, norm[3], 1e-12)
	assert.InDelta(t, 1.0, norm.Sum(), 1e-9)
	assert.Equal(t, []int{0, 1, 2, 3}, norm.Degrees())

	plot := norm.WithoutZero()
	assert.Equal(t, []int{1, 2, 3}, plot.Degrees())
	assert.Contains(t, norm, 0, "WithoutZero must not mutate the receiver")

	assert.Empty(t, degree.Normalize(degree.Distribution{}))
}
