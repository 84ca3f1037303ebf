package builder_test

import (
	"bytes"
	"context"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citegraph/builder"
)

// TestDPA_SecondGrowthStepOdds: with m=1 the seed is {0:{}}, node 1 must
// attach to 0, and node 2 then draws from the bag [0,1,0], picking 0 with
// probability 2/3.
func TestDPA_SecondGrowthStepOdds(t *testing.T) {
	const runs = 10000
	rng := rand.New(rand.NewSource(2024))

	toZero := 0
	for r := 0; r < runs; r++ {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithRand(rng)}, builder.DPA(4, 1))
		require.NoError(t, err)
		require.True(t, g.HasEdge(1, 0))
		require.Equal(t, 1, g.OutDegree(2))
		if g.HasEdge(2, 0) {
			toZero++
		} else {
			require.True(t, g.HasEdge(2, 1))
		}
	}

	// σ = sqrt(p(1-p)/runs) ≈ 0.0047; 0.05 is > 10σ.
	require.InDelta(t, 2.0/3.0, float64(toZero)/runs, 0.05)
}

// TestDPA_HeavyTail compares the largest in-degree of a DPA graph with an
// Erdős–Rényi graph of the same mean out-degree.
func TestDPA_HeavyTail(t *testing.T) {
	const n, m = 2000, 5

	dpa, err := builder.BuildDPA(context.Background(), n, m, builder.WithSeed(17))
	require.NoError(t, err)
	er, err := builder.BuildErdosRenyi(n, float64(m)/float64(n-1), builder.WithSeed(17))
	require.NoError(t, err)

	maxIn := func(adj map[int][]int) int {
		in := map[int]int{}
		best := 0
		for _, nbrs := range adj {
			for _, v := range nbrs {
				in[v]++
				if in[v] > best {
					best = in[v]
				}
			}
		}
		return best
	}

	dpaMax, erMax := maxIn(dpa.AdjacencyList()), maxIn(er.AdjacencyList())
	require.Greater(t, dpaMax, 40, "preferential attachment grows hubs")
	require.Less(t, erMax, 25, "binomial in-degrees stay near the mean")
	require.Greater(t, dpaMax, 2*erMax)
}

func TestDPA_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g, err := builder.BuildDPA(ctx, 100, 3, builder.WithSeed(1))
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, g)

	// n == m never enters the growth loop, so a cancelled ctx is irrelevant.
	g, err = builder.BuildDPA(ctx, 3, 3)
	require.NoError(t, err)
	require.Equal(t, 3, g.NodeCount())
}

func TestDPA_ProgressLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := builder.BuildDPA(context.Background(), 50, 2,
		builder.WithSeed(8), builder.WithLogger(logger), builder.WithProgressEvery(16))
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, `"message":"seed ready"`)
	require.Contains(t, out, `"message":"growth done"`)
	// 48 grown nodes, progress every 16 ⇒ exactly 3 progress lines.
	require.Equal(t, 3, bytes.Count(buf.Bytes(), []byte(`"message":"growth progress"`)))
	require.Contains(t, out, `"method":"DPA"`)
}
