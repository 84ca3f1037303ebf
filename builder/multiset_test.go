package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citegraph/builder"
	"github.com/katalvlaran/citegraph/digraph"
)

func TestNewMultiset_Seeding(t *testing.T) {
	ms, err := builder.NewMultiset(4, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, 16, ms.Len())
	require.Equal(t, 4, ms.NextID())
	for id := 0; id < 4; id++ {
		require.Equal(t, 4, ms.Weight(id), "seed node %d", id)
	}
	require.Equal(t, 0, ms.Weight(4))
}

func TestNewMultiset_Errors(t *testing.T) {
	_, err := builder.NewMultiset(0, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, builder.ErrInvalidParameter)

	_, err = builder.NewMultiset(3, nil)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

// TestMultiset_DrawDistinct checks the with-replacement-then-dedup
// approximation: at most k ids, all previously committed, bag untouched.
func TestMultiset_DrawDistinct(t *testing.T) {
	ms, err := builder.NewMultiset(5, rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	sawShort := false
	for trial := 0; trial < 500; trial++ {
		before := ms.Len()
		got, err := ms.DrawDistinct(5)
		require.NoError(t, err)
		require.Equal(t, before, ms.Len(), "draw must not mutate the bag")
		require.NotEmpty(t, got)
		require.LessOrEqual(t, len(got), 5)
		if len(got) < 5 {
			sawShort = true
		}
		for id := range got {
			require.GreaterOrEqual(t, id, 0)
			require.Less(t, id, ms.NextID())
		}
	}
	// Five draws over five equally weighted ids collide with probability
	// 1 - 5!/5^5 ≈ 0.96 per trial.
	require.True(t, sawShort, "duplicates must collapse, yielding fewer than k ids")

	_, err = ms.DrawDistinct(0)
	require.ErrorIs(t, err, builder.ErrInvalidParameter)
}

func TestMultiset_Commit(t *testing.T) {
	ms, err := builder.NewMultiset(2, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	require.NoError(t, ms.Commit(2, digraph.NewNodeSet(0)))
	require.Equal(t, 6, ms.Len(), "4 seed entries + new node + one neighbor")
	require.Equal(t, 3, ms.Weight(0))
	require.Equal(t, 2, ms.Weight(1))
	require.Equal(t, 1, ms.Weight(2))
	require.Equal(t, 3, ms.NextID())

	require.NoError(t, ms.Commit(3, digraph.NewNodeSet(2, 0)))
	require.Equal(t, 4, ms.Weight(0))
	require.Equal(t, 2, ms.Weight(2))
	require.Equal(t, 1, ms.Weight(3))
}

func TestMultiset_CommitInvariants(t *testing.T) {
	ms, err := builder.NewMultiset(2, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	err = ms.Commit(5, digraph.NewNodeSet(0))
	require.ErrorIs(t, err, builder.ErrInvariantViolation, "out-of-order id")

	err = ms.Commit(2, digraph.NewNodeSet(2))
	require.ErrorIs(t, err, builder.ErrInvariantViolation, "self reference")

	err = ms.Commit(2, digraph.NewNodeSet(7))
	require.ErrorIs(t, err, builder.ErrInvariantViolation, "uncommitted neighbor")

	require.Equal(t, 4, ms.Len(), "failed commits leave the bag unchanged")
	require.Equal(t, 2, ms.NextID())
}

// TestMultiset_WeightInvariant grows a bag by hand and checks that every
// node's multiplicity equals its total in-degree + 1 (seed nodes already hold
// m-1 in-edges from the complete seed) and that the bag size is
// m² + Σ(1 + |chosen|).
func TestMultiset_WeightInvariant(t *testing.T) {
	const m = 3
	rng := rand.New(rand.NewSource(21))
	ms, err := builder.NewMultiset(m, rng)
	require.NoError(t, err)

	indeg := map[int]int{}
	total := m * m
	for id := m; id < 200; id++ {
		chosen, err := ms.DrawDistinct(m)
		require.NoError(t, err)
		require.NoError(t, ms.Commit(id, chosen))
		for v := range chosen {
			indeg[v]++
		}
		total += 1 + len(chosen)
	}
	require.Equal(t, total, ms.Len())
	for id := 0; id < 200; id++ {
		want := indeg[id] + 1
		if id < m {
			// seed nodes start at m = (m-1 in-edges from the seed) + 1.
			want = indeg[id] + m
		}
		require.Equal(t, want, ms.Weight(id), "node %d", id)
	}
}
