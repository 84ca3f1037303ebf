package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/citegraph/digraph"
)

type GraphSuite struct {
	suite.Suite
	g *digraph.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = digraph.New()
	for i := 0; i < 4; i++ {
		s.Require().NoError(s.g.AddNode(i))
	}
}

func (s *GraphSuite) TestAddNodeIdempotent() {
	require := require.New(s.T())
	require.NoError(s.g.AddNode(2))
	require.Equal(4, s.g.NodeCount(), "re-adding a node must not change the count")

	err := s.g.AddNode(-1)
	require.ErrorIs(err, digraph.ErrNegativeID)
}

func (s *GraphSuite) TestAddEdgeSetSemantics() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(0, 1))
	require.NoError(s.g.AddEdge(0, 1))
	require.Equal(1, s.g.EdgeCount(), "duplicate edge collapses by set semantics")
	require.True(s.g.HasEdge(0, 1))
	require.False(s.g.HasEdge(1, 0), "edges are directed")
}

func (s *GraphSuite) TestAddEdgeRejectsLoopsAndDangling() {
	require := require.New(s.T())
	require.ErrorIs(s.g.AddEdge(3, 3), digraph.ErrSelfLoop)
	require.ErrorIs(s.g.AddEdge(0, 9), digraph.ErrNodeNotFound)
	require.ErrorIs(s.g.AddEdge(9, 0), digraph.ErrNodeNotFound)
	require.Equal(0, s.g.EdgeCount())
	require.False(s.g.HasNode(9), "failed AddEdge must not create nodes")
}

func (s *GraphSuite) TestNeighborsSorted() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(0, 3))
	require.NoError(s.g.AddEdge(0, 1))
	require.NoError(s.g.AddEdge(0, 2))

	nbrs, err := s.g.Neighbors(0)
	require.NoError(err)
	require.Equal([]int{1, 2, 3}, nbrs)
	require.Equal(3, s.g.OutDegree(0))

	_, err = s.g.Neighbors(42)
	require.ErrorIs(err, digraph.ErrNodeNotFound)
	require.Nil(s.g.NeighborSet(42))
}

func (s *GraphSuite) TestNeighborSetIsCopy() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(1, 2))
	set := s.g.NeighborSet(1)
	set[3] = struct{}{}
	require.False(s.g.HasEdge(1, 3), "mutating the returned set must not leak into the graph")
}

func (s *GraphSuite) TestStats() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(0, 1))
	require.NoError(s.g.AddEdge(0, 2))
	st := s.g.Stats()
	require.Equal(digraph.GraphStats{NodeCount: 4, EdgeCount: 2, MaxOutDegree: 2, Isolated: 1}, st)
}

func (s *GraphSuite) TestCloneIndependent() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(0, 1))
	cp := s.g.Clone()
	require.NoError(cp.AddEdge(1, 0))
	require.False(s.g.HasEdge(1, 0))
	require.Equal(s.g.AdjacencyList()[0], cp.AdjacencyList()[0])
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestFromAdjacency(t *testing.T) {
	g, err := digraph.FromAdjacency(map[int][]int{0: {1, 2}, 1: {}, 2: {}})
	require.NoError(t, err)
	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, 2, g.EdgeCount())
	require.NoError(t, g.Validate())

	_, err = digraph.FromAdjacency(map[int][]int{0: {5}})
	require.ErrorIs(t, err, digraph.ErrDanglingNeighbor)

	_, err = digraph.FromAdjacency(map[int][]int{0: {0}})
	require.ErrorIs(t, err, digraph.ErrSelfLoop)
}

func TestGonumRoundTrip(t *testing.T) {
	src, err := digraph.FromAdjacency(map[int][]int{
		0: {1, 4, 5}, 1: {2, 6}, 2: {3}, 3: {0}, 4: {1}, 5: {2}, 6: {},
	})
	require.NoError(t, err)

	gg := src.ToGonum()
	require.Equal(t, 7, gg.Nodes().Len())
	require.True(t, gg.HasEdgeFromTo(0, 4))
	require.False(t, gg.HasEdgeFromTo(4, 0))

	back, err := digraph.FromGonum(gg)
	require.NoError(t, err)
	require.Equal(t, src.AdjacencyList(), back.AdjacencyList())
}
