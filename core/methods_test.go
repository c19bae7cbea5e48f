package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/sheabunge/terrainpath/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = MustGraph(s.T(), 3)
}

func (s *GraphSuite) TestNewGraph_RejectsNonPositive() {
	require := require.New(s.T())
	for _, n := range []int{0, -1, -100} {
		g, err := core.NewGraph(n)
		require.ErrorIs(err, core.ErrInvalidVertexCount, "NewGraph(%d)", n)
		require.Nil(g)
	}
}

func (s *GraphSuite) TestNewGraph_Empty() {
	require := require.New(s.T())
	require.Equal(3, s.g.VertexCount())
	require.Zero(s.g.EdgeCount())
	for v := 0; v < 3; v++ {
		require.Empty(CollectEdges(s.g, v), "fresh vertex %d must have no edges", v)
		require.Zero(s.g.OutDegree(v))
	}
}

func (s *GraphSuite) TestAddEdge_StoresDirectedEdge() {
	require := require.New(s.T())
	MustEdge(s.T(), s.g, V0, V1, Weight5)

	require.Equal([]core.Edge{{To: V1, Weight: Weight5}}, CollectEdges(s.g, V0))
	require.Empty(CollectEdges(s.g, V1), "edge must not be mirrored")
	require.Equal(1, s.g.EdgeCount())
}

func (s *GraphSuite) TestAddEdge_KeepsParallelEdgesAndLoops() {
	require := require.New(s.T())
	MustEdge(s.T(), s.g, V0, V1, Weight5)
	MustEdge(s.T(), s.g, V0, V1, Weight3)
	MustEdge(s.T(), s.g, V2, V2, Weight1)

	require.Equal([]core.Edge{{To: V1, Weight: Weight5}, {To: V1, Weight: Weight3}}, CollectEdges(s.g, V0))
	require.Equal([]core.Edge{{To: V2, Weight: Weight1}}, CollectEdges(s.g, V2))
	require.Equal(3, s.g.EdgeCount())
	require.Equal(2, s.g.OutDegree(V0))
}

func (s *GraphSuite) TestAddEdge_AcceptsNegativeWeight() {
	MustEdge(s.T(), s.g, V1, V2, WeightNeg3)
	s.Require().Equal([]core.Edge{{To: V2, Weight: WeightNeg3}}, CollectEdges(s.g, V1))
}

// An out-of-range endpoint is reported and the graph stays queryable for 0..2.
func (s *GraphSuite) TestAddEdge_InvalidEndpoint() {
	require := require.New(s.T())
	MustEdge(s.T(), s.g, V0, V1, Weight1)

	err := s.g.AddEdge(0, 5, 1)
	require.ErrorIs(err, core.ErrInvalidEndpoint)
	require.Contains(err.Error(), "0→5")

	require.ErrorIs(s.g.AddEdge(-1, 0, 1), core.ErrInvalidEndpoint)
	require.ErrorIs(s.g.AddEdge(3, 0, 1), core.ErrInvalidEndpoint)

	require.Equal(1, s.g.EdgeCount(), "rejected edges must not be stored")
	require.Equal([]core.Edge{{To: V1, Weight: Weight1}}, CollectEdges(s.g, V0))
	for v := 0; v < 3; v++ {
		require.True(s.g.HasVertex(v))
	}
}

func (s *GraphSuite) TestEdgesFrom_OutOfRangeYieldsNothing() {
	require := require.New(s.T())
	require.Empty(CollectEdges(s.g, -1))
	require.Empty(CollectEdges(s.g, 3))
	require.Zero(s.g.OutDegree(7))
	require.False(s.g.HasVertex(3))
}

func (s *GraphSuite) TestEdgesFrom_RestartableAndStoppable() {
	require := require.New(s.T())
	MustEdge(s.T(), s.g, V0, V1, Weight1)
	MustEdge(s.T(), s.g, V0, V2, Weight3)

	first := CollectEdges(s.g, V0)
	second := CollectEdges(s.g, V0)
	require.Equal(first, second, "sequence must be restartable")

	seen := 0
	for range s.g.EdgesFrom(V0) {
		seen++
		break
	}
	require.Equal(1, seen)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
