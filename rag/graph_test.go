package rag_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/ragfeat/rag"
)

type GraphSuite struct {
	suite.Suite
	g *rag.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = rag.New()
}

func (s *GraphSuite) TestAddNodeIdempotent() {
	require := require.New(s.T())
	require.NoError(s.g.AddNode(3))
	require.NoError(s.g.AddNode(1))
	require.NoError(s.g.AddNode(3))
	require.Equal(2, s.g.NodeCount(), "adding duplicate node should not increase count")
	require.Equal([]rag.Node{1, 3}, s.g.Nodes(), "nodes must stay sorted")
	require.Equal(rag.Node(3), s.g.MaxNodeID())
}

func (s *GraphSuite) TestAddNodeRange() {
	require := require.New(s.T())
	require.ErrorIs(s.g.AddNode(-1), rag.ErrNodeRange)
	require.ErrorIs(s.g.AddNode(rag.Node(1)<<32), rag.ErrNodeRange)
	require.Equal(rag.Node(-1), s.g.MaxNodeID(), "empty graph reports -1")
}

func (s *GraphSuite) TestAddEdgeDenseIDs() {
	require := require.New(s.T())
	e0, err := s.g.AddEdge(2, 1)
	require.NoError(err)
	e1, err := s.g.AddEdge(2, 5)
	require.NoError(err)
	again, err := s.g.AddEdge(1, 2)
	require.NoError(err)

	require.Equal(rag.Edge(0), e0)
	require.Equal(rag.Edge(1), e1)
	require.Equal(e0, again, "re-adding a pair keeps its id")
	require.Equal(2, s.g.EdgeCount())
	require.Equal([]rag.Edge{0, 1}, s.g.Edges())

	u, v, err := s.g.Endpoints(e0)
	require.NoError(err)
	require.Equal(rag.Node(1), u, "endpoints are ordered u < v")
	require.Equal(rag.Node(2), v)
}

func (s *GraphSuite) TestSelfLoopRejected() {
	_, err := s.g.AddEdge(4, 4)
	s.Require().ErrorIs(err, rag.ErrSelfLoop)
}

func (s *GraphSuite) TestFindEdge() {
	require := require.New(s.T())
	_, _ = s.g.AddEdge(1, 2)
	e, err := s.g.FindEdge(2, 1)
	require.NoError(err)
	require.Equal(rag.Edge(0), e)

	_, err = s.g.FindEdge(1, 3)
	require.ErrorIs(err, rag.ErrEdgeNotFound)
	_, err = s.g.FindEdge(-4, 1)
	require.ErrorIs(err, rag.ErrEdgeNotFound)
	_, _, err = s.g.Endpoints(7)
	require.ErrorIs(err, rag.ErrEdgeNotFound)
}

func (s *GraphSuite) TestDegreeAndNeighbors() {
	require := require.New(s.T())
	// star: 0 - {1, 2, 3}
	for _, v := range []rag.Node{3, 1, 2} {
		_, err := s.g.AddEdge(0, v)
		require.NoError(err)
	}
	deg, err := s.g.Degree(0)
	require.NoError(err)
	require.Equal(3, deg)

	nb, err := s.g.Neighbors(0)
	require.NoError(err)
	require.Equal([]rag.Node{1, 2, 3}, nb)

	_, err = s.g.Degree(9)
	require.ErrorIs(err, rag.ErrNodeNotFound)
	_, err = s.g.Neighbors(9)
	require.ErrorIs(err, rag.ErrNodeNotFound)
}

func (s *GraphSuite) TestNodeFromLabel() {
	require := require.New(s.T())
	require.NoError(s.g.AddNode(7))
	n, err := s.g.NodeFromLabel(7)
	require.NoError(err)
	require.Equal(rag.Node(7), n)
	_, err = s.g.NodeFromLabel(8)
	require.ErrorIs(err, rag.ErrNodeNotFound)
}

func (s *GraphSuite) TestUndirectedViewAndComponents() {
	require := require.New(s.T())
	_, _ = s.g.AddEdge(1, 2)
	_, _ = s.g.AddEdge(5, 4)
	require.NoError(s.g.AddNode(9))

	ug := s.g.Undirected()
	ge := ug.EdgeBetween(5, 4)
	require.NotNil(ge)
	id, ok := rag.EdgeID(ge)
	require.True(ok)
	require.Equal(rag.Edge(1), id)

	require.Equal([][]rag.Node{{1, 2}, {4, 5}, {9}}, s.g.Components())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestEndpointAccessors(t *testing.T) {
	g := rag.New()
	e, err := g.AddEdge(9, 4)
	require.NoError(t, err)
	require.Equal(t, rag.Node(4), g.U(e))
	require.Equal(t, rag.Node(9), g.V(e))
	require.Equal(t, rag.Node(-1), g.U(3))
	require.Equal(t, rag.Node(-1), g.V(-1))
}
