package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kquick/haggle"
	"github.com/kquick/haggle/digraph"
)

func TestDigraph_AddVertexCounts(t *testing.T) {
	g := digraph.New()
	assert.Equal(t, 0, g.VertexCount())

	a := g.AddVertex()
	b := g.AddVertex()
	assert.Equal(t, 2, g.VertexCount())
	assert.NotEqual(t, a, b, "handles must be fresh")
	assert.Equal(t, []haggle.Vertex{a, b}, g.Vertices())
}

func TestDigraph_AddEdge(t *testing.T) {
	g := digraph.New()
	a := g.AddVertex()
	b := g.AddVertex()

	e, err := g.AddEdge(a, b)
	require.NoError(t, err)
	assert.Equal(t, a, e.Source())
	assert.Equal(t, b, e.Dest())
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge(a, b))
	assert.False(t, g.HasEdge(b, a))
}

func TestDigraph_AddEdge_UnknownEndpoint(t *testing.T) {
	g := digraph.New()
	a := g.AddVertex()
	ghost := haggle.VertexFromID(99)

	_, err := g.AddEdge(a, ghost)
	assert.ErrorIs(t, err, haggle.ErrVertexNotFound)
	_, err = g.AddEdge(ghost, a)
	assert.ErrorIs(t, err, haggle.ErrVertexNotFound)
	assert.Equal(t, 0, g.EdgeCount(), "failed AddEdge must not change the edge count")
}

func TestDigraph_HasEdge_SelfLoop(t *testing.T) {
	g := digraph.New()
	a := g.AddVertex()

	assert.False(t, g.HasEdge(a, a))
	_, err := g.AddEdge(a, a)
	require.NoError(t, err)
	assert.True(t, g.HasEdge(a, a))
	assert.Equal(t, []haggle.Vertex{a}, g.Successors(a))
}

func TestDigraph_ParallelEdges(t *testing.T) {
	g := digraph.New()
	a := g.AddVertex()
	b := g.AddVertex()

	e1, err := g.AddEdge(a, b)
	require.NoError(t, err)
	e2, err := g.AddEdge(a, b)
	require.NoError(t, err)

	assert.NotEqual(t, e1, e2, "parallel edges keep distinct identities")
	assert.Equal(t, 2, g.EdgeCount())
	// Existence is independent of multiplicity.
	assert.True(t, g.HasEdge(a, b))
	// Successors dedupes; OutEdges carries multiplicity.
	assert.Equal(t, []haggle.Vertex{b}, g.Successors(a))
	assert.Equal(t, []haggle.Edge{e1, e2}, g.OutEdges(a))
}

func TestDigraph_SuccessorsSorted(t *testing.T) {
	g := digraph.New()
	a := g.AddVertex()
	b := g.AddVertex()
	c := g.AddVertex()
	d := g.AddVertex()

	// Insert out of id order; Successors must come back id-sorted.
	for _, dst := range []haggle.Vertex{d, b, c} {
		_, err := g.AddEdge(a, dst)
		require.NoError(t, err)
	}

	assert.Equal(t, []haggle.Vertex{b, c, d}, g.Successors(a))
}

func TestDigraph_QueriesOnUnknownHandle(t *testing.T) {
	g := digraph.New()
	ghost := haggle.VertexFromID(5)

	assert.Empty(t, g.Successors(ghost))
	assert.Empty(t, g.OutEdges(ghost))
	assert.False(t, g.HasEdge(ghost, ghost))
}

// HasEdge(src,dst) must agree with membership of dst in Successors(src) on
// every pair, including loops and parallels.
func TestDigraph_HasEdgeMatchesSuccessors(t *testing.T) {
	g := digraph.New()
	var vs []haggle.Vertex
	for i := 0; i < 5; i++ {
		vs = append(vs, g.AddVertex())
	}
	pairs := [][2]int{{0, 1}, {0, 1}, {1, 1}, {2, 4}, {4, 0}, {3, 3}}
	for _, p := range pairs {
		_, err := g.AddEdge(vs[p[0]], vs[p[1]])
		require.NoError(t, err)
	}

	for _, src := range vs {
		inSucc := make(map[haggle.Vertex]bool)
		for _, s := range g.Successors(src) {
			inSucc[s] = true
		}
		for _, dst := range vs {
			assert.Equal(t, inSucc[dst], g.HasEdge(src, dst),
				"HasEdge(%d,%d) disagrees with Successors", src.ID(), dst.ID())
		}
	}
}
