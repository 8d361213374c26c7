package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kquick/haggle"
	"github.com/kquick/haggle/digraph"
)

func buildTriangle(t *testing.T) (*digraph.Digraph, []haggle.Vertex) {
	t.Helper()
	g := digraph.New()
	a := g.AddVertex()
	b := g.AddVertex()
	c := g.AddVertex()
	for _, p := range [][2]haggle.Vertex{{a, b}, {b, c}, {c, a}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	return g, []haggle.Vertex{a, b, c}
}

func TestFrozen_MirrorsBuilderState(t *testing.T) {
	g, vs := buildTriangle(t)
	snap := g.Freeze()

	assert.Equal(t, g.Vertices(), snap.Vertices())
	assert.Len(t, snap.Edges(), 3)
	for _, v := range vs {
		assert.Equal(t, g.Successors(v), snap.Successors(v))
		assert.Equal(t, g.OutEdges(v), snap.OutEdges(v))
	}
	assert.False(t, snap.IsEmpty())
	assert.Equal(t, 2, snap.MaxVertexID())
}

func TestFrozen_SnapshotIsolation(t *testing.T) {
	g, vs := buildTriangle(t)
	snap := g.Freeze()

	// Mutate the builder after freezing.
	d := g.AddVertex()
	_, err := g.AddEdge(vs[0], d)
	require.NoError(t, err)

	assert.Len(t, snap.Vertices(), 3, "snapshot must not see the new vertex")
	assert.Len(t, snap.Edges(), 3, "snapshot must not see the new edge")
	assert.False(t, snap.HasEdge(vs[0], d))
}

func TestFrozen_RepeatedFreezeIsIndependent(t *testing.T) {
	g, vs := buildTriangle(t)
	first := g.Freeze()

	d := g.AddVertex()
	_, err := g.AddEdge(vs[2], d)
	require.NoError(t, err)
	second := g.Freeze()

	assert.Len(t, first.Edges(), 3)
	assert.Len(t, second.Edges(), 4)
	assert.True(t, second.HasEdge(vs[2], d))
	assert.False(t, first.HasEdge(vs[2], d))
}

func TestFrozen_ThawRoundTrip(t *testing.T) {
	g, vs := buildTriangle(t)
	snap := g.Freeze()
	thawed := snap.Thaw()

	// Structural equality with the pre-freeze builder.
	assert.Equal(t, g.Vertices(), thawed.Vertices())
	assert.Equal(t, g.EdgeCount(), thawed.EdgeCount())
	for _, v := range vs {
		assert.Equal(t, g.Successors(v), thawed.Successors(v))
	}

	// Identity is stable along the lineage: the original handles work on
	// the thawed builder.
	assert.True(t, thawed.HasEdge(vs[0], vs[1]))
}

func TestFrozen_ThawIsIndependent(t *testing.T) {
	g, vs := buildTriangle(t)
	snap := g.Freeze()

	b, ok := snap.Thaw().(haggle.Builder)
	require.True(t, ok, "thawed digraph must satisfy haggle.Builder")

	d := b.AddVertex()
	_, err := b.AddEdge(vs[0], d)
	require.NoError(t, err)

	assert.Len(t, snap.Vertices(), 3, "mutating the thawed builder must not alter the snapshot")
	assert.Equal(t, 3, g.VertexCount(), "…nor the original builder")
}

func TestFrozen_Empty(t *testing.T) {
	snap := digraph.New().Freeze()

	assert.True(t, snap.IsEmpty())
	assert.Equal(t, 0, snap.MaxVertexID())
	assert.Empty(t, snap.Vertices())
	assert.Empty(t, snap.Edges())
}
