package bidigraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kquick/haggle"
	"github.com/kquick/haggle/bidigraph"
)

func TestFrozen_BidirectionalQueries(t *testing.T) {
	g, vs, es := chain(t)
	snap := g.Freeze()

	bidi, ok := snap.(haggle.ImmutableBidirectional)
	require.True(t, ok, "frozen BiDigraph must keep the bidirectional capability")

	assert.Equal(t, []haggle.Vertex{vs[0]}, bidi.Predecessors(vs[1]))
	assert.Equal(t, []haggle.Edge{es[0]}, bidi.InEdges(vs[1]))
	assert.Equal(t, []haggle.Vertex{vs[2]}, bidi.Successors(vs[1]))
}

func TestFrozen_IsolatedFromRemovals(t *testing.T) {
	g, vs, es := chain(t)
	snap := g.Freeze()

	require.NoError(t, g.RemoveEdge(es[0]))
	require.NoError(t, g.RemoveVertex(vs[2]))

	assert.True(t, snap.HasEdge(vs[0], vs[1]), "snapshot must keep removed edge")
	assert.Len(t, snap.Vertices(), 3, "snapshot must keep removed vertex")
	assert.Len(t, snap.Edges(), 2)
}

func TestFrozen_MaxVertexIDCountsDeadSlots(t *testing.T) {
	g, vs, _ := chain(t)
	require.NoError(t, g.RemoveVertex(vs[2]))
	snap := g.Freeze()

	// The dead id still bounds the numbering space for property arrays.
	assert.Equal(t, 2, snap.MaxVertexID())
	assert.Len(t, snap.Vertices(), 2)
	assert.False(t, snap.IsEmpty())
}

func TestFrozen_ThawPreservesRemovalState(t *testing.T) {
	g, vs, es := chain(t)
	require.NoError(t, g.RemoveEdge(es[1]))
	snap := g.Freeze()

	thawed, ok := snap.Thaw().(*bidigraph.BiDigraph)
	require.True(t, ok)

	assert.False(t, thawed.HasEdge(vs[1], vs[2]))
	assert.True(t, thawed.HasEdge(vs[0], vs[1]))
	// Dead ids stay dead in the new builder: fresh edges get fresh ids.
	fresh, err := thawed.AddEdge(vs[1], vs[2])
	require.NoError(t, err)
	assert.NotEqual(t, es[1], fresh)
}

func TestFrozen_ThawRestoresSimpleVariant(t *testing.T) {
	g := bidigraph.NewSimple()
	a := g.AddVertex()
	b := g.AddVertex()
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)

	snap := g.Freeze()
	thawed, ok := snap.Thaw().(*bidigraph.SimpleBiDigraph)
	require.True(t, ok, "a simple snapshot must thaw into a SimpleBiDigraph")

	// The no-parallel-edge policy carries over, pair index included.
	_, err = thawed.AddEdge(a, b)
	assert.ErrorIs(t, err, bidigraph.ErrParallelEdge)
	assert.True(t, thawed.HasEdge(a, b))
}

func TestFrozen_ThawIsIndependentOfSnapshotAndOrigin(t *testing.T) {
	g, vs, _ := chain(t)
	snap := g.Freeze()

	thawed, ok := snap.Thaw().(*bidigraph.BiDigraph)
	require.True(t, ok)
	_, err := thawed.AddEdge(vs[2], vs[0])
	require.NoError(t, err)

	assert.False(t, snap.HasEdge(vs[2], vs[0]))
	assert.False(t, g.HasEdge(vs[2], vs[0]))
}

func TestFrozen_FreezeThawFreezeStructuralEquality(t *testing.T) {
	g, vs, _ := chain(t)
	first := g.Freeze()
	second := first.Thaw().Freeze()

	assert.Equal(t, first.Vertices(), second.Vertices())
	assert.Equal(t, first.Edges(), second.Edges())
	for _, v := range vs {
		assert.Equal(t, first.Successors(v), second.Successors(v))
	}
}
