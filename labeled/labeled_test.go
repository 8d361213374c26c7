package labeled_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kquick/haggle"
	"github.com/kquick/haggle/bidigraph"
	"github.com/kquick/haggle/digraph"
	"github.com/kquick/haggle/labeled"
)

func TestLabeled_BothDimensions(t *testing.T) {
	a := labeled.New[string, float64](bidigraph.New())
	u := a.AddLabeledVertex("u")
	w := a.AddLabeledVertex("w")
	e, err := a.AddLabeledEdge(u, w, 2.5)
	require.NoError(t, err)

	assert.Equal(t, "u", a.MustVertexLabel(u))
	assert.Equal(t, 2.5, a.MustEdgeLabel(e))

	pairs := a.LabeledVertices()
	require.Len(t, pairs, 2)
	assert.Equal(t, "u", pairs[0].Label)
	assert.Equal(t, "w", pairs[1].Label)
}

func TestLabeled_StructuralPassThrough(t *testing.T) {
	a := labeled.New[string, int](bidigraph.New())
	u := a.AddLabeledVertex("u")
	w := a.AddLabeledVertex("w")
	_, err := a.AddLabeledEdge(u, w, 1)
	require.NoError(t, err)

	assert.Equal(t, []haggle.Vertex{u, w}, a.Vertices())
	assert.Equal(t, []haggle.Vertex{w}, a.Successors(u))
	assert.Len(t, a.OutEdges(u), 1)
	assert.Equal(t, 2, a.VertexCount())
	assert.Equal(t, 1, a.EdgeCount())
	assert.True(t, a.HasEdge(u, w))
	assert.False(t, a.HasEdge(w, u))
}

func TestLabeled_LabelCountNeverExceedsStructure(t *testing.T) {
	a := labeled.New[string, int](digraph.New())
	u := a.AddLabeledVertex("u")
	w := a.AddLabeledVertex("w")
	_, err := a.AddLabeledEdge(u, w, 1)
	require.NoError(t, err)
	_, err = a.AddLabeledEdge(u, haggle.VertexFromID(10), 2)
	require.Error(t, err)

	// Every structural element has exactly one label; the failed add left
	// no orphan label behind.
	assert.Len(t, a.LabeledVertices(), a.VertexCount())
	assert.Equal(t, 1, a.EdgeCount())
}

func TestLabeled_FreezeThawScenario(t *testing.T) {
	// Lineage walk: label "A", freeze, thaw, label "B" in the new builder;
	// the original snapshot still answers "A".
	a := labeled.New[string, int](bidigraph.New())
	v := a.AddLabeledVertex("A")
	snap := a.Freeze()

	thawed := snap.Thaw()
	w := thawed.AddLabeledVertex("B")

	got, ok := snap.VertexLabel(v)
	require.True(t, ok)
	assert.Equal(t, "A", got)
	_, ok = snap.VertexLabel(w)
	assert.False(t, ok)

	// And the thawed builder sees both.
	assert.Equal(t, "A", thawed.MustVertexLabel(v))
	assert.Equal(t, "B", thawed.MustVertexLabel(w))
}

func TestFrozenLabeled_QueriesAndGraphAccess(t *testing.T) {
	a := labeled.New[string, int](bidigraph.New())
	u := a.AddLabeledVertex("u")
	w := a.AddLabeledVertex("w")
	_, err := a.AddLabeledEdge(u, w, 3)
	require.NoError(t, err)

	snap := a.Freeze()
	assert.False(t, snap.IsEmpty())
	assert.Equal(t, 1, snap.MaxVertexID())
	assert.True(t, snap.HasEdge(u, w))
	assert.Len(t, snap.Edges(), 1)

	// The bare topology is reachable for capability-bound consumers and
	// keeps its own capabilities.
	_, ok := snap.Graph().(haggle.ImmutableBidirectional)
	assert.True(t, ok)
}
