package labeled

import (
	"fmt"

	"github.com/kquick/haggle"
)

// EdgeLabeled wraps a haggle.Builder and attaches a label of type EL to
// every edge created through it. AddLabeledEdge is the only edge entry
// point; vertices stay unlabeled and pass through AddVertex unchanged.
type EdgeLabeled[EL any] struct {
	g     haggle.Builder
	edges store[EL]
}

// NewEdgeLabeled wraps g. The adapter should hold the only reference to g
// from then on; mutating g directly creates unlabeled edges.
func NewEdgeLabeled[EL any](g haggle.Builder) *EdgeLabeled[EL] {
	return &EdgeLabeled[EL]{g: g}
}

// AddVertex allocates a fresh vertex on the wrapped graph.
func (a *EdgeLabeled[EL]) AddVertex() haggle.Vertex {
	return a.g.AddVertex()
}

// AddLabeledEdge creates a src→dst edge and records label against it in the
// same call. Endpoint validation is the wrapped graph's: on error, no edge
// is created and no label recorded.
func (a *EdgeLabeled[EL]) AddLabeledEdge(src, dst haggle.Vertex, label EL) (haggle.Edge, error) {
	e, err := a.g.AddEdge(src, dst)
	if err != nil {
		return haggle.Edge{}, err
	}
	a.edges.set(e.ID(), label)

	return e, nil
}

// EdgeLabel returns the label recorded for e, bounds-checked against the
// edge ids seen so far. The second result is false for out-of-range ids and
// edges never labeled through this adapter.
func (a *EdgeLabeled[EL]) EdgeLabel(e haggle.Edge) (EL, bool) {
	return a.edges.get(e.ID())
}

// MustEdgeLabel returns the label recorded for e and panics when there is
// none. This is the caller-verified fast path: use it only for edges
// created via AddLabeledEdge.
func (a *EdgeLabeled[EL]) MustEdgeLabel(e haggle.Edge) EL {
	return mustEdgeLabel(&a.edges, e)
}

// Vertices returns all live vertices sorted by id.
func (a *EdgeLabeled[EL]) Vertices() []haggle.Vertex {
	return a.g.Vertices()
}

// Successors returns the distinct direct successors of v, sorted by id.
func (a *EdgeLabeled[EL]) Successors(v haggle.Vertex) []haggle.Vertex {
	return a.g.Successors(v)
}

// OutEdges returns the live edges leaving v, sorted by edge id.
func (a *EdgeLabeled[EL]) OutEdges(v haggle.Vertex) []haggle.Edge {
	return a.g.OutEdges(v)
}

// VertexCount returns the number of live vertices.
func (a *EdgeLabeled[EL]) VertexCount() int {
	return a.g.VertexCount()
}

// EdgeCount returns the number of live edges.
func (a *EdgeLabeled[EL]) EdgeCount() int {
	return a.g.EdgeCount()
}

// HasEdge reports whether at least one src→dst edge exists.
func (a *EdgeLabeled[EL]) HasEdge(src, dst haggle.Vertex) bool {
	return a.g.HasEdge(src, dst)
}

// Freeze snapshots the wrapped structure and the label store together.
func (a *EdgeLabeled[EL]) Freeze() *FrozenEdgeLabeled[EL] {
	return &FrozenEdgeLabeled[EL]{g: a.g.Freeze(), edges: a.edges.clone()}
}

// FrozenEdgeLabeled is the immutable snapshot of an EdgeLabeled adapter.
// Safe for unsynchronized concurrent reads.
type FrozenEdgeLabeled[EL any] struct {
	g     haggle.ImmutableGraph
	edges store[EL]
}

// Graph exposes the frozen topology for capability-bound consumers.
func (f *FrozenEdgeLabeled[EL]) Graph() haggle.ImmutableGraph {
	return f.g
}

// EdgeLabel returns the label recorded for e at freeze time.
func (f *FrozenEdgeLabeled[EL]) EdgeLabel(e haggle.Edge) (EL, bool) {
	return f.edges.get(e.ID())
}

// MustEdgeLabel returns the label recorded for e and panics when there is
// none.
func (f *FrozenEdgeLabeled[EL]) MustEdgeLabel(e haggle.Edge) EL {
	return mustEdgeLabel(&f.edges, e)
}

// Vertices returns all vertices sorted by id.
func (f *FrozenEdgeLabeled[EL]) Vertices() []haggle.Vertex {
	return f.g.Vertices()
}

// Edges returns all edges sorted by edge id.
func (f *FrozenEdgeLabeled[EL]) Edges() []haggle.Edge {
	return f.g.Edges()
}

// Successors returns the distinct direct successors of v, sorted by id.
func (f *FrozenEdgeLabeled[EL]) Successors(v haggle.Vertex) []haggle.Vertex {
	return f.g.Successors(v)
}

// OutEdges returns the edges leaving v, sorted by edge id.
func (f *FrozenEdgeLabeled[EL]) OutEdges(v haggle.Vertex) []haggle.Edge {
	return f.g.OutEdges(v)
}

// HasEdge reports whether at least one src→dst edge exists.
func (f *FrozenEdgeLabeled[EL]) HasEdge(src, dst haggle.Vertex) bool {
	return f.g.HasEdge(src, dst)
}

// MaxVertexID returns the largest vertex id in the snapshot.
func (f *FrozenEdgeLabeled[EL]) MaxVertexID() int {
	return f.g.MaxVertexID()
}

// IsEmpty reports whether the snapshot has no vertices.
func (f *FrozenEdgeLabeled[EL]) IsEmpty() bool {
	return f.g.IsEmpty()
}

// Thaw materializes a new independent labeled builder mirroring this
// snapshot, label store included.
func (f *FrozenEdgeLabeled[EL]) Thaw() *EdgeLabeled[EL] {
	return &EdgeLabeled[EL]{g: thawBuilder(f.g), edges: f.edges.clone()}
}

// mustEdgeLabel asserts presence for the unchecked edge accessors.
func mustEdgeLabel[EL any](s *store[EL], e haggle.Edge) EL {
	label, ok := s.get(e.ID())
	if !ok {
		panic(fmt.Sprintf("labeled: edge %d has no label", e.ID()))
	}

	return label
}
