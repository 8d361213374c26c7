package labeled

import (
	"fmt"

	"github.com/kquick/haggle"
)

// VertexLabelPair couples a vertex with its label for bulk enumeration.
type VertexLabelPair[VL any] struct {
	Vertex haggle.Vertex
	Label  VL
}

// VertexLabeled wraps a haggle.Builder and attaches a label of type VL to
// every vertex created through it. AddLabeledVertex is the only vertex
// entry point; the unlabeled AddVertex of the wrapped graph is deliberately
// not part of the adapter surface.
type VertexLabeled[VL any] struct {
	g     haggle.Builder
	verts store[VL]
}

// NewVertexLabeled wraps g. The adapter should hold the only reference to
// g from then on; mutating g directly creates unlabeled vertices.
func NewVertexLabeled[VL any](g haggle.Builder) *VertexLabeled[VL] {
	return &VertexLabeled[VL]{g: g}
}

// AddLabeledVertex allocates a fresh vertex and records label against it in
// the same call, so structure and label can never be observed out of sync.
func (a *VertexLabeled[VL]) AddLabeledVertex(label VL) haggle.Vertex {
	v := a.g.AddVertex()
	a.verts.set(v.ID(), label)

	return v
}

// AddEdge creates an unlabeled src→dst edge on the wrapped graph.
func (a *VertexLabeled[VL]) AddEdge(src, dst haggle.Vertex) (haggle.Edge, error) {
	return a.g.AddEdge(src, dst)
}

// VertexLabel returns the label recorded for v. The second result is false
// when v was never labeled through this adapter or is out of range.
func (a *VertexLabeled[VL]) VertexLabel(v haggle.Vertex) (VL, bool) {
	return a.verts.get(v.ID())
}

// MustVertexLabel returns the label recorded for v and panics when there is
// none. Callers use it only for vertices they created via AddLabeledVertex.
func (a *VertexLabeled[VL]) MustVertexLabel(v haggle.Vertex) VL {
	return mustVertexLabel(&a.verts, v)
}

// LabeledVertices enumerates every vertex of the graph with its label,
// sorted by vertex id. It panics on the first vertex without a label:
// correct use requires every vertex to have been created through
// AddLabeledVertex, and a gap means the wrapped graph was mutated behind
// the adapter's back.
func (a *VertexLabeled[VL]) LabeledVertices() []VertexLabelPair[VL] {
	return labeledVertices(&a.verts, a.g.Vertices())
}

// Vertices returns all live vertices sorted by id.
func (a *VertexLabeled[VL]) Vertices() []haggle.Vertex {
	return a.g.Vertices()
}

// Successors returns the distinct direct successors of v, sorted by id.
func (a *VertexLabeled[VL]) Successors(v haggle.Vertex) []haggle.Vertex {
	return a.g.Successors(v)
}

// OutEdges returns the live edges leaving v, sorted by edge id.
func (a *VertexLabeled[VL]) OutEdges(v haggle.Vertex) []haggle.Edge {
	return a.g.OutEdges(v)
}

// VertexCount returns the number of live vertices.
func (a *VertexLabeled[VL]) VertexCount() int {
	return a.g.VertexCount()
}

// EdgeCount returns the number of live edges.
func (a *VertexLabeled[VL]) EdgeCount() int {
	return a.g.EdgeCount()
}

// HasEdge reports whether at least one src→dst edge exists.
func (a *VertexLabeled[VL]) HasEdge(src, dst haggle.Vertex) bool {
	return a.g.HasEdge(src, dst)
}

// Freeze snapshots the wrapped structure and the label store together. The
// snapshot is fully independent of the adapter.
func (a *VertexLabeled[VL]) Freeze() *FrozenVertexLabeled[VL] {
	return &FrozenVertexLabeled[VL]{g: a.g.Freeze(), verts: a.verts.clone()}
}

// FrozenVertexLabeled is the immutable snapshot of a VertexLabeled adapter:
// a frozen topology plus an independent copy of the vertex-label store.
// Safe for unsynchronized concurrent reads.
type FrozenVertexLabeled[VL any] struct {
	g     haggle.ImmutableGraph
	verts store[VL]
}

// Graph exposes the frozen topology for capability-bound consumers (for
// example gonumgraph). Labels stay with the snapshot.
func (f *FrozenVertexLabeled[VL]) Graph() haggle.ImmutableGraph {
	return f.g
}

// VertexLabel returns the label recorded for v at freeze time.
func (f *FrozenVertexLabeled[VL]) VertexLabel(v haggle.Vertex) (VL, bool) {
	return f.verts.get(v.ID())
}

// MustVertexLabel returns the label recorded for v and panics when there is
// none.
func (f *FrozenVertexLabeled[VL]) MustVertexLabel(v haggle.Vertex) VL {
	return mustVertexLabel(&f.verts, v)
}

// LabeledVertices enumerates every vertex with its label, sorted by vertex
// id, panicking on unlabeled vertices.
func (f *FrozenVertexLabeled[VL]) LabeledVertices() []VertexLabelPair[VL] {
	return labeledVertices(&f.verts, f.g.Vertices())
}

// Vertices returns all vertices sorted by id.
func (f *FrozenVertexLabeled[VL]) Vertices() []haggle.Vertex {
	return f.g.Vertices()
}

// Edges returns all edges sorted by edge id.
func (f *FrozenVertexLabeled[VL]) Edges() []haggle.Edge {
	return f.g.Edges()
}

// Successors returns the distinct direct successors of v, sorted by id.
func (f *FrozenVertexLabeled[VL]) Successors(v haggle.Vertex) []haggle.Vertex {
	return f.g.Successors(v)
}

// OutEdges returns the edges leaving v, sorted by edge id.
func (f *FrozenVertexLabeled[VL]) OutEdges(v haggle.Vertex) []haggle.Edge {
	return f.g.OutEdges(v)
}

// HasEdge reports whether at least one src→dst edge exists.
func (f *FrozenVertexLabeled[VL]) HasEdge(src, dst haggle.Vertex) bool {
	return f.g.HasEdge(src, dst)
}

// MaxVertexID returns the largest vertex id in the snapshot.
func (f *FrozenVertexLabeled[VL]) MaxVertexID() int {
	return f.g.MaxVertexID()
}

// IsEmpty reports whether the snapshot has no vertices.
func (f *FrozenVertexLabeled[VL]) IsEmpty() bool {
	return f.g.IsEmpty()
}

// Thaw materializes a new independent labeled builder mirroring this
// snapshot, label store included.
func (f *FrozenVertexLabeled[VL]) Thaw() *VertexLabeled[VL] {
	return &VertexLabeled[VL]{g: thawBuilder(f.g), verts: f.verts.clone()}
}

// thawBuilder thaws a snapshot and narrows the result to the Builder
// capability set. Every concrete haggle builder satisfies it; a bespoke
// implementation that does not cannot be wrapped by these adapters.
func thawBuilder(g haggle.ImmutableGraph) haggle.Builder {
	b, ok := g.Thaw().(haggle.Builder)
	if !ok {
		panic("labeled: thawed graph does not implement haggle.Builder")
	}

	return b
}

// mustVertexLabel asserts presence for the unchecked vertex accessors.
func mustVertexLabel[VL any](s *store[VL], v haggle.Vertex) VL {
	label, ok := s.get(v.ID())
	if !ok {
		panic(fmt.Sprintf("labeled: vertex %d has no label", v.ID()))
	}

	return label
}

// labeledVertices pairs each structural vertex with its label, enforcing
// the all-labeled discipline.
func labeledVertices[VL any](s *store[VL], vs []haggle.Vertex) []VertexLabelPair[VL] {
	pairs := make([]VertexLabelPair[VL], len(vs))
	for i, v := range vs {
		label, ok := s.get(v.ID())
		if !ok {
			panic(fmt.Sprintf("labeled: vertex %d has no label", v.ID()))
		}
		pairs[i] = VertexLabelPair[VL]{Vertex: v, Label: label}
	}

	return pairs
}
