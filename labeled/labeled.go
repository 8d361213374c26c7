package labeled

import "github.com/kquick/haggle"

// Labeled wraps a haggle.Builder and attaches labels to both vertices and
// edges. Its public mutation surface is AddLabeledVertex and AddLabeledEdge
// only; neither unlabeled add is reachable through the adapter.
type Labeled[VL, EL any] struct {
	g     haggle.Builder
	verts store[VL]
	edges store[EL]
}

// New wraps g with both label dimensions. The adapter should hold the only
// reference to g from then on.
func New[VL, EL any](g haggle.Builder) *Labeled[VL, EL] {
	return &Labeled[VL, EL]{g: g}
}

// AddLabeledVertex allocates a fresh vertex and records label against it in
// the same call.
func (a *Labeled[VL, EL]) AddLabeledVertex(label VL) haggle.Vertex {
	v := a.g.AddVertex()
	a.verts.set(v.ID(), label)

	return v
}

// AddLabeledEdge creates a src→dst edge and records label against it in the
// same call. On endpoint error no edge is created and no label recorded.
func (a *Labeled[VL, EL]) AddLabeledEdge(src, dst haggle.Vertex, label EL) (haggle.Edge, error) {
	e, err := a.g.AddEdge(src, dst)
	if err != nil {
		return haggle.Edge{}, err
	}
	a.edges.set(e.ID(), label)

	return e, nil
}

// VertexLabel returns the label recorded for v; false when absent.
func (a *Labeled[VL, EL]) VertexLabel(v haggle.Vertex) (VL, bool) {
	return a.verts.get(v.ID())
}

// MustVertexLabel returns the label recorded for v, panicking when absent.
func (a *Labeled[VL, EL]) MustVertexLabel(v haggle.Vertex) VL {
	return mustVertexLabel(&a.verts, v)
}

// EdgeLabel returns the label recorded for e; false when absent.
func (a *Labeled[VL, EL]) EdgeLabel(e haggle.Edge) (EL, bool) {
	return a.edges.get(e.ID())
}

// MustEdgeLabel returns the label recorded for e, panicking when absent.
func (a *Labeled[VL, EL]) MustEdgeLabel(e haggle.Edge) EL {
	return mustEdgeLabel(&a.edges, e)
}

// LabeledVertices enumerates every vertex with its label, sorted by vertex
// id, panicking on unlabeled vertices.
func (a *Labeled[VL, EL]) LabeledVertices() []VertexLabelPair[VL] {
	return labeledVertices(&a.verts, a.g.Vertices())
}

// Vertices returns all live vertices sorted by id.
func (a *Labeled[VL, EL]) Vertices() []haggle.Vertex {
	return a.g.Vertices()
}

// Successors returns the distinct direct successors of v, sorted by id.
func (a *Labeled[VL, EL]) Successors(v haggle.Vertex) []haggle.Vertex {
	return a.g.Successors(v)
}

// OutEdges returns the live edges leaving v, sorted by edge id.
func (a *Labeled[VL, EL]) OutEdges(v haggle.Vertex) []haggle.Edge {
	return a.g.OutEdges(v)
}

// VertexCount returns the number of live vertices.
func (a *Labeled[VL, EL]) VertexCount() int {
	return a.g.VertexCount()
}

// EdgeCount returns the number of live edges.
func (a *Labeled[VL, EL]) EdgeCount() int {
	return a.g.EdgeCount()
}

// HasEdge reports whether at least one src→dst edge exists.
func (a *Labeled[VL, EL]) HasEdge(src, dst haggle.Vertex) bool {
	return a.g.HasEdge(src, dst)
}

// Freeze snapshots the wrapped structure and both label stores together.
func (a *Labeled[VL, EL]) Freeze() *FrozenLabeled[VL, EL] {
	return &FrozenLabeled[VL, EL]{
		g:     a.g.Freeze(),
		verts: a.verts.clone(),
		edges: a.edges.clone(),
	}
}

// FrozenLabeled is the immutable snapshot of a Labeled adapter. Safe for
// unsynchronized concurrent reads.
type FrozenLabeled[VL, EL any] struct {
	g     haggle.ImmutableGraph
	verts store[VL]
	edges store[EL]
}

// Graph exposes the frozen topology for capability-bound consumers.
func (f *FrozenLabeled[VL, EL]) Graph() haggle.ImmutableGraph {
	return f.g
}

// VertexLabel returns the label recorded for v at freeze time.
func (f *FrozenLabeled[VL, EL]) VertexLabel(v haggle.Vertex) (VL, bool) {
	return f.verts.get(v.ID())
}

// MustVertexLabel returns the label recorded for v, panicking when absent.
func (f *FrozenLabeled[VL, EL]) MustVertexLabel(v haggle.Vertex) VL {
	return mustVertexLabel(&f.verts, v)
}

// EdgeLabel returns the label recorded for e at freeze time.
func (f *FrozenLabeled[VL, EL]) EdgeLabel(e haggle.Edge) (EL, bool) {
	return f.edges.get(e.ID())
}

// MustEdgeLabel returns the label recorded for e, panicking when absent.
func (f *FrozenLabeled[VL, EL]) MustEdgeLabel(e haggle.Edge) EL {
	return mustEdgeLabel(&f.edges, e)
}

// LabeledVertices enumerates every vertex with its label, sorted by vertex
// id, panicking on unlabeled vertices.
func (f *FrozenLabeled[VL, EL]) LabeledVertices() []VertexLabelPair[VL] {
	return labeledVertices(&f.verts, f.g.Vertices())
}

// Vertices returns all vertices sorted by id.
func (f *FrozenLabeled[VL, EL]) Vertices() []haggle.Vertex {
	return f.g.Vertices()
}

// Edges returns all edges sorted by edge id.
func (f *FrozenLabeled[VL, EL]) Edges() []haggle.Edge {
	return f.g.Edges()
}

// Successors returns the distinct direct successors of v, sorted by id.
func (f *FrozenLabeled[VL, EL]) Successors(v haggle.Vertex) []haggle.Vertex {
	return f.g.Successors(v)
}

// OutEdges returns the edges leaving v, sorted by edge id.
func (f *FrozenLabeled[VL, EL]) OutEdges(v haggle.Vertex) []haggle.Edge {
	return f.g.OutEdges(v)
}

// HasEdge reports whether at least one src→dst edge exists.
func (f *FrozenLabeled[VL, EL]) HasEdge(src, dst haggle.Vertex) bool {
	return f.g.HasEdge(src, dst)
}

// MaxVertexID returns the largest vertex id in the snapshot.
func (f *FrozenLabeled[VL, EL]) MaxVertexID() int {
	return f.g.MaxVertexID()
}

// IsEmpty reports whether the snapshot has no vertices.
func (f *FrozenLabeled[VL, EL]) IsEmpty() bool {
	return f.g.IsEmpty()
}

// Thaw materializes a new independent labeled builder mirroring this
// snapshot, label stores included.
func (f *FrozenLabeled[VL, EL]) Thaw() *Labeled[VL, EL] {
	return &Labeled[VL, EL]{
		g:     thawBuilder(f.g),
		verts: f.verts.clone(),
		edges: f.edges.clone(),
	}
}
