package bidigraph

import "github.com/kquick/haggle"

// pairKey indexes an endpoint pair for O(1) existence checks.
type pairKey struct {
	src, dst int
}

// SimpleBiDigraph is a BiDigraph that admits at most one edge per
// (src, dst) pair. The duplicate policy lives here, not in the contract:
// AddEdge on an already-connected pair returns ErrParallelEdge and leaves
// the graph unchanged. Self-loops remain permitted (one per vertex).
type SimpleBiDigraph struct {
	bi    BiDigraph
	pairs map[pairKey]struct{}
}

// compile-time capability checks
var (
	_ haggle.Builder           = (*SimpleBiDigraph)(nil)
	_ haggle.Remover           = (*SimpleBiDigraph)(nil)
	_ haggle.BidirectionalView = (*SimpleBiDigraph)(nil)
)

// NewSimple returns an empty SimpleBiDigraph.
func NewSimple() *SimpleBiDigraph {
	return &SimpleBiDigraph{pairs: make(map[pairKey]struct{})}
}

// AddVertex allocates the next vertex handle. Amortized O(1).
func (g *SimpleBiDigraph) AddVertex() haggle.Vertex {
	return g.bi.AddVertex()
}

// AddEdge creates the src→dst edge unless the pair is already connected.
// Returns haggle.ErrVertexNotFound for dead or foreign endpoints and
// ErrParallelEdge for a duplicate pair. Amortized O(1).
func (g *SimpleBiDigraph) AddEdge(src, dst haggle.Vertex) (haggle.Edge, error) {
	if !g.bi.hasVertex(src) || !g.bi.hasVertex(dst) {
		return haggle.Edge{}, haggle.ErrVertexNotFound
	}
	k := pairKey{src: src.ID(), dst: dst.ID()}
	if _, dup := g.pairs[k]; dup {
		return haggle.Edge{}, ErrParallelEdge
	}
	e, err := g.bi.AddEdge(src, dst)
	if err != nil {
		return haggle.Edge{}, err
	}
	g.pairs[k] = struct{}{}

	return e, nil
}

// RemoveVertex removes v and every incident edge, releasing their endpoint
// pairs for future re-connection.
func (g *SimpleBiDigraph) RemoveVertex(v haggle.Vertex) error {
	if !g.bi.hasVertex(v) {
		return haggle.ErrVertexNotFound
	}
	for _, e := range g.bi.out[v.ID()] {
		delete(g.pairs, pairKey{src: e.Source().ID(), dst: e.Dest().ID()})
	}
	for _, e := range g.bi.in[v.ID()] {
		delete(g.pairs, pairKey{src: e.Source().ID(), dst: e.Dest().ID()})
	}

	return g.bi.RemoveVertex(v)
}

// RemoveEdge removes the single edge e and releases its endpoint pair.
func (g *SimpleBiDigraph) RemoveEdge(e haggle.Edge) error {
	if err := g.bi.RemoveEdge(e); err != nil {
		return err
	}
	delete(g.pairs, pairKey{src: e.Source().ID(), dst: e.Dest().ID()})

	return nil
}

// RemoveEdgesBetween removes the src→dst edge if present. On a simple graph
// a pair holds at most one edge, so this is RemoveEdge by endpoints.
func (g *SimpleBiDigraph) RemoveEdgesBetween(src, dst haggle.Vertex) error {
	if err := g.bi.RemoveEdgesBetween(src, dst); err != nil {
		return err
	}
	delete(g.pairs, pairKey{src: src.ID(), dst: dst.ID()})

	return nil
}

// HasEdge reports whether the src→dst edge exists. O(1).
func (g *SimpleBiDigraph) HasEdge(src, dst haggle.Vertex) bool {
	if !g.bi.hasVertex(src) || !g.bi.hasVertex(dst) {
		return false
	}
	_, ok := g.pairs[pairKey{src: src.ID(), dst: dst.ID()}]

	return ok
}

// Vertices returns all live vertices sorted by id.
func (g *SimpleBiDigraph) Vertices() []haggle.Vertex {
	return g.bi.Vertices()
}

// Successors returns the direct successors of v, sorted by id.
func (g *SimpleBiDigraph) Successors(v haggle.Vertex) []haggle.Vertex {
	return g.bi.Successors(v)
}

// Predecessors returns the direct predecessors of v, sorted by id.
func (g *SimpleBiDigraph) Predecessors(v haggle.Vertex) []haggle.Vertex {
	return g.bi.Predecessors(v)
}

// OutEdges returns the live edges leaving v, sorted by edge id.
func (g *SimpleBiDigraph) OutEdges(v haggle.Vertex) []haggle.Edge {
	return g.bi.OutEdges(v)
}

// InEdges returns the live edges entering v, sorted by edge id.
func (g *SimpleBiDigraph) InEdges(v haggle.Vertex) []haggle.Edge {
	return g.bi.InEdges(v)
}

// VertexCount returns the number of live vertices. O(1).
func (g *SimpleBiDigraph) VertexCount() int {
	return g.bi.VertexCount()
}

// EdgeCount returns the number of live edges. O(1).
func (g *SimpleBiDigraph) EdgeCount() int {
	return g.bi.EdgeCount()
}

// Freeze produces an independent snapshot. Thawing the snapshot restores a
// SimpleBiDigraph, including the no-parallel-edge policy.
func (g *SimpleBiDigraph) Freeze() haggle.ImmutableGraph {
	return g.bi.freeze(true)
}
