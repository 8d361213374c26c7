package bidigraph

import (
	"errors"
	"sort"

	"github.com/kquick/haggle"
)

// ErrParallelEdge indicates an AddEdge on a SimpleBiDigraph whose endpoint
// pair is already connected.
var ErrParallelEdge = errors.New("bidigraph: parallel edge not allowed")

// BiDigraph is a directed multigraph builder with reverse adjacency.
// The zero value is not usable; call New.
type BiDigraph struct {
	// out[id] / in[id] hold the live edges leaving / entering vertex id,
	// in creation order.
	out [][]haggle.Edge
	in  [][]haggle.Edge

	// edges is indexed by edge id and keeps dead slots in place so that
	// removed ids are never reissued.
	edges    []haggle.Edge
	edgeDead []bool
	vertDead []bool

	liveVerts int
	liveEdges int
}

// compile-time capability checks
var (
	_ haggle.Builder           = (*BiDigraph)(nil)
	_ haggle.Remover           = (*BiDigraph)(nil)
	_ haggle.BidirectionalView = (*BiDigraph)(nil)
)

// New returns an empty BiDigraph.
func New() *BiDigraph {
	return &BiDigraph{}
}

// AddVertex allocates the next vertex handle. Amortized O(1).
func (g *BiDigraph) AddVertex() haggle.Vertex {
	v := haggle.VertexFromID(len(g.out))
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)
	g.vertDead = append(g.vertDead, false)
	g.liveVerts++

	return v
}

// AddEdge creates a new src→dst edge and records it in both adjacency
// directions. Returns haggle.ErrVertexNotFound if either endpoint is not a
// live vertex of this graph. Amortized O(1).
func (g *BiDigraph) AddEdge(src, dst haggle.Vertex) (haggle.Edge, error) {
	if !g.hasVertex(src) || !g.hasVertex(dst) {
		return haggle.Edge{}, haggle.ErrVertexNotFound
	}
	e := haggle.NewEdge(len(g.edges), src, dst)
	g.edges = append(g.edges, e)
	g.edgeDead = append(g.edgeDead, false)
	g.out[src.ID()] = append(g.out[src.ID()], e)
	g.in[dst.ID()] = append(g.in[dst.ID()], e)
	g.liveEdges++

	return e, nil
}

// RemoveVertex removes v and every edge incident to it, in both directions.
// Returns haggle.ErrVertexNotFound if v is not live.
func (g *BiDigraph) RemoveVertex(v haggle.Vertex) error {
	if !g.hasVertex(v) {
		return haggle.ErrVertexNotFound
	}
	id := v.ID()
	// Kill outgoing edges and unlink them from their destinations.
	for _, e := range g.out[id] {
		g.killEdge(e)
		if e.Dest() != v {
			g.in[e.Dest().ID()] = dropEdge(g.in[e.Dest().ID()], e)
		}
	}
	// Kill incoming edges and unlink them from their sources. Self-loops
	// were already killed above and killEdge ignores dead edges.
	for _, e := range g.in[id] {
		g.killEdge(e)
		if e.Source() != v {
			g.out[e.Source().ID()] = dropEdge(g.out[e.Source().ID()], e)
		}
	}
	g.out[id] = nil
	g.in[id] = nil
	g.vertDead[id] = true
	g.liveVerts--

	return nil
}

// RemoveEdge removes the single edge e.
// Returns haggle.ErrEdgeNotFound if e is not a live edge of this graph.
func (g *BiDigraph) RemoveEdge(e haggle.Edge) error {
	if !g.hasEdge(e) {
		return haggle.ErrEdgeNotFound
	}
	g.killEdge(e)
	g.out[e.Source().ID()] = dropEdge(g.out[e.Source().ID()], e)
	g.in[e.Dest().ID()] = dropEdge(g.in[e.Dest().ID()], e)

	return nil
}

// RemoveEdgesBetween removes every src→dst edge, including parallels.
// Removing zero edges between two live vertices is not an error.
func (g *BiDigraph) RemoveEdgesBetween(src, dst haggle.Vertex) error {
	if !g.hasVertex(src) || !g.hasVertex(dst) {
		return haggle.ErrVertexNotFound
	}
	// Collect first: dropEdge rewrites the list being iterated.
	var doomed []haggle.Edge
	for _, e := range g.out[src.ID()] {
		if e.Dest() == dst {
			doomed = append(doomed, e)
		}
	}
	for _, e := range doomed {
		g.killEdge(e)
		g.out[src.ID()] = dropEdge(g.out[src.ID()], e)
		g.in[dst.ID()] = dropEdge(g.in[dst.ID()], e)
	}

	return nil
}

// Vertices returns all live vertices sorted by id. Complexity: O(V).
func (g *BiDigraph) Vertices() []haggle.Vertex {
	vs := make([]haggle.Vertex, 0, g.liveVerts)
	for id := range g.out {
		if !g.vertDead[id] {
			vs = append(vs, haggle.VertexFromID(id))
		}
	}

	return vs
}

// Successors returns the distinct direct successors of v, sorted by id.
// Dead or foreign handles yield an empty result.
func (g *BiDigraph) Successors(v haggle.Vertex) []haggle.Vertex {
	if !g.hasVertex(v) {
		return nil
	}

	return distinctEnds(g.out[v.ID()], haggle.Edge.Dest)
}

// Predecessors returns the distinct direct predecessors of v, sorted by id.
// Dead or foreign handles yield an empty result.
func (g *BiDigraph) Predecessors(v haggle.Vertex) []haggle.Vertex {
	if !g.hasVertex(v) {
		return nil
	}

	return distinctEnds(g.in[v.ID()], haggle.Edge.Source)
}

// OutEdges returns the live edges leaving v, sorted by edge id.
func (g *BiDigraph) OutEdges(v haggle.Vertex) []haggle.Edge {
	if !g.hasVertex(v) {
		return nil
	}

	return sortedByID(g.out[v.ID()])
}

// InEdges returns the live edges entering v, sorted by edge id.
func (g *BiDigraph) InEdges(v haggle.Vertex) []haggle.Edge {
	if !g.hasVertex(v) {
		return nil
	}

	return sortedByID(g.in[v.ID()])
}

// VertexCount returns the number of live vertices. O(1).
func (g *BiDigraph) VertexCount() int {
	return g.liveVerts
}

// EdgeCount returns the number of live edges. O(1).
func (g *BiDigraph) EdgeCount() int {
	return g.liveEdges
}

// HasEdge reports whether at least one live src→dst edge exists.
// Complexity: O(deg(src)).
func (g *BiDigraph) HasEdge(src, dst haggle.Vertex) bool {
	if !g.hasVertex(src) || !g.hasVertex(dst) {
		return false
	}
	for _, e := range g.out[src.ID()] {
		if e.Dest() == dst {
			return true
		}
	}

	return false
}

// Freeze produces an independent haggle.ImmutableBidirectional snapshot of
// the current structure. Complexity: O(V + E).
func (g *BiDigraph) Freeze() haggle.ImmutableGraph {
	return g.freeze(false)
}

func (g *BiDigraph) freeze(simple bool) *Frozen {
	return &Frozen{
		out:       copyAdj(g.out),
		in:        copyAdj(g.in),
		edges:     append([]haggle.Edge(nil), g.edges...),
		edgeDead:  append([]bool(nil), g.edgeDead...),
		vertDead:  append([]bool(nil), g.vertDead...),
		liveVerts: g.liveVerts,
		liveEdges: g.liveEdges,
		simple:    simple,
	}
}

// hasVertex reports whether v is a live vertex of this graph.
func (g *BiDigraph) hasVertex(v haggle.Vertex) bool {
	return v.ID() >= 0 && v.ID() < len(g.out) && !g.vertDead[v.ID()]
}

// hasEdge reports whether e is a live edge of this graph. The stored-handle
// comparison rejects foreign handles that happen to share an id.
func (g *BiDigraph) hasEdge(e haggle.Edge) bool {
	id := e.ID()

	return id >= 0 && id < len(g.edges) && !g.edgeDead[id] && g.edges[id] == e
}

// killEdge marks e dead; no-op when already dead (self-loops are reached
// from both adjacency directions during RemoveVertex).
func (g *BiDigraph) killEdge(e haggle.Edge) {
	if g.edgeDead[e.ID()] {
		return
	}
	g.edgeDead[e.ID()] = true
	g.liveEdges--
}

// dropEdge removes e from the list, preserving order.
func dropEdge(es []haggle.Edge, e haggle.Edge) []haggle.Edge {
	for i := range es {
		if es[i] == e {
			return append(es[:i], es[i+1:]...)
		}
	}

	return es
}

// distinctEnds extracts the deduplicated endpoint set of es under end,
// sorted by vertex id.
func distinctEnds(es []haggle.Edge, end func(haggle.Edge) haggle.Vertex) []haggle.Vertex {
	if len(es) == 0 {
		return nil
	}
	seen := make(map[haggle.Vertex]struct{}, len(es))
	vs := make([]haggle.Vertex, 0, len(es))
	for _, e := range es {
		v := end(e)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i].ID() < vs[j].ID() })

	return vs
}

// sortedByID copies es sorted by edge id. Adjacency lists are append-only
// between removals, so they are usually sorted already.
func sortedByID(es []haggle.Edge) []haggle.Edge {
	out := make([]haggle.Edge, len(es))
	copy(out, es)
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })

	return out
}

// copyAdj deep-copies an adjacency table.
func copyAdj(adj [][]haggle.Edge) [][]haggle.Edge {
	out := make([][]haggle.Edge, len(adj))
	for id, es := range adj {
		if len(es) == 0 {
			continue
		}
		out[id] = make([]haggle.Edge, len(es))
		copy(out[id], es)
	}

	return out
}
