package digraph

import (
	"sort"

	"github.com/kquick/haggle"
)

// Digraph is an append-only directed multigraph under construction.
// The zero value is not usable; call New.
type Digraph struct {
	// out[id] holds the edges leaving vertex id, in creation order.
	out [][]haggle.Edge
	// edges holds every edge ever created, indexed by edge id.
	edges []haggle.Edge
}

// compile-time capability checks
var (
	_ haggle.Builder = (*Digraph)(nil)
)

// New returns an empty Digraph.
func New() *Digraph {
	return &Digraph{}
}

// AddVertex allocates the next vertex handle. Amortized O(1).
func (g *Digraph) AddVertex() haggle.Vertex {
	v := haggle.VertexFromID(len(g.out))
	g.out = append(g.out, nil)

	return v
}

// AddEdge creates a new src→dst edge. Returns haggle.ErrVertexNotFound if
// either endpoint was not allocated by this graph. Amortized O(1).
func (g *Digraph) AddEdge(src, dst haggle.Vertex) (haggle.Edge, error) {
	if !g.hasVertex(src) || !g.hasVertex(dst) {
		return haggle.Edge{}, haggle.ErrVertexNotFound
	}
	e := haggle.NewEdge(len(g.edges), src, dst)
	g.edges = append(g.edges, e)
	g.out[src.ID()] = append(g.out[src.ID()], e)

	return e, nil
}

// Vertices returns all vertices sorted by id. Complexity: O(V).
func (g *Digraph) Vertices() []haggle.Vertex {
	vs := make([]haggle.Vertex, len(g.out))
	for id := range g.out {
		vs[id] = haggle.VertexFromID(id)
	}

	return vs
}

// Successors returns the distinct direct successors of v, sorted by id.
// Unknown handles yield an empty result. Complexity: O(deg(v) log deg(v)).
func (g *Digraph) Successors(v haggle.Vertex) []haggle.Vertex {
	if !g.hasVertex(v) {
		return nil
	}

	return distinctDests(g.out[v.ID()])
}

// OutEdges returns the edges leaving v, sorted by edge id.
// Unknown handles yield an empty result. Complexity: O(deg(v)).
func (g *Digraph) OutEdges(v haggle.Vertex) []haggle.Edge {
	if !g.hasVertex(v) {
		return nil
	}
	// Append order is creation order, which is edge-id order already.
	out := make([]haggle.Edge, len(g.out[v.ID()]))
	copy(out, g.out[v.ID()])

	return out
}

// VertexCount returns the number of vertices. O(1).
func (g *Digraph) VertexCount() int {
	return len(g.out)
}

// EdgeCount returns the number of edges. O(1).
func (g *Digraph) EdgeCount() int {
	return len(g.edges)
}

// HasEdge reports whether at least one src→dst edge exists.
// Complexity: O(deg(src)).
func (g *Digraph) HasEdge(src, dst haggle.Vertex) bool {
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

// Freeze produces an independent immutable snapshot of the current
// structure. Later mutation of g never alters the snapshot.
// Complexity: O(V + E).
func (g *Digraph) Freeze() haggle.ImmutableGraph {
	out := make([][]haggle.Edge, len(g.out))
	for id, es := range g.out {
		if len(es) == 0 {
			continue
		}
		out[id] = make([]haggle.Edge, len(es))
		copy(out[id], es)
	}
	edges := make([]haggle.Edge, len(g.edges))
	copy(edges, g.edges)

	return &Frozen{out: out, edges: edges}
}

// hasVertex reports whether v was allocated by this graph.
func (g *Digraph) hasVertex(v haggle.Vertex) bool {
	return v.ID() >= 0 && v.ID() < len(g.out)
}

// distinctDests extracts the deduplicated destination set of es, sorted by id.
func distinctDests(es []haggle.Edge) []haggle.Vertex {
	if len(es) == 0 {
		return nil
	}
	seen := make(map[haggle.Vertex]struct{}, len(es))
	vs := make([]haggle.Vertex, 0, len(es))
	for _, e := range es {
		if _, dup := seen[e.Dest()]; dup {
			continue
		}
		seen[e.Dest()] = struct{}{}
		vs = append(vs, e.Dest())
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i].ID() < vs[j].ID() })

	return vs
}
