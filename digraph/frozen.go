package digraph

import "github.com/kquick/haggle"

// Frozen is the immutable snapshot of a Digraph. It owns a full copy of the
// structure it was frozen from and never changes; all methods are safe for
// unsynchronized concurrent use.
type Frozen struct {
	out   [][]haggle.Edge
	edges []haggle.Edge
}

var _ haggle.ImmutableGraph = (*Frozen)(nil)

// Vertices returns all vertices sorted by id. Complexity: O(V).
func (f *Frozen) Vertices() []haggle.Vertex {
	vs := make([]haggle.Vertex, len(f.out))
	for id := range f.out {
		vs[id] = haggle.VertexFromID(id)
	}

	return vs
}

// Edges returns all edges sorted by edge id. Complexity: O(E).
func (f *Frozen) Edges() []haggle.Edge {
	es := make([]haggle.Edge, len(f.edges))
	copy(es, f.edges)

	return es
}

// Successors returns the distinct direct successors of v, sorted by id.
func (f *Frozen) Successors(v haggle.Vertex) []haggle.Vertex {
	if !f.hasVertex(v) {
		return nil
	}

	return distinctDests(f.out[v.ID()])
}

// OutEdges returns the edges leaving v, sorted by edge id.
func (f *Frozen) OutEdges(v haggle.Vertex) []haggle.Edge {
	if !f.hasVertex(v) {
		return nil
	}
	out := make([]haggle.Edge, len(f.out[v.ID()]))
	copy(out, f.out[v.ID()])

	return out
}

// HasEdge reports whether at least one src→dst edge exists.
func (f *Frozen) HasEdge(src, dst haggle.Vertex) bool {
	if !f.hasVertex(src) || !f.hasVertex(dst) {
		return false
	}
	for _, e := range f.out[src.ID()] {
		if e.Dest() == dst {
			return true
		}
	}

	return false
}

// VertexCount returns the number of vertices. O(1).
func (f *Frozen) VertexCount() int {
	return len(f.out)
}

// EdgeCount returns the number of edges. O(1).
func (f *Frozen) EdgeCount() int {
	return len(f.edges)
}

// MaxVertexID returns the largest vertex id in the snapshot, or zero when
// empty. Dense property arrays indexed by Vertex.ID need MaxVertexID()+1
// slots.
func (f *Frozen) MaxVertexID() int {
	if len(f.out) == 0 {
		return 0
	}

	return len(f.out) - 1
}

// IsEmpty reports whether the snapshot has no vertices.
func (f *Frozen) IsEmpty() bool {
	return len(f.out) == 0
}

// Thaw materializes a new independent *Digraph mirroring this snapshot.
// Mutating the result never alters f or any other snapshot.
// Complexity: O(V + E).
func (f *Frozen) Thaw() haggle.MutableGraph {
	out := make([][]haggle.Edge, len(f.out))
	for id, es := range f.out {
		if len(es) == 0 {
			continue
		}
		out[id] = make([]haggle.Edge, len(es))
		copy(out[id], es)
	}
	edges := make([]haggle.Edge, len(f.edges))
	copy(edges, f.edges)

	return &Digraph{out: out, edges: edges}
}

func (f *Frozen) hasVertex(v haggle.Vertex) bool {
	return v.ID() >= 0 && v.ID() < len(f.out)
}
