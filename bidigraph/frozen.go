package bidigraph

import "github.com/kquick/haggle"

// Frozen is the immutable snapshot of a BiDigraph or SimpleBiDigraph. It
// owns a full copy of the structure it was frozen from; all methods are
// safe for unsynchronized concurrent use.
type Frozen struct {
	out [][]haggle.Edge
	in  [][]haggle.Edge

	edges    []haggle.Edge
	edgeDead []bool
	vertDead []bool

	liveVerts int
	liveEdges int

	// simple records which builder variant produced the snapshot, so Thaw
	// restores the same edge policy.
	simple bool
}

var _ haggle.ImmutableBidirectional = (*Frozen)(nil)

// Vertices returns all vertices sorted by id. Complexity: O(V).
func (f *Frozen) Vertices() []haggle.Vertex {
	vs := make([]haggle.Vertex, 0, f.liveVerts)
	for id := range f.out {
		if !f.vertDead[id] {
			vs = append(vs, haggle.VertexFromID(id))
		}
	}

	return vs
}

// Edges returns all edges sorted by edge id. Complexity: O(E).
func (f *Frozen) Edges() []haggle.Edge {
	es := make([]haggle.Edge, 0, f.liveEdges)
	for id, e := range f.edges {
		if !f.edgeDead[id] {
			es = append(es, e)
		}
	}

	return es
}

// Successors returns the distinct direct successors of v, sorted by id.
func (f *Frozen) Successors(v haggle.Vertex) []haggle.Vertex {
	if !f.hasVertex(v) {
		return nil
	}

	return distinctEnds(f.out[v.ID()], haggle.Edge.Dest)
}

// Predecessors returns the distinct direct predecessors of v, sorted by id.
func (f *Frozen) Predecessors(v haggle.Vertex) []haggle.Vertex {
	if !f.hasVertex(v) {
		return nil
	}

	return distinctEnds(f.in[v.ID()], haggle.Edge.Source)
}

// OutEdges returns the edges leaving v, sorted by edge id.
func (f *Frozen) OutEdges(v haggle.Vertex) []haggle.Edge {
	if !f.hasVertex(v) {
		return nil
	}

	return sortedByID(f.out[v.ID()])
}

// InEdges returns the edges entering v, sorted by edge id.
func (f *Frozen) InEdges(v haggle.Vertex) []haggle.Edge {
	if !f.hasVertex(v) {
		return nil
	}

	return sortedByID(f.in[v.ID()])
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
	return f.liveVerts
}

// EdgeCount returns the number of edges. O(1).
func (f *Frozen) EdgeCount() int {
	return f.liveEdges
}

// MaxVertexID returns the largest vertex id ever issued in this lineage, or
// zero when empty. Dead slots still count: property arrays indexed by
// Vertex.ID need MaxVertexID()+1 slots.
func (f *Frozen) MaxVertexID() int {
	if len(f.out) == 0 {
		return 0
	}

	return len(f.out) - 1
}

// IsEmpty reports whether the snapshot has no live vertices.
func (f *Frozen) IsEmpty() bool {
	return f.liveVerts == 0
}

// Thaw materializes a new independent builder mirroring this snapshot. The
// dynamic type is *SimpleBiDigraph when the snapshot came from one, and
// *BiDigraph otherwise. Complexity: O(V + E).
func (f *Frozen) Thaw() haggle.MutableGraph {
	bi := BiDigraph{
		out:       copyAdj(f.out),
		in:        copyAdj(f.in),
		edges:     append([]haggle.Edge(nil), f.edges...),
		edgeDead:  append([]bool(nil), f.edgeDead...),
		vertDead:  append([]bool(nil), f.vertDead...),
		liveVerts: f.liveVerts,
		liveEdges: f.liveEdges,
	}
	if !f.simple {
		return &bi
	}
	pairs := make(map[pairKey]struct{}, f.liveEdges)
	for id, e := range f.edges {
		if !f.edgeDead[id] {
			pairs[pairKey{src: e.Source().ID(), dst: e.Dest().ID()}] = struct{}{}
		}
	}

	return &SimpleBiDigraph{bi: bi, pairs: pairs}
}

func (f *Frozen) hasVertex(v haggle.Vertex) bool {
	return v.ID() >= 0 && v.ID() < len(f.out) && !f.vertDead[v.ID()]
}
