package gonumgraph

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"

	"github.com/kquick/haggle"
)

// Node is a haggle vertex seen through gonum's graph.Node interface.
type Node struct {
	v haggle.Vertex
}

// ID returns the vertex id widened to int64.
func (n Node) ID() int64 {
	return int64(n.v.ID())
}

// Vertex returns the underlying haggle vertex handle.
func (n Node) Vertex() haggle.Vertex {
	return n.v
}

// Edge is a directed connection seen through gonum's graph.Edge interface.
type Edge struct {
	f, t Node
}

// From returns the source node.
func (e Edge) From() graph.Node {
	return e.f
}

// To returns the destination node.
func (e Edge) To() graph.Node {
	return e.t
}

// ReversedEdge returns the edge with its endpoints swapped.
func (e Edge) ReversedEdge() graph.Edge {
	return Edge{f: e.t, t: e.f}
}

// Directed adapts a haggle.ImmutableGraph to gonum's graph.Directed.
// The snapshot never changes, so a Directed is safe for concurrent use.
type Directed struct {
	g haggle.ImmutableGraph

	// bidi is non-nil when the snapshot answers reverse queries itself.
	bidi haggle.BidirectionalView

	// members maps node id to vertex handle for O(1) membership checks.
	members map[int64]haggle.Vertex

	// preds is the derived reverse adjacency, built only when bidi is nil.
	preds map[int64][]haggle.Vertex
}

var _ graph.Directed = (*Directed)(nil)

// NewDirected wraps the snapshot g. Construction is O(V) — or O(V + E) when
// g lacks a BidirectionalView and reverse adjacency must be derived.
func NewDirected(g haggle.ImmutableGraph) *Directed {
	d := &Directed{g: g, members: make(map[int64]haggle.Vertex, g.MaxVertexID()+1)}
	for _, v := range g.Vertices() {
		d.members[int64(v.ID())] = v
	}
	if bidi, ok := g.(haggle.BidirectionalView); ok {
		d.bidi = bidi
		return d
	}
	d.preds = make(map[int64][]haggle.Vertex)
	seen := make(map[[2]int]struct{})
	for _, e := range g.Edges() {
		key := [2]int{e.Source().ID(), e.Dest().ID()}
		if _, dup := seen[key]; dup {
			continue // parallel edges contribute one predecessor entry
		}
		seen[key] = struct{}{}
		id := int64(e.Dest().ID())
		d.preds[id] = append(d.preds[id], e.Source())
	}

	return d
}

// Node returns the node with the given id, or nil if it is not a vertex of
// the snapshot.
func (d *Directed) Node(id int64) graph.Node {
	v, ok := d.members[id]
	if !ok {
		return nil
	}

	return Node{v: v}
}

// Nodes returns an iterator over all nodes, in vertex-id order.
func (d *Directed) Nodes() graph.Nodes {
	return nodesOf(d.g.Vertices())
}

// From returns an iterator over the direct successors of the node with the
// given id.
func (d *Directed) From(id int64) graph.Nodes {
	v, ok := d.members[id]
	if !ok {
		return graph.Empty
	}

	return nodesOf(d.g.Successors(v))
}

// To returns an iterator over the direct predecessors of the node with the
// given id.
func (d *Directed) To(id int64) graph.Nodes {
	v, ok := d.members[id]
	if !ok {
		return graph.Empty
	}
	if d.bidi != nil {
		return nodesOf(d.bidi.Predecessors(v))
	}

	return nodesOf(d.preds[id])
}

// HasEdgeBetween reports whether an edge exists between x and y in either
// direction.
func (d *Directed) HasEdgeBetween(xid, yid int64) bool {
	return d.HasEdgeFromTo(xid, yid) || d.HasEdgeFromTo(yid, xid)
}

// HasEdgeFromTo reports whether an edge exists from u to v.
func (d *Directed) HasEdgeFromTo(uid, vid int64) bool {
	u, ok := d.members[uid]
	if !ok {
		return false
	}
	v, ok := d.members[vid]
	if !ok {
		return false
	}

	return d.g.HasEdge(u, v)
}

// Edge returns an edge from u to v, or nil if none exists. With parallel
// haggle edges, one representative connection is reported, which is all the
// gonum contract asks for.
func (d *Directed) Edge(uid, vid int64) graph.Edge {
	if !d.HasEdgeFromTo(uid, vid) {
		return nil
	}

	return Edge{f: Node{v: d.members[uid]}, t: Node{v: d.members[vid]}}
}

// nodesOf wraps vertices in an ordered gonum node iterator.
func nodesOf(vs []haggle.Vertex) graph.Nodes {
	if len(vs) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, len(vs))
	for i, v := range vs {
		nodes[i] = Node{v: v}
	}

	return iterator.NewOrderedNodes(nodes)
}
