// Package haggle: identity handle types.
//
// Vertex and Edge are opaque value handles. They carry no payload and have
// no meaning outside the graph lineage that issued them. Both are comparable
// and may be used as map keys.

package haggle

// Vertex identifies a node within one graph lineage.
//
// Identifiers are small dense non-negative integers assigned in creation
// order, which makes Vertex suitable as an index into parallel property
// arrays sized by ImmutableGraph.MaxVertexID.
type Vertex struct {
	id int
}

// VertexFromID reconstructs the Vertex handle with the given identifier.
// Intended for graph implementations and for property maps that store bare
// ids; a handle fabricated for an id the graph never issued is simply not a
// member of that graph.
func VertexFromID(id int) Vertex {
	return Vertex{id: id}
}

// ID returns the integer identifier of v.
func (v Vertex) ID() int {
	return v.id
}

// Edge identifies one directed connection. The handle carries its endpoints,
// so Source and Dest are O(1) and need no graph lookup.
type Edge struct {
	id  int
	src Vertex
	dst Vertex
}

// NewEdge constructs an Edge handle. Intended for graph implementations;
// edge ids are assigned in creation order per graph lineage.
func NewEdge(id int, src, dst Vertex) Edge {
	return Edge{id: id, src: src, dst: dst}
}

// ID returns the integer identifier of e.
func (e Edge) ID() int {
	return e.id
}

// Source returns the vertex e leaves from.
func (e Edge) Source() Vertex {
	return e.src
}

// Dest returns the vertex e points at.
func (e Edge) Dest() Vertex {
	return e.dst
}
