// Package haggle: capability interfaces.
//
// Each capability is an independent interface; a concrete graph type
// implements the subset its storage supports, and algorithms declare the
// minimal set they require. Composites (Builder, ImmutableBidirectional)
// cover the common combinations.

package haggle

// GraphView is the read surface shared by every builder: enumeration,
// adjacency, counts, and edge-existence testing against current state.
//
// Enumeration methods return id-sorted slices owned by the caller.
// Querying with a handle the graph never issued yields an empty result.
type GraphView interface {
	// Vertices returns all live vertices, sorted by id.
	Vertices() []Vertex

	// Successors returns each distinct vertex reachable from v by one edge,
	// sorted by id. Parallel edges contribute a single entry.
	Successors(v Vertex) []Vertex

	// OutEdges returns all live edges leaving v, sorted by edge id.
	// Parallel edges appear once each.
	OutEdges(v Vertex) []Edge

	// VertexCount returns the number of live vertices. O(1).
	VertexCount() int

	// EdgeCount returns the number of live edges. O(1).
	EdgeCount() int

	// HasEdge reports whether at least one src→dst edge exists. It is true
	// exactly when dst appears in Successors(src), including for self-loops;
	// multiplicity does not matter.
	HasEdge(src, dst Vertex) bool
}

// MutableGraph is the core capability of every graph builder: the shared
// read surface plus the one-way transition to an immutable snapshot.
type MutableGraph interface {
	GraphView

	// Freeze produces an independent immutable snapshot of the current
	// structure. It may be called any number of times; snapshots never
	// observe mutation performed after their Freeze call.
	Freeze() ImmutableGraph
}

// VertexAdder is the capability of allocating vertices.
type VertexAdder interface {
	// AddVertex allocates and returns a fresh, previously unused vertex
	// handle. Never fails. Amortized O(1).
	AddVertex() Vertex
}

// EdgeAdder is the capability of connecting vertices.
type EdgeAdder interface {
	VertexAdder

	// AddEdge creates a new src→dst edge and returns its handle. It returns
	// ErrVertexNotFound when either endpoint is not a live vertex of this
	// graph; in that case nothing is modified. Self-loops and parallel edges
	// are permitted unless the concrete type documents a stricter policy.
	AddEdge(src, dst Vertex) (Edge, error)
}

// Remover is the capability of deleting structure. Removal makes the
// targets invisible to all subsequent queries; implementations need not
// reclaim or reuse handle slots, but must never reinterpret a dead handle
// as a different live element.
type Remover interface {
	// RemoveVertex removes v and every edge incident to it, in both
	// directions. Returns ErrVertexNotFound if v is not live.
	RemoveVertex(v Vertex) error

	// RemoveEdge removes the single edge e.
	// Returns ErrEdgeNotFound if e is not live.
	RemoveEdge(e Edge) error

	// RemoveEdgesBetween removes every src→dst edge, including parallels.
	// Returns ErrVertexNotFound if either endpoint is not live; removing
	// zero edges between two live vertices is not an error.
	RemoveEdgesBetween(src, dst Vertex) error
}

// BidirectionalView is the reverse-adjacency capability, available only on
// graph types that store incoming edges.
type BidirectionalView interface {
	// Predecessors returns each distinct vertex with an edge into v,
	// sorted by id.
	Predecessors(v Vertex) []Vertex

	// InEdges returns all live edges entering v, sorted by edge id.
	InEdges(v Vertex) []Edge
}

// Builder is the composite bound satisfied by every general-purpose graph
// builder: queryable, freezable, and growable.
type Builder interface {
	MutableGraph
	EdgeAdder
}

// ImmutableGraph is the read-only counterpart of MutableGraph: the same
// query surface over frozen state, plus structural introspection and the
// transition back to a builder. Snapshots are safe for unsynchronized
// concurrent reads.
type ImmutableGraph interface {
	// Vertices returns all vertices, sorted by id.
	Vertices() []Vertex

	// Edges returns all edges, sorted by edge id.
	Edges() []Edge

	// Successors returns each distinct vertex reachable from v by one edge,
	// sorted by id.
	Successors(v Vertex) []Vertex

	// OutEdges returns all edges leaving v, sorted by edge id.
	OutEdges(v Vertex) []Edge

	// HasEdge reports whether at least one src→dst edge exists.
	HasEdge(src, dst Vertex) bool

	// MaxVertexID returns an upper bound on vertex identifiers in this
	// snapshot, usable for sizing dense property arrays indexed by
	// Vertex.ID. Zero when the snapshot is empty.
	MaxVertexID() int

	// IsEmpty reports whether the snapshot has no vertices.
	IsEmpty() bool

	// Thaw materializes a new, fully independent builder mirroring this
	// snapshot's structure. The dynamic type is the concrete builder that
	// produced the snapshot; narrow it via capability interfaces such as
	// Builder or Remover.
	Thaw() MutableGraph
}

// ImmutableBidirectional is an immutable snapshot that also answers
// reverse-adjacency queries.
type ImmutableBidirectional interface {
	ImmutableGraph
	BidirectionalView
}
