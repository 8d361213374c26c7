// Package haggle defines the contract at the heart of a graph library:
// mutable graph construction on one side, immutable graph querying on the
// other, and explicit freeze/thaw transitions between the two.
//
// The package itself contains no graph storage. It declares:
//
//   - Identity handles: Vertex and Edge — opaque, comparable, hashable.
//   - Capability interfaces for builders: GraphView, MutableGraph,
//     VertexAdder, EdgeAdder, Remover, BidirectionalView, Builder.
//   - Capability interfaces for snapshots: ImmutableGraph,
//     ImmutableBidirectional.
//
// Concrete representations live in subpackages and implement the subset of
// capabilities their storage supports:
//
//	digraph/    — append-only directed adjacency lists
//	bidigraph/  — forward+reverse adjacency, removal, and a simple
//	              (no-parallel-edge) variant
//	labeled/    — adapters attaching typed vertex/edge payloads to any Builder
//	gonumgraph/ — view of any frozen graph as a gonum graph.Directed
//
// Lifecycle:
//
//	Empty → Mutable(building) → Freeze → Immutable(frozen) → Thaw → Mutable → …
//
// Freeze and Thaw always produce fully independent structures: mutating a
// builder after Freeze never changes an already-taken snapshot, and mutating
// a thawed builder never changes the snapshot it came from. Vertex and edge
// identity is stable along one freeze/thaw lineage.
//
// Algorithms should depend on the narrowest capability set they need (for
// example, a reverse traversal requires BidirectionalView, not a concrete
// type).
//
// Concurrency: one mutable instance belongs to one goroutine at a time; the
// contract adds no locking. Frozen snapshots are immutable and safe for
// unsynchronized concurrent reads.
package haggle
