// Package digraph provides the simplest concrete graph behind the haggle
// contract: an append-only directed graph backed by per-vertex out-edge
// lists.
//
// What:
//
//   - Digraph implements haggle.Builder (query, grow, freeze).
//   - Frozen is its immutable snapshot, implementing haggle.ImmutableGraph.
//   - Parallel edges and self-loops are permitted.
//   - No removal and no reverse adjacency; use bidigraph for either.
//
// Complexity:
//
//   - AddVertex / AddEdge: O(1) amortized.
//   - HasEdge / Successors / OutEdges: O(deg(src)).
//   - Freeze / Thaw: O(V + E) full copy.
//
// Errors:
//
//   - haggle.ErrVertexNotFound: AddEdge endpoint is not a vertex of this
//     graph.
//
// A Digraph must be confined to one goroutine; a Frozen snapshot is safe
// for concurrent readers.
package digraph
