// Package bidigraph provides directed graphs that track reverse adjacency,
// answering predecessor queries and supporting removal.
//
// What:
//
//   - BiDigraph keeps both out-edge and in-edge lists per vertex and
//     implements haggle.Builder, haggle.Remover, and
//     haggle.BidirectionalView. Parallel edges and self-loops are permitted.
//   - SimpleBiDigraph layers a no-parallel-edge policy on top: a duplicate
//     (src, dst) pair is rejected with ErrParallelEdge, and HasEdge runs in
//     O(1) via an endpoint-pair index.
//   - Frozen is the immutable snapshot of either builder, implementing
//     haggle.ImmutableBidirectional. Thawing restores the builder variant
//     the snapshot came from.
//
// Removal marks elements dead without compacting identifiers: a removed
// handle stays permanently dead and its slot is never reissued, so stale
// handles can never alias a different live element.
//
// Complexity:
//
//   - AddVertex / AddEdge: O(1) amortized.
//   - RemoveEdge: O(deg(src) + deg(dst)).
//   - RemoveVertex: O(Σ deg over removed incident edges).
//   - HasEdge: O(deg(src)) on BiDigraph, O(1) on SimpleBiDigraph.
//   - Freeze / Thaw: O(V + E) full copy.
//
// Errors:
//
//   - haggle.ErrVertexNotFound, haggle.ErrEdgeNotFound: dead or foreign
//     handles passed to AddEdge / Remove operations.
//   - ErrParallelEdge: duplicate endpoint pair on SimpleBiDigraph.
//
// Builders are single-goroutine; Frozen snapshots are safe for concurrent
// readers.
package bidigraph
