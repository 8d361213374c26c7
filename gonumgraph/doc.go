// Package gonumgraph presents a frozen haggle graph as a
// gonum.org/v1/gonum/graph.Directed, so the gonum algorithm catalogue
// (topological sort, strongly connected components, shortest paths, …) can
// run against haggle snapshots without copying them.
//
// Only immutable graphs are adaptable: gonum algorithms assume the topology
// does not change underneath them, which is exactly the guarantee a frozen
// snapshot gives. Reverse queries (To) use the snapshot's own
// haggle.BidirectionalView when it has one; otherwise the adapter derives
// reverse adjacency once at construction.
//
// Node ids are the haggle vertex ids, widened to int64.
package gonumgraph
