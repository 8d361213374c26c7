package haggle

import "errors"

var (
	// ErrVertexNotFound indicates an operation referenced a vertex that is
	// not a live member of the graph.
	ErrVertexNotFound = errors.New("haggle: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced an edge that is not
	// a live member of the graph.
	ErrEdgeNotFound = errors.New("haggle: edge not found")
)
