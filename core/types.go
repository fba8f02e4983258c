// Package core declares the Edge value type and the sentinel errors for
// graph population.
package core

import "errors"

// Sentinel errors for graph construction and population.
var (
	// ErrNegativeCount indicates New was called with a negative vertex or
	// edge count.
	ErrNegativeCount = errors.New("core: vertex and edge counts must be non-negative")

	// ErrNodeIndexOutOfRange indicates an operation referenced a node index
	// outside [0, VertexCount()).
	ErrNodeIndexOutOfRange = errors.New("core: node index out of range")

	// ErrEdgeIndexOutOfRange indicates an operation referenced an edge slot
	// outside [0, EdgeCount()).
	ErrEdgeIndexOutOfRange = errors.New("core: edge slot index out of range")

	// ErrEndpointOutOfRange indicates AddEdge was given an endpoint outside
	// [0, VertexCount()).
	ErrEndpointOutOfRange = errors.New("core: edge endpoint out of range")
)

// Edge represents an undirected edge between two node indices.
//
// U and V are 0-based node indices; Weight is the base edge weight w_e.
// The extended cost w_e + w_u + w_v is derived by the solver, not stored
// here.
type Edge struct {
	// U is one endpoint's node index.
	U int

	// V is the other endpoint's node index.
	V int

	// Weight is the base weight of the edge. May be negative.
	Weight int64
}
