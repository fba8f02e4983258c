// Package core implements the Graph model: construction, population and
// read access.
package core

// Graph is the in-memory graph model: V node weights addressed by index
// and E edge slots addressed by insertion position.
//
// A Graph is owned by a single solve invocation; it is not safe for
// concurrent mutation.
type Graph struct {
	// nodeWeights[i] is the weight of node i; zero until set.
	nodeWeights []int64
	// edges holds E fixed slots; unpopulated slots are the zero Edge.
	edges []Edge
}

// New constructs a Graph with v node-weight slots (all zero) and e empty
// edge slots.
//
// Returns ErrNegativeCount if v < 0 or e < 0.
// Complexity: O(v + e).
func New(v, e int) (*Graph, error) {
	if v < 0 || e < 0 {
		return nil, ErrNegativeCount
	}

	return &Graph{
		nodeWeights: make([]int64, v),
		edges:       make([]Edge, e),
	}, nil
}

// NewGraphFromSlices wraps pre-built weight and edge slices into a Graph
// without validating edge endpoints. The slices are adopted, not copied.
//
// This is the bulk-load path for callers that already hold structured data;
// endpoints outside [0, len(nodeWeights)) are tolerated here and later
// neutralized by the solver's infinite-cost sentinel.
func NewGraphFromSlices(nodeWeights []int64, edges []Edge) *Graph {
	return &Graph{nodeWeights: nodeWeights, edges: edges}
}

// SetNodeWeight sets the weight of node id.
//
// Returns ErrNodeIndexOutOfRange if id is outside [0, VertexCount()).
func (g *Graph) SetNodeWeight(id int, weight int64) error {
	if id < 0 || id >= len(g.nodeWeights) {
		return ErrNodeIndexOutOfRange
	}
	g.nodeWeights[id] = weight

	return nil
}

// AddEdge stores the edge (u, v, weight) in slot index.
//
// Returns ErrEdgeIndexOutOfRange if index is outside [0, EdgeCount()),
// ErrEndpointOutOfRange if u or v is outside [0, VertexCount()).
func (g *Graph) AddEdge(index, u, v int, weight int64) error {
	if index < 0 || index >= len(g.edges) {
		return ErrEdgeIndexOutOfRange
	}
	if u < 0 || u >= len(g.nodeWeights) || v < 0 || v >= len(g.nodeWeights) {
		return ErrEndpointOutOfRange
	}
	g.edges[index] = Edge{U: u, V: v, Weight: weight}

	return nil
}

// VertexCount reports V, the number of nodes.
func (g *Graph) VertexCount() int { return len(g.nodeWeights) }

// EdgeCount reports E, the number of edge slots.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// NodeWeight returns the weight of node id.
//
// Returns ErrNodeIndexOutOfRange if id is outside [0, VertexCount()).
func (g *Graph) NodeWeight(id int) (int64, error) {
	if id < 0 || id >= len(g.nodeWeights) {
		return 0, ErrNodeIndexOutOfRange
	}

	return g.nodeWeights[id], nil
}

// NodeWeights returns a copy of the node-weight array in index order.
func (g *Graph) NodeWeights() []int64 {
	out := make([]int64, len(g.nodeWeights))
	copy(out, g.nodeWeights)

	return out
}

// Edges returns a copy of the edge slots in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
