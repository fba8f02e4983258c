// Package mst provides the Kruskal implementation of the extended-MST
// solver: effective-cost computation, global edge sort and a union-find
// driven acceptance loop.
package mst

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/extmst/core"
	"github.com/katalvlaran/extmst/dsu"
)

// candidate pairs an edge with its effective cost for sorting.
type candidate struct {
	edge core.Edge
	cost int64
}

// Kruskal computes the extended minimum spanning tree of g.
//
// Steps:
//  1. Validate g != nil; |V| ≤ 1 → trivial tree (no edges, cost 0).
//  2. Price every edge: C_e = w_e + w_u + w_v, or InfiniteCost when an
//     endpoint is out of range.
//  3. Stable-sort candidates by ascending cost (ties keep input order;
//     direct comparison, never subtraction).
//  4. Walk the sorted edges, merging endpoints through a fresh dsu.DSU;
//     each successful merge accepts the edge and accumulates its cost.
//     Stop once |V|-1 edges are accepted. Self-loops fall out naturally:
//     their endpoints already share a set.
//  5. Fewer than |V|-1 accepted edges → ErrDisconnected.
//
// Returns the accepted edges in acceptance order, each annotated for
// reporting, and the summed effective cost.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(V + E).
func Kruskal(g *core.Graph) ([]TreeEdge, int64, error) {
	// 1. Validate the input graph.
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	numVerts := g.VertexCount()
	// A single node or an empty graph has no edges to select.
	if numVerts <= 1 {
		return []TreeEdge{}, 0, nil
	}

	// 2. Snapshot the model and price every edge.
	weights := g.NodeWeights()
	cands := make([]candidate, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		cands = append(cands, candidate{edge: e, cost: effectiveCost(weights, e)})
	}

	// 3. Stable sort: equal-cost edges keep their input order, so repeated
	//    solves of the same graph yield the same tree.
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].cost < cands[j].cost
	})

	// 4. Accept edges greedily, using the DSU to reject cycles.
	d, err := dsu.New(numVerts)
	if err != nil {
		return nil, 0, fmt.Errorf("mst: init dsu: %w", err)
	}
	tree := make([]TreeEdge, 0, numVerts-1)
	var total int64
	for _, c := range cands {
		if c.cost == InfiniteCost {
			// Malformed edges sort last; nothing acceptable remains.
			break
		}
		merged, errU := d.Union(c.edge.U, c.edge.V)
		if errU != nil {
			// Internal failure, distinct from disconnection.
			return nil, 0, fmt.Errorf("mst: union(%d,%d): %w", c.edge.U, c.edge.V, errU)
		}
		if !merged {
			// Endpoints already connected; accepting would close a cycle.
			continue
		}
		tree = append(tree, newTreeEdge(weights, c.edge, c.cost))
		total += c.cost
		if len(tree) == numVerts-1 {
			// A spanning tree is complete; cheaper edges cannot improve it.
			break
		}
	}

	// 5. Not enough merges → no spanning tree exists.
	if len(tree) < numVerts-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}
