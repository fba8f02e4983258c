// Package mst provides the Prim implementation of the extended-MST solver:
// tree growth from a root vertex using a min-heap of candidate edges.
package mst

import (
	"container/heap"

	"github.com/katalvlaran/extmst/core"
)

// Prim computes the extended minimum spanning tree of g by growing outwards
// from the root vertex using a min-heap keyed on effective cost.
//
// Steps:
//  1. Validate g != nil; |V| ≤ 1 → trivial tree. Then root ∈ [0, V) or
//     ErrRootOutOfRange.
//  2. Price all edges and build an adjacency index, skipping malformed
//     (InfiniteCost) edges and self-loops — neither can extend a tree.
//  3. Mark root visited; push its incident edges.
//  4. While the heap is non-empty and the tree has < |V|-1 edges: pop the
//     cheapest candidate; if its far endpoint is already in the tree, the
//     entry is stale — skip it. Otherwise accept the edge, mark the new
//     vertex and push its incident edges.
//  5. Fewer than |V|-1 accepted edges → ErrDisconnected.
//
// The total cost always equals Kruskal's; the edge set may differ only
// among cost-tied edges.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(g *core.Graph, root int) ([]TreeEdge, int64, error) {
	// 1. Validate the input graph and root.
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	numVerts := g.VertexCount()
	if numVerts <= 1 {
		return []TreeEdge{}, 0, nil
	}
	if root < 0 || root >= numVerts {
		return nil, 0, ErrRootOutOfRange
	}

	// 2. Price edges once and index them by endpoint.
	weights := g.NodeWeights()
	edges := g.Edges()
	costs := make([]int64, len(edges))
	adj := make([][]int, numVerts)
	for i, e := range edges {
		costs[i] = effectiveCost(weights, e)
		if costs[i] == InfiniteCost || e.U == e.V {
			// Malformed edges and self-loops never join a spanning tree.
			continue
		}
		adj[e.U] = append(adj[e.U], i)
		adj[e.V] = append(adj[e.V], i)
	}

	// 3. Grow from the root.
	visited := make([]bool, numVerts)
	pq := make(edgePQ, 0, numVerts)
	heap.Init(&pq)

	// enqueue pushes every edge leaving u towards a not-yet-visited vertex.
	enqueue := func(u int) {
		visited[u] = true
		for _, ei := range adj[u] {
			far := edges[ei].V
			if far == u {
				far = edges[ei].U
			}
			if visited[far] {
				continue
			}
			heap.Push(&pq, &edgeItem{index: ei, far: far, cost: costs[ei]})
		}
	}
	enqueue(root)

	// 4. Repeatedly take the cheapest edge that reaches a new vertex.
	tree := make([]TreeEdge, 0, numVerts-1)
	var total int64
	for pq.Len() > 0 && len(tree) < numVerts-1 {
		item := heap.Pop(&pq).(*edgeItem)
		if visited[item.far] {
			// Stale entry: its far endpoint joined the tree meanwhile.
			continue
		}
		tree = append(tree, newTreeEdge(weights, edges[item.index], item.cost))
		total += item.cost
		enqueue(item.far)
	}

	// 5. Not every vertex was reached → no spanning tree exists.
	if len(tree) < numVerts-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// edgeItem is a candidate edge in the priority queue: the edge slot index,
// the endpoint it would add to the tree, and its effective cost.
type edgeItem struct {
	index int
	far   int
	cost  int64
}

// edgePQ is a min-heap of *edgeItem ordered by ascending effective cost.
// Stale entries (far endpoint already visited) are skipped when popped
// rather than removed eagerly.
type edgePQ []*edgeItem

// Len returns the number of items in the heap.
func (pq edgePQ) Len() int { return len(pq) }

// Less orders items by effective cost; smaller cost → higher priority.
func (pq edgePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *edgeItem.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(*edgeItem)) }

// Pop removes and returns the last element; container/heap has already
// moved the minimum there.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
