// Package mst computes extended minimum spanning trees over the
// index-addressed *core.Graph: each edge is priced at its base weight plus
// the weights of both endpoint nodes, and the tree minimizes the total of
// these effective costs.
//
// What & Why
//
//   - An extended MST is an ordinary MST over transformed edge costs
//     C_e = w_e + w_u + w_v. Since the transform is per-edge, any classical
//     MST algorithm applies unchanged to the effective costs, and both
//     provided algorithms agree on the total cost.
//
//   - Node weights let models price the endpoints of a link (installation,
//     maintenance) and not just the link itself.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) ([]TreeEdge, int64, error)
//
//   - Strategy: compute effective costs, stable-sort all edges ascending,
//     then accept each edge whose endpoints a disjoint-set-union (dsu.DSU)
//     reports as not yet connected. Stop once |V|-1 edges are accepted.
//
//   - Determinism: ties between equal-cost edges keep their input order
//     (stable sort); repeated solves of the same graph produce the same
//     tree. Costs are compared directly, never by subtraction, so large or
//     mixed-sign values cannot overflow the comparator.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
//
//   - Prim(g *core.Graph, root int) ([]TreeEdge, int64, error)
//
//   - Strategy: grow one tree from root, keeping a min-heap of candidate
//     edges that leave the current tree; repeatedly take the cheapest edge
//     reaching a new vertex.
//
//   - Complexity: O(E log V) time, O(V + E) memory.
//
// Malformed edges
//
//	An edge whose endpoint falls outside [0, V) — possible only through the
//	unvalidated core.NewGraphFromSlices path — is assigned InfiniteCost. It
//	sorts last, is never accepted, and a graph held together only by such
//	edges is reported disconnected.
//
// Results
//
//	Outcomes are a tagged result expressed through Go errors:
//
//	- success:          ([]TreeEdge, totalCost, nil); exactly |V|-1 edges,
//	                    each annotated with both endpoint weights and the
//	                    effective cost for reporting. |V| ≤ 1 yields an
//	                    empty tree with cost 0.
//	- ErrDisconnected:  fewer than |V|-1 merges were possible. A valid
//	                    computed outcome, not a process failure.
//	- other errors:     internal failures (nil graph, DSU misuse), kept
//	                    distinct from disconnection; the reporting layer may
//	                    collapse both to its -1 sentinel, the solver never
//	                    does.
//
// Concurrency: every call constructs and owns its DSU; calls on distinct
// graphs may run concurrently. The solver performs no I/O.
package mst
