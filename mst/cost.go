package mst

import "github.com/katalvlaran/extmst/core"

// effectiveCost prices edge e against the node-weight array: w_e + w_u + w_v
// when both endpoints index into weights, InfiniteCost otherwise.
//
// Out-of-range endpoints can only arrive through the unvalidated bulk-load
// path; neutralizing them here keeps the Kruskal/Prim loops free of bounds
// checks.
func effectiveCost(weights []int64, e core.Edge) int64 {
	v := len(weights)
	if e.U < 0 || e.U >= v || e.V < 0 || e.V >= v {
		return InfiniteCost
	}

	return e.Weight + weights[e.U] + weights[e.V]
}

// newTreeEdge annotates an accepted edge with its endpoint weights and
// effective cost for reporting. Callers guarantee both endpoints are valid.
func newTreeEdge(weights []int64, e core.Edge, cost int64) TreeEdge {
	return TreeEdge{
		U:             e.U,
		V:             e.V,
		Weight:        e.Weight,
		UWeight:       weights[e.U],
		VWeight:       weights[e.V],
		EffectiveCost: cost,
	}
}
