// Package extmst computes minimum-cost spanning trees over undirected,
// weighted graphs in which every edge carries an extended cost: its own
// weight plus the weights of both endpoint nodes.
//
// What is an extended MST?
//
//	Given node weights w_u and edge weights w_e, each edge (u,v) is priced
//	at C_e = w_e + w_u + w_v. The extended MST is the ordinary minimum
//	spanning tree of the graph under these effective costs.
//
// The module is organized under four subpackages plus a batch CLI:
//
//	dsu/        — disjoint-set-union (union-find) with iterative path
//	              compression and union by rank
//	core/       — index-addressed graph model: V node weights, E edge slots
//	mst/        — the solver: Kruskal (sort + union-find) and Prim
//	              (heap growth), both over effective costs
//	mstio/      — plain-text graph reader and report writer
//	cmd/extmst/ — batch driver: reads a description file, prints the report
//
// Everything is pure in-memory computation: no I/O inside the solver, no
// shared state between solves, and explicit sentinel errors everywhere a
// structure could be misused.
//
// See mst.Kruskal for the solver entry point and cmd/extmst for the
// file-based batch surface.
package extmst
