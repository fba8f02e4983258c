// Package core defines the index-addressed graph model consumed by the
// extended-MST solver: V node weights plus E fixed edge slots.
//
// Data model
//
//   - A node's identity is its integer index in [0, V); its only attribute
//     is an int64 weight (default 0 until set).
//
//   - An Edge is (U, V, Weight): two node indices and a base weight. The
//     derived effective cost w_e + w_u + w_v is never stored on the model;
//     the mst package computes it per solve.
//
//   - A Graph is constructed once per solve invocation and discarded after
//     the result is produced; nothing persists across calls.
//
// Validation
//
//	SetNodeWeight and AddEdge reject out-of-range indices with sentinel
//	errors rather than silently dropping the write. The bulk constructor
//	NewGraphFromSlices is the one unvalidated path: it trusts its caller,
//	and the solver neutralizes any out-of-range endpoints it lets through.
//
// Negative weights are permitted everywhere; effective costs may be
// negative.
//
// Errors:
//
//	ErrNegativeCount       - New called with a negative vertex or edge count.
//	ErrNodeIndexOutOfRange - node index outside [0, VertexCount()).
//	ErrEdgeIndexOutOfRange - edge slot index outside [0, EdgeCount()).
//	ErrEndpointOutOfRange  - AddEdge endpoint outside [0, VertexCount()).
package core
