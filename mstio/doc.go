// Package mstio implements the plain-text batch contract around the solver:
// a graph-description reader and a result-report writer.
//
// Input format (whitespace-separated integers, any line breaking):
//
//	V E
//	w0 w1 … w(V-1)
//	u v w      (E triples)
//
// Negative values are permitted everywhere. Format errors are fatal to the
// read and surface as sentinel errors wrapped with position context; an
// edge referencing a node outside [0, V) is malformed input and rejected.
//
// Output format, byte-exact:
//
//	TOTAL_COST:<cost>
//	MST_EDGES_START
//	<u>,<v>,<w>,<w_u>,<w_v>,<effective_cost>
//	…
//	MST_EDGES_END
//
// WriteResult emits the full block for every successful solve, including
// the trivial empty tree. WriteFailure emits only TOTAL_COST:-1; callers
// use it for both disconnection and internal failures — the -1 collapse
// exists solely at this reporting boundary, the solver's error values stay
// distinct.
package mstio
