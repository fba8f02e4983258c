// Package dsu provides a disjoint-set-union (union-find) structure over the
// integer elements 0..n-1.
//
// What & Why
//
//   - A DSU maintains a partition of elements into disjoint sets and answers
//     two questions fast: "are u and v in the same set?" (Find/Connected)
//     and "merge the sets of u and v" (Union).
//
//   - It is the cycle detector behind Kruskal's MST algorithm: an edge whose
//     endpoints already share a set would close a cycle and is skipped.
//
// Implementation notes
//
//   - Find uses full path compression, implemented iteratively in two
//     passes (walk to the root, then rewrite every visited parent to point
//     at it), so long chains cannot overflow the stack and repeated lookups
//     are O(α(n)) amortized.
//
//   - Union uses union by rank: the lower-rank root attaches under the
//     higher-rank root. On a rank tie, v's root attaches under u's root and
//     u's root rank increments. The direction is a fixed convention with no
//     semantic weight; it only keeps results deterministic.
//
//   - The rank of a root is an upper bound on its tree height before
//     compression, used solely for merge tie-breaking.
//
// Error Conditions
//
//	- ErrUninitialized   : operation on a zero-value or torn-down DSU.
//	- ErrIndexOutOfRange : element index outside [0, Len()).
//	- ErrNegativeSize    : New/Reset called with a negative size.
//
// All misuse surfaces as a sentinel error; no operation corrupts state or
// panics.
//
// Complexity: Find/Union/Connected O(α(n)) amortized, New/Reset O(n).
// Memory: O(n) for the parent and rank arrays.
package dsu
