// Package dsu implements disjoint-set-union with iterative path compression
// and union by rank.
package dsu

// DSU maintains a partition of {0..n-1} into disjoint sets.
//
// The zero value is uninitialized: every operation on it fails with
// ErrUninitialized. Obtain a usable structure via New or Reset.
//
// A DSU is owned by exactly one computation at a time; it is not safe for
// concurrent use. Each solve constructs (or Resets) its own instance.
type DSU struct {
	// parent[i] is the parent of element i; roots satisfy parent[r] == r.
	parent []int
	// rank[r] bounds the height of the tree rooted at r before compression
	// happens; used only for merge tie-breaking.
	rank []int
}

// New returns a DSU over n singleton sets {0}, {1}, …, {n-1}, each element
// its own root with rank 0.
//
// Returns ErrNegativeSize if n < 0.
// Complexity: O(n).
func New(n int) (*DSU, error) {
	d := &DSU{}
	if err := d.Reset(n); err != nil {
		return nil, err
	}

	return d, nil
}

// Reset re-initializes d to n singleton sets, discarding any prior state.
// It is idempotent: calling it on an already-initialized DSU simply drops
// the previous arrays and allocates fresh ones.
//
// Returns ErrNegativeSize if n < 0 (state is left untouched in that case).
// Complexity: O(n).
func (d *DSU) Reset(n int) error {
	if n < 0 {
		return ErrNegativeSize
	}

	d.parent = make([]int, n)
	d.rank = make([]int, n)
	for i := 0; i < n; i++ {
		d.parent[i] = i
	}

	return nil
}

// Teardown releases the backing arrays and returns d to the uninitialized
// state. Subsequent operations fail with ErrUninitialized until Reset is
// called again.
func (d *DSU) Teardown() {
	d.parent = nil
	d.rank = nil
}

// Len reports the number of elements d was initialized with
// (0 for an uninitialized DSU).
func (d *DSU) Len() int {
	if d == nil {
		return 0
	}

	return len(d.parent)
}

// Find returns the representative (root) of the set containing i.
//
// The lookup compresses fully: after Find returns, every element visited on
// the walk points directly at the root, so repeated lookups on those
// elements are O(1). The walk is iterative — two passes, first up to the
// root and then rewriting parents — so arbitrarily long chains cannot
// overflow the stack.
//
// Errors: ErrUninitialized if d holds no allocation; ErrIndexOutOfRange if
// i is outside [0, Len()).
func (d *DSU) Find(i int) (int, error) {
	if d == nil || d.parent == nil {
		return -1, ErrUninitialized
	}
	if i < 0 || i >= len(d.parent) {
		return -1, ErrIndexOutOfRange
	}

	// First pass: walk up to the root.
	root := i
	for d.parent[root] != root {
		root = d.parent[root]
	}

	// Second pass: rewrite every visited parent to point at the root.
	for d.parent[i] != root {
		d.parent[i], i = root, d.parent[i]
	}

	return root, nil
}

// Union merges the sets containing u and v.
//
// Returns (false, nil) when u and v already share a set (no-op). Otherwise
// the lower-rank root attaches under the higher-rank root; on a rank tie,
// v's root attaches under u's root and u's root rank increments. Returns
// (true, nil) after a successful merge.
//
// Errors mirror Find: ErrUninitialized, ErrIndexOutOfRange.
func (d *DSU) Union(u, v int) (bool, error) {
	rootU, err := d.Find(u)
	if err != nil {
		return false, err
	}
	rootV, err := d.Find(v)
	if err != nil {
		return false, err
	}
	if rootU == rootV {
		// Already in the same set; merging would close a cycle.
		return false, nil
	}

	switch {
	case d.rank[rootU] < d.rank[rootV]:
		d.parent[rootU] = rootV
	case d.rank[rootU] > d.rank[rootV]:
		d.parent[rootV] = rootU
	default:
		// Rank tie: fixed convention, v's root under u's root.
		d.parent[rootV] = rootU
		d.rank[rootU]++
	}

	return true, nil
}

// Connected reports whether u and v are currently in the same set.
//
// Errors mirror Find: ErrUninitialized, ErrIndexOutOfRange.
func (d *DSU) Connected(u, v int) (bool, error) {
	rootU, err := d.Find(u)
	if err != nil {
		return false, err
	}
	rootV, err := d.Find(v)
	if err != nil {
		return false, err
	}

	return rootU == rootV, nil
}
