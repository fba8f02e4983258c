package dsu_test

import (
	"testing"

	"github.com/katalvlaran/extmst/dsu" // package under test
	"github.com/stretchr/testify/assert"
)

// TestNew_Validation verifies constructor behavior for negative, zero and
// positive sizes.
func TestNew_Validation(t *testing.T) {
	// Negative size must be rejected outright.
	d, err := dsu.New(-1)
	assert.Nil(t, d)
	assert.ErrorIs(t, err, dsu.ErrNegativeSize)

	// Zero elements is a valid (empty) partition.
	d, err = dsu.New(0)
	assert.NoError(t, err)
	assert.Equal(t, 0, d.Len())

	// A fresh DSU has every element as its own root.
	d, err = dsu.New(4)
	assert.NoError(t, err)
	assert.Equal(t, 4, d.Len())
	for i := 0; i < 4; i++ {
		root, errF := d.Find(i)
		assert.NoError(t, errF)
		assert.Equal(t, i, root, "element %d must start as its own root", i)
	}
}

// TestFind_Errors verifies that Find fails cleanly on an uninitialized
// structure and on out-of-range indices.
func TestFind_Errors(t *testing.T) {
	// Zero-value DSU is uninitialized.
	var zero dsu.DSU
	_, err := zero.Find(0)
	assert.ErrorIs(t, err, dsu.ErrUninitialized)

	d, _ := dsu.New(3)

	// Out-of-range indices on both sides.
	_, err = d.Find(-1)
	assert.ErrorIs(t, err, dsu.ErrIndexOutOfRange)
	_, err = d.Find(3)
	assert.ErrorIs(t, err, dsu.ErrIndexOutOfRange)

	// After Teardown the structure behaves as uninitialized again.
	d.Teardown()
	_, err = d.Find(0)
	assert.ErrorIs(t, err, dsu.ErrUninitialized)
	assert.Equal(t, 0, d.Len())
}

// TestUnion_MergeAndNoOp verifies the merged/no-op contract of Union.
func TestUnion_MergeAndNoOp(t *testing.T) {
	d, _ := dsu.New(4)

	// First merge must report "merged".
	merged, err := d.Union(0, 1)
	assert.NoError(t, err)
	assert.True(t, merged)

	// Repeating the same merge is a no-op.
	merged, err = d.Union(0, 1)
	assert.NoError(t, err)
	assert.False(t, merged)

	// 0 and 1 now share a representative.
	r0, _ := d.Find(0)
	r1, _ := d.Find(1)
	assert.Equal(t, r0, r1)

	// 2 and 3 remain apart from the {0,1} set.
	same, err := d.Connected(0, 2)
	assert.NoError(t, err)
	assert.False(t, same)

	// Chain the remaining elements into one set.
	merged, _ = d.Union(1, 2)
	assert.True(t, merged)
	merged, _ = d.Union(2, 3)
	assert.True(t, merged)

	// Everything is connected now; any further union is a no-op.
	same, _ = d.Connected(0, 3)
	assert.True(t, same)
	merged, _ = d.Union(3, 0)
	assert.False(t, merged)
}

// TestUnion_Errors verifies Union error propagation for bad indices and
// uninitialized state.
func TestUnion_Errors(t *testing.T) {
	d, _ := dsu.New(2)

	_, err := d.Union(0, 5)
	assert.ErrorIs(t, err, dsu.ErrIndexOutOfRange)
	_, err = d.Union(-1, 0)
	assert.ErrorIs(t, err, dsu.ErrIndexOutOfRange)

	d.Teardown()
	_, err = d.Union(0, 1)
	assert.ErrorIs(t, err, dsu.ErrUninitialized)
}

// TestReset_Idempotent verifies that Reset discards all prior merges and can
// be called repeatedly, including after Teardown.
func TestReset_Idempotent(t *testing.T) {
	d, _ := dsu.New(3)
	_, _ = d.Union(0, 1)
	_, _ = d.Union(1, 2)

	// Re-init back to singletons.
	assert.NoError(t, d.Reset(3))
	same, err := d.Connected(0, 1)
	assert.NoError(t, err)
	assert.False(t, same, "Reset must dissolve all prior merges")

	// Reset may also resize.
	assert.NoError(t, d.Reset(5))
	assert.Equal(t, 5, d.Len())

	// Negative size is rejected and leaves state intact.
	assert.ErrorIs(t, d.Reset(-2), dsu.ErrNegativeSize)
	assert.Equal(t, 5, d.Len())

	// Reset revives a torn-down structure.
	d.Teardown()
	assert.NoError(t, d.Reset(2))
	merged, err := d.Union(0, 1)
	assert.NoError(t, err)
	assert.True(t, merged)
}

// TestUnion_RankGrowth exercises merges across sets of different heights so
// the union-by-rank branches (lower under higher, and the tie case) all run.
func TestUnion_RankGrowth(t *testing.T) {
	d, _ := dsu.New(8)

	// Build two rank-1 trees, then merge them (tie → rank 2), then attach
	// singletons (rank 0 under rank 2).
	_, _ = d.Union(0, 1) // tie: 1 under 0, rank(0)=1
	_, _ = d.Union(2, 3) // tie: 3 under 2, rank(2)=1
	_, _ = d.Union(0, 2) // tie: 2 under 0, rank(0)=2
	_, _ = d.Union(4, 0) // rank 0 < rank 2: 4 attaches under 0's root

	root, err := d.Find(4)
	assert.NoError(t, err)
	r3, _ := d.Find(3)
	assert.Equal(t, r3, root, "all merged elements share one root")

	// Untouched elements stay singletons.
	for _, i := range []int{5, 6, 7} {
		r, errF := d.Find(i)
		assert.NoError(t, errF)
		assert.Equal(t, i, r)
	}
}
