package dsu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFind_FullCompression builds a long parent chain by hand and verifies
// that a single Find rewires every visited element directly to the root.
// White-box: the chain 4→3→2→1→0 cannot be produced through Union, which
// keeps trees flat by rank.
func TestFind_FullCompression(t *testing.T) {
	d, err := New(5)
	assert.NoError(t, err)
	d.parent = []int{0, 0, 1, 2, 3} // 4→3→2→1→0

	root, err := d.Find(4)
	assert.NoError(t, err)
	assert.Equal(t, 0, root)

	// Every element on the walked path now points straight at the root.
	for i := 0; i < 5; i++ {
		assert.Equal(t, 0, d.parent[i], "parent[%d] must be rewired to the root", i)
	}
}

// TestUnion_TieAttachesUnderFirst pins the fixed tie-break convention:
// on equal ranks, v's root attaches under u's root and u's rank grows.
func TestUnion_TieAttachesUnderFirst(t *testing.T) {
	d, _ := New(2)

	merged, err := d.Union(0, 1)
	assert.NoError(t, err)
	assert.True(t, merged)

	assert.Equal(t, 0, d.parent[1], "v's root attaches under u's root on a tie")
	assert.Equal(t, 1, d.rank[0], "u's root rank increments on a tie")
	assert.Equal(t, 0, d.rank[1])
}
