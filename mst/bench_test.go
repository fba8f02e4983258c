package mst_test

import (
	"testing"

	"github.com/katalvlaran/extmst/mst"
)

// BenchmarkKruskal measures performance on a random graph with 500 nodes
// and 2000 edges.
func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(500, 2000) // pre-build graph once
	b.ResetTimer()                   // exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _, _ = mst.Kruskal(g)
	}
}

// BenchmarkPrim measures performance on the same graph shape, always
// growing from node 0.
func BenchmarkPrim(b *testing.B) {
	g := buildMediumGraph(500, 2000) // pre-build graph once
	b.ResetTimer()                   // exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _, _ = mst.Prim(g, 0)
	}
}
