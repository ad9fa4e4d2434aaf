// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/parprim/core"
)

func chainEdges(n int) []core.Edge {
	edges := make([]core.Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, core.Edge{From: i - 1, To: i, Weight: int64(i % 10)})
	}
	return edges
}

// BenchmarkNewGraph measures construction of a 10k-node chain.
func BenchmarkNewGraph(b *testing.B) {
	edges := chainEdges(10_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = core.NewGraph(10_000, edges)
	}
}

// BenchmarkNeighbors measures a full adjacency sweep.
func BenchmarkNeighbors(b *testing.B) {
	g, _ := core.NewGraph(10_000, chainEdges(10_000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sum int64
		for id := 0; id < g.NodeCount(); id++ {
			for a := range g.Neighbors(id) {
				sum += a.Weight
			}
		}
		_ = sum
	}
}
