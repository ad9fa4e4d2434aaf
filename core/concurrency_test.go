// Package core_test verifies that concurrent readers of core.Graph are safe.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parprim/core"
)

// TestConcurrentNeighbors ranges over every node's adjacency from many
// goroutines at once while reading a shared Membership. Run with -race.
func TestConcurrentNeighbors(t *testing.T) {
	const n = 64
	edges := make([]core.Edge, 0, n*(n-1)/2)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			edges = append(edges, core.Edge{From: u, To: v, Weight: int64(u + v)})
		}
	}
	g, err := core.NewGraph(n, edges)
	require.NoError(t, err)

	tree := g.NewMembership()
	tree.Mark(0)

	const readers = 50
	degrees := make([]int, readers)
	var wg sync.WaitGroup
	wg.Add(readers)
	for r := 0; r < readers; r++ {
		go func(slot int) {
			defer wg.Done()
			for id := 0; id < n; id++ {
				for a := range g.Neighbors(id) {
					if !tree.IsMember(a.To) {
						degrees[slot]++
					}
				}
			}
		}(r)
	}
	wg.Wait()

	// Each reader sees every arc except the n-1 arcs pointing at node 0.
	want := n*(n-1) - (n - 1)
	for _, d := range degrees {
		require.Equal(t, want, d)
	}
}
