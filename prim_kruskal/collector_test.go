package prim_kruskal_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parprim/prim_kruskal"
)

// TestCollector_ConcurrentAppend verifies that no entry is lost or torn
// under concurrent appends.
func TestCollector_ConcurrentAppend(t *testing.T) {
	t.Parallel()

	const writers, perWriter = 64, 200
	c := prim_kruskal.NewCollector(0)

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				c.Append(prim_kruskal.Candidate{Src: w, Dest: i, Weight: int64(w*perWriter + i)})
			}
		}()
	}
	wg.Wait()

	require.Equal(t, writers*perWriter, c.Len())

	// every (Src, Dest) exactly once, Weight consistent with it
	seen := make(map[[2]int]bool, writers*perWriter)
	for _, cand := range c.Snapshot() {
		key := [2]int{cand.Src, cand.Dest}
		assert.False(t, seen[key], "duplicate %v", key)
		seen[key] = true
		assert.Equal(t, int64(cand.Src*perWriter+cand.Dest), cand.Weight)
	}
	assert.Len(t, seen, writers*perWriter)
}

// TestCollector_ResetAndSnapshot checks Reset semantics and that a Snapshot
// is detached from later mutation.
func TestCollector_ResetAndSnapshot(t *testing.T) {
	t.Parallel()

	var c prim_kruskal.Collector // zero value is usable
	c.Append(prim_kruskal.Candidate{Src: 0, Dest: 1, Weight: 3})
	c.Append(prim_kruskal.Candidate{Src: 2, Dest: 4, Weight: 1})

	snap := c.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, 0, snap[0].Src, "arrival order kept")

	c.Reset()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Snapshot())
	assert.Len(t, snap, 2, "snapshot unaffected by Reset")

	c.Append(prim_kruskal.Candidate{Src: 7, Dest: 8, Weight: 9})
	assert.Equal(t, 2, snap[1].Src, "snapshot unaffected by reuse of storage")
}
