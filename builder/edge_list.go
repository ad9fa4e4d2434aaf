// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/parprim/core"

// edgeList accumulates nodes and undirected edges before a graph is built.
// Node IDs are dense: growing to n makes 0..n-1 valid.
type edgeList struct {
	n     int
	edges []core.Edge
	seen  map[[2]int]struct{}
}

func newEdgeList() *edgeList {
	return &edgeList{seen: make(map[[2]int]struct{})}
}

// grow makes sure at least n nodes exist.
func (el *edgeList) grow(n int) {
	if n > el.n {
		el.n = n
	}
}

// has reports whether the unordered pair {u,v} was already emitted.
func (el *edgeList) has(u, v int) bool {
	_, ok := el.seen[pair(u, v)]
	return ok
}

// add emits u-v with weight w. Loops and repeated pairs are skipped;
// the return value reports whether the edge was stored.
func (el *edgeList) add(u, v int, w int64) bool {
	if u == v || el.has(u, v) {
		return false
	}
	el.seen[pair(u, v)] = struct{}{}
	el.edges = append(el.edges, core.Edge{From: u, To: v, Weight: w})

	return true
}

func pair(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}
