// SPDX-License-Identifier: MIT

// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It produces a slice of edges forming the MST and is used to cross-check the Prim variants.
package prim_kruskal

import (
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/parprim/core"
)

// Kruskal computes the MST of g with a disjoint-set (union-find) structure
// using path compression and union by rank.
//
// Error Conditions:
//   - ErrNilGraph     : g is nil.
//   - ErrEmptyGraph   : g has no nodes.
//   - ErrDisconnected : fewer than N-1 edges could be joined.
//
// Steps:
//  1. Validate; a single node is a trivial MST.
//  2. Sort edges by ascending Weight (stable, so ties keep supply order).
//  3. Initialize parent[] and rank[] for each node.
//  4. For each edge (u,v): if find(u) != find(v), union and include the edge.
//  5. Stop at N-1 edges; fewer after the loop → ErrDisconnected.
//
// The returned Result has Start == -1.
//
// Complexity: O(E log E + α(N)·E) time, O(N + E) memory.
func Kruskal(g *core.Graph) (res *Result, err error) {
	started := time.Now()
	defer func() { observeBuild(MethodKruskal, started, err) }()

	// 1. Validate.
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NodeCount()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	res = &Result{Start: -1, Edges: make([]core.Edge, 0, n-1), Reached: 1}
	if n == 1 {
		return res, nil
	}

	// 2. Stable sort by weight for deterministic tie-breaking.
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 3. Disjoint-set structures.
	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}

	// Iterative find with path halving.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	// Union by rank; reports whether two sets were merged.
	union := func(u, v int) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
		return true
	}

	// 4. Build MST by iterating over sorted edges.
	for _, e := range edges {
		if !union(e.From, e.To) {
			continue
		}
		res.Edges = append(res.Edges, e)
		res.TotalWeight += e.Weight
		if len(res.Edges) == n-1 {
			break
		}
	}
	res.Rounds = len(res.Edges)

	// 5. Spanning check.
	if len(res.Edges) < n-1 {
		return nil, fmt.Errorf("%w: joined %d of %d required edges", ErrDisconnected, len(res.Edges), n-1)
	}
	res.Reached = n

	return res, nil
}
