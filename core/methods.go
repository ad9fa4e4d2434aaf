// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Graph construction from an edge list and read-only queries.
// Determinism:
//   - Neighbors(id) yields arcs in edge-supply order.
//   - Edges() returns edges in supply order (duplicates dropped).
// Concurrency:
//   - The Graph is immutable after NewGraph; every query is lock-free.

package core

import (
	"fmt"
	"iter"
)

// pairKey identifies an undirected node pair independent of orientation.
type pairKey struct{ lo, hi int }

func keyOf(u, v int) pairKey {
	if u > v {
		u, v = v, u
	}
	return pairKey{lo: u, hi: v}
}

// NewGraph builds a graph over n nodes (IDs 0..n-1) from the given edges.
//
// Steps:
//  1. Validate n and apply options.
//  2. For each edge: validate endpoints, weight, loops.
//  3. Drop an exact repeat of an earlier pair (either orientation, same weight);
//     reject the pair if the weight differs.
//  4. Append u→v to adj[u] and v→u to adj[v].
//
// The first failing edge aborts construction; its index is part of the error.
//
// Complexity: O(N + E) time and memory.
func NewGraph(n int, edges []Edge, opts ...GraphOption) (*Graph, error) {
	// 1) Node count and options.
	if n < 0 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrBadNodeCount)
	}
	g := &Graph{
		maxWeight: NoWeightLimit,
		adj:       make([][]Arc, n),
		edges:     make([]Edge, 0, len(edges)),
	}
	for _, opt := range opts {
		opt(g)
	}

	seen := make(map[pairKey]int64, len(edges))
	for i, e := range edges {
		// 2) Input validation.
		if err := g.validate(n, e); err != nil {
			return nil, fmt.Errorf("NewGraph: edge %d (%d,%d,%d): %w", i, e.From, e.To, e.Weight, err)
		}

		// 3) Mirror supplied explicitly, or a real parallel edge?
		k := keyOf(e.From, e.To)
		if w, dup := seen[k]; dup {
			if w != e.Weight {
				return nil, fmt.Errorf("NewGraph: edge %d (%d,%d,%d) conflicts with weight %d: %w",
					i, e.From, e.To, e.Weight, w, ErrMultiEdgeNotAllowed)
			}
			continue
		}
		seen[k] = e.Weight

		// 4) Store once, link both directions.
		g.edges = append(g.edges, e)
		g.adj[e.From] = append(g.adj[e.From], Arc{To: e.To, Weight: e.Weight})
		g.adj[e.To] = append(g.adj[e.To], Arc{To: e.From, Weight: e.Weight})
	}

	return g, nil
}

func (g *Graph) validate(n int, e Edge) error {
	if e.From < 0 || e.From >= n {
		return fmt.Errorf("from=%d: %w", e.From, ErrNodeNotFound)
	}
	if e.To < 0 || e.To >= n {
		return fmt.Errorf("to=%d: %w", e.To, ErrNodeNotFound)
	}
	if e.Weight < 0 {
		return ErrNegativeWeight
	}
	if e.Weight > g.maxWeight {
		return fmt.Errorf("max=%d: %w", g.maxWeight, ErrWeightTooLarge)
	}
	if e.From == e.To {
		return ErrLoopNotAllowed
	}

	return nil
}

// NodeCount returns N.
func (g *Graph) NodeCount() int { return len(g.adj) }

// EdgeCount returns the number of undirected edges stored.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// MaxWeight returns the weight bound the graph was built with
// (NoWeightLimit when unbounded).
func (g *Graph) MaxWeight() int64 { return g.maxWeight }

// HasNode reports whether id is in 0..N-1.
func (g *Graph) HasNode(id int) bool { return id >= 0 && id < len(g.adj) }

// Degree returns the number of arcs leaving id, or 0 for an unknown id.
//
// Complexity: O(1).
func (g *Graph) Degree(id int) int {
	if !g.HasNode(id) {
		return 0
	}
	return len(g.adj[id])
}

// Neighbors returns a lazy sequence over the arcs leaving id, in supply order.
// The sequence is finite and may be ranged over any number of times.
// An unknown id yields an empty sequence.
//
// Complexity: O(1) to create, O(deg(id)) to exhaust.
func (g *Graph) Neighbors(id int) iter.Seq[Arc] {
	return func(yield func(Arc) bool) {
		if !g.HasNode(id) {
			return
		}
		for _, a := range g.adj[id] {
			if !yield(a) {
				return
			}
		}
	}
}

// Edges returns a copy of the stored edges in supply order.
//
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// TotalWeight returns the sum of all edge weights.
func (g *Graph) TotalWeight() int64 {
	var sum int64
	for _, e := range g.edges {
		sum += e.Weight
	}
	return sum
}
