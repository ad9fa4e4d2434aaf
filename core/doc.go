// SPDX-License-Identifier: MIT

// Package core provides the static graph store used by the MST algorithms:
// integer node IDs, symmetric adjacency lists and per-run tree membership.
//
// The Graph G = (V,E) is built once from an explicit edge list and is
// read-only afterwards:
//
//   - Nodes are identified by dense integers 0..N-1.
//   - Every undirected edge (u,v,w) is stored as two adjacency entries
//     u→v and v→u, in the order edges were supplied.
//   - Weights are non-negative int64 values, optionally bounded by
//     WithMaxWeight.
//   - Self-loops are rejected (ErrLoopNotAllowed).
//   - A pair supplied twice with the same weight (in either orientation) is
//     stored once; with a different weight it is rejected
//     (ErrMultiEdgeNotAllowed).
//
// Because the graph never changes after NewGraph returns, any number of
// goroutines may call Neighbors, Degree and the other queries concurrently
// without locking.
//
// Tree membership is deliberately not part of Graph. Each MST run asks the
// graph for a fresh Membership, so several runs over one graph cannot
// observe each other's flags:
//
//	tree := g.NewMembership()
//	tree.Mark(start)
//	for arc := range g.Neighbors(start) {
//	    if !tree.IsMember(arc.To) { ... }
//	}
//
// Membership is not safe for concurrent mutation. The owner mutates it only
// while no reader goroutines are active; concurrent IsMember calls are fine.
//
// Core Methods:
//
//	NewGraph(n int, edges []Edge, opts ...GraphOption) (*Graph, error) // O(N+E)
//	Neighbors(id int) iter.Seq[Arc]                                    // lazy, restartable
//	Degree(id int) int                                                 // O(1)
//	Edges() []Edge                                                     // O(E) copy
//	NewMembership() *Membership                                        // O(N)
//
// Errors:
//
//	ErrBadNodeCount        – negative node count
//	ErrNodeNotFound        – edge endpoint outside 0..N-1
//	ErrNegativeWeight      – weight < 0
//	ErrWeightTooLarge      – weight above the configured maximum
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – same pair supplied with conflicting weights
package core
