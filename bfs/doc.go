// SPDX-License-Identifier: MIT

// Package bfs implements breadth-first search over the immutable
// *core.Graph.
//
// It answers reachability questions that the MST algorithms only discover
// indirectly: which nodes a tree grown from a start node can ever reach, and
// how the graph splits into connected components when no spanning tree exists.
//
// API:
//
//	BFS(g, start, opts...) (*BFSResult, error)
//	Components(g) [][]int
//
// Options:
//
//	WithContext(ctx)   cancellation, checked once per dequeued node
//	WithOnVisit(fn)    hook per visited node; an error aborts
//	WithMaxDepth(d)    limit hop depth (0 = unlimited, < 0 = ErrOptionViolation)
//
// Determinism: neighbours are explored in adjacency (edge-supply) order, so
// Order is identical across runs.
//
// Complexity: O(N + E) time, O(N) memory.
package bfs
