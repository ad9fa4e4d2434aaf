// SPDX-License-Identifier: MIT

// Package prim_kruskal computes Minimum Spanning Trees (MST) over an
// undirected, weighted *core.Graph. Its centrepiece is a round-based parallel
// Prim; sequential Prim and Kruskal are provided alongside as references.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
//   - Why a parallel Prim?
//     Each round of Prim must find the lightest edge leaving the tree. That search splits
//     naturally by tree node: every node can scan its own adjacency list independently,
//     and only the final "pick the smallest" step needs to see all results.
//
// Algorithms Provided
//
//   - ParallelPrim(ctx, g, opts...) (*Result, error)
//
//   - Strategy: rounds of fan-out/fan-in. In each round one finder goroutine per tree node
//     scans that node's arcs and reports its lightest arc to a non-tree node into a shared,
//     mutex-guarded Collector. After all finders join, the orchestrator reduces the collected
//     candidates to one edge, commits it and marks its destination.
//
//   - Synchronization: the graph is immutable; membership flags are written only by the
//     orchestrator between rounds; the Collector is the only state written concurrently.
//
//   - Determinism: a finder keeps the first of equal-weight arcs in adjacency order; the
//     reduction orders by (weight, src, dest). Together these make the selected edge
//     sequence identical across runs regardless of goroutine scheduling.
//
//   - Liveness: WithDeadline (or the caller's ctx) bounds the run; a round that does not
//     finish in time aborts with ErrDeadline and the partial tree.
//
//   - Complexity: O(N) rounds, O(N·E) total work.
//
//   - Prim(g, start) (*Result, error)
//
//   - Strategy: single goroutine, min-heap of crossing edges. O(E log E).
//
//   - Kruskal(g) (*Result, error)
//
//   - Strategy: stable sort of all edges + union-find. O(E log E).
//
// Error Conditions
//
//	- ErrNilGraph / ErrEmptyGraph / ErrStartNotFound: invalid input, returned immediately.
//	- ErrDisconnected: no tree node has an edge to a non-tree node while nodes remain
//	  outside. Prim variants return the partial tree with it.
//	- ErrDeadline: the run's context ended before a round finished.
//	- ErrInvalidCandidate: an injected collector reported an edge that does not cross the cut.
//	- ErrUnknownMethod: Compute with a Method outside the Method* constants.
//
// Observability
//
//	Runs are counted and timed in Prometheus (parprim_mst_builds_total{method,result},
//	parprim_mst_build_duration_seconds, parprim_rounds_total, parprim_round_*), traced with one
//	OpenTelemetry span per parallel run (one event per committed round), and logged through
//	log/slog at Debug (per round) and Warn (aborted or disconnected runs).
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
