// SPDX-License-Identifier: MIT

// Package parprim computes minimum spanning trees of weighted undirected
// graphs with a round-based parallel variant of Prim's algorithm.
//
// Each round fans out one finder goroutine per node already in the tree;
// every finder reports the lightest edge from its node to a node outside the
// tree into a shared collector. After all finders have joined, the lightest
// reported edge (ties broken by source then destination) is committed and
// its destination joins the tree. The run ends when every node is in the tree,
// when no finder reports anything (the graph is disconnected), or when the
// deadline expires.
//
// Layout:
//
//	core/          immutable adjacency graph, per-run membership flags
//	prim_kruskal/  ParallelPrim, sequential Prim and Kruskal, collector, metrics
//	builder/       deterministic fixtures (Reference, Path, RandomConnected, ...)
//	bfs/           reachability and connected components
//	graphio/       CSV edge lists, graph dump and MST report
//	config/        YAML + PARPRIM_* environment configuration
//	cmd/parprim/   command-line driver
//	examples/      runnable scenario
//
// Quick example:
//
//	g, _ := builder.BuildGraph([]core.GraphOption{core.WithMaxWeight(10)}, nil, builder.Reference())
//	res, err := prim_kruskal.ParallelPrim(ctx, g, prim_kruskal.WithStart(0))
//	// res.Edges: (0,1,5) (1,3,4) (3,2,7) (2,4,8); res.TotalWeight: 24
package parprim
