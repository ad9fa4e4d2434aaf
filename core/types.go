// SPDX-License-Identifier: MIT

// Package core defines the Graph, Edge and Arc types, the GraphOption
// functional options and the sentinel errors of the graph store.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for graph construction.
var (
	// ErrBadNodeCount indicates a negative node count was requested.
	ErrBadNodeCount = errors.New("core: node count must be non-negative")

	// ErrNodeNotFound indicates an edge referenced a node outside 0..N-1.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrWeightTooLarge indicates an edge weight above the configured maximum.
	ErrWeightTooLarge = errors.New("core: edge weight exceeds maximum")

	// ErrLoopNotAllowed indicates a self-loop (from == to).
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a node pair supplied twice with different weights.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// NoWeightLimit is the default weight bound: any non-negative int64 is accepted.
const NoWeightLimit int64 = math.MaxInt64

// Edge is an undirected weighted connection between two nodes.
//
// From and To keep the orientation in which the edge was supplied or selected;
// for MST results From is the node that was already in the tree.
type Edge struct {
	// From is the source node ID.
	From int

	// To is the destination node ID.
	To int

	// Weight is the non-negative cost of the edge.
	Weight int64
}

// Arc is one directed adjacency entry of a node: the neighbour and the weight
// of the connecting edge.
type Arc struct {
	To     int
	Weight int64
}

// GraphOption configures a Graph before its edges are loaded.
type GraphOption func(g *Graph)

// WithMaxWeight bounds the accepted edge weight (inclusive).
// Panics if max < 0, since no edge could ever satisfy it.
func WithMaxWeight(max int64) GraphOption {
	if max < 0 {
		panic("core: WithMaxWeight(max<0)")
	}
	return func(g *Graph) { g.maxWeight = max }
}

// Graph is an immutable undirected weighted graph over nodes 0..N-1.
//
// adj[u] lists the arcs leaving u in the order edges were supplied; edges
// holds each undirected edge once. Neither slice is modified after NewGraph.
type Graph struct {
	maxWeight int64

	adj   [][]Arc
	edges []Edge
}
