// SPDX-License-Identifier: MIT

// Package prim_kruskal provides a sequential implementation of Prim's
// Minimum Spanning Tree algorithm. It grows the MST from a start node using a
// min-heap and serves as the reference the parallel variant is checked against.
package prim_kruskal

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/katalvlaran/parprim/core"
)

// Prim computes the MST of g by growing outwards from start using a min-heap.
//
// Error Conditions:
//   - ErrNilGraph      : g is nil.
//   - ErrEmptyGraph    : g has no nodes.
//   - ErrStartNotFound : start outside 0..N-1.
//   - ErrDisconnected  : the heap ran dry before all nodes were reached; the
//     partial tree is returned with the error.
//
// Steps:
//  1. Validate graph and start.
//  2. Mark start as visited and push all its arcs.
//  3. While the heap is not empty and the MST has < N-1 edges:
//     a. Pop the smallest candidate (weight, src, dest).
//     b. If its destination is visited, skip it (would close a cycle).
//     c. Otherwise commit it, mark the destination and push its arcs to unvisited nodes.
//  4. Fewer than N-1 edges → ErrDisconnected.
//
// Complexity: O(E log E) time, O(N + E) memory.
func Prim(g *core.Graph, start int) (res *Result, err error) {
	started := time.Now()
	defer func() { observeBuild(MethodPrim, started, err) }()

	// 1. Validate.
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NodeCount()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start=%d, nodes=%d", ErrStartNotFound, start, n)
	}

	// 2. Seed the tree.
	visited := g.NewMembership()
	visited.Mark(start)
	res = &Result{Start: start, Edges: make([]core.Edge, 0, n-1), Reached: 1}

	pq := &candidatePQ{}
	heap.Init(pq)
	pushArcs(pq, g, visited, start)

	// 3. Main loop: extract smallest candidate and expand until N-1 edges.
	for pq.Len() > 0 && len(res.Edges) < n-1 {
		c := heap.Pop(pq).(Candidate)
		if visited.IsMember(c.Dest) {
			continue
		}
		visited.Mark(c.Dest)
		res.Edges = append(res.Edges, c.Edge())
		res.TotalWeight += c.Weight
		res.Rounds++
		res.Reached = visited.Size()

		pushArcs(pq, g, visited, c.Dest)
	}

	// 4. Spanning check.
	if len(res.Edges) < n-1 {
		return res, fmt.Errorf("%w: reached %d of %d nodes from start %d", ErrDisconnected, visited.Size(), n, start)
	}

	return res, nil
}

// pushArcs pushes every arc from u to a node outside the tree.
func pushArcs(pq *candidatePQ, g *core.Graph, visited MemberSet, u int) {
	for arc := range g.Neighbors(u) {
		if !visited.IsMember(arc.To) {
			heap.Push(pq, Candidate{Src: u, Dest: arc.To, Weight: arc.Weight})
		}
	}
}

// candidatePQ implements heap.Interface for a min-heap of Candidate,
// ordered by (Weight, Src, Dest).
type candidatePQ []Candidate

// Len returns the number of candidates in the priority queue.
func (pq candidatePQ) Len() int { return len(pq) }

// Less reports whether element i should sort before j.
func (pq candidatePQ) Less(i, j int) bool { return pq[i].less(pq[j]) }

// Swap swaps elements at indices i and j.
func (pq candidatePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new Candidate to the heap. Called by heap.Push.
func (pq *candidatePQ) Push(x any) { *pq = append(*pq, x.(Candidate)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *candidatePQ) Pop() any {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
