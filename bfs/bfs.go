// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning hop
// distances, parent links and visit order, plus connected components.
//
// Edge weights are ignored; only adjacency matters.
package bfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/parprim/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	queue []int
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation or any
// OnVisit error. The partial result is returned with traversal errors.
//
// Complexity: O(N + E).
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := range n {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = Unreached
	}

	w.enqueue(start, 0, Unreached)
	return w.res, w.loop()
}

func (w *walker) enqueue(id, depth, parent int) {
	w.res.Depth[id] = depth
	w.res.Parent[id] = parent
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		id := w.queue[0]
		w.queue = w.queue[1:]
		depth := w.res.Depth[id]

		w.res.Order = append(w.res.Order, id)
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
		}

		if w.opts.MaxDepth > 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		for arc := range w.graph.Neighbors(id) {
			if w.res.Depth[arc.To] == Unreached {
				w.enqueue(arc.To, depth+1, id)
			}
		}
	}
	return nil
}

// Components returns the connected components of g, each sorted ascending,
// ordered by their smallest node. A nil graph has no components.
//
// Complexity: O(N log N + E).
func Components(g *core.Graph) [][]int {
	if g == nil {
		return nil
	}
	n := g.NodeCount()
	comp := make([]bool, n)
	var out [][]int
	for root := range n {
		if comp[root] {
			continue
		}
		// A fresh BFS cannot fail: root is valid and no options are set.
		res, _ := BFS(g, root)
		members := slices.Clone(res.Order)
		for _, id := range members {
			comp[id] = true
		}
		slices.Sort(members)
		out = append(out, members)
	}
	return out
}
