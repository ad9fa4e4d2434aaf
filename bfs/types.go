// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrStartVertexNotFound is returned when the start ID is outside 0..N-1.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Unreached marks Depth and Parent entries of nodes BFS never visited.
const Unreached = -1

// Option configures BFS behavior via functional arguments.
// Invalid values are recorded internally and surfaced as ErrOptionViolation
// when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds the traversal knobs.
type BFSOptions struct {
	// Ctx allows cancellation; checked once per dequeued node.
	Ctx context.Context

	// OnVisit is called when a node is dequeued; a non-nil error aborts.
	OnVisit func(id, depth int) error

	// MaxDepth limits exploration depth; 0 means unlimited.
	MaxDepth int

	err error
}

// DefaultOptions returns background context, no-op hook, unlimited depth.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a hook called once per visited node.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits exploration depth.
//
//	d == 0: unlimited
//	d  > 0: stop enqueuing beyond depth d
//	d  < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// BFSResult holds the traversal output.
type BFSResult struct {
	// Order lists nodes in visit order.
	Order []int

	// Depth[id] is the hop distance from the start, or Unreached.
	Depth []int

	// Parent[id] is the BFS-tree predecessor, or Unreached (also for the start).
	Parent []int
}

// Reached reports whether id was visited.
func (r *BFSResult) Reached(id int) bool {
	return id >= 0 && id < len(r.Depth) && r.Depth[id] != Unreached
}

// PathTo reconstructs the start→dest hop path.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := make([]int, r.Depth[dest]+1)
	for i, v := len(path)-1, dest; i >= 0; i, v = i-1, r.Parent[v] {
		path[i] = v
	}
	return path, nil
}
