// SPDX-License-Identifier: MIT

// Package prim_kruskal defines configuration options, result types and
// sentinel errors for MST computation.
// It supports selecting between parallel Prim, sequential Prim and Kruskal
// via MSTOptions.
package prim_kruskal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/parprim/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrEmptyGraph indicates a graph with zero nodes; there is no tree to seed.
var ErrEmptyGraph = errors.New("prim_kruskal: graph has no nodes")

// ErrStartNotFound indicates that the start node is outside 0..N-1.
var ErrStartNotFound = errors.New("prim_kruskal: start node not found")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all nodes cannot be formed. Prim variants return it together
// with the partial tree built up to the failing round.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrDeadline indicates the run was aborted because its context expired or was
// cancelled before a round's workers all finished. The partial tree built by
// the completed rounds is returned alongside.
var ErrDeadline = errors.New("prim_kruskal: run aborted before round completed")

// ErrInvalidCandidate indicates that a collector returned a candidate whose
// source is not in the tree or whose destination already is.
var ErrInvalidCandidate = errors.New("prim_kruskal: candidate violates tree invariant")

// ErrUnknownMethod indicates an MSTOptions.Method outside the Method* constants.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodParallelPrim selects the round-based parallel Prim (one worker per tree node).
const MethodParallelPrim = "parallel-prim"

// MethodPrim selects sequential Prim (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Candidate is one worker's best outgoing edge for a round: from tree node Src
// to non-tree node Dest.
type Candidate struct {
	Src    int
	Dest   int
	Weight int64
}

// NoCandidate is the sentinel produced by a tree node with no edge to any
// node outside the tree.
var NoCandidate = Candidate{Src: -1, Dest: -1, Weight: math.MaxInt64}

// Valid reports whether c is a real candidate rather than NoCandidate.
func (c Candidate) Valid() bool { return c.Src >= 0 }

// Edge converts c into the MST edge it would commit.
func (c Candidate) Edge() core.Edge {
	return core.Edge{From: c.Src, To: c.Dest, Weight: c.Weight}
}

// less orders candidates by (Weight, Src, Dest). Every reduction uses it, so
// the winner never depends on the order workers finished in.
func (c Candidate) less(o Candidate) bool {
	if c.Weight != o.Weight {
		return c.Weight < o.Weight
	}
	if c.Src != o.Src {
		return c.Src < o.Src
	}
	return c.Dest < o.Dest
}

// Result is the MST accumulator.
//
// Edges are in selection order; TotalWeight is always the sum of their
// weights. On ErrDisconnected or ErrDeadline a Prim variant returns the partial
// tree it had committed.
type Result struct {
	// Start is the seed node, or -1 for Kruskal (which is not rooted).
	Start int

	// Edges holds the selected edges; From is the node already in the tree.
	Edges []core.Edge

	// TotalWeight is the sum of Edges[i].Weight.
	TotalWeight int64

	// Rounds is the number of committed rounds (== len(Edges)).
	Rounds int

	// Reached is the number of nodes in the tree.
	Reached int
}

// RoundInfo describes one committed round; it is passed to MSTOptions.OnRound.
type RoundInfo struct {
	// Round is 1-based.
	Round int

	// Members is the tree size after the commit (always Round+1).
	Members int

	// Candidates is how many tree nodes reported an outgoing edge this round.
	Candidates int

	// Edge is the committed edge.
	Edge core.Edge
}

// MSTOptions configures which MST algorithm to run and how the parallel
// variant schedules its workers.
//
// Fields:
//
//	Method     string       : MethodParallelPrim (default), MethodPrim or MethodKruskal.
//	Start      int          : seed node for Prim variants; ignored by Kruskal.
//	MaxWorkers int          : upper bound of concurrent finders per round; 0 = one per tree node.
//	Deadline   time.Duration: overall time budget of a parallel run; 0 = only the caller's ctx.
//	Collector  CandidateCollector: shared candidate sink; nil = a fresh Collector per run.
//	OnRound    func(RoundInfo)   : called by the orchestrator after each commit.
//	Logger     *slog.Logger      : structured logger; defaults to slog.Default().
type MSTOptions struct {
	Method     string
	Start      int
	MaxWorkers int
	Deadline   time.Duration
	Collector  CandidateCollector
	OnRound    func(RoundInfo)
	Logger     *slog.Logger
}

// Option configures MSTOptions. All Option functions modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodParallelPrim, MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithStart sets the seed node for Prim variants.
// Panics if id < 0.
func WithStart(id int) Option {
	if id < 0 {
		panic("prim_kruskal: WithStart(id<0)")
	}
	return func(opts *MSTOptions) {
		opts.Start = id
	}
}

// WithMaxWorkers bounds how many finders run at once within a round.
// Zero restores the default of one goroutine per tree node. Panics if n < 0.
func WithMaxWorkers(n int) Option {
	if n < 0 {
		panic("prim_kruskal: WithMaxWorkers(n<0)")
	}
	return func(opts *MSTOptions) {
		opts.MaxWorkers = n
	}
}

// WithDeadline limits the wall-clock duration of a parallel run.
// Zero disables the limit. Panics if d < 0.
func WithDeadline(d time.Duration) Option {
	if d < 0 {
		panic("prim_kruskal: WithDeadline(d<0)")
	}
	return func(opts *MSTOptions) {
		opts.Deadline = d
	}
}

// WithCollector injects the candidate collector used by a parallel run.
// Panics on nil.
func WithCollector(c CandidateCollector) Option {
	if c == nil {
		panic("prim_kruskal: WithCollector(nil)")
	}
	return func(opts *MSTOptions) {
		opts.Collector = c
	}
}

// WithOnRound registers a hook invoked after every committed round, from the
// orchestrator goroutine.
func WithOnRound(fn func(RoundInfo)) Option {
	return func(opts *MSTOptions) {
		opts.OnRound = fn
	}
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("prim_kruskal: WithLogger(nil)")
	}
	return func(opts *MSTOptions) {
		opts.Logger = l
	}
}

// DefaultOptions returns MSTOptions initialized for parallel Prim from node 0:
//
//	– Method     = MethodParallelPrim
//	– Start      = 0
//	– MaxWorkers = 0 (one worker per tree node)
//	– Deadline   = 0 (caller's ctx only)
//	– Logger     = slog.Default()
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodParallelPrim,
		Start:  0,
		Logger: slog.Default(),
	}
}

func resolveOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Compute selects and runs the MST algorithm based on the resolved Method.
//
//	– MethodParallelPrim: ParallelPrim(ctx, graph, opts...).
//	– MethodPrim:         Prim(graph, Start).
//	– MethodKruskal:      Kruskal(graph).
//	– Otherwise:          ErrUnknownMethod.
func Compute(ctx context.Context, graph *core.Graph, opts ...Option) (*Result, error) {
	o := resolveOptions(opts...)

	// Dispatch by method name
	switch o.Method {
	case MethodParallelPrim:
		return ParallelPrim(ctx, graph, opts...)
	case MethodPrim:
		return Prim(graph, o.Start)
	case MethodKruskal:
		return Kruskal(graph)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}
