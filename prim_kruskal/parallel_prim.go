// SPDX-License-Identifier: MIT

// parallel_prim.go: round-based parallel variant of Prim's algorithm. Each
// round fans out one finder per tree node, joins them at a barrier, reduces
// their candidates to a single edge and commits it.

package prim_kruskal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/parprim/core"
)

// ParallelPrim computes the MST of g by growing a tree from the configured
// start node, searching all tree nodes' adjacency lists concurrently each round.
//
// Error Conditions:
//   - ErrNilGraph        : g is nil.
//   - ErrEmptyGraph      : g has no nodes.
//   - ErrStartNotFound   : start node outside 0..N-1.
//   - ErrDisconnected    : a round produced no candidates while nodes remain outside.
//   - ErrDeadline        : ctx (or WithDeadline) expired before a round finished.
//   - ErrInvalidCandidate: an injected collector returned an edge that does not cross the cut.
//
// On ErrDisconnected, ErrDeadline and ErrInvalidCandidate the returned Result
// holds the partial tree committed so far.
//
// Steps:
//  1. INIT: validate; mark start; tree size = 1.
//  2. ROUND_DISPATCH: Reset the collector; one finder per tree node.
//  3. ROUND_AWAIT: wait for every finder, or for ctx to end.
//  4. REDUCE: no candidates → ErrDisconnected; else minimum by (weight, src, dest).
//  5. COMMIT: append edge, add weight, mark destination; fire OnRound.
//  6. Repeat 2–5 until every node is in the tree.
//
// Membership is only mutated in step 5, after the barrier of step 3, so
// finders never observe a flag mid-update.
//
// Complexity: O(N) rounds; round k scans the adjacency of k nodes,
// so O(N·E) work in total, spread over the workers of each round.
func ParallelPrim(ctx context.Context, g *core.Graph, opts ...Option) (res *Result, err error) {
	o := resolveOptions(opts...)
	started := time.Now()
	defer func() { observeBuild(MethodParallelPrim, started, err) }()

	// 1. Validate graph and start node.
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NodeCount()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if !g.HasNode(o.Start) {
		return nil, fmt.Errorf("%w: start=%d, nodes=%d", ErrStartNotFound, o.Start, n)
	}

	if o.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.Deadline)
		defer cancel()
	}

	ctx, span := getTracer().Start(ctx, "prim_kruskal.ParallelPrim",
		trace.WithAttributes(
			attribute.Int("nodes", n),
			attribute.Int("edges", g.EdgeCount()),
			attribute.Int("start", o.Start),
			attribute.Int("max_workers", o.MaxWorkers),
		),
	)
	defer span.End()

	// INIT
	tree := g.NewMembership()
	tree.Mark(o.Start)
	res = &Result{Start: o.Start, Edges: make([]core.Edge, 0, n-1), Reached: tree.Size()}

	sink := o.Collector
	if sink == nil {
		sink = NewCollector(n)
	}

	for !tree.Complete() {
		round := res.Rounds + 1
		roundStart := time.Now()
		members := tree.Members()

		// 2–3. ROUND_DISPATCH and ROUND_AWAIT.
		sink.Reset()
		if rerr := runRound(ctx, g, tree, members, sink, o.MaxWorkers); rerr != nil {
			err = fmt.Errorf("%w: round %d with %d members: %w", ErrDeadline, round, len(members), rerr)
			o.Logger.WarnContext(ctx, "mst run aborted",
				slog.Int("round", round),
				slog.Int("reached", tree.Size()),
				slog.Int("nodes", n),
				slog.String("error", rerr.Error()),
			)
			span.RecordError(err)
			span.SetStatus(codes.Error, "round aborted")
			return res, err
		}

		// 4. REDUCE
		candidates := sink.Snapshot()
		mstRoundCandidates.Observe(float64(len(candidates)))
		best, ok := Reduce(candidates)
		if !ok {
			err = fmt.Errorf("%w: reached %d of %d nodes from start %d", ErrDisconnected, tree.Size(), n, o.Start)
			o.Logger.WarnContext(ctx, "mst cannot span graph",
				slog.Int("round", round),
				slog.Int("reached", tree.Size()),
				slog.Int("nodes", n),
			)
			span.RecordError(err)
			span.SetStatus(codes.Error, "disconnected")
			return res, err
		}

		// 5. COMMIT
		if !tree.IsMember(best.Src) || !g.HasNode(best.Dest) || tree.IsMember(best.Dest) {
			err = fmt.Errorf("%w: %d -> %d in round %d", ErrInvalidCandidate, best.Src, best.Dest, round)
			span.RecordError(err)
			span.SetStatus(codes.Error, "invalid candidate")
			return res, err
		}
		tree.Mark(best.Dest)
		e := best.Edge()
		res.Edges = append(res.Edges, e)
		res.TotalWeight += e.Weight
		res.Rounds = round
		res.Reached = tree.Size()

		mstRoundsTotal.Inc()
		mstRoundDuration.Observe(time.Since(roundStart).Seconds())
		span.AddEvent("round_committed", trace.WithAttributes(
			attribute.Int("round", round),
			attribute.Int("candidates", len(candidates)),
			attribute.Int("src", e.From),
			attribute.Int("dest", e.To),
			attribute.Int64("weight", e.Weight),
		))
		if o.Logger.Enabled(ctx, slog.LevelDebug) {
			o.Logger.DebugContext(ctx, "edge selected",
				slog.Int("round", round),
				slog.Int("src", e.From),
				slog.Int("dest", e.To),
				slog.Int64("weight", e.Weight),
				slog.Int("candidates", len(candidates)),
			)
		}
		if o.OnRound != nil {
			o.OnRound(RoundInfo{Round: round, Members: tree.Size(), Candidates: len(candidates), Edge: e})
		}
	}

	span.SetAttributes(
		attribute.Int("rounds", res.Rounds),
		attribute.Int64("total_weight", res.TotalWeight),
	)
	span.SetStatus(codes.Ok, "mst computed")

	return res, nil
}

// runRound launches one finder per member and waits for all of them.
//
// The barrier runs in its own goroutine so that a hung finder (or a full
// worker limit) cannot keep the orchestrator from noticing ctx expiry. After
// an abort the stragglers keep reading the tree; the caller must not mutate it.
func runRound(ctx context.Context, g *core.Graph, tree MemberSet, members []int, sink CandidateCollector, limit int) error {
	grp, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		grp.SetLimit(limit)
	}

	done := make(chan error, 1)
	go func() {
		for _, node := range members {
			grp.Go(func() error {
				return searchNode(gctx, g, tree, node, sink)
			})
		}
		done <- grp.Wait()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
