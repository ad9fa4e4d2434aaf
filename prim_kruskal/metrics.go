// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Result labels for mstBuildsTotal.
const (
	resultSuccess      = "success"
	resultDisconnected = "disconnected"
	resultDeadline     = "deadline"
	resultInvalid      = "invalid_input"
	resultOther        = "other"
)

var (
	// mstBuildsTotal counts MST runs by method and outcome.
	mstBuildsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parprim_mst_builds_total",
		Help: "Total MST computations by method and result",
	}, []string{"method", "result"})

	mstBuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "parprim_mst_build_duration_seconds",
		Help:    "Wall-clock duration of one MST computation",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
	}, []string{"method"})

	// mstRoundsTotal counts committed parallel Prim rounds.
	mstRoundsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parprim_rounds_total",
		Help: "Total committed parallel Prim rounds",
	})

	mstRoundDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "parprim_round_duration_seconds",
		Help:    "Dispatch-to-commit duration of one parallel Prim round",
		Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1},
	})

	mstRoundCandidates = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "parprim_round_candidates",
		Help:    "Candidates collected per parallel Prim round",
		Buckets: []float64{0, 1, 2, 5, 10, 50, 100, 1000},
	})
)

var (
	tracerOnce sync.Once
	mstTracer  trace.Tracer
)

// getTracer returns the OTel tracer, initializing it lazily if needed.
func getTracer() trace.Tracer {
	tracerOnce.Do(func() {
		mstTracer = otel.Tracer("github.com/katalvlaran/parprim/prim_kruskal")
	})
	return mstTracer
}

// classifyResult maps an MST error onto a metrics label.
func classifyResult(err error) string {
	switch {
	case err == nil:
		return resultSuccess
	case errors.Is(err, ErrDisconnected):
		return resultDisconnected
	case errors.Is(err, ErrDeadline),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return resultDeadline
	case errors.Is(err, ErrNilGraph),
		errors.Is(err, ErrEmptyGraph),
		errors.Is(err, ErrStartNotFound):
		return resultInvalid
	default:
		return resultOther
	}
}

// observeBuild records the outcome and duration of one MST computation.
func observeBuild(method string, started time.Time, err error) {
	mstBuildsTotal.WithLabelValues(method, classifyResult(err)).Inc()
	mstBuildDuration.WithLabelValues(method).Observe(time.Since(started).Seconds())
}
