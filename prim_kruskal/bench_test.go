package prim_kruskal_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/katalvlaran/parprim/builder"
	"github.com/katalvlaran/parprim/core"
	"github.com/katalvlaran/parprim/prim_kruskal"
)

func benchGraph(b *testing.B, n, extra int) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithUniformWeight(1, 1000)},
		builder.RandomConnected(n, extra),
	)
	if err != nil {
		b.Fatalf("build: %v", err)
	}
	return g
}

func BenchmarkParallelPrim(b *testing.B) {
	g := benchGraph(b, 200, 2000)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for _, workers := range []int{0, 1, 4, 16} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := prim_kruskal.ParallelPrim(context.Background(), g,
					prim_kruskal.WithMaxWorkers(workers), prim_kruskal.WithLogger(logger)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPrim(b *testing.B) {
	g := benchGraph(b, 200, 2000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := prim_kruskal.Prim(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkKruskal(b *testing.B) {
	g := benchGraph(b, 200, 2000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := prim_kruskal.Kruskal(g); err != nil {
			b.Fatal(err)
		}
	}
}
