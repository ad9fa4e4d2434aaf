// SPDX-License-Identifier: MIT

// Command parprim builds a weighted graph, prints it, computes its minimum
// spanning tree and reports the selected edges.
//
// Usage:
//
//	parprim [-config parprim.yaml]
//
// Every setting can also be overridden with PARPRIM_* environment variables
// (see package config).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/katalvlaran/parprim/bfs"
	"github.com/katalvlaran/parprim/builder"
	"github.com/katalvlaran/parprim/config"
	"github.com/katalvlaran/parprim/core"
	"github.com/katalvlaran/parprim/graphio"
	"github.com/katalvlaran/parprim/prim_kruskal"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (YAML)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parprim: %v\n", err)
		os.Exit(2)
	}
	logger := newLogger(os.Stderr, cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout, logger); err != nil {
		logger.Error("mst run failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}

// run executes one configured MST computation, writing the graph dump,
// progress lines and report to out.
func run(ctx context.Context, cfg *config.Config, out io.Writer, logger *slog.Logger) error {
	g, err := loadGraph(cfg)
	if err != nil {
		return err
	}
	logger.Info("graph loaded",
		slog.String("source", cfg.Graph.Source),
		slog.Int("nodes", g.NodeCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.Int64("max_weight", cfg.MaxWeight),
	)

	if err := graphio.WriteGraph(out, g); err != nil {
		return fmt.Errorf("write graph: %w", err)
	}

	opts := []prim_kruskal.Option{
		prim_kruskal.WithMethod(cfg.Method),
		prim_kruskal.WithStart(cfg.StartNode),
		prim_kruskal.WithMaxWorkers(cfg.MaxWorkers),
		prim_kruskal.WithDeadline(cfg.Deadline),
		prim_kruskal.WithLogger(logger),
	}
	// progressErr keeps the first failed progress write; later lines are skipped.
	var progressErr error
	if cfg.Method == prim_kruskal.MethodParallelPrim {
		fmt.Fprintf(out, "Starting Prim's algorithm from node %d\n", cfg.StartNode)
		opts = append(opts, prim_kruskal.WithOnRound(func(ri prim_kruskal.RoundInfo) {
			if progressErr == nil {
				progressErr = graphio.WriteSelected(out, ri.Edge)
			}
		}))
	}

	res, err := prim_kruskal.Compute(ctx, g, opts...)
	if progressErr != nil {
		progressErr = fmt.Errorf("write progress: %w", progressErr)
	}
	if err != nil {
		// A partial tree is still worth showing.
		if res != nil && (errors.Is(err, prim_kruskal.ErrDisconnected) || errors.Is(err, prim_kruskal.ErrDeadline)) {
			if werr := graphio.WritePartialReport(out, res, g.NodeCount()); werr != nil {
				progressErr = errors.Join(progressErr, fmt.Errorf("write report: %w", werr))
			}
		}
		if errors.Is(err, prim_kruskal.ErrDisconnected) {
			comps := bfs.Components(g)
			fmt.Fprintf(out, "Graph has %d connected components\n", len(comps))
			logger.Warn("graph is not connected", slog.Int("components", len(comps)))
		}
		return errors.Join(err, progressErr)
	}
	if progressErr != nil {
		return progressErr
	}

	if err := graphio.WriteReport(out, res); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if cfg.Output.Path != "" {
		if err := graphio.WriteMSTCSV(cfg.Output.Path, res); err != nil {
			return err
		}
		logger.Info("mst written", slog.String("path", cfg.Output.Path), slog.Int("edges", len(res.Edges)))
	}

	return nil
}

// loadGraph builds the input graph for the configured source.
func loadGraph(cfg *config.Config) (*core.Graph, error) {
	gopts := []core.GraphOption{core.WithMaxWeight(cfg.MaxWeight)}

	switch cfg.Graph.Source {
	case config.SourceCSV:
		return graphio.ReadGraphFile(cfg.Graph.Path, cfg.Graph.MinNodes, gopts...)
	case config.SourceRandom:
		return builder.BuildGraph(gopts,
			[]builder.BuilderOption{
				builder.WithSeed(cfg.Graph.Seed),
				builder.WithUniformWeight(cfg.Graph.MinWeight, cfg.MaxWeight),
			},
			builder.RandomConnected(cfg.Graph.Nodes, cfg.Graph.ExtraEdges),
		)
	default:
		return builder.BuildGraph(gopts, nil, builder.Reference())
	}
}

// newLogger builds the process logger from the log section.
func newLogger(w io.Writer, lc config.Log) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(lc.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	hopts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(lc.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}
