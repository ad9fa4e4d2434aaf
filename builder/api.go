// SPDX-License-Identifier: MIT
// Package: parprim/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Resolves cfg, runs cons
//     in order against one edge list, then hands that list to core.NewGraph.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical edge lists.
//   - Constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/parprim/core"
)

// Constructor applies a deterministic mutation to an edge list using the
// resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Grow the node range before referencing a node.
//   - Emit edges in a stable, documented order.
type Constructor func(el *edgeList, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order and builds an immutable core.Graph with gopts.
//
// Constructors share node IDs: Path(4) followed by Cycle(4) acts on the same
// nodes 0..3. A pair emitted twice keeps the first weight.
//
// Errors:
//   - Constructor errors are wrapped as "BuildGraph: %w".
//   - core.NewGraph errors (e.g. core.ErrWeightTooLarge under core.WithMaxWeight)
//     are wrapped the same way.
//
// Complexity: Σ cost of each constructor + O(N + E) for core.NewGraph.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	n, edges, err := BuildEdges(bopts, cons...)
	if err != nil {
		return nil, err
	}

	g, err := core.NewGraph(n, edges, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// BuildEdges runs the constructors like BuildGraph but returns the raw node
// count and edge list (supply order) instead of a graph. Useful for exporting
// fixtures or for feeding the same edges into several graphs.
func BuildEdges(bopts []BuilderOption, cons ...Constructor) (int, []core.Edge, error) {
	cfg := newBuilderConfig(bopts...)
	el := newEdgeList()

	for i, fn := range cons {
		if fn == nil {
			return 0, nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(el, cfg); err != nil {
			return 0, nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return el.n, el.edges, nil
}
