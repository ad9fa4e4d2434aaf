// SPDX-License-Identifier: MIT
// Package: parprim/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil                 (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn     (constant DefaultEdgeWeight)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for every emitted edge.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (cfg builderConfig) weight() int64 {
	return cfg.weightFn(cfg.rng)
}
