// SPDX-License-Identifier: MIT
// Package: parprim/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model: Erdős–Rényi-like; each unordered pair {i,j}, i<j, is included
// independently with probability p. The result may be disconnected.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity: O(n²) Bernoulli trials.
//
// Determinism: fixed trial order (i asc, j asc) ⇒ identical output per seed.

package builder

import "fmt"

// RandomSparse returns a Constructor that samples a random graph over n nodes
// with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(el *edgeList, cfg builderConfig) error {
		// 1) Validate parameters early.
		if n < MinRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomSparse, n, MinRandomNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		// 2) Nodes first, then trials in stable order.
		el.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == MinProbability:
					continue
				case p == MaxProbability:
				case cfg.rng.Float64() >= p:
					continue
				}
				el.add(i, j, cfg.weight())
			}
		}

		return nil
	}
}
