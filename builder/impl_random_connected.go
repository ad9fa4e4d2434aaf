// SPDX-License-Identifier: MIT
// Package: parprim/builder
//
// impl_random_connected.go - implementation of RandomConnected(n, extra).
//
// Model:
//  1. Random recursive tree: node i (i=1..n-1) attaches to a uniformly drawn
//     node in 0..i-1. This guarantees connectivity with exactly n-1 edges.
//  2. extra additional edges between uniformly drawn non-adjacent pairs.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ extra ≤ n(n-1)/2 - (n-1) (else ErrTooManyEdges).
//   - cfg.rng required (else ErrNeedRandSource).
//   - Rejection sampling is bounded; exhausting it yields ErrConstructFailed.
//
// Complexity: O(n + extra) expected draws.

package builder

import "fmt"

// RandomConnected returns a Constructor that emits a connected random graph
// with n nodes and n-1+extra edges.
func RandomConnected(n, extra int) Constructor {
	return func(el *edgeList, cfg builderConfig) error {
		if n < MinRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomConnected, n, MinRandomNodes, ErrTooFewVertices)
		}
		free := n*(n-1)/2 - (n - 1)
		if extra < 0 || extra > free {
			return fmt.Errorf("%s: extra=%d not in [0,%d]: %w", MethodRandomConnected, extra, free, ErrTooManyEdges)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomConnected, ErrNeedRandSource)
		}

		el.grow(n)

		// 1) Spanning tree.
		for i := 1; i < n; i++ {
			el.add(cfg.rng.Intn(i), i, cfg.weight())
		}

		// 2) Extra edges by bounded rejection sampling.
		budget := maxSampleAttemptsPerEdge * (extra + 1)
		for added := 0; added < extra; {
			if budget == 0 {
				return fmt.Errorf("%s: placed %d of %d extra edges: %w",
					MethodRandomConnected, added, extra, ErrConstructFailed)
			}
			budget--
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if u == v || el.has(u, v) {
				continue
			}
			el.add(u, v, cfg.weight())
			added++
		}

		return nil
	}
}
