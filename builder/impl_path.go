// SPDX-License-Identifier: MIT
// Package: parprim/builder
//
// impl_path.go - Path(n) and Nodes(n) constructors.
//
// Contract:
//   - Path: n ≥ 2 (else ErrTooFewVertices); edges (i-1)-i for i=1..n-1 in order.
//   - Nodes: n ≥ 0; adds isolated nodes only.
//   - Weight policy: cfg.weightFn(cfg.rng) per emitted edge.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

// Path returns a Constructor that emits the simple path P_n.
func Path(n int) Constructor {
	return func(el *edgeList, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		el.grow(n)
		for i := 1; i < n; i++ {
			el.add(i-1, i, cfg.weight())
		}

		return nil
	}
}

// Nodes returns a Constructor that makes sure nodes 0..n-1 exist without
// adding edges. Combined with other constructors it yields isolated nodes,
// i.e. disconnected fixtures.
func Nodes(n int) Constructor {
	return func(el *edgeList, _ builderConfig) error {
		if n < 0 {
			return fmt.Errorf("%s: n=%d < 0: %w", MethodNodes, n, ErrTooFewVertices)
		}
		el.grow(n)

		return nil
	}
}
