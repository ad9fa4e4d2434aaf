// SPDX-License-Identifier: MIT
// Package: parprim/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Center is node StarCenter (0); emits 0-i for i=1..n-1 in order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

// Star returns a Constructor that emits a star with n-1 leaves around node 0.
func Star(n int) Constructor {
	return func(el *edgeList, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		el.grow(n)
		for i := 1; i < n; i++ {
			el.add(StarCenter, i, cfg.weight())
		}

		return nil
	}
}
