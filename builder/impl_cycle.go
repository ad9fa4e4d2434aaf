// SPDX-License-Identifier: MIT
// Package: parprim/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits i-(i+1)%n for i=0..n-1; the closing edge (n-1)-0 comes last.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

// Cycle returns a Constructor that emits the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(el *edgeList, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		el.grow(n)
		for i := 0; i < n; i++ {
			el.add(i, (i+1)%n, cfg.weight())
		}

		return nil
	}
}
