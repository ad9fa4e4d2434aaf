// SPDX-License-Identifier: MIT
// Package: parprim/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits every unordered pair i<j, i asc then j asc.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import "fmt"

// Complete returns a Constructor that emits the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(el *edgeList, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		el.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				el.add(i, j, cfg.weight())
			}
		}

		return nil
	}
}
