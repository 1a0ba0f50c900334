// SPDX-License-Identifier: MIT
// Package: trafficgraph/builder
//
// impl_complete.go — implementation of Complete(n) fixture.
//
// Contract:
//   • n ≥ 1 (else ErrBadSize).
//   • Places n vertices on the ring in ascending index order.
//   • Emits each unordered pair {i,j} with i<j exactly once.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges.
//   • Space: O(n) for the ID slice.
//
// Determinism:
//   • Pair order: lexicographic by (i,j), i<j.

package builder

import (
	"fmt"

	"github.com/katalvlaran/trafficgraph/store"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(s *store.Store, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrBadSize)
		}

		ids, err := addRing(methodComplete, s, cfg, n)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = connect(methodComplete, s, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
