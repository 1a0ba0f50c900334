// SPDX-License-Identifier: MIT
// Package: trafficgraph/builder
//
// impl_cycle.go — implementation of Cycle(n) fixture.
//
// Contract:
//   • n ≥ 3 (else ErrBadSize).
//   • Places n vertices on the ring in ascending index order.
//   • Emits edges in stable order i -> (i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/trafficgraph/store"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(s *store.Store, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrBadSize)
		}

		ids, err := addRing(methodCycle, s, cfg, n)
		if err != nil {
			return err
		}

		// i==n-1 closes the ring back to 0.
		for i := 0; i < n; i++ {
			if err = connect(methodCycle, s, cfg, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
