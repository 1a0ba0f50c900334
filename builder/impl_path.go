// SPDX-License-Identifier: MIT
// Package: trafficgraph/builder
//
// impl_path.go — implementation of Path(n) fixture.
//
// Contract:
//   • n ≥ 2 (else ErrBadSize).
//   • Places n vertices on the ring; emits i -> i+1 for i=0..n-2.

package builder

import (
	"fmt"

	"github.com/katalvlaran/trafficgraph/store"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(s *store.Store, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrBadSize)
		}

		// n+1 ring slots keep the two ends apart.
		ids := make([]string, n)
		for i := 0; i < n; i++ {
			p := cfg.ringPoint(i, n+1)
			id, err := addVertex(methodPath, s, cfg, p.Lat, p.Lon, "")
			if err != nil {
				return err
			}
			ids[i] = id
		}

		for i := 0; i+1 < n; i++ {
			if err := connect(methodPath, s, cfg, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
