// SPDX-License-Identifier: MIT
// Package: trafficgraph/builder
//
// impl_star.go — implementation of Star(n) fixture.
//
// Contract:
//   • n ≥ 2 (else ErrBadSize).
//   • Adds the hub "Center" at the ring center first, then n-1 leaves on
//     the ring; emits Center -> leaf in leaf order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/trafficgraph/store"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with a hub and n-1 leaves.
func Star(n int) Constructor {
	return func(s *store.Store, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrBadSize)
		}

		hub, err := addVertex(methodStar, s, cfg, cfg.center.Lat, cfg.center.Lon, CenterVertexName)
		if err != nil {
			return err
		}
		leaves, err := addRing(methodStar, s, cfg, n-1)
		if err != nil {
			return err
		}

		for _, leaf := range leaves {
			if err = connect(methodStar, s, cfg, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
