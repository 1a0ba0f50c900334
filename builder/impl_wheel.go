// SPDX-License-Identifier: MIT
// Package: trafficgraph/builder
//
// impl_wheel.go — implementation of Wheel(n) fixture.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + "Center", i.e., a cycle of size (n-1) plus a hub vertex.
//   • Therefore, n ≥ 4.
//
// Contract:
//   • Builds the rim with Cycle(n-1), then adds "Center" at the ring center.
//   • Emits spokes Center -> rim vertex in rim order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/trafficgraph/store"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // outer cycle has size (n-1) which must be ≥ 3
)

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + "Center".
func Wheel(n int) Constructor {
	return func(s *store.Store, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrBadSize)
		}

		first := s.Len()
		if err := Cycle(n-1)(s, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		rim := make([]string, 0, n-1)
		for i := first; i < first+n-1; i++ {
			v, err := s.At(i)
			if err != nil {
				return fmt.Errorf("%s: rim %d: %w: %w", methodWheel, i, ErrConstructFailed, err)
			}
			rim = append(rim, v.ID)
		}

		hub, err := addVertex(methodWheel, s, cfg, cfg.center.Lat, cfg.center.Lon, CenterVertexName)
		if err != nil {
			return err
		}
		for _, r := range rim {
			if err = connect(methodWheel, s, cfg, hub, r); err != nil {
				return err
			}
		}

		return nil
	}
}
