// SPDX-License-Identifier: MIT
// Package: trafficgraph/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • center     = HCMC center (10.7769, 106.7009)
//   • radiusKm   = 2.0
//   • namePrefix = "P"
//   • rng        = nil   (pure/deterministic unless seeded)
//   • weightFn   = nil   (Haversine weight computed by the store)

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/trafficgraph/geo"
)

// Fixture defaults (named, no magic numbers).
const (
	DefaultCenterLat  = 10.7769
	DefaultCenterLon  = 106.7009
	DefaultRadiusKm   = 2.0
	DefaultNamePrefix = "P"

	// CenterVertexName is the name of the hub vertex in Star and Wheel.
	CenterVertexName = "Center"

	// kmPerDegreeLat is the length of one degree of latitude on the
	// EarthRadiusM sphere.
	kmPerDegreeLat = 111.195
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	center     geo.Point
	radiusKm   float64
	namePrefix string
	rng        *rand.Rand
	weightFn   WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		center:     geo.Point{Lat: DefaultCenterLat, Lon: DefaultCenterLon},
		radiusKm:   DefaultRadiusKm,
		namePrefix: DefaultNamePrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// ringPoint returns the i-th of n points evenly spaced on the configured
// circle, starting due north and turning clockwise.
func (c builderConfig) ringPoint(i, n int) geo.Point {
	theta := 2 * math.Pi * float64(i) / float64(n)
	dLat := c.radiusKm / kmPerDegreeLat * math.Cos(theta)
	dLon := c.radiusKm / (kmPerDegreeLat * math.Cos(c.center.Lat*math.Pi/180)) * math.Sin(theta)

	return geo.Point{Lat: c.center.Lat + dLat, Lon: c.center.Lon + dLon}
}
