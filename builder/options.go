// SPDX-License-Identifier: MIT
// Package: trafficgraph/builder
//
// options.go — functional options for the fixture constructors.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/trafficgraph/geo"
)

// BuilderOption customizes fixture construction by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithCenter sets the ring center.
// Panics on coordinates outside [-90,90] × [-180,180].
func WithCenter(lat, lon float64) BuilderOption {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		panic("builder: WithCenter out of range")
	}

	return func(c *builderConfig) {
		c.center = geo.Point{Lat: lat, Lon: lon}
	}
}

// WithRadiusKm sets the ring radius. Panics if r is not a positive number.
func WithRadiusKm(r float64) BuilderOption {
	if !(r > 0) || math.IsInf(r, 0) {
		panic("builder: WithRadiusKm(r<=0)")
	}

	return func(c *builderConfig) {
		c.radiusKm = r
	}
}

// WithNamePrefix sets the vertex name prefix; vertices are named
// prefix+storeIndex. Empty means "use the store default name".
func WithNamePrefix(p string) BuilderOption {
	return func(c *builderConfig) {
		c.namePrefix = p
	}
}

// WithRand provides an explicit RNG for stochastic weight functions.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the Haversine weight with explicit weights.
// Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
