// SPDX-License-Identifier: MIT

// Package builder: edge-weight generators for fixtures.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is returned by stochastic generators when no RNG is set.
const DefaultEdgeWeight = 1.0

// WeightFn produces an edge weight in kilometers given an optional RNG.
// It must be deterministic for a given RNG seed and return a positive value.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value <= 0.
func ConstantWeightFn(value float64) WeightFn {
	if !(value > 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be > 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max),
// rounded to two decimals like map-derived weights.
// Panics if min <= 0 or max < min.
// If rng is nil, yields DefaultEdgeWeight.
func UniformWeightFn(min, max float64) WeightFn {
	if !(min > 0) || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 < min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}
		w := math.Round((min+rng.Float64()*(max-min))*100) / 100
		if w < min {
			return min
		}

		return w
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
