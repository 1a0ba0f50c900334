// SPDX-License-Identifier: MIT
// Package geometry resolves the drawable shape of an edge: the road path
// between two intersections.
//
// Resolution never fails. When the road network cannot be consulted the
// resolver degrades to the straight segment between the endpoints, so
// rendering code always has something to draw. Algorithms never call this
// package; edge weights stay great-circle distances.
package geometry

import (
	"context"
	"fmt"

	"github.com/katalvlaran/trafficgraph/geo"
)

// Resolver returns the polyline from a to b, endpoints included.
type Resolver interface {
	ResolvePath(ctx context.Context, a, b geo.Point) []geo.Point
}

// Outcome labels one lookup.
type Outcome string

// Lookup outcomes.
const (
	OutcomeCacheHit Outcome = "cache_hit"
	OutcomeResolved Outcome = "resolved"
	OutcomeFallback Outcome = "fallback"
)

// Observer is notified of every lookup.
type Observer interface {
	GeometryLookup(outcome Outcome)
}

type nopObserver struct{}

func (nopObserver) GeometryLookup(Outcome) {}

// Straight resolves every pair to its straight segment.
type Straight struct{}

// ResolvePath returns [a, b].
func (Straight) ResolvePath(_ context.Context, a, b geo.Point) []geo.Point {
	return []geo.Point{a, b}
}

// cacheKey rounds both endpoints to four decimals (about 11 m).
func cacheKey(a, b geo.Point) string {
	return fmt.Sprintf("%.4f,%.4f_%.4f,%.4f", a.Lat, a.Lon, b.Lat, b.Lon)
}
