// SPDX-License-Identifier: MIT

package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/trafficgraph/geo"
)

func TestHaversine_ZeroForSamePoint(t *testing.T) {
	assert.Zero(t, geo.Haversine(10.7769, 106.7009, 10.7769, 106.7009))
}

func TestHaversine_OneDegreeLatitude(t *testing.T) {
	// One degree of latitude on a 6371 km sphere is ~111.195 km.
	d := geo.Haversine(0, 0, 1, 0)
	assert.InDelta(t, 111194.9, d, 1.0)
}

func TestHaversine_Symmetric(t *testing.T) {
	a := geo.Point{Lat: 10.7769, Lon: 106.7009} // Ben Thanh area
	b := geo.Point{Lat: 10.8231, Lon: 106.6297} // Tan Binh area
	assert.InDelta(t, geo.Distance(a, b), geo.Distance(b, a), 1e-9)
}

func TestEdgeWeightKm_RoundsToTwoDecimals(t *testing.T) {
	w := geo.EdgeWeightKm(geo.Point{Lat: 0, Lon: 0}, geo.Point{Lat: 1, Lon: 0})
	assert.Equal(t, 111.19, w)
}

func TestEdgeWeightKm_ClampsCoincidentPoints(t *testing.T) {
	p := geo.Point{Lat: 10.7769, Lon: 106.7009}
	assert.Equal(t, geo.MinEdgeWeightKm, geo.EdgeWeightKm(p, p))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 1.24, geo.Round(1.235, 2))
	assert.Equal(t, 2.0, geo.Round(1.999, 2))
	assert.Equal(t, -0.5, geo.Round(-0.45, 1))
}
