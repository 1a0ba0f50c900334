// SPDX-License-Identifier: MIT
// Package geo provides great-circle distance helpers on WGS-84 coordinates.
//
// All functions are pure: no state, no allocation, no error paths.
//
// Complexity: every function is O(1).
package geo

import "math"

const (
	// EarthRadiusM is the mean Earth radius in meters used by Haversine.
	EarthRadiusM = 6_371_000.0

	// MetersPerKm converts meters to kilometers.
	MetersPerKm = 1000.0

	// MinEdgeWeightKm is the smallest weight an edge may carry after rounding.
	// Coincident points would otherwise produce a zero-weight edge.
	MinEdgeWeightKm = 0.01
)

// Point is a latitude/longitude pair in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Haversine returns the great-circle distance in meters between
// (lat1, lon1) and (lat2, lon2).
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := degToRad(lat1)
	phi2 := degToRad(lat2)
	dPhi := degToRad(lat2 - lat1)
	dLambda := degToRad(lon2 - lon1)

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusM * c
}

// Distance returns the Haversine distance in meters between two points.
func Distance(a, b Point) float64 {
	return Haversine(a.Lat, a.Lon, b.Lat, b.Lon)
}

// EdgeWeightKm converts the distance between two points to kilometers,
// rounded to two decimals and clamped to MinEdgeWeightKm.
func EdgeWeightKm(a, b Point) float64 {
	w := Round(Distance(a, b)/MetersPerKm, 2)
	if w < MinEdgeWeightKm {
		return MinEdgeWeightKm
	}

	return w
}

// Round rounds x half away from zero to the given number of decimals.
func Round(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))

	return math.Round(x*p) / p
}

func degToRad(d float64) float64 { return d * math.Pi / 180 }
