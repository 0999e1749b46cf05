// Package geo implements great-circle distance and the nearby-product filter.
// Everything here is pure: no I/O, deterministic for fixed inputs.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	// EarthRadiusKm is the mean Earth radius used for distances.
	EarthRadiusKm = 6371.0
	// DefaultRadiusKm is the geofence applied when the caller gives none.
	DefaultRadiusKm = 5.0
)

// DistanceKm returns the haversine distance in kilometers between a and b.
// Points are orb points, longitude first.
func DistanceKm(a, b orb.Point) float64 {
	lat1 := degToRad(a.Lat())
	lat2 := degToRad(b.Lat())
	dLat := lat2 - lat1
	dLng := degToRad(b.Lon() - a.Lon())

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// Rounding can push h a hair above 1 for antipodal points.
	h = math.Min(1, h)

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}
