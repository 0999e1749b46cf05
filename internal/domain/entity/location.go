package entity

import "github.com/paulmach/orb"

// Location is the physical position of a store.
type Location struct {
	StoreID   int64
	Latitude  float64
	Longitude float64
	Address   string
}

// Point returns the location as an orb point (longitude, latitude).
func (l Location) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

// ValidCoordinates reports whether latitude and longitude are within range.
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
