// Package geo computes great-circle distances on a spherical earth.
package geo

import (
	"math"

	"github.com/muhammadheryan/resource-matcher/model"
)

// EarthRadiusMeters is the mean earth radius.
const EarthRadiusMeters = 6371008.8

// Distance returns the haversine distance in meters between a and b.
func Distance(a, b model.Coordinates) float64 {
	if a == b {
		return 0
	}

	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLat := lat2 - lat1
	dLng := radians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	// rounding can push h just outside [0, 1] for antipodal points
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h))
}

// Within reports whether b lies within radiusMeters of a, boundary included.
func Within(a, b model.Coordinates, radiusMeters float64) bool {
	return Distance(a, b) <= radiusMeters
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
