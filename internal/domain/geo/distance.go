// Package geo implements the pure geographic computations of the domain:
// great-circle distance and proximity ranking of vet profiles. Nothing in
// this package performs I/O or mutates its inputs, so it is safe to call
// under any concurrency model.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the spherical earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance in kilometers between two
// points using the haversine formula. Points follow the orb convention of
// (longitude, latitude) in degrees.
//
// The function is total: identical points yield 0 and out-of-range
// coordinates produce a mathematically defined (if meaningless) result.
// Callers are responsible for sane inputs.
func DistanceKm(a, b orb.Point) float64 {
	lat1 := radians(a.Lat())
	lat2 := radians(b.Lat())
	dLat := radians(b.Lat() - a.Lat())
	dLon := radians(b.Lon() - a.Lon())

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
