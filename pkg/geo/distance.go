package geo

import (
	"math"

	"github.com/richxcame/mapsclient/pkg/maps"
)

const earthRadiusMeters = 6371000.0

// Distance calculates the great-circle distance in meters between two
// coordinates using the haversine formula.
func Distance(a, b maps.LatLng) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180.0
	dLng := (b.Lng - a.Lng) * math.Pi / 180.0

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180.0)*math.Cos(b.Lat*math.Pi/180.0)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusMeters * c
}

// PathLength sums the distances between consecutive points.
func PathLength(points []maps.LatLng) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += Distance(points[i-1], points[i])
	}
	return total
}
