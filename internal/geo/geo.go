package geo

import "math"

// Earth's mean radius in meters.
const earthRadiusM = 6371000

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DistanceM returns the great-circle distance between two points in meters
// using the haversine formula.
func DistanceM(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lng1 := a.Lng * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	lng2 := b.Lng * math.Pi / 180

	dlat := lat2 - lat1
	dlng := lng2 - lng1

	h := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlng/2)*math.Sin(dlng/2)
	return 2 * earthRadiusM * math.Asin(math.Sqrt(h))
}

// Interpolate returns the point a fraction of the way from a to b, with
// latitude and longitude interpolated independently. Good enough for
// short-to-medium legs; not geodesically exact.
func Interpolate(a, b Point, ratio float64) Point {
	return Point{
		Lat: a.Lat + (b.Lat-a.Lat)*ratio,
		Lng: a.Lng + (b.Lng-a.Lng)*ratio,
	}
}

// RoutePosition returns how far along the start->end line a stop sits, as
// distance-from-start over direct distance. Coincident start and end map
// every stop to 0.
func RoutePosition(start, end, stop Point) float64 {
	direct := DistanceM(start, end)
	if direct == 0 {
		return 0
	}
	return DistanceM(start, stop) / direct
}
