package geo

import "math"

const earthRadiusMiles = 3959

// Point is a coordinate pair in [longitude, latitude] order.
type Point struct {
	Lng float64
	Lat float64
}

// IsZero reports whether the point was never set.
func (p Point) IsZero() bool {
	return p.Lng == 0 && p.Lat == 0
}

// Distance returns the great-circle distance between a and b in miles,
// rounded to two decimal places.
func Distance(a, b Point) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return Round2(earthRadiusMiles * c)
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
