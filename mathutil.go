package noise

import "math"

// lerp linearly interpolates from a to b by t. t outside [0, 1]
// extrapolates.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// latLonToXYZ maps latitude/longitude in degrees to a point on the unit
// sphere. Latitude 0 is the equator, +90 the north pole (positive y).
func latLonToXYZ(lat, lon float64) (x, y, z float64) {
	r := math.Cos(degToRad(lat))
	x = r * math.Cos(degToRad(lon))
	y = math.Sin(degToRad(lat))
	z = r * math.Sin(degToRad(lon))
	return x, y, z
}
