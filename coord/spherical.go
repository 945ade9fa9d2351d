package coord

import (
	"math"

	"github.com/kallah94/space-missions/state"
)

// Spherical2Cartesian converts (radius, polar angle from +Z, azimuth) to
// Cartesian coordinates, matching the teacher's math.go convention.
func Spherical2Cartesian(r, theta, phi float64) [3]float64 {
	sTheta, cTheta := math.Sincos(theta)
	sPhi, cPhi := math.Sincos(phi)
	return [3]float64{r * sTheta * cPhi, r * sTheta * sPhi, r * cTheta}
}

// Cartesian2Spherical converts a Cartesian vector to (radius, polar angle
// from +Z, azimuth). Returns the zero vector if a is the zero vector.
func Cartesian2Spherical(a [3]float64) (r, theta, phi float64) {
	r = state.Norm(a)
	if r == 0 {
		return 0, 0, 0
	}
	theta = math.Acos(a[2] / r)
	phi = math.Atan2(a[1], a[0])
	return r, theta, phi
}

// GeodeticHaversine returns the great-circle surface distance (km) between
// two geodetic points given as (lat, lon) in radians, using the mean Earth
// radius.
func GeodeticHaversine(lat1, lon1, lat2, lon2 float64) float64 {
	const meanRadius = 6371.0
	dLat := lat2 - lat1
	dLon := lon2 - lon1
	sinDLat2 := math.Sin(dLat / 2)
	sinDLon2 := math.Sin(dLon / 2)
	a := sinDLat2*sinDLat2 + math.Cos(lat1)*math.Cos(lat2)*sinDLon2*sinDLon2
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return meanRadius * c
}
