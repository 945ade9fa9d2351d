package coord

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"

	"github.com/kallah94/space-missions/body"
)

// GMST returns the Greenwich Mean Sidereal Time, in radians, at time t, via
// Vallado's polynomial (in seconds of time, converted here to radians). It
// is the Earth-orientation angle needed to rotate between the
// Earth-Centered Inertial (ECI, J2000-ish mean-equator) and Earth-Centered
// Earth-Fixed (ECEF) frames.
func GMST(t time.Time) float64 {
	jd := julian.TimeToJD(t)
	Tut1 := (jd - 2451545.0) / 36525.0
	secs := 67310.54841 +
		(876600*3600+8640184.812866)*Tut1 +
		0.093104*Tut1*Tut1 -
		6.2e-6*Tut1*Tut1*Tut1
	theta := math.Mod(secs, 86400.0) / 240.0 * math.Pi / 180.0
	theta = math.Mod(theta, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta
}

// ECI2ECEF rotates a position or velocity vector from ECI to ECEF given the
// Greenwich sidereal angle theta (radians). This core does not model polar
// motion or precession/nutation beyond the mean-sidereal-angle rotation, per
// the module's analytic-fidelity scope.
func ECI2ECEF(v [3]float64, theta float64) [3]float64 {
	return MxV33(R3(theta), v)
}

// ECEF2ECI is the inverse of ECI2ECEF.
func ECEF2ECI(v [3]float64, theta float64) [3]float64 {
	return MxV33(R3(-theta), v)
}

// EarthRotationRate is Earth's mean angular velocity, rad/s, reexported here
// for convenience when differentiating ECI2ECEF across time (used to build
// a ground station's ECEF velocity from its fixed position).
const EarthRotationRate = body.OmegaEarth

// GEO2ECEF converts geodetic (altitude km above the reference ellipsoid,
// latitude, longitude in radians) to ECEF Cartesian position in km, using
// the WGS84 oblate-spheroid model (body.Earth's equatorial radius and WGS84
// flattening) plus altitude offset along the local normal (the teacher's
// station-siting model).
func GEO2ECEF(altitude, lat, lon float64) [3]float64 {
	const flattening = 1.0 / 298.257223563
	sinLat, cosLat := math.Sincos(lat)
	sinLon, cosLon := math.Sincos(lon)
	e2 := flattening * (2 - flattening)
	N := body.REarth / math.Sqrt(1-e2*sinLat*sinLat)
	x := (N + altitude) * cosLat * cosLon
	y := (N + altitude) * cosLat * sinLon
	z := (N*(1-e2) + altitude) * sinLat
	return [3]float64{x, y, z}
}

// ECEF2Geodetic converts an ECEF position (km) to geodetic latitude (rad),
// longitude (rad), and altitude (km) above the WGS84-like ellipsoid, via
// Bowring's method (closed-form initial guess, one Newton refinement —
// converges to sub-millimeter accuracy for Earth-orbit-regime radii).
func ECEF2Geodetic(r [3]float64) (lat, lon, alt float64) {
	const flattening = 1.0 / 298.257223563
	a := body.REarth
	e2 := flattening * (2 - flattening)
	ep2 := e2 / (1 - e2)
	b := a * (1 - flattening)

	x, y, z := r[0], r[1], r[2]
	p := math.Hypot(x, y)
	lon = math.Atan2(y, x)

	theta := math.Atan2(z*a, p*b)
	sinT, cosT := math.Sincos(theta)
	lat = math.Atan2(z+ep2*b*sinT*sinT*sinT, p-e2*a*cosT*cosT*cosT)

	sinLat := math.Sin(lat)
	N := a / math.Sqrt(1-e2*sinLat*sinLat)
	if p > 1e-8 {
		alt = p/math.Cos(lat) - N
	} else {
		alt = math.Abs(z) - b
	}
	return lat, lon, alt
}

// SubsatellitePoint returns the geodetic latitude/longitude directly beneath
// an ECEF position (its altitude is discarded).
func SubsatellitePoint(rECEF [3]float64) (lat, lon float64) {
	lat, lon, _ = ECEF2Geodetic(rECEF)
	return lat, lon
}
