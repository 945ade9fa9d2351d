package coord

import (
	"math"

	"github.com/kallah94/space-missions/state"
)

// RangeElAz returns the topocentric range vector (SEZ frame, km), range
// magnitude, elevation and azimuth (radians) of an ECEF target position as
// seen from a ground station at ECEF position siteECEF. Grounded on the
// teacher's station.go RangeElAz, generalized to radians (the spec's angle
// unit convention) instead of degrees.
func RangeElAz(siteECEF, targetECEF [3]float64) (rhoSEZ [3]float64, rho, el, az float64) {
	lat, lon, _ := ECEF2Geodetic(siteECEF)
	diff := state.Sub(targetECEF, siteECEF)
	rho = state.Norm(diff)
	rSEZ := MxV33(R3(lon), diff)
	rSEZ = MxV33(R2(math.Pi/2-lat), rSEZ)
	el = math.Asin(rSEZ[2] / rho)
	az = math.Mod(2*math.Pi+math.Atan2(rSEZ[1], -rSEZ[0]), 2*math.Pi)
	return rSEZ, rho, el, az
}

// ENU converts an ECEF offset vector into the local East-North-Up frame
// centered at geodetic latitude/longitude lat, lon (radians).
func ENU(offsetECEF [3]float64, lat, lon float64) [3]float64 {
	sLat, cLat := math.Sincos(lat)
	sLon, cLon := math.Sincos(lon)
	e := -sLon*offsetECEF[0] + cLon*offsetECEF[1]
	n := -sLat*cLon*offsetECEF[0] - sLat*sLon*offsetECEF[1] + cLat*offsetECEF[2]
	u := cLat*cLon*offsetECEF[0] + cLat*sLon*offsetECEF[1] + sLat*offsetECEF[2]
	return [3]float64{e, n, u}
}

// LVLH returns the rotation from an inertial frame into the Local
// Vertical-Local Horizontal frame (radial, along-track, cross-track; also
// called RSW) defined by a spacecraft's position and velocity: the radial
// unit vector points away from the central body, the cross-track vector is
// along the orbit normal, and the along-track vector completes the
// right-handed triad.
func LVLH(r, v [3]float64) (radial, alongTrack, crossTrack [3]float64) {
	radial = state.Unit(r)
	h := state.Cross(r, v)
	crossTrack = state.Unit(h)
	alongTrack = state.Cross(crossTrack, radial)
	return radial, alongTrack, crossTrack
}

// ToLVLH expresses an inertial vector in the LVLH frame defined by r, v.
func ToLVLH(vec, r, v [3]float64) [3]float64 {
	radial, along, cross := LVLH(r, v)
	return [3]float64{
		state.Dot(vec, radial),
		state.Dot(vec, along),
		state.Dot(vec, cross),
	}
}

// FromLVLH is the inverse of ToLVLH: it expresses an LVLH-frame vector
// (radial, along-track, cross-track components) back in the inertial frame
// defined by r, v.
func FromLVLH(lvlhVec, r, v [3]float64) [3]float64 {
	radial, along, cross := LVLH(r, v)
	out := [3]float64{}
	for i := 0; i < 3; i++ {
		out[i] = lvlhVec[0]*radial[i] + lvlhVec[1]*along[i] + lvlhVec[2]*cross[i]
	}
	return out
}
