package body

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonposition"
)

// Per spec.md §1 Non-goals ("photorealistic ephemerides ... the core uses
// analytic stand-ins"), third-body positions are low-fidelity closed-form
// approximations rather than a loaded ephemeris file — the core must not
// perform file I/O (spec.md §5). Moon uses the meeus/v3 truncated
// ELP2000-82B series (self-contained, no data file); Sun uses a short
// Keplerian series for Earth's heliocentric orbit (same coefficients the
// teacher repo's non-VSOP87 fallback uses), negated to give the Sun's
// geocentric position.

const obliquityJ2000 = 23.43929111 * math.Pi / 180

// MoonGeocentric returns the Moon's geocentric equatorial position in km at
// time t, via the meeus/v3 lunar theory (Chapter 47).
func MoonGeocentric(t time.Time) [3]float64 {
	jde := julian.TimeToJD(t)
	lon, lat, delta := moonposition.Position(jde)
	return eclipticToEquatorialCartesian(lon.Rad(), lat.Rad(), delta)
}

// SunGeocentric returns the Sun's geocentric equatorial position in km at
// time t, derived from Earth's low-precision heliocentric Keplerian series.
func SunGeocentric(t time.Time) [3]float64 {
	r, _ := earthHeliocentricRV(t)
	return [3]float64{-r[0], -r[1], -r[2]}
}

func eclipticToEquatorialCartesian(lon, lat, r float64) [3]float64 {
	sl, cl := math.Sincos(lon)
	sb, cb := math.Sincos(lat)
	xEcl := r * cb * cl
	yEcl := r * cb * sl
	zEcl := r * sb
	se, ce := math.Sincos(obliquityJ2000)
	return [3]float64{
		xEcl,
		ce*yEcl - se*zEcl,
		se*yEcl + ce*zEcl,
	}
}

// earthHeliocentricRV returns Earth's heliocentric equatorial position (km)
// and velocity (km/s) at time t, from a short Keplerian series (VSOP87
// first-order truncation), matching the teacher's analytic fallback.
func earthHeliocentricRV(t time.Time) (r, v [3]float64) {
	jd := julian.TimeToJD(t)
	T := (jd - 2451545.0) / 36525.0
	tVec := [4]float64{1, T, T * T, T * T * T}
	poly := func(c [4]float64) float64 {
		return c[0]*tVec[0] + c[1]*tVec[1] + c[2]*tVec[2] + c[3]*tVec[3]
	}
	deg2rad := math.Pi / 180
	L := poly([4]float64{100.466449, 35999.3728519, -0.00000568, 0.0}) * deg2rad
	a := poly([4]float64{1.000001018, 0, 0, 0}) * AU
	e := poly([4]float64{0.01670862, -0.000042037, -0.0000001236, 0.00000000004})
	incl := poly([4]float64{0.0, 0.0130546, -0.00000931, -0.000000034}) * deg2rad
	W := poly([4]float64{174.873174, -0.2410908, 0.00004067, -0.000001327}) * deg2rad
	P := poly([4]float64{102.937348, 0.3225557, 0.00015026, 0.000000478}) * deg2rad
	w := P - W
	M := L - P
	e2, e3, e4, e5 := e*e, e*e*e, e*e*e*e, e*e*e*e*e
	sinM, sin2M, sin3M, sin4M, sin5M := math.Sin(M), math.Sin(2*M), math.Sin(3*M), math.Sin(4*M), math.Sin(5*M)
	centerEq := (2*e-e3/4+5./96*e5)*sinM + (5./4*e2-11./24*e4)*sin2M + (13./12*e3-43./64*e5)*sin3M + 103./96*e4*sin4M + 1097./960*e5*sin5M
	nu := M + centerEq
	rEcl, vEcl := keplerianToCartesian(a, e, incl, W, w, nu, MuSun)
	se, ce := math.Sincos(obliquityJ2000)
	toEq := func(p [3]float64) [3]float64 {
		return [3]float64{p[0], ce*p[1] - se*p[2], se*p[1] + ce*p[2]}
	}
	return toEq(rEcl), toEq(vEcl)
}

// keplerianToCartesian implements Vallado's COE2RV, returning position and
// velocity in the reference frame the elements are given in (ecliptic for
// the Earth series above), for the purely analytic third-body
// ephemeris above (this is a free function, independent of solve.Elements,
// to keep the body package free of an import cycle on solve).
func keplerianToCartesian(a, e, i, raan, argp, nu, mu float64) (r, v [3]float64) {
	p := a * (1 - e*e)
	sinNu, cosNu := math.Sincos(nu)
	rNorm := p / (1 + e*cosNu)
	rPQW := [3]float64{rNorm * cosNu, rNorm * sinNu, 0}
	muOverP := math.Sqrt(mu / p)
	vPQW := [3]float64{-muOverP * sinNu, muOverP * (e + cosNu), 0}
	rot := perifocalRotation(raan, i, argp)
	return rot(rPQW), rot(vPQW)
}

// perifocalRotation returns a function applying the 3-1-3 Euler rotation
// (RAAN, inclination, argument of periapsis) from the perifocal frame to
// the inertial frame the elements are referred to.
func perifocalRotation(raan, incl, argp float64) func([3]float64) [3]float64 {
	sO, cO := math.Sincos(raan)
	si, ci := math.Sincos(incl)
	sw, cw := math.Sincos(argp)
	r11 := cO*cw - sO*sw*ci
	r12 := -cO*sw - sO*cw*ci
	r21 := sO*cw + cO*sw*ci
	r22 := -sO*sw + cO*cw*ci
	r31 := sw * si
	r32 := cw * si
	return func(p [3]float64) [3]float64 {
		return [3]float64{
			r11*p[0] + r12*p[1],
			r21*p[0] + r22*p[1],
			r31*p[0] + r32*p[1],
		}
	}
}
