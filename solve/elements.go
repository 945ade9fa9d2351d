package solve

import (
	"math"

	"github.com/kallah94/space-missions/state"
)

// eccentricityEps and angleEps match the teacher's orbit.go degenerate-case
// floors (eccentricityε, angleε): rather than letting a circular or
// equatorial orbit produce NaN angles, clamp the offending quantity to a
// tiny nonzero floor so every downstream angle stays well-defined.
const (
	eccentricityEps = 1e-7
	angleEps        = 1e-7
)

// Elements is a classical (Keplerian) orbital element set, angles in
// radians, matching spec.md's §3 COE representation. TrueLongitude, ArgLat,
// and LongitudeOfPeriapsis are the teacher's degenerate-case substitutes:
// true longitude (for circular equatorial), argument of latitude (for
// circular inclined), and longitude of periapsis (for elliptical equatorial).
type Elements struct {
	A, E, I, RAAN, ArgPeriapsis, TrueAnomaly float64
	TrueLongitude                           float64 // lambda = RAAN+argp+nu
	LongitudeOfPeriapsis                    float64 // tildeOmega = RAAN+argp
	ArgLat                                  float64 // u = argp+nu for circular inclined
}

// StateToElements converts a Cartesian position/velocity pair to classical
// orbital elements, following Vallado's RV2COE algorithm (the same
// derivation as the teacher's Orbit.Elements, generalized to [3]float64).
func StateToElements(r, v [3]float64, mu float64) Elements {
	h := state.Cross(r, v)
	n := state.Cross([3]float64{0, 0, 1}, h)
	vNorm := state.Norm(v)
	rNorm := state.Norm(r)
	energy := vNorm*vNorm/2 - mu/rNorm
	a := -mu / (2 * energy)

	var eVec [3]float64
	for i := 0; i < 3; i++ {
		eVec[i] = ((vNorm*vNorm-mu/rNorm)*r[i] - state.Dot(r, v)*v[i]) / mu
	}
	e := state.Norm(eVec)
	circular := e < eccentricityEps
	if circular {
		e = eccentricityEps
	}

	i := math.Acos(h[2] / state.Norm(h))
	if i < angleEps {
		i = angleEps
	}

	nNorm := state.Norm(n)
	var argp float64
	if nNorm > 1e-12 {
		cosArgp := state.Dot(n, eVec) / (nNorm * e)
		cosArgp = clampUnit(cosArgp)
		argp = math.Acos(cosArgp)
		if eVec[2] < 0 {
			argp = 2*math.Pi - argp
		}
	} else if !circular {
		argp = math.Mod(math.Atan2(eVec[1], eVec[0])*sign(h[2])+2*math.Pi, 2*math.Pi)
	}

	var raan float64
	if nNorm > 1e-12 {
		cosRaan := clampUnit(n[0] / nNorm)
		raan = math.Acos(cosRaan)
		if n[1] < 0 {
			raan = 2*math.Pi - raan
		}
	}

	cosNu := clampUnit(state.Dot(eVec, r) / (e * rNorm))
	nu := math.Acos(cosNu)
	if state.Dot(r, v) < 0 {
		nu = 2*math.Pi - nu
	}
	if circular {
		argp = 0
		if nNorm > 1e-12 {
			nu = math.Acos(clampUnit(state.Dot(n, r) / (nNorm * rNorm)))
			if r[2] < 0 {
				nu = 2*math.Pi - nu
			}
		} else {
			nu = math.Mod(math.Atan2(r[1], r[0])*sign(h[2])+2*math.Pi, 2*math.Pi)
		}
	}

	i = math.Mod(i, 2*math.Pi)
	raan = math.Mod(raan, 2*math.Pi)
	argp = math.Mod(argp, 2*math.Pi)
	nu = math.Mod(nu, 2*math.Pi)

	el := Elements{A: a, E: e, I: i, RAAN: raan, ArgPeriapsis: argp, TrueAnomaly: nu}
	el.TrueLongitude = math.Mod(argp+raan+nu, 2*math.Pi)
	el.LongitudeOfPeriapsis = math.Mod(argp+raan, 2*math.Pi)
	if e <= eccentricityEps {
		if nNorm > 1e-12 {
			cosU := clampUnit(state.Dot(n, r) / (nNorm * rNorm))
			el.ArgLat = math.Acos(cosU)
		}
	} else {
		el.ArgLat = math.Mod(nu+argp, 2*math.Pi)
	}
	return el
}

func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// ElementsToState converts classical orbital elements to Cartesian
// position/velocity, following Vallado's COE2RV algorithm. Degenerate
// cases (circular, equatorial) follow the same substitutions as the
// teacher's NewOrbitFromOE.
func ElementsToState(el Elements, mu float64) (r, v [3]float64) {
	raan, argp, nu := el.RAAN, el.ArgPeriapsis, el.TrueAnomaly
	e, i := el.E, el.I

	if e < eccentricityEps {
		if i < angleEps {
			raan = 0
			argp = 0
			nu = math.Mod(el.TrueLongitude, 2*math.Pi)
		} else {
			argp = 0
			nu = math.Mod(el.ArgLat, 2*math.Pi)
		}
	} else if i < angleEps {
		raan = 0
		argp = math.Mod(el.LongitudeOfPeriapsis, 2*math.Pi)
	}

	p := el.A * (1 - e*e)
	sinNu, cosNu := math.Sincos(nu)
	denom := 1 + e*cosNu
	rNorm := p / denom
	rPQW := [3]float64{rNorm * cosNu, rNorm * sinNu, 0}
	muOverP := math.Sqrt(mu / p)
	vPQW := [3]float64{-muOverP * sinNu, muOverP * (e + cosNu), 0}

	rot := perifocalToInertial(raan, i, argp)
	return rot(rPQW), rot(vPQW)
}

// perifocalToInertial returns the rotation from the perifocal frame to the
// inertial frame via the 3-1-3 (RAAN, inclination, argument of periapsis)
// Euler sequence — Rot313Vec(-argp, -i, -raan, .) in the teacher's
// convention.
func perifocalToInertial(raan, incl, argp float64) func([3]float64) [3]float64 {
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

// OrbitClass classifies an orbit by shape and inclination.
type OrbitClass int

const (
	Circular OrbitClass = iota
	CircularEquatorial
	CircularInclined
	Elliptical
	EllipticalEquatorial
	EllipticalInclined
	Parabolic
	Hyperbolic
)

// ClassifyOrbit classifies an element set's shape/inclination, using the
// same epsilon floors as StateToElements/ElementsToState.
func ClassifyOrbit(el Elements) OrbitClass {
	circular := el.E <= eccentricityEps
	equatorial := el.I <= angleEps
	switch {
	case math.Abs(el.E-1) < eccentricityEps:
		return Parabolic
	case el.E > 1:
		return Hyperbolic
	case circular && equatorial:
		return CircularEquatorial
	case circular:
		return CircularInclined
	case equatorial:
		return EllipticalEquatorial
	default:
		return EllipticalInclined
	}
}

// Period returns the orbital period (seconds) for an elliptical orbit.
func Period(a, mu float64) float64 {
	return 2 * math.Pi * math.Sqrt(math.Pow(a, 3)/mu)
}

// Apoapsis and Periapsis radii.
func Apoapsis(a, e float64) float64  { return a * (1 + e) }
func Periapsis(a, e float64) float64 { return a * (1 - e) }

// Radii2ae returns the semi-major axis and eccentricity from apoapsis and
// periapsis radii, matching the teacher's Radii2ae.
func Radii2ae(rA, rP float64) (a, e float64) {
	a = (rA + rP) / 2
	e = (rA - rP) / (rA + rP)
	return
}
