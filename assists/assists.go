// Package assists implements gravity-assist (flyby) geometry.
package assists

import "math"

// GATurnAngle returns the hyperbolic turn angle (radians) of a gravity
// assist flyby given the hyperbolic excess speed vInf (km/s), the periapsis
// radius rP (km) of the flyby hyperbola, and the flyby body's
// gravitational parameter mu.
func GATurnAngle(vInf, rP, mu float64) float64 {
	rho := math.Acos(1 / (1 + vInf*vInf*(rP/mu)))
	return math.Pi - 2*rho
}

// MinPeriapsisForTurn solves the inverse problem: given a desired turn
// angle and hyperbolic excess speed, what periapsis radius produces it.
func MinPeriapsisForTurn(vInf, turnAngle, mu float64) float64 {
	rho := (math.Pi - turnAngle) / 2
	return (1/math.Cos(rho) - 1) * mu / (vInf * vInf)
}

// VInfOut returns the post-flyby heliocentric velocity vector given the
// incoming heliocentric velocity vIn, the flyby body's heliocentric
// velocity vBody, and the turn angle applied within the body-centered
// hyperbola, rotated about the specified unit normal axis (the flyby
// plane's normal, typically the orbital angular momentum direction of the
// incoming hyperbola).
func VInfOut(vIn, vBody, axis [3]float64, turnAngle float64) [3]float64 {
	vInfIn := [3]float64{vIn[0] - vBody[0], vIn[1] - vBody[1], vIn[2] - vBody[2]}
	rotated := rotateAboutAxis(vInfIn, axis, turnAngle)
	return [3]float64{rotated[0] + vBody[0], rotated[1] + vBody[1], rotated[2] + vBody[2]}
}

func rotateAboutAxis(v, axis [3]float64, angle float64) [3]float64 {
	n := normalize(axis)
	s, c := math.Sincos(angle)
	dot := v[0]*n[0] + v[1]*n[1] + v[2]*n[2]
	cross := [3]float64{
		n[1]*v[2] - n[2]*v[1],
		n[2]*v[0] - n[0]*v[2],
		n[0]*v[1] - n[1]*v[0],
	}
	return [3]float64{
		v[0]*c + cross[0]*s + n[0]*dot*(1-c),
		v[1]*c + cross[1]*s + n[1]*dot*(1-c),
		v[2]*c + cross[2]*s + n[2]*dot*(1-c),
	}
}

func normalize(v [3]float64) [3]float64 {
	n := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if n == 0 {
		return v
	}
	return [3]float64{v[0] / n, v[1] / n, v[2] / n}
}
