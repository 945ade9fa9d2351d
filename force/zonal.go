package force

import (
	"math"

	"github.com/kallah94/space-missions/state"
)

// J2 is the oblateness perturbation due to the central body's second zonal
// harmonic, in the Cartesian inertial frame (grounded on the classic
// Vallado Cartesian J2 acceleration).
type J2 struct {
	Mu     float64
	Radius float64
	J2     float64
}

func (j J2) Name() string { return "j2" }

// j2CutoffAltitude is the altitude (km) above which oblateness is too weak
// relative to the other perturbations to bother computing.
const j2CutoffAltitude = 100000

// Applicable reports whether the spacecraft is low enough for J2 to matter.
func (j J2) Applicable(p, _ [3]float64, _ float64) bool {
	return state.Norm(p)-j.Radius <= j2CutoffAltitude
}

func (j J2) Acceleration(s state.Vector, _ float64) [3]float64 {
	r := s.Position
	rNorm := state.Norm(r)
	z2 := r[2] * r[2]
	r2 := rNorm * rNorm
	factor := -1.5 * j.J2 * j.Mu * j.Radius * j.Radius / math.Pow(rNorm, 5)
	return [3]float64{
		factor * r[0] * (1 - 5*z2/r2),
		factor * r[1] * (1 - 5*z2/r2),
		factor * r[2] * (3 - 5*z2/r2),
	}
}

// J3J4 adds the third and fourth zonal harmonics, each independently
// toggleable (set the unused coefficient to zero to model J3-only or
// J4-only perturbations).
type J3J4 struct {
	Mu     float64
	Radius float64
	J3, J4 float64
}

func (j J3J4) Name() string { return "j3j4" }

// j3j4CutoffAltitude is the altitude (km) above which the third/fourth
// zonal harmonics are negligible.
const j3j4CutoffAltitude = 50000

// Applicable reports whether the spacecraft is low enough for J3/J4 to
// matter.
func (j J3J4) Applicable(p, _ [3]float64, _ float64) bool {
	return state.Norm(p)-j.Radius <= j3j4CutoffAltitude
}

func (j J3J4) Acceleration(s state.Vector, _ float64) [3]float64 {
	r := s.Position
	x, y, z := r[0], r[1], r[2]
	rNorm := state.Norm(r)
	r2 := rNorm * rNorm
	var acc [3]float64

	if j.J3 != 0 {
		c := -2.5 * j.J3 * j.Mu * math.Pow(j.Radius, 3) / math.Pow(rNorm, 7)
		zr2 := z * z / r2
		acc[0] += c * x * (3*z - 7*z*z*z/r2)
		acc[1] += c * y * (3*z - 7*z*z*z/r2)
		acc[2] += c * (6*z*z - 7*z*z*zr2 - 0.6*r2)
	}

	if j.J4 != 0 {
		c := 1.875 * j.J4 * j.Mu * math.Pow(j.Radius, 4) / math.Pow(rNorm, 7)
		z2 := z * z
		z4 := z2 * z2
		term := 1 - 14*z2/r2 + 21*z4/(r2*r2)
		acc[0] += c * x * term
		acc[1] += c * y * term
		acc[2] += c * z * (5 - 70*z2/(3*r2) + 21*z4/(r2*r2))
	}

	return acc
}
