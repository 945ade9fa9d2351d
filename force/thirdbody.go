package force

import "github.com/kallah94/space-missions/state"

// ThirdBody is the indirect+direct third-body perturbing acceleration from
// Battin's formulation: the difference between the acceleration the third
// body exerts on the spacecraft and the acceleration it exerts on the
// central body (the latter shows up as an apparent acceleration in the
// central body's rotating-but-non-rotating inertial frame).
type ThirdBody struct {
	Mu float64
	// Position returns the third body's position relative to the central
	// body, in km, as a function of elapsed mission time (seconds). This
	// keeps ThirdBody decoupled from any particular ephemeris source —
	// body.SunGeocentric / body.MoonGeocentric are natural choices, scaled
	// by time.
	Position func(t float64) [3]float64
	// CentralRadius is the central body's mean radius, km, used only to
	// gate Applicable by altitude.
	CentralRadius float64
}

func (tb ThirdBody) Name() string { return "third-body" }

// thirdBodyCutoffAltitude is the altitude (km) below which the central
// body's own gravity dominates and third-body perturbations are skipped.
const thirdBodyCutoffAltitude = 1000

// Applicable reports whether the spacecraft is far enough out for
// third-body perturbations to matter.
func (tb ThirdBody) Applicable(p, _ [3]float64, _ float64) bool {
	return state.Norm(p)-tb.CentralRadius > thirdBodyCutoffAltitude
}

func (tb ThirdBody) Acceleration(s state.Vector, t float64) [3]float64 {
	rThird := tb.Position(t)
	d := state.Sub(rThird, s.Position)
	dNorm := state.Norm(d)
	sNorm := state.Norm(rThird)

	dFactor := tb.Mu / (dNorm * dNorm * dNorm)
	sFactor := tb.Mu / (sNorm * sNorm * sNorm)

	return [3]float64{
		dFactor*d[0] - sFactor*rThird[0],
		dFactor*d[1] - sFactor*rThird[1],
		dFactor*d[2] - sFactor*rThird[2],
	}
}
