package force

import (
	"math"

	"github.com/kallah94/space-missions/state"
)

// ExponentialDrag is an exponential atmospheric density model (rho =
// rho0*exp(-(h-h0)/H)) combined with the standard drag acceleration
// -0.5*rho*Cd*(A/m)*v_rel*|v_rel|, where v_rel accounts for atmospheric
// co-rotation at the given angular rate.
type ExponentialDrag struct {
	Radius       float64 // central body mean radius, km
	RefAltitude  float64 // h0, km
	RefDensity   float64 // rho0, kg/km^3
	ScaleHeight  float64 // H, km
	Cd           float64
	AreaPerMass  float64 // A/m, km^2/kg
	RotationRate float64 // atmosphere co-rotation rate, rad/s (0 to disable)
}

func (d ExponentialDrag) Name() string { return "exponential-drag" }

// dragCutoffAltitude is the altitude (km) above which the atmosphere is
// negligible and drag is skipped entirely.
const dragCutoffAltitude = 1000

// Applicable reports whether the spacecraft is low enough for drag to be
// worth computing.
func (d ExponentialDrag) Applicable(p, _ [3]float64, _ float64) bool {
	return state.Norm(p)-d.Radius <= dragCutoffAltitude
}

func (d ExponentialDrag) Acceleration(s state.Vector, _ float64) [3]float64 {
	r := s.Position
	altitude := state.Norm(r) - d.Radius
	rho := d.RefDensity * math.Exp(-(altitude-d.RefAltitude)/d.ScaleHeight)

	vAtm := [3]float64{-d.RotationRate * r[1], d.RotationRate * r[0], 0}
	vRel := state.Sub(s.Velocity, vAtm)
	vRelNorm := state.Norm(vRel)

	factor := -0.5 * rho * d.Cd * d.AreaPerMass * vRelNorm
	return [3]float64{factor * vRel[0], factor * vRel[1], factor * vRel[2]}
}
