package force

import "github.com/kallah94/space-missions/state"

// ControlLaw picks the unit thrust direction (in the inertial frame) for a
// spacecraft state and elapsed mission time. Concrete laws (e.g. Ruggiero
// Naasz-summed control laws in package solve) implement this to steer a
// Thrust force.
type ControlLaw interface {
	Direction(s state.Vector, t float64) [3]float64
}

// ConstantDirection is a ControlLaw that always points along a fixed
// inertial unit vector (useful for simple station-keeping burns and tests).
type ConstantDirection [3]float64

func (c ConstantDirection) Direction(_ state.Vector, _ float64) [3]float64 {
	return state.Unit(c)
}

// VelocityDirection is a ControlLaw that always points along the current
// velocity vector (prograde burns).
type VelocityDirection struct{ Reverse bool }

func (v VelocityDirection) Direction(s state.Vector, _ float64) [3]float64 {
	d := state.Unit(s.Velocity)
	if v.Reverse {
		return [3]float64{-d[0], -d[1], -d[2]}
	}
	return d
}

// Thrust converts a constant-thrust engine (Newtons, constant specific
// impulse) and a ControlLaw into an acceleration force. Mass is taken from
// the Mass callback; Thrust reports zero acceleration if that mass is
// non-positive.
type Thrust struct {
	ThrustN float64 // Newtons
	Law     ControlLaw
	Mass    func() float64 // current spacecraft mass, kg (allows mass depletion)
}

func (th Thrust) Name() string { return "thrust" }

// Applicable is always true: a commanded burn is never gated by geometry,
// only by the mass check inside Acceleration.
func (th Thrust) Applicable(_, _ [3]float64, _ float64) bool { return true }

func (th Thrust) Acceleration(s state.Vector, t float64) [3]float64 {
	m := th.Mass()
	if m <= 0 {
		return [3]float64{}
	}
	// 1 N = 1e-3 kg*km/s^2 (Newtons are SI kg*m/s^2; convert to km/s^2).
	accMag := (th.ThrustN / 1000) / m
	dir := th.Law.Direction(s, t)
	return [3]float64{accMag * dir[0], accMag * dir[1], accMag * dir[2]}
}

// MassFlowRate returns the propellant mass flow rate (kg/s) for a thruster
// producing thrustN Newtons at the given specific impulse (seconds), via
// the rocket equation's mdot = F/(Isp*g0).
func MassFlowRate(thrustN, ispSeconds float64) float64 {
	const g0 = 9.80665 // m/s^2
	return thrustN / (ispSeconds * g0)
}
