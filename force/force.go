// Package force implements the composable acceleration models of the
// numerical core: a Force is anything that contributes an acceleration
// (km/s^2) given a spacecraft state and time, and a Model sums any number of
// them into the right-hand side an integrate.Integrator advances.
package force

import "github.com/kallah94/space-missions/state"

// Force computes the acceleration, in km/s^2, contributed at the given
// state and elapsed mission time (seconds since epoch).
type Force interface {
	Name() string
	// Applicable reports whether this force should be evaluated at all for
	// the given position/velocity/time, so a Model can skip negligible
	// contributions (e.g. drag above the sensible-atmosphere altitude)
	// rather than spend a full Acceleration call on them.
	Applicable(p, v [3]float64, t float64) bool
	Acceleration(s state.Vector, t float64) [3]float64
}

// Model composes any number of Forces into a single acceleration field. Its
// Derivative method has the integrate.Derivative signature, so a Model can
// be handed directly to any Integrator.
type Model struct {
	Forces []Force
	// Mass, kg, of the spacecraft the model describes. No force in this
	// package reads it: Thrust takes the current mass from its own Mass
	// callback.
	Mass float64
}

// NewModel returns a Model with the given forces and spacecraft mass (kg).
func NewModel(mass float64, forces ...Force) *Model {
	return &Model{Forces: forces, Mass: mass}
}

// Add appends a force to the model.
func (m *Model) Add(f Force) { m.Forces = append(m.Forces, f) }

// Derivative returns the state derivative (velocity, acceleration) summed
// over every force in the model, suitable for integrate.Integrator.Step.
func (m *Model) Derivative(s state.Vector) state.Vector {
	var acc [3]float64
	for _, f := range m.Forces {
		if !f.Applicable(s.Position, s.Velocity, s.Time) {
			continue
		}
		a := f.Acceleration(s, s.Time)
		acc[0] += a[0]
		acc[1] += a[1]
		acc[2] += a[2]
	}
	return state.Vector{
		Position: s.Velocity,
		Velocity: acc,
		Time:     1,
	}
}
