package integrate

import "github.com/kallah94/space-missions/state"

// Euler is the explicit first-order Euler integrator: y + dt·f(y,t). Local
// error is O(dt²); it is the cheapest integrator and the least accurate,
// useful mostly as a baseline in the validation harness.
type Euler struct{}

// Name implements Integrator.
func (Euler) Name() string { return "euler" }

// Step implements Integrator.
func (Euler) Step(s state.Vector, f Derivative, dt float64) state.Vector {
	d := f(s)
	return state.AddScaled(s, d, dt)
}
