package integrate

import "github.com/kallah94/space-missions/state"

// RK4 is the classical fourth-order Runge-Kutta integrator: a four-stage
// average with weights 1/6, 1/3, 1/3, 1/6.
type RK4 struct{}

// Name implements Integrator.
func (RK4) Name() string { return "rk4" }

// Step implements Integrator.
func (RK4) Step(s state.Vector, f Derivative, dt float64) state.Vector {
	return rk4Step(s, f, dt)
}

func rk4Step(s state.Vector, f Derivative, dt float64) state.Vector {
	const (
		half     = 0.5
		oneSixth = 1.0 / 6.0
		oneThird = 1.0 / 3.0
	)
	k1 := f(s)
	y2 := state.AddScaled(s, k1, dt*half)
	k2 := f(y2)
	y3 := state.AddScaled(s, k2, dt*half)
	k3 := f(y3)
	y4 := state.AddScaled(s, k3, dt)
	k4 := f(y4)

	sum := state.Vector{Time: s.Time}
	for i := 0; i < 3; i++ {
		sum.Position[i] = oneSixth*(k1.Position[i]+k4.Position[i]) + oneThird*(k2.Position[i]+k3.Position[i])
		sum.Velocity[i] = oneSixth*(k1.Velocity[i]+k4.Velocity[i]) + oneThird*(k2.Velocity[i]+k3.Velocity[i])
	}
	return state.AddScaled(s, sum, dt)
}

// AdaptiveStep implements AdaptiveStepper via Richardson extrapolation: one
// full step is compared against two half-steps; the twin-step (more
// accurate) solution is kept, and the error estimate is
// |full - twin| / 15, the standard RK4 Richardson denominator (2^4 - 1).
func (r RK4) AdaptiveStep(s state.Vector, f Derivative, dt float64) (state.Vector, float64, float64) {
	full := rk4Step(s, f, dt)
	half := rk4Step(s, f, dt/2)
	twin := rk4Step(half, f, dt/2)

	dp := state.Norm(state.Sub(twin.Position, full.Position))
	dv := state.Norm(state.Sub(twin.Velocity, full.Velocity))
	errEst := (dp + dv) / 15
	return twin, dt, errEst
}
