// Package integrate provides the pluggable ODE integrator family: Euler,
// RK4, RKF45, Velocity-Verlet, and a generic adaptive-step wrapper. Every
// integrator is re-entrant given independent states; only VelocityVerlet
// carries mutable per-instance state (the cached prior acceleration) and
// must not be shared across goroutines mid-run.
package integrate

import (
	"fmt"
	"math"

	"github.com/kallah94/space-missions/state"
)

// Derivative is the ODE right-hand side: given a state, it returns a Vector
// whose Position field is the velocity contribution and whose Velocity
// field is the acceleration contribution. It must be pure — no hidden
// mutation of s.
type Derivative func(s state.Vector) state.Vector

// Integrator advances a state by one fixed step.
type Integrator interface {
	Name() string
	Step(s state.Vector, f Derivative, dt float64) state.Vector
}

// AdaptiveStepper is implemented by integrators that carry their own local
// error estimate (RK4 via Richardson extrapolation, RKF45 via its embedded
// lower-order companion). The generic Adaptive wrapper in adaptive.go can
// drive any Integrator, but an integrator implementing this interface
// directly is used preferentially, since its own estimate can be cheaper
// (RKF45's embedded pair needs one step where Richardson extrapolation
// needs three).
type AdaptiveStepper interface {
	Integrator
	// AdaptiveStep returns the accepted state for this attempt, a
	// recommended next step size, and the local error estimate.
	AdaptiveStep(s state.Vector, f Derivative, dt float64) (next state.Vector, nextDt, errEst float64)
}

// Config mirrors the external integrator configuration surface: the method
// name, whether to run adaptively, and the step-size/tolerance bounds used
// by the Adaptive wrapper.
type Config struct {
	Method   string
	Adaptive bool
	MinStep  float64
	MaxStep  float64
	Tol      float64
}

// Integrate drives integ from s0 over duration T using step dt, emitting
// ⌈T/dt⌉+1 states including s0. The final step is clamped so the total
// elapsed time equals T exactly.
func Integrate(integ Integrator, s0 state.Vector, f Derivative, dt, T float64) []state.Vector {
	if dt <= 0 {
		panic(fmt.Errorf("integrate: dt must be positive, got %f", dt))
	}
	n := int(math.Ceil(T / dt))
	out := make([]state.Vector, 0, n+1)
	out = append(out, s0)
	cur := s0
	elapsed := 0.0
	for i := 0; i < n; i++ {
		step := dt
		if elapsed+step > T {
			step = T - elapsed
		}
		if step <= 0 {
			break
		}
		cur = integ.Step(cur, f, step)
		cur.Time = s0.Time + elapsed + step
		elapsed += step
		out = append(out, cur)
	}
	return out
}
