package integrate

import "github.com/kallah94/space-missions/state"

// RKF45 is the embedded Runge-Kutta-Fehlberg 4(5) integrator: it produces an
// order-5 solution and an order-4 companion from the same six stages, and
// AdaptiveStep uses their difference as the local error estimate.
type RKF45 struct{}

// Name implements Integrator.
func (RKF45) Name() string { return "rkf45" }

// Step implements Integrator and returns the order-5 solution.
func (RKF45) Step(s state.Vector, f Derivative, dt float64) state.Vector {
	y5, _ := rkf45Stages(s, f, dt)
	return y5
}

// rkf45Stages evaluates the Fehlberg tableau and returns both the 5th-order
// and 4th-order solutions.
func rkf45Stages(s state.Vector, f Derivative, dt float64) (y5, y4 state.Vector) {
	k1 := f(s)

	s2 := state.AddScaled(s, k1, dt*(1.0/4.0))
	k2 := f(s2)

	s3 := combine(s, dt, []float64{3.0 / 32.0, 9.0 / 32.0}, k1, k2)
	k3 := f(s3)

	s4 := combine(s, dt, []float64{1932.0 / 2197.0, -7200.0 / 2197.0, 7296.0 / 2197.0}, k1, k2, k3)
	k4 := f(s4)

	s5 := combine(s, dt, []float64{439.0 / 216.0, -8.0, 3680.0 / 513.0, -845.0 / 4104.0}, k1, k2, k3, k4)
	k5 := f(s5)

	s6 := combine(s, dt, []float64{-8.0 / 27.0, 2.0, -3544.0 / 2565.0, 1859.0 / 4104.0, -11.0 / 40.0}, k1, k2, k3, k4, k5)
	k6 := f(s6)

	y5 = combine(s, dt, []float64{16.0 / 135.0, 0, 6656.0 / 12825.0, 28561.0 / 56430.0, -9.0 / 50.0, 2.0 / 55.0}, k1, k2, k3, k4, k5, k6)
	y4 = combine(s, dt, []float64{25.0 / 216.0, 0, 1408.0 / 2565.0, 2197.0 / 4104.0, -1.0 / 5.0, 0}, k1, k2, k3, k4, k5, k6)
	return
}

// combine returns s + dt·Σ weight_i·k_i.
func combine(s state.Vector, dt float64, weights []float64, ks ...state.Vector) state.Vector {
	acc := state.Vector{Time: s.Time}
	for j, k := range ks {
		w := weights[j]
		for i := 0; i < 3; i++ {
			acc.Position[i] += w * k.Position[i]
			acc.Velocity[i] += w * k.Velocity[i]
		}
	}
	return state.AddScaled(s, acc, dt)
}

// AdaptiveStep implements AdaptiveStepper. Error is the Euclidean norm of
// the difference between the order-5 and order-4 solutions, normalized the
// same way as state.ErrorNorm.
func (RKF45) AdaptiveStep(s state.Vector, f Derivative, dt float64) (state.Vector, float64, float64) {
	y5, y4 := rkf45Stages(s, f, dt)
	errEst := state.ErrorNorm(y4, y5)
	return y5, dt, errEst
}
