package integrate

import "github.com/kallah94/space-missions/state"

// VelocityVerlet is the symplectic velocity-Verlet integrator. It is the
// preferred choice for long-horizon conservative propagation because its
// energy drift is bounded rather than secular (unlike Euler or even RK4
// over very long integration spans).
//
// VelocityVerlet is stateful: it caches the acceleration computed on the
// previous call so the next step's velocity update can average old and new
// acceleration without recomputing the old one. This makes a VelocityVerlet
// instance "hot" between calls — it must be Reset before starting an
// independent run, and must not be shared across goroutines mid-run.
type VelocityVerlet struct {
	havePrev bool
	prevAcc  [3]float64
}

// Name implements Integrator.
func (*VelocityVerlet) Name() string { return "velocity-verlet" }

// Reset clears the cached prior acceleration, as required before starting
// an independent propagation with the same instance.
func (vv *VelocityVerlet) Reset() {
	vv.havePrev = false
	vv.prevAcc = [3]float64{}
}

// Step implements Integrator.
func (vv *VelocityVerlet) Step(s state.Vector, f Derivative, dt float64) state.Vector {
	var aOld [3]float64
	if vv.havePrev {
		aOld = vv.prevAcc
	} else {
		// No prior acceleration cached: evaluate the acceleration at the
		// current state.
		aOld = f(s).Velocity
	}

	var newPos [3]float64
	for i := 0; i < 3; i++ {
		newPos[i] = s.Position[i] + s.Velocity[i]*dt + 0.5*aOld[i]*dt*dt
	}

	predicted := state.Vector{Position: newPos, Velocity: s.Velocity, Time: s.Time + dt}
	aNew := f(predicted).Velocity

	var newVel [3]float64
	for i := 0; i < 3; i++ {
		newVel[i] = s.Velocity[i] + 0.5*(aOld[i]+aNew[i])*dt
	}

	vv.prevAcc = aNew
	vv.havePrev = true

	return state.Vector{Position: newPos, Velocity: newVel, Time: s.Time + dt}
}
