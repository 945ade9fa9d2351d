package propagate

import (
	"fmt"

	"github.com/kallah94/space-missions/force"
	"github.com/kallah94/space-missions/integrate"
	"github.com/kallah94/space-missions/state"
)

// Numerical propagates a state forward by repeatedly stepping a force
// model through an integrate.Integrator. Because some integrators (e.g.
// *integrate.VelocityVerlet) cache state between steps, a Numerical value
// is configure-then-run: do not call PropagateTo concurrently on the same
// instance, and call Reset (if the integrator supports it) before reusing
// it from a different state vector.
type Numerical struct {
	State0    state.Vector
	Model     *force.Model
	Integ     integrate.Integrator
	StepSize  float64 // seconds
	MaxStep   int     // safety bound on number of internal steps; 0 means unbounded
}

func (n Numerical) Name() string { return "numerical:" + n.Integ.Name() }

// PropagateTo advances n.State0 by (elapsed - n.State0.Time) seconds,
// returning the final state. It does not mutate n.State0.
func (n Numerical) PropagateTo(elapsed float64) (state.Vector, error) {
	dt := elapsed - n.State0.Time
	if dt < 0 {
		return state.Vector{}, fmt.Errorf("propagate: cannot propagate backward by %f seconds", dt)
	}
	if dt == 0 {
		return n.State0, nil
	}
	if n.StepSize <= 0 {
		return state.Vector{}, fmt.Errorf("propagate: StepSize must be positive")
	}
	traj := integrate.Integrate(n.Integ, n.State0, n.Model.Derivative, n.StepSize, dt)
	if n.MaxStep > 0 && len(traj)-1 > n.MaxStep {
		return state.Vector{}, fmt.Errorf("propagate: exceeded MaxStep (%d) internal steps", n.MaxStep)
	}
	return traj[len(traj)-1], nil
}

// Trajectory returns every intermediate sample from State0 to elapsed,
// inclusive — useful for event.Scan.
func (n Numerical) Trajectory(elapsed float64) ([]state.Vector, error) {
	dt := elapsed - n.State0.Time
	if dt < 0 {
		return nil, fmt.Errorf("propagate: cannot propagate backward by %f seconds", dt)
	}
	return integrate.Integrate(n.Integ, n.State0, n.Model.Derivative, n.StepSize, dt), nil
}
