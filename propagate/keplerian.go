package propagate

import (
	"github.com/kallah94/space-missions/solve"
	"github.com/kallah94/space-missions/state"
)

// Keplerian is a pure two-body analytic propagator: constant orbital shape
// (a, e, i, RAAN, argp), only the anomaly advances via Kepler's equation.
// PropagateTo only errors if the underlying Kepler solve fails to
// converge.
type Keplerian struct {
	Elements0 solve.Elements
	Mu        float64
	Epoch     float64 // mission time, seconds, that Elements0 is valid at
}

func (k Keplerian) Name() string { return "keplerian" }

func (k Keplerian) PropagateTo(elapsed float64) (state.Vector, error) {
	el, err := solve.PropagateKepler(k.Elements0, k.Mu, elapsed-k.Epoch)
	if err != nil {
		return state.Vector{}, err
	}
	r, v := solve.ElementsToState(el, k.Mu)
	return state.New(r, v, elapsed), nil
}

// Elements returns the propagated orbital elements at the given elapsed
// mission time, without the Cartesian conversion.
func (k Keplerian) Elements(elapsed float64) (solve.Elements, error) {
	return solve.PropagateKepler(k.Elements0, k.Mu, elapsed-k.Epoch)
}
