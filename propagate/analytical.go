package propagate

import (
	"math"

	"github.com/kallah94/space-missions/solve"
	"github.com/kallah94/space-missions/state"
)

// PerturbationMode selects how much perturbation fidelity
// propagate.Analytical applies on top of the pure two-body solution.
type PerturbationMode int

const (
	// None is pure two-body (identical to Keplerian).
	None PerturbationMode = iota
	// J2Secular adds secular RAAN/argument-of-periapsis drift from the
	// central body's J2 term (solve.J2SecularRates).
	J2Secular
	// Atmospheric adds a simple exponential semi-major-axis decay on top
	// of J2Secular, for quick-look LEO-lifetime estimates without paying
	// for a full numerical drag integration.
	Atmospheric
)

// Analytical is a semi-analytic propagator: constant orbital shape except
// for the perturbation terms its Mode enables, letting a caller trade
// fidelity for speed relative to propagate.Numerical.
type Analytical struct {
	Elements0 solve.Elements
	Mu        float64
	Radius    float64
	J2        float64
	Epoch     float64
	Mode      PerturbationMode

	// Decay rate parameters, used only when Mode == Atmospheric: da/dt =
	// -DecayRate * a (km/s), a simple first-order exponential decay model.
	DecayRate float64
}

func (a Analytical) Name() string { return "analytical" }

func (a Analytical) PropagateTo(elapsed float64) (state.Vector, error) {
	el, err := a.Elements(elapsed)
	if err != nil {
		return state.Vector{}, err
	}
	r, v := solve.ElementsToState(el, a.Mu)
	return state.New(r, v, elapsed), nil
}

// Elements returns the propagated orbital elements at the given elapsed
// mission time, applying whichever secular terms a.Mode selects. Errors
// only if the underlying Kepler solve fails to converge.
func (a Analytical) Elements(elapsed float64) (solve.Elements, error) {
	dt := elapsed - a.Epoch
	el := a.Elements0

	switch a.Mode {
	case J2Secular, Atmospheric:
		raanDot, argpDot := solve.J2SecularRates(el, a.Mu, a.Radius, a.J2)
		el.RAAN = math.Mod(el.RAAN+raanDot*dt, 2*math.Pi)
		el.ArgPeriapsis = math.Mod(el.ArgPeriapsis+argpDot*dt, 2*math.Pi)
	}

	if a.Mode == Atmospheric && a.DecayRate > 0 {
		el.A = el.A * math.Exp(-a.DecayRate*dt)
	}

	return solve.PropagateKepler(el, a.Mu, dt)
}
