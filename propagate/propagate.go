// Package propagate implements the spacecraft trajectory propagators: an
// analytic Keplerian propagator, a numerical force-driven propagator, an
// SGP4-based mean-element propagator for TLE-sourced objects, and an
// analytical propagator with a switchable perturbation-fidelity mode.
package propagate

import "github.com/kallah94/space-missions/state"

// Propagator advances a state by a fixed elapsed time (seconds) from
// epoch. It is re-entrant: each call is independent and uses no shared
// mutable state beyond what the concrete propagator was configured with
// (some, like Numerical wrapping a stateful integrate.VelocityVerlet, are
// not safe to call concurrently on the same instance — see their docs).
type Propagator interface {
	Name() string
	PropagateTo(elapsed float64) (state.Vector, error)
}
