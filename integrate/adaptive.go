package integrate

import (
	"fmt"
	"math"

	"github.com/kallah94/space-missions/state"
)

// Orderer is implemented by integrators that know their own convergence
// order, letting Adaptive choose the correct Richardson denominator when
// wrapping an integrator that has no native AdaptiveStepper implementation.
type Orderer interface {
	Order() int
}

// Order implements Orderer for RK4 (classical fourth order).
func (RK4) Order() int { return 4 }

// Order implements Orderer for Euler (first order).
func (Euler) Order() int { return 1 }

// Warning is emitted on the diagnostic channel when the adaptive controller
// must accept a step at MinStep despite exceeding tolerance
// (spec.md §7 ResourceExhaustion).
type Warning struct {
	Time    float64
	ErrEst  float64
	Tol     float64
	MinStep float64
}

func (w Warning) String() string {
	return fmt.Sprintf("adaptive step: resource exhaustion at t=%.3f (err=%.3e > tol=%.3e), accepted MinStep=%.3e", w.Time, w.ErrEst, w.Tol, w.MinStep)
}

// Adaptive wraps any Integrator with a generic step-size controller. If the
// wrapped integrator implements AdaptiveStepper, its native error estimate
// is used; otherwise Adaptive falls back to Richardson extrapolation
// (one full step vs. two half-steps) using the wrapped integrator's order
// (via Orderer, default order 2 when unknown).
type Adaptive struct {
	Inner   Integrator
	MinStep float64
	MaxStep float64
	Tol     float64

	// Diagnostics receives a Warning each time ResourceExhaustion occurs.
	// May be left nil to discard warnings.
	Diagnostics chan<- Warning

	maxIterations int
}

// NewAdaptive builds an Adaptive wrapper with the spec-mandated safety
// factors: 0.84 when wrapping RKF45, 0.9 otherwise.
func NewAdaptive(inner Integrator, minStep, maxStep, tol float64) *Adaptive {
	return &Adaptive{Inner: inner, MinStep: minStep, MaxStep: maxStep, Tol: tol, maxIterations: 10}
}

// Name implements Integrator.
func (a *Adaptive) Name() string { return "adaptive(" + a.Inner.Name() + ")" }

func (a *Adaptive) safety() float64 {
	if _, ok := a.Inner.(RKF45); ok {
		return 0.84
	}
	return 0.9
}

// Step implements Integrator by repeatedly attempting AdaptiveStep until a
// step is accepted, then returning the accepted state. The recommended
// next step size is discarded by Step; use AdaptiveStep directly to drive a
// variable-step propagation loop.
func (a *Adaptive) Step(s state.Vector, f Derivative, dt float64) state.Vector {
	next, _, _ := a.AdaptiveStep(s, f, dt)
	return next
}

// AdaptiveStep attempts to advance s by dt, adjusting the step size until
// the local error estimate is within tolerance (or MinStep is reached,
// in which case the step is accepted anyway and a Warning is emitted).
func (a *Adaptive) AdaptiveStep(s state.Vector, f Derivative, dt float64) (next state.Vector, nextDt, errEst float64) {
	step := clamp(dt, a.MinStep, a.MaxStep)
	safety := a.safety()

	for iter := 0; iter < a.maxIterations; iter++ {
		candidate, err := a.attempt(s, f, step)
		if err <= a.Tol {
			grown := step * safety * math.Pow(a.Tol/math.Max(err, 1e-300), 0.2)
			nextStep := clampRelative(step, grown, 0.1, 5.0)
			nextStep = clamp(nextStep, a.MinStep, a.MaxStep)
			return candidate, nextStep, err
		}
		if step <= a.MinStep {
			if a.Diagnostics != nil {
				a.Diagnostics <- Warning{Time: s.Time, ErrEst: err, Tol: a.Tol, MinStep: a.MinStep}
			}
			return candidate, a.MinStep, err
		}
		shrunk := step * safety * math.Pow(a.Tol/err, 0.25)
		step = clampRelative(step, shrunk, 0.1, 5.0)
		step = clamp(step, a.MinStep, a.MaxStep)
	}
	// Exhausted iterations without converging: accept MinStep under warning.
	step = a.MinStep
	candidate, err := a.attempt(s, f, step)
	if a.Diagnostics != nil {
		a.Diagnostics <- Warning{Time: s.Time, ErrEst: err, Tol: a.Tol, MinStep: a.MinStep}
	}
	return candidate, step, err
}

func (a *Adaptive) attempt(s state.Vector, f Derivative, step float64) (state.Vector, float64) {
	if as, ok := a.Inner.(AdaptiveStepper); ok {
		next, _, err := as.AdaptiveStep(s, f, step)
		return next, err
	}
	order := 2
	if o, ok := a.Inner.(Orderer); ok {
		order = o.Order()
	}
	full := a.Inner.Step(s, f, step)
	half := a.Inner.Step(s, f, step/2)
	twin := a.Inner.Step(half, f, step/2)
	denom := math.Pow(2, float64(order)) - 1
	dp := state.Norm(state.Sub(twin.Position, full.Position))
	dv := state.Norm(state.Sub(twin.Velocity, full.Velocity))
	return twin, (dp + dv) / denom
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampRelative restricts candidate to within [lo, hi] multiples of base.
func clampRelative(base, candidate, lo, hi float64) float64 {
	minAllowed := base * lo
	maxAllowed := base * hi
	return clamp(candidate, minAllowed, maxAllowed)
}
