package integrate

import (
	"math"
	"testing"

	"github.com/kallah94/space-missions/state"
)

// constantVelocity is a trivial derivative: no acceleration, constant
// velocity equal to 1 m/s along x. Every integrator should reproduce exact
// straight-line motion for this case (to float64 precision).
func constantVelocity(s state.Vector) state.Vector {
	return state.Vector{Position: s.Velocity, Velocity: [3]float64{0, 0, 0}, Time: s.Time}
}

func TestIntegratorsStraightLine(t *testing.T) {
	s0 := state.New([3]float64{0, 0, 0}, [3]float64{1, 0, 0}, 0)
	integrators := []Integrator{Euler{}, RK4{}, RKF45{}, &VelocityVerlet{}}
	for _, integ := range integrators {
		got := integ.Step(s0, constantVelocity, 10)
		if math.Abs(got.Position[0]-10) > 1e-9 {
			t.Errorf("%s: position[0] = %f, want 10", integ.Name(), got.Position[0])
		}
	}
}

func TestIntegrateDriverStepCount(t *testing.T) {
	s0 := state.New([3]float64{0, 0, 0}, [3]float64{1, 0, 0}, 0)
	out := Integrate(RK4{}, s0, constantVelocity, 10, 95)
	// ceil(95/10)+1 = 11 states
	if len(out) != 11 {
		t.Fatalf("got %d states, want 11", len(out))
	}
	last := out[len(out)-1]
	if math.Abs(last.Time-95) > 1e-9 {
		t.Fatalf("last time = %f, want 95 (final step must be clamped)", last.Time)
	}
	if math.Abs(last.Position[0]-95) > 1e-9 {
		t.Fatalf("last position[0] = %f, want 95", last.Position[0])
	}
}

// harmonicOscillator is a conservative system (unit mass, unit spring
// constant): a = -x. Used to exercise Verlet's energy-bounded behavior.
func harmonicOscillator(s state.Vector) state.Vector {
	return state.Vector{
		Position: s.Velocity,
		Velocity: [3]float64{-s.Position[0], -s.Position[1], -s.Position[2]},
		Time:     s.Time,
	}
}

func energyOf(s state.Vector) float64 {
	return 0.5*state.Dot(s.Velocity, s.Velocity) + 0.5*state.Dot(s.Position, s.Position)
}

func TestVerletEnergyBounded(t *testing.T) {
	s0 := state.New([3]float64{1, 0, 0}, [3]float64{0, 0, 0}, 0)
	e0 := energyOf(s0)
	vv := &VelocityVerlet{}
	cur := s0
	maxDrift := 0.0
	for i := 0; i < 20000; i++ {
		cur = vv.Step(cur, harmonicOscillator, 0.001)
		drift := math.Abs(energyOf(cur)-e0) / e0
		if drift > maxDrift {
			maxDrift = drift
		}
	}
	if maxDrift > 1e-2 {
		t.Fatalf("verlet energy drift too large: %e", maxDrift)
	}
}

func TestVerletResetClearsCache(t *testing.T) {
	vv := &VelocityVerlet{}
	s0 := state.New([3]float64{1, 0, 0}, [3]float64{0, 0, 0}, 0)
	vv.Step(s0, harmonicOscillator, 0.1)
	if !vv.havePrev {
		t.Fatalf("expected cached acceleration after a step")
	}
	vv.Reset()
	if vv.havePrev {
		t.Fatalf("Reset should clear the cached acceleration")
	}
}

func TestAdaptiveAcceptsWithinTolerance(t *testing.T) {
	a := NewAdaptive(RKF45{}, 1e-4, 10, 1e-9)
	s0 := state.New([3]float64{1, 0, 0}, [3]float64{0, 1, 0}, 0)
	_, nextDt, errEst := a.AdaptiveStep(s0, harmonicOscillator, 1.0)
	if errEst > a.Tol {
		// Adaptive must shrink the step until converged, or fall back to
		// MinStep with a warning — either way errEst should not silently
		// exceed tolerance without having hit MinStep.
		if nextDt != a.MinStep {
			t.Fatalf("err=%e > tol=%e accepted without falling back to MinStep (next dt %e)", errEst, a.Tol, nextDt)
		}
		if a.MinStep > 0 {
			t.Logf("accepted at MinStep with err=%e > tol=%e (expected under ResourceExhaustion)", errEst, a.Tol)
		}
	}
}

func TestClampRelative(t *testing.T) {
	if got := clampRelative(1.0, 100.0, 0.1, 5.0); got != 5.0 {
		t.Fatalf("clampRelative growth = %f, want 5.0", got)
	}
	if got := clampRelative(1.0, 0.0001, 0.1, 5.0); got != 0.1 {
		t.Fatalf("clampRelative shrink = %f, want 0.1", got)
	}
}
