package force

import (
	"math"
	"testing"

	"github.com/kallah94/space-missions/body"
	"github.com/kallah94/space-missions/state"
)

func circularLEOState() state.Vector {
	r := body.REarth + 400
	v := math.Sqrt(body.MuEarth / r)
	return state.New([3]float64{r, 0, 0}, [3]float64{0, v, 0}, 0)
}

func TestCentralGravityMagnitude(t *testing.T) {
	s := circularLEOState()
	g := CentralGravity{Mu: body.MuEarth}
	a := g.Acceleration(s, 0)
	got := state.Norm(a)
	want := body.MuEarth / (state.Norm(s.Position) * state.Norm(s.Position))
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("central gravity magnitude = %e, want %e", got, want)
	}
}

func TestJ2AccelerationAxialOnPolarAxis(t *testing.T) {
	s := state.New([3]float64{0, 0, body.REarth + 400}, [3]float64{0, 0, 0}, 0)
	j2 := J2{Mu: body.MuEarth, Radius: body.REarth, J2: body.J2Earth}
	a := j2.Acceleration(s, 0)
	// on the polar axis, J2 acceleration has zero x/y component
	if math.Abs(a[0]) > 1e-12 || math.Abs(a[1]) > 1e-12 {
		t.Errorf("expected zero x/y component on polar axis, got %v", a)
	}
}

func TestModelSumsForces(t *testing.T) {
	m := NewModel(100, CentralGravity{Mu: body.MuEarth}, J2{Mu: body.MuEarth, Radius: body.REarth, J2: body.J2Earth})
	s := circularLEOState()
	d := m.Derivative(s)
	if d.Position != s.Velocity {
		t.Fatalf("derivative position should equal velocity")
	}
	if d.Time != 1 {
		t.Fatalf("derivative time should be 1, got %f", d.Time)
	}
	// sanity: combined acceleration roughly matches central gravity alone
	cg := CentralGravity{Mu: body.MuEarth}.Acceleration(s, 0)
	diff := state.Norm(state.Sub(d.Velocity, cg))
	if diff > 1e-3 {
		t.Errorf("J2 perturbation unexpectedly large relative to two-body: %e", diff)
	}
}

func TestThirdBodyZeroWhenCoincident(t *testing.T) {
	tb := ThirdBody{Mu: body.MuMoon, Position: func(float64) [3]float64 { return [3]float64{384400, 0, 0} }}
	s := state.New([3]float64{0, 0, 0}, [3]float64{0, 0, 0}, 0)
	a := tb.Acceleration(s, 0)
	if state.Norm(a) > 1e-9 {
		t.Errorf("expected zero perturbation when spacecraft coincides with the central body, got %v", a)
	}
}

func TestExponentialDragDecreasesWithAltitude(t *testing.T) {
	drag := ExponentialDrag{Radius: body.REarth, RefAltitude: 400, RefDensity: 1e-4, ScaleHeight: 60, Cd: 2.2, AreaPerMass: 0.01}
	low := state.New([3]float64{body.REarth + 300, 0, 0}, [3]float64{0, 7.7, 0}, 0)
	high := state.New([3]float64{body.REarth + 800, 0, 0}, [3]float64{0, 7.4, 0}, 0)
	aLow := state.Norm(drag.Acceleration(low, 0))
	aHigh := state.Norm(drag.Acceleration(high, 0))
	if aHigh >= aLow {
		t.Errorf("drag should decrease with altitude: low=%e high=%e", aLow, aHigh)
	}
}

func TestSRPShadowZeroesForce(t *testing.T) {
	sunPos := func(float64) [3]float64 { return [3]float64{body.AU, 0, 0} }
	srp := SolarRadiationPressure{
		SolarConstant:  4.56e-6,
		AU:             body.AU,
		Cr:             1.3,
		AreaPerMass:    0.02,
		SunPosition:    sunPos,
		OccluderRadius: body.REarth,
	}
	// spacecraft directly behind Earth from the Sun's perspective
	shadowed := state.New([3]float64{-body.REarth - 1, 0, 0}, [3]float64{0, 0, 0}, 0)
	a := srp.Acceleration(shadowed, 0)
	if state.Norm(a) != 0 {
		t.Errorf("expected zero SRP in shadow, got %v", a)
	}
	lit := state.New([3]float64{body.REarth + 1, 0, 0}, [3]float64{0, 0, 0}, 0)
	aLit := srp.Acceleration(lit, 0)
	if state.Norm(aLit) == 0 {
		t.Errorf("expected nonzero SRP in sunlight")
	}
}

func TestThrustAccelerationScalesWithMass(t *testing.T) {
	th := Thrust{ThrustN: 0.089, Law: VelocityDirection{}, Mass: func() float64 { return 100 }}
	s := state.New([3]float64{7000, 0, 0}, [3]float64{0, 7.5, 0}, 0)
	a := th.Acceleration(s, 0)
	want := (0.089 / 1000) / 100
	if math.Abs(state.Norm(a)-want) > 1e-12 {
		t.Errorf("thrust accel = %e, want %e", state.Norm(a), want)
	}
}

func TestMassFlowRate(t *testing.T) {
	mdot := MassFlowRate(89e-3, 1650)
	if mdot <= 0 {
		t.Fatalf("mass flow rate should be positive, got %f", mdot)
	}
}

func TestLEOModelBuilds(t *testing.T) {
	m := LEOModel(100, 0.02, 2.2)
	if len(m.Forces) != 3 {
		t.Fatalf("expected 3 forces in LEO model, got %d", len(m.Forces))
	}
}

func TestDragNotApplicableAboveCutoffAltitude(t *testing.T) {
	drag := ExponentialDrag{Radius: body.REarth, RefAltitude: 400, RefDensity: 1e-4, ScaleHeight: 60, Cd: 2.2, AreaPerMass: 0.01}
	low := [3]float64{body.REarth + 300, 0, 0}
	high := [3]float64{body.REarth + 5000, 0, 0}
	if !drag.Applicable(low, [3]float64{}, 0) {
		t.Errorf("drag should be applicable at 300 km altitude")
	}
	if drag.Applicable(high, [3]float64{}, 0) {
		t.Errorf("drag should not be applicable at 5000 km altitude")
	}
}

func TestThirdBodyNotApplicableBelowCutoffAltitude(t *testing.T) {
	tb := ThirdBody{Mu: body.MuMoon, CentralRadius: body.REarth}
	low := [3]float64{body.REarth + 300, 0, 0}
	high := [3]float64{body.REarth + 5000, 0, 0}
	if tb.Applicable(low, [3]float64{}, 0) {
		t.Errorf("third-body should not be applicable at 300 km altitude")
	}
	if !tb.Applicable(high, [3]float64{}, 0) {
		t.Errorf("third-body should be applicable at 5000 km altitude")
	}
}

func TestModelSkipsInapplicableForces(t *testing.T) {
	m := NewModel(100,
		CentralGravity{Mu: body.MuEarth},
		ExponentialDrag{Radius: body.REarth, RefAltitude: 400, RefDensity: 1e-4, ScaleHeight: 60, Cd: 2.2, AreaPerMass: 0.01},
	)
	// Far above the drag cutoff altitude, the derivative should match pure
	// two-body motion: drag's Applicable gate should skip its contribution.
	far := state.New([3]float64{body.REarth + 20000, 0, 0}, [3]float64{0, 3.0, 0}, 0)
	d := m.Derivative(far)
	cg := CentralGravity{Mu: body.MuEarth}.Acceleration(far, 0)
	if diff := state.Norm(state.Sub(d.Velocity, cg)); diff > 1e-15 {
		t.Errorf("expected drag to be gated out at 20000 km altitude, diff=%e", diff)
	}
}
