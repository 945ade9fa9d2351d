package propagate

import (
	"math"
	"testing"

	"github.com/kallah94/space-missions/body"
	"github.com/kallah94/space-missions/force"
	"github.com/kallah94/space-missions/integrate"
	"github.com/kallah94/space-missions/solve"
	"github.com/kallah94/space-missions/state"
)

func circularElements() solve.Elements {
	return solve.Elements{A: body.REarth + 500, E: 1e-6, I: 0.9, RAAN: 0.2, ArgPeriapsis: 0.1, TrueAnomaly: 0}
}

func TestKeplerianPropagatesFullPeriodReturnsClose(t *testing.T) {
	el := circularElements()
	k := Keplerian{Elements0: el, Mu: body.MuEarth, Epoch: 0}
	period := solve.Period(el.A, body.MuEarth)
	s, err := k.PropagateTo(period)
	if err != nil {
		t.Fatalf("PropagateTo: %v", err)
	}
	r0, _ := solve.ElementsToState(el, body.MuEarth)
	if math.Abs(s.Position[0]-r0[0]) > 1 {
		t.Errorf("after one period, position should return close to start: got %v want ~%v", s.Position, r0)
	}
}

func TestNumericalRejectsBackwardPropagation(t *testing.T) {
	s0 := state.New([3]float64{7000, 0, 0}, [3]float64{0, 7.5, 0}, 100)
	m := force.NewModel(100, force.CentralGravity{Mu: body.MuEarth})
	n := Numerical{State0: s0, Model: m, Integ: integrate.RK4{}, StepSize: 1}
	if _, err := n.PropagateTo(0); err == nil {
		t.Fatalf("expected error propagating backward")
	}
}

func TestNumericalMatchesTwoBodyCircularSpeed(t *testing.T) {
	r := body.REarth + 400
	v := math.Sqrt(body.MuEarth / r)
	s0 := state.New([3]float64{r, 0, 0}, [3]float64{0, v, 0}, 0)
	m := force.NewModel(100, force.CentralGravity{Mu: body.MuEarth})
	n := Numerical{State0: s0, Model: m, Integ: integrate.RK4{}, StepSize: 1}

	sFinal, err := n.PropagateTo(60)
	if err != nil {
		t.Fatalf("PropagateTo: %v", err)
	}
	gotSpeed := state.Norm(sFinal.Velocity)
	if math.Abs(gotSpeed-v) > 1e-4 {
		t.Errorf("speed should be conserved on a circular orbit: got %f want %f", gotSpeed, v)
	}
}

func TestAnalyticalJ2SecularChangesRAAN(t *testing.T) {
	el := circularElements()
	a := Analytical{Elements0: el, Mu: body.MuEarth, Radius: body.REarth, J2: body.J2Earth, Mode: J2Secular}
	after, err := a.Elements(86400 * 30)
	if err != nil {
		t.Fatalf("Elements: %v", err)
	}
	if after.RAAN == el.RAAN {
		t.Errorf("expected RAAN to drift under J2Secular mode")
	}
}

func TestAnalyticalNoneModeMatchesKeplerian(t *testing.T) {
	el := circularElements()
	a := Analytical{Elements0: el, Mu: body.MuEarth, Mode: None}
	k := Keplerian{Elements0: el, Mu: body.MuEarth}
	sA, _ := a.PropagateTo(500)
	sK, _ := k.PropagateTo(500)
	for i := 0; i < 3; i++ {
		if math.Abs(sA.Position[i]-sK.Position[i]) > 1e-6 {
			t.Errorf("None mode should match Keplerian at index %d: got %f want %f", i, sA.Position[i], sK.Position[i])
		}
	}
}
