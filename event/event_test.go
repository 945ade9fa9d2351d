package event

import (
	"math"
	"testing"

	"github.com/kallah94/space-missions/body"
	"github.com/kallah94/space-missions/integrate"
	"github.com/kallah94/space-missions/state"
)

func ellipticalOrbit() []state.Vector {
	rp := body.REarth + 300
	ra := body.REarth + 3000
	a := (rp + ra) / 2
	e := (ra - rp) / (ra + rp)
	vp := math.Sqrt(body.MuEarth * (2/rp - 1/a))
	s0 := state.New([3]float64{rp, 0, 0}, [3]float64{0, vp, 0}, 0)

	deriv := func(s state.Vector) state.Vector {
		r := s.Position
		rn := state.Norm(r)
		f := -body.MuEarth / (rn * rn * rn)
		return state.Vector{Position: s.Velocity, Velocity: [3]float64{f * r[0], f * r[1], f * r[2]}, Time: 1}
	}
	period := 2 * math.Pi * math.Sqrt(a*a*a/body.MuEarth)
	_ = e
	return integrate.Integrate(integrate.RK4{}, s0, deriv, period/2000, period)
}

func TestApoapsisDetectorFindsCrossing(t *testing.T) {
	traj := ellipticalOrbit()
	crossings := Scan(ApoapsisDetector{}, traj)
	if len(crossings) == 0 {
		t.Fatalf("expected at least one radial-velocity crossing over a full period")
	}
}

func TestAscendingNodeZeroForEquatorialOrbit(t *testing.T) {
	traj := ellipticalOrbit()
	det := AscendingNodeDetector{}
	for _, s := range traj {
		if det.Value(s) != 0 {
			t.Fatalf("equatorial orbit should have zero z at all times, got %f", det.Value(s))
		}
	}
}

func TestEclipseDetectorSignsShadowAndSun(t *testing.T) {
	sunPos := func(float64) [3]float64 { return [3]float64{body.AU, 0, 0} }
	ed := EclipseDetector{OccluderRadius: body.REarth, SunPosition: sunPos}
	lit := state.New([3]float64{body.REarth + 1, 0, 0}, [3]float64{}, 0)
	shadowed := state.New([3]float64{-body.REarth - 1, 0, 0}, [3]float64{}, 0)
	if ed.Value(lit) <= 0 {
		t.Errorf("expected positive (lit) value, got %f", ed.Value(lit))
	}
	if ed.Value(shadowed) >= 0 {
		t.Errorf("expected negative (shadow) value, got %f", ed.Value(shadowed))
	}
}
