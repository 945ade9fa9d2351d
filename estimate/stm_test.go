package estimate

import (
	"math"
	"testing"

	"github.com/kallah94/space-missions/body"
	"github.com/kallah94/space-missions/state"
)

func circularLEOState() state.Vector {
	r := body.Earth.Radius + 500
	v := math.Sqrt(body.MuEarth / r)
	return state.New([3]float64{r, 0, 0}, [3]float64{0, v, 0}, 0)
}

func TestSTMStartsAtIdentity(t *testing.T) {
	e := NewSTM("test", circularLEOState(), body.MuEarth, body.Earth.Radius, 0)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if got := e.Phi.At(i, j); got != want {
				t.Fatalf("Phi[%d][%d] = %f, want %f", i, j, got, want)
			}
		}
	}
}

func TestSTMPropagationKeepsStateOnOrbit(t *testing.T) {
	e := NewSTM("test", circularLEOState(), body.MuEarth, body.Earth.Radius, body.J2Earth)
	e.PropagateUntil(600, 10)
	r := state.Norm(e.State.Position)
	if math.Abs(r-(body.Earth.Radius+500)) > 50 {
		t.Errorf("radius drifted too far: got %f", r)
	}
}

func TestSTMGrowsNonTrivially(t *testing.T) {
	e := NewSTM("test", circularLEOState(), body.MuEarth, body.Earth.Radius, 0)
	e.PropagateUntil(300, 5)
	identityDeviation := 0.0
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			identityDeviation += math.Abs(e.Phi.At(i, j) - want)
		}
	}
	if identityDeviation < 1e-6 {
		t.Errorf("expected STM to diverge from identity after propagation")
	}
}
