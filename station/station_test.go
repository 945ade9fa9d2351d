package station

import (
	"math"
	"testing"

	"github.com/kallah94/space-missions/body"
	"github.com/kallah94/space-missions/state"
)

func TestObserveZenithIsVisible(t *testing.T) {
	s := NewStation("test", 0, 0, 0, 0, 1e-3, 1e-6)
	// spacecraft directly overhead in ECEF == ECI at theta=0
	sc := state.New([3]float64{body.REarth + 500, 0, 0}, [3]float64{0, 0, 0}, 0)
	m := s.Observe(0, sc)
	if !m.Visible {
		t.Fatalf("expected zenith target to be visible")
	}
	if math.Abs(m.Elevation-math.Pi/2) > 1e-6 {
		t.Errorf("elevation = %f, want pi/2", m.Elevation)
	}
}

func TestObserveBelowHorizonNotVisible(t *testing.T) {
	s := NewStation("test", 0, 0.1, 0, 0, 1e-3, 1e-6)
	// Put the spacecraft on the far side of Earth, directly below the station.
	sc := state.New([3]float64{-body.REarth - 500, 0, 0}, [3]float64{0, 0, 0}, 0)
	m := s.Observe(0, sc)
	if m.Visible {
		t.Fatalf("expected far-side target to not be visible")
	}
}

func TestFromNameResolvesBuiltins(t *testing.T) {
	if _, ok := FromName("DSS13"); !ok {
		t.Fatalf("expected DSS13 to resolve")
	}
	if _, ok := FromName("nonexistent"); ok {
		t.Fatalf("expected unknown station name to fail")
	}
}
