package solve

import (
	"math"
	"testing"

	"github.com/kallah94/space-missions/body"
	"github.com/kallah94/space-missions/state"
)

func TestRuggieroLawProducesUnitDirection(t *testing.T) {
	law := NewRuggieroLaw(body.MuEarth, RuggieroTarget{Element: ElementA, Target: body.REarth + 800, Tolerance: 1})
	r := body.REarth + 400
	v := math.Sqrt(body.MuEarth / r)
	s := state.New([3]float64{r, 0, 0}, [3]float64{0, v, 0}, 0)
	dir := law.Direction(s, 0)
	n := state.Norm(dir)
	if math.Abs(n-1) > 1e-9 {
		t.Fatalf("expected unit direction, got norm %f", n)
	}
}

func TestRuggieroLawConvergesWhenAtTarget(t *testing.T) {
	a := body.REarth + 800
	law := NewRuggieroLaw(body.MuEarth, RuggieroTarget{Element: ElementA, Target: a, Tolerance: 1})
	v := math.Sqrt(body.MuEarth / a)
	s := state.New([3]float64{a, 0, 0}, [3]float64{0, v, 0}, 0)
	if !law.Converged(s) {
		t.Fatalf("expected convergence when already at target")
	}
}
