package force

import (
	"math"

	"github.com/kallah94/space-missions/state"
)

// Tidal models the k2 Love-number tidal bulge raised on the central body by
// a perturbing body, and the resulting perturbation back on the
// spacecraft's orbit (a degree-2 static tide, ignoring phase lag/Q).
type Tidal struct {
	Mu          float64 // central body's GM
	Radius      float64 // central body's mean radius, km
	Love2       float64 // k2 Love number
	PerturberMu float64
	// Position returns the perturbing body's position relative to the
	// central body, km, as a function of elapsed mission time.
	Position func(t float64) [3]float64
}

func (td Tidal) Name() string { return "tidal" }

// Applicable is always true: the tidal bulge has no spec-mandated
// altitude gate, unlike drag/J2/J3J4/third-body.
func (td Tidal) Applicable(_, _ [3]float64, _ float64) bool { return true }

func (td Tidal) Acceleration(s state.Vector, t float64) [3]float64 {
	rPert := td.Position(t)
	dPert := state.Norm(rPert)
	if dPert == 0 {
		return [3]float64{}
	}
	rSC := s.Position
	rSCNorm := state.Norm(rSC)
	cosPsi := state.Dot(rSC, rPert) / (rSCNorm * dPert)

	// Degree-2 tidal potential perturbation magnitude (static, no phase
	// lag), following the standard k2 tidal-bulge acceleration scaling.
	coeff := 3 * td.Love2 * td.PerturberMu * math.Pow(td.Radius, 5) / math.Pow(dPert, 3) / math.Pow(rSCNorm, 6)
	legendre2 := 0.5 * (3*cosPsi*cosPsi - 1)

	dir := state.Unit(rSC)
	mag := coeff * legendre2
	return [3]float64{mag * dir[0], mag * dir[1], mag * dir[2]}
}
