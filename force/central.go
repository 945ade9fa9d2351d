package force

import (
	"github.com/kallah94/space-missions/state"
)

// CentralGravity is the two-body point-mass acceleration of the central
// body, -mu*r/|r|^3.
type CentralGravity struct {
	Mu float64
}

func (g CentralGravity) Name() string { return "central-gravity" }

// Applicable is always true: the two-body term never drops out.
func (g CentralGravity) Applicable(_, _ [3]float64, _ float64) bool { return true }

func (g CentralGravity) Acceleration(s state.Vector, _ float64) [3]float64 {
	r := s.Position
	rNorm := state.Norm(r)
	factor := -g.Mu / (rNorm * rNorm * rNorm)
	return [3]float64{factor * r[0], factor * r[1], factor * r[2]}
}
