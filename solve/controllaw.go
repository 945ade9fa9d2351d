package solve

import (
	"math"

	"github.com/kallah94/space-missions/force"
	"github.com/kallah94/space-missions/state"
)

// orbitElement names the five elements a RuggieroLaw can target.
type orbitElement int

const (
	ElementA orbitElement = iota
	ElementE
	ElementI
	ElementRAAN
	ElementArgPeriapsis
)

// RuggieroTarget names one orbital element this control law is steering
// toward, and the tolerance within which it is considered converged.
type RuggieroTarget struct {
	Element   orbitElement
	Target    float64
	Tolerance float64
}

// RuggieroLaw implements the low-thrust feedback control law of Ruggiero,
// Lara & Bau (2011): it computes, at each instant, a unit thrust direction
// in the LVLH (radial, along-track, cross-track) frame that locally steers
// toward a target element set, blending any number of simultaneously
// controlled elements. This generalizes the teacher's OptimalΔOrbit's
// Ruggiero branch (prop.go), which selects the same per-element weighting
// but only exposes it through a single ControlLaw enum.
type RuggieroLaw struct {
	Mu      float64
	Targets []RuggieroTarget
	init    map[orbitElement]float64
	started bool
}

// NewRuggieroLaw builds a control law from the initial elements (captured
// at first use) and the set of elements to drive toward target values.
func NewRuggieroLaw(mu float64, targets ...RuggieroTarget) *RuggieroLaw {
	return &RuggieroLaw{Mu: mu, Targets: targets, init: make(map[orbitElement]float64)}
}

// Direction implements force.ControlLaw.
func (law *RuggieroLaw) Direction(s state.Vector, _ float64) [3]float64 {
	el := StateToElements(s.Position, s.Velocity, law.Mu)
	current := map[orbitElement]float64{
		ElementA:            el.A,
		ElementE:            el.E,
		ElementI:            el.I,
		ElementRAAN:         el.RAAN,
		ElementArgPeriapsis: el.ArgPeriapsis,
	}
	if !law.started {
		for _, tgt := range law.Targets {
			law.init[tgt.Element] = current[tgt.Element]
		}
		law.started = true
	}

	sinNu, cosNu := math.Sincos(el.TrueAnomaly)

	var radial, along, cross float64
	for _, tgt := range law.Targets {
		cur := current[tgt.Element]
		if math.Abs(cur-tgt.Target) <= tgt.Tolerance {
			continue
		}
		initVal := law.init[tgt.Element]
		if math.Abs(initVal-tgt.Target) <= tgt.Tolerance {
			initVal += tgt.Tolerance
		}
		weight := (tgt.Target - cur) / math.Abs(tgt.Target-initVal)

		switch tgt.Element {
		case ElementA:
			// Prograde (along-track) burn maximizes da/dt.
			along += weight
		case ElementE:
			// Thrust along the velocity direction, weighted by true
			// anomaly, maximizes de/dt (Ruggiero eq. for e-only control).
			radial += weight * el.E * sinNu
			along += weight * (1 + el.E*cosNu)
		case ElementI:
			// Cross-track burn near the orbit nodes (argument of latitude
			// near 0 or 180deg) maximizes di/dt.
			u := el.ArgPeriapsis + el.TrueAnomaly
			cross += weight * sign(math.Cos(u))
		case ElementRAAN:
			u := el.ArgPeriapsis + el.TrueAnomaly
			cross += weight * sign(math.Sin(u))
		case ElementArgPeriapsis:
			radial += weight * -cosNu
			along += weight * (2 + el.E*cosNu) * sinNu / (1 + el.E*cosNu)
		}
	}

	mag := math.Sqrt(radial*radial + along*along + cross*cross)
	if mag < 1e-12 {
		return [3]float64{}
	}
	lvlhDir := [3]float64{radial / mag, along / mag, cross / mag}

	radialVec, alongVec, crossVec := lvlhBasis(s.Position, s.Velocity)
	return [3]float64{
		lvlhDir[0]*radialVec[0] + lvlhDir[1]*alongVec[0] + lvlhDir[2]*crossVec[0],
		lvlhDir[0]*radialVec[1] + lvlhDir[1]*alongVec[1] + lvlhDir[2]*crossVec[1],
		lvlhDir[0]*radialVec[2] + lvlhDir[1]*alongVec[2] + lvlhDir[2]*crossVec[2],
	}
}

// Converged reports whether every targeted element is within tolerance.
func (law *RuggieroLaw) Converged(s state.Vector) bool {
	el := StateToElements(s.Position, s.Velocity, law.Mu)
	current := map[orbitElement]float64{
		ElementA: el.A, ElementE: el.E, ElementI: el.I,
		ElementRAAN: el.RAAN, ElementArgPeriapsis: el.ArgPeriapsis,
	}
	for _, tgt := range law.Targets {
		if math.Abs(current[tgt.Element]-tgt.Target) > tgt.Tolerance {
			return false
		}
	}
	return true
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

func lvlhBasis(r, v [3]float64) (radial, along, cross [3]float64) {
	radial = state.Unit(r)
	h := state.Cross(r, v)
	cross = state.Unit(h)
	along = state.Cross(cross, radial)
	return
}

var _ force.ControlLaw = (*RuggieroLaw)(nil)
