// Package event implements signed-scalar event detection and root
// refinement over a propagated trajectory, e.g. apoapsis/periapsis
// crossings, node crossings, and eclipse entry/exit.
package event

import (
	"math"

	"github.com/kallah94/space-missions/state"
)

// Detector computes a signed scalar function of state and time whose
// zero-crossings mark the event of interest (e.g. radial velocity for
// apsis crossings, the z-component of position for node crossings).
type Detector interface {
	Name() string
	Value(s state.Vector) float64
}

// Crossing records a detected sign change between two propagated samples.
type Crossing struct {
	Detector string
	Before   state.Vector
	After    state.Vector
}

// Scan walks a trajectory (as produced by integrate.Integrate) and returns
// every sign change of det.Value between consecutive samples.
func Scan(det Detector, trajectory []state.Vector) []Crossing {
	var crossings []Crossing
	if len(trajectory) < 2 {
		return crossings
	}
	prevVal := det.Value(trajectory[0])
	for i := 1; i < len(trajectory); i++ {
		val := det.Value(trajectory[i])
		if prevVal == 0 || (prevVal < 0) != (val < 0) {
			crossings = append(crossings, Crossing{
				Detector: det.Name(),
				Before:   trajectory[i-1],
				After:    trajectory[i],
			})
		}
		prevVal = val
	}
	return crossings
}

// Refine narrows a detected crossing to a tight time bracket via bisection
// on det.Value, re-evaluating the state at intermediate times with
// interpolate. interpolate(t) must return a state.Vector at time t, t
// between before.Time and after.Time.
func Refine(det Detector, before, after state.Vector, interpolate func(t float64) state.Vector, tol float64, maxIter int) state.Vector {
	lo, hi := before, after
	loVal := det.Value(lo)
	for i := 0; i < maxIter; i++ {
		mid := (lo.Time + hi.Time) / 2
		s := interpolate(mid)
		val := det.Value(s)
		if math.Abs(hi.Time-lo.Time) < tol {
			return s
		}
		if (val < 0) == (loVal < 0) {
			lo = s
			loVal = val
		} else {
			hi = s
		}
	}
	return interpolate((lo.Time + hi.Time) / 2)
}

// ApoapsisDetector fires at radial-velocity zero crossings where the
// spacecraft is receding-to-approaching (apoapsis): d(r)/dt = r . v / |r|.
type ApoapsisDetector struct{}

func (ApoapsisDetector) Name() string { return "apoapsis" }
func (ApoapsisDetector) Value(s state.Vector) float64 {
	return state.Dot(s.Position, s.Velocity) / state.Norm(s.Position)
}

// PeriapsisDetector uses the same radial-velocity signal as
// ApoapsisDetector; the two differ only in which sign transition the
// caller treats as the event of interest (negative-to-positive for
// periapsis, positive-to-negative for apoapsis).
type PeriapsisDetector struct{}

func (PeriapsisDetector) Name() string { return "periapsis" }
func (PeriapsisDetector) Value(s state.Vector) float64 {
	return state.Dot(s.Position, s.Velocity) / state.Norm(s.Position)
}

// AscendingNodeDetector fires when the spacecraft crosses the reference
// (x-y) plane moving in the +z direction.
type AscendingNodeDetector struct{}

func (AscendingNodeDetector) Name() string { return "ascending-node" }
func (AscendingNodeDetector) Value(s state.Vector) float64 {
	return s.Position[2]
}

// DescendingNodeDetector uses the same signal as AscendingNodeDetector; the
// caller distinguishes ascending vs. descending by the sign of Velocity[2]
// at the crossing.
type DescendingNodeDetector struct{}

func (DescendingNodeDetector) Name() string { return "descending-node" }
func (DescendingNodeDetector) Value(s state.Vector) float64 {
	return s.Position[2]
}

// EclipseDetector fires when a spacecraft enters or exits a cylindrical
// shadow cast by an occluding body (radius occluderRadius) away from a
// light source whose position (relative to the occluder) is given by
// sunPosition(t).
type EclipseDetector struct {
	OccluderRadius float64
	SunPosition    func(t float64) [3]float64
}

func (EclipseDetector) Name() string { return "eclipse" }

// Value is negative while in shadow, positive while in sunlight. On the
// anti-sun side it is the signed distance (km) from the shadow cylinder's
// boundary; on the sun side it is the constant 1.
func (ed EclipseDetector) Value(s state.Vector) float64 {
	sunDir := state.Unit(ed.SunPosition(s.Time))
	proj := state.Dot(s.Position, sunDir)
	if proj >= 0 {
		return 1 // sunlit side, unambiguously lit
	}
	perp := [3]float64{
		s.Position[0] - proj*sunDir[0],
		s.Position[1] - proj*sunDir[1],
		s.Position[2] - proj*sunDir[2],
	}
	return state.Norm(perp) - ed.OccluderRadius
}
