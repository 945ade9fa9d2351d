package mission

import (
	"fmt"
	"time"

	"github.com/kallah94/space-missions/solve"
	"github.com/kallah94/space-missions/state"
)

// Waypoint is a single stage of a mission: something the spacecraft must do
// (coast, thrust, wait) before moving on to the next stage.
type Waypoint interface {
	Cleared() bool
	ThrustDirection(s state.Vector, dt time.Time) (direction [3]float64, thrusting bool)
	String() string
}

// Loiter waits for a fixed duration, coasting, before clearing.
type Loiter struct {
	Duration time.Duration
	start    time.Time
	started  bool
	cleared  bool
}

// NewLoiter builds a Loiter waypoint.
func NewLoiter(d time.Duration) *Loiter {
	return &Loiter{Duration: d}
}

func (wp *Loiter) String() string { return fmt.Sprintf("loiter for %s", wp.Duration) }

// Cleared implements Waypoint.
func (wp *Loiter) Cleared() bool { return wp.cleared }

// ThrustDirection implements Waypoint; Loiter never thrusts.
func (wp *Loiter) ThrustDirection(s state.Vector, dt time.Time) ([3]float64, bool) {
	if !wp.started {
		wp.started = true
		wp.start = dt
		return [3]float64{}, false
	}
	if dt.Sub(wp.start) >= wp.Duration {
		wp.cleared = true
	}
	return [3]float64{}, false
}

// ReachAltitude thrusts tangentially (prograde to climb, retrograde to
// descend) until the radius from the central body crosses the target.
type ReachAltitude struct {
	TargetRadius float64
	Climbing     bool
	cleared      bool
}

// NewReachAltitude builds a ReachAltitude waypoint.
func NewReachAltitude(targetRadius float64, climbing bool) *ReachAltitude {
	return &ReachAltitude{TargetRadius: targetRadius, Climbing: climbing}
}

func (wp *ReachAltitude) String() string {
	return fmt.Sprintf("reach radius %.1f km", wp.TargetRadius)
}

// Cleared implements Waypoint.
func (wp *ReachAltitude) Cleared() bool { return wp.cleared }

// ThrustDirection implements Waypoint.
func (wp *ReachAltitude) ThrustDirection(s state.Vector, dt time.Time) ([3]float64, bool) {
	r := state.Norm(s.Position)
	if (wp.Climbing && r >= wp.TargetRadius) || (!wp.Climbing && r <= wp.TargetRadius) {
		wp.cleared = true
		return [3]float64{}, false
	}
	along := state.Unit(s.Velocity)
	if !wp.Climbing {
		along = [3]float64{-along[0], -along[1], -along[2]}
	}
	return along, true
}

// TargetElements uses a Ruggiero feedback control law to steer toward a
// target set of orbital elements, clearing once the law reports convergence.
type TargetElements struct {
	Law     *solve.RuggieroLaw
	cleared bool
}

// NewTargetElements builds a TargetElements waypoint around mu and a set of
// per-element Ruggiero targets.
func NewTargetElements(mu float64, targets []solve.RuggieroTarget) *TargetElements {
	return &TargetElements{Law: solve.NewRuggieroLaw(mu, targets...)}
}

func (wp *TargetElements) String() string { return "target orbital elements" }

// Cleared implements Waypoint.
func (wp *TargetElements) Cleared() bool { return wp.cleared }

// ThrustDirection implements Waypoint.
func (wp *TargetElements) ThrustDirection(s state.Vector, dt time.Time) ([3]float64, bool) {
	if wp.Law.Converged(s) {
		wp.cleared = true
		return [3]float64{}, false
	}
	return wp.Law.Direction(s, 0), true
}

// EarthGEOTransferTargets is a convenience constructor for a common mission
// profile: raise a circular Earth orbit's semi-major axis to geostationary
// radius while holding eccentricity and inclination near zero.
func EarthGEOTransferTargets() []solve.RuggieroTarget {
	const geoRadius = 42164.0
	return []solve.RuggieroTarget{
		{Element: solve.ElementA, Target: geoRadius, Tolerance: 1},
		{Element: solve.ElementE, Target: 0, Tolerance: 1e-3},
		{Element: solve.ElementI, Target: 0, Tolerance: 1e-4},
	}
}
