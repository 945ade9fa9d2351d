// Package mission ties a spacecraft, its thrusters and a sequence of
// waypoints to a numerical propagation loop, driving the simulation until
// every waypoint is cleared.
package mission

import (
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"

	"github.com/kallah94/space-missions/force"
	"github.com/kallah94/space-missions/state"
)

// Cargo is a piece of freight carried by a Spacecraft; its mass counts
// toward the spacecraft's Mass from its Arrival time on.
type Cargo struct {
	Name    string
	Mass    float64 // kg
	Arrival time.Time
}

// Spacecraft tracks dry/fuel mass and the electric thrusters available to
// reach its waypoints. Fuel is consumed as thrust is commanded; once it
// reaches zero the spacecraft coasts regardless of the active control law.
type Spacecraft struct {
	Name      string
	DryMass   float64
	FuelMass  float64
	Thrusters []force.EPThruster
	Cargo     []Cargo
	WayPoints []Waypoint
	logger    kitlog.Logger
	activeIdx int
}

// NewSpacecraft builds a Spacecraft with a logfmt logger in the teacher's
// style (one line per state-machine transition, tagged with subsystem).
func NewSpacecraft(name string, dryMass, fuelMass float64, thrusters []force.EPThruster, wp []Waypoint) *Spacecraft {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "spacecraft", name)
	return &Spacecraft{
		Name:      name,
		DryMass:   dryMass,
		FuelMass:  fuelMass,
		Thrusters: thrusters,
		WayPoints: wp,
		logger:    klog,
	}
}

// Mass returns the vehicle's current total mass, counting only cargo that
// has already arrived aboard by dt.
func (sc *Spacecraft) Mass(dt time.Time) float64 {
	m := sc.DryMass
	if sc.FuelMass > 0 {
		m += sc.FuelMass
	}
	for _, c := range sc.Cargo {
		if !dt.Before(c.Arrival) {
			m += c.Mass
		}
	}
	if m <= 0 {
		m = 1
	}
	return m
}

// CurrentWaypoint returns the first not-yet-cleared waypoint, or nil if all
// have been cleared.
func (sc *Spacecraft) CurrentWaypoint() Waypoint {
	for sc.activeIdx < len(sc.WayPoints) {
		wp := sc.WayPoints[sc.activeIdx]
		if !wp.Cleared() {
			return wp
		}
		sc.logger.Log("level", "notice", "subsys", "astro", "waypoint", wp.String(), "status", "completed")
		sc.activeIdx++
	}
	return nil
}

// Accelerate evaluates the active waypoint's control law at the given state
// and epoch, drawing on the first available thruster. It returns the
// commanded thrust direction (unit vector, zero if coasting), the thrust
// magnitude in Newtons and the mass-flow rate (kg/s) it would incur.
func (sc *Spacecraft) Accelerate(dt time.Time, s state.Vector) (direction [3]float64, thrustN, mdot float64) {
	wp := sc.CurrentWaypoint()
	if wp == nil || sc.FuelMass <= 0 || len(sc.Thrusters) == 0 {
		return [3]float64{}, 0, 0
	}
	dir, thrusting := wp.ThrustDirection(s, dt)
	if !thrusting {
		return [3]float64{}, 0, 0
	}
	thruster := sc.Thrusters[0]
	voltage, power := thruster.Max()
	thrustN, isp := thruster.Thrust(voltage, power)
	mdot = force.MassFlowRate(thrustN, isp)
	return dir, thrustN, mdot
}

// DrainFuel subtracts fuel burned over dt seconds at the given mass-flow
// rate, never driving FuelMass below zero.
func (sc *Spacecraft) DrainFuel(mdot, dt float64) {
	sc.FuelMass -= mdot * dt
	if sc.FuelMass < 0 {
		sc.FuelMass = 0
	}
}

// LogInfo logs the spacecraft's current waypoint queue.
func (sc *Spacecraft) LogInfo() {
	var summary string
	for i, wp := range sc.WayPoints {
		if i > 0 {
			summary += " -> "
		}
		summary += wp.String()
	}
	sc.logger.Log("level", "info", "subsys", "astro", "waypoints", summary)
}

// AllCleared reports whether every waypoint has been reached.
func (sc *Spacecraft) AllCleared() bool {
	return sc.CurrentWaypoint() == nil
}
