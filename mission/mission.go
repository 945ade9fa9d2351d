package mission

import (
	"fmt"
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"

	"github.com/kallah94/space-missions/force"
	"github.com/kallah94/space-missions/integrate"
	"github.com/kallah94/space-missions/state"
)

// Mission drives a Spacecraft through its waypoints under a given force
// model, stepping a fixed-step integrator until every waypoint clears, the
// spacecraft collides with the central body, or the end date is reached.
// With no fuel left the spacecraft coasts.
type Mission struct {
	Vehicle   *Spacecraft
	Model     *force.Model
	Integ     integrate.Integrator
	StepSize  time.Duration
	StartDT   time.Time
	EndDT     time.Time
	CurrentDT time.Time
	State     state.Vector
	logger    kitlog.Logger
	collided  bool
	centralR  float64
}

// NewMission builds a Mission. centralBodyRadius is used only for the
// collision check (radius <= centralBodyRadius aborts the propagation).
func NewMission(sc *Spacecraft, model *force.Model, integ integrate.Integrator, s0 state.Vector, start, end time.Time, step time.Duration, centralBodyRadius float64) *Mission {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "mission", sc.Name)
	return &Mission{
		Vehicle:   sc,
		Model:     model,
		Integ:     integ,
		StepSize:  step,
		StartDT:   start,
		EndDT:     end,
		CurrentDT: start,
		State:     s0,
		logger:    klog,
		centralR:  centralBodyRadius,
	}
}

// Propagate runs the mission to completion, returning the final state and
// the reason propagation stopped.
func (m *Mission) Propagate() (state.Vector, string, error) {
	m.Vehicle.LogInfo()
	dtSeconds := m.StepSize.Seconds()
	if dtSeconds <= 0 {
		return m.State, "", fmt.Errorf("mission: StepSize must be positive")
	}

	for m.CurrentDT.Before(m.EndDT) {
		if m.Vehicle.AllCleared() {
			m.logger.Log("level", "notice", "subsys", "astro", "status", "all waypoints cleared", "date", m.CurrentDT)
			return m.State, "completed", nil
		}

		direction, thrustN, mdot := m.Vehicle.Accelerate(m.CurrentDT, m.State)
		deriv := m.Model.Derivative
		if thrustN > 0 {
			mass := m.Vehicle.Mass(m.CurrentDT)
			thrustModel := force.NewModel(mass, append(append([]force.Force{}, m.Model.Forces...),
				force.Thrust{
					ThrustN: thrustN,
					Law:     force.ConstantDirection(direction),
					Mass:    func() float64 { return mass },
				})...)
			deriv = thrustModel.Derivative
		}

		m.State = m.Integ.Step(m.State, deriv, dtSeconds)
		m.State.Time += dtSeconds
		m.Vehicle.DrainFuel(mdot, dtSeconds)
		m.CurrentDT = m.CurrentDT.Add(m.StepSize)

		if state.Norm(m.State.Position) <= m.centralR {
			m.collided = true
			m.logger.Log("level", "critical", "subsys", "astro", "status", "collided with central body", "date", m.CurrentDT)
			return m.State, "collided", fmt.Errorf("mission: collided with central body at %s", m.CurrentDT)
		}
	}
	m.logger.Log("level", "notice", "subsys", "astro", "status", "end date reached", "date", m.CurrentDT)
	return m.State, "end-date", nil
}

// Collided reports whether the mission ended in a collision with the
// central body.
func (m *Mission) Collided() bool { return m.collided }
