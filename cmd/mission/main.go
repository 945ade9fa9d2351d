// Command mission runs a numerically-propagated low-thrust mission
// described on the flag line, reporting the final orbital elements. It
// reads the default integrator from the config package when
// SPACE_MISSIONS_CONFIG is set, and otherwise falls back to the flag
// defaults below.
package main

import (
	"flag"
	"log"
	"math"
	"time"

	"github.com/kallah94/space-missions/body"
	"github.com/kallah94/space-missions/config"
	"github.com/kallah94/space-missions/force"
	"github.com/kallah94/space-missions/integrate"
	"github.com/kallah94/space-missions/mission"
	"github.com/kallah94/space-missions/solve"
	"github.com/kallah94/space-missions/state"
)

var (
	altitudeKm  = flag.Float64("altitude", 500, "initial circular altitude above Earth, km")
	fuelMass    = flag.Float64("fuel", 50, "initial fuel mass, kg")
	dryMass     = flag.Float64("dry", 500, "dry mass, kg")
	targetGEO   = flag.Bool("geo", false, "raise to geostationary radius via a Ruggiero low-thrust transfer")
	durationHrs = flag.Float64("hours", 24, "maximum mission duration, hours")
	stepSeconds = flag.Float64("step", 30, "integrator step size, seconds")
)

func main() {
	flag.Parse()

	integratorName := "rk4"
	if cfg, err := config.Load(); err == nil {
		integratorName = cfg.DefaultIntegrator
	}

	r := body.Earth.Radius + *altitudeKm
	v := math.Sqrt(body.MuEarth / r)
	s0 := state.New([3]float64{r, 0, 0}, [3]float64{0, v, 0}, 0)

	var waypoints []mission.Waypoint
	var thrusters []force.EPThruster
	if *targetGEO {
		waypoints = append(waypoints, mission.NewTargetElements(body.MuEarth, mission.EarthGEOTransferTargets()))
		thrusters = append(thrusters, force.NewGenericEP(0.235, 1800))
	} else {
		waypoints = append(waypoints, mission.NewLoiter(time.Duration(*durationHrs)*time.Hour))
	}

	sc := mission.NewSpacecraft("demo", *dryMass, *fuelMass, thrusters, waypoints)
	model := force.LEOModel(sc.Mass(time.Unix(0, 0)), 0.02, 2.2)

	integ := integratorByName(integratorName)
	start := time.Unix(0, 0)
	end := start.Add(time.Duration(*durationHrs) * time.Hour)

	m := mission.NewMission(sc, model, integ, s0, start, end, time.Duration(*stepSeconds*float64(time.Second)), body.Earth.Radius)
	final, reason, err := m.Propagate()
	if err != nil {
		log.Printf("mission ended early: %s (%v)", reason, err)
	} else {
		log.Printf("mission ended: %s", reason)
	}

	el := solve.StateToElements(final.Position, final.Velocity, body.MuEarth)
	log.Printf("final elements: a=%.3fkm e=%.5f i=%.3fdeg raan=%.3fdeg argp=%.3fdeg nu=%.3fdeg",
		el.A, el.E, el.I*180/math.Pi, el.RAAN*180/math.Pi, el.ArgPeriapsis*180/math.Pi, el.TrueAnomaly*180/math.Pi)
}

func integratorByName(name string) integrate.Integrator {
	switch name {
	case "euler":
		return integrate.Euler{}
	case "rkf45":
		return integrate.RKF45{}
	case "velocity-verlet":
		return &integrate.VelocityVerlet{}
	default:
		return integrate.RK4{}
	}
}
