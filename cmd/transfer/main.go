// Command transfer computes a Hohmann transfer between two circular
// orbits, or (with -lambert) a universal-variable Lambert transfer between
// two position vectors over a given time of flight.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/kallah94/space-missions/body"
	"github.com/kallah94/space-missions/solve"
)

var (
	rInit   = flag.Float64("r1", body.Earth.Radius+500, "initial circular radius, km")
	rFinal  = flag.Float64("r2", 42164, "final circular radius, km")
	lambert = flag.Bool("lambert", false, "compute a Lambert transfer instead of a Hohmann transfer")
	tof     = flag.Float64("tof", 3600*5, "time of flight for the Lambert transfer, seconds")
)

func main() {
	flag.Parse()

	if !*lambert {
		h := solve.Hohmann(*rInit, *rFinal, body.MuEarth)
		fmt.Printf("Hohmann transfer %.1f km -> %.1f km\n", *rInit, *rFinal)
		fmt.Printf("  departure burn: %.4f km/s\n", h.DvDeparture)
		fmt.Printf("  arrival burn:   %.4f km/s\n", h.DvArrival)
		fmt.Printf("  total dv:       %.4f km/s\n", h.TotalDv)
		fmt.Printf("  time of flight: %.1f s (%.2f hr)\n", h.TimeOfFlight, h.TimeOfFlight/3600)
		return
	}

	ri := [3]float64{*rInit, 0, 0}
	rf := [3]float64{0, *rFinal, 0}
	sol := solve.Lambert(ri, rf, *tof, solve.TypeAuto, 0, body.MuEarth)
	if !sol.Feasible {
		log.Fatalf("lambert: no feasible transfer for tof=%.1fs", *tof)
	}
	fmt.Printf("Lambert transfer over %.1f s\n", *tof)
	fmt.Printf("  departure velocity: %+.4f km/s\n", sol.V1)
	fmt.Printf("  arrival velocity:   %+.4f km/s\n", sol.V2)
}
