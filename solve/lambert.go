package solve

import (
	"math"
	"sort"

	"github.com/kallah94/space-missions/state"
)

// TransferType selects which branch of Lambert's problem to solve: short or
// long way around, and how many extra full revolutions to include.
type TransferType uint8

const (
	// TypeAuto picks the short or long way automatically based on the
	// swept angle, with zero revolutions.
	TypeAuto TransferType = iota
	TypeShort
	TypeLong
)

const (
	lambertEps          = 1e-4
	lambertTimeEps      = 1e-4
	lambertMaxIter      = 10000
	lambertCollinearEps = 1e-6
)

// LambertSolution is the outcome of solving Lambert's orbital boundary
// value problem. Per the Infeasible error policy, a transfer that cannot
// be flown (TOF below the parabolic minimum, r1/r2 collinear so the
// transfer plane is undefined, a/p non-finite, or Newton non-convergence)
// is reported as data — Feasible false, zero velocity vectors, DeltaV
// +Inf — rather than a Go error, so combinatorial searches (Rendezvous,
// LaunchWindow, LambertMultiRev) can filter candidates without a
// try/catch-shaped loop.
type LambertSolution struct {
	V1, V2      [3]float64
	Feasible    bool
	DeltaV      float64 // km/s, |V1|+|V2|; +Inf when infeasible
	Revolutions int
}

func infeasibleLambert(revs int) LambertSolution {
	return LambertSolution{Feasible: false, DeltaV: math.Inf(1), Revolutions: revs}
}

// Lambert solves Lambert's orbital boundary value problem via the
// universal-variable method (Vallado's algorithm, the same one the
// teacher's tools.go Lambert ports from BMW): given initial and final
// position vectors and desired time of flight, it returns the velocity
// vectors bracketing that transfer arc. revs selects additional full
// revolutions for a multi-revolution transfer (0 for the direct arc).
func Lambert(ri, rf [3]float64, tof float64, ttype TransferType, revs int, mu float64) LambertSolution {
	rINorm := state.Norm(ri)
	rFNorm := state.Norm(rf)
	cosDNu := state.Dot(ri, rf) / (rINorm * rFNorm)
	if cosDNu > 1 {
		cosDNu = 1
	} else if cosDNu < -1 {
		cosDNu = -1
	}
	if cosDNu < -1+lambertCollinearEps {
		// r1 and r2 are (nearly) antiparallel: sin(pi-dNu) -> 0 and the
		// transfer plane normal (r1 x r2) is undefined.
		return infeasibleLambert(revs)
	}

	chord := state.Norm(state.Sub(rf, ri))
	s := (rINorm + rFNorm + chord) / 2
	tofMin := (1.0 / 3.0) * math.Sqrt(2/mu) * (s*math.Sqrt(2*s) - (s-chord)*math.Sqrt(2*(s-chord)))
	if tof < tofMin {
		return infeasibleLambert(revs)
	}

	dm := 1.0
	switch ttype {
	case TypeLong:
		dm = -1.0
	case TypeAuto:
		dNu := math.Atan2(rf[1], rf[0]) - math.Atan2(ri[1], ri[0])
		if dNu > 2*math.Pi {
			dNu -= 2 * math.Pi
		} else if dNu < 0 {
			dNu += 2 * math.Pi
		}
		if dNu > math.Pi {
			dm = -1.0
		}
	}

	A := dm * math.Sqrt(rINorm*rFNorm*(1+cosDNu))
	if math.Abs(A) < lambertEps {
		return infeasibleLambert(revs)
	}

	phiUp := 4 * math.Pi * math.Pi * float64((revs+1)*(revs+1))
	phiLow := -4 * math.Pi
	if revs > 0 {
		// Locate the minimum-TOF phi to split the bracket into the two
		// admissible sub-arcs for a multi-rev solution (short-period /
		// long-period branches), same search the teacher's tools.go runs.
		minTOF := math.Inf(1)
		phiBound := 0.0
		for phiP := 15.0; phiP < phiUp; phiP += 0.1 {
			c2, c3 := stumpff(phiP)
			y := rINorm + rFNorm + A*(phiP*c3-1)/math.Sqrt(c2)
			if y < 0 {
				continue
			}
			chi := math.Sqrt(y / c2)
			dt := (math.Pow(chi, 3)*c3 + A*math.Sqrt(y)) / math.Sqrt(mu)
			if dt < minTOF {
				minTOF = dt
				phiBound = phiP
			}
		}
		if ttype == TypeLong {
			phiLow = phiBound
		} else {
			phiUp = phiBound
		}
	}

	c2, c3 := 0.5, 1.0/6.0
	var phi, dt, y float64
	for iter := 0; math.Abs(dt-tof) > lambertTimeEps; iter++ {
		if iter > lambertMaxIter {
			return infeasibleLambert(revs)
		}
		y = rINorm + rFNorm + A*(phi*c3-1)/math.Sqrt(c2)
		if A > 0 && y < 0 {
			for tries := 0; y < 0; tries++ {
				if tries > lambertMaxIter {
					return infeasibleLambert(revs)
				}
				phi += 0.1
				y = rINorm + rFNorm + A*(phi*c3-1)/math.Sqrt(c2)
			}
		}
		chi := math.Sqrt(y / c2)
		dt = (math.Pow(chi, 3)*c3 + A*math.Sqrt(y)) / math.Sqrt(mu)
		if math.IsNaN(dt) || math.IsInf(dt, 0) {
			return infeasibleLambert(revs)
		}

		if revs > 0 && ttype == TypeLong {
			if dt >= tof {
				phiLow = phi
			} else {
				phiUp = phi
			}
		} else {
			if dt <= tof {
				phiLow = phi
			} else {
				phiUp = phi
			}
		}
		phi = (phiUp + phiLow) / 2
		c2, c3 = stumpff(phi)
	}

	if y <= 0 || math.IsNaN(y) || math.IsInf(y, 0) {
		return infeasibleLambert(revs)
	}

	f := 1 - y/rINorm
	gDot := 1 - y/rFNorm
	g := A * math.Sqrt(y/mu)
	if g == 0 || math.IsNaN(f) || math.IsNaN(gDot) || math.IsNaN(g) {
		return infeasibleLambert(revs)
	}

	var sol LambertSolution
	for i := 0; i < 3; i++ {
		sol.V1[i] = (rf[i] - f*ri[i]) / g
		sol.V2[i] = (gDot*rf[i] - ri[i]) / g
	}
	if math.IsNaN(sol.V1[0]) || math.IsNaN(sol.V2[0]) {
		return infeasibleLambert(revs)
	}
	sol.Feasible = true
	sol.Revolutions = revs
	sol.DeltaV = state.Norm(sol.V1) + state.Norm(sol.V2)
	return sol
}

// LambertMultiRev enumerates the direct transfer (N=0) and every
// multi-revolution branch N=1..nMax, both short- and long-period sub-arcs
// per revolution count, returning only the feasible solutions found,
// sorted by ascending total delta-v.
func LambertMultiRev(ri, rf [3]float64, tof, mu float64, nMax int) []LambertSolution {
	var out []LambertSolution
	if direct := Lambert(ri, rf, tof, TypeAuto, 0, mu); direct.Feasible {
		out = append(out, direct)
	}
	for n := 1; n <= nMax; n++ {
		for _, tt := range [2]TransferType{TypeShort, TypeLong} {
			if sol := Lambert(ri, rf, tof, tt, n, mu); sol.Feasible {
				out = append(out, sol)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DeltaV < out[j].DeltaV })
	return out
}

// stumpff returns the Stumpff functions c2(phi), c3(phi) used by the
// universal-variable Lambert and Kepler-propagation formulations.
func stumpff(phi float64) (c2, c3 float64) {
	switch {
	case phi > lambertEps:
		sp := math.Sqrt(phi)
		s, c := math.Sincos(sp)
		c2 = (1 - c) / phi
		c3 = (sp - s) / math.Pow(sp, 3)
	case phi < -lambertEps:
		sp := math.Sqrt(-phi)
		c2 = (1 - math.Cosh(sp)) / phi
		c3 = (math.Sinh(sp) - sp) / math.Pow(sp, 3)
	default:
		c2 = 0.5
		c3 = 1.0 / 6.0
	}
	return
}
