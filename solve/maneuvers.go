package solve

import (
	"fmt"
	"math"

	"github.com/kallah94/space-missions/state"
)

// HohmannResult describes a two-impulse Hohmann transfer between circular
// (or circularized) orbits.
type HohmannResult struct {
	DvDeparture  float64
	DvArrival    float64
	TotalDv      float64
	TimeOfFlight float64 // seconds
}

// Hohmann computes a Hohmann transfer between two circular orbits of radii
// rI, rF around a body of gravitational parameter mu, following the
// teacher's tools.go Hohmann formula.
func Hohmann(rI, rF, mu float64) HohmannResult {
	aTransfer := 0.5 * (rI + rF)
	vI := math.Sqrt(mu / rI)
	vF := math.Sqrt(mu / rF)
	vTransferI := math.Sqrt(2*mu/rI - mu/aTransfer)
	vTransferF := math.Sqrt(2*mu/rF - mu/aTransfer)
	dvDep := math.Abs(vTransferI - vI)
	dvArr := math.Abs(vF - vTransferF)
	tof := math.Pi * math.Sqrt(math.Pow(aTransfer, 3)/mu)
	return HohmannResult{DvDeparture: dvDep, DvArrival: dvArr, TotalDv: dvDep + dvArr, TimeOfFlight: tof}
}

// BiElliptic computes a three-impulse bi-elliptic transfer through an
// intermediate apoapsis radius rB, useful when rF/rI is large enough that
// it beats a direct Hohmann transfer.
func BiElliptic(rI, rF, rB, mu float64) HohmannResult {
	vI := math.Sqrt(mu / rI)
	vF := math.Sqrt(mu / rF)

	aTransfer1 := 0.5 * (rI + rB)
	aTransfer2 := 0.5 * (rB + rF)

	vTransfer1I := math.Sqrt(2*mu/rI - mu/aTransfer1)
	vTransfer1B := math.Sqrt(2*mu/rB - mu/aTransfer1)
	vTransfer2B := math.Sqrt(2*mu/rB - mu/aTransfer2)
	vTransfer2F := math.Sqrt(2*mu/rF - mu/aTransfer2)

	dv1 := math.Abs(vTransfer1I - vI)
	dv2 := math.Abs(vTransfer2B - vTransfer1B)
	dv3 := math.Abs(vF - vTransfer2F)

	tof := math.Pi*math.Sqrt(math.Pow(aTransfer1, 3)/mu) + math.Pi*math.Sqrt(math.Pow(aTransfer2, 3)/mu)
	return HohmannResult{DvDeparture: dv1, DvArrival: dv2 + dv3, TotalDv: dv1 + dv2 + dv3, TimeOfFlight: tof}
}

// PlaneChange returns the delta-v (km/s) of a pure plane-change burn at
// velocity v (km/s) rotating the orbital plane by angle (radians).
func PlaneChange(v, angle float64) float64 {
	return 2 * v * math.Sin(angle/2)
}

// CombinedPlaneChange returns the delta-v of a single burn that both
// changes speed from v1 to v2 and rotates the plane by angle, via the law
// of cosines on the velocity triangle.
func CombinedPlaneChange(v1, v2, angle float64) float64 {
	return math.Sqrt(v1*v1 + v2*v2 - 2*v1*v2*math.Cos(angle))
}

// RendezvousResult is the Lambert transfer (out of the T-scan) that
// minimizes total delta-v to rendezvous with the target.
type RendezvousResult struct {
	TimeOfFlight float64    // seconds
	Dv1          [3]float64 // km/s, chaser's departure burn: v_lambert - v_chaser
	Dv2          [3]float64 // km/s, arrival burn matching the target: v_target - v_lambert_arrival
	TotalDv      float64
}

// Rendezvous solves the chaser/target rendezvous problem by scanning time
// of flight T over [0, window] at resolution window/100: for each T, the
// target is Kepler-propagated to its position at T, a Lambert transfer is
// solved from the chaser's current position to that propagated position,
// and the T minimizing total delta-v (departure burn matching the Lambert
// arc, arrival burn matching the target's velocity) is kept.
func Rendezvous(chaserR, chaserV [3]float64, targetElements Elements, mu, window float64) (RendezvousResult, error) {
	const steps = 100
	step := window / steps

	best := RendezvousResult{TotalDv: math.Inf(1)}
	found := false
	for i := 1; i <= steps; i++ {
		T := step * float64(i)
		targetEl, err := PropagateKepler(targetElements, mu, T)
		if err != nil {
			continue
		}
		targetR, targetV := ElementsToState(targetEl, mu)

		sol := Lambert(chaserR, targetR, T, TypeAuto, 0, mu)
		if !sol.Feasible {
			continue
		}

		dv1 := state.Sub(sol.V1, chaserV)
		dv2 := state.Sub(targetV, sol.V2)
		total := state.Norm(dv1) + state.Norm(dv2)
		if total < best.TotalDv {
			best = RendezvousResult{TimeOfFlight: T, Dv1: dv1, Dv2: dv2, TotalDv: total}
			found = true
		}
	}
	if !found {
		return RendezvousResult{}, fmt.Errorf("solve: Rendezvous: no feasible Lambert transfer found over [0, %g]s", window)
	}
	return best, nil
}

// MultiImpulseResult is a maneuver plan designed from the difference
// between an initial and a target element set: a plane-change burn at
// the node, then a tangential shape-change burn at periapsis. Either term
// is zero when its triggering element difference is below tolerance.
type MultiImpulseResult struct {
	PlaneChangeDv float64
	ShapeChangeDv float64
	TotalDv       float64
}

// MultiImpulse designs a maneuver plan from an initial and a target
// element set, around a body of gravitational parameter mu: a
// plane-change burn at the orbital velocity where the node crosses (only
// if the inclination delta exceeds angleEps), followed by a tangential
// burn at periapsis reshaping the orbit (only if the semi-major-axis or
// eccentricity delta exceeds eccentricityEps). TotalDv is the sum of
// whichever terms actually fired.
func MultiImpulse(initial, target Elements, mu float64) MultiImpulseResult {
	var res MultiImpulseResult

	if di := target.I - initial.I; math.Abs(di) > angleEps {
		rNode := Periapsis(initial.A, initial.E) // node-crossing radius approximated at periapsis radius
		vNode := math.Sqrt(mu * (2/rNode - 1/initial.A))
		res.PlaneChangeDv = PlaneChange(vNode, di)
	}

	da := target.A - initial.A
	de := target.E - initial.E
	if math.Abs(da) > eccentricityEps || math.Abs(de) > eccentricityEps {
		rP := Periapsis(initial.A, initial.E)
		vPInitial := math.Sqrt(mu * (2/rP - 1/initial.A))
		vPTarget := math.Sqrt(mu * (2/rP - 1/target.A))
		res.ShapeChangeDv = math.Abs(vPTarget - vPInitial)
	}

	res.TotalDv = res.PlaneChangeDv + res.ShapeChangeDv
	return res
}

// PatchedConicLeg is one leg (departure hyperbola, heliocentric transfer, or
// arrival hyperbola) of an interplanetary patched-conic trajectory.
type PatchedConicLeg struct {
	VInfinity float64 // km/s, hyperbolic excess speed
	Dv        float64 // km/s, impulse to enter/leave this leg from a parking orbit
}

// PatchedConicInterplanetary composes a departure-planet parking-orbit
// escape and an arrival-planet parking-orbit capture from the given
// hyperbolic excess speeds at each end (for instance those of a
// heliocentric Lambert transfer, which this function does not solve), using
// the patched-conic approximation (sphere-of-influence boundary,
// instantaneous velocity matching).
func PatchedConicInterplanetary(rParkDeparture, muDeparture, vInfDeparture, rParkArrival, muArrival, vInfArrival float64) (departure, arrival PatchedConicLeg) {
	vParkDeparture := math.Sqrt(muDeparture / rParkDeparture)
	vHyperbolicDeparture := math.Sqrt(vInfDeparture*vInfDeparture + 2*muDeparture/rParkDeparture)
	departure = PatchedConicLeg{VInfinity: vInfDeparture, Dv: vHyperbolicDeparture - vParkDeparture}

	vParkArrival := math.Sqrt(muArrival / rParkArrival)
	vHyperbolicArrival := math.Sqrt(vInfArrival*vInfArrival + 2*muArrival/rParkArrival)
	arrival = PatchedConicLeg{VInfinity: vInfArrival, Dv: vHyperbolicArrival - vParkArrival}
	return
}

// earthSurfaceRotationSpeed is Earth's equatorial surface rotational
// speed, km/s (465.1 m/s), the v_earth term in the launch-azimuth
// velocity triangle.
const earthSurfaceRotationSpeed = 0.4651

// LaunchWindowResult is one scanned ground-launch opportunity.
type LaunchWindowResult struct {
	DepartureTime float64 // seconds past the scan's reference epoch
	Azimuth       float64 // radians, launch azimuth beta
	DeltaV        float64 // km/s, velocity-triangle delta-v the vehicle must supply
}

// LaunchWindow scans a 24-hour day at 10-minute resolution for direct-
// ascent launch opportunities from a site at geodetic latitude phi
// (radians) into a circular orbit of orbital speed vOrb (km/s) and
// inclination (radians). The launch azimuth solves
// beta = asin(cos(inclination)/cos(phi)); a site whose latitude magnitude
// exceeds the target inclination has no real solution and yields no
// results. The delta-v is the velocity-triangle distance between the
// desired orbital velocity and the site's eastward rotational speed
// v_earth = 465.1*cos(phi) m/s.
func LaunchWindow(phi, inclination, vOrb float64) []LaunchWindowResult {
	cosPhi := math.Cos(phi)
	sinBeta := math.Cos(inclination) / cosPhi
	if sinBeta > 1 || sinBeta < -1 {
		return nil
	}
	beta := math.Asin(sinBeta)
	vEarth := earthSurfaceRotationSpeed * cosPhi
	dv := math.Sqrt(vOrb*vOrb + vEarth*vEarth - 2*vOrb*vEarth*math.Cos(beta))

	const stepSeconds = 600.0 // 10 minutes
	const daySeconds = 86400.0
	results := make([]LaunchWindowResult, 0, int(daySeconds/stepSeconds))
	for t := 0.0; t < daySeconds; t += stepSeconds {
		results = append(results, LaunchWindowResult{DepartureTime: t, Azimuth: beta, DeltaV: dv})
	}
	return results
}
