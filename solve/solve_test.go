package solve

import (
	"math"
	"testing"

	"github.com/kallah94/space-missions/body"
)

func TestKeplerEllipticRoundTrip(t *testing.T) {
	e := 0.3
	M := 1.2
	E, err := SolveKeplerElliptic(M, e)
	if err != nil {
		t.Fatalf("SolveKeplerElliptic: %v", err)
	}
	gotM := MeanAnomalyElliptic(E, e)
	if math.Abs(gotM-M) > 1e-9 {
		t.Fatalf("mean anomaly round trip: got %f want %f", gotM, M)
	}
}

func TestKeplerHyperbolicRoundTrip(t *testing.T) {
	e := 1.5
	M := 2.0
	H, err := SolveKeplerHyperbolic(M, e)
	if err != nil {
		t.Fatalf("SolveKeplerHyperbolic: %v", err)
	}
	gotM := MeanAnomalyHyperbolic(H, e)
	if math.Abs(gotM-M) > 1e-6 {
		t.Fatalf("hyperbolic mean anomaly round trip: got %f want %f", gotM, M)
	}
}

func TestKeplerHyperbolicRejectsEllipticEccentricity(t *testing.T) {
	if _, err := SolveKeplerHyperbolic(1.0, 0.5); err == nil {
		t.Fatalf("expected InvalidDomainError for e <= 1")
	} else if _, ok := err.(*InvalidDomainError); !ok {
		t.Fatalf("expected *InvalidDomainError, got %T", err)
	}
}

func TestAnomalyConversionsRoundTrip(t *testing.T) {
	e := 0.4
	nu := 1.1
	E := TrueToEccentricAnomaly(nu, e)
	back := EccentricToTrueAnomaly(E, e)
	if math.Abs(back-nu) > 1e-9 {
		t.Fatalf("true<->eccentric round trip: got %f want %f", back, nu)
	}
}

func TestStateElementsRoundTripCircular(t *testing.T) {
	r := body.REarth + 400
	v := math.Sqrt(body.MuEarth / r)
	rVec := [3]float64{r, 0, 0}
	vVec := [3]float64{0, v, 0}
	el := StateToElements(rVec, vVec, body.MuEarth)
	if math.Abs(el.A-r) > 1e-4 {
		t.Errorf("a = %f, want %f", el.A, r)
	}
	if el.E > 1e-3 {
		t.Errorf("e = %f, want ~0", el.E)
	}
	backR, backV := ElementsToState(el, body.MuEarth)
	for i := 0; i < 3; i++ {
		if math.Abs(backR[i]-rVec[i]) > 1e-3 {
			t.Errorf("position[%d] = %f, want %f", i, backR[i], rVec[i])
		}
		if math.Abs(backV[i]-vVec[i]) > 1e-6 {
			t.Errorf("velocity[%d] = %f, want %f", i, backV[i], vVec[i])
		}
	}
}

func TestStateElementsRoundTripEccentricInclined(t *testing.T) {
	el := Elements{A: 8000, E: 0.2, I: 0.7, RAAN: 1.1, ArgPeriapsis: 0.5, TrueAnomaly: 2.0}
	r, v := ElementsToState(el, body.MuEarth)
	back := StateToElements(r, v, body.MuEarth)
	if math.Abs(back.A-el.A) > 1e-3 {
		t.Errorf("a = %f, want %f", back.A, el.A)
	}
	if math.Abs(back.E-el.E) > 1e-6 {
		t.Errorf("e = %f, want %f", back.E, el.E)
	}
	if math.Abs(back.I-el.I) > 1e-6 {
		t.Errorf("i = %f, want %f", back.I, el.I)
	}
}

func TestClassifyOrbit(t *testing.T) {
	circ := Elements{E: 0, I: 0.5}
	if ClassifyOrbit(circ) != CircularInclined {
		t.Errorf("expected CircularInclined")
	}
	hyper := Elements{E: 1.5, I: 0.2}
	if ClassifyOrbit(hyper) != Hyperbolic {
		t.Errorf("expected Hyperbolic")
	}
}

func TestPropagateKeplerPreservesShape(t *testing.T) {
	el := Elements{A: 8000, E: 0.1, I: 0.3, RAAN: 0.2, ArgPeriapsis: 0.4, TrueAnomaly: 0.1}
	period := Period(el.A, body.MuEarth)
	out, err := PropagateKepler(el, body.MuEarth, period)
	if err != nil {
		t.Fatalf("PropagateKepler: %v", err)
	}
	if math.Abs(out.TrueAnomaly-el.TrueAnomaly) > 1e-3 {
		t.Errorf("after one full period, anomaly should return close to start: got %f want %f", out.TrueAnomaly, el.TrueAnomaly)
	}
}

func TestLambertCircularToCircularQuarterOrbit(t *testing.T) {
	r := body.REarth + 400
	ri := [3]float64{r, 0, 0}
	rf := [3]float64{0, r, 0}
	v := math.Sqrt(body.MuEarth / r)
	period := 2 * math.Pi * r / v
	tof := period / 4

	sol := Lambert(ri, rf, tof, TypeShort, 0, body.MuEarth)
	if !sol.Feasible {
		t.Fatalf("expected a feasible Lambert solution")
	}
	viNorm := math.Sqrt(sol.V1[0]*sol.V1[0] + sol.V1[1]*sol.V1[1] + sol.V1[2]*sol.V1[2])
	vfNorm := math.Sqrt(sol.V2[0]*sol.V2[0] + sol.V2[1]*sol.V2[1] + sol.V2[2]*sol.V2[2])
	if math.Abs(viNorm-v) > 1e-2 {
		t.Errorf("|vi| = %f, want ~%f (circular speed)", viNorm, v)
	}
	if math.Abs(vfNorm-v) > 1e-2 {
		t.Errorf("|vf| = %f, want ~%f", vfNorm, v)
	}
}

func TestLambertCollinearPositionsAreInfeasible(t *testing.T) {
	r := body.REarth + 400
	ri := [3]float64{r, 0, 0}
	rf := [3]float64{-r, 0, 0}
	sol := Lambert(ri, rf, 3600, TypeAuto, 0, body.MuEarth)
	if sol.Feasible {
		t.Fatalf("expected collinear r1/r2 to be infeasible")
	}
	if !math.IsInf(sol.DeltaV, 1) {
		t.Errorf("expected DeltaV = +Inf for an infeasible solution, got %f", sol.DeltaV)
	}
}

func TestLambertBelowParabolicMinimumTOFIsInfeasible(t *testing.T) {
	r := body.REarth + 400
	ri := [3]float64{r, 0, 0}
	rf := [3]float64{0, r, 0}
	sol := Lambert(ri, rf, 1e-6, TypeShort, 0, body.MuEarth)
	if sol.Feasible {
		t.Fatalf("expected a near-zero time of flight to be infeasible")
	}
}

func TestLambertMultiRevSortedByDeltaV(t *testing.T) {
	r := body.REarth + 400
	ri := [3]float64{r, 0, 0}
	rf := [3]float64{0, r, 0}
	v := math.Sqrt(body.MuEarth / r)
	period := 2 * math.Pi * r / v
	sols := LambertMultiRev(ri, rf, period/4, body.MuEarth, 1)
	for i := 1; i < len(sols); i++ {
		if sols[i].DeltaV < sols[i-1].DeltaV {
			t.Fatalf("solutions not sorted by ascending delta-v: %v", sols)
		}
	}
	for _, s := range sols {
		if !s.Feasible {
			t.Errorf("LambertMultiRev must only return feasible solutions, got %+v", s)
		}
	}
}

func TestHohmannMatchesCircularSpeedDifference(t *testing.T) {
	rI := body.REarth + 300
	rF := body.REarth + 35786 // GEO-ish
	res := Hohmann(rI, rF, body.MuEarth)
	if res.TotalDv <= 0 {
		t.Fatalf("expected positive total dv")
	}
	if res.TimeOfFlight <= 0 {
		t.Fatalf("expected positive time of flight")
	}
}

func TestBiEllipticCanBeatHohmannForLargeRatio(t *testing.T) {
	rI := 7000.0
	rF := 400000.0
	rB := 800000.0
	hoh := Hohmann(rI, rF, body.MuEarth)
	bi := BiElliptic(rI, rF, rB, body.MuEarth)
	if bi.TotalDv <= 0 || hoh.TotalDv <= 0 {
		t.Fatalf("expected positive delta-v for both transfer types")
	}
	if bi.TotalDv >= hoh.TotalDv {
		t.Errorf("bi-elliptic total %f km/s should beat Hohmann %f km/s for rF/rI = %.1f", bi.TotalDv, hoh.TotalDv, rF/rI)
	}
}

func TestPlaneChangeZeroAngleIsFree(t *testing.T) {
	if dv := PlaneChange(7.5, 0); dv != 0 {
		t.Errorf("zero-angle plane change should cost nothing, got %f", dv)
	}
}

func TestMultiImpulseSkipsNegligibleTerms(t *testing.T) {
	el := Elements{A: 8000, E: 0.01, I: 0.5, RAAN: 0.2, ArgPeriapsis: 0.1, TrueAnomaly: 0}
	res := MultiImpulse(el, el, body.MuEarth)
	if res.PlaneChangeDv != 0 || res.ShapeChangeDv != 0 || res.TotalDv != 0 {
		t.Fatalf("identical element sets should need no maneuver, got %+v", res)
	}
}

func TestMultiImpulseInclinationOnlyChange(t *testing.T) {
	initial := Elements{A: 8000, E: 0.01, I: 0.5, RAAN: 0.2, ArgPeriapsis: 0.1, TrueAnomaly: 0}
	target := initial
	target.I += 0.1
	res := MultiImpulse(initial, target, body.MuEarth)
	if res.PlaneChangeDv <= 0 {
		t.Errorf("expected a positive plane-change delta-v")
	}
	if res.ShapeChangeDv != 0 {
		t.Errorf("expected no shape-change delta-v, got %f", res.ShapeChangeDv)
	}
	if math.Abs(res.TotalDv-res.PlaneChangeDv) > 1e-12 {
		t.Errorf("total should equal plane-change term alone")
	}
}

func TestRendezvousFindsFeasibleTransfer(t *testing.T) {
	r := body.REarth + 500
	v := math.Sqrt(body.MuEarth / r)
	chaserR := [3]float64{r, 0, 0}
	chaserV := [3]float64{0, v, 0}
	targetEl := Elements{A: r, E: 1e-6, I: 0, RAAN: 0, ArgPeriapsis: 0, TrueAnomaly: 1.0}

	res, err := Rendezvous(chaserR, chaserV, targetEl, body.MuEarth, 3*Period(r, body.MuEarth))
	if err != nil {
		t.Fatalf("Rendezvous: %v", err)
	}
	if res.TimeOfFlight <= 0 {
		t.Errorf("expected a positive time of flight")
	}
	if res.TotalDv <= 0 {
		t.Errorf("expected a positive total delta-v")
	}
}

func TestLaunchWindowScansFullDay(t *testing.T) {
	results := LaunchWindow(28.5*math.Pi/180, 0.9, 7.8)
	if len(results) != 144 {
		t.Fatalf("expected 144 ten-minute steps across 24h, got %d", len(results))
	}
	for _, r := range results {
		if r.DeltaV <= 0 {
			t.Errorf("expected positive delta-v, got %f", r.DeltaV)
		}
	}
}

func TestLaunchWindowUnreachableInclinationYieldsNoResults(t *testing.T) {
	// A near-polar site cannot reach a near-equatorial inclination by
	// direct ascent: cos(inclination)/cos(phi) falls outside [-1, 1].
	results := LaunchWindow(85*math.Pi/180, 5*math.Pi/180, 7.8)
	if results != nil {
		t.Errorf("expected no launch opportunities, got %d", len(results))
	}
}

func TestPatchedConicPositiveDv(t *testing.T) {
	dep, arr := PatchedConicInterplanetary(6678, body.MuEarth, 3.0, 6000, body.MuSun*0, 1.5)
	if dep.Dv <= 0 {
		t.Errorf("departure dv should be positive")
	}
	_ = arr
}
