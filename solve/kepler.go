// Package solve implements the orbit-determination and maneuver-design
// solvers: Kepler's equation, orbital-element conversions, time of flight,
// Lambert's problem, and the classical impulsive maneuvers.
package solve

import "math"

const (
	keplerTol     = 1e-12
	keplerMaxIter = 100
)

// SolveKeplerElliptic solves Kepler's equation M = E - e*sin(E) for the
// eccentric anomaly E (radians), given the mean anomaly M (radians) and
// eccentricity e in [0, 1), via Newton-Raphson from the initial guess
// E = M + e*sin(M). Returns a *NonConvergenceError carrying the last
// residual if the iteration cap is exhausted before reaching tolerance.
func SolveKeplerElliptic(meanAnomaly, e float64) (float64, error) {
	M := math.Mod(meanAnomaly, 2*math.Pi)
	if M < 0 {
		M += 2 * math.Pi
	}
	E := M + e*math.Sin(M)
	var delta float64
	for i := 0; i < keplerMaxIter; i++ {
		f := E - e*math.Sin(E) - M
		fPrime := 1 - e*math.Cos(E)
		delta = f / fPrime
		E -= delta
		if math.Abs(delta) < keplerTol {
			return E, nil
		}
	}
	return E, &NonConvergenceError{Op: "SolveKeplerElliptic", Iters: keplerMaxIter, Residual: delta}
}

// SolveKeplerHyperbolic solves the hyperbolic Kepler's equation
// M = e*sinh(H) - H for the hyperbolic anomaly H, given mean anomaly M and
// eccentricity e > 1, via Newton-Raphson from the initial guess
// H = sign(M)*ln(2|M|/e + 1.8). Returns an *InvalidDomainError if e <= 1,
// or a *NonConvergenceError carrying the last residual if the iteration
// cap is exhausted before reaching tolerance.
func SolveKeplerHyperbolic(meanAnomaly, e float64) (float64, error) {
	if e <= 1 {
		return 0, &InvalidDomainError{Op: "SolveKeplerHyperbolic", Msg: "eccentricity must be > 1"}
	}
	H := math.Log(2*math.Abs(meanAnomaly)/e + 1.8)
	if meanAnomaly < 0 {
		H = -H
	}
	var delta float64
	for i := 0; i < keplerMaxIter; i++ {
		f := e*math.Sinh(H) - H - meanAnomaly
		fPrime := e*math.Cosh(H) - 1
		delta = f / fPrime
		H -= delta
		if math.Abs(delta) < keplerTol {
			return H, nil
		}
	}
	return H, &NonConvergenceError{Op: "SolveKeplerHyperbolic", Iters: keplerMaxIter, Residual: delta}
}

// EccentricToTrueAnomaly converts eccentric anomaly E to true anomaly nu,
// for an elliptical orbit of eccentricity e.
func EccentricToTrueAnomaly(E, e float64) float64 {
	sinE, cosE := math.Sincos(E)
	sinNu := math.Sqrt(1-e*e) * sinE / (1 - e*cosE)
	cosNu := (cosE - e) / (1 - e*cosE)
	return math.Atan2(sinNu, cosNu)
}

// TrueToEccentricAnomaly converts true anomaly nu to eccentric anomaly E,
// for an elliptical orbit of eccentricity e.
func TrueToEccentricAnomaly(nu, e float64) float64 {
	sinNu, cosNu := math.Sincos(nu)
	denom := 1 + e*cosNu
	sinE := math.Sqrt(1-e*e) * sinNu / denom
	cosE := (e + cosNu) / denom
	return math.Atan2(sinE, cosE)
}

// HyperbolicToTrueAnomaly converts hyperbolic anomaly H to true anomaly nu,
// for a hyperbolic orbit of eccentricity e > 1.
func HyperbolicToTrueAnomaly(H, e float64) float64 {
	sinhH, coshH := math.Sinh(H), math.Cosh(H)
	sinNu := -math.Sqrt(e*e-1) * sinhH / (1 - e*coshH)
	cosNu := (coshH - e) / (1 - e*coshH)
	return math.Atan2(sinNu, cosNu)
}

// TrueToHyperbolicAnomaly converts true anomaly nu to hyperbolic anomaly H,
// for a hyperbolic orbit of eccentricity e > 1. Matches the teacher's
// Orbit.SinCosE convention for the hyperbolic branch.
func TrueToHyperbolicAnomaly(nu, e float64) float64 {
	sinNu, cosNu := math.Sincos(nu)
	denom := 1 + e*cosNu
	sinH := math.Sqrt(e*e-1) * sinNu / denom
	coshH := (e + cosNu) / denom
	H := math.Log(coshH + math.Sqrt(coshH*coshH-1))
	if sinH < 0 {
		H = -H
	}
	return H
}

// MeanAnomalyElliptic returns the mean anomaly from eccentric anomaly E.
func MeanAnomalyElliptic(E, e float64) float64 {
	return E - e*math.Sin(E)
}

// MeanAnomalyHyperbolic returns the mean anomaly from hyperbolic anomaly H,
// matching the teacher's Orbit.MeanAnomaly formula.
func MeanAnomalyHyperbolic(H, e float64) float64 {
	return e*math.Sinh(H) - H
}

// TimeOfFlight returns the time (seconds) to travel from true anomaly nu1
// to nu2 along an orbit of semi-major axis a (km, negative for hyperbolic)
// and eccentricity e, around a body of gravitational parameter mu. Positive
// direction only (nu2 "ahead" of nu1 in the direction of motion); the
// caller adds whole periods for multi-revolution elliptical transfers.
func TimeOfFlight(a, e, nu1, nu2, mu float64) float64 {
	if e < 1 {
		n := math.Sqrt(mu / math.Pow(a, 3))
		E1 := TrueToEccentricAnomaly(nu1, e)
		E2 := TrueToEccentricAnomaly(nu2, e)
		M1 := MeanAnomalyElliptic(E1, e)
		M2 := MeanAnomalyElliptic(E2, e)
		dM := M2 - M1
		if dM < 0 {
			dM += 2 * math.Pi
		}
		return dM / n
	}
	n := math.Sqrt(mu / math.Pow(-a, 3))
	H1 := TrueToHyperbolicAnomaly(nu1, e)
	H2 := TrueToHyperbolicAnomaly(nu2, e)
	M1 := MeanAnomalyHyperbolic(H1, e)
	M2 := MeanAnomalyHyperbolic(H2, e)
	return (M2 - M1) / n
}
