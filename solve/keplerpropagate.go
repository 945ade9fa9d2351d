package solve

import "math"

// PropagateKepler advances a classical element set forward by dt seconds
// under pure two-body dynamics (no perturbations): the semi-major axis,
// eccentricity, inclination, RAAN and argument of periapsis are constant,
// and only the anomaly advances via Kepler's equation. Returns the
// *NonConvergenceError from the underlying Kepler solve, if any.
func PropagateKepler(el Elements, mu, dt float64) (Elements, error) {
	out := el
	if el.E < 1 {
		n := math.Sqrt(mu / math.Pow(el.A, 3))
		E0 := TrueToEccentricAnomaly(el.TrueAnomaly, el.E)
		M0 := MeanAnomalyElliptic(E0, el.E)
		M1 := M0 + n*dt
		E1, err := SolveKeplerElliptic(M1, el.E)
		if err != nil {
			return el, err
		}
		out.TrueAnomaly = math.Mod(EccentricToTrueAnomaly(E1, el.E)+2*math.Pi, 2*math.Pi)
	} else {
		n := math.Sqrt(mu / math.Pow(-el.A, 3))
		H0 := TrueToHyperbolicAnomaly(el.TrueAnomaly, el.E)
		M0 := MeanAnomalyHyperbolic(H0, el.E)
		M1 := M0 + n*dt
		H1, err := SolveKeplerHyperbolic(M1, el.E)
		if err != nil {
			return el, err
		}
		out.TrueAnomaly = HyperbolicToTrueAnomaly(H1, el.E)
	}
	out.TrueLongitude = math.Mod(out.ArgPeriapsis+out.RAAN+out.TrueAnomaly, 2*math.Pi)
	if el.E <= eccentricityEps {
		out.ArgLat = math.Mod(out.TrueAnomaly+out.ArgPeriapsis, 2*math.Pi)
	}
	return out, nil
}

// J2SecularRates returns the secular drift rates (rad/s) of RAAN and
// argument of periapsis due to the central body's J2 oblateness, following
// the standard first-order J2 secular perturbation theory (the analytic
// counterpart of the teacher's Perturbations.Perturb GaussianVOP branch).
func J2SecularRates(el Elements, mu, radius, j2 float64) (raanDot, argpDot float64) {
	p := el.A * (1 - el.E*el.E)
	n := math.Sqrt(mu / math.Pow(el.A, 3))
	cosI := math.Cos(el.I)
	factor := -1.5 * n * j2 * (radius / p) * (radius / p)
	raanDot = factor * cosI
	argpDot = -factor * (2 - 2.5*math.Sin(el.I)*math.Sin(el.I))
	return raanDot, argpDot
}
