// Package station implements ground-station visibility and range/range-rate
// measurement simulation, ported from the spacecraft-tracking model used
// for orbit determination.
package station

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/kallah94/space-missions/body"
	"github.com/kallah94/space-missions/coord"
	"github.com/kallah94/space-missions/state"
)

// Station is a ground tracking station, sited by geodetic coordinates.
type Station struct {
	Name                string
	Altitude            float64 // km above the reference ellipsoid
	Latitude, Longitude float64 // radians
	MinElevation        float64 // radians; below this the station cannot see a target

	rangeNoise, rangeRateNoise *distmv.Normal
}

// NewStation builds a Station with Gaussian range/range-rate noise of
// variance sigmaRange^2 (km^2) and sigmaRangeRate^2 ((km/s)^2).
func NewStation(name string, altitude, minElevation, lat, lon, sigmaRange, sigmaRangeRate float64) Station {
	seed := rand.New(rand.NewSource(1))
	rangeNoise, ok := distmv.NewNormal([]float64{0}, mat.NewSymDense(1, []float64{sigmaRange * sigmaRange}), seed)
	if !ok {
		panic("station: degenerate range noise covariance")
	}
	rangeRateNoise, ok := distmv.NewNormal([]float64{0}, mat.NewSymDense(1, []float64{sigmaRangeRate * sigmaRangeRate}), seed)
	if !ok {
		panic("station: degenerate range-rate noise covariance")
	}
	return Station{
		Name:            name,
		Altitude:        altitude,
		Latitude:        lat,
		Longitude:       lon,
		MinElevation:    minElevation,
		rangeNoise:      rangeNoise,
		rangeRateNoise:  rangeRateNoise,
	}
}

// ECEF returns the station's fixed position in ECEF, km.
func (s Station) ECEF() [3]float64 {
	return coord.GEO2ECEF(s.Altitude, s.Latitude, s.Longitude)
}

// ECEFVelocity returns omega x r, the station's inertial velocity due to
// Earth's rotation expressed in ECEF axes (its velocity relative to ECEF
// itself is zero). Callers difference it against an ECEF-converted inertial
// velocity directly, matching the teacher's station.go V field convention,
// where V is the station's *inertial* velocity expressed once in the ECEF
// frame at epoch.
func (s Station) ECEFVelocity() [3]float64 {
	r := s.ECEF()
	return state.Cross([3]float64{0, 0, body.OmegaEarth}, r)
}

// Measurement is a simulated (noisy) range/range-rate observation.
type Measurement struct {
	Visible                 bool
	Range, RangeRate        float64 // noisy, km and km/s
	TrueRange, TrueRangeRate float64
	Elevation, Azimuth      float64 // radians
}

// Observe computes the range/elevation/azimuth of an inertial spacecraft
// state at Greenwich sidereal angle theta, and simulates a noisy
// measurement if the spacecraft is above the station's minimum elevation.
func (s Station) Observe(theta float64, sc state.Vector) Measurement {
	rECEF := coord.ECI2ECEF(sc.Position, theta)
	vECEF := coord.ECI2ECEF(sc.Velocity, theta)

	siteECEF := s.ECEF()
	siteVel := s.ECEFVelocity()

	_, rho, el, az := coord.RangeElAz(siteECEF, rECEF)
	vRel := state.Sub(vECEF, siteVel)
	rhoDir := state.Unit(state.Sub(rECEF, siteECEF))
	rhoDot := state.Dot(vRel, rhoDir)

	visible := el >= s.MinElevation
	noisyRange := rho + s.rangeNoise.Rand(nil)[0]
	noisyRate := rhoDot + s.rangeRateNoise.Rand(nil)[0]

	return Measurement{
		Visible:         visible,
		Range:           noisyRange,
		RangeRate:       noisyRate,
		TrueRange:       rho,
		TrueRangeRate:   rhoDot,
		Elevation:       el,
		Azimuth:         az,
	}
}

func (s Station) String() string {
	return fmt.Sprintf("%s (%.6f, %.6f) alt=%.3fkm minEl=%.3frad", s.Name, s.Latitude, s.Longitude, s.Altitude, s.MinElevation)
}

// Well-known deep space network stations, ported from the teacher's
// built-in station list (coordinates unchanged, angles converted to
// radians; the noise values are sigmas, which NewStation squares into
// variances).
var (
	DSS34Canberra  = NewStation("DSS34Canberra", 0.691750, 0, deg(-35.398333), deg(148.981944), 5e-3, 5e-6)
	DSS65Madrid    = NewStation("DSS65Madrid", 0.834939, 0, deg(40.427222), deg(4.250556), 5e-3, 5e-6)
	DSS13Goldstone = NewStation("DSS13Goldstone", 1.07114904, 0, deg(35.247164), deg(243.205), 5e-3, 5e-6)
)

func deg(d float64) float64 { return d * 3.141592653589793 / 180 }

// FromName resolves one of the built-in stations by name.
func FromName(name string) (Station, bool) {
	switch name {
	case "DSS13", "dss13":
		return DSS13Goldstone, true
	case "DSS34", "dss34":
		return DSS34Canberra, true
	case "DSS65", "dss65":
		return DSS65Madrid, true
	default:
		return Station{}, false
	}
}
