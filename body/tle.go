package body

import (
	"math"
	"strconv"
	"strings"

	gosatellite "github.com/joshuaferrara/go-satellite"
	"github.com/pkg/errors"
)

// TLEData is the mean-element set carried by a two-line element set, per
// spec.md §3: satellite number, epoch, mean-motion derivatives, BSTAR drag
// term, and mean Keplerian elements in the TEME frame. Angles are radians,
// mean motion is rad/min, matching the SGP4-style propagator's unit
// contract.
type TLEData struct {
	SatelliteNumber int
	EpochYear       int
	EpochDay        float64 // fractional day of year

	MeanMotionDot  float64 // rad/min^2, first derivative (the TLE field holds half of it)
	MeanMotionDDot float64 // rad/min^3, second derivative (the TLE field holds a sixth of it)
	BStar          float64 // drag term, 1/earth-radii

	Inclination  float64 // rad
	RAAN         float64 // rad
	Eccentricity float64
	ArgPerigee   float64 // rad
	MeanAnomaly  float64 // rad
	MeanMotion   float64 // rad/min

	// raw is the go-satellite record backing this TLE, used opaquely by
	// package propagate's SGP4Reduced propagator via gosatellite.Propagate,
	// per DESIGN NOTES §9 option (b): link a true SGP4 rather than
	// hand-roll Brouwer-Lyddane.
	raw gosatellite.Satellite
}

// Raw exposes the go-satellite record backing this TLE.
func (d TLEData) Raw() gosatellite.Satellite { return d.raw }

const deg2radTLE = math.Pi / 180.0
const revPerDayToRadPerMin = 2 * math.Pi / 1440.0

// ParseTLE parses a two-line element set. Column positions follow the
// standard NORAD TLE format (Spacetrack Report #3). The mean elements are
// parsed directly from the text (rather than read back out of a third-party
// struct whose field layout we don't control) and a go-satellite record is
// built alongside for the SGP4-style propagator to delegate to.
func ParseTLE(line1, line2 string) (TLEData, error) {
	if len(line1) < 69 || len(line2) < 69 {
		return TLEData{}, errors.New("tle: both lines must be at least 69 characters")
	}
	if line1[0] != '1' || line2[0] != '2' {
		return TLEData{}, errors.New("tle: line numbers must be '1' and '2'")
	}

	satNum, err := strconv.Atoi(strings.TrimSpace(line1[2:7]))
	if err != nil {
		return TLEData{}, errors.Wrap(err, "tle: satellite number")
	}
	epochYY, err := strconv.Atoi(strings.TrimSpace(line1[18:20]))
	if err != nil {
		return TLEData{}, errors.Wrap(err, "tle: epoch year")
	}
	epochDay, err := strconv.ParseFloat(strings.TrimSpace(line1[20:32]), 64)
	if err != nil {
		return TLEData{}, errors.Wrap(err, "tle: epoch day")
	}
	nDot, err := strconv.ParseFloat(strings.TrimSpace(line1[33:43]), 64)
	if err != nil {
		return TLEData{}, errors.Wrap(err, "tle: mean motion derivative")
	}
	nDDot, err := parseTLEExponentField(line1[44:52])
	if err != nil {
		return TLEData{}, errors.Wrap(err, "tle: mean motion second derivative")
	}
	bstar, err := parseTLEExponentField(line1[53:61])
	if err != nil {
		return TLEData{}, errors.Wrap(err, "tle: bstar")
	}

	incl, err := strconv.ParseFloat(strings.TrimSpace(line2[8:16]), 64)
	if err != nil {
		return TLEData{}, errors.Wrap(err, "tle: inclination")
	}
	raan, err := strconv.ParseFloat(strings.TrimSpace(line2[17:25]), 64)
	if err != nil {
		return TLEData{}, errors.Wrap(err, "tle: raan")
	}
	eccStr := "0." + strings.TrimSpace(line2[26:33])
	ecc, err := strconv.ParseFloat(eccStr, 64)
	if err != nil {
		return TLEData{}, errors.Wrap(err, "tle: eccentricity")
	}
	argp, err := strconv.ParseFloat(strings.TrimSpace(line2[34:42]), 64)
	if err != nil {
		return TLEData{}, errors.Wrap(err, "tle: argument of perigee")
	}
	meanAnom, err := strconv.ParseFloat(strings.TrimSpace(line2[43:51]), 64)
	if err != nil {
		return TLEData{}, errors.Wrap(err, "tle: mean anomaly")
	}
	meanMotionRevDay, err := strconv.ParseFloat(strings.TrimSpace(line2[52:63]), 64)
	if err != nil {
		return TLEData{}, errors.Wrap(err, "tle: mean motion")
	}

	year := epochYY
	if year < 57 {
		year += 2000
	} else {
		year += 1900
	}

	raw := gosatellite.TLEToSat(line1, line2, gosatellite.GravityWGS84)

	return TLEData{
		SatelliteNumber: satNum,
		EpochYear:       year,
		EpochDay:        epochDay,
		MeanMotionDot:   2 * nDot * revPerDayToRadPerMin / 1440.0,
		MeanMotionDDot:  6 * nDDot * revPerDayToRadPerMin / (1440.0 * 1440.0),
		BStar:           bstar,
		Inclination:     incl * deg2radTLE,
		RAAN:            raan * deg2radTLE,
		Eccentricity:    ecc,
		ArgPerigee:      argp * deg2radTLE,
		MeanAnomaly:     meanAnom * deg2radTLE,
		MeanMotion:      meanMotionRevDay * revPerDayToRadPerMin,
		raw:             raw,
	}, nil
}

// parseTLEExponentField parses the TLE's packed decimal-exponent notation:
// an optional leading sign, five mantissa digits understood as a fraction
// (no decimal point in the text), then a signed single-digit exponent.
// E.g. " 12345-3" means 0.12345e-3; "-12345-3" means -0.12345e-3;
// " 00000+0" means 0.
func parseTLEExponentField(field string) (float64, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return 0, nil
	}
	sign := 1.0
	if field[0] == '-' {
		sign = -1.0
		field = field[1:]
	} else if field[0] == '+' {
		field = field[1:]
	}
	if len(field) < 2 {
		return 0, errors.New("tle: malformed exponent field")
	}
	mantissa := field[:len(field)-2]
	expSign := field[len(field)-2]
	expDigits := field[len(field)-1:]
	if mantissa == "" {
		mantissa = "0"
	}
	m, err := strconv.ParseFloat("0."+mantissa, 64)
	if err != nil {
		return 0, err
	}
	e, err := strconv.ParseFloat(expDigits, 64)
	if err != nil {
		return 0, err
	}
	if expSign == '-' {
		e = -e
	}
	return sign * m * math.Pow(10, e), nil
}
