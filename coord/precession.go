package coord

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

const arcsec2rad = math.Pi / (180 * 3600)

// PrecessionJ2000ToDate returns the 3x1-3-1-3-style rotation matrix
// precessing a mean-equator-of-J2000 (EME2000) vector to the mean equator
// and equinox of date t, using the Lieske (1977) IAU 1976 precession
// series. Nutation is not modeled, consistent with the module's mean-frame
// scope (spec.md §1 Non-goals).
func PrecessionJ2000ToDate(t time.Time) *Dense3 {
	jd := julian.TimeToJD(t)
	T := (jd - 2451545.0) / 36525.0

	zeta := (2306.2181*T + 0.30188*T*T + 0.017998*T*T*T) * arcsec2rad
	z := (2306.2181*T + 1.09468*T*T + 0.018203*T*T*T) * arcsec2rad
	theta := (2004.3109*T - 0.42665*T*T - 0.041833*T*T*T) * arcsec2rad

	return combineR3R1R3Precession(zeta, theta, z)
}

// Dense3 is a lightweight 3x3 row-major matrix, avoiding a gonum/mat import
// for this single-purpose rotation composer.
type Dense3 [3][3]float64

// Apply rotates vector v by this matrix.
func (m *Dense3) Apply(v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func combineR3R1R3Precession(zeta, theta, z float64) *Dense3 {
	// P = R3(-z) * R2(theta) * R3(-zeta), per Vallado's precession formula.
	rz1 := rot3(-zeta)
	ry := rot2(theta)
	rz2 := rot3(-z)
	m := mul3(rz2, mul3(ry, rz1))
	return &m
}

func rot3(a float64) Dense3 {
	s, c := math.Sincos(a)
	return Dense3{{c, s, 0}, {-s, c, 0}, {0, 0, 1}}
}

func rot2(a float64) Dense3 {
	s, c := math.Sincos(a)
	return Dense3{{c, 0, -s}, {0, 1, 0}, {s, 0, c}}
}

func mul3(a, b Dense3) Dense3 {
	var out Dense3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}
