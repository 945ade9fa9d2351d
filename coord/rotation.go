// Package coord provides the frame-transformation services of the numerical
// core: Earth orientation (GMST), ECI/ECEF/geodetic/topocentric conversions,
// and the local orbital frames (LVLH/RSW) used by force models and event
// detectors. All functions are pure and re-entrant.
package coord

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// R1, R2, R3 are the elementary Euler rotation matrices about the 1st, 2nd
// and 3rd axes, matching the teacher's rotation.go conventions but built on
// the modern gonum/mat API rather than the retired gonum/matrix/mat64.
func R1(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

func R2(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

func R3(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// R3R1R3 performs a 3-1-3 Euler angle rotation (the classical RAAN,
// inclination, argument-of-periapsis sequence), from Schaub & Junkins.
func R3R1R3(t1, t2, t3 float64) *mat.Dense {
	s1, c1 := math.Sincos(t1)
	s2, c2 := math.Sincos(t2)
	s3, c3 := math.Sincos(t3)
	return mat.NewDense(3, 3, []float64{
		c3*c1 - s3*c2*s1, c3*s1 + s3*c2*c1, s3 * s2,
		-s3*c1 - c3*c2*s1, -s3*s1 + c3*c2*c1, c3 * s2,
		s2 * s1, -s2 * c1, c2,
	})
}

// MxV33 multiplies a 3x3 matrix by a 3-vector.
func MxV33(m *mat.Dense, v [3]float64) [3]float64 {
	vVec := mat.NewVecDense(3, v[:])
	var rVec mat.VecDense
	rVec.MulVec(m, vVec)
	return [3]float64{rVec.AtVec(0), rVec.AtVec(1), rVec.AtVec(2)}
}

// Transpose3 returns the transpose of a 3x3 matrix (equivalently its
// inverse, for the orthonormal rotation matrices used throughout this
// package).
func Transpose3(m *mat.Dense) *mat.Dense {
	var t mat.Dense
	t.CloneFrom(m.T())
	return &t
}
