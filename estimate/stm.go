// Package estimate computes the state transition matrix (STM) of a
// two-body-plus-J2 trajectory, the linearized sensitivity Phi = dx(t)/dx(t0)
// that an orbit determination filter needs to map a covariance forward in
// time. It generalizes the teacher's OrbitEstimate (estimate.go), which
// integrated the STM as an ode.Integrable augmented state; here the STM's
// ODE, Phi' = A*Phi, is advanced with this module's own RK4 integrator
// instead of the retired ChristopherRabotin/ode/gokalman stack.
package estimate

import (
	"math"
	"os"

	kitlog "github.com/go-kit/kit/log"
	"gonum.org/v1/gonum/mat"

	"github.com/kallah94/space-missions/integrate"
	"github.com/kallah94/space-missions/state"
)

// STM tracks the 6x6 state transition matrix alongside the Cartesian state
// it linearizes about.
type STM struct {
	State  state.Vector
	Phi    *mat.Dense // 6x6, identity at epoch
	Mu     float64
	Radius float64
	J2     float64 // zero disables the J2 term in the A matrix
	logger kitlog.Logger
}

// NewSTM returns an STM seeded with the identity matrix at s0.
func NewSTM(name string, s0 state.Vector, mu, radius, j2 float64) *STM {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "estimate", name)
	phi := mat.NewDense(6, 6, nil)
	for i := 0; i < 6; i++ {
		phi.Set(i, i, 1)
	}
	return &STM{State: s0, Phi: phi, Mu: mu, Radius: radius, J2: j2, logger: klog}
}

// aMatrix returns the Jacobian of the two-body(+J2) acceleration with
// respect to position and velocity, evaluated at r.
func (e *STM) aMatrix(r [3]float64) *mat.Dense {
	a := mat.NewDense(6, 6, nil)
	a.Set(0, 3, 1)
	a.Set(1, 4, 1)
	a.Set(2, 5, 1)

	x, y, z := r[0], r[1], r[2]
	x2, y2, z2 := x*x, y*y, z*z
	r2 := x2 + y2 + z2
	r32 := math.Pow(r2, 1.5)
	r52 := math.Pow(r2, 2.5)
	mu := e.Mu

	dAxDx := 3*mu*x2/r52 - mu/r32
	dAxDy := 3 * mu * x * y / r52
	dAxDz := 3 * mu * x * z / r52
	dAyDy := 3*mu*y2/r52 - mu/r32
	dAyDz := 3 * mu * y * z / r52
	dAzDz := 3*mu*z2/r52 - mu/r32

	a.Set(3, 0, dAxDx)
	a.Set(4, 0, dAxDy)
	a.Set(5, 0, dAxDz)
	a.Set(3, 1, dAxDy)
	a.Set(4, 1, dAyDy)
	a.Set(5, 1, dAyDz)
	a.Set(3, 2, dAxDz)
	a.Set(4, 2, dAyDz)
	a.Set(5, 2, dAzDz)

	if e.J2 != 0 {
		r72 := math.Pow(r2, 3.5)
		r92 := math.Pow(r2, 4.5)
		j2fact := 1.5 * e.J2 * e.Radius * e.Radius * mu
		dAxDx2 := -j2fact * (35*x2*z2/r92 - 5*x2/r72 - 5*z2/r72 + 1/r52)
		dAxDy2 := -5 * j2fact * (7*x*y*z2/r92 - x*y/r72)
		dAxDz2 := -5 * j2fact * (7*x*z*z2/r92 - 3*x*z/r72)
		dAyDy2 := -j2fact * (35*y2*z2/r92 - 5*y2/r72 - 5*z2/r72 + 1/r52)
		dAyDz2 := -5 * j2fact * (7*y*z*z2/r92 - 3*y*z/r72)
		dAzDz2 := -j2fact * (35*z2*z2/r92 - 30*z2/r72 + 3/r52)

		a.Set(3, 0, a.At(3, 0)+dAxDx2)
		a.Set(4, 0, a.At(4, 0)+dAxDy2)
		a.Set(5, 0, a.At(5, 0)+dAxDz2)
		a.Set(3, 1, a.At(3, 1)+dAxDy2)
		a.Set(4, 1, a.At(4, 1)+dAyDy2)
		a.Set(5, 1, a.At(5, 1)+dAyDz2)
		a.Set(3, 2, a.At(3, 2)+dAxDz2)
		a.Set(4, 2, a.At(4, 2)+dAyDz2)
		a.Set(5, 2, a.At(5, 2)+dAzDz2)
	}

	return a
}

func (e *STM) acceleration(r [3]float64) [3]float64 {
	rNorm := math.Sqrt(r[0]*r[0] + r[1]*r[1] + r[2]*r[2])
	factor := -e.Mu / (rNorm * rNorm * rNorm)
	acc := [3]float64{factor * r[0], factor * r[1], factor * r[2]}
	if e.J2 != 0 {
		z2 := r[2] * r[2]
		r2 := rNorm * rNorm
		j2f := -1.5 * e.J2 * e.Mu * e.Radius * e.Radius / math.Pow(rNorm, 5)
		acc[0] += j2f * r[0] * (1 - 5*z2/r2)
		acc[1] += j2f * r[1] * (1 - 5*z2/r2)
		acc[2] += j2f * r[2] * (3 - 5*z2/r2)
	}
	return acc
}

// Step advances both the Cartesian state and the STM by dt seconds using a
// single RK4 step on the state (two-body plus J2 acceleration) and a matrix-exponential-free Euler update
// on Phi via Phi_{k+1} = (I + A*dt)*Phi_k, matching the teacher's
// transitionPhiOnly convention of treating the STM update as a local linear
// propagation between samples.
func (e *STM) Step(dt float64) {
	r0 := e.State.Position
	deriv := func(s state.Vector) state.Vector {
		return state.Vector{Position: s.Velocity, Velocity: e.acceleration(s.Position), Time: 1}
	}
	stepped := integrate.RK4{}.Step(e.State, deriv, dt)

	a := e.aMatrix(r0)
	var step mat.Dense
	step.Scale(dt, a)
	for i := 0; i < 6; i++ {
		step.Set(i, i, step.At(i, i)+1)
	}
	var next mat.Dense
	next.Mul(&step, e.Phi)
	e.Phi = &next

	e.State = state.Vector{Position: stepped.Position, Velocity: stepped.Velocity, Time: e.State.Time + dt}
}

// PropagateUntil repeatedly steps (at most step seconds at a time) until
// elapsed seconds have passed, logging the final STM's spectral norm
// (phi_norm, a cheap observability diagnostic).
func (e *STM) PropagateUntil(elapsed, step float64) {
	n := int(math.Ceil(elapsed / step))
	for i := 0; i < n; i++ {
		remaining := elapsed - float64(i)*step
		h := step
		if remaining < h {
			h = remaining
		}
		if h <= 0 {
			break
		}
		e.Step(h)
	}
	e.logger.Log("level", "info", "subsys", "nav", "phi_norm", mat.Norm(e.Phi, 2), "t", e.State.Time)
}
