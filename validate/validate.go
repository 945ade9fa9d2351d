// Package validate provides a small harness for checking a propagator or
// solver against a known-good reference result, with tolerance-based
// pass/fail reporting.
package validate

import (
	"fmt"

	"github.com/kallah94/space-missions/state"
)

// TestCase pairs a propagation/solve scenario (named for reporting) with an
// expected state and the tolerance to check it against.
type TestCase struct {
	Name     string
	Got      state.Vector
	Want     state.Vector
	Position float64 // km, max allowed |got.Position - want.Position|
	Velocity float64 // km/s, max allowed |got.Velocity - want.Velocity|
}

// Result is the outcome of checking one TestCase.
type Result struct {
	Name         string
	Pass         bool
	PositionErr  float64
	VelocityErr  float64
	Detail       string
}

// Check evaluates a single TestCase.
func Check(tc TestCase) Result {
	posErr := state.Norm(state.Sub(tc.Got.Position, tc.Want.Position))
	velErr := state.Norm(state.Sub(tc.Got.Velocity, tc.Want.Velocity))
	pass := posErr <= tc.Position && velErr <= tc.Velocity
	detail := ""
	if !pass {
		detail = fmt.Sprintf("position error %g km (tol %g), velocity error %g km/s (tol %g)",
			posErr, tc.Position, velErr, tc.Velocity)
	}
	return Result{Name: tc.Name, Pass: pass, PositionErr: posErr, VelocityErr: velErr, Detail: detail}
}

// Report holds the Result of every case checked by Run, in order.
type Report struct {
	Results []Result
}

// Run checks every case in order and accumulates a Report.
func Run(cases []TestCase) Report {
	r := Report{Results: make([]Result, 0, len(cases))}
	for _, tc := range cases {
		r.Results = append(r.Results, Check(tc))
	}
	return r
}

// Passed reports whether every case in the report passed.
func (r Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Pass {
			return false
		}
	}
	return true
}

// Failures returns only the failing results.
func (r Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Pass {
			out = append(out, res)
		}
	}
	return out
}

// String renders a human-readable summary, one line per case.
func (r Report) String() string {
	s := ""
	for _, res := range r.Results {
		status := "PASS"
		if !res.Pass {
			status = "FAIL"
		}
		s += fmt.Sprintf("[%s] %s", status, res.Name)
		if !res.Pass {
			s += ": " + res.Detail
		}
		s += "\n"
	}
	return s
}
