package propagate

import (
	"time"

	gosatellite "github.com/joshuaferrara/go-satellite"

	"github.com/kallah94/space-missions/body"
	"github.com/kallah94/space-missions/state"
)

// SGP4Reduced propagates a TLE-sourced mean-element set using the go-
// satellite SGP4/SDP4 implementation, reporting state in the TEME frame
// (this propagator does not rotate TEME to the module's mean-equatorial
// frame; callers needing a consistent frame across propagators should
// apply coord.PrecessionJ2000ToDate or treat TEME results independently,
// per spec.md's "mean-element propagator" scope).
type SGP4Reduced struct {
	TLE   body.TLEData
	Epoch time.Time // calendar epoch that elapsed=0 corresponds to
}

func (s SGP4Reduced) Name() string { return "sgp4-reduced" }

// PropagateTo advances by `elapsed` seconds past s.Epoch, returning
// position (km) and velocity (km/s) in the TEME frame.
func (s SGP4Reduced) PropagateTo(elapsed float64) (state.Vector, error) {
	t := s.Epoch.Add(time.Duration(elapsed * float64(time.Second)))
	pos, vel := gosatellite.Propagate(s.TLE.Raw(), t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
	return state.New(
		[3]float64{pos.X, pos.Y, pos.Z},
		[3]float64{vel.X, vel.Y, vel.Z},
		elapsed,
	), nil
}
