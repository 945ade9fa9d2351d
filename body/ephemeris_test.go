package body

import (
	"testing"
	"time"
)

func TestSunGeocentricMagnitudeNearOneAU(t *testing.T) {
	t0 := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	r := SunGeocentric(t0)
	mag := (r[0]*r[0] + r[1]*r[1] + r[2]*r[2])
	// sqrt should be within a few percent of 1 AU
	lo := (0.95 * AU) * (0.95 * AU)
	hi := (1.05 * AU) * (1.05 * AU)
	if mag < lo || mag > hi {
		t.Fatalf("sun-earth distance^2 = %e out of [%e, %e]", mag, lo, hi)
	}
}

func TestMoonGeocentricMagnitudeReasonable(t *testing.T) {
	t0 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	r := MoonGeocentric(t0)
	mag2 := r[0]*r[0] + r[1]*r[1] + r[2]*r[2]
	// Moon distance is roughly 356000-407000 km.
	lo := 300000.0 * 300000.0
	hi := 420000.0 * 420000.0
	if mag2 < lo || mag2 > hi {
		t.Fatalf("moon distance^2 = %e out of expected range", mag2)
	}
}
