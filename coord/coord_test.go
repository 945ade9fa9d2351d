package coord

import (
	"math"
	"testing"
	"time"

	"github.com/kallah94/space-missions/body"
)

func TestECIECEFRoundTrip(t *testing.T) {
	r := [3]float64{7000, 1000, 500}
	theta := 1.2345
	ecef := ECI2ECEF(r, theta)
	back := ECEF2ECI(ecef, theta)
	for i := 0; i < 3; i++ {
		if math.Abs(back[i]-r[i]) > 1e-9 {
			t.Fatalf("round trip mismatch at %d: got %f want %f", i, back[i], r[i])
		}
	}
}

func TestGMSTIsBoundedAngle(t *testing.T) {
	theta := GMST(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if theta < 0 || theta >= 2*math.Pi {
		t.Fatalf("GMST = %f, want in [0, 2pi)", theta)
	}
}

func TestGeodeticRoundTrip(t *testing.T) {
	wantLat := 35.247164 * math.Pi / 180
	wantLon := -243.205 * math.Pi / 180 // test negative/overflow longitude behavior too
	alt := 1.07114904

	ecef := GEO2ECEF(alt, wantLat, wantLon)
	gotLat, gotLon, gotAlt := ECEF2Geodetic(ecef)

	if math.Abs(gotLat-wantLat) > 1e-7 {
		t.Errorf("lat = %f, want %f", gotLat, wantLat)
	}
	// longitude recovers modulo 2*pi
	diff := math.Mod(gotLon-wantLon+3*math.Pi, 2*math.Pi) - math.Pi
	if math.Abs(diff) > 1e-7 {
		t.Errorf("lon mismatch: got %f want %f (mod 2pi)", gotLon, wantLon)
	}
	if math.Abs(gotAlt-alt) > 1e-5 {
		t.Errorf("alt = %f, want %f", gotAlt, alt)
	}
}

func TestRangeElAzZenith(t *testing.T) {
	site := GEO2ECEF(0, 0, 0)
	target := GEO2ECEF(500, 0, 0) // directly overhead
	_, rho, el, _ := RangeElAz(site, target)
	if math.Abs(rho-500) > 1e-6 {
		t.Errorf("rho = %f, want 500", rho)
	}
	if math.Abs(el-math.Pi/2) > 1e-6 {
		t.Errorf("el = %f, want pi/2 (zenith)", el)
	}
}

func TestLVLHOrthonormal(t *testing.T) {
	r := [3]float64{7000, 0, 0}
	v := [3]float64{0, 7.5, 1}
	radial, along, cross := LVLH(r, v)
	vectors := [][3]float64{radial, along, cross}
	for _, vec := range vectors {
		n := math.Sqrt(vec[0]*vec[0] + vec[1]*vec[1] + vec[2]*vec[2])
		if math.Abs(n-1) > 1e-9 {
			t.Errorf("LVLH basis vector not unit length: %v (norm %f)", vec, n)
		}
	}
}

func TestToFromLVLHRoundTrip(t *testing.T) {
	r := [3]float64{7000, 200, -300}
	v := [3]float64{0.1, 7.4, 0.2}
	vec := [3]float64{1, 2, 3}
	lvlh := ToLVLH(vec, r, v)
	back := FromLVLH(lvlh, r, v)
	for i := 0; i < 3; i++ {
		if math.Abs(back[i]-vec[i]) > 1e-9 {
			t.Fatalf("round trip mismatch at %d: got %f want %f", i, back[i], vec[i])
		}
	}
}

func TestSphericalRoundTrip(t *testing.T) {
	a := [3]float64{1, 2, 3}
	r, theta, phi := Cartesian2Spherical(a)
	back := Spherical2Cartesian(r, theta, phi)
	for i := 0; i < 3; i++ {
		if math.Abs(back[i]-a[i]) > 1e-9 {
			t.Fatalf("round trip mismatch at %d: got %f want %f", i, back[i], a[i])
		}
	}
}

func TestPrecessionIdentityAtEpoch(t *testing.T) {
	epoch := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	m := PrecessionJ2000ToDate(epoch)
	v := [3]float64{1, 0, 0}
	out := m.Apply(v)
	for i := range v {
		if math.Abs(out[i]-v[i]) > 1e-12 {
			t.Errorf("precession at J2000 epoch is not the identity: component %d = %g, want %g", i, out[i], v[i])
		}
	}
}

func TestEarthConstantUsed(t *testing.T) {
	if EarthRotationRate != body.OmegaEarth {
		t.Fatalf("EarthRotationRate should mirror body.OmegaEarth")
	}
}
