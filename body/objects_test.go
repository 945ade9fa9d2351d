package body

import "testing"

func TestEarthConstants(t *testing.T) {
	if Earth.Mu != MuEarth {
		t.Fatalf("Earth.Mu = %f, want %f", Earth.Mu, MuEarth)
	}
	if Earth.Radius != REarth {
		t.Fatalf("Earth.Radius = %f, want %f", Earth.Radius, REarth)
	}
}

func TestFromName(t *testing.T) {
	if _, ok := FromName("Pluto"); ok {
		t.Fatalf("Pluto should not resolve (not modeled)")
	}
	o, ok := FromName("Earth")
	if !ok || !o.Equals(Earth) {
		t.Fatalf("FromName(Earth) = %+v, ok=%v", o, ok)
	}
}

func TestEquals(t *testing.T) {
	if !Sun.Equals(Sun) {
		t.Fatalf("Sun should equal itself")
	}
	if Earth.Equals(Mars) {
		t.Fatalf("Earth should not equal Mars")
	}
}
