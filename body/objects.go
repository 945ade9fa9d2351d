// Package body defines celestial bodies and the physical constants the
// force, propagate and solve packages are built on. CelestialObject values
// are immutable configuration — there is no process-wide singleton beyond
// the ordinary package-level values below, per the module's no-shared-state
// concurrency contract.
package body

// Physical constants honored exactly, per spec.md §6.
const (
	// MuEarth is Earth's gravitational parameter, km^3/s^2.
	MuEarth = 398600.4418
	// REarth is Earth's equatorial radius, km.
	REarth = 6378.137
	// J2Earth is Earth's J2 zonal coefficient.
	J2Earth = 1.08262668e-3
	// J3Earth is Earth's J3 zonal coefficient.
	J3Earth = -2.53265648e-6
	// J4Earth is Earth's J4 zonal coefficient.
	J4Earth = -1.61962159e-6
	// OmegaEarth is Earth's rotation rate, rad/s.
	OmegaEarth = 7.2921159e-5
	// AU is one astronomical unit, km.
	AU = 149597870.7
	// MuSun is the Sun's gravitational parameter, km^3/s^2.
	MuSun = 1.32712442018e11
	// MuMoon is the Moon's gravitational parameter, km^3/s^2.
	MuMoon = 4902.800066
	// SolarConstant is the solar flux at 1 AU, W/m^2.
	SolarConstant = 1367.0
	// SpeedOfLight is c, m/s.
	SpeedOfLight = 299792458.0
)

// Object defines a celestial body's gravitational and shape parameters.
// Zero-valued J2/J3/J4 simply disable the corresponding zonal term.
type Object struct {
	Name   string
	Radius float64 // km
	Mu     float64 // km^3/s^2
	J2     float64
	J3     float64
	J4     float64
	SOI    float64 // sphere of influence w.r.t. the Sun, km; -1 for the Sun itself
}

// Equals reports whether two objects are the same body (by name and mass
// parameter, matching the teacher's Orbit.Origin equality check).
func (o Object) Equals(b Object) bool {
	return o.Name == b.Name && o.Mu == b.Mu
}

func (o Object) String() string { return o.Name }

// Sun is the solar system's central star.
var Sun = Object{Name: "Sun", Radius: 695700, Mu: MuSun, SOI: -1}

// Earth is home.
var Earth = Object{Name: "Earth", Radius: REarth, Mu: MuEarth, J2: J2Earth, J3: J3Earth, J4: J4Earth, SOI: 924645.0}

// Moon orbits Earth.
var Moon = Object{Name: "Moon", Radius: 1737.4, Mu: MuMoon, SOI: 66100.0}

// Venus is poisonous.
var Venus = Object{Name: "Venus", Radius: 6051.8, Mu: 3.24858599e5, SOI: 0.616e6}

// Mars is the vacation place.
var Mars = Object{Name: "Mars", Radius: 3396.19, Mu: 4.28283100e4, J2: 1964e-6, J3: 36e-6, J4: -18e-6, SOI: 576000}

// Jupiter is big.
var Jupiter = Object{Name: "Jupiter", Radius: 71492.0, Mu: 1.266865361e8, J2: 0.01475, J4: -0.00058, SOI: 48.2e6}

// FromName returns the Object matching name, or ok=false if unknown.
func FromName(name string) (Object, bool) {
	switch name {
	case "Sun":
		return Sun, true
	case "Earth":
		return Earth, true
	case "Moon":
		return Moon, true
	case "Venus":
		return Venus, true
	case "Mars":
		return Mars, true
	case "Jupiter":
		return Jupiter, true
	default:
		return Object{}, false
	}
}
