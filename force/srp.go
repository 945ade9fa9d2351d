package force

import "github.com/kallah94/space-missions/state"

// SolarRadiationPressure is the cannonball SRP acceleration
// Psrp*Cr*(A/m)*(AU/d)^2 directed along the Sun-to-spacecraft line, with an
// optional cylindrical shadow model that zeroes the force when the
// spacecraft is eclipsed by the occluding body.
type SolarRadiationPressure struct {
	SolarConstant float64 // radiation pressure at 1 AU in N/m^2 times 1e3, so that SolarConstant*Cr*AreaPerMass is km/s^2
	AU            float64
	Cr            float64
	AreaPerMass   float64 // km^2/kg

	// SunPosition returns the Sun's position relative to the central body,
	// km, as a function of elapsed mission time.
	SunPosition func(t float64) [3]float64

	// OccluderRadius, if > 0, enables a cylindrical shadow test against the
	// central body (radius in km): the spacecraft is in shadow when it is
	// on the far side of the central body from the Sun, within the
	// occluder's cylindrical shadow.
	OccluderRadius float64
}

func (sp SolarRadiationPressure) Name() string { return "solar-radiation-pressure" }

// srpCutoffAreaPerMass is the area-to-mass ratio (km^2/kg) below which SRP
// is negligible relative to the other perturbations. 0.001 m^2/kg in the
// spec's units, converted to km^2/kg (1 m^2 = 1e-6 km^2).
const srpCutoffAreaPerMass = 0.001 * 1e-6

// Applicable reports whether the spacecraft's area/mass ratio is large
// enough for SRP to be worth computing.
func (sp SolarRadiationPressure) Applicable(_, _ [3]float64, _ float64) bool {
	return sp.AreaPerMass >= srpCutoffAreaPerMass
}

func (sp SolarRadiationPressure) Acceleration(s state.Vector, t float64) [3]float64 {
	sunPos := sp.SunPosition(t)
	toSpacecraft := state.Sub(s.Position, sunPos)
	d := state.Norm(toSpacecraft)

	if sp.inShadow(s.Position, sunPos) {
		return [3]float64{}
	}

	scale := sp.AU / d
	magnitude := sp.SolarConstant * sp.Cr * sp.AreaPerMass * scale * scale
	dir := state.Unit(toSpacecraft)
	return [3]float64{magnitude * dir[0], magnitude * dir[1], magnitude * dir[2]}
}

func (sp SolarRadiationPressure) inShadow(rSC, rSun [3]float64) bool {
	if sp.OccluderRadius <= 0 {
		return false
	}
	sunDir := state.Unit(rSun)
	proj := state.Dot(rSC, sunDir)
	if proj >= 0 {
		// on the sunlit side (or at the terminator plane)
		return false
	}
	perp := [3]float64{
		rSC[0] - proj*sunDir[0],
		rSC[1] - proj*sunDir[1],
		rSC[2] - proj*sunDir[2],
	}
	return state.Norm(perp) < sp.OccluderRadius
}
