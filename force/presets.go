package force

import "github.com/kallah94/space-missions/body"

// LEOModel returns a Model with the typical perturbations relevant to a
// low-Earth orbit: central gravity, J2, and exponential drag. mass is the
// spacecraft mass (kg); areaPerMass is A/m (km^2/kg); cd is the drag
// coefficient.
func LEOModel(mass, areaPerMass, cd float64) *Model {
	return NewModel(mass,
		CentralGravity{Mu: body.MuEarth},
		J2{Mu: body.MuEarth, Radius: body.REarth, J2: body.J2Earth},
		ExponentialDrag{
			Radius:       body.REarth,
			RefAltitude:  400,
			RefDensity:   1e-4, // kg/km^3 at 400 km, order-of-magnitude exospheric density
			ScaleHeight:  60,
			Cd:           cd,
			AreaPerMass:  areaPerMass,
			RotationRate: body.OmegaEarth,
		},
	)
}

// GEOModel returns a Model with the perturbations relevant to geostationary
// orbit: central gravity, J2/J3/J4, lunar and solar third-body effects, and
// SRP. sunPos/moonPos are ephemeris functions of elapsed mission time.
func GEOModel(mass, areaPerMass, cr float64, sunPos, moonPos func(t float64) [3]float64) *Model {
	return NewModel(mass,
		CentralGravity{Mu: body.MuEarth},
		J2{Mu: body.MuEarth, Radius: body.REarth, J2: body.J2Earth},
		J3J4{Mu: body.MuEarth, Radius: body.REarth, J3: body.J3Earth, J4: body.J4Earth},
		ThirdBody{Mu: body.MuSun, Position: sunPos, CentralRadius: body.REarth},
		ThirdBody{Mu: body.MuMoon, Position: moonPos, CentralRadius: body.REarth},
		SolarRadiationPressure{
			SolarConstant: body.SolarConstant / body.SpeedOfLight * 1000,
			AU:            body.AU,
			Cr:            cr,
			AreaPerMass:   areaPerMass,
			SunPosition:   sunPos,
		},
	)
}

// InterplanetaryModel returns a Model suitable for a heliocentric transfer:
// central (solar) gravity and SRP, with no atmospheric or oblateness terms.
func InterplanetaryModel(mass, areaPerMass, cr float64, sunPosFromSC func(t float64) [3]float64) *Model {
	return NewModel(mass,
		CentralGravity{Mu: body.MuSun},
		SolarRadiationPressure{
			SolarConstant: body.SolarConstant / body.SpeedOfLight * 1000,
			AU:            body.AU,
			Cr:            cr,
			AreaPerMass:   areaPerMass,
			SunPosition:   sunPosFromSC,
		},
	)
}
