package force

// EPThruster describes an electric-propulsion engine's operating envelope:
// its minimum/maximum voltage and power, and the thrust (N) and specific
// impulse (s) it delivers at a given voltage/power setpoint.
type EPThruster interface {
	Min() (voltage, power uint)
	Max() (voltage, power uint)
	Thrust(voltage, power uint) (thrustN, ispSeconds float64)
}

// PPS1350 is the Snecma Hall-effect thruster flown on SMART-1.
type PPS1350 struct{}

func (t PPS1350) Min() (voltage, power uint) { return t.Max() }
func (t PPS1350) Max() (voltage, power uint) { return 350, 2500 }
func (t PPS1350) Thrust(voltage, power uint) (thrustN, ispSeconds float64) {
	if voltage == 350 && power == 2500 {
		return 89e-3, 1650
	}
	panic("PPS1350: unsupported voltage or power")
}

// HERMeS is based on the NASA/Rocketdyne 12.5kW Hall-effect demonstrator.
type HERMeS struct{}

func (t HERMeS) Min() (voltage, power uint) { return t.Max() }
func (t HERMeS) Max() (voltage, power uint) { return 800, 12500 }
func (t HERMeS) Thrust(voltage, power uint) (thrustN, ispSeconds float64) {
	if voltage == 800 && power == 12500 {
		return 0.680, 2960
	}
	panic("HERMeS: unsupported voltage or power")
}

// GenericEP is a fixed-performance electric thruster, useful for mission
// studies that don't need a named engine's power curve.
type GenericEP struct {
	ThrustN      float64
	IspSeconds   float64
	MinV, MinP   uint
	MaxV, MaxP   uint
}

func NewGenericEP(thrustN, ispSeconds float64) *GenericEP {
	return &GenericEP{ThrustN: thrustN, IspSeconds: ispSeconds}
}

func (t *GenericEP) Min() (voltage, power uint) { return t.MinV, t.MinP }
func (t *GenericEP) Max() (voltage, power uint) { return t.MaxV, t.MaxP }
func (t *GenericEP) Thrust(voltage, power uint) (thrustN, ispSeconds float64) {
	return t.ThrustN, t.IspSeconds
}
