package rlc

import "math"

// Results holds every quantity derived from one Parameters value.
// It is a snapshot: Solve returns a fresh value on each call.
type Results struct {
	// AngularFrequency is 2·π·f in rad/s
	AngularFrequency float64 `json:"angular_frequency_rad_s" yaml:"angular_frequency_rad_s"`

	// CapacitiveReactance is Xc in ohms
	CapacitiveReactance float64 `json:"capacitive_reactance_ohm" yaml:"capacitive_reactance_ohm"`

	// InductiveReactance is Xl in ohms
	InductiveReactance float64 `json:"inductive_reactance_ohm" yaml:"inductive_reactance_ohm"`

	// NetReactance is Xl − Xc in ohms; positive is inductive
	NetReactance float64 `json:"net_reactance_ohm" yaml:"net_reactance_ohm"`

	// ImpedanceMagnitude is |Z| in ohms, never below the resistance
	ImpedanceMagnitude float64 `json:"impedance_ohm" yaml:"impedance_ohm"`

	// RMSCurrent in amperes
	RMSCurrent float64 `json:"rms_current_a" yaml:"rms_current_a"`

	VoltageAcrossResistor  float64 `json:"voltage_resistor_v" yaml:"voltage_resistor_v"`
	VoltageAcrossInductor  float64 `json:"voltage_inductor_v" yaml:"voltage_inductor_v"`
	VoltageAcrossCapacitor float64 `json:"voltage_capacitor_v" yaml:"voltage_capacitor_v"`

	// PowerDissipated is the real power in the resistor, in watts
	PowerDissipated float64 `json:"power_w" yaml:"power_w"`

	// ResonantFrequency depends on L and C only, in hertz
	ResonantFrequency float64 `json:"resonant_frequency_hz" yaml:"resonant_frequency_hz"`

	// PhaseAngleDegrees is in (−90, 90); positive means current lags
	PhaseAngleDegrees float64 `json:"phase_angle_deg" yaml:"phase_angle_deg"`

	// PowerFactor is R/|Z|, equal to cos of the phase angle; in (0, 1]
	PowerFactor float64 `json:"power_factor" yaml:"power_factor"`
}

// Solve computes the steady-state results for p.
// p must satisfy the NewParameters invariant; Solve does not check it.
func Solve(p Parameters) Results {
	omega := 2 * math.Pi * p.Frequency
	xc := 1 / (omega * p.Capacitance)
	xl := omega * p.Inductance
	x := xl - xc
	z := math.Hypot(p.Resistance, x)
	i := p.SupplyVoltage / z
	phase := math.Atan2(x, p.Resistance)

	return Results{
		AngularFrequency:       omega,
		CapacitiveReactance:    xc,
		InductiveReactance:     xl,
		NetReactance:           x,
		ImpedanceMagnitude:     z,
		RMSCurrent:             i,
		VoltageAcrossResistor:  i * p.Resistance,
		VoltageAcrossInductor:  i * xl,
		VoltageAcrossCapacitor: i * xc,
		PowerDissipated:        i * i * p.Resistance,
		ResonantFrequency:      ResonantFrequency(p.Inductance, p.Capacitance),
		PhaseAngleDegrees:      phase * 180 / math.Pi,
		PowerFactor:            p.Resistance / z,
	}
}

// ResonantFrequency returns 1/(2·π·sqrt(L·C)) in hertz.
// The roots are taken separately so L·C cannot overflow.
func ResonantFrequency(inductance, capacitance float64) float64 {
	return 1 / (2 * math.Pi * math.Sqrt(inductance) * math.Sqrt(capacitance))
}
