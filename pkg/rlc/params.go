package rlc

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultEpsilon is the default lower bound for every circuit parameter.
// A value equal to or below it is rejected.
const DefaultEpsilon = 1e-15

// ErrInvalidParameters is returned when a circuit parameter is not finite
// or not strictly greater than the epsilon in force.
var ErrInvalidParameters = errors.New("rlc: invalid parameters")

// ErrUndefinedResult is wrapped together with ErrInvalidParameters when
// every field is in range but the circuit overflows or underflows in
// floating point, e.g. a reactance of +Inf.
var ErrUndefinedResult = errors.New("rlc: circuit has no finite result")

// Parameters describes a series RLC circuit and its source.
// All values are in SI base units. Use NewParameters to obtain a value
// that satisfies the Solve precondition.
type Parameters struct {
	// Resistance in ohms
	Resistance float64 `json:"resistance_ohm" yaml:"resistance_ohm" validate:"finite,aboveeps"`

	// Inductance in henries
	Inductance float64 `json:"inductance_h" yaml:"inductance_h" validate:"finite,aboveeps"`

	// Capacitance in farads
	Capacitance float64 `json:"capacitance_f" yaml:"capacitance_f" validate:"finite,aboveeps"`

	// SupplyVoltage is the RMS source voltage in volts
	SupplyVoltage float64 `json:"supply_voltage_v" yaml:"supply_voltage_v" validate:"finite,aboveeps"`

	// Frequency is the drive frequency in hertz
	Frequency float64 `json:"frequency_hz" yaml:"frequency_hz" validate:"finite,aboveeps"`
}

type epsilonKey struct{}

// paramValidate checks Parameters fields. The epsilon travels in the
// validation context so a single instance serves every bound.
var paramValidate *validator.Validate

func init() {
	paramValidate = validator.New()
	paramValidate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = paramValidate.RegisterValidation("finite", validateFinite)
	_ = paramValidate.RegisterValidationCtx("aboveeps", validateAboveEpsilon)
}

func validateFinite(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validateAboveEpsilon(ctx context.Context, fl validator.FieldLevel) bool {
	return fl.Field().Float() > epsilonFrom(ctx)
}

func epsilonFrom(ctx context.Context) float64 {
	if eps, ok := ctx.Value(epsilonKey{}).(float64); ok {
		return eps
	}
	return DefaultEpsilon
}

// NormalizeEpsilon maps a non-positive or non-finite epsilon to DefaultEpsilon.
func NormalizeEpsilon(eps float64) float64 {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		return DefaultEpsilon
	}
	return eps
}

// NewParameters validates p against eps and returns it unchanged on success.
// Every field must be finite and strictly greater than eps, and Solve must
// yield finite results with a positive impedance, current, power factor and
// resonant frequency. A non-positive eps selects DefaultEpsilon. The
// returned error wraps ErrInvalidParameters and names each offending field,
// or additionally wraps ErrUndefinedResult for a circuit that is out of
// floating-point range as a whole.
func NewParameters(p Parameters, eps float64) (Parameters, error) {
	eps = NormalizeEpsilon(eps)
	ctx := context.WithValue(context.Background(), epsilonKey{}, eps)

	err := paramValidate.StructCtx(ctx, p)
	if err == nil {
		if err := checkDefined(Solve(p)); err != nil {
			return Parameters{}, fmt.Errorf("%w: %w", ErrInvalidParameters, err)
		}
		return p, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Parameters{}, fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe.Field(), fe.Tag(), fe.Value(), eps))
	}
	return Parameters{}, fmt.Errorf("%w: %s", ErrInvalidParameters, strings.Join(msgs, "; "))
}

// CheckValue validates a single quantity with the same rules NewParameters
// applies to each field. name is only used in the error message.
func CheckValue(name string, v, eps float64) error {
	eps = NormalizeEpsilon(eps)
	ctx := context.WithValue(context.Background(), epsilonKey{}, eps)

	err := paramValidate.VarCtx(ctx, v, "finite,aboveeps")
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidParameters, describe(name, verrs[0].Tag(), v, eps))
	}
	return fmt.Errorf("%w: %s: %v", ErrInvalidParameters, name, err)
}

// checkDefined reports the first derived quantity that is not finite or
// that underflowed to zero where it must be positive.
func checkDefined(r Results) error {
	quantities := []struct {
		name     string
		v        float64
		positive bool
	}{
		{"angular_frequency_rad_s", r.AngularFrequency, true},
		{"capacitive_reactance_ohm", r.CapacitiveReactance, false},
		{"inductive_reactance_ohm", r.InductiveReactance, false},
		{"net_reactance_ohm", r.NetReactance, false},
		{"impedance_ohm", r.ImpedanceMagnitude, true},
		{"rms_current_a", r.RMSCurrent, true},
		{"voltage_resistor_v", r.VoltageAcrossResistor, false},
		{"voltage_inductor_v", r.VoltageAcrossInductor, false},
		{"voltage_capacitor_v", r.VoltageAcrossCapacitor, false},
		{"power_w", r.PowerDissipated, false},
		{"resonant_frequency_hz", r.ResonantFrequency, true},
		{"phase_angle_deg", r.PhaseAngleDegrees, false},
		{"power_factor", r.PowerFactor, true},
	}
	for _, q := range quantities {
		if math.IsNaN(q.v) || math.IsInf(q.v, 0) {
			return fmt.Errorf("%w: %s is %v", ErrUndefinedResult, q.name, q.v)
		}
		if q.positive && q.v <= 0 {
			return fmt.Errorf("%w: %s underflows to %v", ErrUndefinedResult, q.name, q.v)
		}
	}
	return nil
}

func describe(field, tag string, value any, eps float64) string {
	switch tag {
	case "finite":
		return fmt.Sprintf("%s must be a finite number (got %v)", field, value)
	case "aboveeps":
		return fmt.Sprintf("%s must be greater than %g (got %v)", field, eps, value)
	default:
		return fmt.Sprintf("%s failed %q (got %v)", field, tag, value)
	}
}
