package rlc

import (
	"fmt"
	"math"
)

// ResonanceTolerance is the net reactance, in ohms, below which a circuit
// is reported as resonant.
const ResonanceTolerance = 0.001

// Power factor band thresholds, exclusive lower bounds.
const (
	PowerFactorExcellent = 0.9
	PowerFactorGood      = 0.7
	PowerFactorFair      = 0.5
)

// Nature classifies the reactive behaviour of a circuit.
type Nature int

const (
	NatureResonant Nature = iota
	NatureInductive
	NatureCapacitive
)

// String returns the lowercase name of the nature.
func (n Nature) String() string {
	switch n {
	case NatureResonant:
		return "resonant"
	case NatureInductive:
		return "inductive"
	case NatureCapacitive:
		return "capacitive"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (n Nature) MarshalText() ([]byte, error) {
	if n < NatureResonant || n > NatureCapacitive {
		return nil, fmt.Errorf("rlc: unknown nature %d", int(n))
	}
	return []byte(n.String()), nil
}

// Quality bands a power factor.
type Quality int

const (
	QualityPoor Quality = iota
	QualityFair
	QualityGood
	QualityExcellent
)

// String returns the lowercase name of the band.
func (q Quality) String() string {
	switch q {
	case QualityPoor:
		return "poor"
	case QualityFair:
		return "fair"
	case QualityGood:
		return "good"
	case QualityExcellent:
		return "excellent"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (q Quality) MarshalText() ([]byte, error) {
	if q < QualityPoor || q > QualityExcellent {
		return nil, fmt.Errorf("rlc: unknown quality %d", int(q))
	}
	return []byte(q.String()), nil
}

// IsResonant reports whether |Xl − Xc| is below ResonanceTolerance.
func (r Results) IsResonant() bool {
	return r.IsResonantWithin(ResonanceTolerance)
}

// IsResonantWithin reports whether |Xl − Xc| is below tol.
func (r Results) IsResonantWithin(tol float64) bool {
	return math.Abs(r.InductiveReactance-r.CapacitiveReactance) < tol
}

// Nature classifies the circuit as resonant, inductive or capacitive.
// Resonance takes precedence over the sign of the net reactance.
func (r Results) Nature() Nature {
	switch {
	case r.IsResonant():
		return NatureResonant
	case r.NetReactance > 0:
		return NatureInductive
	default:
		return NatureCapacitive
	}
}

// PowerFactorQuality bands the power factor.
func (r Results) PowerFactorQuality() Quality {
	return QualityOf(r.PowerFactor)
}

// QualityOf bands a power factor value.
func QualityOf(pf float64) Quality {
	switch {
	case pf > PowerFactorExcellent:
		return QualityExcellent
	case pf > PowerFactorGood:
		return QualityGood
	case pf > PowerFactorFair:
		return QualityFair
	default:
		return QualityPoor
	}
}
