package report

import (
	"math"

	"github.com/bft-labs/rlcalc/pkg/rlc"
)

// Current phase relations relative to the supply voltage.
const (
	CurrentInPhase = "in phase"
	CurrentLags    = "lags"
	CurrentLeads   = "leads"
)

// Document is the structured form of one analysis.
type Document struct {
	Parameters     rlc.Parameters `json:"parameters" yaml:"parameters"`
	Results        rlc.Results    `json:"results" yaml:"results"`
	Classification Classification `json:"classification" yaml:"classification"`
}

// Classification is the qualitative reading of a result.
type Classification struct {
	Nature             rlc.Nature  `json:"nature" yaml:"nature"`
	Resonant           bool        `json:"resonant" yaml:"resonant"`
	Current            string      `json:"current" yaml:"current"`
	PhaseShiftDegrees  float64     `json:"phase_shift_deg" yaml:"phase_shift_deg"`
	PowerFactorQuality rlc.Quality `json:"power_factor_quality" yaml:"power_factor_quality"`
}

// NewDocument builds the structured form of an analysis.
func NewDocument(p rlc.Parameters, r rlc.Results) Document {
	return Document{
		Parameters:     p,
		Results:        r,
		Classification: Classify(r),
	}
}

// Classify derives the qualitative reading of r.
func Classify(r rlc.Results) Classification {
	nature := r.Nature()
	c := Classification{
		Nature:             nature,
		Resonant:           nature == rlc.NatureResonant,
		PhaseShiftDegrees:  math.Abs(r.PhaseAngleDegrees),
		PowerFactorQuality: r.PowerFactorQuality(),
	}
	switch nature {
	case rlc.NatureInductive:
		c.Current = CurrentLags
	case rlc.NatureCapacitive:
		c.Current = CurrentLeads
	default:
		c.Current = CurrentInPhase
		c.PhaseShiftDegrees = 0
	}
	return c
}
