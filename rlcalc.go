// Package rlcalc analyzes series RLC circuits driven by a single-frequency
// sinusoidal source.
//
// Example usage:
//
//	a, err := rlcalc.Analyze(rlcalc.Parameters{
//	    SupplyVoltage: 10,
//	    Frequency:     1000,
//	    Resistance:    100,
//	    Inductance:    10e-3,
//	    Capacitance:   1e-6,
//	}, rlcalc.DefaultEpsilon)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := rlcalc.Render(os.Stdout, "text", a, false); err != nil {
//	    log.Fatal(err)
//	}
package rlcalc

import (
	"fmt"
	"io"

	"github.com/bft-labs/rlcalc/internal/report"
	"github.com/bft-labs/rlcalc/pkg/rlc"
)

// Parameters are the circuit inputs in SI units.
type Parameters = rlc.Parameters

// Results are the derived quantities of one analysis.
type Results = rlc.Results

// Analysis pairs validated parameters with their results and classification.
type Analysis = report.Document

// DefaultEpsilon is the lower bound applied when none is configured.
const DefaultEpsilon = rlc.DefaultEpsilon

// ErrInvalidParameters is wrapped by Analyze for out-of-range inputs.
var ErrInvalidParameters = rlc.ErrInvalidParameters

// Analyze validates p against eps and solves the circuit.
func Analyze(p Parameters, eps float64) (Analysis, error) {
	v, err := rlc.NewParameters(p, eps)
	if err != nil {
		return Analysis{}, err
	}
	return report.NewDocument(v, rlc.Solve(v)), nil
}

// Render writes a in the named format (text, json or yaml).
func Render(w io.Writer, format string, a Analysis, color bool) error {
	r, err := report.New(format, report.Options{Color: color})
	if err != nil {
		return err
	}
	if err := r.Render(w, a.Parameters, a.Results); err != nil {
		return fmt.Errorf("render %s: %w", r.Format(), err)
	}
	return nil
}
