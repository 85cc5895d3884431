package rlcalc

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bft-labs/rlcalc/pkg/rlc"
)

func TestAnalyze(t *testing.T) {
	a, err := Analyze(Parameters{
		SupplyVoltage: 10,
		Frequency:     1000,
		Resistance:    100,
		Inductance:    10e-3,
		Capacitance:   1e-6,
	}, DefaultEpsilon)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if a.Classification.Nature != rlc.NatureCapacitive {
		t.Errorf("Nature = %v, want capacitive", a.Classification.Nature)
	}
	if got := a.Results.ImpedanceMagnitude; got < 138.84 || got > 138.85 {
		t.Errorf("ImpedanceMagnitude = %v, want ~138.846", got)
	}
}

func TestAnalyze_Invalid(t *testing.T) {
	_, err := Analyze(Parameters{SupplyVoltage: 10}, DefaultEpsilon)
	if !errors.Is(err, ErrInvalidParameters) {
		t.Fatalf("Analyze() error = %v, want ErrInvalidParameters", err)
	}
}

func TestRender(t *testing.T) {
	a, err := Analyze(Parameters{
		SupplyVoltage: 10,
		Frequency:     503.2921,
		Resistance:    50,
		Inductance:    0.1,
		Capacitance:   1e-6,
	}, DefaultEpsilon)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	tests := []struct {
		format string
		want   string
	}{
		{"text", "resonance"},
		{"json", `"nature": "resonant"`},
		{"yaml", "nature: resonant"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Render(&buf, tt.format, a, false); err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("Render(%s) missing %q:\n%s", tt.format, tt.want, buf.String())
			}
		})
	}

	if err := Render(&bytes.Buffer{}, "csv", a, false); err == nil {
		t.Error("Render(csv) expected error")
	}
}
