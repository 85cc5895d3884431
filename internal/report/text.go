package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bft-labs/rlcalc/pkg/rlc"
)

// TextRenderer writes the human-readable report: a per-quantity listing,
// a one-row summary table and a short narrative.
type TextRenderer struct {
	opts Options
}

// NewTextRenderer creates a text renderer.
func NewTextRenderer(opts Options) *TextRenderer {
	return &TextRenderer{opts: opts}
}

// Format returns the renderer format identifier.
func (t *TextRenderer) Format() string {
	return FormatText
}

type line struct {
	label string
	value string
}

// Render writes the report for one analysis.
func (t *TextRenderer) Render(w io.Writer, p rlc.Parameters, r rlc.Results) error {
	st := newStyles(lipgloss.NewRenderer(w), t.opts.Color)

	var b strings.Builder

	b.WriteString(st.title.Render("SERIES RLC CIRCUIT ANALYSIS"))
	b.WriteString("\n")
	b.WriteString(st.muted.Render(fmt.Sprintf(
		"V = %g V, f = %g Hz, R = %g Ω, L = %g mH, C = %g μF",
		p.SupplyVoltage, p.Frequency, p.Resistance, p.Inductance*1e3, p.Capacitance*1e6,
	)))
	b.WriteString("\n\n")

	for _, l := range quantityLines(r) {
		b.WriteString(st.label.Render(l.label))
		b.WriteString(": ")
		b.WriteString(st.value.Render(l.value))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(summaryTable(st, r))
	b.WriteString("\n\n")

	for _, n := range narrative(st, r) {
		b.WriteString(n)
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// quantityLines lists every quantity with its unit at the report precision.
func quantityLines(r rlc.Results) []line {
	return []line{
		{"Capacitive Reactance", fmt.Sprintf("%.1f Ω", r.CapacitiveReactance)},
		{"Inductive Reactance", fmt.Sprintf("%.2f Ω", r.InductiveReactance)},
		{"Impedance of the circuit", fmt.Sprintf("%.2f Ω", r.ImpedanceMagnitude)},
		{"Current through the circuit", fmt.Sprintf("%.4f A", r.RMSCurrent)},
		{"Voltage across Resistor", fmt.Sprintf("%.2f V", r.VoltageAcrossResistor)},
		{"Voltage across Capacitor", fmt.Sprintf("%.2f V", r.VoltageAcrossCapacitor)},
		{"Voltage across Inductor", fmt.Sprintf("%.2f V", r.VoltageAcrossInductor)},
		{"Power in the circuit", fmt.Sprintf("%.3f W", r.PowerDissipated)},
		{"Resonant Frequency", fmt.Sprintf("%.2f Hz", r.ResonantFrequency)},
		{"Phase Angle", fmt.Sprintf("%.2f°", r.PhaseAngleDegrees)},
		{"Power Factor", fmt.Sprintf("%.4f", r.PowerFactor)},
	}
}

func summaryTable(st styles, r rlc.Results) string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.header
			}
			return st.cell
		}).
		Headers("Xc[Ω]", "Xl[Ω]", "Z[Ω]", "I_rms[A]", "Vr[V]", "Vl[V]", "Vc[V]", "P[W]", "Fr[Hz]").
		Row(
			fmt.Sprintf("%.1f", r.CapacitiveReactance),
			fmt.Sprintf("%.2f", r.InductiveReactance),
			fmt.Sprintf("%.2f", r.ImpedanceMagnitude),
			fmt.Sprintf("%.4f", r.RMSCurrent),
			fmt.Sprintf("%.2f", r.VoltageAcrossResistor),
			fmt.Sprintf("%.2f", r.VoltageAcrossInductor),
			fmt.Sprintf("%.2f", r.VoltageAcrossCapacitor),
			fmt.Sprintf("%.3f", r.PowerDissipated),
			fmt.Sprintf("%.2f", r.ResonantFrequency),
		)
	return tbl.String()
}

func narrative(st styles, r rlc.Results) []string {
	c := Classify(r)

	var behaviour string
	switch c.Nature {
	case rlc.NatureResonant:
		behaviour = "The circuit is at resonance: the reactances cancel and the current is in phase with the supply voltage."
	case rlc.NatureInductive:
		behaviour = fmt.Sprintf("The circuit is inductive: the current lags the supply voltage by %.2f°.", c.PhaseShiftDegrees)
	default:
		behaviour = fmt.Sprintf("The circuit is capacitive: the current leads the supply voltage by %.2f°.", c.PhaseShiftDegrees)
	}

	quality := c.PowerFactorQuality.String()
	switch c.PowerFactorQuality {
	case rlc.QualityExcellent, rlc.QualityGood:
		quality = st.success.Render(quality)
	case rlc.QualityFair:
		quality = st.warning.Render(quality)
	default:
		quality = st.error.Render(quality)
	}

	return []string{
		behaviour,
		fmt.Sprintf("Power factor %.4f is %s.", r.PowerFactor, quality),
	}
}
