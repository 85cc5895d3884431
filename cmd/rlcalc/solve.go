package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bft-labs/rlcalc/internal/prompt"
	"github.com/bft-labs/rlcalc/pkg/log"
	"github.com/bft-labs/rlcalc/pkg/rlc"
)

// solveFlags are in the units the interactive prompts use.
type solveFlags struct {
	voltage       float64
	frequency     float64
	resistance    float64
	inductanceMH  float64
	capacitanceUF float64
}

// parameters converts the flag values to SI units.
func (f solveFlags) parameters() rlc.Parameters {
	return rlc.Parameters{
		SupplyVoltage: f.voltage * prompt.Voltage.Scale,
		Frequency:     f.frequency * prompt.Frequency.Scale,
		Resistance:    f.resistance * prompt.Resistance.Scale,
		Inductance:    f.inductanceMH * prompt.Inductance.Scale,
		Capacitance:   f.capacitanceUF * prompt.Capacitance.Scale,
	}
}

func newSolveCommand(g *globalFlags) *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Analyze one circuit given on the command line and exit",
		Example: "  rlcalc solve --voltage 10 --frequency 1000 --resistance 100 --inductance-mh 10 --capacitance-uf 1\n" +
			"  rlcalc solve --voltage 10 --frequency 503.29 --resistance 50 --inductance-mh 100 --capacitance-uf 1 --format json",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := g.resolve(cmd)
			if err != nil {
				return err
			}

			p, err := rlc.NewParameters(f.parameters(), rc.cfg.Epsilon)
			if err != nil {
				return err
			}

			r, err := newRenderer(rc.cfg.Display())
			if err != nil {
				return err
			}

			res := rlc.Solve(p)
			rc.logger.Debug("circuit solved",
				log.Any("parameters", p),
				log.Float64("impedance_ohm", res.ImpedanceMagnitude),
				log.Any("nature", res.Nature()),
			)

			if err := r.Render(cmd.OutOrStdout(), p, res); err != nil {
				return fmt.Errorf("render report: %w", err)
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.Float64Var(&f.voltage, "voltage", 0, "supply voltage in V (RMS)")
	fs.Float64Var(&f.frequency, "frequency", 0, "supply frequency in Hz")
	fs.Float64Var(&f.resistance, "resistance", 0, "resistance in Ω")
	fs.Float64Var(&f.inductanceMH, "inductance-mh", 0, "inductance in mH")
	fs.Float64Var(&f.capacitanceUF, "capacitance-uf", 0, "capacitance in μF")
	for _, name := range []string{"voltage", "frequency", "resistance", "inductance-mh", "capacitance-uf"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}
