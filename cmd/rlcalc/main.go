package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/bft-labs/rlcalc/pkg/log"
	"github.com/bft-labs/rlcalc/pkg/rlc"
)

const helpBanner = `
       _            _
  _ __| | ___ __ _| | ___
 | '__| |/ __/ _' | |/ __|
 | |  | | (_| (_| | | (__
 |_|  |_|\___\__,_|_|\___|
`

const helpDescription = `
Steady-state analysis of a series RLC circuit driven by a sinusoidal source.

Enter the supply voltage, frequency, resistance, inductance (mH) and
capacitance (uF); rlcalc reports reactances, impedance, current, component
voltages, power, resonant frequency, phase angle and power factor.

Settings come from flags, RLCALC_* environment variables or
$HOME/.rlcalc/config.toml, in that order of precedence.
`

var longHelp = strings.TrimSpace(helpBanner) + "\n\n" + strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  rlcalc
  rlcalc --format json --no-clear
  rlcalc solve --voltage 10 --frequency 1000 --resistance 100 --inductance-mh 10 --capacitance-uf 1
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func versionString() string {
	return fmt.Sprintf("%s (rlc %s, log %s) %s/%s", getVersion(), rlc.Version, log.Version, runtime.GOOS, runtime.GOARCH)
}

func main() {
	logger := log.NewZerologAdapter(os.Stderr, zerolog.WarnLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		logger.Error("rlcalc", log.Err(err))
		stop()
		os.Exit(1)
	}
}
