package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/rlcalc/internal/cliconfig"
	"github.com/bft-labs/rlcalc/internal/configwatch"
	"github.com/bft-labs/rlcalc/internal/prompt"
	"github.com/bft-labs/rlcalc/internal/report"
	"github.com/bft-labs/rlcalc/internal/session"
	"github.com/bft-labs/rlcalc/pkg/log"
)

// negatedFlags maps --no-* flags to the config key they switch off.
var negatedFlags = map[string]string{
	"no-color": "color",
	"no-clear": "clear",
}

// globalFlags holds the persistent flag values before file and env layering.
type globalFlags struct {
	cfg     cliconfig.Config
	path    string
	noColor bool
	noClear bool
}

// resolved is the configuration of one command invocation.
type resolved struct {
	cfg     cliconfig.Config
	base    cliconfig.Config
	changed map[string]bool
	path    string
	logger  log.Logger
}

func (g *globalFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&g.path, "config", "", "path to config file (default: $HOME/.rlcalc/config.toml)")
	fs.Float64Var(&g.cfg.Epsilon, "epsilon", g.cfg.Epsilon, "lower bound every circuit parameter must exceed, in SI units")
	fs.StringVar(&g.cfg.Format, "format", g.cfg.Format, "report format: text, json or yaml")
	fs.BoolVar(&g.noColor, "no-color", false, "disable coloured text output")
	fs.BoolVar(&g.noClear, "no-clear", false, "do not clear the screen before each report")
	fs.StringVar(&g.cfg.LogLevel, "log-level", g.cfg.LogLevel, "log level: debug, info, warn, error or off")
	fs.BoolVar(&g.cfg.WatchConfig, "watch-config", g.cfg.WatchConfig, "reload display settings when the config file changes")
}

// resolve layers file and environment over the flags of cmd.
func (g *globalFlags) resolve(cmd *cobra.Command) (resolved, error) {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if key, ok := negatedFlags[f.Name]; ok {
			changed[key] = true
			return
		}
		changed[f.Name] = true
	})

	base := g.cfg
	base.Color = !g.noColor
	base.ClearScreen = !g.noClear

	path := g.path
	if path == "" {
		path = cliconfig.DefaultConfigPath()
	}

	cfg, err := cliconfig.Resolve(path, base, changed)
	if err != nil {
		return resolved{}, err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	logger := log.NewZerologAdapter(cmd.ErrOrStderr(), level)
	logger.Debug("configuration",
		log.String("path", path),
		log.Float64("epsilon", cfg.Epsilon),
		log.String("format", cfg.Format),
		log.Bool("color", cfg.Color),
		log.Bool("clear_screen", cfg.ClearScreen),
		log.Bool("watch_config", cfg.WatchConfig),
	)

	return resolved{cfg: cfg, base: base, changed: changed, path: path, logger: logger}, nil
}

func newRootCommand() *cobra.Command {
	g := &globalFlags{cfg: cliconfig.DefaultConfig()}

	root := &cobra.Command{
		Use:          "rlcalc",
		Short:        "Series RLC circuit calculator",
		Long:         longHelp,
		Example:      exampleUsage,
		Version:      versionString(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := g.resolve(cmd)
			if err != nil {
				return err
			}
			return runInteractive(cmd, rc)
		},
	}

	g.register(root.PersistentFlags())
	root.AddCommand(newSolveCommand(g))
	return root
}

func runInteractive(cmd *cobra.Command, rc resolved) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	settings, err := sessionSettings(rc.cfg)
	if err != nil {
		return err
	}
	holder := session.NewSettingsHolder(settings)

	if rc.cfg.WatchConfig {
		startWatcher(cmd, rc, holder)
	}

	collector := prompt.NewCollector(cmd.InOrStdin(), out, rc.cfg.Epsilon, prompt.WithLogger(rc.logger))
	s := session.New(collector, out, holder, session.WithLogger(rc.logger))
	return s.Run(ctx)
}

func startWatcher(cmd *cobra.Command, rc resolved, holder *session.SettingsHolder) {
	if rc.path == "" {
		rc.logger.Warn("config watching disabled: no config path")
		return
	}

	w := configwatch.New(rc.path, rc.base, rc.changed, func(c cliconfig.Config) {
		next, err := sessionSettings(c)
		if err != nil {
			rc.logger.Warn("ignoring config change", log.Err(err))
			return
		}
		holder.Set(next)
	}, configwatch.WithLogger(rc.logger))

	go func() {
		if err := w.Run(cmd.Context()); err != nil {
			rc.logger.Warn("config watcher stopped", log.Err(err))
		}
	}()
}

func sessionSettings(cfg cliconfig.Config) (session.Settings, error) {
	d := cfg.Display()
	r, err := newRenderer(d)
	if err != nil {
		return session.Settings{}, err
	}
	return session.Settings{Renderer: r, ClearScreen: d.ClearScreen}, nil
}

func newRenderer(d cliconfig.Display) (report.Renderer, error) {
	r, err := report.New(d.Format, report.Options{Color: d.Color})
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	return r, nil
}
