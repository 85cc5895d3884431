// Package session runs the interactive collect, solve, report loop.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/bft-labs/rlcalc/internal/prompt"
	"github.com/bft-labs/rlcalc/pkg/log"
	"github.com/bft-labs/rlcalc/pkg/rlc"
)

const (
	banner   = "<-----------| WELCOME TO THE SERIES RLC CIRCUIT CALCULATOR |----------->"
	farewell = "Thank you for using the series RLC circuit calculator. Goodbye!"
	again    = "Analyze another circuit?"
)

// Collector supplies validated parameters and yes/no answers.
// *prompt.Collector satisfies it.
type Collector interface {
	Parameters(ctx context.Context) (rlc.Parameters, error)
	Confirm(ctx context.Context, question string) bool
}

// Session drives one interactive run of the calculator.
type Session struct {
	collector Collector
	out       io.Writer
	settings  SettingsSource
	logger    log.Logger
	terminal  bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. Defaults to a no-op logger.
func WithLogger(l log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithTerminal overrides terminal detection of the output writer.
// The screen is only cleared when the output is a terminal.
func WithTerminal(terminal bool) Option {
	return func(s *Session) {
		s.terminal = terminal
	}
}

// New creates a Session writing to out.
func New(c Collector, out io.Writer, settings SettingsSource, opts ...Option) *Session {
	s := &Session{
		collector: c,
		out:       out,
		settings:  settings,
		logger:    log.NewNoopLogger(),
		terminal:  IsTerminal(out),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run loops until the user declines another analysis, the input ends, or
// ctx is done. Input exhaustion and cancellation end the run normally;
// only a rendering failure is returned as an error.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintf(s.out, "\t%s\n\n", banner)

	runs := 0
	for {
		p, err := s.collector.Parameters(ctx)
		if err != nil {
			if errors.Is(err, prompt.ErrInputUnavailable) || ctx.Err() != nil {
				s.logger.Info("input ended", log.Int("analyses", runs), log.Err(err))
				break
			}
			return fmt.Errorf("collect parameters: %w", err)
		}

		if err := s.analyze(p); err != nil {
			return err
		}
		runs++

		if !s.collector.Confirm(ctx, again) {
			break
		}
		fmt.Fprintln(s.out)
	}

	fmt.Fprintf(s.out, "\n%s\n", farewell)
	s.logger.Debug("session finished", log.Int("analyses", runs))
	return nil
}

func (s *Session) analyze(p rlc.Parameters) error {
	set := s.settings.Current()
	if set.ClearScreen && s.terminal {
		io.WriteString(s.out, clearScreen)
	}

	runID := uuid.NewString()
	r := rlc.Solve(p)

	s.logger.Debug("circuit solved",
		log.String("run_id", runID),
		log.Any("parameters", p),
		log.Float64("impedance_ohm", r.ImpedanceMagnitude),
		log.Float64("rms_current_a", r.RMSCurrent),
		log.Float64("power_factor", r.PowerFactor),
		log.Any("nature", r.Nature()),
	)

	if set.Renderer == nil {
		return fmt.Errorf("render report: no renderer configured")
	}
	if err := set.Renderer.Render(s.out, p, r); err != nil {
		s.logger.Error("render failed", log.String("run_id", runID), log.String("format", set.Renderer.Format()), log.Err(err))
		return fmt.Errorf("render report: %w", err)
	}
	fmt.Fprintln(s.out)
	return nil
}
