// Package prompt collects circuit parameters from a line-oriented input
// stream, re-prompting until every value is valid.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/bft-labs/rlcalc/pkg/log"
	"github.com/bft-labs/rlcalc/pkg/rlc"
)

// ErrInputUnavailable is returned when the input stream is exhausted or
// cannot be read. It is never returned for bad values.
var ErrInputUnavailable = errors.New("prompt: input unavailable")

// Field describes one quantity the user is asked for.
type Field struct {
	// Name identifies the quantity in messages and logs
	Name string

	// Prompt is the question shown to the user
	Prompt string

	// Unit is the user-facing unit symbol
	Unit string

	// Scale converts the user-facing unit to the SI base unit
	Scale float64
}

// Fields in the order they are asked.
var (
	Voltage     = Field{Name: "voltage", Prompt: "Enter the supply voltage", Unit: "V", Scale: 1}
	Frequency   = Field{Name: "frequency", Prompt: "Enter the supply frequency", Unit: "Hz", Scale: 1}
	Resistance  = Field{Name: "resistance", Prompt: "Enter the resistance", Unit: "Ω", Scale: 1}
	Inductance  = Field{Name: "inductance", Prompt: "Enter the inductance", Unit: "mH", Scale: 1e-3}
	Capacitance = Field{Name: "capacitance", Prompt: "Enter the capacitance", Unit: "μF", Scale: 1e-6}
)

// Collector asks for values on out and reads answers from in.
type Collector struct {
	in     *bufio.Reader
	out    io.Writer
	eps    float64
	logger log.Logger

	// pending holds a read still in flight after its caller gave up
	pending chan lineResult
}

type lineResult struct {
	line string
	err  error
}

// Option configures a Collector.
type Option func(*Collector)

// WithLogger sets the logger used for rejected input. Defaults to a no-op logger.
func WithLogger(l log.Logger) Option {
	return func(c *Collector) {
		c.logger = l
	}
}

// NewCollector creates a Collector. eps is the bound every SI value must
// exceed; a non-positive eps selects rlc.DefaultEpsilon.
func NewCollector(in io.Reader, out io.Writer, eps float64, opts ...Option) *Collector {
	eps = rlc.NormalizeEpsilon(eps)
	c := &Collector{
		in:     bufio.NewReader(in),
		out:    out,
		eps:    eps,
		logger: log.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Epsilon returns the bound in force.
func (c *Collector) Epsilon() float64 {
	return c.eps
}

// Parameters asks for all five quantities and returns them in SI units.
// A circuit whose values are each in range but whose results overflow is
// rejected and asked for again from the start.
// It returns ErrInputUnavailable if the stream ends before all are read,
// or the context error if ctx is done first.
func (c *Collector) Parameters(ctx context.Context) (rlc.Parameters, error) {
	for {
		p, err := c.collect(ctx)
		if err != nil {
			return rlc.Parameters{}, err
		}

		v, err := rlc.NewParameters(p, c.eps)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, rlc.ErrInvalidParameters) {
			return rlc.Parameters{}, err
		}
		c.logger.Debug("rejected circuit", log.Any("parameters", p), log.Err(err))
		fmt.Fprintln(c.out, "These values put the circuit out of numeric range, please enter the circuit again.")
	}
}

func (c *Collector) collect(ctx context.Context) (rlc.Parameters, error) {
	var p rlc.Parameters
	steps := []struct {
		field Field
		dst   *float64
	}{
		{Voltage, &p.SupplyVoltage},
		{Frequency, &p.Frequency},
		{Resistance, &p.Resistance},
		{Inductance, &p.Inductance},
		{Capacitance, &p.Capacitance},
	}

	for _, s := range steps {
		v, err := c.Float(ctx, s.field)
		if err != nil {
			return rlc.Parameters{}, err
		}
		*s.dst = v
	}
	return p, nil
}

// Float asks for f until the answer parses and its SI value is finite and
// above the epsilon. The returned value is in SI units.
func (c *Collector) Float(ctx context.Context, f Field) (float64, error) {
	scale := f.Scale
	if scale == 0 {
		scale = 1
	}

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		fmt.Fprintf(c.out, "%s (%s): ", f.Prompt, f.Unit)
		line, err := c.readLine(ctx)
		if err != nil {
			return 0, err
		}

		raw := strings.TrimSpace(line)
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.logger.Debug("rejected input", log.String("field", f.Name), log.String("input", raw), log.Err(err))
			fmt.Fprintf(c.out, "Invalid number %q, please try again.\n", raw)
			continue
		}

		si := v * scale
		if err := rlc.CheckValue(f.Name, si, c.eps); err != nil {
			c.logger.Debug("rejected input", log.String("field", f.Name), log.Float64("value", v), log.Err(err))
			if math.IsNaN(si) || math.IsInf(si, 0) {
				fmt.Fprintf(c.out, "The %s must be a finite number, please try again.\n", f.Name)
			} else {
				fmt.Fprintf(c.out, "The %s must be greater than %g %s, please try again.\n", f.Name, c.eps/scale, f.Unit)
			}
			continue
		}

		return si, nil
	}
}

// Confirm asks a yes/no question. Only a case-insensitive "y" or "yes"
// counts as yes; a read failure counts as no.
func (c *Collector) Confirm(ctx context.Context, question string) bool {
	if ctx.Err() != nil {
		return false
	}
	fmt.Fprintf(c.out, "%s (y/n): ", question)
	line, err := c.readLine(ctx)
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// readLine returns the next line without its terminator. A final line
// without a newline is still returned. If ctx is done first the read is
// left pending and picked up by the next call.
func (c *Collector) readLine(ctx context.Context) (string, error) {
	if c.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := c.in.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
		c.pending = ch
	}

	var res lineResult
	select {
	case <-ctx.Done():
		fmt.Fprintln(c.out)
		return "", ctx.Err()
	case res = <-c.pending:
		c.pending = nil
	}

	if res.err != nil {
		if errors.Is(res.err, io.EOF) && res.line != "" {
			return strings.TrimRight(res.line, "\r"), nil
		}
		// keep the prompt line terminated
		fmt.Fprintln(c.out)
		return "", fmt.Errorf("%w: %v", ErrInputUnavailable, res.err)
	}
	return strings.TrimRight(res.line, "\r\n"), nil
}
