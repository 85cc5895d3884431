package cliconfig

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bft-labs/rlcalc/internal/report"
	"github.com/bft-labs/rlcalc/pkg/log"
	"github.com/bft-labs/rlcalc/pkg/rlc"
)

// EnvPrefix prefixes every environment variable read by ApplyEnvConfig.
const EnvPrefix = "RLCALC_"

// Config holds CLI configuration for rlcalc.
type Config struct {
	// Epsilon is the lower bound every circuit parameter must exceed
	Epsilon float64

	// Format selects the report renderer (text, json, yaml)
	Format string

	Color       bool
	ClearScreen bool

	LogLevel    string
	WatchConfig bool
}

// Display carries the settings that may change between analysis cycles.
type Display struct {
	Format      string
	Color       bool
	ClearScreen bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Epsilon:     rlc.DefaultEpsilon,
		Format:      report.FormatText,
		Color:       true,
		ClearScreen: true,
		LogLevel:    "warn",
	}
}

// Display extracts the display settings.
func (c Config) Display() Display {
	return Display{Format: c.Format, Color: c.Color, ClearScreen: c.ClearScreen}
}

// Validate checks the configuration and normalizes names to lowercase.
func (c *Config) Validate() error {
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon <= 0 {
		return fmt.Errorf("epsilon must be a positive finite number (got %v)", c.Epsilon)
	}

	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if !report.IsFormat(c.Format) {
		return fmt.Errorf("format must be one of %s (got %q)", strings.Join(report.Formats(), ", "), c.Format)
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}

	return nil
}

// Resolve layers the config file at path and the environment over flags.
// flags must hold defaults for every flag not present in changed.
// A missing file is not an error.
func Resolve(path string, flags Config, changed map[string]bool) (Config, error) {
	cfg := flags

	if path != "" && FileExists(path) {
		fc, err := LoadFileConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		if err := ApplyFileConfig(&cfg, fc, changed); err != nil {
			return cfg, err
		}
	}

	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// configSetter applies values only when the matching flag was not set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat sets a float64 value if non-zero and flag not changed.
// Negative values are kept so Validate can reject them.
func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setFloatFromString parses a string to float64 and sets the destination.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = f
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1", "yes" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes":
		*dst = true
	default:
		*dst = false
	}
}
