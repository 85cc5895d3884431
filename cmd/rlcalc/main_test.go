package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/rlcalc/internal/cliconfig"
	"github.com/bft-labs/rlcalc/pkg/log"
	"github.com/bft-labs/rlcalc/pkg/rlc"
)

var scenarioArgs = []string{
	"solve",
	"--voltage", "10",
	"--frequency", "1000",
	"--resistance", "100",
	"--inductance-mh", "10",
	"--capacitance-uf", "1",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"EPSILON", "FORMAT", "LOG_LEVEL", "COLOR", "CLEAR_SCREEN", "WATCH_CONFIG"} {
		t.Setenv(cliconfig.EnvPrefix+k, "")
	}
}

// execute runs the command tree with an isolated config path.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	clearEnv(t)

	var out, errOut bytes.Buffer
	root := newRootCommand()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	if !containsFlag(args, "--config") {
		args = append(args, "--config", filepath.Join(t.TempDir(), "config.toml"))
	}
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), errOut.String(), err
}

func containsFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag || strings.HasPrefix(a, flag+"=") {
			return true
		}
	}
	return false
}

func TestSolve_TextReport(t *testing.T) {
	out, _, err := execute(t, "", scenarioArgs...)
	require.NoError(t, err)

	assert.Contains(t, out, "SERIES RLC CIRCUIT ANALYSIS")
	assert.Contains(t, out, "159.2 Ω")
	assert.Contains(t, out, "138.85 Ω")
	assert.Contains(t, out, "0.0720 A")
	assert.Contains(t, out, "capacitive")
}

func TestSolve_JSONReport(t *testing.T) {
	out, _, err := execute(t, "", append(scenarioArgs, "--format", "json")...)
	require.NoError(t, err)

	var doc struct {
		Parameters map[string]float64 `json:"parameters"`
		Results    map[string]float64 `json:"results"`
		Class      map[string]any     `json:"classification"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.InDelta(t, 0.01, doc.Parameters["inductance_h"], 1e-12)
	assert.InDelta(t, 1e-6, doc.Parameters["capacitance_f"], 1e-18)
	assert.InDelta(t, 138.846, doc.Results["impedance_ohm"], 1e-3)
	assert.Equal(t, "capacitive", doc.Class["nature"])
}

func TestSolve_InvalidParameter(t *testing.T) {
	args := append([]string{}, scenarioArgs...)
	args[6] = "0" // resistance
	_, _, err := execute(t, "", args...)
	require.Error(t, err)
	assert.ErrorIs(t, err, rlc.ErrInvalidParameters)
	assert.Contains(t, err.Error(), "resistance")
}

func TestSolve_MissingFlag(t *testing.T) {
	_, _, err := execute(t, "", "solve", "--voltage", "10")
	assert.Error(t, err)
}

func TestRoot_InvalidFormat(t *testing.T) {
	_, _, err := execute(t, "", "--format", "pdf")
	assert.Error(t, err)
}

func TestRoot_InvalidEpsilon(t *testing.T) {
	_, _, err := execute(t, "", "--epsilon=-1")
	assert.Error(t, err)
}

func TestRoot_InteractiveSession(t *testing.T) {
	input := "10\n1000\n100\n10\n1\nn\n"
	out, _, err := execute(t, input, "--format", "yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "WELCOME TO THE SERIES RLC CIRCUIT CALCULATOR")
	assert.Contains(t, out, "Enter the supply voltage (V): ")
	assert.Contains(t, out, "impedance_ohm:")
	assert.Contains(t, out, "Goodbye!")
}

func TestRoot_EndOfInputExitsCleanly(t *testing.T) {
	out, _, err := execute(t, "10\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Goodbye!")
}

func TestRoot_ConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("format = \"yaml\"\n"), 0644))

	out, _, err := execute(t, "", append(scenarioArgs, "--config", path)...)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "---\n"), "file format should apply")

	out, _, err = execute(t, "", append(scenarioArgs, "--config", path, "--format", "json")...)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{"), "flag should win over file")
}

func TestRoot_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("format = \"yaml\"\n"), 0644))

	clearEnv(t)
	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append(scenarioArgs, "--config", path))
	t.Setenv(cliconfig.EnvPrefix+"FORMAT", "json")

	require.NoError(t, root.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "{"))
}

func TestRoot_NegatedFlagsBeatFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("color = true\nclear_screen = true\n"), 0644))

	clearEnv(t)
	g := &globalFlags{cfg: cliconfig.DefaultConfig()}
	cmd := &cobra.Command{Use: "test"}
	g.register(cmd.Flags())
	require.NoError(t, cmd.Flags().Parse([]string{"--no-color", "--no-clear", "--config", path}))

	rc, err := g.resolve(cmd)
	require.NoError(t, err)
	assert.False(t, rc.cfg.Color)
	assert.False(t, rc.cfg.ClearScreen)
	assert.True(t, rc.changed["color"])
	assert.True(t, rc.changed["clear"])
}

func TestRoot_Version(t *testing.T) {
	out, _, err := execute(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, getVersion())
	assert.Contains(t, out, "rlc "+rlc.Version)
	assert.Contains(t, out, "log "+log.Version)
}
