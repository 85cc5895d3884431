package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bft-labs/rlcalc/pkg/rlc"
)

// YAMLRenderer writes one YAML document per analysis, separated by "---".
type YAMLRenderer struct{}

// NewYAMLRenderer creates a new YAML renderer.
func NewYAMLRenderer() *YAMLRenderer {
	return &YAMLRenderer{}
}

// Format returns the renderer format identifier.
func (YAMLRenderer) Format() string {
	return FormatYAML
}

// Render writes the analysis as a YAML document.
func (YAMLRenderer) Render(w io.Writer, p rlc.Parameters, r rlc.Results) error {
	if _, err := io.WriteString(w, "---\n"); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(p, r)); err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}
	return enc.Close()
}
