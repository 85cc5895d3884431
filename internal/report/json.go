package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bft-labs/rlcalc/pkg/rlc"
)

// JSONRenderer writes one indented JSON document per analysis.
type JSONRenderer struct{}

// NewJSONRenderer creates a new JSON renderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Format returns the renderer format identifier.
func (JSONRenderer) Format() string {
	return FormatJSON
}

// Render writes the analysis as JSON.
func (JSONRenderer) Render(w io.Writer, p rlc.Parameters, r rlc.Results) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(p, r)); err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}
	return nil
}
