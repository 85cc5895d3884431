// Package report renders circuit analysis results for people and machines.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bft-labs/rlcalc/pkg/rlc"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned by New for an unsupported format name.
var ErrUnknownFormat = errors.New("report: unknown format")

// Renderer writes one analysis to w.
type Renderer interface {
	Render(w io.Writer, p rlc.Parameters, r rlc.Results) error
	Format() string
}

// Options tune renderer output.
type Options struct {
	// Color enables terminal styling in the text renderer
	Color bool
}

// Formats lists the supported format names.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML}
}

// IsFormat reports whether name is a supported format.
func IsFormat(name string) bool {
	for _, f := range Formats() {
		if f == name {
			return true
		}
	}
	return false
}

// New returns the renderer for format. Matching is case-insensitive.
func New(format string, opts Options) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText:
		return NewTextRenderer(opts), nil
	case FormatJSON:
		return NewJSONRenderer(), nil
	case FormatYAML:
		return NewYAMLRenderer(), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}
