package report

import "github.com/charmbracelet/lipgloss"

// Palette for the text report.
var (
	colorTitle   = lipgloss.Color("#2CD7C7")
	colorLabel   = lipgloss.Color("#157483")
	colorBorder  = lipgloss.Color("#16858E")
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
)

const labelWidth = 28

type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	muted   lipgloss.Style
	border  lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	error   lipgloss.Style
}

// newStyles builds the report styles on r. With color off every style is
// plain apart from layout.
func newStyles(r *lipgloss.Renderer, color bool) styles {
	s := styles{
		title:   r.NewStyle(),
		label:   r.NewStyle().Width(labelWidth),
		value:   r.NewStyle(),
		muted:   r.NewStyle(),
		border:  r.NewStyle(),
		header:  r.NewStyle().Padding(0, 1),
		cell:    r.NewStyle().Padding(0, 1),
		success: r.NewStyle(),
		warning: r.NewStyle(),
		error:   r.NewStyle(),
	}
	if !color {
		return s
	}

	s.title = s.title.Bold(true).Foreground(colorTitle)
	s.label = s.label.Foreground(colorLabel)
	s.value = s.value.Bold(true)
	s.muted = s.muted.Faint(true)
	s.border = s.border.Foreground(colorBorder)
	s.header = s.header.Bold(true).Foreground(colorTitle)
	s.success = s.success.Foreground(colorSuccess)
	s.warning = s.warning.Foreground(colorWarning)
	s.error = s.error.Foreground(colorError)
	return s
}
