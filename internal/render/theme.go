package render

import (
	"charm.land/lipgloss/v2"
)

// Color palette, readable on dark and light terminals.
var (
	primary = lipgloss.Color("#8B5CF6") // Purple
	accent  = lipgloss.Color("#14B8A6") // Teal
	dim     = lipgloss.Color("#94A3B8") // Slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(dim)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	equationStyle = lipgloss.NewStyle().
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(dim).
			Italic(true)
)
