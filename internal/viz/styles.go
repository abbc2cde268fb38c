package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles is the set of lipgloss styles derived from a theme.
type styles struct {
	panel  lipgloss.Style
	title  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	muted  lipgloss.Style
	good   lipgloss.Style
	fair   lipgloss.Style
	bad    lipgloss.Style
	header lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 2),
		title: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		label: lipgloss.NewStyle().Foreground(t.Muted).Width(26),
		value: lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		muted: lipgloss.NewStyle().Foreground(t.Muted),
		good:  lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		fair:  lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		bad:   lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Muted),
	}
}

// recoveryStyle grades a total-pressure recovery.
func (s styles) recoveryStyle(r float64) lipgloss.Style {
	switch {
	case r >= 0.9:
		return s.good
	case r >= 0.7:
		return s.fair
	}
	return s.bad
}

// ProgressBar renders fraction in [0, 1] as a bar of width cells.
func ProgressBar(fraction float64, width int, t Theme) string {
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return newStyles(t).recoveryStyle(fraction).Render(bar)
}

// Separator renders a muted horizontal rule.
func Separator(width int, t Theme) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return newStyles(t).muted.Render(left + " ◆ " + right)
}
