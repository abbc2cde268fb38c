package viz

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme for reports.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

var (
	ThemeNeon = Theme{
		Name:    "neon",
		Primary: lipgloss.Color("#00ffff"),
		Accent:  lipgloss.Color("#ff00ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666688"),
		Success: lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffaa00"),
		Error:   lipgloss.Color("#ff4444"),
	}

	ThemePhosphor = Theme{
		Name:    "phosphor",
		Primary: lipgloss.Color("#00ff00"),
		Accent:  lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#006600"),
		Success: lipgloss.Color("#00ff00"),
		Warning: lipgloss.Color("#ccff00"),
		Error:   lipgloss.Color("#ff3300"),
	}

	ThemeMono = Theme{
		Name:    "mono",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#cccccc"),
		Text:    lipgloss.Color("#eeeeee"),
		Muted:   lipgloss.Color("#777777"),
		Success: lipgloss.Color("#ffffff"),
		Warning: lipgloss.Color("#bbbbbb"),
		Error:   lipgloss.Color("#ffffff"),
	}
)

var themes = map[string]Theme{
	ThemeNeon.Name:     ThemeNeon,
	ThemePhosphor.Name: ThemePhosphor,
	ThemeMono.Name:     ThemeMono,
}

// DefaultTheme is used when no theme is named.
var DefaultTheme = ThemeNeon

func ThemeByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return DefaultTheme
}

func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
