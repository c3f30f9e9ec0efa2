package tui

import "github.com/charmbracelet/lipgloss"

// Theme colors the UI chrome around the effect grid.
type Theme struct {
	Name             string
	Header           lipgloss.Color
	Text             lipgloss.Color
	Muted            lipgloss.Color
	Accent           lipgloss.Color
	Warning          lipgloss.Color
	Banner           lipgloss.Color
	BannerBackground lipgloss.Color
}

var (
	ThemeNeon = Theme{
		Name:             "neon",
		Header:           lipgloss.Color("#ff00ff"),
		Text:             lipgloss.Color("#ffffff"),
		Muted:            lipgloss.Color("#666666"),
		Accent:           lipgloss.Color("#00ffff"),
		Warning:          lipgloss.Color("#ffff00"),
		Banner:           lipgloss.Color("#ff0000"),
		BannerBackground: lipgloss.Color("#ffff00"),
	}

	ThemeRetro = Theme{
		Name:             "retro",
		Header:           lipgloss.Color("#00ff00"),
		Text:             lipgloss.Color("#00ff00"),
		Muted:            lipgloss.Color("#005500"),
		Accent:           lipgloss.Color("#88ff88"),
		Warning:          lipgloss.Color("#ffff00"),
		Banner:           lipgloss.Color("#001100"),
		BannerBackground: lipgloss.Color("#00ff00"),
	}

	ThemeMono = Theme{
		Name:             "mono",
		Header:           lipgloss.Color("#ffffff"),
		Text:             lipgloss.Color("#ffffff"),
		Muted:            lipgloss.Color("#888888"),
		Accent:           lipgloss.Color("#cccccc"),
		Warning:          lipgloss.Color("#ffffff"),
		Banner:           lipgloss.Color("#000000"),
		BannerBackground: lipgloss.Color("#ffffff"),
	}

	Themes = []Theme{ThemeNeon, ThemeRetro, ThemeMono}
)

// GetTheme returns a theme by name, falling back to neon.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeNeon
}

// ThemeNames returns the available theme names.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
