package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the colours of the frame, the tiles and the overlay text.
type Theme struct {
	Name       string
	Frame      lipgloss.Color
	Background lipgloss.Color
	Tile       lipgloss.Color
	Tree       lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
}

var (
	ThemeEmerald = Theme{
		Name:       "emerald",
		Frame:      lipgloss.Color("#064e3b"),
		Background: lipgloss.Color("#022c22"),
		Tile:       lipgloss.Color("#475569"),
		Tree:       lipgloss.Color("#a7f3d0"),
		Text:       lipgloss.Color("#d1fae5"),
		Muted:      lipgloss.Color("#6b7280"),
	}

	ThemeSlate = Theme{
		Name:       "slate",
		Frame:      lipgloss.Color("#334155"),
		Background: lipgloss.Color("#0f172a"),
		Tile:       lipgloss.Color("#64748b"),
		Tree:       lipgloss.Color("#e2e8f0"),
		Text:       lipgloss.Color("#f1f5f9"),
		Muted:      lipgloss.Color("#64748b"),
	}

	ThemeMidnight = Theme{
		Name:       "midnight",
		Frame:      lipgloss.Color("#312e81"),
		Background: lipgloss.Color("#1e1b4b"),
		Tile:       lipgloss.Color("#4338ca"),
		Tree:       lipgloss.Color("#c7d2fe"),
		Text:       lipgloss.Color("#e0e7ff"),
		Muted:      lipgloss.Color("#6366f1"),
	}

	Themes = []Theme{
		ThemeEmerald,
		ThemeSlate,
		ThemeMidnight,
	}
)

// GetTheme returns a theme by name, falling back to emerald.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeEmerald
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// nextTheme cycles to the theme after t.
func nextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
