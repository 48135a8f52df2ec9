package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the palette used to draw the grid. Ages holds one colour per
// power of two of cell age, youngest first.
type Theme struct {
	Name   string
	Dead   lipgloss.Color
	Alive  lipgloss.Color
	Cursor lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Ages   []lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:   "classic",
		Dead:   lipgloss.Color("#111111"),
		Alive:  lipgloss.Color("#ffffff"),
		Cursor: lipgloss.Color("#ff4444"),
		Text:   lipgloss.Color("#eeeeee"),
		Muted:  lipgloss.Color("#666666"),
		Ages: []lipgloss.Color{
			"#ffffff", "#fff3b0", "#ffe066", "#ffc145", "#ff9f1c",
			"#f77f00", "#e85d04", "#d00000", "#9d0208",
		},
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Dead:   lipgloss.Color("#001a33"),
		Alive:  lipgloss.Color("#e0f0ff"),
		Cursor: lipgloss.Color("#ffd700"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Ages: []lipgloss.Color{
			"#e0f0ff", "#b3e0ff", "#80ccff", "#4db8ff", "#1aa3ff",
			"#0088e6", "#006bb3", "#004f80", "#00334d",
		},
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Dead:   lipgloss.Color("#001100"),
		Alive:  lipgloss.Color("#00ff00"),
		Cursor: lipgloss.Color("#ffff00"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Ages: []lipgloss.Color{
			"#ccffcc", "#99ff99", "#66ff66", "#33ff33", "#00ff00",
			"#00cc00", "#009900", "#007700", "#005500",
		},
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Dead:   lipgloss.Color("#2d1b2e"),
		Alive:  lipgloss.Color("#fff5f5"),
		Cursor: lipgloss.Color("#00ffff"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Ages: []lipgloss.Color{
			"#fff5f5", "#ffd6e0", "#ff9ff3", "#feca57", "#ff9f43",
			"#ff6b6b", "#ee5253", "#c44569", "#833471",
		},
	}
)

var themes = []Theme{ThemeClassic, ThemeOcean, ThemeRetroGreen, ThemeSunset}

// ThemeNames returns the names of all available themes.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// GetTheme returns the named theme, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}
