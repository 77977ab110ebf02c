package config

import "strings"

// ThemeConfig holds the color palette for a theme. The first six slots are
// the output line colors; the rest dress the chrome and modals.
type ThemeConfig struct {
	Amber  string
	Green  string
	Red    string
	Dim    string
	White  string
	Cyan   string
	Border string // Modal and chrome borders
	Accent string // Prompt, cursor, selected field
	Panel  string // Modal background
}

// themes is a map of available theme presets.
var themes = map[string]ThemeConfig{
	"classic": {
		Amber:  "#FFB300",
		Green:  "#00FF00",
		Red:    "#FF5555",
		Dim:    "#888888",
		White:  "#e0e0e0",
		Cyan:   "#06b6d4",
		Border: "#333333",
		Accent: "#00FF00",
		Panel:  "#0a0a0a",
	},
	"nord": {
		Amber:  "#ebcb8b",
		Green:  "#a3be8c",
		Red:    "#bf616a",
		Dim:    "#4c566a",
		White:  "#e5e9f0",
		Cyan:   "#88c0d0",
		Border: "#4c566a",
		Accent: "#5e81ac",
		Panel:  "#0a192f",
	},
	"dracula": {
		Amber:  "#f1fa8c",
		Green:  "#50fa7b",
		Red:    "#ff5555",
		Dim:    "#6272a4",
		White:  "#f8f8f2",
		Cyan:   "#8be9fd",
		Border: "#6272a4",
		Accent: "#ff79c6",
		Panel:  "#282a36",
	},
}

// GetTheme returns the named palette, or classic when the name is unknown.
func GetTheme(name string) ThemeConfig {
	if t, ok := themes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t
	}
	return themes["classic"]
}
