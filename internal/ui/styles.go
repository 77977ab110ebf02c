package ui

import (
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	"github.com/Shekhar0165/shekhar-portfolio/internal/command"
	"github.com/Shekhar0165/shekhar-portfolio/internal/config"
)

// Styling lives in one place so colors and layout tweaks are easy to reason about.

var (
	lineStyles map[command.Color]lipgloss.Style

	chromeStyle         lipgloss.Style
	chromeTitleStyle    lipgloss.Style
	promptStyle         lipgloss.Style
	commandEchoStyle    lipgloss.Style
	cursorStyle         lipgloss.Style
	footerStyle         lipgloss.Style
	quickCommandStyle   lipgloss.Style
	statusPositiveStyle lipgloss.Style
	statusNegativeStyle lipgloss.Style
	modalStyle          lipgloss.Style
	modalTitleStyle     lipgloss.Style
	modalLabelStyle     lipgloss.Style
	modalHintStyle      lipgloss.Style
	modalTagStyle       lipgloss.Style
	fieldStyle          lipgloss.Style
	focusedFieldStyle   lipgloss.Style
	errorTextStyle      lipgloss.Style
	activeTheme         config.ThemeConfig
)

func init() {
	applyThemeStyles(config.DefaultConfig())
}

func applyThemeStyles(cfg config.Config) {
	theme := config.GetTheme(cfg.Theme)
	activeTheme = theme
	slog.Debug("applying theme", "theme", cfg.Theme)

	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}

	lineStyles = map[command.Color]lipgloss.Style{
		command.Amber: fg(theme.Amber),
		command.Green: fg(theme.Green),
		command.Red:   fg(theme.Red),
		command.Dim:   fg(theme.Dim),
		command.White: fg(theme.White),
		command.Cyan:  fg(theme.Cyan).Underline(true),
	}

	chromeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Dim)).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color(theme.Border))

	chromeTitleStyle = fg(theme.Amber).Bold(true)

	promptStyle = fg(theme.Accent).Bold(true)

	commandEchoStyle = fg(theme.Amber)

	cursorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Panel)).
		Background(lipgloss.Color(theme.Accent))

	footerStyle = fg(theme.Dim).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(lipgloss.Color(theme.Border))

	quickCommandStyle = fg(theme.Green).
		Padding(0, 1)

	statusPositiveStyle = fg(theme.Green).PaddingLeft(1)

	statusNegativeStyle = fg(theme.Red).PaddingLeft(1)

	modalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Amber)).
		Background(lipgloss.Color(theme.Panel)).
		Padding(1, 2)

	modalTitleStyle = fg(theme.Amber).Bold(true).MarginBottom(1)

	modalLabelStyle = fg(theme.Dim)

	modalHintStyle = fg(theme.Dim).MarginTop(1)

	modalTagStyle = fg(theme.Cyan).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		Padding(0, 1)

	fieldStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.Border))

	focusedFieldStyle = fieldStyle.
		BorderForeground(lipgloss.Color(theme.Accent))

	errorTextStyle = fg(theme.Red)
}

// lineStyle returns the style for an output color, falling back to amber.
func lineStyle(c command.Color) lipgloss.Style {
	if s, ok := lineStyles[c]; ok {
		return s
	}
	return lineStyles[command.Amber]
}
