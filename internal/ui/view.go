package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Shekhar0165/shekhar-portfolio/internal/command"
)

func (m Model) View() string {
	if m.termWidth == 0 {
		return "Initializing..."
	}
	if m.termWidth < minTermWidth || m.termHeight < minTermHeight {
		return m.renderSizeOverlay()
	}

	layout := CalculateLayout(m.termWidth, m.termHeight)
	body := lipgloss.NewStyle().PaddingLeft(LayoutSideMargin).Render(m.viewport.View())

	parts := []string{m.renderChrome(), body}
	if layout.ShowFooter {
		parts = append(parts, m.renderFooter())
	}
	screen := lipgloss.JoinVertical(lipgloss.Left, parts...)

	switch m.overlay {
	case projectOverlay:
		return m.placeOverlay(m.viewProjectModal())
	case contactOverlay:
		return m.placeOverlay(m.viewContactModal())
	}
	return screen
}

// renderChrome draws the window bar: traffic-light dots, the prompt title
// and a spinner while requests are in flight.
func (m Model) renderChrome() string {
	dots := lineStyle(command.Red).Render("●") + " " +
		lineStyle(command.Amber).Render("●") + " " +
		lineStyle(command.Green).Render("●")
	title := chromeTitleStyle.Render(strings.TrimSpace(m.prompt()))

	right := ""
	if m.busy > 0 {
		right = m.spinner.View()
	}
	gap := m.termWidth - lipgloss.Width(dots) - lipgloss.Width(title) - lipgloss.Width(right) - 4
	line := dots + "  " + title + strings.Repeat(" ", max(1, gap)) + right
	return chromeStyle.Width(m.termWidth).Render(line)
}

// renderFooter shows the status message when there is one, otherwise the
// quick-command bar.
func (m Model) renderFooter() string {
	var line string
	switch {
	case m.statusMessage != "" && m.statusPositive:
		line = statusPositiveStyle.Render(m.statusMessage)
	case m.statusMessage != "":
		line = statusNegativeStyle.Render(m.statusMessage)
	case m.booting:
		line = ""
	default:
		cmds := make([]string, len(QuickCommands))
		for i, c := range QuickCommands {
			cmds[i] = fmt.Sprintf("%d:%s", i+1, c)
		}
		line = quickCommandStyle.Render("alt+" + strings.Join(cmds, " "))
	}
	return footerStyle.Width(m.termWidth).MaxHeight(LayoutFooterHeight).Render(line)
}

// renderPromptLine is the live input line at the bottom of the transcript.
func (m Model) renderPromptLine() string {
	prompt := promptStyle.Render(m.prompt())
	value := []rune(m.editor.Value())
	if m.editor.Disabled() {
		return prompt + commandEchoStyle.Render(string(value))
	}

	cur := m.editor.Cursor()
	before := string(value[:cur])
	at, after := " ", ""
	if cur < len(value) {
		at = string(value[cur])
		after = string(value[cur+1:])
	}
	return prompt + commandEchoStyle.Render(before) + cursorStyle.Render(at) + commandEchoStyle.Render(after)
}

func (m Model) placeOverlay(box string) string {
	return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "))
}
