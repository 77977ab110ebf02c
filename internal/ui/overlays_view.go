package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Shekhar0165/shekhar-portfolio/internal/command"
)

// Minimum terminal size before the transcript is replaced by a hint.
const (
	minTermWidth  = 40
	minTermHeight = 8
)

// renderSizeOverlay shows a centered panel with current and required dimensions.
func (m Model) renderSizeOverlay() string {
	title := errorTextStyle.Bold(true).Render("Terminal too small")
	info := modalLabelStyle.Render(
		fmt.Sprintf("Current: %dx%d  |  Required: %dx%d",
			m.termWidth, m.termHeight, minTermWidth, minTermHeight),
	)
	box := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(activeTheme.Red)).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, info))
	return m.placeOverlay(box)
}

// viewProjectModal renders the project preview: title, stack, description,
// highlights, technology tags and the link keys.
func (m Model) viewProjectModal() string {
	p := m.project
	width := m.modalWidth()

	var rows []string
	rows = append(rows, modalTitleStyle.Render("📦 "+p.Title))
	if p.Stack != "" {
		rows = append(rows, modalLabelStyle.Render(p.Stack), "")
	}
	if p.ImageURL != "" {
		rows = append(rows, lineStyle(command.Cyan).Render(hyperlink(p.ImageURL, "🖼  "+p.ImageURL)), "")
	}

	for _, l := range wrapParagraphs(p.Description, width) {
		rows = append(rows, lineStyle(command.White).Render(l))
	}

	if len(p.Highlights) > 0 {
		rows = append(rows, "", lineStyle(command.Amber).Render("Key Highlights:"))
		for _, h := range p.Highlights {
			for i, l := range wrapWords(h, width-4) {
				prefix := "  → "
				if i > 0 {
					prefix = "    "
				}
				rows = append(rows, lineStyle(command.Green).Render(prefix+l))
			}
		}
	}

	if len(p.Technologies) > 0 {
		rows = append(rows, "", m.renderTags(p.Technologies, width))
	}

	var keys []string
	if p.GithubURL != "" {
		keys = append(keys, "g: GitHub")
	}
	if p.LiveURL != "" {
		keys = append(keys, "l: Live Demo")
	}
	if p.ImageURL != "" {
		keys = append(keys, "i: Image")
	}
	if p.GithubURL != "" || p.LiveURL != "" || p.ImageURL != "" {
		keys = append(keys, "c: Copy link")
	}
	keys = append(keys, "Esc/q: Close")
	rows = append(rows, modalHintStyle.Render(strings.Join(keys, "  •  ")))

	return modalStyle.Width(width + 4).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderTags lays technology tags out in rows that fit width.
func (m Model) renderTags(tags []string, width int) string {
	var lines []string
	var line []string
	cur := 0
	for _, t := range tags {
		tag := modalTagStyle.Render(t)
		w := lipgloss.Width(tag)
		if cur > 0 && cur+w+1 > width {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, line...))
			line, cur = nil, 0
		}
		if cur > 0 {
			line = append(line, " ")
			cur++
		}
		line = append(line, tag)
		cur += w
	}
	if len(line) > 0 {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, line...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// viewContactModal renders the send-message form.
func (m Model) viewContactModal() string {
	f := m.contact
	labels := [fieldCount]string{"Name *", "Email *", "Subject *", "Message *"}

	field := func(i int, view string) string {
		style := fieldStyle
		if f.focus == i {
			style = focusedFieldStyle
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			modalLabelStyle.Render(labels[i]),
			style.Render(view),
		)
	}

	rows := []string{
		modalTitleStyle.MarginBottom(0).Render("📬 Send Message"),
		modalLabelStyle.Render("to " + m.snap.Config.Personal.Name),
		"",
	}
	for i := range f.inputs {
		rows = append(rows, field(i, f.inputs[i].View()))
	}
	rows = append(rows, field(fieldMessage, f.message.View()))

	if f.err != "" {
		rows = append(rows, errorTextStyle.Render("✖ "+f.err))
	}

	hint := "Tab: Next field  •  Ctrl+S: 🚀 Send  •  Esc: Cancel"
	if f.sending {
		hint = "⏳ Sending..."
	}
	rows = append(rows, modalHintStyle.Render(hint))

	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
