package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/Shekhar0165/shekhar-portfolio/internal/command"
)

const defaultHandle = "portfolio"

// Prompt is the shell prompt shown before the input and every echoed command.
func Prompt(handle string) string {
	if strings.TrimSpace(handle) == "" {
		handle = defaultHandle
	}
	return "guest@" + handle + ":~$ "
}

// hyperlink wraps text in an OSC 8 anchor. Terminals without support show
// the text alone.
func hyperlink(url, text string) string {
	if url == "" {
		return text
	}
	return ansi.SetHyperlink(url) + text + ansi.ResetHyperlink()
}

// renderEntry styles one output line, wrapping it to width.
func renderEntry(e command.OutputEntry, width int) string {
	style := lineStyle(e.EffectiveColor())

	if len(e.Links) > 0 {
		parts := make([]string, len(e.Links))
		for i, l := range e.Links {
			parts[i] = hyperlink(l.URL, style.Render(l.Label))
		}
		return "  " + strings.Join(parts, "   ")
	}

	if e.Text == "" {
		return ""
	}
	lines := wrapIndented(e.Text, width)
	for i, l := range lines {
		lines[i] = hyperlink(e.Link, style.Render(l))
	}
	return strings.Join(lines, "\n")
}

// renderEntries renders a list of output lines.
func renderEntries(entries []command.OutputEntry, width int) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, renderEntry(e, width))
	}
	return out
}

// renderTranscript renders every history block: the echoed prompt and
// command, then its output.
func renderTranscript(blocks []HistoryBlock, prompt string, width int) string {
	var lines []string
	for _, b := range blocks {
		if b.HasCommand {
			lines = append(lines, promptStyle.Render(prompt)+commandEchoStyle.Render(b.Command))
		}
		lines = append(lines, renderEntries(b.Output, width)...)
	}
	return strings.Join(lines, "\n")
}
