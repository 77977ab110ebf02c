package command

import (
	"github.com/Shekhar0165/shekhar-portfolio/internal/content"
	"github.com/mattn/go-runewidth"
)

// Color names the palette slot an output line is drawn with. The empty
// value renders as Amber.
type Color string

const (
	Amber Color = "amber"
	Green Color = "green"
	Red   Color = "red"
	Dim   Color = "dim"
	White Color = "white"
	Cyan  Color = "cyan"
)

// LinkInfo is one inline anchor of a multi-link line.
type LinkInfo struct {
	Label string
	URL   string
}

// OutputEntry is one styled line of terminal output. A line carries at most
// one of Link (the whole line is the anchor) or Links (several anchors).
type OutputEntry struct {
	Text  string
	Color Color
	Link  string
	Links []LinkInfo
}

// EffectiveColor resolves the default color.
func (e OutputEntry) EffectiveColor() Color {
	if e.Color == "" {
		return Amber
	}
	return e.Color
}

// Result is what Dispatch hands back to the terminal.
type Result struct {
	Output           []OutputEntry
	OpenContactModal bool
	OpenProjectModal *content.Project
	// ClearHistory asks the caller to empty the whole transcript.
	ClearHistory bool
	// DownloadResume asks the caller to schedule the resume download.
	DownloadResume bool
}

// CommandNames is the closed command set, in declared order. Dispatch and
// tab completion both read it.
var CommandNames = []string{
	"help", "whoami", "experience", "projects", "project",
	"skills", "education", "blogs", "contact", "resume",
	"all", "clear", "sudo hire me",
}

// DefaultMilestoneGlyphs are the leading glyphs that turn a sudo line amber.
var DefaultMilestoneGlyphs = []string{"📨", "🎉"}

// Options carries the content-coupled knobs of the formatters.
type Options struct {
	MilestoneGlyphs []string
}

// DefaultOptions returns Options with the stock milestone glyphs.
func DefaultOptions() Options {
	return Options{MilestoneGlyphs: DefaultMilestoneGlyphs}
}

const rule = "  ─────────────────────────────────────"

func blank() OutputEntry { return OutputEntry{Text: ""} }

// padRight pads s with spaces to display width w; wider strings are kept whole.
func padRight(s string, w int) string {
	return runewidth.FillRight(s, w)
}

func width(s string) int {
	return runewidth.StringWidth(s)
}
