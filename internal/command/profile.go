package command

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Shekhar0165/shekhar-portfolio/internal/content"
)

// Whoami renders the personal block plus any non-empty extra fields.
func Whoami(cfg content.TerminalConfig) []OutputEntry {
	p := cfg.Personal
	role := p.Role
	if p.Company != "" {
		role += " @ " + p.Company
	}
	lines := []OutputEntry{
		{Text: "  👤 " + p.Name, Color: Amber},
		{Text: rule, Color: Dim},
		{Text: "  Role       : " + role, Color: White},
		{Text: "  Since      : " + p.Since, Color: White},
		{Text: "  Status     : " + p.Status, Color: White},
		{Text: "  Interests  : " + p.Interests, Color: White},
		{Text: "  Location   : " + p.Location, Color: White},
	}

	for _, ef := range p.ExtraFields {
		if ef.Label == "" || ef.Value == "" {
			continue
		}
		lines = append(lines, OutputEntry{
			Text:  fmt.Sprintf("  %s : %s", padRight(ef.Label, 10), ef.Value),
			Color: White,
			Link:  ef.Link,
		})
	}

	lines = append(lines, blank(), OutputEntry{Text: "  " + p.Tagline, Color: Green})
	return lines
}

// Experience renders the work history in order, skipping blank bullets.
func Experience(cfg content.TerminalConfig) []OutputEntry {
	lines := []OutputEntry{
		{Text: "  💼 Work Experience", Color: Amber},
		{Text: rule, Color: Dim},
	}
	if len(cfg.Experience) == 0 {
		return append(lines, OutputEntry{Text: "  No experience listed yet.", Color: Dim})
	}

	for _, exp := range cfg.Experience {
		role := exp.Role
		if exp.Company != "" {
			role += " @ " + exp.Company
		}
		lines = append(lines,
			blank(),
			OutputEntry{Text: "  " + exp.Period, Color: Dim},
			OutputEntry{Text: "  " + role, Color: White},
		)
		for _, b := range exp.Bullets {
			if strings.TrimSpace(b) == "" {
				continue
			}
			lines = append(lines, OutputEntry{Text: "    → " + b, Color: Green})
		}
	}
	return lines
}

const skillBarCells = 20

// skillBar draws round(level/5) filled cells out of 20. Levels outside
// 0-100 still print their literal percentage; only the bar is bounded.
func skillBar(level float64) string {
	filled := int(math.Floor(level/5 + 0.5))
	filled = max(0, min(skillBarCells, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", skillBarCells-filled)
}

func formatLevel(level float64) string {
	return strconv.FormatFloat(level, 'f', -1, 64)
}

// Skills renders each category with a level bar per item.
func Skills(cfg content.TerminalConfig) []OutputEntry {
	lines := []OutputEntry{
		{Text: "  🛠️  Tech Stack", Color: Amber},
		{Text: rule, Color: Dim},
	}
	if len(cfg.Skills) == 0 {
		return append(lines, OutputEntry{Text: "  No skills listed yet.", Color: Dim})
	}

	for _, cat := range cfg.Skills {
		lines = append(lines,
			blank(),
			OutputEntry{Text: fmt.Sprintf("  [ %s ]", cat.Category), Color: Cyan},
		)
		for _, item := range cat.Items {
			lines = append(lines, OutputEntry{
				Text:  fmt.Sprintf("    %s %s  %s%%", padRight(item.Name, 25), skillBar(item.Level), formatLevel(item.Level)),
				Color: White,
			})
		}
	}
	return lines
}

// Education renders the fixed fields and the non-blank course list.
func Education(cfg content.TerminalConfig) []OutputEntry {
	e := cfg.Education
	lines := []OutputEntry{
		{Text: "  🎓 Education", Color: Amber},
		{Text: rule, Color: Dim},
		{Text: "  Degree   : " + e.Degree, Color: White},
		{Text: "  College  : " + e.College, Color: White},
		{Text: "  Year     : " + e.Year, Color: White},
		{Text: "  CGPA     : " + e.CGPA, Color: White},
		blank(),
		{Text: "  Key Courses:", Color: Amber},
	}

	n := len(lines)
	for _, c := range e.Courses {
		if strings.TrimSpace(c) == "" {
			continue
		}
		lines = append(lines, OutputEntry{Text: "    → " + c, Color: Green})
	}
	if len(lines) == n {
		lines = append(lines, OutputEntry{Text: "    (none listed)", Color: Dim})
	}
	return lines
}

// Blogs renders a numbered, link-wrapped list of posts.
func Blogs(cfg content.TerminalConfig) []OutputEntry {
	lines := []OutputEntry{
		{Text: "  📝 Blog Posts", Color: Amber},
		{Text: rule, Color: Dim},
	}
	if len(cfg.Blogs) == 0 {
		return append(lines, OutputEntry{Text: "  No blog posts yet. Stay tuned!", Color: Dim})
	}

	lines = append(lines, blank())
	for i, b := range cfg.Blogs {
		lines = append(lines, OutputEntry{
			Text:  fmt.Sprintf("  %d. %s", i+1, b.Title),
			Color: Cyan,
			Link:  b.URL,
		})
	}
	return append(lines, blank(), OutputEntry{Text: "  Click a title to read the full post →", Color: Dim})
}

// Contact renders whichever contact channels are configured.
func Contact(cfg content.TerminalConfig) []OutputEntry {
	p := cfg.Personal
	lines := []OutputEntry{
		{Text: "  📬 Let's Connect", Color: Amber},
		{Text: rule, Color: Dim},
	}
	if p.Email != "" {
		lines = append(lines, OutputEntry{Text: "  Email     : " + p.Email, Color: White, Link: "mailto:" + p.Email})
	}
	if p.LinkedIn != "" {
		lines = append(lines, OutputEntry{Text: "  LinkedIn  : " + p.LinkedIn, Color: White, Link: "https://" + p.LinkedIn})
	}
	if p.GitHub != "" {
		lines = append(lines, OutputEntry{Text: "  GitHub    : " + p.GitHub, Color: White, Link: "https://" + p.GitHub})
	}
	if p.Twitter != "" {
		lines = append(lines, OutputEntry{
			Text:  "  Twitter   : " + p.Twitter,
			Color: White,
			Link:  "https://twitter.com/" + strings.TrimPrefix(p.Twitter, "@"),
		})
	}
	return append(lines, blank(), OutputEntry{Text: "  💬 Opening contact form...", Color: Green})
}

// Sudo renders the configured easter egg, coloring lines that start with a
// milestone glyph amber and everything else green.
func Sudo(cfg content.TerminalConfig, opts Options) []OutputEntry {
	if len(cfg.SudoLines) == 0 {
		return []OutputEntry{
			{Text: "  📨 Great decision!", Color: Amber},
			blank(),
			{Text: "  Email  : " + cfg.Personal.Email, Color: Green},
		}
	}

	lines := make([]OutputEntry, 0, len(cfg.SudoLines))
	for _, l := range cfg.SudoLines {
		e := OutputEntry{Color: Green}
		if l != "" {
			e.Text = "  " + l
		}
		for _, g := range opts.MilestoneGlyphs {
			if g != "" && strings.HasPrefix(l, g) {
				e.Color = Amber
				break
			}
		}
		lines = append(lines, e)
	}
	return lines
}
