package command

import (
	"fmt"
	"strings"

	"github.com/Shekhar0165/shekhar-portfolio/internal/content"
)

const (
	colNum        = 2
	minColName    = 4
	minColDesc    = 11
	descFallbackN = 40
)

// summary is the table description: ShortDesc, or the first 40 runes of
// Description when no short description is set.
func summary(p content.Project) string {
	if p.ShortDesc != "" {
		return p.ShortDesc
	}
	r := []rune(p.Description)
	if len(r) > descFallbackN {
		r = r[:descFallbackN]
	}
	return string(r)
}

// Projects renders the project table sized to the widest title and summary.
func Projects(projects []content.Project) []OutputEntry {
	if len(projects) == 0 {
		return []OutputEntry{{Text: "  No projects found.", Color: Dim}}
	}

	colName, colDesc := minColName, minColDesc
	for _, p := range projects {
		colName = max(colName, width(p.Title))
		colDesc = max(colDesc, width(summary(p)))
	}

	hr := func(l, m, r string) string {
		return "  " + l + strings.Repeat("─", colNum+2) +
			m + strings.Repeat("─", colName+2) +
			m + strings.Repeat("─", colDesc+2) + r
	}
	row := func(num, name, desc string) string {
		return fmt.Sprintf("  │ %s │ %s │ %s │", padRight(num, colNum), padRight(name, colName), padRight(desc, colDesc))
	}

	lines := []OutputEntry{
		{Text: hr("┌", "┬", "┐"), Color: Dim},
		{Text: row("#", "Name", "Description"), Color: Dim},
		{Text: hr("├", "┼", "┤"), Color: Dim},
	}
	for i, p := range projects {
		lines = append(lines, OutputEntry{Text: row(fmt.Sprint(i+1), p.Title, summary(p)), Color: White})
	}
	return append(lines,
		OutputEntry{Text: hr("└", "┴", "┘"), Color: Dim},
		blank(),
		OutputEntry{Text: "  Type 'project 1' for details", Color: Dim},
	)
}

// ProjectNotFound is the single red line for an out-of-range index. numeral
// is echoed exactly as the user typed it.
func ProjectNotFound(numeral string) []OutputEntry {
	return []OutputEntry{{
		Text:  fmt.Sprintf("  Error: Project #%s not found. Use 'projects' to see the list.", numeral),
		Color: Red,
	}}
}

// ProjectDetail renders project n (1-based). ok is false when n is out of
// range, in which case the caller renders ProjectNotFound.
func ProjectDetail(n int, projects []content.Project) (lines []OutputEntry, ok bool) {
	if n < 1 || n > len(projects) {
		return nil, false
	}
	p := projects[n-1]

	lines = []OutputEntry{
		{Text: "  📦 " + p.Title, Color: Amber},
		{Text: rule, Color: Dim},
	}
	if p.Stack != "" {
		lines = append(lines, OutputEntry{Text: "  Stack     : " + p.Stack, Color: White})
	}
	if p.GithubURL != "" {
		lines = append(lines, OutputEntry{Text: "  GitHub    : " + p.GithubURL, Color: White, Link: p.GithubURL})
	}
	if p.LiveURL != "" {
		lines = append(lines, OutputEntry{Text: "  Live      : " + p.LiveURL, Color: White, Link: p.LiveURL})
	}

	lines = append(lines, blank(), OutputEntry{Text: "  What I built:", Color: Amber})
	for _, l := range strings.Split(p.Description, "\n") {
		lines = append(lines, OutputEntry{Text: "  " + l, Color: White})
	}

	if len(p.Highlights) > 0 {
		lines = append(lines, blank(), OutputEntry{Text: "  Key highlights:", Color: Amber})
		for _, h := range p.Highlights {
			lines = append(lines, OutputEntry{Text: "  → " + h, Color: Green})
		}
	}

	lines = append(lines, blank())
	if p.ImageURL != "" {
		lines = append(lines, OutputEntry{Text: "  📷 Image available — opening preview...", Color: Cyan})
	}

	var links []LinkInfo
	if p.GithubURL != "" {
		links = append(links, LinkInfo{Label: "[ GitHub ]", URL: p.GithubURL})
	}
	if p.LiveURL != "" {
		links = append(links, LinkInfo{Label: "[ Live Demo ]", URL: p.LiveURL})
	}
	if len(links) > 0 {
		labels := make([]string, len(links))
		for i, l := range links {
			labels[i] = l.Label
		}
		lines = append(lines, OutputEntry{
			Text:  "  " + strings.Join(labels, "   "),
			Color: Cyan,
			Links: links,
		})
	}
	return lines, true
}
