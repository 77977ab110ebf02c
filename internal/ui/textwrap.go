package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapWords fills lines up to width display cells. A word wider than a
// whole line is cut at the cell boundary.
func wrapWords(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	var lines []string
	var cur strings.Builder
	used := 0
	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		used = 0
	}

	for _, word := range strings.Fields(s) {
		w := runewidth.StringWidth(word)
		if used > 0 && used+1+w > width {
			flush()
		}
		if used > 0 {
			cur.WriteByte(' ')
			used++
		}
		for _, r := range word {
			rw := runewidth.RuneWidth(r)
			if used+rw > width && used > 0 {
				flush()
			}
			cur.WriteRune(r)
			used += rw
		}
	}
	if used > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

// wrapParagraphs wraps each line of text on its own; blank lines survive.
func wrapParagraphs(text string, width int) []string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		if para = strings.TrimSpace(para); para == "" {
			out = append(out, "")
			continue
		}
		out = append(out, wrapWords(para, width)...)
	}
	return out
}

// wrapIndented wraps an output line that is wider than width, repeating its
// leading indentation on continuation lines. Lines that fit are returned
// untouched so tables and art keep their spacing.
func wrapIndented(s string, width int) []string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return []string{s}
	}
	body := strings.TrimLeft(s, " ")
	indent := s[:len(s)-len(body)]
	avail := width - len(indent)
	if avail < 10 {
		return []string{s}
	}
	lines := wrapWords(body, avail)
	for i := range lines {
		lines[i] = indent + lines[i]
	}
	return lines
}
