package command

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Shekhar0165/shekhar-portfolio/internal/content"
)

var projectPattern = regexp.MustCompile(`^project\s+(\d+)$`)

// Help is the static command table.
func Help() []OutputEntry {
	return []OutputEntry{
		{Text: "  ┌─────────────────────────────────────────────┐", Color: Dim},
		{Text: "  │  Available Commands                         │", Color: Amber},
		{Text: "  ├──────────────┬──────────────────────────────┤", Color: Dim},
		{Text: "  │  whoami      │  About me                    │", Color: White},
		{Text: "  │  experience  │  Work history                │", Color: White},
		{Text: "  │  projects    │  My projects                 │", Color: White},
		{Text: "  │  project [n] │  Project details             │", Color: White},
		{Text: "  │  skills      │  Tech stack with levels      │", Color: White},
		{Text: "  │  education   │  College info                │", Color: White},
		{Text: "  │  blogs       │  Read my blog posts          │", Color: White},
		{Text: "  │  contact     │  Get in touch                │", Color: White},
		{Text: "  │  resume      │  Download my resume          │", Color: White},
		{Text: "  │  all         │  Show everything at once     │", Color: White},
		{Text: "  │  clear       │  Clear terminal              │", Color: White},
		{Text: "  │  sudo hire me│  ( ͡° ͜ʖ ͡°)                 │", Color: White},
		{Text: "  └──────────────┴──────────────────────────────┘", Color: Dim},
	}
}

// Resume returns the status lines of the resume command. The download
// itself is signalled through Result.DownloadResume.
func Resume() []OutputEntry {
	return []OutputEntry{
		{Text: "  Fetching resume from server...", Color: Amber},
		{Text: "  ✓ Resume found", Color: Green},
		{Text: "  ✓ Download starting...", Color: Green},
	}
}

// All concatenates every content section with a divider between them.
func All(snap content.Snapshot) []OutputEntry {
	sections := [][]OutputEntry{
		Whoami(snap.Config),
		Experience(snap.Config),
		Projects(snap.Projects),
		Skills(snap.Config),
		Education(snap.Config),
		Blogs(snap.Config),
	}
	divider := []OutputEntry{
		{Text: "", Color: Dim},
		{Text: "  ═══════════════════════════════════════", Color: Dim},
		{Text: "", Color: Dim},
	}

	var out []OutputEntry
	for i, s := range sections {
		if i > 0 {
			out = append(out, divider...)
		}
		out = append(out, s...)
	}
	return out
}

// NotFound is the line for input that matches no command.
func NotFound(raw string) []OutputEntry {
	return []OutputEntry{{Text: "  bash: " + strings.TrimSpace(raw) + ": command not found", Color: Red}}
}

// Normalize is the match key for raw input: trimmed and lowercased.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Dispatch resolves raw input against the command set and runs the matching
// formatter. It holds no state: identical inputs give identical results.
func Dispatch(raw string, snap content.Snapshot, opts Options) Result {
	switch input := Normalize(raw); input {
	case "clear":
		return Result{Output: []OutputEntry{}, ClearHistory: true}
	case "help":
		return Result{Output: Help()}
	case "whoami":
		return Result{Output: Whoami(snap.Config)}
	case "experience":
		return Result{Output: Experience(snap.Config)}
	case "projects":
		return Result{Output: Projects(snap.Projects)}
	case "skills":
		return Result{Output: Skills(snap.Config)}
	case "education":
		return Result{Output: Education(snap.Config)}
	case "blogs":
		return Result{Output: Blogs(snap.Config)}
	case "contact":
		return Result{Output: Contact(snap.Config), OpenContactModal: true}
	case "resume":
		return Result{Output: Resume(), DownloadResume: true}
	case "all":
		return Result{Output: All(snap)}
	case "sudo hire me":
		return Result{Output: Sudo(snap.Config, opts)}
	default:
		if m := projectPattern.FindStringSubmatch(input); m != nil {
			return dispatchProject(m[1], snap.Projects)
		}
		return Result{Output: NotFound(raw)}
	}
}

func dispatchProject(numeral string, projects []content.Project) Result {
	n, err := strconv.Atoi(numeral)
	if err != nil {
		// Too many digits for an int is simply out of range.
		return Result{Output: ProjectNotFound(numeral)}
	}
	lines, ok := ProjectDetail(n, projects)
	if !ok {
		return Result{Output: ProjectNotFound(numeral)}
	}
	res := Result{Output: lines}
	if p := projects[n-1]; p.ImageURL != "" {
		res.OpenProjectModal = &p
	}
	return res
}

// Complete returns the first command, in declared order, that extends
// partial case-insensitively. ok is false for empty input or no match.
func Complete(partial string) (string, bool) {
	p := strings.ToLower(partial)
	if p == "" {
		return "", false
	}
	for _, name := range CommandNames {
		if strings.HasPrefix(name, p) && name != p {
			return name, true
		}
	}
	return "", false
}
