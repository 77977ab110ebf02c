package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/Shekhar0165/shekhar-portfolio/internal/command"
	"github.com/Shekhar0165/shekhar-portfolio/internal/content"
)

func TestPrompt(t *testing.T) {
	tests := map[string]string{
		"ada": "guest@ada:~$ ",
		"":    "guest@portfolio:~$ ",
		"   ": "guest@portfolio:~$ ",
	}
	for handle, want := range tests {
		if got := Prompt(handle); got != want {
			t.Errorf("Prompt(%q) = %q, want %q", handle, got, want)
		}
	}
}

func TestHyperlink(t *testing.T) {
	if got := hyperlink("", "plain"); got != "plain" {
		t.Errorf("empty url should return text, got %q", got)
	}
	got := hyperlink("https://ada.dev", "site")
	if !strings.Contains(got, "https://ada.dev") || ansi.Strip(got) != "site" {
		t.Errorf("unexpected anchor %q", got)
	}
}

func TestRenderEntry(t *testing.T) {
	multi := command.OutputEntry{Links: []command.LinkInfo{
		{Label: "[ GitHub ]", URL: "https://github.com/ada"},
		{Label: "[ Live ]", URL: "https://ada.dev"},
	}}
	got := renderEntry(multi, 80)
	if plain := ansi.Strip(got); plain != "  [ GitHub ]   [ Live ]" {
		t.Errorf("multi-link line = %q", plain)
	}
	if !strings.Contains(got, "https://github.com/ada") {
		t.Error("multi-link line lost its url")
	}

	if got := renderEntry(command.OutputEntry{}, 80); got != "" {
		t.Errorf("blank entry rendered %q", got)
	}

	long := command.OutputEntry{Text: "    " + strings.Repeat("word ", 20)}
	lines := strings.Split(ansi.Strip(renderEntry(long, 30)), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %d line(s)", len(lines))
	}
	for _, l := range lines {
		if !strings.HasPrefix(l, "    ") {
			t.Errorf("continuation lost indent: %q", l)
		}
	}
}

func TestWrapIndented_KeepsShortLines(t *testing.T) {
	s := "  │  whoami      │  About me  │"
	if got := wrapIndented(s, 80); len(got) != 1 || got[0] != s {
		t.Errorf("short line changed: %q", got)
	}
}

func TestWrapWords(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"the quick brown fox", 9, "the quick|brown fox"},
		{"abcdef", 4, "abcd|ef"},
		{"go 世界世界", 5, "go|世界|世界"},
		{"", 10, ""},
	}
	for _, tt := range tests {
		if got := strings.Join(wrapWords(tt.in, tt.width), "|"); got != tt.want {
			t.Errorf("wrapWords(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}

	got := wrapParagraphs("one two\n\n  three  ", 7)
	if strings.Join(got, "|") != "one two||three" {
		t.Errorf("wrapParagraphs = %q", got)
	}
}

func TestRenderTranscript(t *testing.T) {
	blocks := []HistoryBlock{
		{Output: []command.OutputEntry{{Text: "  welcome"}}},
		{Command: "whoami", HasCommand: true, Output: []command.OutputEntry{{Text: "  Name : Ada"}}},
	}
	got := ansi.Strip(renderTranscript(blocks, Prompt("ada"), 80))
	want := "  welcome\nguest@ada:~$ whoami\n  Name : Ada"
	if got != want {
		t.Errorf("transcript =\n%s\nwant\n%s", got, want)
	}
}

func TestCalculateLayout(t *testing.T) {
	tests := []struct {
		w, h   int
		footer bool
		vw, vh int
	}{
		{100, 40, true, 98, 36},
		{100, 11, false, 98, 9},
		{2, 1, false, 1, 1},
	}
	for _, tt := range tests {
		l := CalculateLayout(tt.w, tt.h)
		if l.ShowFooter != tt.footer || l.ViewportWidth != tt.vw || l.ViewportHeight != tt.vh {
			t.Errorf("CalculateLayout(%d,%d) = %+v", tt.w, tt.h, l)
		}
	}
}

func TestIsQuickCommand(t *testing.T) {
	tests := []struct {
		msg tea.KeyMsg
		ok  bool
		idx int
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1"), Alt: true}, true, 0},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("9"), Alt: true}, true, 8},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("0"), Alt: true}, false, -1},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")}, false, -1},
	}
	for _, tt := range tests {
		ok, idx := IsQuickCommand(tt.msg, "alt")
		if ok != tt.ok || idx != tt.idx {
			t.Errorf("IsQuickCommand(%q) = %v,%d", tt.msg.String(), ok, idx)
		}
	}
}

func TestValidateMessage(t *testing.T) {
	ok := content.Message{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello"}
	tests := []struct {
		name   string
		mutate func(*content.Message)
		want   string
	}{
		{"valid", func(*content.Message) {}, ""},
		{"no name", func(m *content.Message) { m.Name = "" }, "Name is required."},
		{"no email", func(m *content.Message) { m.Email = "" }, "Email is required."},
		{"no subject", func(m *content.Message) { m.Subject = "" }, "Subject is required."},
		{"no message", func(m *content.Message) { m.Message = "" }, "Message is required."},
		{"bad email", func(m *content.Message) { m.Email = "not-an-email" }, "Email address looks invalid."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ok
			tt.mutate(&msg)
			if got := validateMessage(msg); got != tt.want {
				t.Errorf("validateMessage = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestView_States(t *testing.T) {
	m, clk := newTestModel(t, nil)

	small := step(t, m, tea.WindowSizeMsg{Width: 20, Height: 5})
	if !strings.Contains(ansi.Strip(small.View()), "Terminal too small") {
		t.Error("expected size warning")
	}

	m = finishBoot(t, m, clk)
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "guest@portfolio:~$") {
		t.Error("prompt missing from view")
	}
	if !strings.Contains(view, "alt+1:help") {
		t.Error("quick command bar missing from footer")
	}

	m = step(t, m, openProjectModalMsg{project: content.Project{
		Title:        "Engine",
		Description:  "A mechanical computer.",
		Technologies: []string{"brass"},
		Highlights:   []string{"Loops"},
		GithubURL:    "https://github.com/ada/engine",
		ImageURL:     "https://img.example/e.png",
	}})
	view = ansi.Strip(m.View())
	for _, want := range []string{"📦 Engine", "Key Highlights:", "→ Loops", "brass", "g: GitHub", "i: Image"} {
		if !strings.Contains(view, want) {
			t.Errorf("project modal missing %q", want)
		}
	}
	if strings.Contains(view, "l: Live Demo") {
		t.Error("live key shown without a live url")
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = step(t, m, openContactModalMsg{})
	m.contact.err = "Name is required."
	view = ansi.Strip(m.View())
	for _, want := range []string{"Send Message", "Name *", "Message *", "✖ Name is required."} {
		if !strings.Contains(view, want) {
			t.Errorf("contact modal missing %q", want)
		}
	}
}
