package ui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Shekhar0165/shekhar-portfolio/internal/command"
	"github.com/Shekhar0165/shekhar-portfolio/internal/config"
	"github.com/Shekhar0165/shekhar-portfolio/internal/content"
	"github.com/Shekhar0165/shekhar-portfolio/internal/editor"
	"github.com/Shekhar0165/shekhar-portfolio/internal/reveal"
)

const statusDuration = 4 * time.Second

// QuickCommands are the one-keystroke commands listed in the footer,
// bound to alt+1 through alt+9.
var QuickCommands = []string{
	"help", "whoami", "experience", "projects", "skills",
	"education", "blogs", "contact", "resume",
}

// Options wires the model to its collaborators.
type Options struct {
	Context   context.Context
	Config    config.Config
	ConfigDir string
	Source    content.Source
	Backend   Backend
	Logger    *slog.Logger
	// Scheduler defaults to tea.Tick.
	Scheduler Scheduler
}

type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	Config    config.Config
	configDir string
	source    content.Source
	backend   Backend
	logger    *slog.Logger
	schedule  Scheduler

	snap content.Snapshot

	editor  *editor.Editor
	boot    reveal.Sequencer
	typer   reveal.Sequencer
	booting bool

	bootLines []command.OutputEntry
	history   []HistoryBlock
	// Index of the block the running reveal writes into
	revealBlock int
	// A sent contact message waiting for the reveal to finish
	sentNotice bool

	// Deferred side effects of the reveal in flight
	pendingProject *content.Project
	pendingContact bool

	termWidth  int
	termHeight int
	viewport   viewport.Model
	spinner    spinner.Model
	busy       int

	overlay overlayMode
	project content.Project
	contact contactForm

	statusMessage  string
	statusPositive bool
	nextTimerID    int
	statusTimerID  int

	Quitting bool
}

// NewModel builds the terminal in its booting state: the banner sequencer
// is armed and the editor refuses input until the welcome block is seeded.
func NewModel(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	schedule := opts.Scheduler
	if schedule == nil {
		schedule = tea.Tick
	}

	m := Model{
		ctx:       ctx,
		cancel:    cancel,
		configDir: opts.ConfigDir,
		source:    opts.Source,
		backend:   opts.Backend,
		logger:    logger,
		schedule:  schedule,
		snap:      content.DefaultSnapshot(),
		editor:    editor.New(),
		booting:   true,
		viewport:  viewport.New(80, 20),
	}
	m.applyConfig(opts.Config)

	m.editor.SetDisabled(true)
	m.boot.Start(reveal.BootLines())
	if m.source != nil {
		m.busy = 2
	}
	return m
}

func (m *Model) applyConfig(cfg config.Config) {
	config.ClampConfig(&cfg)
	cfg.Keys.InitControls()
	applyThemeStyles(cfg)
	m.Config = cfg

	if m.spinner.Spinner.Frames == nil {
		m.spinner = spinner.New()
		m.spinner.Spinner = spinner.Dot
	}
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(activeTheme.Amber))
	m.refreshViewport()
}

// Snapshot returns the content the dispatcher currently reads.
func (m Model) Snapshot() content.Snapshot { return m.snap }

// History returns the transcript blocks.
func (m Model) History() []HistoryBlock { return m.history }

// Booting reports whether the banner is still playing.
func (m Model) Booting() bool { return m.booting }

// InputDisabled reports whether the prompt currently refuses input.
func (m Model) InputDisabled() bool { return m.editor.Disabled() }

func (m Model) prompt() string {
	return Prompt(m.snap.Config.Personal.Handle)
}

// refreshViewport re-renders the transcript into the viewport and follows
// the bottom.
func (m *Model) refreshViewport() {
	var body string
	if m.booting {
		body = renderTranscript([]HistoryBlock{{Output: m.bootLines}}, "", m.viewport.Width)
	} else {
		body = renderTranscript(m.history, m.prompt(), m.viewport.Width)
		if body != "" {
			body += "\n"
		}
		body += m.renderPromptLine()
	}
	m.viewport.SetContent(body)
	m.viewport.GotoBottom()
}

func (m *Model) setStatus(msg string, positive bool) tea.Cmd {
	m.statusMessage = msg
	m.statusPositive = positive
	m.nextTimerID++
	id := m.nextTimerID
	m.statusTimerID = id
	return m.schedule(statusDuration, func(time.Time) tea.Msg {
		return statusClearMsg{id: id}
	})
}

// teardown stops every timer chain and cancels in-flight requests.
func (m *Model) teardown() {
	if m.typer.Active() {
		m.logger.Debug("reveal abandoned", "remaining", m.typer.Remaining())
	}
	m.boot.Stop()
	m.typer.Stop()
	m.cancel()
}
