package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Shekhar0165/shekhar-portfolio/internal/command"
	"github.com/Shekhar0165/shekhar-portfolio/internal/config"
	"github.com/Shekhar0165/shekhar-portfolio/internal/content"
	"github.com/Shekhar0165/shekhar-portfolio/internal/native"
	"github.com/Shekhar0165/shekhar-portfolio/internal/reveal"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
		m.scheduleBootTick(),
	}
	if m.source != nil {
		cmds = append(cmds, fetchConfigCmd(m.ctx, m.source), fetchProjectsCmd(m.ctx, m.source))
	}
	if m.configDir != "" {
		cmds = append(cmds, WatchConfigCmd(m.configDir, "config.toml"))
	}
	return tea.Batch(cmds...)
}

// fetchConfigCmd and fetchProjectsCmd run independently; neither blocks the
// other or the prompt.
func fetchConfigCmd(ctx context.Context, src content.Source) tea.Cmd {
	return func() tea.Msg {
		cfg, err := src.TerminalConfig(ctx)
		return configLoadedMsg{cfg: cfg, err: err}
	}
}

func fetchProjectsCmd(ctx context.Context, src content.Source) tea.Cmd {
	return func() tea.Msg {
		projects, err := src.Projects(ctx)
		return projectsLoadedMsg{projects: projects, err: err}
	}
}

func (m Model) scheduleBootTick() tea.Cmd {
	gen := m.boot.Gen()
	return m.schedule(m.Config.Timing.BootInterval(), func(time.Time) tea.Msg {
		return bootTickMsg{gen: gen}
	})
}

func (m Model) scheduleRevealTick() tea.Cmd {
	gen := m.typer.Gen()
	return m.schedule(m.Config.Timing.TypewriterInterval(), func(time.Time) tea.Msg {
		return revealTickMsg{gen: gen}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.resize()
		return m, nil

	case ConfigChangedMsg:
		// Settings changed on disk; content is not refetched
		m.logger.Info("config file change detected", "path", msg.Path)
		cfg, err := config.Load(m.configDir)
		if err != nil {
			m.logger.Warn("could not reload config", "error", err)
			cmd := m.setStatus("Config reload failed: "+err.Error(), false)
			return m, tea.Batch(cmd, WatchConfigCmd(m.configDir, "config.toml"))
		}
		m.applyConfig(cfg)
		cmd := m.setStatus("Config reloaded", true)
		return m, tea.Batch(cmd, WatchConfigCmd(m.configDir, "config.toml"))

	case configLoadedMsg:
		m.busy = max(0, m.busy-1)
		if msg.err != nil {
			m.logger.Warn("could not fetch terminal config", "error", msg.err)
			return m, nil
		}
		m.snap.Config = content.Normalize(msg.cfg)
		m.refreshViewport()
		return m, nil

	case projectsLoadedMsg:
		m.busy = max(0, m.busy-1)
		if msg.err != nil {
			m.logger.Warn("could not fetch projects", "error", msg.err)
			return m, nil
		}
		m.snap.Projects = content.NormalizeProjects(msg.projects)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case bootTickMsg:
		entry, ok := m.boot.Advance(msg.gen)
		if !ok {
			return m, nil
		}
		m.bootLines = append(m.bootLines, entry)
		m.refreshViewport()
		if m.boot.State() == reveal.Done {
			gen := m.boot.Gen()
			return m, m.schedule(m.Config.Timing.BootSettleDelay(), func(time.Time) tea.Msg {
				return bootSettledMsg{gen: gen}
			})
		}
		return m, m.scheduleBootTick()

	case bootSettledMsg:
		if !m.booting || msg.gen != m.boot.Gen() {
			return m, nil
		}
		m.booting = false
		m.bootLines = nil
		m.history = []HistoryBlock{{Output: reveal.Welcome()}}
		m.editor.SetDisabled(false)
		m.refreshViewport()
		return m, nil

	case revealTickMsg:
		entry, ok := m.typer.Advance(msg.gen)
		if !ok || m.revealBlock >= len(m.history) {
			return m, nil
		}
		block := &m.history[m.revealBlock]
		block.Output = append(block.Output, entry)
		if m.typer.State() == reveal.Done {
			cmd := m.finishReveal()
			m.refreshViewport()
			return m, cmd
		}
		m.refreshViewport()
		return m, m.scheduleRevealTick()

	case openProjectModalMsg:
		if m.ctx.Err() != nil {
			return m, nil
		}
		m.overlay = projectOverlay
		m.project = msg.project
		return m, nil

	case openContactModalMsg:
		if m.ctx.Err() != nil {
			return m, nil
		}
		m.overlay = contactOverlay
		m.contact = newContactForm(m.modalWidth())
		cmd := m.contact.focusField(fieldName)
		return m, cmd

	case resumeDownloadMsg:
		cmd := m.downloadResumeCmd()
		return m, cmd

	case resumeDoneMsg:
		m.busy = max(0, m.busy-1)
		if msg.err != nil {
			m.logger.Warn("resume download failed", "error", msg.err)
			cmd := m.setStatus("Resume download failed", false)
			return m, cmd
		}
		m.logger.Info("resume downloaded", "path", msg.path)
		cmd := m.setStatus("Resume saved to "+msg.path, true)
		return m, cmd

	case messageSentMsg:
		m.busy = max(0, m.busy-1)
		m.contact.sending = false
		if msg.err != nil {
			m.logger.Warn("contact message failed", "error", msg.err)
			m.contact.err = sendFailedText
			return m, nil
		}
		m.overlay = noOverlay
		if m.typer.Active() {
			// The reveal owns the transcript until it finishes
			m.sentNotice = true
			return m, nil
		}
		m.appendSentNotice()
		m.refreshViewport()
		return m, nil

	case statusClearMsg:
		if msg.id == m.statusTimerID {
			m.statusMessage = ""
		}
		return m, nil

	case tea.KeyMsg:
		if IsQuit(m.Config.Keys, msg) && (m.overlay != contactOverlay || msg.String() == "ctrl+c") {
			m.Quitting = true
			m.teardown()
			return m, tea.Quit
		}
		switch m.overlay {
		case projectOverlay:
			return m.updateProjectOverlay(msg)
		case contactOverlay:
			return m.updateContactOverlay(msg)
		}
		return m.updatePrompt(msg)
	}

	if m.overlay == contactOverlay {
		cmd := m.contact.update(msg)
		return m, cmd
	}
	return m, nil
}

// updatePrompt handles keys while no modal is open.
func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.Config.Keys

	switch {
	case IsScrollUp(keys, msg):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(tea.KeyMsg{Type: tea.KeyPgUp})
		return m, cmd
	case IsScrollDown(keys, msg):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(tea.KeyMsg{Type: tea.KeyPgDown})
		return m, cmd
	}

	if ok, idx := IsQuickCommand(msg, "alt"); ok {
		if m.editor.Disabled() || idx >= len(QuickCommands) {
			return m, nil
		}
		return m.runCommand(QuickCommands[idx])
	}

	if m.editor.Disabled() {
		return m, nil
	}

	ed := m.editor
	switch {
	case msg.Type == tea.KeyEnter:
		raw, ok := ed.Submit()
		if !ok {
			return m, nil
		}
		return m.runCommand(raw)
	case IsComplete(keys, msg):
		ed.Complete()
	case IsHistoryPrev(keys, msg):
		ed.HistoryUp()
	case IsHistoryNext(keys, msg):
		ed.HistoryDown()
	case IsLineStart(keys, msg):
		ed.Home()
	case IsLineEnd(keys, msg):
		ed.End()
	case IsKillLine(keys, msg):
		ed.KillLine()
	case msg.Type == tea.KeyLeft:
		ed.Left()
	case msg.Type == tea.KeyRight:
		ed.Right()
	case msg.Type == tea.KeyBackspace:
		ed.Backspace()
	case msg.Type == tea.KeyDelete:
		ed.Delete()
	case msg.Type == tea.KeySpace:
		ed.Insert(" ")
	case msg.Type == tea.KeyRunes && !msg.Alt:
		ed.Insert(string(msg.Runes))
	default:
		return m, nil
	}
	m.refreshViewport()
	return m, nil
}

// runCommand dispatches raw and starts revealing its output. The editor
// stays disabled until the reveal completes.
func (m Model) runCommand(raw string) (tea.Model, tea.Cmd) {
	raw = strings.TrimSpace(raw)
	res := command.Dispatch(raw, m.snap, m.Config.CommandOptions())
	m.logger.Debug("command", "input", raw, "lines", len(res.Output))

	var cmds []tea.Cmd
	if res.DownloadResume {
		cmds = append(cmds, m.schedule(m.Config.Timing.ResumeDownloadDelay(), func(time.Time) tea.Msg {
			return resumeDownloadMsg{}
		}))
	}

	if res.ClearHistory {
		m.history = nil
		m.refreshViewport()
		return m, tea.Batch(cmds...)
	}

	if !m.typer.Start(res.Output) {
		// The editor is disabled while revealing, so this is unreachable
		// from the keyboard.
		return m, tea.Batch(cmds...)
	}
	m.history = append(m.history, HistoryBlock{Command: raw, HasCommand: true, Output: []command.OutputEntry{}})
	m.revealBlock = len(m.history) - 1
	m.pendingProject = res.OpenProjectModal
	m.pendingContact = res.OpenContactModal
	m.editor.SetDisabled(true)

	if m.typer.State() == reveal.Done {
		cmds = append(cmds, m.finishReveal())
	} else {
		cmds = append(cmds, m.scheduleRevealTick())
	}
	m.refreshViewport()
	return m, tea.Batch(cmds...)
}

// finishReveal re-enables the prompt, posts a held "message sent" notice
// and schedules the deferred modals.
func (m *Model) finishReveal() tea.Cmd {
	m.editor.SetDisabled(false)
	if m.sentNotice {
		m.sentNotice = false
		m.appendSentNotice()
	}

	var cmds []tea.Cmd
	if p := m.pendingProject; p != nil {
		project := *p
		cmds = append(cmds, m.schedule(m.Config.Timing.ProjectModalDelay(), func(time.Time) tea.Msg {
			return openProjectModalMsg{project: project}
		}))
	}
	if m.pendingContact {
		cmds = append(cmds, m.schedule(m.Config.Timing.ContactModalDelay(), func(time.Time) tea.Msg {
			return openContactModalMsg{}
		}))
	}
	m.pendingProject = nil
	m.pendingContact = false
	return tea.Batch(cmds...)
}

func (m *Model) appendSentNotice() {
	m.history = append(m.history, HistoryBlock{Output: []command.OutputEntry{
		{Text: "  ✅ Message sent! I'll get back to you soon.", Color: command.Green},
	}})
}

func (m *Model) downloadResumeCmd() tea.Cmd {
	if m.ctx.Err() != nil {
		return nil
	}
	if m.backend == nil {
		return m.setStatus("Resume download unavailable offline", false)
	}
	m.busy++
	ctx, backend := m.ctx, m.backend
	dir, name := m.Config.ResolvedDownloadDir(), m.Config.ResumeFilename
	return func() tea.Msg {
		path, err := backend.DownloadResume(ctx, dir, name)
		return resumeDoneMsg{path: path, err: err}
	}
}

// updateProjectOverlay handles the project preview keys.
func (m Model) updateProjectOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.project
	switch msg.String() {
	case "g":
		cmd := m.openLink(p.GithubURL)
		return m, cmd
	case "l":
		cmd := m.openLink(p.LiveURL)
		return m, cmd
	case "i":
		cmd := m.openLink(p.ImageURL)
		return m, cmd
	case "c", "y":
		url := firstNonEmpty(p.LiveURL, p.GithubURL, p.ImageURL)
		if url == "" {
			return m, nil
		}
		if err := native.CopyToClipboard(url); err != nil {
			m.logger.Warn("copy failed", "error", err)
			cmd := m.setStatus("Copy failed", false)
			return m, cmd
		}
		cmd := m.setStatus("Copied "+url, true)
		return m, cmd
	case "q", "enter":
		m.overlay = noOverlay
		return m, nil
	}
	if IsCloseModal(m.Config.Keys, msg) {
		m.overlay = noOverlay
	}
	return m, nil
}

func (m *Model) openLink(url string) tea.Cmd {
	if url == "" {
		return nil
	}
	if err := native.OpenURL(url); err != nil {
		m.logger.Warn("could not open link", "url", url, "error", err)
		return m.setStatus("Could not open "+url, false)
	}
	return m.setStatus("Opened "+url, true)
}

// updateContactOverlay handles the send-message form.
func (m Model) updateContactOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &m.contact
	switch {
	case IsCloseModal(m.Config.Keys, msg):
		m.overlay = noOverlay
		return m, nil
	case f.sending:
		return m, nil
	case msg.String() == "ctrl+s":
		return m.submitContact()
	}

	var cmd tea.Cmd
	switch {
	case msg.Type == tea.KeyTab || msg.Type == tea.KeyDown && f.focus != fieldMessage:
		cmd = f.moveFocus(1)
	case msg.Type == tea.KeyShiftTab || msg.Type == tea.KeyUp && f.focus != fieldMessage:
		cmd = f.moveFocus(-1)
	case msg.Type == tea.KeyEnter && f.focus != fieldMessage:
		cmd = f.moveFocus(1)
	default:
		cmd = f.update(msg)
	}
	return m, cmd
}

func (m Model) submitContact() (tea.Model, tea.Cmd) {
	f := &m.contact
	value := f.value()
	if problem := validateMessage(value); problem != "" {
		f.err = problem
		return m, nil
	}
	if m.backend == nil {
		f.err = sendFailedText
		return m, nil
	}
	f.err = ""
	f.sending = true
	m.busy++
	ctx, backend := m.ctx, m.backend
	return m, func() tea.Msg {
		return messageSentMsg{err: backend.SendMessage(ctx, value)}
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
