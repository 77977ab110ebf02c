package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Shekhar0165/shekhar-portfolio/internal/command"
	"github.com/Shekhar0165/shekhar-portfolio/internal/content"
)

// The terminal is built on Bubble Tea, which follows the Elm Architecture
// (Model-View-Update). These shared types describe the pieces that move
// through that loop.

type overlayMode int

const (
	noOverlay overlayMode = iota
	projectOverlay
	contactOverlay
)

// Scheduler delivers fn's message after d. Production uses tea.Tick; tests
// substitute a recorder so reveals can be stepped deterministically.
type Scheduler func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Backend carries the side-effect endpoints of the portfolio API.
type Backend interface {
	SendMessage(ctx context.Context, msg content.Message) error
	DownloadResume(ctx context.Context, dir, name string) (string, error)
}

// HistoryBlock is one submitted command plus its revealed output. The
// welcome block has no command.
type HistoryBlock struct {
	Command    string
	HasCommand bool
	Output     []command.OutputEntry
}

type (
	configLoadedMsg struct {
		cfg content.TerminalConfig
		err error
	}
	projectsLoadedMsg struct {
		projects []content.Project
		err      error
	}
	bootTickMsg struct {
		gen int
	}
	bootSettledMsg struct {
		gen int
	}
	revealTickMsg struct {
		gen int
	}
	openProjectModalMsg struct {
		project content.Project
	}
	openContactModalMsg struct{}
	resumeDownloadMsg   struct{}
	resumeDoneMsg       struct {
		path string
		err  error
	}
	messageSentMsg struct {
		err error
	}
	statusClearMsg struct {
		id int
	}
)
