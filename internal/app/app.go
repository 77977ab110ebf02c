package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/Shekhar0165/shekhar-portfolio/internal/cli"
	"github.com/Shekhar0165/shekhar-portfolio/internal/ui"
)

// Run parses the command line. Subcommands print and exit; without one the
// interactive terminal takes over the screen until the visitor quits.
func Run() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx, launchTUI, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// launchTUI runs the Bubble Tea program for one session.
func launchTUI(ctx context.Context, s *cli.Session) error {
	model := ui.NewModel(ui.Options{
		Context:   ctx,
		Config:    s.Config,
		ConfigDir: s.ConfigDir,
		Source:    s.Source(),
		Backend:   s.Client(),
		Logger:    s.Logger,
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	result, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			s.Logger.Info("session interrupted")
			return nil
		}
		return errors.Wrap(err, "terminal exited")
	}

	if state, ok := result.(ui.Model); ok && state.Quitting {
		s.Logger.Info("session ended", "commands", len(state.History()))
	}
	return nil
}
