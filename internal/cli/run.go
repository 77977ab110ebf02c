package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Shekhar0165/shekhar-portfolio/internal/command"
	"github.com/Shekhar0165/shekhar-portfolio/internal/config"
	"github.com/Shekhar0165/shekhar-portfolio/internal/content"
)

var isTerminal = term.IsTerminal

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <command...>",
		Short: "Run one portfolio command and print its output",
		Example: `  termfolio run whoami
  termfolio run project 2
  termfolio run sudo hire me`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *Session) error {
				return runOnce(cmd.Context(), cmd.OutOrStdout(), s, strings.Join(args, " "))
			})
		},
	}
}

// runOnce fetches a snapshot, dispatches raw against it and prints the
// result. Modals have no place here; a resume request downloads at once.
func runOnce(ctx context.Context, w io.Writer, s *Session, raw string) error {
	snap := content.FetchSnapshot(ctx, s.Source(), s.Logger)
	res := command.Dispatch(raw, snap, s.Config.CommandOptions())
	s.Logger.Debug("one-shot command", "input", raw, "lines", len(res.Output))

	printEntries(w, res.Output, colorEnabled(w), config.GetTheme(s.Config.Theme))

	if res.DownloadResume {
		return downloadResume(ctx, w, s)
	}
	return nil
}

func newResumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Download the resume",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *Session) error {
				return downloadResume(cmd.Context(), cmd.OutOrStdout(), s)
			})
		},
	}
}

func downloadResume(ctx context.Context, w io.Writer, s *Session) error {
	client := s.Client()
	path, err := client.DownloadResume(ctx, s.Config.ResolvedDownloadDir(), s.Config.ResumeFilename)
	if err != nil {
		s.Logger.Warn("resume download failed", "api", client.BaseURL(), "error", err)
		return errors.Wrap(err, "resume download failed")
	}
	s.Logger.Info("resume downloaded", "path", path)
	fmt.Fprintf(w, "Resume saved to %s\n", path)
	return nil
}

// colorEnabled reports whether w is a terminal worth styling for.
func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(int(f.Fd()))
}

// printEntries writes output lines as plain text, one per line. Multi-link
// lines spell out their URLs since a pipe cannot follow an anchor.
func printEntries(w io.Writer, entries []command.OutputEntry, color bool, theme config.ThemeConfig) {
	for _, e := range entries {
		text := e.Text
		if len(e.Links) > 0 {
			parts := make([]string, len(e.Links))
			for i, l := range e.Links {
				parts[i] = l.Label + " " + l.URL
			}
			text = "  " + strings.Join(parts, "   ")
		}
		if color && text != "" {
			text = lipgloss.NewStyle().
				Foreground(lipgloss.Color(paletteColor(theme, e.EffectiveColor()))).
				Render(text)
		}
		fmt.Fprintln(w, text)
	}
}

func paletteColor(theme config.ThemeConfig, c command.Color) string {
	switch c {
	case command.Green:
		return theme.Green
	case command.Red:
		return theme.Red
	case command.Dim:
		return theme.Dim
	case command.White:
		return theme.White
	case command.Cyan:
		return theme.Cyan
	default:
		return theme.Amber
	}
}
