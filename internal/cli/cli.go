package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Shekhar0165/shekhar-portfolio/internal/config"
	"github.com/Shekhar0165/shekhar-portfolio/internal/content"
	"github.com/Shekhar0165/shekhar-portfolio/internal/core"
)

// Launcher starts the interactive terminal for an opened session.
type Launcher func(ctx context.Context, s *Session) error

// getConfigDir is swapped out in tests.
var getConfigDir = config.GetConfigDir

// Session is the state every command works from: settings, logger and the
// content endpoints they point at.
type Session struct {
	ConfigDir string
	Config    config.Config
	Logger    *slog.Logger

	client *content.Client
	closer io.Closer
}

// OpenSession resolves the config directory, loads the settings and starts
// file logging. A broken config file is reported on stderr and the defaults
// are used instead.
func OpenSession(stderr io.Writer) (*Session, error) {
	dir, err := getConfigDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(dir)
	if err != nil {
		fmt.Fprintf(stderr, "warning: %v (using defaults)\n", err)
	}

	logger, closer, err := core.SetupLogging(dir, cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "could not set up logging")
	}
	logger.Info("session started", "version", config.Version, "api", cfg.APIURL)

	return &Session{
		ConfigDir: dir,
		Config:    cfg,
		Logger:    logger,
		closer:    closer,
	}, nil
}

// Close releases the log file.
func (s *Session) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Client is the portfolio API client. It serves the contact form and the
// resume download even when content comes from a local file.
func (s *Session) Client() *content.Client {
	if s.client == nil {
		s.client = content.NewClient(s.Config.APIURL)
	}
	return s.client
}

// Source picks the offline content file when one is configured, otherwise
// the API.
func (s *Session) Source() content.Source {
	if s.Config.ContentFile != "" {
		return content.NewFileSource(config.ExpandHome(s.Config.ContentFile))
	}
	return s.Client()
}

// withSession opens a session around fn and closes it afterwards.
func withSession(cmd *cobra.Command, fn func(s *Session) error) error {
	s, err := OpenSession(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

// NewRootCmd builds the command tree. Without a subcommand the interactive
// terminal is launched.
func NewRootCmd(launch Launcher) *cobra.Command {
	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "A portfolio that lives in your terminal",
		Version:       config.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *Session) error {
				return launch(cmd.Context(), s)
			})
		},
	}
	root.AddCommand(newRunCmd(), newResumeCmd(), newConfigCmd(), newVersionCmd())
	return root
}

// Execute runs the command line and reports a failure on stderr.
func Execute(ctx context.Context, launch Launcher, args []string, stdout, stderr io.Writer) error {
	root := NewRootCmd(launch)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", config.AppName, config.Version)
		},
	}
}
