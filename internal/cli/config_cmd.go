package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Shekhar0165/shekhar-portfolio/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or reset the settings file",
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the settings file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := getConfigDir()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), config.ConfigPath(dir))
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := getConfigDir()
			if err != nil {
				return err
			}
			cfg, err := config.Load(dir)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v (showing defaults)\n", err)
			}
			if err := toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg); err != nil {
				return errors.Wrap(err, "could not encode config")
			}
			return nil
		},
	}

	var yes bool
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Back up the settings file and restore the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := getConfigDir()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !yes && !confirmAction(cmd.InOrStdin(), out, "⚠️  This will reset "+config.ConfigPath(dir)+" to the defaults. Proceed?") {
				fmt.Fprintln(out, "Reset cancelled")
				return nil
			}
			backup, err := ResetConfig(dir)
			if err != nil {
				return err
			}
			if backup != "" {
				fmt.Fprintf(out, "✓ Previous settings saved to %s\n", backup)
			}
			fmt.Fprintln(out, "✓ Defaults restored")
			return nil
		},
	}
	resetCmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	var use bool
	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a sample offline content file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := getConfigDir()
			if err != nil {
				return err
			}
			path, err := config.WriteSampleContent(dir)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Sample content written to %s\n", path)
			if !use {
				fmt.Fprintf(out, "  Set content_file = %q in %s to use it\n", path, config.ConfigPath(dir))
				return nil
			}
			if err := config.SetContentFile(dir, path); err != nil {
				return err
			}
			fmt.Fprintln(out, "✓ content_file updated")
			return nil
		},
	}
	sampleCmd.Flags().BoolVar(&use, "use", false, "point content_file at the sample")

	cmd.AddCommand(pathCmd, showCmd, resetCmd, sampleCmd)
	return cmd
}

// ResetConfig moves an existing config.toml aside as config.toml.bak and
// writes a fresh default one. It returns the backup path, or "" when there
// was no file to keep.
func ResetConfig(configDir string) (string, error) {
	path := config.ConfigPath(configDir)
	backup := ""
	if _, err := os.Stat(path); err == nil {
		backup = path + ".bak"
		if err := os.Rename(path, backup); err != nil {
			return "", errors.Wrap(err, "could not back up config")
		}
	} else if !os.IsNotExist(err) {
		return "", errors.Wrapf(err, "could not stat %s", path)
	}
	if err := config.Write(configDir, config.DefaultConfig()); err != nil {
		return backup, err
	}
	return backup, nil
}

// confirmAction prompts on out and reads a yes/no answer from in.
func confirmAction(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
