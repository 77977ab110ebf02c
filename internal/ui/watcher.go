package ui

import (
	"log/slog"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// ConfigChangedMsg signals that the settings file has changed.
type ConfigChangedMsg struct {
	Path string
}

// WatchConfigCmd returns a command that blocks until config.toml in
// configDir is written or created. Update restarts it after each change.
func WatchConfigCmd(configDir, filename string) tea.Cmd {
	return func() tea.Msg {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			slog.Warn("failed to create file watcher", "error", err)
			return nil
		}
		defer watcher.Close()

		// Watch the directory, editors often replace the file on save
		if err := watcher.Add(configDir); err != nil {
			slog.Warn("failed to watch config directory", "dir", configDir, "error", err)
			return nil
		}

		slog.Debug("watching for config changes", "dir", configDir)

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}

				// Only care about Write and Create events
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if filepath.Base(event.Name) != filename {
					continue
				}

				slog.Info("detected config change", "path", event.Name)
				return ConfigChangedMsg{Path: event.Name}

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				slog.Warn("file watcher error", "error", err)
			}
		}
	}
}
