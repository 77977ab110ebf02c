package core

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MaxLogBytes is the size at which the log file is rotated.
const MaxLogBytes = 1024 * 1024

// LogFilename is the log file inside the config directory.
const LogFilename = "termfolio.log"

// RotateLogIfNeeded checks if the log file at path exceeds maxBytes.
// If it does, it renames the file to path + ".old" (overwriting any previous backup).
func RotateLogIfNeeded(path string, maxBytes int64) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return
	}
	if err != nil {
		// If we can't stat, we can't check size. Just return.
		return
	}

	if info.Size() > maxBytes {
		oldPath := path + ".old"
		_ = os.Remove(oldPath)

		if err := os.Rename(path, oldPath); err != nil {
			log.Printf("Failed to rotate log %s: %v", path, err)
		}
	}
}

// ParseLevel maps a log_level setting to a slog level. Unknown values are info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a text logger on w tagged with a fresh session id.
func NewLogger(w io.Writer, level string) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slog.New(h).With("session", uuid.NewString())
}

// SetupLogging opens (rotating first) the log file in configDir and installs
// the session logger as the slog default, which also captures the stdlib
// log package. The caller closes the returned file on exit.
func SetupLogging(configDir, level string) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, nil, errors.Wrap(err, "could not create config dir")
	}
	logPath := filepath.Join(configDir, LogFilename)
	RotateLogIfNeeded(logPath, MaxLogBytes)

	f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not open log file")
	}

	logger := NewLogger(f, level)
	slog.SetDefault(logger)
	return logger, f, nil
}
