package core

import (
	"bytes"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRotateLogIfNeeded(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.log")

	// Missing file is a no-op
	RotateLogIfNeeded(path, 10)

	if err := os.WriteFile(path, []byte("short"), 0o644); err != nil {
		t.Fatal(err)
	}
	RotateLogIfNeeded(path, 10)
	if _, err := os.Stat(path + ".old"); !os.IsNotExist(err) {
		t.Fatal("small log should not rotate")
	}

	if err := os.WriteFile(path, []byte(strings.Repeat("x", 20)), 0o644); err != nil {
		t.Fatal(err)
	}
	RotateLogIfNeeded(path, 10)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("rotated log still present")
	}
	data, err := os.ReadFile(path + ".old")
	if err != nil || len(data) != 20 {
		t.Errorf("backup missing or wrong: %v, %d bytes", err, len(data))
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"chatty":  slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn")
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info line logged at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "session=") || !strings.Contains(out, "k=v") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestSetupLogging(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		log.SetOutput(os.Stderr)
	})

	dir := filepath.Join(t.TempDir(), "termfolio")
	logger, closer, err := SetupLogging(dir, "debug")
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("hello")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, LogFilename))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing entry: %q", data)
	}
}
