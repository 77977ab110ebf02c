package config

import (
	"embed"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

//go:embed all:bootstrap
var bootstrapFS embed.FS

// SampleContentFile is the name the sample offline content is written as.
const SampleContentFile = "content.toml"

// WriteSampleContent copies the embedded sample content file into dstRoot
// and returns its path. An existing file is never overwritten.
func WriteSampleContent(dstRoot string) (string, error) {
	target := filepath.Join(dstRoot, SampleContentFile)
	if _, err := os.Stat(target); err == nil {
		return target, errors.Errorf("%s already exists", target)
	}

	b, err := bootstrapFS.ReadFile("bootstrap/" + SampleContentFile)
	if err != nil {
		return "", errors.Wrap(err, "sample content not embedded")
	}
	if err := os.MkdirAll(dstRoot, 0o755); err != nil {
		return "", errors.Wrap(err, "could not create config directory")
	}
	if err := os.WriteFile(target, b, 0o644); err != nil {
		return "", errors.Wrap(err, "could not write sample content")
	}
	slog.Info("bootstrap: wrote sample content", "path", target)
	return target, nil
}
