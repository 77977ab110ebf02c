package content

import (
	"context"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// contentFile is the on-disk layout of an offline content file:
//
//	[personal]
//	name = "Ada"
//	[[experience]]
//	...
//	[[projects]]
//	title = "termfolio"
type contentFile struct {
	TerminalConfig
	Projects []Project `toml:"projects"`
}

// FileSource serves content from a local TOML file instead of the backend.
// The file is re-read on every call so each session sees the current copy.
type FileSource struct {
	Path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) load() (contentFile, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return contentFile{}, errors.Wrapf(err, "read content file %s", s.Path)
	}
	var cf contentFile
	if _, err := toml.Decode(string(data), &cf); err != nil {
		return contentFile{}, errors.Wrapf(err, "decode content file %s", s.Path)
	}
	return cf, nil
}

// TerminalConfig returns the config half of the file.
func (s *FileSource) TerminalConfig(ctx context.Context) (TerminalConfig, error) {
	if err := ctx.Err(); err != nil {
		return TerminalConfig{}, err
	}
	cf, err := s.load()
	if err != nil {
		return TerminalConfig{}, err
	}
	return Normalize(cf.TerminalConfig), nil
}

// Projects returns the [[projects]] tables in file order.
func (s *FileSource) Projects(ctx context.Context) ([]Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cf, err := s.load()
	if err != nil {
		return nil, err
	}
	return NormalizeProjects(cf.Projects), nil
}
