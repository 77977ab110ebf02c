package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/Shekhar0165/shekhar-portfolio/internal/command"
)

const (
	configFilename = "config.toml"
	// APIURLEnv overrides api_url from the environment.
	APIURLEnv = "TERMFOLIO_API_URL"
)

// Themes lists the built-in theme names.
var Themes = []string{"classic", "nord", "dracula"}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	cfg := Config{
		APIURL:         "http://localhost:3000",
		Theme:          "classic",
		LogLevel:       "info",
		DownloadDir:    "~/Downloads",
		ResumeFilename: "resume.pdf",
		Timing: Timing{
			Typewriter:   20,
			Boot:         120,
			BootSettle:   400,
			ProjectModal: 300,
			ContactModal: 400,
			ResumeDelay:  1500,
		},
		Sudo: SudoConfig{
			MilestoneGlyphs: append([]string(nil), command.DefaultMilestoneGlyphs...),
		},
		Keys: InputConfig{
			Complete:   "tab",
			ScrollUp:   "pgup",
			ScrollDown: "pgdown",
			CloseModal: "esc",
			Quit:       "ctrl+d",
		},
	}
	cfg.Keys.InitControls()
	return cfg
}

// ApplyDefaults fills every missing or out-of-range field from DefaultConfig.
func (c *Config) ApplyDefaults() {
	d := DefaultConfig()
	setIfBlank := func(v *string, def string) {
		if strings.TrimSpace(*v) == "" {
			*v = def
		}
	}
	setIfBlank(&c.APIURL, d.APIURL)
	setIfBlank(&c.Theme, d.Theme)
	setIfBlank(&c.LogLevel, d.LogLevel)
	setIfBlank(&c.DownloadDir, d.DownloadDir)
	setIfBlank(&c.ResumeFilename, d.ResumeFilename)

	setIfBlank(&c.Keys.Complete, d.Keys.Complete)
	setIfBlank(&c.Keys.ScrollUp, d.Keys.ScrollUp)
	setIfBlank(&c.Keys.ScrollDown, d.Keys.ScrollDown)
	setIfBlank(&c.Keys.CloseModal, d.Keys.CloseModal)
	setIfBlank(&c.Keys.Quit, d.Keys.Quit)

	if c.Sudo.MilestoneGlyphs == nil {
		c.Sudo.MilestoneGlyphs = d.Sudo.MilestoneGlyphs
	}
	ClampConfig(c)
	c.Keys.InitControls()
}

// ClampConfig replaces non-positive delays with their defaults and an
// unknown theme with the default theme.
func ClampConfig(cfg *Config) {
	d := DefaultConfig().Timing
	clamp := func(v *int, def int) {
		if *v <= 0 {
			*v = def
		}
	}
	clamp(&cfg.Timing.Typewriter, d.Typewriter)
	clamp(&cfg.Timing.Boot, d.Boot)
	clamp(&cfg.Timing.BootSettle, d.BootSettle)
	clamp(&cfg.Timing.ProjectModal, d.ProjectModal)
	clamp(&cfg.Timing.ContactModal, d.ContactModal)
	clamp(&cfg.Timing.ResumeDelay, d.ResumeDelay)

	known := false
	for _, t := range Themes {
		if strings.EqualFold(cfg.Theme, t) {
			cfg.Theme = t
			known = true
			break
		}
	}
	if !known {
		cfg.Theme = DefaultConfig().Theme
	}
}

// CommandOptions maps the settings onto the formatter options.
func (c Config) CommandOptions() command.Options {
	return command.Options{MilestoneGlyphs: c.Sudo.MilestoneGlyphs}
}

// ResolvedDownloadDir expands a leading ~ in DownloadDir.
func (c Config) ResolvedDownloadDir() string {
	return ExpandHome(c.DownloadDir)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// GetConfigDir returns the termfolio directory under the user config dir,
// or ~/.termfolio when there is none.
func GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil || configDir == "" {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", errors.Wrap(herr, "could not resolve a config directory")
		}
		return filepath.Join(home, "."+AppName), nil
	}
	return filepath.Join(configDir, AppName), nil
}

// ConfigPath is the settings file inside configDir.
func ConfigPath(configDir string) string {
	return filepath.Join(configDir, configFilename)
}

// Load reads config.toml from configDir, creating it with defaults on first
// run. Environment variables in the file are expanded before decoding.
func Load(configDir string) (Config, error) {
	path := ConfigPath(configDir)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		if werr := Write(configDir, cfg); werr != nil {
			return cfg, werr
		}
		applyEnv(&cfg)
		return cfg, nil
	}
	if err != nil {
		return DefaultConfig(), errors.Wrapf(err, "could not read %s", path)
	}

	slog.Debug("loading config", "path", path)
	var cfg Config
	if _, err := toml.Decode(os.ExpandEnv(string(data)), &cfg); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "could not decode %s", path)
	}
	cfg.ApplyDefaults()
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(APIURLEnv)); v != "" {
		cfg.APIURL = v
	}
}

// Write encodes cfg to config.toml in configDir.
func Write(configDir string, cfg Config) error {
	return encode(configDir, cfg)
}

// SetContentFile points content_file at path and leaves every other key in
// config.toml as written. Env references stay unexpanded and the API URL
// override never reaches the file.
func SetContentFile(configDir, path string) error {
	file := ConfigPath(configDir)
	data, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		cfg.ContentFile = path
		return Write(configDir, cfg)
	}
	if err != nil {
		return errors.Wrapf(err, "could not read %s", file)
	}

	raw := map[string]any{}
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return errors.Wrapf(err, "could not decode %s", file)
	}
	raw["content_file"] = path
	return encode(configDir, raw)
}

func encode(configDir string, v any) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return errors.Wrap(err, "could not create config directory")
	}
	f, err := os.Create(ConfigPath(configDir))
	if err != nil {
		return errors.Wrap(err, "could not create config file")
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(v); err != nil {
		return errors.Wrap(err, "could not write config file")
	}
	return nil
}
