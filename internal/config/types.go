package config

import "time"

// Timing holds the animation and side-effect delays, in milliseconds.
type Timing struct {
	Typewriter   int `toml:"typewriter"`
	Boot         int `toml:"boot"`
	BootSettle   int `toml:"boot_settle"`
	ProjectModal int `toml:"project_modal"`
	ContactModal int `toml:"contact_modal"`
	ResumeDelay  int `toml:"resume_delay"`
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func (t Timing) TypewriterInterval() time.Duration  { return ms(t.Typewriter) }
func (t Timing) BootInterval() time.Duration        { return ms(t.Boot) }
func (t Timing) BootSettleDelay() time.Duration     { return ms(t.BootSettle) }
func (t Timing) ProjectModalDelay() time.Duration   { return ms(t.ProjectModal) }
func (t Timing) ContactModalDelay() time.Duration   { return ms(t.ContactModal) }
func (t Timing) ResumeDownloadDelay() time.Duration { return ms(t.ResumeDelay) }

// SudoConfig tunes the sudo easter egg coloring.
type SudoConfig struct {
	// MilestoneGlyphs are the leading glyphs that render a sudo line amber.
	MilestoneGlyphs []string `toml:"milestone_glyphs"`
}

// Config represents config.toml.
type Config struct {
	// APIURL is the portfolio backend base URL.
	APIURL string `toml:"api_url"`
	// ContentFile, when set, serves content from a local TOML file instead
	// of the backend.
	ContentFile    string      `toml:"content_file"`
	Theme          string      `toml:"theme"`
	LogLevel       string      `toml:"log_level"`
	DownloadDir    string      `toml:"download_dir"`
	ResumeFilename string      `toml:"resume_filename"`
	Timing         Timing      `toml:"timing"`
	Sudo           SudoConfig  `toml:"sudo"`
	Keys           InputConfig `toml:"keys"`
}
