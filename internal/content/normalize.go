package content

import "strings"

// DefaultTerminalConfig is the snapshot used before the backend answers and
// whenever the terminal-config fetch fails.
func DefaultTerminalConfig() TerminalConfig {
	return Normalize(TerminalConfig{
		Personal: Personal{
			Name:   "Loading...",
			Handle: "portfolio",
		},
	})
}

// DefaultSnapshot pairs the default config with an empty project list.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Config:   DefaultTerminalConfig(),
		Projects: []Project{},
	}
}

// Normalize replaces every nil collection with an empty one so formatters
// never have to distinguish "missing" from "empty".
func Normalize(cfg TerminalConfig) TerminalConfig {
	if cfg.Personal.ExtraFields == nil {
		cfg.Personal.ExtraFields = []ExtraField{}
	}
	if cfg.Experience == nil {
		cfg.Experience = []Experience{}
	}
	for i := range cfg.Experience {
		if cfg.Experience[i].Bullets == nil {
			cfg.Experience[i].Bullets = []string{}
		}
	}
	if cfg.Skills == nil {
		cfg.Skills = []SkillCategory{}
	}
	for i := range cfg.Skills {
		if cfg.Skills[i].Items == nil {
			cfg.Skills[i].Items = []SkillItem{}
		}
	}
	if cfg.Education.Courses == nil {
		cfg.Education.Courses = []string{}
	}
	if cfg.Blogs == nil {
		cfg.Blogs = []Blog{}
	}
	if cfg.SudoLines == nil {
		cfg.SudoLines = []string{}
	}
	return cfg
}

// NormalizeProjects gives every project non-nil slices and LF-only
// descriptions. Order is preserved: it is the numbering users see.
func NormalizeProjects(projects []Project) []Project {
	out := make([]Project, len(projects))
	for i, p := range projects {
		if p.Technologies == nil {
			p.Technologies = []string{}
		}
		if p.Highlights == nil {
			p.Highlights = []string{}
		}
		p.Description = strings.ReplaceAll(p.Description, "\r\n", "\n")
		out[i] = p
	}
	return out
}
