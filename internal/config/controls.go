package config

// InputConfig defines the user-configurable keybindings and toggles.
type InputConfig struct {
	// Toggle for the readline-style ctrl bindings
	DisableEmacs bool `toml:"disable_emacs_bindings"`

	// Configurable single-key actions
	Complete    string `toml:"complete"`
	ScrollUp    string `toml:"scroll_up"`
	ScrollDown  string `toml:"scroll_down"`
	CloseModal  string `toml:"close_modal"`
	Quit        string `toml:"quit"`
	HistoryUp   string `toml:"history_up"`
	HistoryDown string `toml:"history_down"`

	// Internal computed sets for fast lookup
	HistoryPrev []string `toml:"-"`
	HistoryNext []string `toml:"-"`
	LineStart   []string `toml:"-"`
	LineEnd     []string `toml:"-"`
	KillLine    []string `toml:"-"`
	QuitKeys    []string `toml:"-"`
}

func appendKey(set []string, key string) []string {
	if key == "" {
		return set
	}
	for _, k := range set {
		if k == key {
			return set
		}
	}
	return append(set, key)
}

// InitControls populates the internal key sets from the configured keys
// and the disable flag. It should be called after loading the config.
func (c *InputConfig) InitControls() {
	// Arrows, home/end and ctrl+c always work
	c.HistoryPrev = appendKey([]string{"up"}, c.HistoryUp)
	c.HistoryNext = appendKey([]string{"down"}, c.HistoryDown)
	c.LineStart = []string{"home"}
	c.LineEnd = []string{"end"}
	c.KillLine = nil
	c.QuitKeys = appendKey([]string{"ctrl+c"}, c.Quit)

	if !c.DisableEmacs {
		c.HistoryPrev = appendKey(c.HistoryPrev, "ctrl+p")
		c.HistoryNext = appendKey(c.HistoryNext, "ctrl+n")
		c.LineStart = appendKey(c.LineStart, "ctrl+a")
		c.LineEnd = appendKey(c.LineEnd, "ctrl+e")
		c.KillLine = appendKey(c.KillLine, "ctrl+u")
	}
}
