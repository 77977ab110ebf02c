package ui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Shekhar0165/shekhar-portfolio/internal/config"
)

// Matches checks if the key message matches a specific action binding.
func Matches(c config.InputConfig, msg tea.KeyMsg, binding string) bool {
	return binding != "" && msg.String() == binding
}

// IsQuit checks if the key matches any quit key.
func IsQuit(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.QuitKeys, msg.String())
}

// IsHistoryPrev checks if the key steps to an older history entry.
func IsHistoryPrev(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.HistoryPrev, msg.String())
}

// IsHistoryNext checks if the key steps to a newer history entry.
func IsHistoryNext(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.HistoryNext, msg.String())
}

// IsLineStart checks if the key moves the cursor to the start of the line.
func IsLineStart(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.LineStart, msg.String())
}

// IsLineEnd checks if the key moves the cursor to the end of the line.
func IsLineEnd(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.LineEnd, msg.String())
}

// IsKillLine checks if the key clears the prompt.
func IsKillLine(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.KillLine, msg.String())
}

// IsComplete checks if the key matches the tab-completion action.
func IsComplete(c config.InputConfig, msg tea.KeyMsg) bool {
	return Matches(c, msg, c.Complete)
}

// IsScrollUp checks if the key scrolls the transcript up a page.
func IsScrollUp(c config.InputConfig, msg tea.KeyMsg) bool {
	return Matches(c, msg, c.ScrollUp)
}

// IsScrollDown checks if the key scrolls the transcript down a page.
func IsScrollDown(c config.InputConfig, msg tea.KeyMsg) bool {
	return Matches(c, msg, c.ScrollDown)
}

// IsCloseModal checks if the key dismisses the open modal.
func IsCloseModal(c config.InputConfig, msg tea.KeyMsg) bool {
	return Matches(c, msg, c.CloseModal)
}

// IsQuickCommand checks if the key is a quick command (Modifier + 1-9).
// Returns true and the 0-based index if matched.
func IsQuickCommand(msg tea.KeyMsg, modifier string) (bool, int) {
	key := msg.String()
	prefix := modifier + "+"
	if strings.HasPrefix(key, prefix) && len(key) == len(prefix)+1 {
		numberChar := key[len(key)-1]
		if numberChar >= '1' && numberChar <= '9' {
			return true, int(numberChar - '1')
		}
	}
	return false, -1
}
