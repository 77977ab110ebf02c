package editor

import (
	"strings"

	"github.com/Shekhar0165/shekhar-portfolio/internal/command"
)

// Editor is the prompt line: a rune buffer with a cursor, the submitted
// history (most recent first) and the browsing position in it.
//
// historyIndex is -1 when not browsing. Any edit resets it.
type Editor struct {
	buf          []rune
	cursor       int
	history      []string
	historyIndex int
	disabled     bool
}

// New returns an empty, enabled editor.
func New() *Editor {
	return &Editor{historyIndex: -1}
}

func (e *Editor) Value() string     { return string(e.buf) }
func (e *Editor) Cursor() int       { return e.cursor }
func (e *Editor) Disabled() bool    { return e.disabled }
func (e *Editor) HistoryIndex() int { return e.historyIndex }

// History returns a copy of the submitted commands, most recent first.
func (e *Editor) History() []string {
	out := make([]string, len(e.history))
	copy(out, e.history)
	return out
}

// SetDisabled toggles input. The buffer is kept while disabled.
func (e *Editor) SetDisabled(v bool) { e.disabled = v }

func (e *Editor) setValue(s string) {
	e.buf = []rune(s)
	e.cursor = len(e.buf)
}

func (e *Editor) edited() { e.historyIndex = -1 }

// Insert types s at the cursor.
func (e *Editor) Insert(s string) {
	if e.disabled || s == "" {
		return
	}
	r := []rune(s)
	buf := make([]rune, 0, len(e.buf)+len(r))
	buf = append(buf, e.buf[:e.cursor]...)
	buf = append(buf, r...)
	buf = append(buf, e.buf[e.cursor:]...)
	e.buf = buf
	e.cursor += len(r)
	e.edited()
}

// Backspace deletes the rune before the cursor.
func (e *Editor) Backspace() {
	if e.disabled || e.cursor == 0 {
		return
	}
	e.buf = append(e.buf[:e.cursor-1], e.buf[e.cursor:]...)
	e.cursor--
	e.edited()
}

// Delete removes the rune under the cursor.
func (e *Editor) Delete() {
	if e.disabled || e.cursor >= len(e.buf) {
		return
	}
	e.buf = append(e.buf[:e.cursor], e.buf[e.cursor+1:]...)
	e.edited()
}

// KillLine clears the buffer (ctrl+u).
func (e *Editor) KillLine() {
	if e.disabled || len(e.buf) == 0 {
		return
	}
	e.buf = nil
	e.cursor = 0
	e.edited()
}

func (e *Editor) Left() {
	if e.disabled || e.cursor == 0 {
		return
	}
	e.cursor--
}

func (e *Editor) Right() {
	if e.disabled || e.cursor >= len(e.buf) {
		return
	}
	e.cursor++
}

func (e *Editor) Home() {
	if e.disabled {
		return
	}
	e.cursor = 0
}

func (e *Editor) End() {
	if e.disabled {
		return
	}
	e.cursor = len(e.buf)
}

// HistoryUp steps to the next older entry, stopping at the oldest.
func (e *Editor) HistoryUp() {
	if e.disabled || len(e.history) == 0 {
		return
	}
	e.historyIndex = min(e.historyIndex+1, len(e.history)-1)
	e.setValue(e.history[e.historyIndex])
}

// HistoryDown steps toward newer entries. Stepping past the newest leaves
// browsing mode with an empty buffer.
func (e *Editor) HistoryDown() {
	if e.disabled {
		return
	}
	if e.historyIndex <= 0 {
		e.historyIndex = -1
		e.setValue("")
		return
	}
	e.historyIndex--
	e.setValue(e.history[e.historyIndex])
}

// Complete replaces the buffer with the first command that extends it.
func (e *Editor) Complete() bool {
	if e.disabled {
		return false
	}
	name, ok := command.Complete(string(e.buf))
	if !ok {
		return false
	}
	e.setValue(name)
	return true
}

// Submit returns the trimmed buffer and records it in history. Blank input
// and a disabled editor submit nothing and leave the buffer as is.
func (e *Editor) Submit() (string, bool) {
	if e.disabled {
		return "", false
	}
	v := strings.TrimSpace(string(e.buf))
	if v == "" {
		return "", false
	}
	e.history = append([]string{v}, e.history...)
	e.historyIndex = -1
	e.buf = nil
	e.cursor = 0
	return v, true
}
