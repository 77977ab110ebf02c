package native

import (
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
)

var (
	// writeAllFn is the system clipboard. Tests replace it.
	writeAllFn = clipboard.WriteAll
	// oscOut receives the OSC52 fallback sequence.
	oscOut io.Writer = os.Stderr
	getenv           = os.Getenv
)

// CopyToClipboard copies s to the system clipboard, falling back to the
// OSC52 terminal escape when no clipboard tool is available (ssh, tmux).
func CopyToClipboard(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	if !clipboard.Unsupported {
		err := writeAllFn(s)
		if err == nil {
			return nil
		}
		slog.Debug("system clipboard failed, trying OSC52", "err", err)
	}

	if _, err := io.WriteString(oscOut, osc52(s)); err != nil {
		return errors.Wrap(err, "OSC52 copy failed")
	}
	return nil
}

// osc52 builds the clipboard escape, wrapped for tmux or screen when
// running under one.
func osc52(s string) string {
	enc := base64.StdEncoding.EncodeToString([]byte(s))
	switch {
	case getenv("TMUX") != "":
		return fmt.Sprintf("\x1bPtmux;\x1b\x1b]52;c;%s\x07\x1b\\", enc)
	case getenv("STY") != "":
		return fmt.Sprintf("\x1bP\x1b]52;c;%s\x07\x1b\\", enc)
	default:
		return fmt.Sprintf("\x1b]52;c;%s\x07", enc)
	}
}
