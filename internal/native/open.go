package native

import (
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// startFn launches the opener without waiting. Tests replace it.
var startFn = func(cmd *exec.Cmd) error { return cmd.Start() }

// openCommand builds the OS-specific opener for target.
func openCommand(goos, target string) *exec.Cmd {
	switch goos {
	case "windows":
		// 'start' is a cmd built-in; the empty arg is the window title.
		return exec.Command("cmd", "/c", "start", "", target)
	case "darwin":
		return exec.Command("open", target)
	default:
		return exec.Command("xdg-open", target)
	}
}

// Open opens target (a URL or a path) with the OS default application.
// It returns once the opener has started; browsers stay running on their own.
func Open(target string) error {
	if strings.TrimSpace(target) == "" {
		return errors.New("nothing to open")
	}
	if err := startFn(openCommand(runtime.GOOS, target)); err != nil {
		return errors.Wrapf(err, "failed to open '%s'", target)
	}
	return nil
}

// OpenURL opens an http(s) or mailto link in the browser or mail client.
func OpenURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return errors.Wrapf(err, "invalid link %q", raw)
	}
	switch u.Scheme {
	case "http", "https", "mailto":
		return Open(u.String())
	default:
		return errors.Errorf("refusing to open %q: unsupported scheme", raw)
	}
}
