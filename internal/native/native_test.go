package native

import (
	"bytes"
	"encoding/base64"
	"os/exec"
	"strings"
	"testing"

	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
)

func TestOpenCommand(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"linux", "xdg-open"},
		{"freebsd", "xdg-open"},
		{"darwin", "open"},
		{"windows", "cmd"},
	}
	for _, tc := range tests {
		cmd := openCommand(tc.goos, "https://example.com")
		if !strings.HasSuffix(cmd.Path, tc.want) && cmd.Args[0] != tc.want {
			t.Errorf("%s: opener = %v", tc.goos, cmd.Args)
		}
		if last := cmd.Args[len(cmd.Args)-1]; last != "https://example.com" {
			t.Errorf("%s: target not last arg: %v", tc.goos, cmd.Args)
		}
	}
}

func TestOpenURL(t *testing.T) {
	var started []string
	orig := startFn
	startFn = func(cmd *exec.Cmd) error {
		started = append(started, cmd.Args[len(cmd.Args)-1])
		return nil
	}
	defer func() { startFn = orig }()

	for _, ok := range []string{"https://example.com", "http://x.dev/a?b=c", "mailto:ada@example.com"} {
		if err := OpenURL(ok); err != nil {
			t.Errorf("OpenURL(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"file:///etc/passwd", "javascript:alert(1)", ""} {
		if err := OpenURL(bad); err == nil {
			t.Errorf("OpenURL(%q) should fail", bad)
		}
	}
	if len(started) != 3 {
		t.Errorf("started = %v", started)
	}
}

func TestOpen_StartError(t *testing.T) {
	orig := startFn
	startFn = func(*exec.Cmd) error { return errors.New("no opener") }
	defer func() { startFn = orig }()

	if err := Open("https://example.com"); err == nil || !strings.Contains(err.Error(), "no opener") {
		t.Errorf("Open error = %v", err)
	}
}

func TestOSC52(t *testing.T) {
	origEnv := getenv
	defer func() { getenv = origEnv }()

	enc := base64.StdEncoding.EncodeToString([]byte("hi"))
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"plain", nil, "\x1b]52;c;" + enc + "\x07"},
		{"tmux", map[string]string{"TMUX": "1"}, "\x1bPtmux;\x1b\x1b]52;c;" + enc + "\x07\x1b\\"},
		{"screen", map[string]string{"STY": "1"}, "\x1bP\x1b]52;c;" + enc + "\x07\x1b\\"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			getenv = func(k string) string { return tc.env[k] }
			if got := osc52("hi"); got != tc.want {
				t.Errorf("osc52 = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCopyToClipboard_FallsBackToOSC52(t *testing.T) {
	origWrite, origOut, origEnv := writeAllFn, oscOut, getenv
	defer func() { writeAllFn, oscOut, getenv = origWrite, origOut, origEnv }()

	var buf bytes.Buffer
	oscOut = &buf
	getenv = func(string) string { return "" }
	writeAllFn = func(string) error { return errors.New("no xclip") }

	if err := CopyToClipboard("https://example.com"); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "\x1b]52;c;") {
		t.Errorf("expected OSC52 output, got %q", buf.String())
	}

	buf.Reset()
	var copied string
	writeAllFn = func(s string) error { copied = s; return nil }
	if err := CopyToClipboard("ok"); err != nil {
		t.Fatal(err)
	}
	if !clipboard.Unsupported && (copied != "ok" || buf.Len() != 0) {
		t.Errorf("system clipboard not used: copied=%q osc=%q", copied, buf.String())
	}

	buf.Reset()
	if err := CopyToClipboard("   "); err != nil || buf.Len() != 0 {
		t.Error("blank text should be a no-op")
	}
}
