package content

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	maxDocumentBytes = 4 << 20
	userAgent        = "termfolio/1.0"
)

// Source supplies the two independent halves of a session snapshot.
type Source interface {
	TerminalConfig(ctx context.Context) (TerminalConfig, error)
	Projects(ctx context.Context) ([]Project, error)
}

// Client talks to the portfolio backend. It is a Source and also carries the
// side-effect endpoints (contact messages, resume download).
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the given API base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// BaseURL returns the API base the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

// TerminalConfig fetches GET /terminal-config.
func (c *Client) TerminalConfig(ctx context.Context) (TerminalConfig, error) {
	body, err := c.get(ctx, "/terminal-config")
	if err != nil {
		return TerminalConfig{}, err
	}
	cfg, err := DecodeTerminalConfig(body)
	if err != nil {
		return TerminalConfig{}, errors.Wrap(err, "decode terminal config")
	}
	return cfg, nil
}

// Projects fetches GET /projects.
func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	body, err := c.get(ctx, "/projects")
	if err != nil {
		return nil, err
	}
	projects, err := DecodeProjects(body)
	if err != nil {
		return nil, errors.Wrap(err, "decode projects")
	}
	return projects, nil
}

// SendMessage posts the contact form to POST /messages.
func (c *Client) SendMessage(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "marshal message")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "send message")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Errorf("send message: HTTP status %d", resp.StatusCode)
	}
	return nil
}

// DownloadResume saves GET /resume as dir/name and returns the written path.
// The file appears atomically: it is streamed to a temp file first.
func (c *Client) DownloadResume(ctx context.Context, dir, name string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/resume", nil)
	if err != nil {
		return "", errors.Wrap(err, "create request")
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "fetch resume")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("fetch resume: HTTP status %d", resp.StatusCode)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "create download directory")
	}
	target := filepath.Join(dir, name)
	tmp := target + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return "", errors.Wrap(err, "create resume file")
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", errors.Wrap(err, "write resume file")
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", errors.Wrap(err, "close resume file")
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return "", errors.Wrap(err, "rename resume file")
	}
	return target, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetch %s: HTTP status %d", path, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return body, nil
}
