package content

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeTerminalConfig_Full(t *testing.T) {
	doc := `{
		"personal": {"name": "Ada", "handle": "ada", "email": "ada@example.com",
			"extraFields": [{"label": "Blog", "value": "ada.dev", "link": "https://ada.dev"}, "junk"]},
		"experience": [{"period": "2020", "role": "Engineer", "company": "ACME", "bullets": ["a", "", "b"]}],
		"skills": [{"category": "Go", "items": [{"name": "goroutines", "level": 90}, {"name": "generics", "level": "55"}, {"name": "channels", "level": 87.5}]}],
		"education": {"degree": "BSc", "college": "MIT", "year": 2019, "cgpa": "9.1", "courses": ["OS"]},
		"blogs": [{"title": "Hello", "url": "https://x.dev/hello"}],
		"sudoLines": ["📨 hired", "", "ok"]
	}`
	cfg, err := DecodeTerminalConfig([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Personal.Name != "Ada" || cfg.Personal.Handle != "ada" {
		t.Errorf("personal not decoded: %+v", cfg.Personal)
	}
	if len(cfg.Personal.ExtraFields) != 1 || cfg.Personal.ExtraFields[0].Link != "https://ada.dev" {
		t.Errorf("extra fields = %+v", cfg.Personal.ExtraFields)
	}
	if got := cfg.Experience[0].Bullets; len(got) != 3 {
		t.Errorf("bullets should keep blanks for the formatter to skip, got %q", got)
	}
	if cfg.Skills[0].Items[1].Level != 55 {
		t.Errorf("string level not coerced, got %v", cfg.Skills[0].Items[1].Level)
	}
	if cfg.Skills[0].Items[2].Level != 87.5 {
		t.Errorf("fractional level truncated, got %v", cfg.Skills[0].Items[2].Level)
	}
	if cfg.Education.Year != "2019" {
		t.Errorf("numeric year should render as text, got %q", cfg.Education.Year)
	}
	if len(cfg.SudoLines) != 3 || cfg.SudoLines[1] != "" {
		t.Errorf("sudo lines = %q", cfg.SudoLines)
	}
}

func TestDecodeTerminalConfig_MalformedFieldsFallBack(t *testing.T) {
	doc := `{"personal": "nope", "experience": {"a": 1}, "skills": null, "education": [], "blogs": 3}`
	cfg, err := DecodeTerminalConfig([]byte(doc))
	if err != nil {
		t.Fatalf("malformed fields must not fail the document: %v", err)
	}
	if cfg.Experience == nil || len(cfg.Experience) != 0 {
		t.Errorf("experience should be empty and non-nil, got %#v", cfg.Experience)
	}
	if cfg.Skills == nil || cfg.Blogs == nil || cfg.Education.Courses == nil || cfg.SudoLines == nil {
		t.Error("normalization left a nil collection")
	}
}

func TestDecodeTerminalConfig_RejectsNonObject(t *testing.T) {
	for _, in := range []string{"", "not json", "[1,2]"} {
		if _, err := DecodeTerminalConfig([]byte(in)); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestDecodeProjects_KeepsOrder(t *testing.T) {
	doc := `[{"_id": "b", "title": "Second?", "description": "x\r\ny"}, 7, {"_id": "a", "title": "Third", "featured": true}]`
	got, err := DecodeProjects([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(got))
	}
	if got[0].ID != "b" || got[1].ID != "a" {
		t.Errorf("order not preserved: %q, %q", got[0].ID, got[1].ID)
	}
	if got[0].Description != "x\ny" {
		t.Errorf("CRLF not normalized: %q", got[0].Description)
	}
	if !got[1].Featured || got[1].Technologies == nil {
		t.Errorf("project 2 = %+v", got[1])
	}
}

func TestClient_FetchAndSend(t *testing.T) {
	var posted Message
	mux := http.NewServeMux()
	mux.HandleFunc("GET /terminal-config", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"personal": {"name": "Ada"}}`)
	})
	mux.HandleFunc("GET /projects", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"_id": "1", "title": "One", "description": "d"}]`)
	})
	mux.HandleFunc("POST /messages", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&posted); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("GET /resume", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "%PDF-1.4 fake")
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient(srv.URL + "/")
	ctx := context.Background()

	cfg, err := c.TerminalConfig(ctx)
	if err != nil || cfg.Personal.Name != "Ada" {
		t.Fatalf("TerminalConfig = %+v, %v", cfg.Personal, err)
	}
	projects, err := c.Projects(ctx)
	if err != nil || len(projects) != 1 || projects[0].Title != "One" {
		t.Fatalf("Projects = %+v, %v", projects, err)
	}
	if err := c.SendMessage(ctx, Message{Name: "Bob", Email: "b@x.io", Message: "hi"}); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if posted.Name != "Bob" || posted.Message != "hi" {
		t.Errorf("server received %+v", posted)
	}

	dir := t.TempDir()
	path, err := c.DownloadResume(ctx, dir, "resume.pdf")
	if err != nil {
		t.Fatalf("DownloadResume: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "%PDF-1.4 fake" {
		t.Errorf("resume content = %q", data)
	}
	if _, err := os.Stat(path + ".part"); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}
}

func TestClient_HTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.TerminalConfig(context.Background()); err == nil {
		t.Error("expected error for 500 terminal-config")
	}
	if _, err := c.Projects(context.Background()); err == nil {
		t.Error("expected error for 500 projects")
	}
	if err := c.SendMessage(context.Background(), Message{}); err == nil {
		t.Error("expected error for 500 messages")
	}
	if _, err := c.DownloadResume(context.Background(), t.TempDir(), "r.pdf"); err == nil {
		t.Error("expected error for 500 resume")
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.toml")
	doc := `
sudo_lines = ["🎉 yes"]

[personal]
name = "Ada"
handle = "ada"

[[experience]]
period = "2021 - now"
role = "Engineer"
bullets = ["built things"]

[[projects]]
id = "p1"
title = "First"
description = "one"

[[projects]]
id = "p2"
title = "Second"
description = "two"
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	src := NewFileSource(path)
	cfg, err := src.TerminalConfig(context.Background())
	if err != nil {
		t.Fatalf("TerminalConfig: %v", err)
	}
	if cfg.Personal.Name != "Ada" || len(cfg.Experience) != 1 || cfg.SudoLines[0] != "🎉 yes" {
		t.Errorf("decoded config = %+v", cfg)
	}
	projects, err := src.Projects(context.Background())
	if err != nil {
		t.Fatalf("Projects: %v", err)
	}
	if len(projects) != 2 || projects[1].Title != "Second" {
		t.Errorf("projects = %+v", projects)
	}

	missing := NewFileSource(filepath.Join(t.TempDir(), "nope.toml"))
	if _, err := missing.Projects(context.Background()); err == nil {
		t.Error("expected error for missing file")
	}
}

type stubSource struct {
	cfg      TerminalConfig
	projects []Project
	cfgErr   error
	projErr  error
}

func (s stubSource) TerminalConfig(context.Context) (TerminalConfig, error) { return s.cfg, s.cfgErr }
func (s stubSource) Projects(context.Context) ([]Project, error)            { return s.projects, s.projErr }

func TestFetchSnapshot_PartialFailure(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	src := stubSource{
		cfgErr:   errors.New("offline"),
		projects: []Project{{Title: "Kept"}},
	}
	snap := FetchSnapshot(context.Background(), src, logger)
	if snap.Config.Personal.Handle != "portfolio" {
		t.Errorf("config should fall back to default, got %+v", snap.Config.Personal)
	}
	if len(snap.Projects) != 1 || snap.Projects[0].Title != "Kept" {
		t.Errorf("projects should survive a config failure, got %+v", snap.Projects)
	}

	src = stubSource{cfg: TerminalConfig{Personal: Personal{Name: "Ada"}}, projErr: errors.New("500")}
	snap = FetchSnapshot(context.Background(), src, logger)
	if snap.Config.Personal.Name != "Ada" {
		t.Errorf("config lost: %+v", snap.Config.Personal)
	}
	if snap.Projects == nil || len(snap.Projects) != 0 {
		t.Errorf("projects should fall back to empty, got %#v", snap.Projects)
	}
}
