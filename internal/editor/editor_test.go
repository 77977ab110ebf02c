package editor

import "testing"

func typeAndSubmit(t *testing.T, e *Editor, s string) {
	t.Helper()
	e.Insert(s)
	if _, ok := e.Submit(); !ok {
		t.Fatalf("submit %q failed", s)
	}
}

func TestHistoryNavigation(t *testing.T) {
	e := New()
	typeAndSubmit(t, e, "whoami")
	typeAndSubmit(t, e, "skills")

	steps := []struct {
		name string
		op   func()
		want string
		idx  int
	}{
		{"up", e.HistoryUp, "skills", 0},
		{"up", e.HistoryUp, "whoami", 1},
		{"up clamps", e.HistoryUp, "whoami", 1},
		{"down", e.HistoryDown, "skills", 0},
		{"down to empty", e.HistoryDown, "", -1},
		{"down again", e.HistoryDown, "", -1},
	}
	for _, s := range steps {
		s.op()
		if e.Value() != s.want || e.HistoryIndex() != s.idx {
			t.Fatalf("%s: got %q idx %d, want %q idx %d", s.name, e.Value(), e.HistoryIndex(), s.want, s.idx)
		}
		if e.Cursor() != len([]rune(s.want)) {
			t.Fatalf("%s: cursor %d not at end", s.name, e.Cursor())
		}
	}
}

func TestHistoryUp_Empty(t *testing.T) {
	e := New()
	e.Insert("abc")
	e.HistoryUp()
	if e.Value() != "abc" || e.HistoryIndex() != -1 {
		t.Errorf("history up on empty history changed state: %q %d", e.Value(), e.HistoryIndex())
	}
}

func TestEditResetsBrowsing(t *testing.T) {
	e := New()
	typeAndSubmit(t, e, "help")
	e.HistoryUp()
	e.Insert("x")
	if e.HistoryIndex() != -1 || e.Value() != "helpx" {
		t.Errorf("got %q idx %d", e.Value(), e.HistoryIndex())
	}
}

func TestSubmit(t *testing.T) {
	e := New()
	e.Insert("   ")
	if _, ok := e.Submit(); ok {
		t.Error("blank input must not submit")
	}
	if e.Value() != "   " {
		t.Error("blank submit should leave the buffer alone")
	}

	e.KillLine()
	e.Insert("  Whoami ")
	got, ok := e.Submit()
	if !ok || got != "Whoami" {
		t.Errorf("Submit() = %q, %v", got, ok)
	}
	if e.Value() != "" || e.Cursor() != 0 {
		t.Error("buffer not cleared after submit")
	}
	if h := e.History(); len(h) != 1 || h[0] != "Whoami" {
		t.Errorf("history = %v", h)
	}
}

func TestCursorEditing(t *testing.T) {
	e := New()
	e.Insert("hlp")
	e.Home()
	if e.Cursor() != 0 {
		t.Fatalf("home: cursor %d", e.Cursor())
	}
	e.Right()
	e.Insert("e")
	if e.Value() != "help" || e.Cursor() != 2 {
		t.Fatalf("got %q cursor %d", e.Value(), e.Cursor())
	}
	e.End()
	if e.Cursor() != 4 || e.Value() != "help" {
		t.Fatalf("end: %q cursor %d", e.Value(), e.Cursor())
	}
	e.Backspace()
	e.Left()
	e.Delete()
	if e.Value() != "he" {
		t.Errorf("got %q", e.Value())
	}
	e.Right()
	e.Right()
	if e.Cursor() != 2 {
		t.Errorf("right past end: cursor %d", e.Cursor())
	}
}

func TestInsert_Multibyte(t *testing.T) {
	e := New()
	e.Insert("héllo")
	e.Left()
	e.Backspace()
	if e.Value() != "hélo" || e.Cursor() != 3 {
		t.Errorf("got %q cursor %d", e.Value(), e.Cursor())
	}
}

func TestComplete(t *testing.T) {
	tests := []struct {
		in, want string
		ok       bool
	}{
		{"proj", "projects", true},
		{"Wh", "whoami", true},
		{"", "", false},
		{"nope", "nope", false},
		{"skills", "skills", false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			e := New()
			e.Insert(tc.in)
			ok := e.Complete()
			if ok != tc.ok || e.Value() != tc.want {
				t.Errorf("Complete(%q) = %q, %v; want %q, %v", tc.in, e.Value(), ok, tc.want, tc.ok)
			}
			if e.Cursor() != len([]rune(e.Value())) {
				t.Errorf("cursor %d not at end", e.Cursor())
			}
		})
	}
}

func TestDisabledIsInert(t *testing.T) {
	e := New()
	typeAndSubmit(t, e, "help")
	e.Insert("wh")
	e.SetDisabled(true)

	e.Insert("x")
	e.Backspace()
	e.Delete()
	e.Home()
	e.KillLine()
	e.HistoryUp()
	e.HistoryDown()
	e.Complete()
	if _, ok := e.Submit(); ok {
		t.Error("disabled editor submitted")
	}
	if e.Value() != "wh" || e.Cursor() != 2 || e.HistoryIndex() != -1 {
		t.Errorf("disabled editor changed: %q cursor %d idx %d", e.Value(), e.Cursor(), e.HistoryIndex())
	}

	e.SetDisabled(false)
	e.Complete()
	if e.Value() != "whoami" {
		t.Errorf("re-enabled editor did not complete: %q", e.Value())
	}
}
