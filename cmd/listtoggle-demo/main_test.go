package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/listtoggle/internal/config"
)

func testModel(t *testing.T, path, text string) model {
	t.Helper()
	cfg := config.Default()
	cfg.File = path
	return newModel(cfg, text, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLoadFile(t *testing.T) {
	if got, err := loadFile(""); err != nil || got != sample {
		t.Fatalf("loadFile(\"\"): got %q, %v; want sample", got, err)
	}

	missing := filepath.Join(t.TempDir(), "new.md")
	if got, err := loadFile(missing); err != nil || got != "" {
		t.Fatalf("loadFile(missing): got %q, %v; want empty", got, err)
	}

	p := filepath.Join(t.TempDir(), "notes.md")
	if err := os.WriteFile(p, []byte("- a\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got, err := loadFile(p); err != nil || got != "- a\n" {
		t.Fatalf("loadFile(%s): got %q, %v", p, got, err)
	}
}

func TestModel_ToggleAndSave(t *testing.T) {
	p := filepath.Join(t.TempDir(), "notes.md")
	m := testModel(t, p, "a")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	m = next.(model)
	if got := m.editor.Buffer().Text(); got != "- a" {
		t.Fatalf("text after toggle: got %q, want %q", got, "- a")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(model)
	if m.status != "saved" {
		t.Fatalf("status after save: got %q, want %q", m.status, "saved")
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(b) != "- a" {
		t.Fatalf("saved text: got %q, want %q", b, "- a")
	}
}

func TestModel_SaveWithoutPath(t *testing.T) {
	m := testModel(t, "", "a")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if got := next.(model).status; got != "no file to save to" {
		t.Fatalf("status: got %q", got)
	}
}

func TestModel_QuitKey(t *testing.T) {
	m := testModel(t, "", "a")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	if cmd == nil {
		t.Fatalf("quit key returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("quit key command did not quit")
	}
}
