package editor

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/listtoggle/buffer"
)

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func newTaskModel(text string) Model {
	m := New(Config{Text: text, Extensions: []Extension{TaskClickToggle()}})
	return m.SetSize(40, 10)
}

func TestTaskClickToggle_Decorations(t *testing.T) {
	b := buffer.New("- [ ] a\ntext\n- [x] b", buffer.Options{})
	got := TaskClickToggle().Decorator.Decorate(b)
	want := []Decoration{
		{Row: 0, StartCol: 2, EndCol: 5, Class: TaskMarkerClass},
		{Row: 2, StartCol: 2, EndCol: 5, Class: TaskMarkerClass},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("decorations: got %+v, want %+v", got, want)
	}
}

func TestTaskClickToggle_FlipsMarkers(t *testing.T) {
	m := newTaskModel("- [ ] a\n- [x] b")

	m, _ = m.Update(leftClick(2, 0))
	if got, want := m.buf.Text(), "- [x] a\n- [x] b"; got != want {
		t.Fatalf("text after click on unchecked: got %q, want %q", got, want)
	}
	c, ok := m.buf.LastChange()
	if !ok || c.UserEvent != buffer.UserEventInput {
		t.Fatalf("last change user event: got %q (ok=%v), want %q", c.UserEvent, ok, buffer.UserEventInput)
	}

	// Any cell of the marker counts; the flip starts at the marker.
	m, _ = m.Update(leftClick(4, 1))
	if got, want := m.buf.Text(), "- [x] a\n- [ ] b"; got != want {
		t.Fatalf("text after click on checked: got %q, want %q", got, want)
	}
}

func TestTaskClickToggle_UppercaseCheckedBecomesUnchecked(t *testing.T) {
	m := newTaskModel("- [X] a")

	m, _ = m.Update(leftClick(3, 0))
	if got, want := m.buf.Text(), "- [ ] a"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestTaskClickToggle_KeepsSelection(t *testing.T) {
	m := newTaskModel("- [ ] a\n- [ ] b")
	sel := buffer.Single(9, 13)
	m.buf.Select(sel)

	m, _ = m.Update(leftClick(2, 0))
	if got, want := m.buf.Text(), "- [x] a\n- [ ] b"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got := m.buf.Selection(); !reflect.DeepEqual(got, sel) {
		t.Fatalf("selection: got %+v, want %+v", got, sel)
	}
}

func TestTaskClickToggle_OtherClicksFallThrough(t *testing.T) {
	m := newTaskModel("- [ ] a\nplain [ ] text")

	m, _ = m.Update(leftClick(6, 0))
	if got, want := m.buf.Text(), "- [ ] a\nplain [ ] text"; got != want {
		t.Fatalf("text after click on item text: got %q, want %q", got, want)
	}
	if got, want := m.buf.Cursor(), (buffer.Pos{Row: 0, Col: 6}); got != want {
		t.Fatalf("cursor after click on item text: got %v, want %v", got, want)
	}

	// Brackets outside a task list item are not markers.
	m, _ = m.Update(leftClick(6, 1))
	if got, want := m.buf.Text(), "- [ ] a\nplain [ ] text"; got != want {
		t.Fatalf("text after click on plain brackets: got %q, want %q", got, want)
	}
	if got, want := m.buf.Cursor(), (buffer.Pos{Row: 1, Col: 6}); got != want {
		t.Fatalf("cursor after click on plain brackets: got %v, want %v", got, want)
	}
}

func TestTaskClickToggle_ReadOnlyFallsThrough(t *testing.T) {
	m := New(Config{Text: "- [ ] a", ReadOnly: true, Extensions: []Extension{TaskClickToggle()}})
	m = m.SetSize(40, 10)

	m, _ = m.Update(leftClick(2, 0))
	if got, want := m.buf.Text(), "- [ ] a"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := m.buf.Cursor(), (buffer.Pos{Row: 0, Col: 2}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
}

func TestTaskClickToggle_WithLineNumbers(t *testing.T) {
	m := New(Config{Text: "- [ ] a", ShowLineNums: true, Extensions: []Extension{TaskClickToggle()}})
	m = m.SetSize(40, 10)

	// Gutter is two cells wide.
	m, _ = m.Update(leftClick(4, 0))
	if got, want := m.buf.Text(), "- [x] a"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestTaskClickToggle_UndoRestoresMarker(t *testing.T) {
	m := newTaskModel("- [ ] a")

	m, _ = m.Update(leftClick(2, 0))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got, want := m.buf.Text(), "- [ ] a"; got != want {
		t.Fatalf("text after undo: got %q, want %q", got, want)
	}
}

func TestToggleTask(t *testing.T) {
	tests := []struct {
		name string
		text string
		off  int
		ok   bool
		want string
	}{
		{"unchecked", "[ ] a", 0, true, "[x] a"},
		{"checked", "[x] a", 0, true, "[ ] a"},
		{"anything else", "abc", 0, true, "[ ]"},
		{"too short", "ab\n[ ]", 1, false, "ab\n[ ]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := buffer.New(tt.text, buffer.Options{})
			v := b.Version()
			if got := ToggleTask(b, tt.off); got != tt.ok {
				t.Fatalf("ToggleTask: got %v, want %v", got, tt.ok)
			}
			if got := b.Text(); got != tt.want {
				t.Fatalf("text: got %q, want %q", got, tt.want)
			}
			if !tt.ok && b.Version() != v {
				t.Fatalf("version changed on refused toggle")
			}
		})
	}
}
