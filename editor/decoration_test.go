package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/listtoggle/buffer"
)

func staticDecorations(ds ...Decoration) Decorator {
	return DecoratorFunc(func(*buffer.Buffer) []Decoration { return ds })
}

func TestDecorations_DropsInvalidSpansAndSortsRows(t *testing.T) {
	m := New(Config{
		Text: "abcd\nef",
		Extensions: []Extension{
			{Decorator: staticDecorations(
				Decoration{Row: 0, StartCol: 2, EndCol: 3, Class: "b"},
				Decoration{Row: 0, StartCol: 0, EndCol: 1, Class: "a"},
				Decoration{Row: 0, StartCol: 1, EndCol: 2},
				Decoration{Row: 1, StartCol: 1, EndCol: 1, Class: "empty"},
				Decoration{Row: 5, StartCol: 0, EndCol: 1, Class: "gone"},
			)},
			{},
		},
	})

	got := m.decorations()
	if len(got) != 1 || len(got[0]) != 2 {
		t.Fatalf("decorations: got %+v, want two on row 0", got)
	}
	if got[0][0].Class != "a" || got[0][1].Class != "b" {
		t.Fatalf("row 0 order: got %q, %q", got[0][0].Class, got[0][1].Class)
	}
}

func TestClassStyle_FirstExtensionWins(t *testing.T) {
	first := lipgloss.NewStyle().Bold(true)
	m := New(Config{
		Extensions: []Extension{
			{Styles: map[string]lipgloss.Style{"x": first}},
			{Styles: map[string]lipgloss.Style{"x": lipgloss.NewStyle().Italic(true)}},
		},
	})

	st, ok := m.classStyle("x")
	if !ok || !st.GetBold() || st.GetItalic() {
		t.Fatalf("class style: got bold=%v italic=%v ok=%v", st.GetBold(), st.GetItalic(), ok)
	}
	if _, ok := m.classStyle("missing"); ok {
		t.Fatalf("class style for unknown class reported ok")
	}
}

func TestClick_RoutesToOwningExtension(t *testing.T) {
	var gotA, gotB []ClickEvent
	m := New(Config{
		Text: "abcd",
		Extensions: []Extension{
			{
				Decorator: staticDecorations(Decoration{Row: 0, StartCol: 0, EndCol: 2, Class: "a"}),
				OnClick: func(ev ClickEvent) bool {
					gotA = append(gotA, ev)
					return true
				},
			},
			{
				Decorator: staticDecorations(Decoration{Row: 0, StartCol: 2, EndCol: 4, Class: "b"}),
				OnClick: func(ev ClickEvent) bool {
					gotB = append(gotB, ev)
					return false
				},
			},
		},
	})
	m = m.SetSize(10, 1)

	m, _ = m.Update(leftClick(1, 0))
	if len(gotA) != 1 || len(gotB) != 0 {
		t.Fatalf("clicks after x=1: a=%d b=%d, want 1 0", len(gotA), len(gotB))
	}
	if ev := gotA[0]; ev.Offset != 0 || ev.Pos != (buffer.Pos{Row: 0, Col: 1}) || ev.Decoration.Class != "a" {
		t.Fatalf("click event: got %+v", ev)
	}
	if got := m.buf.Cursor(); got != (buffer.Pos{}) {
		t.Fatalf("cursor after handled click: got %v, want %v", got, buffer.Pos{})
	}

	// Unhandled clicks still place the cursor.
	m, _ = m.Update(leftClick(3, 0))
	if len(gotB) != 1 || gotB[0].Offset != 2 {
		t.Fatalf("clicks after x=3: got %+v", gotB)
	}
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 0, Col: 3}) {
		t.Fatalf("cursor after unhandled click: got %v, want %v", got, buffer.Pos{Row: 0, Col: 3})
	}
}

func TestMouse_DragSelects(t *testing.T) {
	m := New(Config{Text: "abcdef"})
	m = m.SetSize(10, 1)

	m, _ = m.Update(leftClick(1, 0))
	m, _ = m.Update(tea.MouseMsg{X: 4, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 4, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	if got, want := m.buf.Selection().MainRange(), buffer.NewRange(1, 4); got != want {
		t.Fatalf("selection after drag: got %+v, want %+v", got, want)
	}

	// Motion after release does not extend.
	m, _ = m.Update(tea.MouseMsg{X: 6, Y: 0, Action: tea.MouseActionMotion})
	if got, want := m.buf.Selection().MainRange(), buffer.NewRange(1, 4); got != want {
		t.Fatalf("selection after release: got %+v, want %+v", got, want)
	}

	m, _ = m.Update(tea.MouseMsg{X: 6, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, Shift: true})
	if got, want := m.buf.Selection().MainRange(), buffer.NewRange(1, 6); got != want {
		t.Fatalf("selection after shift click: got %+v, want %+v", got, want)
	}
}

func TestMouse_BackwardDragKeepsAnchor(t *testing.T) {
	m := New(Config{Text: "abcdef\nxyz"})
	m = m.SetSize(10, 2)

	m, _ = m.Update(leftClick(4, 0))
	if got, want := m.buf.Selection().MainRange(), buffer.NewRange(4, 4); got != want {
		t.Fatalf("selection after press: got %+v, want %+v", got, want)
	}

	m, _ = m.Update(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if got, want := m.buf.Selection().MainRange(), buffer.NewRange(4, 1); got != want {
		t.Fatalf("selection after backward drag: got %+v, want %+v", got, want)
	}

	// Dragging onto the next row keeps the anchor on the first.
	m, _ = m.Update(tea.MouseMsg{X: 2, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if got, want := m.buf.Selection().MainRange(), buffer.NewRange(4, 9); got != want {
		t.Fatalf("selection after drag down: got %+v, want %+v", got, want)
	}
}
