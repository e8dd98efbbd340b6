package editor

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/listtoggle/buffer"
)

// Decoration tags the rune columns [StartCol, EndCol) of a 0-based Row with
// a class. The class selects a style from Extension.Styles and routes clicks
// to Extension.OnClick.
type Decoration struct {
	Row      int
	StartCol int
	EndCol   int
	Class    string
}

// Decorator produces the decorations of a document.
type Decorator interface {
	Decorate(b *buffer.Buffer) []Decoration
}

// DecoratorFunc adapts a function to Decorator.
type DecoratorFunc func(b *buffer.Buffer) []Decoration

func (f DecoratorFunc) Decorate(b *buffer.Buffer) []Decoration { return f(b) }

// ClickEvent describes a left click that landed on a decoration.
type ClickEvent struct {
	Buffer     *buffer.Buffer
	Decoration Decoration
	// Offset is the document offset of the decoration's first column.
	Offset int
	// Pos is the clicked document position.
	Pos buffer.Pos
}

// Extension bundles a decorator with the styles of its classes and a click
// handler. OnClick returns true when it handled the click; otherwise the
// click places the cursor as usual.
type Extension struct {
	Decorator Decorator
	Styles    map[string]lipgloss.Style
	OnClick   func(ev ClickEvent) bool
}

type rowDecoration struct {
	Decoration
	ext int
}

// decorations returns the decorations of every extension grouped by row,
// each row sorted by start column. Empty and classless spans are dropped.
func (m *Model) decorations() map[int][]rowDecoration {
	if len(m.cfg.Extensions) == 0 || m.buf == nil {
		return nil
	}
	out := make(map[int][]rowDecoration)
	for i, ext := range m.cfg.Extensions {
		if ext.Decorator == nil {
			continue
		}
		for _, d := range ext.Decorator.Decorate(m.buf) {
			if d.Class == "" || d.EndCol <= d.StartCol || d.Row < 0 || d.Row >= m.buf.Lines() {
				continue
			}
			out[d.Row] = append(out[d.Row], rowDecoration{Decoration: d, ext: i})
		}
	}
	for row := range out {
		sort.SliceStable(out[row], func(a, b int) bool {
			return out[row][a].StartCol < out[row][b].StartCol
		})
	}
	return out
}

// classStyle returns the style registered for class. The first extension
// declaring the class wins.
func (m *Model) classStyle(class string) (lipgloss.Style, bool) {
	for _, ext := range m.cfg.Extensions {
		if st, ok := ext.Styles[class]; ok {
			return st, true
		}
	}
	return lipgloss.Style{}, false
}

func decorationAt(decos []rowDecoration, col int) (rowDecoration, bool) {
	for _, d := range decos {
		if col >= d.StartCol && col < d.EndCol {
			return d, true
		}
	}
	return rowDecoration{}, false
}

// clickDecoration offers a click at p to the extensions whose decorations
// cover it, in extension order. It reports whether one handled it.
func (m *Model) clickDecoration(p buffer.Pos) bool {
	if m.cfg.ReadOnly {
		return false
	}
	for _, d := range m.decorations()[p.Row] {
		if p.Col < d.StartCol || p.Col >= d.EndCol {
			continue
		}
		ext := m.cfg.Extensions[d.ext]
		if ext.OnClick == nil {
			continue
		}
		off, _ := m.buf.OffsetFromPos(buffer.Pos{Row: d.Row, Col: d.StartCol}, buffer.OffsetClamp)
		ev := ClickEvent{Buffer: m.buf, Decoration: d.Decoration, Offset: off, Pos: p}
		if ext.OnClick(ev) {
			return true
		}
	}
	return false
}
