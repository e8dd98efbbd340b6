package editor

import (
	"strconv"

	"github.com/iw2rmb/listtoggle/buffer"
	"github.com/iw2rmb/listtoggle/internal/grapheme"
)

// screenToDocPos maps viewport-local mouse coordinates to a document position.
//
// Coordinates are in terminal cells relative to the editor's viewport: (0,0)
// is the top-left of the visible content region. Gutter clicks map to the
// line start, cells past the line end map to the line end, and a cell inside
// a wide cluster maps to the cluster's first column.
func (m *Model) screenToDocPos(x, y int) buffer.Pos {
	if m.buf == nil {
		return buffer.Pos{}
	}
	row := clampInt(m.viewport.YOffset+y, 0, m.buf.Lines()-1)

	visualX := x - m.gutterWidth()
	if visualX < 0 {
		return buffer.Pos{Row: row, Col: 0}
	}
	visualX += m.xOffset

	line := m.buf.Line(row + 1)
	for _, c := range grapheme.Layout(line.Text, m.cfg.TabWidth) {
		if visualX < c.End() {
			return buffer.Pos{Row: row, Col: c.Col}
		}
	}
	return buffer.Pos{Row: row, Col: line.Len()}
}

// cellForCol returns the terminal cell, before horizontal scrolling, where
// the rune column col of row starts.
func (m *Model) cellForCol(row, col int) int {
	line := m.buf.Line(row + 1)
	end := 0
	for _, c := range grapheme.Layout(line.Text, m.cfg.TabWidth) {
		if col < c.Col+c.Runes {
			return c.Start
		}
		end = c.End()
	}
	return end
}

func (m *Model) gutterWidth() int {
	if !m.cfg.ShowLineNums || m.buf == nil {
		return 0
	}
	return lineNumberDigits(m.buf.Lines()) + 1
}

// contentWidth is the width left for text, or 0 when the viewport is not
// sized yet.
func (m *Model) contentWidth() int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - m.gutterWidth()
	return max(w, 0)
}

func lineNumberDigits(lineCount int) int {
	return len(strconv.Itoa(max(lineCount, 1)))
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
