package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/listtoggle/buffer"
	"github.com/iw2rmb/listtoggle/internal/grapheme"
)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	lineCount := m.buf.Lines()
	sel := m.buf.Selection()
	cursorRow := m.buf.Cursor().Row
	decos := m.decorations()

	digits := 0
	if m.cfg.ShowLineNums {
		digits = lineNumberDigits(lineCount)
	}
	width := m.contentWidth()
	left := max(m.xOffset, 0)

	out := make([]string, 0, lineCount)
	for row := 0; row < lineCount; row++ {
		var sb strings.Builder

		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if row == cursorRow {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		line := m.buf.Line(row + 1)
		for _, c := range grapheme.Layout(line.Text, m.cfg.TabWidth) {
			if c.Start < left {
				// A wide cluster cut by the left edge leaves blank cells.
				if c.End() > left {
					sb.WriteString(m.cfg.Style.Text.Render(strings.Repeat(" ", c.End()-left)))
				}
				continue
			}
			if width > 0 && c.End() > left+width {
				break
			}
			off := line.From + c.Col
			st := m.cellStyle(decos[row], c.Col, off, sel)
			sb.WriteString(st.Render(c.Text))
		}

		// The cursor after the last rune gets a blank cell of its own.
		if m.focused && hasHead(sel, line.To) {
			endCell := m.cellForCol(row, line.Len())
			if endCell >= left && (width == 0 || endCell < left+width) {
				st := m.cfg.Style.Cursor.Inherit(m.cfg.Style.Text)
				sb.WriteString(st.Render(" "))
			}
		}

		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// cellStyle layers the text style, a decoration class style, selection and
// cursor, in that order of increasing precedence.
func (m *Model) cellStyle(decos []rowDecoration, col, off int, sel buffer.Selection) lipgloss.Style {
	st := m.cfg.Style.Text
	if d, ok := decorationAt(decos, col); ok {
		if cs, ok := m.classStyle(d.Class); ok {
			st = cs.Inherit(st)
		}
	}
	if inSelection(sel, off) {
		st = m.cfg.Style.Selection.Inherit(st)
	}
	if m.focused && hasHead(sel, off) {
		st = m.cfg.Style.Cursor.Inherit(st)
	}
	return st
}

func inSelection(sel buffer.Selection, off int) bool {
	for _, r := range sel.Ranges {
		if off >= r.From() && off < r.To() {
			return true
		}
	}
	return false
}

func hasHead(sel buffer.Selection, off int) bool {
	for _, r := range sel.Ranges {
		if r.Head == off {
			return true
		}
	}
	return false
}
