package buffer

import (
	"sort"
	"strings"
)

type Options struct {
	HistoryLimit int // default: 1000
}

// Buffer is the pure document state: text and selection.
type Buffer struct {
	lines  [][]rune
	starts []int // offset of each row's first rune
	length int

	version uint64
	sel     Selection

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	b := &Buffer{
		sel: Cursor(0),
		opt: opt,
	}
	b.setLines(splitLines(text))
	return b
}

func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

func (b *Buffer) Version() uint64 { return b.version }

// Len returns the document length in offsets.
func (b *Buffer) Len() int { return b.length }

// Lines returns the number of lines; it is always at least 1.
func (b *Buffer) Lines() int { return len(b.lines) }

// Line returns the line with the given 1-based number, clamped into the
// document.
func (b *Buffer) Line(n int) Line {
	row := clampInt(n-1, 0, len(b.lines)-1)
	from := b.starts[row]
	return Line{
		Number: row + 1,
		From:   from,
		To:     from + len(b.lines[row]),
		Text:   string(b.lines[row]),
	}
}

// LineAt returns the line containing off. Offsets outside the document are
// clamped.
func (b *Buffer) LineAt(off int) Line {
	off = clampInt(off, 0, b.length)
	// First row whose start is beyond off, minus one.
	row := sort.Search(len(b.starts), func(i int) bool { return b.starts[i] > off }) - 1
	return b.Line(row + 1)
}

// Selection returns a copy of the current selection.
func (b *Buffer) Selection() Selection { return b.sel.clone() }

// Cursor returns the head of the main selection range as a position.
func (b *Buffer) Cursor() Pos {
	p, _ := b.PosFromOffset(b.sel.MainRange().Head, OffsetClamp)
	return p
}

// SelectedRange returns the main range as a normalized position range. ok is
// false when the main range is empty.
func (b *Buffer) SelectedRange() (Range, bool) {
	main := b.sel.MainRange()
	if main.Empty() {
		return Range{}, false
	}
	start, _ := b.PosFromOffset(main.From(), OffsetClamp)
	end, _ := b.PosFromOffset(main.To(), OffsetClamp)
	return Range{Start: start, End: end}, true
}

// SetCursor collapses the selection to a single cursor at p.
func (b *Buffer) SetCursor(p Pos) {
	off, _ := b.OffsetFromPos(p, OffsetClamp)
	b.Select(Cursor(off))
}

// SetSelection selects r as the only range. r.Start becomes the anchor and
// r.End the head, so the direction is preserved.
func (b *Buffer) SetSelection(r Range) {
	anchor, _ := b.OffsetFromPos(r.Start, OffsetClamp)
	head, _ := b.OffsetFromPos(r.End, OffsetClamp)
	b.Select(Single(anchor, head))
}

// Select replaces the selection without touching the text.
func (b *Buffer) Select(sel Selection) {
	b.Dispatch(Transaction{Selection: &sel, UserEvent: UserEventSelect})
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func (b *Buffer) setLines(lines [][]rune) {
	b.lines = lines
	b.starts = make([]int, len(lines))
	off := 0
	for i, line := range lines {
		b.starts[i] = off
		off += len(line) + 1
	}
	b.length = off - 1
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
