package buffer

import "unicode/utf8"

// InsertText replaces every selection range with s and leaves a cursor after
// each insertion.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		b.DeleteSelection()
		return
	}
	b.replaceRanges(s, UserEventType)
}

// Paste inserts s like InsertText but tags the change as a paste.
func (b *Buffer) Paste(s string) {
	if s == "" {
		return
	}
	b.replaceRanges(s, UserEventPaste)
}

func (b *Buffer) replaceRanges(s, userEvent string) {
	n := utf8.RuneCountInString(s)
	tr := ChangeByRange(b.sel, func(r SelectionRange) RangeChange {
		return RangeChange{
			Range:   NewRange(r.From()+n, r.From()+n),
			Changes: []ChangeSpec{{From: r.From(), To: r.To(), Insert: s}},
		}
	})
	tr.UserEvent = userEvent
	b.Dispatch(tr)
}

// InsertNewline inserts a line break at each range.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics to each range: non-empty ranges
// are deleted, cursors remove the rune before them.
func (b *Buffer) DeleteBackward() {
	tr := ChangeByRange(b.sel, func(r SelectionRange) RangeChange {
		from, to := r.From(), r.To()
		if r.Empty() {
			if from == 0 {
				return RangeChange{Range: r}
			}
			from--
		}
		return RangeChange{
			Range:   NewRange(from, from),
			Changes: []ChangeSpec{{From: from, To: to}},
		}
	})
	tr.UserEvent = UserEventDeleteBackward
	b.Dispatch(tr)
}

// DeleteForward applies delete-key semantics to each range.
func (b *Buffer) DeleteForward() {
	tr := ChangeByRange(b.sel, func(r SelectionRange) RangeChange {
		from, to := r.From(), r.To()
		if r.Empty() {
			if to == b.length {
				return RangeChange{Range: r}
			}
			to++
		}
		return RangeChange{
			Range:   NewRange(from, from),
			Changes: []ChangeSpec{{From: from, To: to}},
		}
	})
	tr.UserEvent = UserEventDeleteForward
	b.Dispatch(tr)
}

// DeleteSelection deletes every non-empty range.
func (b *Buffer) DeleteSelection() {
	tr := ChangeByRange(b.sel, func(r SelectionRange) RangeChange {
		if r.Empty() {
			return RangeChange{Range: r}
		}
		return RangeChange{
			Range:   NewRange(r.From(), r.From()),
			Changes: []ChangeSpec{{From: r.From(), To: r.To()}},
		}
	})
	tr.UserEvent = UserEventDeleteBackward
	b.Dispatch(tr)
}

// TextInRange returns the text between two offsets.
func (b *Buffer) TextInRange(from, to int) string {
	from = clampInt(from, 0, b.length)
	to = clampInt(to, 0, b.length)
	if to < from {
		from, to = to, from
	}
	start := offsetToPos(b.lines, b.starts, from)
	end := offsetToPos(b.lines, b.starts, to)
	if start.Row == end.Row {
		return string(b.lines[start.Row][start.Col:end.Col])
	}

	out := make([]rune, 0, to-from)
	out = append(out, b.lines[start.Row][start.Col:]...)
	for row := start.Row + 1; row < end.Row; row++ {
		out = append(out, '\n')
		out = append(out, b.lines[row]...)
	}
	out = append(out, '\n')
	out = append(out, b.lines[end.Row][:end.Col]...)
	return string(out)
}
