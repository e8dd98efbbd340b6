package buffer

// ChangeSource identifies where a change originated.
type ChangeSource uint8

const (
	ChangeSourceLocal ChangeSource = iota
	ChangeSourceRemote
)

// SelectionState captures normalized main-range state at a point in time.
type SelectionState struct {
	Active bool
	Range  Range
}

// AppliedEdit describes one effective edit in a change transaction.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change is a normalized, versioned mutation payload.
type Change struct {
	Source          ChangeSource
	UserEvent       string
	VersionBefore   uint64
	VersionAfter    uint64
	SelectionBefore Selection
	SelectionAfter  Selection
	AppliedEdits    []AppliedEdit
}

// TextChanged reports whether the change edited the document.
func (c Change) TextChanged() bool { return len(c.AppliedEdits) > 0 }

type changeBuilder struct {
	source          ChangeSource
	userEvent       string
	versionBefore   uint64
	selectionBefore Selection
	appliedEdits    []AppliedEdit
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return cloneChange(b.lastChange), true
}

func cloneChange(in Change) Change {
	out := in
	out.SelectionBefore = in.SelectionBefore.clone()
	out.SelectionAfter = in.SelectionAfter.clone()
	out.AppliedEdits = append([]AppliedEdit(nil), in.AppliedEdits...)
	return out
}

// SelectionStateOf reports the main range of b as a position range.
func SelectionStateOf(b *Buffer) SelectionState {
	r, ok := b.SelectedRange()
	if !ok {
		return SelectionState{}
	}
	return SelectionState{Active: true, Range: r}
}

func (b *Buffer) beginChange(source ChangeSource, userEvent string) changeBuilder {
	return changeBuilder{
		source:          source,
		userEvent:       userEvent,
		versionBefore:   b.version,
		selectionBefore: b.sel.clone(),
	}
}

func (cb *changeBuilder) addAppliedEdit(edit AppliedEdit) {
	edit.RangeBefore = NormalizeRange(edit.RangeBefore)
	edit.RangeAfter = NormalizeRange(edit.RangeAfter)
	cb.appliedEdits = append(cb.appliedEdits, edit)
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		Source:          cb.source,
		UserEvent:       cb.userEvent,
		VersionBefore:   cb.versionBefore,
		VersionAfter:    b.version,
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  b.sel.clone(),
		AppliedEdits:    append([]AppliedEdit(nil), cb.appliedEdits...),
	}
	b.hasLastChange = true
}

// appliedEdit converts one applied change into position ranges: the
// before-range against the previous lines, the after-range against b.
func appliedEdit(prevLines [][]rune, prevStarts []int, b *Buffer, a appliedChange) AppliedEdit {
	from := a.change.From + a.shift
	to := from + a.change.insertLen()
	afterStart, _ := b.PosFromOffset(from, OffsetClamp)
	afterEnd, _ := b.PosFromOffset(to, OffsetClamp)
	return AppliedEdit{
		RangeBefore: Range{
			Start: offsetToPos(prevLines, prevStarts, a.change.From),
			End:   offsetToPos(prevLines, prevStarts, a.change.To),
		},
		RangeAfter:  Range{Start: afterStart, End: afterEnd},
		InsertText:  a.change.Insert,
		DeletedText: a.deleted,
	}
}

func replacementAppliedEdit(beforeText, afterText string) (AppliedEdit, bool) {
	if beforeText == afterText {
		return AppliedEdit{}, false
	}
	return AppliedEdit{
		RangeBefore: fullDocumentRange(beforeText),
		RangeAfter:  fullDocumentRange(afterText),
		InsertText:  afterText,
		DeletedText: beforeText,
	}, true
}

func fullDocumentRange(text string) Range {
	lines := splitLines(text)
	lastRow := len(lines) - 1
	return Range{
		Start: Pos{Row: 0, Col: 0},
		End:   Pos{Row: lastRow, Col: len(lines[lastRow])},
	}
}
