package buffer

import (
	"sort"
	"unicode/utf8"
)

// User event tags attached to transactions.
const (
	UserEventInput          = "input"
	UserEventType           = "input.type"
	UserEventPaste          = "input.paste"
	UserEventDeleteBackward = "delete.backward"
	UserEventDeleteForward  = "delete.forward"
	UserEventSelect         = "select"
	UserEventUndo           = "undo"
	UserEventRedo           = "redo"
)

// ChangeSpec replaces the offsets [From, To) with Insert. From == To inserts,
// an empty Insert deletes.
type ChangeSpec struct {
	From   int
	To     int
	Insert string
}

func (c ChangeSpec) insertLen() int { return utf8.RuneCountInString(c.Insert) }

func (c ChangeSpec) delta() int { return c.insertLen() - (c.To - c.From) }

// RangeChange is the result of rewriting one selection range: the changes
// to apply and the range to select afterwards, expressed in the coordinates
// of the document with only these changes applied.
type RangeChange struct {
	Range   SelectionRange
	Changes []ChangeSpec
}

// Transaction is a batch of changes against one document state, applied
// atomically by Dispatch.
//
// Changes are all expressed against the document before the transaction.
// A nil Selection keeps the current selection, mapped through the changes.
type Transaction struct {
	Changes   []ChangeSpec
	Selection *Selection
	UserEvent string
}

// ChangeByRange calls fn for each range of sel in ascending position order
// and merges the results into one Transaction.
//
// Each returned range only accounts for its own changes; ChangeByRange maps
// it through the changes produced for every other range, so the resulting
// selection is in post-transaction coordinates.
func ChangeByRange(sel Selection, fn func(SelectionRange) RangeChange) Transaction {
	type result struct {
		idx int
		rc  RangeChange
	}

	order := make([]int, len(sel.Ranges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return sel.Ranges[order[i]].From() < sel.Ranges[order[j]].From()
	})

	results := make([]result, 0, len(order))
	for _, i := range order {
		rc := fn(sel.Ranges[i])
		rc.Changes = sortChanges(rc.Changes)
		results = append(results, result{idx: i, rc: rc})
	}

	var all []ChangeSpec
	next := Selection{Ranges: make([]SelectionRange, len(sel.Ranges)), Main: sel.Main}
	for pos, res := range results {
		var others []ChangeSpec
		for other, o := range results {
			if other == pos {
				continue
			}
			// Inserts at the same offset keep range order.
			assoc := 1
			if other < pos {
				assoc = -1
			}
			for _, c := range o.rc.Changes {
				others = append(others, ChangeSpec{
					From:   mapPos(res.rc.Changes, c.From, assoc),
					To:     mapPos(res.rc.Changes, c.To, assoc),
					Insert: c.Insert,
				})
			}
		}
		next.Ranges[res.idx] = res.rc.Range.mapThrough(sortChanges(others))
		all = append(all, res.rc.Changes...)
	}

	return Transaction{
		Changes:   sortChanges(all),
		Selection: &next,
	}
}

// Dispatch applies tr as one atomic step. Transactions that change neither
// text nor selection are ignored.
func (b *Buffer) Dispatch(tr Transaction) {
	prevLines := b.lines
	prevStarts := b.starts
	nextLines, applied := applyChanges(b.lines, b.starts, b.clampChanges(tr.Changes))
	textChanged := len(applied) > 0

	var next Selection
	if tr.Selection != nil {
		next = tr.Selection.clone()
	} else {
		effective := make([]ChangeSpec, len(applied))
		for i, a := range applied {
			effective[i] = a.change
		}
		next = b.sel.mapThrough(effective)
	}

	if textChanged {
		prev := b.snapshot()
		cb := b.beginChange(ChangeSourceLocal, tr.UserEvent)
		b.setLines(nextLines)
		b.sel = next.normalize(b.length)
		b.version++
		b.recordUndo(prev)
		for _, a := range applied {
			cb.addAppliedEdit(appliedEdit(prevLines, prevStarts, b, a))
		}
		b.commitChange(cb)
		return
	}

	next = next.normalize(b.length)
	if next.equal(b.sel) {
		return
	}
	cb := b.beginChange(ChangeSourceLocal, tr.UserEvent)
	b.sel = next
	b.version++
	b.commitChange(cb)
}

// mapPos maps pos through changes, which must be sorted and expressed in the
// same coordinate space as pos. assoc decides which side of an insertion at
// pos the result lands on: negative stays before, positive moves after.
func mapPos(changes []ChangeSpec, pos int, assoc int) int {
	delta := 0
	for _, c := range changes {
		switch {
		case c.From > pos:
			return pos + delta
		case c.From == c.To:
			if c.From < pos || assoc > 0 {
				delta += c.insertLen()
			}
		case c.To <= pos:
			delta += c.delta()
		default:
			// pos sits inside the replaced span.
			if assoc > 0 {
				return c.From + delta + c.insertLen()
			}
			return c.From + delta
		}
	}
	return pos + delta
}

func sortChanges(in []ChangeSpec) []ChangeSpec {
	if len(in) == 0 {
		return nil
	}
	out := make([]ChangeSpec, len(in))
	copy(out, in)
	for i, c := range out {
		if c.To < c.From {
			out[i].From, out[i].To = c.To, c.From
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].From < out[j].From })
	return out
}

// clampChanges sorts changes, clamps them into the document, and trims
// spans that overlap an earlier change.
func (b *Buffer) clampChanges(in []ChangeSpec) []ChangeSpec {
	sorted := sortChanges(in)
	out := make([]ChangeSpec, 0, len(sorted))
	floor := 0
	for _, c := range sorted {
		c.From = clampInt(c.From, floor, b.length)
		c.To = clampInt(c.To, c.From, b.length)
		if c.From == c.To && c.Insert == "" {
			continue
		}
		out = append(out, c)
		floor = c.To
	}
	return out
}

type appliedChange struct {
	change  ChangeSpec
	deleted string
	shift   int // net offset shift introduced by earlier changes
}

// applyChanges builds the next line set from sorted, non-overlapping
// changes. Changes whose replacement equals the deleted text are dropped.
func applyChanges(lines [][]rune, starts []int, changes []ChangeSpec) ([][]rune, []appliedChange) {
	if len(changes) == 0 {
		return lines, nil
	}

	doc := make([]rune, 0, len(starts)*16)
	for i, line := range lines {
		if i > 0 {
			doc = append(doc, '\n')
		}
		doc = append(doc, line...)
	}

	out := make([]rune, 0, len(doc))
	var applied []appliedChange
	cur, shift := 0, 0
	for _, c := range changes {
		deleted := string(doc[c.From:c.To])
		if deleted == c.Insert {
			continue
		}
		out = append(out, doc[cur:c.From]...)
		out = append(out, []rune(c.Insert)...)
		cur = c.To
		applied = append(applied, appliedChange{change: c, deleted: deleted, shift: shift})
		shift += c.delta()
	}
	if len(applied) == 0 {
		return lines, nil
	}
	out = append(out, doc[cur:]...)
	return splitLines(string(out)), applied
}
