package lists

import "github.com/iw2rmb/listtoggle/buffer"

// Document is the read-only line access the togglers need.
type Document interface {
	LineAt(off int) buffer.Line
	Line(n int) buffer.Line
	Lines() int
}

// Target is an editable document with a selection. *buffer.Buffer
// implements it.
type Target interface {
	Document
	Selection() buffer.Selection
	Dispatch(tr buffer.Transaction)
}

// NodeQuery reports whether the offset at sits inside a list of the given
// kind in the document's syntax tree.
type NodeQuery interface {
	InList(doc Document, at int, kind Kind) bool
}

// QueryFunc adapts a function to NodeQuery.
type QueryFunc func(doc Document, at int, kind Kind) bool

func (f QueryFunc) InList(doc Document, at int, kind Kind) bool { return f(doc, at, kind) }

// Command is the key binding signature of the toggle entry points.
type Command func(t Target) bool

// Toggler builds and dispatches list toggles.
type Toggler struct {
	Query NodeQuery
}

// New returns a Toggler deciding add/remove mode with q. A nil q never
// reports list context, so toggles always add markers.
func New(q NodeQuery) *Toggler {
	return &Toggler{Query: q}
}

// ToggleBulletList turns the lines under each selection range into a bullet
// list, or removes their bullets when the range starts inside one.
func (t *Toggler) ToggleBulletList(target Target) bool {
	target.Dispatch(t.Transaction(target, target.Selection(), BulletList))
	return true
}

// ToggleOrderedList is ToggleBulletList for numbered lists.
func (t *Toggler) ToggleOrderedList(target Target) bool {
	target.Dispatch(t.Transaction(target, target.Selection(), OrderedList))
	return true
}

// Command returns the toggle entry point for kind.
func (t *Toggler) Command(kind Kind) Command {
	if kind == OrderedList {
		return t.ToggleOrderedList
	}
	return t.ToggleBulletList
}

// Transaction computes the toggle of kind for every range of sel without
// dispatching it.
func (t *Toggler) Transaction(doc Document, sel buffer.Selection, kind Kind) buffer.Transaction {
	tr := buffer.ChangeByRange(sel, func(r buffer.SelectionRange) buffer.RangeChange {
		return t.RangeChange(doc, r, kind)
	})
	tr.UserEvent = buffer.UserEventInput
	return tr
}

// RangeChange computes the edits and remapped range for one selection range.
func (t *Toggler) RangeChange(doc Document, r buffer.SelectionRange, kind Kind) buffer.RangeChange {
	first := doc.LineAt(r.From())
	last := first
	if !r.Empty() {
		last = doc.LineAt(r.To())
	}

	dedent := t.inList(doc, r.From(), kind)
	spec := inferSpec(doc, first, last, kind)
	plan := PlanLines(doc, first.Number, last.Number, dedent, kind, spec)

	return buffer.RangeChange{
		Range:   plan.Remap(r),
		Changes: plan.Changes(),
	}
}

func (t *Toggler) inList(doc Document, at int, kind Kind) bool {
	if t == nil || t.Query == nil {
		return false
	}
	return t.Query.InList(doc, at, kind)
}
