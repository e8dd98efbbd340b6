package lists

import (
	"unicode/utf8"

	"github.com/iw2rmb/listtoggle/buffer"
)

// EditKind tells whether a LineEdit removes or inserts a marker.
type EditKind uint8

const (
	RemoveMarker EditKind = iota
	InsertMarker
)

// LineEdit is the decision taken for one line.
type LineEdit struct {
	Kind EditKind
	Line buffer.Line
	// Width is the rune length removed by RemoveMarker.
	Width int
	// Text is the marker inserted by InsertMarker.
	Text string
}

// Change returns the document change for the edit.
func (e LineEdit) Change() buffer.ChangeSpec {
	if e.Kind == RemoveMarker {
		return buffer.ChangeSpec{From: e.Line.From, To: e.Line.From + e.Width}
	}
	return buffer.ChangeSpec{From: e.Line.From, To: e.Line.From, Insert: e.Text}
}

// shift returns how far the edit moves an endpoint at pos. Endpoints before
// the line are untouched; an endpoint inside a removed marker collapses to
// the line start.
func (e LineEdit) shift(pos int) int {
	if pos < e.Line.From {
		return 0
	}
	if e.Kind == RemoveMarker {
		return -min(pos-e.Line.From, e.Width)
	}
	return utf8.RuneCountInString(e.Text)
}

// Plan is the accumulated result of folding over the lines of a range.
type Plan struct {
	Edits []LineEdit
	// Index is the marker index of the last line visited.
	Index int
}

// step decides the edit for one line at index:
//   - marker in remove mode: drop the marker;
//   - no marker, whatever the mode: insert one;
//   - marker in add mode: leave the line alone.
func step(p Plan, line buffer.Line, index int, dedent bool, kind Kind, spec MarkerSpec) Plan {
	p.Index = index
	switch m := kind.Match(line.Text).(type) {
	case Marker:
		if dedent {
			p.Edits = append(p.Edits, LineEdit{Kind: RemoveMarker, Line: line, Width: m.Width})
		}
	case NoMarker:
		p.Edits = append(p.Edits, LineEdit{Kind: InsertMarker, Line: line, Text: spec.Text(index)})
	}
	return p
}

// PlanLines folds step over lines first..last (1-based, inclusive) in
// ascending order. The index starts at spec.Start() and grows by one per
// line, whether or not the line is edited.
func PlanLines(doc Document, first, last int, dedent bool, kind Kind, spec MarkerSpec) Plan {
	p := Plan{Index: spec.Start()}
	index := spec.Start()
	for n := first; n <= last; n++ {
		p = step(p, doc.Line(n), index, dedent, kind, spec)
		index++
	}
	return p
}

// Remap moves both endpoints of r by the net shift of every edit on a line
// starting at or before the endpoint. Shifts are measured against the
// original positions, so earlier edits never skew later ones.
func (p Plan) Remap(r buffer.SelectionRange) buffer.SelectionRange {
	anchor, head := r.Anchor, r.Head
	for _, e := range p.Edits {
		anchor += e.shift(r.Anchor)
		head += e.shift(r.Head)
	}
	return buffer.NewRange(anchor, head)
}

// Changes returns the document changes of the plan in line order.
func (p Plan) Changes() []buffer.ChangeSpec {
	if len(p.Edits) == 0 {
		return nil
	}
	out := make([]buffer.ChangeSpec, len(p.Edits))
	for i, e := range p.Edits {
		out[i] = e.Change()
	}
	return out
}
