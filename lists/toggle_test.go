package lists

import (
	"reflect"
	"testing"

	"github.com/iw2rmb/listtoggle/buffer"
)

// markerQuery stands in for a syntax tree: a position is inside a list when
// its line carries a marker of that kind.
func markerQuery() NodeQuery {
	return QueryFunc(func(doc Document, at int, kind Kind) bool {
		_, ok := kind.Match(doc.LineAt(at).Text).(Marker)
		return ok
	})
}

// strictDoc fails the test when a line outside the document is requested.
type strictDoc struct {
	*buffer.Buffer
	t *testing.T
}

func (d strictDoc) Line(n int) buffer.Line {
	if n < 1 || n > d.Lines() {
		d.t.Fatalf("read of line %d outside 1..%d", n, d.Lines())
	}
	return d.Buffer.Line(n)
}

func newTarget(t *testing.T, text string, sel buffer.Selection) strictDoc {
	b := buffer.New(text, buffer.Options{})
	b.Select(sel)
	return strictDoc{Buffer: b, t: t}
}

func TestToggleBulletList(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		sel      buffer.Selection
		wantText string
		wantSel  buffer.SelectionRange
	}{
		{
			name:     "default glyph on plain paragraph",
			text:     "one\ntwo",
			sel:      buffer.Single(0, 7),
			wantText: "- one\n- two",
			wantSel:  buffer.NewRange(2, 11),
		},
		{
			name:     "inherits glyph from the line above",
			text:     "+ foo\nbar",
			sel:      buffer.Cursor(7),
			wantText: "+ foo\n+ bar",
			wantSel:  buffer.NewRange(9, 9),
		},
		{
			name:     "inherits glyph from the line below",
			text:     "bar\n* foo",
			sel:      buffer.Cursor(0),
			wantText: "* bar\n* foo",
			wantSel:  buffer.NewRange(2, 2),
		},
		{
			name:     "removes mixed glyphs inside a list",
			text:     "* a\n+ b\n- c",
			sel:      buffer.Single(2, 11),
			wantText: "a\nb\nc",
			wantSel:  buffer.NewRange(0, 5),
		},
		{
			name:     "cursor mid-word shifts by inserted marker",
			text:     "hello",
			sel:      buffer.Cursor(3),
			wantText: "- hello",
			wantSel:  buffer.NewRange(5, 5),
		},
		{
			name:     "add mode leaves marked lines alone",
			text:     "a\n- b\nc",
			sel:      buffer.Single(0, 7),
			wantText: "- a\n- b\n- c",
			wantSel:  buffer.NewRange(2, 11),
		},
		{
			name:     "remove mode still inserts on unmarked lines",
			text:     "- a\nb",
			sel:      buffer.Single(0, 5),
			wantText: "a\n- b",
			wantSel:  buffer.NewRange(0, 5),
		},
		{
			name:     "last line of the document",
			text:     "a\nb",
			sel:      buffer.Cursor(3),
			wantText: "a\n- b",
			wantSel:  buffer.NewRange(5, 5),
		},
	}
	for _, tc := range cases {
		target := newTarget(t, tc.text, tc.sel)
		if ok := New(markerQuery()).ToggleBulletList(target); !ok {
			t.Fatalf("%s: expected handled", tc.name)
		}
		if got := target.Text(); got != tc.wantText {
			t.Fatalf("%s: text=%q, want %q", tc.name, got, tc.wantText)
		}
		if got := target.Selection().MainRange(); got != tc.wantSel {
			t.Fatalf("%s: selection=%+v, want %+v", tc.name, got, tc.wantSel)
		}
	}
}

func TestToggleBulletList_RoundTrip(t *testing.T) {
	const text = "alpha\n  beta\n\ngamma"
	target := newTarget(t, text, buffer.Single(0, len(text)))
	toggler := New(markerQuery())

	toggler.ToggleBulletList(target)
	if got, want := target.Text(), "- alpha\n-   beta\n- \n- gamma"; got != want {
		t.Fatalf("after add: text=%q, want %q", got, want)
	}

	toggler.ToggleBulletList(target)
	if got := target.Text(); got != text {
		t.Fatalf("after remove: text=%q, want %q", got, text)
	}
	if got, want := target.Selection().MainRange(), buffer.NewRange(0, len(text)); got != want {
		t.Fatalf("selection=%+v, want %+v", got, want)
	}
}

func TestToggleOrderedList(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		sel      buffer.Selection
		wantText string
		wantSel  buffer.SelectionRange
	}{
		{
			name:     "contiguous numbering from one",
			text:     "a\nb\nc",
			sel:      buffer.Single(0, 5),
			wantText: "1. a\n2. b\n3. c",
			wantSel:  buffer.NewRange(3, 14),
		},
		{
			name:     "continues the list above with its delimiter",
			text:     "5) item\nx\ny",
			sel:      buffer.Single(8, 11),
			wantText: "5) item\n6) x\n7) y",
			wantSel:  buffer.NewRange(11, 17),
		},
		{
			name:     "marker width grows past nine",
			text:     "8. a\nb\nc",
			sel:      buffer.Single(5, 8),
			wantText: "8. a\n9. b\n10. c",
			wantSel:  buffer.NewRange(8, 15),
		},
		{
			name:     "precedes the list below",
			text:     "x\n3. y",
			sel:      buffer.Cursor(1),
			wantText: "2. x\n3. y",
			wantSel:  buffer.NewRange(4, 4),
		},
		{
			name:     "cursor inside removed marker collapses to line start",
			text:     "10. abc",
			sel:      buffer.Cursor(2),
			wantText: "abc",
			wantSel:  buffer.NewRange(0, 0),
		},
		{
			name:     "cursor after removed marker shifts by its width",
			text:     "10. abc",
			sel:      buffer.Cursor(6),
			wantText: "abc",
			wantSel:  buffer.NewRange(2, 2),
		},
		{
			name:     "index advances across removed lines",
			text:     "1. a\nb\n7. c",
			sel:      buffer.Single(0, 11),
			wantText: "a\n2. b\nc",
			wantSel:  buffer.NewRange(0, 8),
		},
	}
	for _, tc := range cases {
		target := newTarget(t, tc.text, tc.sel)
		if ok := New(markerQuery()).ToggleOrderedList(target); !ok {
			t.Fatalf("%s: expected handled", tc.name)
		}
		if got := target.Text(); got != tc.wantText {
			t.Fatalf("%s: text=%q, want %q", tc.name, got, tc.wantText)
		}
		if got := target.Selection().MainRange(); got != tc.wantSel {
			t.Fatalf("%s: selection=%+v, want %+v", tc.name, got, tc.wantSel)
		}
	}
}

func TestToggle_MultipleRangesInferIndependently(t *testing.T) {
	target := newTarget(t, "a\n\nb", buffer.Selection{Ranges: []buffer.SelectionRange{
		buffer.NewRange(0, 0),
		buffer.NewRange(3, 3),
	}})

	New(markerQuery()).ToggleOrderedList(target)

	if got, want := target.Text(), "1. a\n\n1. b"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	want := []buffer.SelectionRange{buffer.NewRange(3, 3), buffer.NewRange(9, 9)}
	if got := target.Selection().Ranges; !reflect.DeepEqual(got, want) {
		t.Fatalf("ranges=%+v, want %+v", got, want)
	}

	ch, ok := target.LastChange()
	if !ok {
		t.Fatalf("expected last change")
	}
	if got, want := ch.UserEvent, buffer.UserEventInput; got != want {
		t.Fatalf("user event=%q, want %q", got, want)
	}
	if got, want := ch.VersionAfter-ch.VersionBefore, uint64(1); got != want {
		t.Fatalf("version delta=%d, want %d", got, want)
	}
}

func TestToggle_NilQueryAlwaysAdds(t *testing.T) {
	target := newTarget(t, "- a", buffer.Cursor(0))
	New(nil).ToggleBulletList(target)
	if got, want := target.Text(), "- a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if target.CanUndo() {
		t.Fatalf("expected no edit for an already marked line in add mode")
	}
}

func TestToggle_ModeComesFromRangeStartOnly(t *testing.T) {
	var asked []int
	q := QueryFunc(func(doc Document, at int, kind Kind) bool {
		asked = append(asked, at)
		return false
	})
	target := newTarget(t, "a\nb\nc", buffer.Single(5, 1))

	New(q).ToggleBulletList(target)

	if want := []int{1}; !reflect.DeepEqual(asked, want) {
		t.Fatalf("queried offsets=%v, want %v", asked, want)
	}
}

func TestToggle_SingleLineDocumentStaysInBounds(t *testing.T) {
	for _, kind := range []Kind{BulletList, OrderedList} {
		target := newTarget(t, "only", buffer.Cursor(2))
		New(markerQuery()).Command(kind)(target)
		New(markerQuery()).Command(kind)(target)
		if got, want := target.Text(), "only"; got != want {
			t.Fatalf("%v: text=%q, want %q", kind, got, want)
		}
	}
}

func TestPlanLines_ThreadsIndexExplicitly(t *testing.T) {
	b := buffer.New("1. a\nb\nc", buffer.Options{})
	spec := OrderedSpec{StartIndex: 4, Delimiter: '.'}

	p := PlanLines(b, 1, 3, false, OrderedList, spec)

	if got, want := p.Index, 6; got != want {
		t.Fatalf("index=%d, want %d", got, want)
	}
	want := []LineEdit{
		{Kind: InsertMarker, Line: b.Line(2), Text: "5. "},
		{Kind: InsertMarker, Line: b.Line(3), Text: "6. "},
	}
	if !reflect.DeepEqual(p.Edits, want) {
		t.Fatalf("edits=%+v, want %+v", p.Edits, want)
	}
	wantChanges := []buffer.ChangeSpec{{From: 5, To: 5, Insert: "5. "}, {From: 7, To: 7, Insert: "6. "}}
	if got := p.Changes(); !reflect.DeepEqual(got, wantChanges) {
		t.Fatalf("changes=%+v, want %+v", got, wantChanges)
	}
}

func TestTransaction_DoesNotDispatch(t *testing.T) {
	b := buffer.New("a", buffer.Options{})
	v := b.Version()

	tr := New(nil).Transaction(b, b.Selection(), BulletList)

	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
	if got, want := tr.Changes, []buffer.ChangeSpec{{From: 0, To: 0, Insert: "- "}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("changes=%+v, want %+v", got, want)
	}
	if got, want := tr.UserEvent, buffer.UserEventInput; got != want {
		t.Fatalf("user event=%q, want %q", got, want)
	}
}
