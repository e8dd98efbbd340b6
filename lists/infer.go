package lists

import (
	"strconv"

	"github.com/iw2rmb/listtoggle/buffer"
)

// MarkerSpec produces the marker text inserted on a line.
type MarkerSpec interface {
	// Start is the index given to the first line of a range.
	Start() int
	// Text returns the marker for the line at index, trailing space included.
	Text(index int) string
}

// BulletSpec inserts the same glyph on every line.
type BulletSpec struct {
	Marker string
}

// DefaultBullet is used when no neighbouring line carries a bullet.
var DefaultBullet = BulletSpec{Marker: "- "}

func (s BulletSpec) Start() int { return 0 }

func (s BulletSpec) Text(int) string { return s.Marker }

// OrderedSpec numbers lines from Start with a fixed delimiter.
type OrderedSpec struct {
	StartIndex int
	Delimiter  byte
}

// DefaultOrdered is used when no neighbouring line carries a number.
var DefaultOrdered = OrderedSpec{StartIndex: 1, Delimiter: '.'}

func (s OrderedSpec) Start() int { return s.StartIndex }

func (s OrderedSpec) Text(index int) string {
	return strconv.Itoa(index) + string(s.Delimiter) + " "
}

// InferBullet picks the bullet glyph for the lines first..last: the glyph of
// the line above, else the glyph of the line below, else "- ".
func InferBullet(doc Document, first, last buffer.Line) BulletSpec {
	if first.Number > 1 {
		if m, ok := MatchBullet(doc.Line(first.Number - 1).Text).(Marker); ok {
			return BulletSpec{Marker: m.Captured + " "}
		}
	}
	if last.Number < doc.Lines() {
		if m, ok := MatchBullet(doc.Line(last.Number + 1).Text).(Marker); ok {
			return BulletSpec{Marker: m.Captured + " "}
		}
	}
	return DefaultBullet
}

// InferOrdered picks the start number and delimiter for the lines
// first..last. A numbered line above continues its list (n+1); otherwise a
// numbered line below is preceded (n-1). The delimiter is copied from
// whichever neighbour matched. A start that does not resolve to a positive
// number falls back to 1, and a missing delimiter to ".".
func InferOrdered(doc Document, first, last buffer.Line) OrderedSpec {
	var spec OrderedSpec
	if first.Number > 1 {
		if m, ok := MatchOrdered(doc.Line(first.Number - 1).Text).(Marker); ok {
			if n, err := strconv.Atoi(m.Captured); err == nil {
				spec = OrderedSpec{StartIndex: n + 1, Delimiter: m.Delimiter}
			}
		}
	}
	if spec.StartIndex <= 0 && last.Number < doc.Lines() {
		if m, ok := MatchOrdered(doc.Line(last.Number + 1).Text).(Marker); ok {
			if n, err := strconv.Atoi(m.Captured); err == nil {
				spec = OrderedSpec{StartIndex: n - 1, Delimiter: m.Delimiter}
			}
		}
	}
	if spec.StartIndex <= 0 {
		spec.StartIndex = DefaultOrdered.StartIndex
	}
	if spec.Delimiter == 0 {
		spec.Delimiter = DefaultOrdered.Delimiter
	}
	return spec
}

func inferSpec(doc Document, first, last buffer.Line, kind Kind) MarkerSpec {
	if kind == OrderedList {
		return InferOrdered(doc, first, last)
	}
	return InferBullet(doc, first, last)
}
