package buffer

import "sort"

// SelectionRange is an (anchor, head) pair of document offsets. The anchor is
// where the range started and the head is where it currently extends to.
type SelectionRange struct {
	Anchor int
	Head   int
}

// NewRange returns a selection range from anchor to head.
func NewRange(anchor, head int) SelectionRange {
	return SelectionRange{Anchor: anchor, Head: head}
}

func (r SelectionRange) From() int { return min(r.Anchor, r.Head) }

func (r SelectionRange) To() int { return max(r.Anchor, r.Head) }

func (r SelectionRange) Empty() bool { return r.Anchor == r.Head }

func (r SelectionRange) mapThrough(changes []ChangeSpec) SelectionRange {
	return SelectionRange{
		Anchor: mapPos(changes, r.Anchor, -1),
		Head:   mapPos(changes, r.Head, -1),
	}
}

// Selection is a set of ranges, one of which is the main range.
type Selection struct {
	Ranges []SelectionRange
	Main   int
}

// Cursor returns a selection holding a single empty range at off.
func Cursor(off int) Selection {
	return Single(off, off)
}

// Single returns a selection holding one range.
func Single(anchor, head int) Selection {
	return Selection{Ranges: []SelectionRange{{Anchor: anchor, Head: head}}}
}

// MainRange returns the main range. An empty selection reports a cursor at 0.
func (s Selection) MainRange() SelectionRange {
	if len(s.Ranges) == 0 {
		return SelectionRange{}
	}
	return s.Ranges[clampInt(s.Main, 0, len(s.Ranges)-1)]
}

func (s Selection) clone() Selection {
	return Selection{Ranges: append([]SelectionRange(nil), s.Ranges...), Main: s.Main}
}

func (s Selection) equal(o Selection) bool {
	if s.Main != o.Main || len(s.Ranges) != len(o.Ranges) {
		return false
	}
	for i := range s.Ranges {
		if s.Ranges[i] != o.Ranges[i] {
			return false
		}
	}
	return true
}

func (s Selection) mapThrough(changes []ChangeSpec) Selection {
	out := s.clone()
	for i, r := range out.Ranges {
		out.Ranges[i] = r.mapThrough(changes)
	}
	return out
}

// normalize clamps every range into [0, length], sorts ranges by position,
// and merges ranges that overlap. The main range is tracked through both
// steps.
func (s Selection) normalize(length int) Selection {
	if len(s.Ranges) == 0 {
		return Cursor(0)
	}

	type indexed struct {
		r    SelectionRange
		main bool
	}
	main := clampInt(s.Main, 0, len(s.Ranges)-1)
	items := make([]indexed, len(s.Ranges))
	for i, r := range s.Ranges {
		items[i] = indexed{
			r:    SelectionRange{Anchor: clampInt(r.Anchor, 0, length), Head: clampInt(r.Head, 0, length)},
			main: i == main,
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].r.From() < items[j].r.From() })

	out := Selection{Ranges: make([]SelectionRange, 0, len(items))}
	for _, it := range items {
		n := len(out.Ranges)
		if n > 0 {
			last := out.Ranges[n-1]
			overlaps := it.r.From() < last.To() || (it.r.From() == last.To() && (it.r.Empty() || last.Empty()))
			if overlaps {
				from, to := last.From(), max(last.To(), it.r.To())
				merged := SelectionRange{Anchor: from, Head: to}
				if last.Head < last.Anchor {
					merged = SelectionRange{Anchor: to, Head: from}
				}
				out.Ranges[n-1] = merged
				if it.main {
					out.Main = n - 1
				}
				continue
			}
		}
		if it.main {
			out.Main = n
		}
		out.Ranges = append(out.Ranges, it.r)
	}
	return out
}
