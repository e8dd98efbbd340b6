package syntax

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/iw2rmb/listtoggle/lists"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.TaskList))

// ListSpan is the line range covered by one list node, 1-based and
// inclusive.
type ListSpan struct {
	Kind      lists.Kind
	FirstLine int
	LastLine  int
}

// TaskMarker is a task list checkbox. Line is 1-based, Col is the rune
// column of the opening bracket.
type TaskMarker struct {
	Line    int
	Col     int
	Checked bool
}

// Tree is a parsed document.
type Tree struct {
	src        []byte
	lineStarts []int
	spans      []ListSpan
	tasks      []TaskMarker
	// itemLines holds the marker line of every list item. Items without
	// content blocks ("- ", "1. ") have no source segments, so this
	// is the only line they contribute to their list.
	itemLines map[*ast.ListItem]int
}

// Parse parses src as Markdown with task lists enabled.
func Parse(src string) *Tree {
	t := &Tree{src: []byte(src), itemLines: make(map[*ast.ListItem]int)}
	t.lineStarts = append(t.lineStarts, 0)
	for i, c := range t.src {
		if c == '\n' {
			t.lineStarts = append(t.lineStarts, i+1)
		}
	}

	root := markdown.Parser().Parse(text.NewReader(t.src))
	var found []*ast.List
	seen := 0 // last line covered by a block visited so far
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.List:
			found = append(found, node)
		case *ast.ListItem:
			line := t.itemLine(node, seen)
			t.itemLines[node] = line
			seen = max(seen, line)
		case *east.TaskCheckBox:
			if m, ok := t.taskMarker(node); ok {
				t.tasks = append(t.tasks, m)
			}
		}
		if n.Type() == ast.TypeBlock {
			if _, hi, ok := ownSegments(n); ok {
				seen = max(seen, t.lineOf(hi))
			}
		}
		return ast.WalkContinue, nil
	})
	for _, list := range found {
		if span, ok := t.listSpan(list); ok {
			t.spans = append(t.spans, span)
		}
	}
	return t
}

// Lists returns the spans of every list node in document order, outer lists
// before the lists nested in them.
func (t *Tree) Lists() []ListSpan {
	return append([]ListSpan(nil), t.spans...)
}

// InList reports whether the 1-based line lies inside a list of kind, at any
// nesting depth.
func (t *Tree) InList(line int, kind lists.Kind) bool {
	for _, s := range t.spans {
		if s.Kind == kind && line >= s.FirstLine && line <= s.LastLine {
			return true
		}
	}
	return false
}

// TaskMarkers returns every task checkbox in document order.
func (t *Tree) TaskMarkers() []TaskMarker {
	return append([]TaskMarker(nil), t.tasks...)
}

func (t *Tree) listSpan(list *ast.List) (ListSpan, bool) {
	first, last := -1, -1
	cover := func(line int) {
		if first < 0 || line < first {
			first = line
		}
		last = max(last, line)
	}
	_ = ast.Walk(list, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if item, ok := n.(*ast.ListItem); ok {
			if line, ok := t.itemLines[item]; ok {
				cover(line)
			}
		}
		if n.Type() == ast.TypeBlock {
			if lo, hi, ok := ownSegments(n); ok {
				cover(t.lineOf(lo))
				cover(t.lineOf(hi))
			}
		}
		return ast.WalkContinue, nil
	})
	if first < 0 {
		return ListSpan{}, false
	}

	kind := lists.BulletList
	if list.IsOrdered() {
		kind = lists.OrderedList
	}
	return ListSpan{Kind: kind, FirstLine: first, LastLine: last}, true
}

// itemLine finds the line holding item's marker: the first marker line
// after seen and not after the item's first content line. An item without
// content takes the first marker line after seen.
func (t *Tree) itemLine(item *ast.ListItem, seen int) int {
	kind := lists.BulletList
	if list, ok := item.Parent().(*ast.List); ok && list.IsOrdered() {
		kind = lists.OrderedList
	}

	limit := len(t.lineStarts)
	lo, _, hasContent := segmentRange(item)
	if hasContent {
		limit = t.lineOf(lo)
	}
	for n := seen + 1; n <= limit; n++ {
		if isMarkerLine(t.lineText(n), kind) {
			return n
		}
	}
	if hasContent {
		return limit
	}
	return min(seen+1, len(t.lineStarts))
}

// segmentRange returns the smallest start and largest last byte offset of
// the source segments of n and its descendant blocks.
func segmentRange(n ast.Node) (lo, hi int, ok bool) {
	lo, hi = -1, -1
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || c.Type() != ast.TypeBlock {
			return ast.WalkContinue, nil
		}
		if l, h, ok := ownSegments(c); ok {
			if lo < 0 || l < lo {
				lo = l
			}
			hi = max(hi, h)
		}
		return ast.WalkContinue, nil
	})
	return lo, hi, lo >= 0
}

// ownSegments is segmentRange for the lines of n alone.
func ownSegments(n ast.Node) (lo, hi int, ok bool) {
	lines := n.Lines()
	if lines == nil || lines.Len() == 0 {
		return 0, 0, false
	}
	lo, hi = -1, -1
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		if lo < 0 || seg.Start < lo {
			lo = seg.Start
		}
		// Stop points past the line break of the segment.
		hi = max(hi, seg.Stop-1, seg.Start)
	}
	return lo, hi, true
}

// isMarkerLine reports whether text, ignoring indentation, starts with a
// list marker of kind. A marker alone on the line counts too.
func isMarkerLine(text string, kind lists.Kind) bool {
	s := strings.TrimRight(strings.TrimLeft(text, " \t"), "\r")
	if _, ok := kind.Match(s).(lists.Marker); ok {
		return true
	}
	if kind == lists.BulletList {
		return s == "-" || s == "*" || s == "+"
	}
	if len(s) < 2 || (s[len(s)-1] != '.' && s[len(s)-1] != ')') {
		return false
	}
	for _, c := range s[:len(s)-1] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// lineText returns the 1-based line n without its line break.
func (t *Tree) lineText(n int) string {
	if n < 1 || n > len(t.lineStarts) {
		return ""
	}
	end := len(t.src)
	if n < len(t.lineStarts) {
		end = t.lineStarts[n] - 1
	}
	return string(t.src[t.lineStarts[n-1]:end])
}

func (t *Tree) taskMarker(box *east.TaskCheckBox) (TaskMarker, bool) {
	block := box.Parent()
	if block == nil || block.Lines().Len() == 0 {
		return TaskMarker{}, false
	}
	start := block.Lines().At(0).Start
	if start >= len(t.src) || t.src[start] != '[' {
		return TaskMarker{}, false
	}
	line := t.lineOf(start)
	return TaskMarker{
		Line:    line,
		Col:     utf8.RuneCount(t.src[t.lineStarts[line-1]:start]),
		Checked: box.IsChecked,
	}, true
}

// lineOf maps a byte offset to a 1-based line number.
func (t *Tree) lineOf(off int) int {
	return sort.Search(len(t.lineStarts), func(i int) bool { return t.lineStarts[i] > off })
}
