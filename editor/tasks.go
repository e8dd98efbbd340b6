package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/listtoggle/buffer"
	"github.com/iw2rmb/listtoggle/lists"
	"github.com/iw2rmb/listtoggle/syntax"
)

// TaskMarkerClass is the decoration class of task list checkboxes.
const TaskMarkerClass = "cmt-taskmarker"

// TaskClickToggle returns an extension that marks every task checkbox
// ("[ ]", "[x]") as clickable and flips it on click. The flip is one
// transaction tagged buffer.UserEventInput that keeps the selection as is.
func TaskClickToggle() Extension {
	q := syntax.NewQuery()
	return Extension{
		Decorator: DecoratorFunc(func(b *buffer.Buffer) []Decoration {
			markers := q.Tree(b).TaskMarkers()
			out := make([]Decoration, 0, len(markers))
			for _, tm := range markers {
				out = append(out, Decoration{
					Row:      tm.Line - 1,
					StartCol: tm.Col,
					EndCol:   tm.Col + len(lists.TaskUnchecked),
					Class:    TaskMarkerClass,
				})
			}
			return out
		}),
		Styles: map[string]lipgloss.Style{
			TaskMarkerClass: lipgloss.NewStyle().Underline(true),
		},
		OnClick: func(ev ClickEvent) bool {
			if ev.Decoration.Class != TaskMarkerClass || ev.Buffer == nil {
				return false
			}
			return ToggleTask(ev.Buffer, ev.Offset)
		},
	}
}

// ToggleTask flips the task marker starting at off. It reports false, and
// leaves b untouched, when no marker fits there.
func ToggleTask(b *buffer.Buffer, off int) bool {
	change, ok := lists.ToggleTaskMarker(b, off)
	if !ok {
		return false
	}
	sel := b.Selection()
	b.Dispatch(buffer.Transaction{
		Changes:   []buffer.ChangeSpec{change},
		Selection: &sel,
		UserEvent: buffer.UserEventInput,
	})
	return true
}
