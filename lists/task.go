package lists

import "github.com/iw2rmb/listtoggle/buffer"

const (
	TaskUnchecked = "[ ]"
	TaskChecked   = "[x]"
)

// ToggleTaskMarker returns the change flipping the three-rune task marker
// that starts at off. "[ ]" becomes "[x]"; anything else becomes "[ ]". ok
// is false when fewer than three runes follow off on its line.
func ToggleTaskMarker(doc Document, off int) (change buffer.ChangeSpec, ok bool) {
	line := doc.LineAt(off)
	col := off - line.From
	runes := []rune(line.Text)
	if col < 0 || col+3 > len(runes) {
		return buffer.ChangeSpec{}, false
	}

	next := TaskUnchecked
	if string(runes[col:col+3]) == TaskUnchecked {
		next = TaskChecked
	}
	return buffer.ChangeSpec{From: off, To: off + 3, Insert: next}, true
}
