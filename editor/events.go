package editor

import "github.com/iw2rmb/listtoggle/buffer"

// ChangeEvent reports the buffer state after an Update that changed it.
type ChangeEvent struct {
	Version   uint64
	Cursor    buffer.Pos
	Selection buffer.Selection
	// UserEvent is the tag of the last transaction applied during the update.
	UserEvent   string
	TextChanged bool

	Text string
}

func buildChangeEvent(b *buffer.Buffer, prevText string) ChangeEvent {
	ev := ChangeEvent{
		Version:   b.Version(),
		Cursor:    b.Cursor(),
		Selection: b.Selection(),
		Text:      b.Text(),
	}
	if c, ok := b.LastChange(); ok {
		ev.UserEvent = c.UserEvent
	}
	ev.TextChanged = ev.Text != prevText
	return ev
}
