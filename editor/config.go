package editor

import "github.com/iw2rmb/listtoggle/lists"

const defaultTabWidth = 4

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	// TabWidth defaults to 4.
	TabWidth int

	// KeyMap defaults to DefaultKeyMap when left zero.
	KeyMap    KeyMap
	Clipboard Clipboard

	// Forwarded to buffer.Options.
	HistoryLimit int
	ReadOnly     bool

	// Query decides whether a toggle adds or removes list markers. Nil
	// uses a goldmark-backed syntax.Query.
	Query lists.NodeQuery

	// Extensions decorate text and receive clicks on their decorations.
	Extensions []Extension

	// OnChange is called after every Update that changed the buffer.
	OnChange func(ChangeEvent)
}
