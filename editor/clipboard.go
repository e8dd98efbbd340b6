package editor

// Clipboard provides editor-level clipboard integration.
//
// Errors are ignored by the editor.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
