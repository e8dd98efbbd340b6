// Package editor provides a Bubble Tea text editor component for Markdown
// documents backed by the buffer package.
//
// The package handles input, viewport behavior, grapheme-aware rendering
// and hit-testing. List toggles from package lists are bound to keys, and
// extensions can decorate spans of text and react to clicks on them.
package editor
