// Package buffer implements the plain-text document model used by the list
// commands and the editor component.
//
// Text is stored as rune lines. Positions are either 0-based (Row, Col) pairs
// in runes or document offsets in runes, where a line break counts as one
// offset unit. Lines returned by the accessors are numbered from 1.
//
// All mutations go through Dispatch, which applies a Transaction atomically:
// one version bump, one undo entry, one Change record.
package buffer
