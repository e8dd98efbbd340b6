package lists

import (
	"regexp"
	"unicode/utf8"
)

// space matches one whitespace rune, Unicode separators included.
const space = `[\s\v\p{Z}\x{FEFF}]`

var (
	bulletRE  = regexp.MustCompile(`^ {0,3}([*+-])` + space)
	orderedRE = regexp.MustCompile(`^ {0,3}(\d+)([.)])` + space)
)

// Match is the result of testing a line for list marker syntax. It is
// either NoMarker or Marker.
type Match interface {
	isMatch()
}

// NoMarker reports that the line carries no list marker.
type NoMarker struct{}

// Marker describes a list marker found at the start of a line.
type Marker struct {
	// Width is the rune length of the whole prefix: indentation, marker and
	// the one whitespace rune after it.
	Width int
	// Captured is the bullet glyph or the item number digits.
	Captured string
	// Delimiter is '.' or ')' for ordered markers and 0 for bullets.
	Delimiter byte
}

func (NoMarker) isMatch() {}

func (Marker) isMatch() {}

// MatchBullet tests text for a bullet marker: up to three spaces, one of
// "*", "+" or "-", then one whitespace rune.
func MatchBullet(text string) Match {
	m := bulletRE.FindStringSubmatchIndex(text)
	if m == nil {
		return NoMarker{}
	}
	return Marker{
		Width:    utf8.RuneCountInString(text[:m[1]]),
		Captured: text[m[2]:m[3]],
	}
}

// MatchOrdered tests text for an ordered marker: up to three spaces, one or
// more digits, "." or ")", then one whitespace rune.
func MatchOrdered(text string) Match {
	m := orderedRE.FindStringSubmatchIndex(text)
	if m == nil {
		return NoMarker{}
	}
	return Marker{
		Width:     utf8.RuneCountInString(text[:m[1]]),
		Captured:  text[m[2]:m[3]],
		Delimiter: text[m[4]],
	}
}
