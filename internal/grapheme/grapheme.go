package grapheme

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cell is one grapheme cluster of a line placed on a terminal row.
type Cell struct {
	// Col is the rune column of the cluster's first rune.
	Col int
	// Runes is the number of runes in the cluster.
	Runes int
	// Start is the first terminal cell the cluster occupies.
	Start int
	// Width is the number of terminal cells, at least 1.
	Width int
	// Text is what gets drawn. Tabs are expanded to spaces.
	Text string
}

// End returns the terminal cell just past the cluster.
func (c Cell) End() int { return c.Start + c.Width }

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, utf8.RuneCountInString(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Layout places every cluster of a single line on a terminal row.
func Layout(line string, tabWidth int) []Cell {
	clusters := Split(line)
	if len(clusters) == 0 {
		return nil
	}
	out := make([]Cell, 0, len(clusters))
	col, cell := 0, 0
	for _, c := range clusters {
		w := Width(c, cell, tabWidth)
		text := c
		if c == "\t" {
			text = strings.Repeat(" ", w)
		}
		n := utf8.RuneCountInString(c)
		out = append(out, Cell{Col: col, Runes: n, Start: cell, Width: w, Text: text})
		col += n
		cell += w
	}
	return out
}

// Width returns the terminal width of cluster drawn at visual cell.
func Width(cluster string, cell, tabWidth int) int {
	if cluster == "\t" {
		return TabAdvance(cell, tabWidth)
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w <= 0 {
		w = 1
	}
	return w
}

// TabAdvance returns the cells a tab at cell advances to the next stop.
func TabAdvance(cell, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return tabWidth - cell%tabWidth
}
