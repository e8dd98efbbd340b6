// Package lists toggles Markdown list syntax over the lines covered by each
// selection range.
//
// A toggle decides once per range, from the line holding the range start,
// whether it adds or removes markers. Every covered line is then tested on
// its own: lines with a marker lose it in remove mode, lines without one
// gain a marker inferred from the neighbouring lines. All edits and the
// remapped selection are dispatched as one transaction tagged "input".
package lists
