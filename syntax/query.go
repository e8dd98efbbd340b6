package syntax

import (
	"strings"

	"github.com/iw2rmb/listtoggle/lists"
)

// Query implements lists.NodeQuery by parsing the queried document. The
// last parse is reused while the document text is unchanged.
type Query struct {
	src  string
	tree *Tree
}

// NewQuery returns an empty Query.
func NewQuery() *Query { return &Query{} }

// InList reports whether the line holding at is inside a list of kind.
func (q *Query) InList(doc lists.Document, at int, kind lists.Kind) bool {
	return q.Tree(doc).InList(doc.LineAt(at).Number, kind)
}

// Tree returns the parse of doc, reusing the previous one when the text has
// not changed.
func (q *Query) Tree(doc lists.Document) *Tree {
	src := documentText(doc)
	if q.tree == nil || src != q.src {
		q.src = src
		q.tree = Parse(src)
	}
	return q.tree
}

func documentText(doc lists.Document) string {
	var sb strings.Builder
	for n := 1; n <= doc.Lines(); n++ {
		if n > 1 {
			sb.WriteByte('\n')
		}
		sb.WriteString(doc.Line(n).Text)
	}
	return sb.String()
}
