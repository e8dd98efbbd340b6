// Package syntax answers structural questions about a Markdown document
// using goldmark: which lines belong to bullet or ordered lists, and where
// task list checkboxes sit.
package syntax
