// Package caml exposes the library's external surface: Parse and Emit,
// plus the small set of builder conveniences a caller needs to
// construct a tree from scratch rather than reading one off the wire.
//
// # Usage
//
//	root, err := caml.Parse(text)
//	root.Get("name").SetInline("was blank before")
//	out, err := caml.Emit(root)
//
// # Related Packages
//
//   - github.com/sanjeevprasad/yamp/node  - the tree representation
//   - github.com/sanjeevprasad/yamp/parse - text to tree
//   - github.com/sanjeevprasad/yamp/emit  - tree to text
package caml

import (
	"github.com/sanjeevprasad/yamp/emit"
	"github.com/sanjeevprasad/yamp/node"
	"github.com/sanjeevprasad/yamp/parse"
)

// Parse produces the root Node of text. An empty or whitespace/comment-
// only document yields an empty Mapping root.
func Parse(text string, opts ...parse.Option) (*node.Node, error) {
	return parse.Parse(text, opts...)
}

// Emit pretty-prints n back to text.
func Emit(n *node.Node, opts ...emit.Option) (string, error) {
	return emit.Emit(n, opts...)
}

// String wraps s as a String-valued Node with no comments.
func String(s string) *node.Node {
	return node.NewString(s)
}

// Mapping returns an empty Mapping-valued Node ready for Set calls.
func Mapping() *node.Node {
	return node.NewMapping()
}

// Sequence returns an empty Sequence-valued Node ready for Append calls.
func Sequence() *node.Node {
	return node.NewSequence()
}
