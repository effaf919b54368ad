// Package debug holds small printf-style helpers for tracing parser and
// emitter behavior during development. Nothing in here is on any
// production code path.
package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sanjeevprasad/yamp/emit"
	"github.com/sanjeevprasad/yamp/node"
)

// JSON is an interface type, so a value converted to JSON keeps its own
// dynamic type: Logf formats it exactly as it would the unconverted
// value, and only the argument types Logf lists are rendered as JSON.
type JSON any

// Tree wraps a *node.Node so %v (or %s) on it renders the node's own
// text form instead of its Go struct layout.
type Tree struct{ *node.Node }

func (t Tree) String() string {
	s, err := emit.Emit(t.Node)
	if err != nil {
		return fmt.Sprintf("[raw *node.Node] %v", t.Node)
	}
	return s
}

// Logf writes a formatted trace line to stderr, rewriting any *node.Node,
// map[string]any, []any, or json.Number argument into a readable string first so
// callers can pass tree fragments directly instead of pre-formatting
// them.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *node.Node:
			s, err := emit.Emit(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw *node.Node] %v", x)
				continue
			}
			args[i] = s
		case bool, string, float64, int:
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
