package emit

import "github.com/fatih/color"

// ColorAttr discriminates the handful of syntactic roles a span of
// emitted text can play, the same axis the teacher's encode package
// colors along, trimmed to this package's single output format.
type ColorAttr int

const (
	KeyColor ColorAttr = iota
	ValueColor
	CommentColor
	SepColor
	DashColor
	LiteralColor
)

// Colors maps each ColorAttr to an ANSI-wrapping function. A nil *Colors
// is a valid, inert receiver: every method degrades to the identity
// function, so callers that never opt into color never need a nil
// check of their own.
type Colors struct {
	fns map[ColorAttr]func(string) string
}

// NewColors returns a palette suited to a dark terminal background.
func NewColors() *Colors {
	return &Colors{
		fns: map[ColorAttr]func(string) string{
			KeyColor:     colorFunc(color.FgHiBlue),
			ValueColor:   colorFunc(color.FgGreen),
			CommentColor: colorFunc(color.FgBlue),
			SepColor:     colorFunc(color.FgMagenta),
			DashColor:    colorFunc(color.FgMagenta),
			LiteralColor: colorFunc(color.FgYellow),
		},
	}
}

// colorFunc adapts color.Color's variadic SprintFunc to the single-string
// function shape Colors.fns stores.
func colorFunc(attr color.Attribute) func(string) string {
	f := color.New(attr).SprintFunc()
	return func(s string) string {
		return f(s)
	}
}

func (c *Colors) apply(attr ColorAttr, s string) string {
	if c == nil {
		return s
	}
	f := c.fns[attr]
	if f == nil {
		return s
	}
	return f(s)
}
