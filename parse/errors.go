package parse

import (
	"errors"
	"fmt"

	"github.com/sanjeevprasad/yamp/token"
)

// Sentinel kinds, matched with errors.Is. ErrIndentation, ErrSyntax and
// ErrBadUTF8 re-export the token package's sentinels; an unterminated
// quoted scalar is reported with token.ErrUnterminated, which is not
// re-exported here. No path through Parse returns ErrUnexpectedEof.
var (
	ErrIndentation   = token.ErrIndentation
	ErrSyntax        = token.ErrSyntax
	ErrUnexpectedEof = errors.New("unexpected end of document")
	ErrBadUTF8       = token.ErrBadUTF8
)

// Error carries the 1-based line/column of the earliest point of
// failure plus a short description, per spec §7.
type Error struct {
	Err  error
	Line int
	Col  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (line %d, column %d)", e.Err, e.Line, e.Col)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newSyntaxErr(line int, format string, args ...any) error {
	return &Error{Err: fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, args...)), Line: line, Col: 1}
}

func newIndentErr(line int, format string, args ...any) error {
	return &Error{Err: fmt.Errorf("%w: %s", ErrIndentation, fmt.Sprintf(format, args...)), Line: line, Col: 1}
}

func newEofErr(line int, format string, args ...any) error {
	return &Error{Err: fmt.Errorf("%w: %s", ErrUnexpectedEof, fmt.Sprintf(format, args...)), Line: line, Col: 1}
}

// wrapTokenErr lifts an error surfaced by the token package into a parse
// Error carrying a line number. The token package often has no byte
// offset to report a real position from (LexValue, Classify and
// ParseHeader all operate on an already-indent-stripped line, not the
// document), in which case its Pos is the zero value and fallbackLine
// — known to the caller because it is iterating lines one at a time —
// wins instead.
func wrapTokenErr(err error, fallbackLine int) error {
	if err == nil {
		return nil
	}
	var te *token.Error
	if errors.As(err, &te) {
		line, col := te.Pos.Line, te.Pos.Col
		if line == 0 {
			line, col = fallbackLine, 1
		}
		return &Error{Err: te.Err, Line: line, Col: col}
	}
	return &Error{Err: err, Line: fallbackLine, Col: 1}
}
