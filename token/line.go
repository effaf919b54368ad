package token

import (
	"strings"
	"unicode/utf8"
)

// Line is one physical line of source, already split from its neighbors
// and stripped of its line terminator.
type Line struct {
	No     int // 1-based
	Indent int // count of leading space characters
	Raw    string
	Text   string // Raw[Indent:]
}

// Split breaks src into physical lines, normalizing "\r\n" to "\n" and
// measuring each line's leading-space indentation. A tab encountered
// before the first non-whitespace character of a non-blank line is an
// IndentationError, per spec.
func Split(src string) ([]Line, error) {
	if !utf8.ValidString(src) {
		return nil, NewError(ErrBadUTF8, Pos{})
	}
	src = strings.ReplaceAll(src, "\r\n", "\n")
	src = strings.ReplaceAll(src, "\r", "\n")
	doc := NewDoc([]byte(src))
	rawLines := strings.Split(src, "\n")
	lines := make([]Line, 0, len(rawLines))
	off := 0
	for i, raw := range rawLines {
		indent := 0
		for indent < len(raw) && raw[indent] == ' ' {
			indent++
		}
		if indent < len(raw) && raw[indent] == '\t' && strings.TrimSpace(raw) != "" {
			return nil, NewError(ErrIndentation, doc.Pos(off+indent))
		}
		lines = append(lines, Line{
			No:     i + 1,
			Indent: indent,
			Raw:    raw,
			Text:   raw[indent:],
		})
		off += len(raw) + 1
	}
	return lines, nil
}

// IsBlank reports whether a line carries no non-whitespace content,
// regardless of its measured Indent (a line of only tabs/spaces is
// blank, not an indentation error).
func (l Line) IsBlank() bool {
	return strings.TrimSpace(l.Raw) == ""
}

// Kind discriminates the four logical-line shapes the structural parser
// dispatches on. Continuation lines (block-scalar body) are recognized by
// the parser directly from Line.Indent/Raw, not through Classify, since
// their content is opaque text rather than syntax.
type Kind int

const (
	Blank Kind = iota
	Comment
	SequenceItem
	KeyValue
)

// Classified is the result of classifying one line's Text (its content
// past the counted indentation).
type Classified struct {
	Kind Kind

	// Comment: payload with one optional leading space after '#' removed.
	Comment string

	// SequenceItem: the text after "- ", possibly empty, possibly itself
	// a nested "key: value" the caller should re-classify.
	Rest string

	// KeyValue.
	Key            string
	HasValue       bool   // a value region follows the ": "
	Value          string // raw, not yet scalar-lexed
	InlineOnEmpty  string // "key: # comment" with nothing between ':' and '#'
	HasInlineOnKey bool
}

// Classify inspects text (already indent-stripped) and determines its
// logical kind.
func Classify(text string) (Classified, error) {
	if strings.TrimSpace(text) == "" {
		return Classified{Kind: Blank}, nil
	}
	if text[0] == '#' {
		return Classified{Kind: Comment, Comment: stripHashSpace(text[1:])}, nil
	}
	if text[0] == '-' && (len(text) == 1 || text[1] == ' ') {
		rest := ""
		if len(text) > 1 {
			rest = text[2:]
		}
		return Classified{Kind: SequenceItem, Rest: rest}, nil
	}
	key, afterColon, ok, err := splitKey(text)
	if err != nil {
		return Classified{}, err
	}
	if !ok {
		return Classified{}, NewError(ErrSyntax, Pos{})
	}
	c := Classified{Kind: KeyValue, Key: key}
	switch {
	case afterColon == "":
		// key: <EOL>, no value, no inline comment.
	case afterColon[0] == '#':
		c.HasInlineOnKey = true
		c.InlineOnEmpty = stripHashSpace(afterColon[1:])
	default:
		c.HasValue = true
		c.Value = afterColon
	}
	return c, nil
}

// splitKey locates the first unquoted ':' in text that is followed by a
// space or end-of-line, and returns the decoded key plus whatever
// follows the separating space (if any).
func splitKey(text string) (key, rest string, ok bool, err error) {
	if len(text) > 0 && (text[0] == '\'' || text[0] == '"') {
		var content, tail string
		if text[0] == '\'' {
			content, tail, err = LexSingleQuoted(text)
		} else {
			content, tail, err = LexDoubleQuoted(text)
		}
		if err != nil {
			return "", "", false, err
		}
		tail = strings.TrimLeft(tail, " ")
		if len(tail) == 0 || tail[0] != ':' {
			return "", "", false, nil
		}
		after := tail[1:]
		if len(after) > 0 && after[0] != ' ' {
			return "", "", false, nil
		}
		return content, strings.TrimPrefix(after, " "), true, nil
	}
	for i := 0; i < len(text); i++ {
		if text[i] != ':' {
			continue
		}
		if i+1 == len(text) {
			return strings.TrimRight(text[:i], " "), "", true, nil
		}
		if text[i+1] == ' ' {
			return strings.TrimRight(text[:i], " "), text[i+2:], true, nil
		}
	}
	return "", "", false, nil
}

func stripHashSpace(s string) string {
	if strings.HasPrefix(s, " ") {
		return s[1:]
	}
	return s
}
