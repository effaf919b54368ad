package token

import (
	"fmt"
	"strings"
)

// LexValue scalar-lexes a KeyValue/SequenceItem value region (already
// stripped of the separating space). It does not handle block scalars
// ('|'/'>' headers); callers check for those before calling LexValue.
func LexValue(s string) (value, inline string, hasInline bool, err error) {
	if s == "" {
		return "", "", false, nil
	}
	switch s[0] {
	case '\'':
		content, rest, err := LexSingleQuoted(s)
		if err != nil {
			return "", "", false, err
		}
		inline, hasInline, err := lexQuotedTrailing(rest)
		if err != nil {
			return "", "", false, err
		}
		return content, inline, hasInline, nil
	case '"':
		content, rest, err := LexDoubleQuoted(s)
		if err != nil {
			return "", "", false, err
		}
		inline, hasInline, err := lexQuotedTrailing(rest)
		if err != nil {
			return "", "", false, err
		}
		return content, inline, hasInline, nil
	default:
		return lexPlain(s)
	}
}

// lexQuotedTrailing inspects whatever follows a quoted scalar's closing
// quote: nothing but trailing whitespace, or whitespace followed by an
// inline comment, exactly the same " #" separation lexPlain requires of a
// plain scalar. Anything else is a SyntaxError.
func lexQuotedTrailing(rest string) (inline string, hasInline bool, err error) {
	if strings.TrimRight(rest, " \t") == "" {
		return "", false, nil
	}
	if rest[0] != ' ' && rest[0] != '\t' {
		return "", false, NewError(fmt.Errorf("%w: unexpected text after quoted scalar", ErrSyntax), Pos{})
	}
	after := strings.TrimLeft(rest, " \t")
	if after == "" || after[0] != '#' {
		return "", false, NewError(fmt.Errorf("%w: unexpected text after quoted scalar", ErrSyntax), Pos{})
	}
	return stripHashSpace(after[1:]), true, nil
}

func lexPlain(s string) (value, inline string, hasInline bool, err error) {
	idx := strings.Index(s, " #")
	if idx < 0 {
		return strings.TrimRight(s, " \t"), "", false, nil
	}
	value = strings.TrimRight(s[:idx], " \t")
	inline = stripHashSpace(s[idx+2:])
	return value, inline, true, nil
}

// LexSingleQuoted consumes a '…' scalar starting at s[0] == '\''. The
// only recognized escape is '' -> '.
func LexSingleQuoted(s string) (content, rest string, err error) {
	var b strings.Builder
	i := 1
	for i < len(s) {
		if s[i] == '\'' {
			if i+1 < len(s) && s[i+1] == '\'' {
				b.WriteByte('\'')
				i += 2
				continue
			}
			return b.String(), s[i+1:], nil
		}
		b.WriteByte(s[i])
		i++
	}
	return "", "", NewError(ErrUnterminated, Pos{})
}

// LexDoubleQuoted consumes a "…" scalar starting at s[0] == '"'. Only
// \\, \", \n, \t, \r, \0 are recognized escapes; anything else is a
// SyntaxError.
func LexDoubleQuoted(s string) (content, rest string, err error) {
	var b strings.Builder
	i := 1
	for i < len(s) {
		c := s[i]
		if c == '"' {
			return b.String(), s[i+1:], nil
		}
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(s) {
			return "", "", NewError(ErrUnterminated, Pos{})
		}
		switch s[i+1] {
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '0':
			b.WriteByte(0)
		default:
			return "", "", NewError(fmt.Errorf("%w: unknown escape \\%c", ErrSyntax, s[i+1]), Pos{})
		}
		i += 2
	}
	return "", "", NewError(ErrUnterminated, Pos{})
}

// NeedsQuote reports whether v cannot be emitted as a plain scalar: it is
// empty, contains a newline, carries leading/trailing whitespace, starts
// with a sigil that would be mistaken for structure, contains a flow
// metacharacter, an embedded ": ", an embedded " #", or a non-printable
// byte.
func NeedsQuote(v string) bool {
	if v == "" || strings.Contains(v, "\n") {
		return true
	}
	if strings.TrimSpace(v) != v {
		return true
	}
	switch v[0] {
	case '#', '-', ':', '?', '@', '`', '\'', '"', '[', ']', '{', '}', ',', '*', '&', '!', '|', '>', '%':
		return true
	}
	if strings.Contains(v, ": ") || strings.Contains(v, " #") {
		return true
	}
	if strings.ContainsAny(v, "[]{},") {
		return true
	}
	for _, r := range v {
		if r < 0x20 && r != '\t' {
			return true
		}
	}
	return false
}

// Quote renders v as a double-quoted scalar.
func Quote(v string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range v {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case 0:
			b.WriteString(`\0`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
