// Package token turns raw document bytes into logical lines (the line
// classifier) and, for the value portion of a line, into the various
// scalar forms the format supports (the scalar lexer): plain, quoted, and
// block (literal/folded) scalars with chomping.
package token
