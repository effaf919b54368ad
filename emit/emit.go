package emit

import (
	"fmt"
	"strings"

	"github.com/sanjeevprasad/yamp/node"
	"github.com/sanjeevprasad/yamp/token"
)

// Emit pretty-prints n to text. It is total over any well-formed tree:
// the only error case is a nil root.
func Emit(n *node.Node, opts ...Option) (string, error) {
	if n == nil {
		return "", fmt.Errorf("emit: nil node")
	}
	cfg := config{}
	for _, o := range opts {
		o(&cfg)
	}
	var b strings.Builder
	if err := emitRoot(&b, n, cfg.depth, &cfg); err != nil {
		return "", err
	}
	return b.String(), nil
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

// emitRoot writes n's leading comment, its body, and then its inline
// slot — which for the root always means the document's trailing
// comment block, never a same-line comment, since a root scalar's own
// same-line comment and any later trailing comments were already
// folded into one string by the parser.
func emitRoot(b *strings.Builder, n *node.Node, depth int, cfg *config) error {
	if leading, ok := n.Leading(); ok {
		writeCommentLines(b, leading, depth, cfg)
	}
	switch n.Kind {
	case node.String:
		b.WriteString(indent(depth))
		multiline := writeScalar(b, n, depth+1, cfg, false)
		if !multiline {
			b.WriteByte('\n')
		}
	case node.Mapping:
		if len(n.Entries) > 0 {
			if err := emitMapping(b, n.Entries, depth, cfg, false); err != nil {
				return err
			}
		}
	case node.Sequence:
		if len(n.Items) > 0 {
			if err := emitSequence(b, n.Items, depth, cfg, false); err != nil {
				return err
			}
		}
	}
	if trailing, ok := n.Inline(); ok {
		writeCommentLines(b, trailing, depth, cfg)
	}
	return nil
}

// emitMapping writes entries in order at depth. When skipFirstIndent is
// set, the first entry's key is assumed to already follow a "- " on the
// current line (a sequence item written "- key: value"), so neither its
// leading comment nor its indentation is written.
func emitMapping(b *strings.Builder, entries []node.Entry, depth int, cfg *config, skipFirstIndent bool) error {
	for i, e := range entries {
		if i > 0 || !skipFirstIndent {
			if leading, ok := e.Value.Leading(); ok {
				writeCommentLines(b, leading, depth, cfg)
			}
			b.WriteString(indent(depth))
		}
		b.WriteString(cfg.colors.apply(KeyColor, quoteKey(e.Key)))
		b.WriteString(cfg.colors.apply(SepColor, ":"))
		if err := emitEntryValue(b, e.Value, depth, cfg); err != nil {
			return err
		}
	}
	return nil
}

// emitSequence is emitMapping's counterpart for "- " items.
func emitSequence(b *strings.Builder, items []*node.Node, depth int, cfg *config, skipFirstIndent bool) error {
	for i, item := range items {
		if i > 0 || !skipFirstIndent {
			if leading, ok := item.Leading(); ok {
				writeCommentLines(b, leading, depth, cfg)
			}
			b.WriteString(indent(depth))
		}
		b.WriteString(cfg.colors.apply(DashColor, "-"))
		b.WriteByte(' ')
		if err := emitSequenceItemValue(b, item, depth, cfg); err != nil {
			return err
		}
	}
	return nil
}

// emitEntryValue writes everything after a mapping key's ":", given the
// cursor sits right after it.
func emitEntryValue(b *strings.Builder, val *node.Node, depth int, cfg *config) error {
	switch {
	case val.Kind == node.String:
		b.WriteByte(' ')
		if !writeScalar(b, val, depth+1, cfg, true) {
			b.WriteByte('\n')
		}
	case val.Kind == node.Mapping && len(val.Entries) == 0:
		b.WriteString(" {}")
		writeInlineSuffix(b, val, cfg)
		b.WriteByte('\n')
	case val.Kind == node.Sequence && len(val.Items) == 0:
		b.WriteString(" []")
		writeInlineSuffix(b, val, cfg)
		b.WriteByte('\n')
	case val.Kind == node.Mapping:
		writeInlineSuffix(b, val, cfg)
		b.WriteByte('\n')
		return emitMapping(b, val.Entries, depth+1, cfg, false)
	default: // node.Sequence
		writeInlineSuffix(b, val, cfg)
		b.WriteByte('\n')
		return emitSequence(b, val.Items, depth+1, cfg, false)
	}
	return nil
}

// emitSequenceItemValue writes everything after a sequence item's
// "- ", given the cursor sits right after it.
func emitSequenceItemValue(b *strings.Builder, item *node.Node, depth int, cfg *config) error {
	switch {
	case item.Kind == node.String:
		if !writeScalar(b, item, depth+1, cfg, true) {
			b.WriteByte('\n')
		}
		return nil
	case item.Kind == node.Mapping && len(item.Entries) == 0:
		b.WriteString("{}")
		writeInlineSuffix(b, item, cfg)
		b.WriteByte('\n')
		return nil
	case item.Kind == node.Sequence && len(item.Items) == 0:
		b.WriteString("[]")
		writeInlineSuffix(b, item, cfg)
		b.WriteByte('\n')
		return nil
	}
	if inline, ok := item.Inline(); ok {
		b.WriteString(cfg.colors.apply(SepColor, "#"))
		if inline != "" {
			b.WriteString(cfg.colors.apply(CommentColor, " "+inline))
		}
		b.WriteByte('\n')
		if item.Kind == node.Mapping {
			return emitMapping(b, item.Entries, depth+1, cfg, false)
		}
		return emitSequence(b, item.Items, depth+1, cfg, false)
	}
	if item.Kind == node.Mapping {
		return emitMapping(b, item.Entries, depth+1, cfg, true)
	}
	return emitSequence(b, item.Items, depth+1, cfg, true)
}

// writeScalar writes a String node's value at the cursor with no
// leading indentation of its own. It reports whether it wrote a
// multiline block (in which case it has already terminated the final
// line with '\n' and the caller must not add another).
func writeScalar(b *strings.Builder, n *node.Node, contentDepth int, cfg *config, appendInline bool) bool {
	s := n.Scalar
	if strings.Contains(s, "\n") {
		header, lines := blockScalarRepr(s)
		b.WriteString(cfg.colors.apply(LiteralColor, header))
		if appendInline {
			writeInlineSuffix(b, n, cfg)
		}
		b.WriteByte('\n')
		ind := indent(contentDepth)
		for _, ln := range lines {
			if ln == "" {
				b.WriteByte('\n')
				continue
			}
			b.WriteString(ind)
			b.WriteString(cfg.colors.apply(LiteralColor, ln))
			b.WriteByte('\n')
		}
		return true
	}
	v := s
	if token.NeedsQuote(v) {
		v = token.Quote(v)
	}
	b.WriteString(cfg.colors.apply(ValueColor, v))
	if appendInline {
		writeInlineSuffix(b, n, cfg)
	}
	return false
}

// blockScalarRepr picks the chomping indicator that reproduces s's
// trailing-newline count and returns the content lines a literal block
// scalar body should render, inverting token.Join(true, ...) exactly.
func blockScalarRepr(s string) (header string, lines []string) {
	trimmed := strings.TrimRight(s, "\n")
	switch trailing := len(s) - len(trimmed); {
	case trailing == 0:
		header = "|-"
	case trailing == 1:
		header = "|"
	default:
		header = "|+"
	}
	lines = strings.Split(s, "\n")
	if strings.HasSuffix(s, "\n") {
		lines = lines[:len(lines)-1]
	}
	return header, lines
}

func writeInlineSuffix(b *strings.Builder, n *node.Node, cfg *config) {
	inline, ok := n.Inline()
	if !ok {
		return
	}
	b.WriteByte(' ')
	b.WriteString(cfg.colors.apply(SepColor, "#"))
	if inline != "" {
		b.WriteString(cfg.colors.apply(CommentColor, " "+inline))
	}
}

func writeCommentLines(b *strings.Builder, text string, depth int, cfg *config) {
	for _, ln := range strings.Split(text, "\n") {
		b.WriteString(indent(depth))
		b.WriteString(cfg.colors.apply(SepColor, "#"))
		if ln != "" {
			b.WriteString(cfg.colors.apply(CommentColor, " "+ln))
		}
		b.WriteByte('\n')
	}
}

func quoteKey(k string) string {
	if token.NeedsQuote(k) {
		return token.Quote(k)
	}
	return k
}
