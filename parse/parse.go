package parse

import (
	"errors"
	"strings"

	"github.com/sanjeevprasad/yamp/node"
	"github.com/sanjeevprasad/yamp/token"
)

// Parse builds a *node.Node tree from text. It is the package's sole
// entry point; everything else here supports it.
func Parse(text string, opts ...Option) (*node.Node, error) {
	cfg := newConfig()
	for _, o := range opts {
		o(&cfg)
	}
	lines, err := token.Split(text)
	if err != nil {
		return nil, wrapTokenErr(err, 1)
	}
	p := &parser{lines: lines, cfg: cfg}
	return p.parseDocument()
}

// parser walks lines once, left to right, never backtracking past the
// position it has already consumed.
type parser struct {
	lines []token.Line
	pos   int
	col   collector
	cfg   config
	depth int
}

func (p *parser) enter(line int) error {
	p.depth++
	if p.cfg.maxDepth > 0 && p.depth > p.cfg.maxDepth {
		return newSyntaxErr(line, "exceeds maximum nesting depth")
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// skipToContent advances past blank and comment lines, feeding them to
// the collector, stopping at the first line carrying real content or at
// end of input. It recognizes a comment line by its leading '#' alone,
// not through token.Classify: Classify assumes every non-dash line is a
// mapping key and errors otherwise, which is the right behavior for a
// line a caller already expects to be structural, but wrong here, since
// skipToContent also runs ahead of content lines — a bare scalar
// document's sole line, say — that carry no colon at all.
func (p *parser) skipToContent() error {
	for p.pos < len(p.lines) {
		ln := p.lines[p.pos]
		if ln.IsBlank() {
			p.col.addBlank()
			p.pos++
			continue
		}
		if ln.Text[0] == '#' {
			p.col.addComment(stripHashSpace(ln.Text[1:]))
			p.pos++
			continue
		}
		return nil
	}
	return nil
}

// stripHashSpace mirrors the token package's own comment-payload
// trimming (a single optional leading space after '#'), duplicated here
// since skipToContent deliberately bypasses token.Classify.
func stripHashSpace(s string) string {
	if strings.HasPrefix(s, " ") {
		return s[1:]
	}
	return s
}

// parseDocument builds the root node and accounts for the whole-document
// edge cases that never arise for a nested value: an empty or
// comment-only document, a bare scalar document with no key or dash at
// all, and comments left over at end of file, which have no following
// node to attach to and so land in the root's inline slot instead.
func (p *parser) parseDocument() (*node.Node, error) {
	if err := p.skipToContent(); err != nil {
		return nil, err
	}
	var root *node.Node
	if p.pos >= len(p.lines) {
		root = node.NewMapping()
	} else {
		first := p.lines[p.pos]
		value, err := p.parseRootValue(first)
		if err != nil {
			return nil, err
		}
		root = value
		// A bare scalar document has no first entry to claim the
		// pending comment, so it lands on the root itself. A
		// Mapping/Sequence root leaves it pending: parseMapping's and
		// parseSequence's own per-entry take() (they run skipToContent
		// again before reading it) is what attaches it to the first
		// entry, per spec's "leading comment of the next produced
		// node" rule — the container itself is never that node.
		if root.Kind == node.String {
			if leading, hasLeading := p.col.take(); hasLeading {
				root.SetLeading(leading)
			}
		}
	}
	if err := p.skipToContent(); err != nil {
		return nil, err
	}
	if p.pos < len(p.lines) {
		return nil, newIndentErr(p.lines[p.pos].No, "content outside the document root")
	}
	if trailing, ok := p.col.take(); ok {
		if existing, has := root.Inline(); has {
			trailing = existing + "\n" + trailing
		}
		root.SetInline(trailing)
	}
	return root, nil
}

// parseRootValue dispatches on the first real line of the document. A
// plain scalar document (no mapping key, no sequence dash) is the one
// case Classify cannot itself recognize, since every non-dash,
// non-comment line is otherwise assumed to be "key: value"; a bare
// scalar is detected by falling back to LexValue when Classify rejects
// the line as having no key.
func (p *parser) parseRootValue(first token.Line) (*node.Node, error) {
	if isBlockHeader(first.Text) {
		p.pos++
		return p.parseBlockScalar(first.Text, first.No, first.Indent)
	}
	cl, classifyErr := token.Classify(first.Text)
	if classifyErr != nil {
		p.pos++
		val, inline, hasInline, lexErr := p.lexValue(first.Text)
		if lexErr != nil {
			return nil, wrapTokenErr(classifyErr, first.No)
		}
		n := node.NewString(val)
		if hasInline {
			n.SetInline(inline)
		}
		return n, nil
	}
	switch cl.Kind {
	case token.SequenceItem:
		return p.parseSequence(first.Indent)
	case token.KeyValue:
		return p.parseMapping(first.Indent)
	default:
		return nil, newSyntaxErr(first.No, "unexpected line at document start")
	}
}

// lexValue scalar-lexes s, pulling in additional physical lines when s
// opens a quoted scalar whose closing delimiter doesn't appear on its
// own line. A quoted scalar is the one construct that can span physical
// lines; plain and block scalars never do, so anything not starting
// with a quote goes straight to token.LexValue. Continuation lines are
// appended with their raw text (indentation included), matching how the
// closing quote is found wherever it falls on a later line.
func (p *parser) lexValue(s string) (value, inline string, hasInline bool, err error) {
	if s == "" || (s[0] != '\'' && s[0] != '"') {
		return token.LexValue(s)
	}
	for {
		value, inline, hasInline, err = token.LexValue(s)
		if err == nil || !errors.Is(err, token.ErrUnterminated) || p.pos >= len(p.lines) {
			return
		}
		s += "\n" + p.lines[p.pos].Raw
		p.pos++
	}
}

func isBlockHeader(text string) bool {
	return len(text) > 0 && (text[0] == '|' || text[0] == '>')
}

// parseMapping consumes every KeyValue line at exactly indent, starting
// at the parser's current position, until a line dedents below indent,
// indents above it (an indentation error: only a value introduces deeper
// indentation, never a bare sibling key), or the input ends.
func (p *parser) parseMapping(indent int) (*node.Node, error) {
	if err := p.enter(p.lines[p.pos].No); err != nil {
		return nil, err
	}
	defer p.leave()

	m := node.NewMapping()
	for {
		if err := p.skipToContent(); err != nil {
			return nil, err
		}
		if p.pos >= len(p.lines) {
			break
		}
		ln := p.lines[p.pos]
		if ln.Indent < indent {
			break
		}
		if ln.Indent > indent {
			return nil, newIndentErr(ln.No, "unexpected indentation")
		}
		cl, err := token.Classify(ln.Text)
		if err != nil {
			return nil, wrapTokenErr(err, ln.No)
		}
		if cl.Kind != token.KeyValue {
			return nil, newSyntaxErr(ln.No, "expected a mapping key")
		}
		leading, hasLeading := p.col.take()
		p.pos++
		val, err := p.parseEntryValue(cl, ln.Indent, ln.No)
		if err != nil {
			return nil, err
		}
		if hasLeading {
			val.SetLeading(leading)
		}
		m.Set(cl.Key, val)
	}
	return m, nil
}

// parseSequence is parseMapping's counterpart for "- " items.
func (p *parser) parseSequence(indent int) (*node.Node, error) {
	if err := p.enter(p.lines[p.pos].No); err != nil {
		return nil, err
	}
	defer p.leave()

	seq := node.NewSequence()
	for {
		if err := p.skipToContent(); err != nil {
			return nil, err
		}
		if p.pos >= len(p.lines) {
			break
		}
		ln := p.lines[p.pos]
		if ln.Indent < indent {
			break
		}
		if ln.Indent > indent {
			return nil, newIndentErr(ln.No, "unexpected indentation")
		}
		cl, err := token.Classify(ln.Text)
		if err != nil {
			return nil, wrapTokenErr(err, ln.No)
		}
		if cl.Kind != token.SequenceItem {
			return nil, newSyntaxErr(ln.No, "expected a sequence item")
		}
		leading, hasLeading := p.col.take()
		p.pos++
		val, err := p.parseSequenceItemValue(cl, ln.Indent, ln.No)
		if err != nil {
			return nil, err
		}
		if hasLeading {
			val.SetLeading(leading)
		}
		seq.Append(val)
	}
	return seq, nil
}

// parseEntryValue builds the value half of one mapping entry, given its
// key line has already been classified and consumed.
func (p *parser) parseEntryValue(cl token.Classified, keyIndent, keyLine int) (*node.Node, error) {
	switch {
	case cl.HasInlineOnKey:
		n := node.NewString("")
		n.SetInline(cl.InlineOnEmpty)
		return p.maybeNested(n, keyIndent)
	case cl.HasValue:
		return p.scalarFromValueText(cl.Value, keyIndent, keyLine)
	default:
		return p.maybeNested(node.NewString(""), keyIndent)
	}
}

// parseSequenceItemValue builds the value half of one "- " item.
func (p *parser) parseSequenceItemValue(cl token.Classified, itemIndent, itemLine int) (*node.Node, error) {
	if cl.Rest == "" {
		return p.maybeNested(node.NewString(""), itemIndent)
	}
	innerCl, err := token.Classify(cl.Rest)
	if err != nil {
		// Not every form of Rest classifies (a bare scalar has no
		// key), which is the ordinary case: "- value".
		return p.scalarFromValueText(cl.Rest, itemIndent, itemLine)
	}
	innerIndent := itemIndent + 2
	switch innerCl.Kind {
	case token.KeyValue:
		return p.parseInlineMappingItem(innerCl, itemLine, innerIndent)
	case token.SequenceItem:
		return p.parseInlineSequenceItem(innerCl, itemLine, innerIndent)
	case token.Comment:
		n := node.NewString("")
		n.SetInline(innerCl.Comment)
		return p.maybeNested(n, itemIndent)
	default:
		return p.scalarFromValueText(cl.Rest, itemIndent, itemLine)
	}
}

// maybeNested checks whether the lines following the current position
// indent deeper than base, meaning the value just opened (an empty
// "key:" or "- ") is actually a nested mapping or sequence rather than
// an empty string. placeholder's inline comment, if any, transfers onto
// the nested node, since the comment belongs to the key or item, not
// specifically to the empty-string reading of its value. A leading
// comment is not transferred here; callers set it on the returned node.
func (p *parser) maybeNested(placeholder *node.Node, base int) (*node.Node, error) {
	if err := p.skipToContent(); err != nil {
		return nil, err
	}
	if p.pos >= len(p.lines) || p.lines[p.pos].Indent <= base {
		return placeholder, nil
	}
	nested, err := p.parseAt(p.lines[p.pos].Indent)
	if err != nil {
		return nil, err
	}
	if inline, ok := placeholder.Inline(); ok {
		nested.SetInline(inline)
	}
	return nested, nil
}

// parseAt dispatches to parseMapping or parseSequence based on the kind
// of the line already known to sit at the given indent.
func (p *parser) parseAt(indent int) (*node.Node, error) {
	ln := p.lines[p.pos]
	cl, err := token.Classify(ln.Text)
	if err != nil {
		return nil, wrapTokenErr(err, ln.No)
	}
	switch cl.Kind {
	case token.SequenceItem:
		return p.parseSequence(indent)
	case token.KeyValue:
		return p.parseMapping(indent)
	default:
		return nil, newSyntaxErr(ln.No, "unexpected line")
	}
}

// parseInlineMappingItem handles "- key: value", where the sequence
// item's own line doubles as the first entry of a mapping; any further
// lines indented to align with that key continue the same mapping.
func (p *parser) parseInlineMappingItem(first token.Classified, firstLine, indent int) (*node.Node, error) {
	if err := p.enter(firstLine); err != nil {
		return nil, err
	}
	defer p.leave()

	m := node.NewMapping()
	val, err := p.parseEntryValue(first, indent, firstLine)
	if err != nil {
		return nil, err
	}
	m.Set(first.Key, val)
	for {
		if err := p.skipToContent(); err != nil {
			return nil, err
		}
		if p.pos >= len(p.lines) {
			break
		}
		ln := p.lines[p.pos]
		if ln.Indent != indent {
			break
		}
		cl, err := token.Classify(ln.Text)
		if err != nil {
			return nil, wrapTokenErr(err, ln.No)
		}
		if cl.Kind != token.KeyValue {
			break
		}
		leading, hasLeading := p.col.take()
		p.pos++
		v, err := p.parseEntryValue(cl, ln.Indent, ln.No)
		if err != nil {
			return nil, err
		}
		if hasLeading {
			v.SetLeading(leading)
		}
		m.Set(cl.Key, v)
	}
	return m, nil
}

// parseInlineSequenceItem is parseInlineMappingItem's analogue for
// "- - value" nested sequences.
func (p *parser) parseInlineSequenceItem(first token.Classified, firstLine, indent int) (*node.Node, error) {
	if err := p.enter(firstLine); err != nil {
		return nil, err
	}
	defer p.leave()

	seq := node.NewSequence()
	val, err := p.parseSequenceItemValue(first, indent, firstLine)
	if err != nil {
		return nil, err
	}
	seq.Append(val)
	for {
		if err := p.skipToContent(); err != nil {
			return nil, err
		}
		if p.pos >= len(p.lines) {
			break
		}
		ln := p.lines[p.pos]
		if ln.Indent != indent {
			break
		}
		cl, err := token.Classify(ln.Text)
		if err != nil {
			return nil, wrapTokenErr(err, ln.No)
		}
		if cl.Kind != token.SequenceItem {
			break
		}
		leading, hasLeading := p.col.take()
		p.pos++
		v, err := p.parseSequenceItemValue(cl, ln.Indent, ln.No)
		if err != nil {
			return nil, err
		}
		if hasLeading {
			v.SetLeading(leading)
		}
		seq.Append(v)
	}
	return seq, nil
}

// scalarFromValueText turns a value's raw text, already split off a key
// or a "- ", into a scalar node, dispatching to the block-scalar reader
// when the text opens with '|' or '>'. "{}" and "[]" are recognized as
// the empty mapping and empty sequence respectively: block style has no
// way to write an empty container, and the emitter falls back to this
// flow-style spelling only for that one case, so the parser accepts it
// back without taking on general flow-collection parsing.
func (p *parser) scalarFromValueText(s string, keyIndent, lineNo int) (*node.Node, error) {
	switch s {
	case "{}":
		return node.NewMapping(), nil
	case "[]":
		return node.NewSequence(), nil
	}
	if isBlockHeader(s) {
		return p.parseBlockScalar(s, lineNo, keyIndent)
	}
	val, inline, hasInline, err := p.lexValue(s)
	if err != nil {
		return nil, wrapTokenErr(err, lineNo)
	}
	n := node.NewString(val)
	if hasInline {
		n.SetInline(inline)
	}
	return n, nil
}

// parseBlockScalar reads a literal or folded block scalar whose header
// is header, opened by a key or item at keyLine/keyIndent. The parser's
// position must already sit on the first line after the header.
func (p *parser) parseBlockScalar(header string, keyLine, keyIndent int) (*node.Node, error) {
	h, err := token.ParseHeader(header)
	if err != nil {
		return nil, wrapTokenErr(err, keyLine)
	}
	content, next := token.CollectBody(p.lines, p.pos, keyIndent, h.ExplicitIndent, h.Chomp)
	p.pos = next
	n := node.NewString(token.Join(h.Literal, content, h.Chomp))
	if h.HasInline {
		n.SetInline(h.Inline)
	}
	return n, nil
}
