package node

// Kind discriminates the three possible shapes a Node's value can take.
// There is no fourth shape: booleans, numbers, and nulls are not distinct
// from String at this layer.
type Kind int

const (
	String Kind = iota
	Mapping
	Sequence
)

func (k Kind) String() string {
	switch k {
	case String:
		return "String"
	case Mapping:
		return "Mapping"
	case Sequence:
		return "Sequence"
	default:
		return "Kind(?)"
	}
}

// Entry is one (key, value) pair of a Mapping, in source order.
type Entry struct {
	Key   string
	Value *Node
}

// Node is a value plus its attached comments. Exactly one of the Value
// fields below is meaningful, selected by Kind.
type Node struct {
	Kind Kind

	// Scalar holds the leaf text when Kind == String. It is never
	// interpreted: "true", "0755", "~" and similar are stored verbatim.
	Scalar string

	// Entries holds the ordered (key, value) pairs when Kind == Mapping.
	Entries []Entry

	// Items holds the ordered children when Kind == Sequence.
	Items []*Node

	// leading is the comment attached ahead of this node, one original
	// comment line per "\n"-separated segment. hasLeading distinguishes
	// "no leading comment" from a leading comment whose text is "".
	leading    string
	hasLeading bool

	// inline is the same-line trailing comment, a single logical line.
	// For a root Node, inline doubles as the document's trailing-comment
	// carrier (see the emit and parse packages).
	inline    string
	hasInline bool
}

// NewString returns a String-valued Node with no comments.
func NewString(s string) *Node {
	return &Node{Kind: String, Scalar: s}
}

// NewMapping returns an empty Mapping-valued Node.
func NewMapping() *Node {
	return &Node{Kind: Mapping}
}

// NewSequence returns an empty Sequence-valued Node.
func NewSequence() *Node {
	return &Node{Kind: Sequence}
}

// AsString returns the scalar text and true when n is a String node, and
// ("", false) otherwise.
func (n *Node) AsString() (string, bool) {
	if n == nil || n.Kind != String {
		return "", false
	}
	return n.Scalar, true
}

// Leading returns the leading comment text and whether one is present.
func (n *Node) Leading() (string, bool) {
	if n == nil {
		return "", false
	}
	return n.leading, n.hasLeading
}

// Inline returns the inline comment text and whether one is present.
func (n *Node) Inline() (string, bool) {
	if n == nil {
		return "", false
	}
	return n.inline, n.hasInline
}

// SetLeading sets the leading comment text, possibly spanning multiple
// "\n"-joined lines.
func (n *Node) SetLeading(s string) *Node {
	n.leading = s
	n.hasLeading = true
	return n
}

// SetInline sets the single-line inline comment.
func (n *Node) SetInline(s string) *Node {
	n.inline = s
	n.hasInline = true
	return n
}

// ClearLeading removes the leading comment, if any.
func (n *Node) ClearLeading() *Node {
	n.leading = ""
	n.hasLeading = false
	return n
}

// ClearInline removes the inline comment, if any.
func (n *Node) ClearInline() *Node {
	n.inline = ""
	n.hasInline = false
	return n
}

// Get returns the value associated with key in a Mapping node, or nil if
// n is not a Mapping or the key is absent. Duplicate keys keep the
// earliest position but the value is the last one written during
// parsing, so at most one Entry for key is ever stored.
func (n *Node) Get(key string) *Node {
	if n == nil || n.Kind != Mapping {
		return nil
	}
	for i := range n.Entries {
		if n.Entries[i].Key == key {
			return n.Entries[i].Value
		}
	}
	return nil
}

// GetMut is Get: in Go every returned *Node is already mutable through
// its pointer. It exists for parity with the spec's read/write accessor
// pair on the external interface.
func (n *Node) GetMut(key string) *Node {
	return n.Get(key)
}

// Set inserts key/value into a Mapping, or overwrites the value of an
// existing entry in place (preserving its original position). It is a
// no-op, returning n unchanged, if n is not a Mapping.
func (n *Node) Set(key string, v *Node) *Node {
	if n == nil || n.Kind != Mapping {
		return n
	}
	for i := range n.Entries {
		if n.Entries[i].Key == key {
			n.Entries[i].Value = v
			return n
		}
	}
	n.Entries = append(n.Entries, Entry{Key: key, Value: v})
	return n
}

// Delete removes key from a Mapping, preserving the order of remaining
// entries. It is a no-op if n is not a Mapping or key is absent.
func (n *Node) Delete(key string) *Node {
	if n == nil || n.Kind != Mapping {
		return n
	}
	for i := range n.Entries {
		if n.Entries[i].Key == key {
			n.Entries = append(n.Entries[:i], n.Entries[i+1:]...)
			return n
		}
	}
	return n
}

// Append adds v as the last item of a Sequence. It is a no-op if n is
// not a Sequence.
func (n *Node) Append(v *Node) *Node {
	if n == nil || n.Kind != Sequence {
		return n
	}
	n.Items = append(n.Items, v)
	return n
}

// Clone returns a deep, independently-owned copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{
		Kind:       n.Kind,
		Scalar:     n.Scalar,
		leading:    n.leading,
		hasLeading: n.hasLeading,
		inline:     n.inline,
		hasInline:  n.hasInline,
	}
	if n.Entries != nil {
		c.Entries = make([]Entry, len(n.Entries))
		for i, e := range n.Entries {
			c.Entries[i] = Entry{Key: e.Key, Value: e.Value.Clone()}
		}
	}
	if n.Items != nil {
		c.Items = make([]*Node, len(n.Items))
		for i, it := range n.Items {
			c.Items[i] = it.Clone()
		}
	}
	return c
}
