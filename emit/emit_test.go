package emit

import (
	"testing"

	"github.com/sanjeevprasad/yamp/node"
	"github.com/sanjeevprasad/yamp/parse"
)

func mustEmit(t *testing.T, n *node.Node) string {
	t.Helper()
	s, err := Emit(n)
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	return s
}

func roundTrip(t *testing.T, src string) (*node.Node, *node.Node, string) {
	t.Helper()
	first, err := parse.Parse(src)
	if err != nil {
		t.Fatalf("Parse(first): %v", err)
	}
	out := mustEmit(t, first)
	second, err := parse.Parse(out)
	if err != nil {
		t.Fatalf("Parse(second) on emitted text %q: %v", out, err)
	}
	return first, second, out
}

func TestEmitSimpleScalarEntry(t *testing.T) {
	n := node.NewMapping().Set("name", node.NewString("John"))
	got := mustEmit(t, n)
	if got != "name: John\n" {
		t.Fatalf("got %q", got)
	}
}

func TestEmitLeadingAndInlineComment(t *testing.T) {
	v := node.NewString("v").SetLeading("hdr").SetInline("inline")
	n := node.NewMapping().Set("k", v)
	got := mustEmit(t, n)
	want := "# hdr\nk: v # inline\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEmitLiteralBlockScalarClip(t *testing.T) {
	n := node.NewMapping().Set("desc", node.NewString("line1\nline2\n"))
	got := mustEmit(t, n)
	want := "desc: |\n  line1\n  line2\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEmitNestedSequence(t *testing.T) {
	seq := node.NewSequence().Append(node.NewString("x")).Append(node.NewString("y"))
	n := node.NewMapping().Set("a", seq)
	got := mustEmit(t, n)
	want := "a:\n  - x\n  - y\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEmitSequenceOfMappingsInlineFirstEntry(t *testing.T) {
	item := node.NewMapping().Set("name", node.NewString("a")).Set("size", node.NewString("1"))
	seq := node.NewSequence().Append(item)
	n := node.NewMapping().Set("items", seq)
	got := mustEmit(t, n)
	want := "items:\n  - name: a\n    size: 1\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEmitEmptyMappingValueUsesFlowFallback(t *testing.T) {
	n := node.NewMapping().Set("a", node.NewMapping())
	got := mustEmit(t, n)
	if got != "a: {}\n" {
		t.Fatalf("got %q", got)
	}
}

func TestEmitRootTrailingComment(t *testing.T) {
	n := node.NewMapping().Set("k", node.NewString("v"))
	n.SetInline("bye")
	got := mustEmit(t, n)
	want := "k: v\n# bye\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRoundTripQuotedScalarWithInlineComment(t *testing.T) {
	first, second, out := roundTrip(t, "k: @foo # c")
	v, ok := first.Get("k").AsString()
	if !ok || v != "@foo" {
		t.Fatalf("source value = %q, ok=%v", v, ok)
	}
	if got, want := out, `k: "@foo" # c`+"\n"; got != want {
		t.Fatalf("emitted %q, want %q", got, want)
	}
	if !nodesEqual(first, second) {
		t.Fatalf("round trip mismatch")
	}
}

func TestRoundTripScenario2(t *testing.T) {
	first, second, _ := roundTrip(t, "# hdr\nk: v  # inline\n")
	if !nodesEqual(first, second) {
		t.Fatalf("round trip mismatch")
	}
}

func TestRoundTripLiteralBlockScalar(t *testing.T) {
	first, second, _ := roundTrip(t, "desc: |\n  line1\n  line2\n")
	if !nodesEqual(first, second) {
		t.Fatalf("round trip mismatch")
	}
}

func TestRoundTripFoldedBlockNormalizesToLiteral(t *testing.T) {
	// The emitter always renders multiline strings as literal blocks, so
	// the second parse differs from the folded-block source in style but
	// not in decoded value.
	first, err := parse.Parse("s: >\n  a\n  b\n\n  c\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out := mustEmit(t, first)
	second, err := parse.Parse(out)
	if err != nil {
		t.Fatalf("Parse(second): %v", err)
	}
	if !nodesEqual(first, second) {
		t.Fatalf("round trip mismatch: emitted %q", out)
	}
}

func TestRoundTripDuplicateKeyOrderAndValue(t *testing.T) {
	first, second, _ := roundTrip(t, "a: 1\nb: 2\na: 3\n")
	if !nodesEqual(first, second) {
		t.Fatalf("round trip mismatch")
	}
}

// nodesEqual is a small structural comparator kept local to this test
// file, independent of the package's own Clone or any external
// diffing dependency, so emit's tests do not depend on parse's tests or
// vice versa.
func nodesEqual(a, b *node.Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	al, aok := a.Leading()
	bl, bok := b.Leading()
	if aok != bok || al != bl {
		return false
	}
	ai, aiok := a.Inline()
	bi, biok := b.Inline()
	if aiok != biok || ai != bi {
		return false
	}
	switch a.Kind {
	case node.String:
		return a.Scalar == b.Scalar
	case node.Mapping:
		if len(a.Entries) != len(b.Entries) {
			return false
		}
		for i := range a.Entries {
			if a.Entries[i].Key != b.Entries[i].Key {
				return false
			}
			if !nodesEqual(a.Entries[i].Value, b.Entries[i].Value) {
				return false
			}
		}
		return true
	case node.Sequence:
		if len(a.Items) != len(b.Items) {
			return false
		}
		for i := range a.Items {
			if !nodesEqual(a.Items[i], b.Items[i]) {
				return false
			}
		}
		return true
	}
	return false
}
