package node

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestMappingSetGetOrder(t *testing.T) {
	m := NewMapping()
	m.Set("a", NewString("1"))
	m.Set("b", NewString("2"))
	m.Set("a", NewString("3"))

	if got, _ := m.Get("a").AsString(); got != "3" {
		t.Fatalf("Get(a) = %q, want 3", got)
	}
	if len(m.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2 (duplicate key must overwrite in place)", len(m.Entries))
	}
	if m.Entries[0].Key != "a" || m.Entries[1].Key != "b" {
		t.Fatalf("order changed: %v", m.Entries)
	}
}

func TestMappingDeletePreservesOrder(t *testing.T) {
	m := NewMapping()
	m.Set("a", NewString("1"))
	m.Set("b", NewString("2"))
	m.Set("c", NewString("3"))
	m.Delete("b")

	var keys []string
	for _, e := range m.Entries {
		keys = append(keys, e.Key)
	}
	want := []string{"a", "c"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Fatalf("unexpected key order (-want +got):\n%s", diff)
	}
}

func TestSequenceAppend(t *testing.T) {
	s := NewSequence()
	s.Append(NewString("x"))
	s.Append(NewString("y"))
	if len(s.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(s.Items))
	}
}

func TestCommentAccessors(t *testing.T) {
	n := NewString("v")
	if _, ok := n.Leading(); ok {
		t.Fatalf("fresh node should have no leading comment")
	}
	n.SetLeading("hdr")
	if got, ok := n.Leading(); !ok || got != "hdr" {
		t.Fatalf("Leading() = %q,%v want hdr,true", got, ok)
	}
	n.ClearLeading()
	if _, ok := n.Leading(); ok {
		t.Fatalf("leading comment should be cleared")
	}

	n.SetInline("")
	if got, ok := n.Inline(); !ok || got != "" {
		t.Fatalf("Inline() = %q,%v want empty,true (empty inline comment is distinct from absent)", got, ok)
	}
}

func TestClone(t *testing.T) {
	orig := NewMapping()
	orig.Set("seq", NewSequence().Append(NewString("a")).Append(NewString("b")))
	orig.SetLeading("hdr")

	clone := orig.Clone()
	clone.Get("seq").Items[0].Scalar = "mutated"

	opts := []cmp.Option{cmpopts.EquateComparable()}
	if diff := cmp.Diff("a", orig.Get("seq").Items[0].Scalar, opts...); diff != "" {
		t.Fatalf("mutating the clone must not affect the original (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("mutated", clone.Get("seq").Items[0].Scalar); diff != "" {
		t.Fatalf("clone mutation didn't take (-want +got):\n%s", diff)
	}
}
