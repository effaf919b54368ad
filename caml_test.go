package caml

import (
	"strings"
	"testing"

	"github.com/sanjeevprasad/yamp/node"
)

func TestParseThenEmitRoundTrip(t *testing.T) {
	src := "# header\nname: John  # inline\npets:\n  - cat\n  - dog\n"
	root, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := root.Get("name"); got == nil {
		t.Fatalf("missing name entry")
	} else if s, _ := got.AsString(); s != "John" {
		t.Fatalf("name = %q", s)
	}
	out, err := Emit(root)
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	again, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse(Emit(root)): %v", err)
	}
	if again.Get("name").Scalar != "John" {
		t.Fatalf("round trip lost name")
	}
	pets := again.Get("pets")
	if pets == nil || len(pets.Items) != 2 {
		t.Fatalf("round trip lost pets: %+v", pets)
	}
}

func TestBuildFromScratch(t *testing.T) {
	root := Mapping().
		Set("name", String("Ada")).
		Set("tags", Sequence().Append(String("math")).Append(String("engineer")))
	out, err := Emit(root)
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	want := "name: Ada\ntags:\n  - math\n  - engineer\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestBuiltNodeCommentsSurviveRoundTrip(t *testing.T) {
	v := String("v").SetLeading("why this exists").SetInline("note")
	root := Mapping().Set("k", v)
	out, err := Emit(root)
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if !strings.Contains(out, "# why this exists") || !strings.Contains(out, "# note") {
		t.Fatalf("comments missing from %q", out)
	}
	reparsed, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := reparsed.Get("k")
	if leading, ok := got.Leading(); !ok || leading != "why this exists" {
		t.Fatalf("leading = %q, %v", leading, ok)
	}
	if inline, ok := got.Inline(); !ok || inline != "note" {
		t.Fatalf("inline = %q, %v", inline, ok)
	}
}

func TestEmptyDocumentParsesToEmptyMapping(t *testing.T) {
	root, err := Parse("")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if root.Kind != node.Mapping {
		t.Fatalf("kind = %v", root.Kind)
	}
	if len(root.Entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(root.Entries))
	}
}
