package token

import "testing"

func mustLines(t *testing.T, src string) []Line {
	t.Helper()
	lines, err := Split(src)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	return lines
}

func TestLiteralBlockDefaultChomp(t *testing.T) {
	lines := mustLines(t, "desc: |\n  line1\n  line2\n")
	content, _ := CollectBody(lines, 1, 0, 0, Clip)
	got := Join(true, content, Clip)
	if got != "line1\nline2\n" {
		t.Fatalf("got %q", got)
	}
}

func TestFoldedBlockDefaultChomp(t *testing.T) {
	lines := mustLines(t, "s: >\n  a\n  b\n\n  c\n")
	content, _ := CollectBody(lines, 1, 0, 0, Clip)
	got := Join(false, content, Clip)
	if got != "a b\nc\n" {
		t.Fatalf("got %q", got)
	}
}

func TestLiteralStripChomp(t *testing.T) {
	lines := mustLines(t, "desc: |-\n  z\n")
	content, _ := CollectBody(lines, 1, 0, 0, Strip)
	got := Join(true, content, Strip)
	if got != "z" {
		t.Fatalf("got %q", got)
	}
}

func TestLiteralKeepChomp(t *testing.T) {
	lines := mustLines(t, "desc: |+\n  z\n\n\nnext: 1\n")
	content, next := CollectBody(lines, 1, 0, 0, Keep)
	got := Join(true, content, Keep)
	if got != "z\n\n\n" {
		t.Fatalf("got %q", got)
	}
	if lines[next].Raw != "next: 1" {
		t.Fatalf("next line = %q", lines[next].Raw)
	}
}

func TestParseHeaderExplicitIndent(t *testing.T) {
	h, err := ParseHeader("|2-")
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if !h.Literal || h.Chomp != Strip || h.ExplicitIndent != 2 {
		t.Fatalf("got %+v", h)
	}
	h2, err := ParseHeader("|-2")
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if h2.ExplicitIndent != 2 || h2.Chomp != Strip {
		t.Fatalf("got %+v", h2)
	}
}
