package token

import "testing"

func TestLexPlainStopsAtInlineComment(t *testing.T) {
	v, inline, has, err := LexValue("value here  # a comment")
	if err != nil {
		t.Fatalf("LexValue: %v", err)
	}
	if v != "value here" || !has || inline != "a comment" {
		t.Fatalf("got value=%q inline=%q has=%v", v, inline, has)
	}
}

func TestLexPlainNoInterpretation(t *testing.T) {
	for _, v := range []string{"NO", "3.10", "0755", "~", "true", "yes", ".inf", "12:34:56", "null", "TRUE"} {
		got, _, _, err := LexValue(v)
		if err != nil {
			t.Fatalf("LexValue(%q): %v", v, err)
		}
		if got != v {
			t.Fatalf("LexValue(%q) = %q, want verbatim", v, got)
		}
	}
}

func TestLexSingleQuoted(t *testing.T) {
	got, _, _, err := LexValue(`'it''s fine'`)
	if err != nil {
		t.Fatalf("LexValue: %v", err)
	}
	if got != "it's fine" {
		t.Fatalf("got %q, want %q", got, "it's fine")
	}
}

func TestLexDoubleQuotedEscapes(t *testing.T) {
	got, _, _, err := LexValue(`"a\nb\tc"`)
	if err != nil {
		t.Fatalf("LexValue: %v", err)
	}
	if got != "a\nb\tc" {
		t.Fatalf("got %q", got)
	}
}

func TestLexDoubleQuotedBadEscape(t *testing.T) {
	_, _, _, err := LexValue(`"a\qb"`)
	if err == nil {
		t.Fatalf("expected SyntaxError for unknown escape")
	}
}

func TestQuotedScalarCarriesInlineComment(t *testing.T) {
	v, inline, has, err := LexValue(`"a" # comment`)
	if err != nil {
		t.Fatalf("LexValue: %v", err)
	}
	if v != "a" || !has || inline != "comment" {
		t.Fatalf("got value=%q inline=%q has=%v", v, inline, has)
	}
}

func TestQuotedRejectsTrailingGarbage(t *testing.T) {
	_, _, _, err := LexValue(`"a" comment`)
	if err == nil {
		t.Fatalf("expected SyntaxError: text after a quoted scalar must be a comment")
	}
}

func TestQuotedRejectsHashWithoutSeparatingSpace(t *testing.T) {
	_, _, _, err := LexValue(`"a"# comment`)
	if err == nil {
		t.Fatalf("expected SyntaxError: '#' must be separated from the closing quote by whitespace")
	}
}
