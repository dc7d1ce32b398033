package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jslint-dev/jslint/internal/syntax"
)

type tokenExpectation struct {
	Kind syntax.Kind
	Text string
}

func tokenize(t *testing.T, src string) ([]tokenExpectation, []Diagnostic) {
	t.Helper()
	lx := New(src)
	var out []tokenExpectation
	var diags []Diagnostic
	offset := 0
	for {
		tok, diag, ok := lx.Next()
		if !ok {
			break
		}
		if diag != nil {
			diags = append(diags, *diag)
		}
		out = append(out, tokenExpectation{Kind: tok.Kind, Text: src[offset : offset+int(tok.Length)]})
		offset += int(tok.Length)
	}
	return out, diags
}

func significant(toks []tokenExpectation) []tokenExpectation {
	var out []tokenExpectation
	for _, tok := range toks {
		if !tok.Kind.IsTrivia() {
			out = append(out, tok)
		}
	}
	return out
}

func TestLexerPunctuationLongestMatch(t *testing.T) {
	toks, diags := tokenize(t, "a >>>= b")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	got := significant(toks)
	want := []tokenExpectation{
		{syntax.IDENT, "a"},
		{syntax.USHREQ, ">>>="},
		{syntax.IDENT, "b"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestLexerKeywordsAndIdents(t *testing.T) {
	toks, _ := tokenize(t, "let of async get")
	got := significant(toks)
	// "of", "async", and "get" are contextual keywords: lexed as IDENT, not
	// as their own Kind — only the parser resolves them by position.
	want := []tokenExpectation{
		{syntax.LET_KW, "let"},
		{syntax.IDENT, "of"},
		{syntax.IDENT, "async"},
		{syntax.IDENT, "get"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestLexerNumberExponentDiagnostic(t *testing.T) {
	_, diags := tokenize(t, "1e")
	if len(diags) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d: %v", len(diags), diags)
	}
	if diags[0].Message != "invalid exponent without a number" {
		t.Errorf("unexpected diagnostic message: %q", diags[0].Message)
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	_, diags := tokenize(t, "\"abc")
	if len(diags) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d", len(diags))
	}
}

func TestLexerRegexVsDivideContext(t *testing.T) {
	toks, diags := tokenize(t, "a / b")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	got := significant(toks)
	want := []tokenExpectation{
		{syntax.IDENT, "a"},
		{syntax.SLASH, "/"},
		{syntax.IDENT, "b"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}

	toks2, diags2 := tokenize(t, "return /ab+c/")
	if len(diags2) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags2)
	}
	got2 := significant(toks2)
	want2 := []tokenExpectation{
		{syntax.RETURN_KW, "return"},
		{syntax.REGEX, "/ab+c/"},
	}
	if diff := cmp.Diff(want2, got2); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestLexerTemplateNesting(t *testing.T) {
	toks, diags := tokenize(t, "`a${`b${c}d`}e`")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	got := significant(toks)
	if len(got) != 1 || got[0].Kind != syntax.TEMPLATE {
		t.Fatalf("expected a single TEMPLATE token spanning the whole nested template, got %v", got)
	}
}

// Every lexer call must advance: feeding a fully-consumed lexer nothing but
// a final Next() call must report done rather than loop.
func TestLexerTerminates(t *testing.T) {
	lx := New("")
	if _, _, ok := lx.Next(); ok {
		t.Fatalf("expected Next to report done immediately on empty input")
	}
}
