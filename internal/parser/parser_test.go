package parser

import (
	"testing"

	"github.com/jslint-dev/jslint/internal/syntax"
	"github.com/jslint-dev/jslint/internal/treebuilder"
)

// parseToTree parses src as a script and folds it into a red CST, the same
// path linter.File.ensureParsed takes.
func parseToTree(t *testing.T, src string) (root string, diagCount int) {
	t.Helper()
	res := ParseScript(src)
	tree, diags := treebuilder.Build(res.Events, res.Raw, src, syntax.SCRIPT)
	if tree.Text() != src {
		t.Fatalf("lossless round trip failed for %q: got %q", src, tree.Text())
	}
	return tree.Text(), len(diags) + len(res.Diagnostics)
}

func TestParseNoErrorsOnValidPrograms(t *testing.T) {
	sources := []string{
		"var x = 1, y = 2;",
		"let [a, b = 2, ...rest] = arr;",
		"const { a, b: c, ...d } = obj;",
		"function f(a, b = 1, ...rest) { return a + b; }",
		"async function* g() { yield await f(); }",
		"const arrow = (a, b) => a + b;",
		"const arrow2 = a => a * 2;",
		"const arrow3 = async (a) => { return a; };",
		"class A extends B { constructor() { super(); } get x() { return 1; } static async *m() {} }",
		"for (const x of xs) { console.log(x); }",
		"for (const k in obj) { console.log(k); }",
		"for (let i = 0; i < 10; i++) {}",
		"try { f(); } catch (e) { g(e); } finally { h(); }",
		"switch (x) { case 1: break; default: break; }",
		"label: for (;;) { break label; }",
		"a?.b?.[c]?.(d);",
		"x = y ?? z;",
		"x **= 2;",
	}
	for _, src := range sources {
		if _, n := parseToTree(t, src); n != 0 {
			t.Errorf("expected no diagnostics for %q, got %d", src, n)
		}
	}
}

func TestParseASIInsertsBeforeNewlineAndClosingBrace(t *testing.T) {
	src := "function f() {\n  return\n  1\n}"
	if _, n := parseToTree(t, src); n != 0 {
		t.Errorf("expected ASI to parse without diagnostics, got %d diagnostics", n)
	}
}

func TestParseArrowVsParenExprDisambiguation(t *testing.T) {
	sources := []string{
		"(a, b) => a + b;",
		"(a) => a;",
		"(a, b);", // plain parenthesized sequence expression, not an arrow
	}
	for _, src := range sources {
		if _, n := parseToTree(t, src); n != 0 {
			t.Errorf("expected no diagnostics for %q, got %d", src, n)
		}
	}
}

func TestParseForInLegacyInitializerDiagnostic(t *testing.T) {
	_, n := parseToTree(t, "for (var x = 0 in obj) {}")
	if n == 0 {
		t.Fatalf("expected a diagnostic for a for-in loop variable with an initializer")
	}
}

func TestParseClassicForLoopDoesNotAbort(t *testing.T) {
	res := ParseScript("for (let i = 0; i < 1; i++) {}")
	if res.Aborted {
		t.Fatalf("parser aborted unexpectedly")
	}
}

func TestParseRecoversFromUnexpectedToken(t *testing.T) {
	res := ParseScript("if (a")
	if len(res.Diagnostics) == 0 {
		t.Fatalf("expected at least one diagnostic recovering from malformed input")
	}
	if res.Aborted {
		t.Fatalf("parser should not hit the lookahead-step cap on a short malformed input")
	}
}

func TestParseDuplicateSwitchDefaultDiagnostic(t *testing.T) {
	_, n := parseToTree(t, "switch (x) { default: break; default: break; }")
	if n == 0 {
		t.Fatalf("expected a diagnostic for a second default clause")
	}
}
