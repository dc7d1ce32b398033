package treebuilder

import (
	"testing"

	"github.com/jslint-dev/jslint/internal/parser"
	"github.com/jslint-dev/jslint/internal/syntax"
)

// build parses src and folds it into a CST, mirroring what linter.File does.
func build(src string) (text string, diags []Diagnostic) {
	res := parser.ParseScript(src)
	root, d := Build(res.Events, res.Raw, src, syntax.SCRIPT)
	return root.Text(), d
}

func TestBuildLosslessRoundTrip(t *testing.T) {
	sources := []string{
		"",
		"  \n\t",
		"let x = 1;",
		"// a comment\nfunction f(a, b) { return a + b; }\n",
		"if (a) { b(); } else if (c) { d() } else e();",
		"const obj = { a: 1, [b]: 2, ...c };",
		"for (let i = 0; i < 10; i++) { continue; }",
		"class A extends B { static x = 1; #y() {} }",
		"`a${ `b${c}d` }e`;",
		"x = a?.b?.[c]?.(d);",
		"/* unterminated",
	}
	for _, src := range sources {
		got, _ := build(src)
		if got != src {
			t.Errorf("lossless round trip failed:\n got: %q\nwant: %q", got, src)
		}
	}
}

func TestBuildAttachesParserDiagnostics(t *testing.T) {
	_, diags := build("if (a")
	if len(diags) == 0 {
		t.Fatalf("expected at least one diagnostic for malformed input")
	}
}

func TestBuildEmptyEventsStillProducesRoot(t *testing.T) {
	root, _ := Build(nil, nil, "", syntax.SCRIPT)
	if root.Kind() != syntax.SCRIPT {
		t.Fatalf("expected SCRIPT root, got %v", root.Kind())
	}
	if root.Text() != "" {
		t.Fatalf("expected empty text, got %q", root.Text())
	}
}
