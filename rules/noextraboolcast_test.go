package rules

import (
	"context"
	"testing"

	"github.com/jslint-dev/jslint/diagnostic"
	"github.com/jslint-dev/jslint/linter"
	"github.com/jslint-dev/jslint/rule"
)

func lintOne(t *testing.T, store *rule.Store, src string) linter.FileResult {
	t.Helper()
	fs := linter.NewFileSet()
	fs.Add("t.js", "t.js", src)
	cfg := linter.DefaultConfig(store.Names())
	runner := linter.NewRunner(store, cfg)
	result := runner.Run(context.Background(), fs)
	if len(result.Files) != 1 {
		t.Fatalf("expected exactly one file result, got %d", len(result.Files))
	}
	return result.Files[0]
}

func TestNoExtraBooleanCastFlagsDoubleNegationInIf(t *testing.T) {
	store := rule.NewStore(NoExtraBooleanCast{})
	fr := lintOne(t, store, "if (!!foo) {}")
	if len(fr.Diagnostics) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d: %v", len(fr.Diagnostics), fr.Diagnostics)
	}
	if fr.Diagnostics[0].Severity != diagnostic.Error {
		t.Errorf("expected Error severity, got %v", fr.Diagnostics[0].Severity)
	}
	if len(fr.Indels) != 1 {
		t.Fatalf("expected exactly one proposed fix, got %d", len(fr.Indels))
	}
}

func TestNoExtraBooleanCastFlagsBooleanCallWrappingDoubleNegation(t *testing.T) {
	store := rule.NewStore(NoExtraBooleanCast{})
	fr := lintOne(t, store, "x = Boolean(!!bar);")
	if len(fr.Diagnostics) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d: %v", len(fr.Diagnostics), fr.Diagnostics)
	}
}

func TestNoExtraBooleanCastAllowsPlainDoubleNegationAssignment(t *testing.T) {
	store := rule.NewStore(NoExtraBooleanCast{})
	fr := lintOne(t, store, "var foo = !!bar;")
	if len(fr.Diagnostics) != 0 {
		t.Fatalf("expected zero diagnostics, got %d: %v", len(fr.Diagnostics), fr.Diagnostics)
	}
}

func TestNoExtraBooleanCastFlagsTernaryTest(t *testing.T) {
	store := rule.NewStore(NoExtraBooleanCast{})
	fr := lintOne(t, store, "var x = !!foo ? bar : baz;")
	if len(fr.Diagnostics) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d: %v", len(fr.Diagnostics), fr.Diagnostics)
	}
}

func TestNoExtraBooleanCastReportsSecondaryLabel(t *testing.T) {
	store := rule.NewStore(NoExtraBooleanCast{})
	fr := lintOne(t, store, "if (!!foo) {}")
	if len(fr.Diagnostics) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d: %v", len(fr.Diagnostics), fr.Diagnostics)
	}
	if len(fr.Diagnostics[0].SecondaryLabels) != 1 {
		t.Fatalf("expected a secondary label explaining the coercion, got %v", fr.Diagnostics[0])
	}
}

func TestNoExtraBooleanCastAllowsLogicalOperandByDefault(t *testing.T) {
	store := rule.NewStore(NoExtraBooleanCast{})
	fr := lintOne(t, store, "var foo = !!bar && baz;")
	if len(fr.Diagnostics) != 0 {
		t.Fatalf("expected zero diagnostics by default, got %d: %v", len(fr.Diagnostics), fr.Diagnostics)
	}
}

func TestNoExtraBooleanCastFlagsLogicalOperandWhenEnforced(t *testing.T) {
	store := rule.NewStore(NoExtraBooleanCast{})
	fs := linter.NewFileSet()
	fs.Add("t.js", "t.js", "if (!!foo || bar) {}")
	cfg := linter.DefaultConfig(store.Names())
	cfg.Rules["no-extra-boolean-cast"] = linter.RuleConfig{
		Level:   cfg.Rules["no-extra-boolean-cast"].Level,
		Options: []byte(`{"enforceForLogicalOperands": true}`),
	}
	runner := linter.NewRunner(store, cfg)
	result := runner.Run(context.Background(), fs)
	if len(result.Files) != 1 || len(result.Files[0].Diagnostics) != 1 {
		t.Fatalf("expected exactly one diagnostic with enforceForLogicalOperands on, got %v", result.Files[0].Diagnostics)
	}
}

func TestNoExtraBooleanCastAllowsLogicalOperandOutsideCoercingContextEvenWhenEnforced(t *testing.T) {
	store := rule.NewStore(NoExtraBooleanCast{})
	fs := linter.NewFileSet()
	fs.Add("t.js", "t.js", "var foo = !!bar || baz;")
	cfg := linter.DefaultConfig(store.Names())
	cfg.Rules["no-extra-boolean-cast"] = linter.RuleConfig{
		Level:   cfg.Rules["no-extra-boolean-cast"].Level,
		Options: []byte(`{"enforceForLogicalOperands": true}`),
	}
	runner := linter.NewRunner(store, cfg)
	result := runner.Run(context.Background(), fs)
	if len(result.Files) != 1 || len(result.Files[0].Diagnostics) != 0 {
		t.Fatalf("expected zero diagnostics since the assignment itself isn't a coercing context, got %v", result.Files[0].Diagnostics)
	}
}

func TestNoCondAssignFlagsBareAssignmentInWhileTest(t *testing.T) {
	store := rule.NewStore(NoCondAssign{})
	fr := lintOne(t, store, "while (x = next()) { use(x); }")
	if len(fr.Diagnostics) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d: %v", len(fr.Diagnostics), fr.Diagnostics)
	}
}

func TestNoCondAssignAllowsEqualityInIfTest(t *testing.T) {
	store := rule.NewStore(NoCondAssign{})
	fr := lintOne(t, store, "if (x == next()) {}")
	if len(fr.Diagnostics) != 0 {
		t.Fatalf("expected zero diagnostics, got %d: %v", len(fr.Diagnostics), fr.Diagnostics)
	}
}

func TestNoDuplicateCaseFlagsRepeatedCaseTest(t *testing.T) {
	store := rule.NewStore(NoDuplicateCase{})
	fr := lintOne(t, store, "switch (x) { case 1: break; case 2: break; case 1: break; }")
	if len(fr.Diagnostics) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d: %v", len(fr.Diagnostics), fr.Diagnostics)
	}
}

func TestNoDuplicateCaseAllowsDistinctCases(t *testing.T) {
	store := rule.NewStore(NoDuplicateCase{})
	fr := lintOne(t, store, "switch (x) { case 1: break; case 2: break; default: break; }")
	if len(fr.Diagnostics) != 0 {
		t.Fatalf("expected zero diagnostics, got %d: %v", len(fr.Diagnostics), fr.Diagnostics)
	}
}

func TestDirectiveSuppressesMatchingRule(t *testing.T) {
	store := rule.NewStore(NoExtraBooleanCast{})
	fr := lintOne(t, store, "// rslint-ignore no-extra-boolean-cast\nif (!!foo) {}")
	if len(fr.Diagnostics) != 0 {
		t.Fatalf("expected the directive to suppress the diagnostic, got %d: %v", len(fr.Diagnostics), fr.Diagnostics)
	}
}

func TestDirectiveIsScopedToItsOwnNode(t *testing.T) {
	store := rule.NewStore(NoExtraBooleanCast{})
	src := "if (!!foo) {}\n" +
		"// rslint-ignore no-extra-boolean-cast\n" +
		"if (!!bar) {}\n" +
		"if (!!baz) {}\n"
	fr := lintOne(t, store, src)
	if len(fr.Diagnostics) != 2 {
		t.Fatalf("expected the directive to suppress only the if(!!bar) it precedes, got %d: %v", len(fr.Diagnostics), fr.Diagnostics)
	}
}

func TestDirectiveUnknownRuleNameProducesSuggestion(t *testing.T) {
	store := rule.NewStore(NoExtraBooleanCast{})
	fr := lintOne(t, store, "// rslint-ignore no-extre-boolean-cast\nif (!!foo) {}")
	var found bool
	for _, d := range fr.Diagnostics {
		if d.Code == "directive" {
			found = true
			if !containsSuggestion(d.Message) {
				t.Errorf("expected a did-you-mean suggestion in %q", d.Message)
			}
		}
	}
	if !found {
		t.Fatalf("expected an unknown-rule-name diagnostic, got %v", fr.Diagnostics)
	}
	// The unknown rule name means the directive never matched, so the
	// underlying rule diagnostic still fires.
	var sawRuleDiag bool
	for _, d := range fr.Diagnostics {
		if d.Code == "no-extra-boolean-cast" {
			sawRuleDiag = true
		}
	}
	if !sawRuleDiag {
		t.Errorf("expected no-extra-boolean-cast to still fire since the directive misnamed it")
	}
}

func containsSuggestion(msg string) bool {
	for i := 0; i+len("did you mean") <= len(msg); i++ {
		if msg[i:i+len("did you mean")] == "did you mean" {
			return true
		}
	}
	return false
}

func TestDirectiveDuplicateRuleNameWarns(t *testing.T) {
	store := rule.NewStore(NoExtraBooleanCast{})
	fr := lintOne(t, store, "// rslint-ignore no-extra-boolean-cast,no-extra-boolean-cast\nif (!!foo) {}")
	var sawWarning bool
	for _, d := range fr.Diagnostics {
		if d.Code == "directive" && d.Severity == diagnostic.Warning {
			sawWarning = true
		}
	}
	if !sawWarning {
		t.Fatalf("expected a duplicate-rule warning diagnostic, got %v", fr.Diagnostics)
	}
}
