package rules

import (
	"github.com/jslint-dev/jslint/internal/red"
	"github.com/jslint-dev/jslint/internal/syntax"
	"github.com/jslint-dev/jslint/rule"
)

// NoDuplicateCase flags a switch statement with two or more "case" clauses
// whose test expressions are textually identical source snippets — a
// structural-comparison shortcut over genuine expression equality, grounded
// on rslint_core's util/const_exprs.rs comparison helpers (recovered from
// original_source/crates/rslint_core/src/util/const_exprs.rs).
type NoDuplicateCase struct{ rule.Base }

func (NoDuplicateCase) Name() string  { return "no-duplicate-case" }
func (NoDuplicateCase) Group() string { return "errors" }
func (NoDuplicateCase) Docs() string {
	return "disallow duplicate case labels in a switch statement"
}
func (NoDuplicateCase) Tags() []string { return []string{"recommended"} }

func (r NoDuplicateCase) CheckNode(ctx *rule.Ctx, n *red.Node) {
	if n.Kind() != syntax.SWITCH_STMT {
		return
	}
	seen := make(map[string]bool)
	for _, c := range n.ChildrenByKind(syntax.SWITCH_CASE) {
		test := caseTest(c)
		if test == nil {
			continue
		}
		text := test.Text()
		if seen[text] {
			start, end := test.Range()
			ctx.Report(uint32(start), uint32(end-start), "duplicate case clause: this expression matches an earlier case in the same switch")
			continue
		}
		seen[text] = true
	}
}

// caseTest returns a SWITCH_CASE node's test expression, or nil for a
// "default" clause, which never has one.
func caseTest(switchCase *red.Node) *red.Node {
	children := switchCase.Children()
	if len(children) == 0 {
		return nil
	}
	if isStatementShaped(children[0].Kind()) {
		return nil
	}
	return children[0]
}
