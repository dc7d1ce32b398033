package rules

import (
	"github.com/jslint-dev/jslint/internal/red"
	"github.com/jslint-dev/jslint/internal/syntax"
	"github.com/jslint-dev/jslint/rule"
)

// NoCondAssign flags a plain "=" assignment used directly as the test of
// an if/while/do-while statement — almost always a typo for "=="/"===".
// The test clause of a for loop is not checked.
// Grounded on the general condition-slot-inspection shape shared with
// NoExtraBooleanCast in original_source/rslint_core/src/groups/errors.
type NoCondAssign struct{ rule.Base }

func (NoCondAssign) Name() string  { return "no-cond-assign" }
func (NoCondAssign) Group() string { return "errors" }
func (NoCondAssign) Docs() string {
	return "disallow assignment operators in conditional expressions"
}
func (NoCondAssign) Tags() []string { return []string{"recommended"} }

func (r NoCondAssign) CheckNode(ctx *rule.Ctx, n *red.Node) {
	var test *red.Node
	switch n.Kind() {
	case syntax.IF_STMT, syntax.WHILE_STMT:
		test = n.NthChild(0)
	case syntax.DO_WHILE_STMT:
		children := n.Children()
		if len(children) == 2 {
			test = children[1]
		}
	default:
		return
	}
	if test == nil {
		return
	}
	test = red.InnerSkipGrouping(test)
	if test.Kind() == syntax.ASSIGN_EXPR && test.TokenByKind(syntax.EQ) != nil {
		start, end := test.Range()
		ctx.Report(uint32(start), uint32(end-start), "unexpected assignment used as a condition; did you mean '=='?")
	}
}
