// Package ast provides thin typed views over the red/green CST: each type
// wraps a *red.Node of a known kind and exposes its children by name
// instead of by SyntaxKind lookup, the way a hand-written recursive
// descent AST normally would — without duplicating the tree or losing
// losslessness, since every view is just an accessor over the same nodes
// rule code also walks directly.
package ast

import (
	"github.com/jslint-dev/jslint/internal/red"
	"github.com/jslint-dev/jslint/internal/syntax"
)

// Node is the common accessor every typed view embeds.
type Node struct {
	Syntax *red.Node
}

func (n Node) Range() (start, end int) { return n.Syntax.Range() }
func (n Node) Text() string            { return n.Syntax.Text() }

// Program wraps a SCRIPT or MODULE root.
type Program struct {
	Node
}

// NewProgram wraps root, which must be a SCRIPT or MODULE node.
func NewProgram(root *red.Node) Program { return Program{Node{root}} }

// Statements returns the program's top-level statements.
func (p Program) Statements() []*red.Node { return p.Syntax.Children() }

// IfStmt wraps an IF_STMT node.
type IfStmt struct{ Node }

// Test returns the condition expression.
func (s IfStmt) Test() *red.Node { return s.Syntax.NthChild(0) }

// Consequent returns the statement executed when Test is truthy.
func (s IfStmt) Consequent() *red.Node { return s.Syntax.NthChild(1) }

// Alternate returns the "else" branch's statement, or nil if there isn't
// one.
func (s IfStmt) Alternate() *red.Node { return s.Syntax.NthChild(2) }

// AsIfStmt wraps n as an IfStmt if n is an IF_STMT node.
func AsIfStmt(n *red.Node) (IfStmt, bool) {
	if n == nil || n.Kind() != syntax.IF_STMT {
		return IfStmt{}, false
	}
	return IfStmt{Node{n}}, true
}

// BinaryExpr wraps a BIN_EXPR or LOGIC_EXPR node.
type BinaryExpr struct{ Node }

func (e BinaryExpr) Left() *red.Node  { return e.Syntax.NthChild(0) }
func (e BinaryExpr) Right() *red.Node { return e.Syntax.NthChild(1) }

// Operator returns the operator token's source text.
func (e BinaryExpr) Operator() string {
	for _, t := range e.Syntax.Tokens() {
		if !t.Kind().IsTrivia() {
			return t.Text()
		}
	}
	return ""
}

// AsBinaryExpr wraps n as a BinaryExpr if n is a BIN_EXPR or LOGIC_EXPR
// node.
func AsBinaryExpr(n *red.Node) (BinaryExpr, bool) {
	if n == nil || (n.Kind() != syntax.BIN_EXPR && n.Kind() != syntax.LOGIC_EXPR) {
		return BinaryExpr{}, false
	}
	return BinaryExpr{Node{n}}, true
}

// CallExpr wraps a CALL_EXPR node.
type CallExpr struct{ Node }

func (e CallExpr) Callee() *red.Node { return e.Syntax.NthChild(0) }

// Arguments returns the call's argument expressions.
func (e CallExpr) Arguments() []*red.Node {
	argList := e.Syntax.ChildByKind(syntax.ARG_LIST)
	if argList == nil {
		return nil
	}
	return argList.Children()
}

// AsCallExpr wraps n as a CallExpr if n is a CALL_EXPR node.
func AsCallExpr(n *red.Node) (CallExpr, bool) {
	if n == nil || n.Kind() != syntax.CALL_EXPR {
		return CallExpr{}, false
	}
	return CallExpr{Node{n}}, true
}

// FunctionDecl wraps an FN_DECL node.
type FunctionDecl struct{ Node }

// FuncName returns the function's name, or "" for an anonymous function
// expression (FunctionDecl requires a name, but the accessor stays
// defensive for malformed/error-recovered trees).
func (f FunctionDecl) FuncName() string {
	if n := f.Syntax.ChildByKind(syntax.NAME); n != nil {
		if tok := n.TokenByKind(syntax.IDENT); tok != nil {
			return tok.Text()
		}
	}
	return ""
}

func (f FunctionDecl) Params() *red.Node { return f.Syntax.ChildByKind(syntax.PARAM_LIST) }
func (f FunctionDecl) Body() *red.Node   { return f.Syntax.ChildByKind(syntax.BLOCK_STMT) }

// AsFunctionDecl wraps n as a FunctionDecl if n is an FN_DECL node.
func AsFunctionDecl(n *red.Node) (FunctionDecl, bool) {
	if n == nil || n.Kind() != syntax.FN_DECL {
		return FunctionDecl{}, false
	}
	return FunctionDecl{Node{n}}, true
}
