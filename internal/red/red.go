// Package red implements the transient, absolute-position cursor view over
// an immutable green.Node tree (spec.md §3/§9). A red node never stores a
// parent pointer on the green tree itself — doing so would make the green
// tree cyclic and unshareable. Instead the parent link lives on the
// cursor, and children are materialized on demand by walking the green
// node's child list and accumulating offsets; this is how the spec's
// "cyclic parent/child links" design note is resolved in Go.
package red

import (
	"github.com/jslint-dev/jslint/internal/green"
	"github.com/jslint-dev/jslint/internal/syntax"
)

// Node is a cursor over a green.Node: cheap to copy, safe to share across
// goroutines read-only (it holds no mutable state), and holds enough to
// recover its absolute text range and walk to ancestors/siblings.
type Node struct {
	parent        *Node
	indexInParent int
	textOffset    int
	green         *green.Node
}

// NewRoot wraps the root green node of a parsed file as a red cursor at
// offset 0 with no parent.
func NewRoot(g *green.Node) *Node {
	return &Node{green: g}
}

func (n *Node) Kind() syntax.Kind { return n.green.Kind() }
func (n *Node) Parent() *Node     { return n.parent }

// Range returns the node's [start, end) byte range in the original source.
func (n *Node) Range() (start, end int) {
	return n.textOffset, n.textOffset + n.green.Length()
}

func (n *Node) Text() string { return n.green.Text() }
func (n *Node) Green() *green.Node { return n.green }

// Children returns the node's direct child nodes (tokens are skipped);
// each is a freshly materialized cursor, O(children) to produce.
func (n *Node) Children() []*Node {
	var out []*Node
	offset := n.textOffset
	for i, el := range n.green.Children() {
		if child, ok := el.(*green.Node); ok {
			out = append(out, &Node{parent: n, indexInParent: i, textOffset: offset, green: child})
		}
		offset += el.Length()
	}
	return out
}

// Tokens returns the node's direct child tokens as red cursors, in
// source order, interleaved position included.
func (n *Node) Tokens() []*Token {
	var out []*Token
	offset := n.textOffset
	for i, el := range n.green.Children() {
		if tok, ok := el.(*green.Token); ok {
			out = append(out, &Token{parent: n, indexInParent: i, textOffset: offset, green: tok})
		}
		offset += el.Length()
	}
	return out
}

// Elements returns every direct child — node or token — as a red cursor,
// in source order; used by the preorder tree walk the rule engine drives.
func (n *Node) Elements() []Element {
	var out []Element
	offset := n.textOffset
	for i, el := range n.green.Children() {
		switch v := el.(type) {
		case *green.Node:
			out = append(out, &Node{parent: n, indexInParent: i, textOffset: offset, green: v})
		case *green.Token:
			out = append(out, &Token{parent: n, indexInParent: i, textOffset: offset, green: v})
		}
		offset += el.Length()
	}
	return out
}

// Element is a red.Node or red.Token; the minimal shared view the rule
// engine's preorder walk needs (kind + range).
type Element interface {
	Kind() syntax.Kind
	Range() (int, int)
}

// ChildByKind returns the first direct child node of the given kind, or
// nil. AST view field accessors are built on this.
func (n *Node) ChildByKind(kind syntax.Kind) *Node {
	for _, c := range n.Children() {
		if c.Kind() == kind {
			return c
		}
	}
	return nil
}

// ChildrenByKind returns every direct child node of the given kind, in
// order.
func (n *Node) ChildrenByKind(kind syntax.Kind) []*Node {
	var out []*Node
	for _, c := range n.Children() {
		if c.Kind() == kind {
			out = append(out, c)
		}
	}
	return out
}

// TokenByKind returns the first direct child token of the given kind, or
// nil.
func (n *Node) TokenByKind(kind syntax.Kind) *Token {
	for _, t := range n.Tokens() {
		if t.Kind() == kind {
			return t
		}
	}
	return nil
}

// NthChild returns the nth direct child node (0-based), or nil if out of
// range.
func (n *Node) NthChild(i int) *Node {
	children := n.Children()
	if i < 0 || i >= len(children) {
		return nil
	}
	return children[i]
}

// SkipGroupingUp walks up through enclosing GROUPING_EXPR parens to the
// first non-parenthesized ancestor, used throughout the rule contract's
// "with grouping skipped" language (spec.md §4.4).
func (n *Node) SkipGroupingUp() *Node {
	cur := n
	for cur.parent != nil && cur.parent.Kind() == syntax.GROUPING_EXPR {
		cur = cur.parent
	}
	return cur
}

// SameNode reports whether a and b are cursors over the same tree
// position. *Node values are materialized fresh on every Children()/
// Elements() call, so two cursors over the same position are never the
// same pointer; comparing the underlying green node (shared across
// positions by the interning Cache, so not unique by itself) together
// with the absolute text offset identifies a position uniquely.
func SameNode(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.green == b.green && a.textOffset == b.textOffset
}

// InnerSkipGrouping descends through a GROUPING_EXPR's sole child
// expression repeatedly, returning the first non-grouping node — the
// "operand, with grouping skipped" half of the same idiom.
func InnerSkipGrouping(n *Node) *Node {
	cur := n
	for cur != nil && cur.Kind() == syntax.GROUPING_EXPR {
		inner := cur.NthChild(0)
		if inner == nil {
			break
		}
		cur = inner
	}
	return cur
}

// Token is a red cursor over a green.Token leaf.
type Token struct {
	parent        *Node
	indexInParent int
	textOffset    int
	green         *green.Token
}

func (t *Token) Kind() syntax.Kind  { return t.green.Kind() }
func (t *Token) Parent() *Node      { return t.parent }
func (t *Token) Text() string       { return t.green.Text() }
func (t *Token) Range() (int, int)  { return t.textOffset, t.textOffset + t.green.Length() }
