// Package green implements the immutable, interior-shared half of the
// lossless CST (spec.md §3/§9). Go's garbage collector already gives green
// nodes the sharing the original Rust implementation obtained through
// Rc/Arc reference counting, so this package deliberately does not
// reimplement manual refcounting — a node is simply a *Node, and the
// interning Cache is the only thing that makes subtrees shared rather than
// duplicated (see DESIGN.md's note on this Go-native redesign).
package green

import (
	"strings"

	"github.com/jslint-dev/jslint/internal/syntax"
)

// Element is either a *Node or a *Token; Go has no sum types, so Element
// is a small interface implemented by both.
type Element interface {
	Length() int
	Kind() syntax.Kind
}

// Token is an immutable leaf: a kind plus its exact source text. Tokens
// carry no position; position is a property of the red cursor that visits
// them.
type Token struct {
	kind syntax.Kind
	text string
}

func (t *Token) Kind() syntax.Kind { return t.kind }
func (t *Token) Length() int       { return len(t.text) }
func (t *Token) Text() string      { return t.text }

// Node is an immutable interior node: a kind plus an ordered list of child
// elements (nodes or tokens). Its text length is the sum of its children's
// lengths, memoized at construction since the tree never mutates after
// being built.
type Node struct {
	kind     syntax.Kind
	children []Element
	length   int
}

func (n *Node) Kind() syntax.Kind   { return n.kind }
func (n *Node) Length() int         { return n.length }
func (n *Node) Children() []Element { return n.children }

// Text reconstructs this node's exact source text by concatenating all
// descendant token text; red.Node.Text and the losslessness tests are
// built on it.
func (n *Node) Text() string {
	var b strings.Builder
	b.Grow(n.length)
	writeText(&b, n)
	return b.String()
}

func writeText(b *strings.Builder, el Element) {
	switch v := el.(type) {
	case *Token:
		b.WriteString(v.text)
	case *Node:
		for _, c := range v.children {
			writeText(b, c)
		}
	}
}

// NewToken allocates a leaf token. Callers should go through a Cache so
// identical tokens (a single space, a semicolon, a common keyword) are
// shared.
func NewToken(kind syntax.Kind, text string) *Token {
	return &Token{kind: kind, text: text}
}

// NewNode allocates an interior node over children. Callers should go
// through a Cache for the same reason as NewToken.
func NewNode(kind syntax.Kind, children []Element) *Node {
	length := 0
	for _, c := range children {
		length += c.Length()
	}
	return &Node{kind: kind, children: children, length: length}
}
