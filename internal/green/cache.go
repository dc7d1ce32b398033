package green

import (
	"strconv"
	"strings"

	"github.com/jslint-dev/jslint/internal/syntax"
)

// Cache interns green tokens and nodes (of any size) during a single parse so that
// structurally identical subtrees (a single space, a common keyword, an
// empty argument list) share one allocation instead of being rebuilt for
// every occurrence. It is not safe for concurrent use; each parse owns its
// own Cache and the resulting tree is handed off as immutable afterwards.
type Cache struct {
	tokens map[string]*Token
	nodes  map[string]*Node
}

// NewCache returns an empty interning cache.
func NewCache() *Cache {
	return &Cache{tokens: make(map[string]*Token), nodes: make(map[string]*Node)}
}

// Token returns a shared *Token for (kind, text), allocating one only on
// first sight of that exact pair.
func (c *Cache) Token(kind syntax.Kind, text string) *Token {
	key := tokenKey(kind, text)
	if t, ok := c.tokens[key]; ok {
		return t
	}
	t := NewToken(kind, text)
	c.tokens[key] = t
	return t
}

// Node returns a shared *Node for (kind, children), allocating one only on
// first sight of that exact structural shape. Interning is keyed on the
// identity of each child element, so sharing composes: a node built from
// already-interned children is cheap to hash and compare.
func (c *Cache) Node(kind syntax.Kind, children []Element) *Node {
	key := nodeKey(kind, children)
	if n, ok := c.nodes[key]; ok {
		return n
	}
	n := NewNode(kind, children)
	c.nodes[key] = n
	return n
}

func tokenKey(kind syntax.Kind, text string) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(int(kind)))
	b.WriteByte(0)
	b.WriteString(text)
	return b.String()
}

func nodeKey(kind syntax.Kind, children []Element) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(int(kind)))
	for _, c := range children {
		b.WriteByte(0)
		b.WriteString(strconv.Itoa(int(c.Kind())))
		b.WriteByte(':')
		// Pointer identity is enough here: children passed in are already
		// interned elements, so comparing addresses is both cheap and
		// correct.
		b.WriteString(strconv.FormatUint(uint64(elementID(c)), 16))
	}
	return b.String()
}

// elementID returns a stable identity for an already-allocated element,
// used only to build interning keys — never exposed outside this file.
func elementID(e Element) uintptr {
	switch v := e.(type) {
	case *Token:
		return uintptrOf(v)
	case *Node:
		return uintptrOf(v)
	default:
		return 0
	}
}
