// Package treebuilder folds a parser's flat event.Event stream, plus the
// lexer's raw token buffer, into an immutable red/green CST (spec.md
// §4.3). It is the one place forward_parent chains are resolved: Pratt
// climbing lets a parser "wrap" an already-completed node as the child of
// a parent discovered later, and this package is what turns that
// after-the-fact relationship into an actually-nested tree.
package treebuilder

import (
	"github.com/jslint-dev/jslint/internal/event"
	"github.com/jslint-dev/jslint/internal/green"
	"github.com/jslint-dev/jslint/internal/red"
	"github.com/jslint-dev/jslint/internal/syntax"
)

// Diagnostic is a builder-attached diagnostic: a parser Error event,
// carried through verbatim with no tree-shape effect (spec.md §4.3
// "Error: attach the diagnostic to the current builder position").
type Diagnostic = event.Diagnostic

// Build consumes events (as produced by an event.Sink during one parse)
// together with the token source's raw buffer and the original source
// text, and returns the root red node of the resulting CST plus any
// diagnostics the parser attached along the way.
//
// Build's root's text equals src exactly: every raw token — trivia
// included — is attached as a leaf exactly once, which is the
// losslessness invariant spec.md §8 requires.
func Build(events []event.Event, raw []event.RawToken, src string, rootKind syntax.Kind) (*red.Node, []Diagnostic) {
	b := &builder{
		cache:  green.NewCache(),
		raw:    raw,
		src:    src,
		events: append([]event.Event(nil), events...), // local copy; we tombstone as we go
	}
	b.pushFrame(rootKind)

	for i := range b.events {
		switch b.events[i].Tag {
		case event.Tombstone:
			continue
		case event.Start:
			b.startAt(i)
		case event.Finish:
			if len(b.stack) > 1 {
				b.finishFrame()
			}
		case event.Token:
			b.consumeToken(b.events[i].Kind, int(b.events[i].NRawTokens))
		case event.Error:
			b.diags = append(b.diags, b.events[i].Diagnostic)
		}
	}

	// Any raw tokens never folded into a Token event (trailing trivia at
	// EOF, or the entire file when it was empty) are attached directly to
	// whatever frame is still open.
	for ; b.rawIdx < len(b.raw); b.rawIdx++ {
		b.appendRawAsIs(b.rawIdx)
	}

	for len(b.stack) > 1 {
		b.finishFrame()
	}
	root := b.finishFrame()
	return red.NewRoot(root), b.diags
}

type frame struct {
	kind     syntax.Kind
	children []green.Element
}

type builder struct {
	cache  *green.Cache
	raw    []event.RawToken
	src    string
	events []event.Event

	offset int // byte offset of the next unconsumed raw token
	rawIdx int

	stack []frame
	diags []Diagnostic
}

func (b *builder) pushFrame(kind syntax.Kind) {
	b.stack = append(b.stack, frame{kind: kind})
}

// startAt resolves event i's forward_parent chain — if any — before
// opening nodes, in outermost-to-innermost order, exactly mirroring
// spec.md §4.3's "follow the forward_parent chain first so that the
// ultimate outermost parent opens before its descendants".
func (b *builder) startAt(i int) {
	if b.events[i].Tag != event.Start {
		return
	}
	kinds := []syntax.Kind{b.events[i].Kind}
	b.events[i].Tag = event.Tombstone
	// The parser's own root Start (event 0) names the frame Build already
	// opened; reuse that frame so the root's children are the top-level
	// items rather than a second root node.
	if i == 0 && b.events[i].ForwardParent == 0 && len(b.stack) == 1 && kinds[0] == b.stack[0].kind {
		return
	}

	idx := i
	fwd := b.events[i].ForwardParent
	for fwd != 0 {
		idx += fwd
		kinds = append(kinds, b.events[idx].Kind)
		fwd = b.events[idx].ForwardParent
		b.events[idx].Tag = event.Tombstone
	}

	for k := len(kinds) - 1; k >= 0; k-- {
		b.pushFrame(kinds[k])
	}
}

func (b *builder) finishFrame() *green.Node {
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	node := b.cache.Node(top.kind, top.children)
	if len(b.stack) > 0 {
		last := len(b.stack) - 1
		b.stack[last].children = append(b.stack[last].children, node)
	}
	return node
}

// consumeToken folds n raw tokens (trivia first, the significant token
// last) into the currently-open frame. The significant token is given
// kind, which may differ from its raw lexer kind when the parser has
// resolved a contextual keyword (get/set/of/async/from/as/target) at a
// grammar position that makes it one.
func (b *builder) consumeToken(kind syntax.Kind, n int) {
	for j := 0; j < n; j++ {
		isLast := j == n-1
		k := b.raw[b.rawIdx].Kind
		if isLast {
			k = kind
		}
		b.appendRaw(b.rawIdx, k)
		b.rawIdx++
	}
}

func (b *builder) appendRaw(idx int, kind syntax.Kind) {
	length := int(b.raw[idx].Length)
	text := b.src[b.offset : b.offset+length]
	b.offset += length
	tok := b.cache.Token(kind, text)
	last := len(b.stack) - 1
	b.stack[last].children = append(b.stack[last].children, tok)
}

func (b *builder) appendRawAsIs(idx int) {
	b.appendRaw(idx, b.raw[idx].Kind)
}
