// Package parser turns a TokenSource into a flat event.Event stream via
// recursive descent with Pratt-style precedence climbing for expressions,
// per spec.md §4.2. It never panics on malformed input: every grammar
// violation is reported through err/errRecover and the parser keeps going.
package parser

import (
	"github.com/jslint-dev/jslint/internal/event"
	"github.com/jslint-dev/jslint/internal/syntax"
)

// maxLookaheadSteps bounds total lookahead (nth) calls across one parse,
// guarding against an infinite loop in a buggy recovery path the way
// spec.md §4.2 requires ("A global step counter caps at 10,000,000
// nth-lookahead calls to detect infinite recursion").
const maxLookaheadSteps = 10_000_000

// Result is everything a completed parse produces: the event stream (to
// be folded into a CST by internal/treebuilder), the raw token buffer
// (trivia included, also needed by the tree builder), and every
// diagnostic collected from the lexer and the parser itself.
type Result struct {
	Events      []event.Event
	Raw         []event.RawToken
	Diagnostics []event.Diagnostic
	Aborted     bool // true if the step-count cap was hit
}

// Parser drives a TokenSource, pushing Event records into a Sink.
type Parser struct {
	ts   *event.TokenSource
	sink *event.Sink
	src  string

	diags  []event.Diagnostic
	halted bool
}

// ParseScript parses src as a top-level script (spec.md grammar coverage,
// §4.2), returning the resulting event stream and diagnostics.
func ParseScript(src string) Result {
	return parse(src, syntax.SCRIPT)
}

// ParseModule parses src as an ES module; the only grammar difference this
// core exercises is the root node kind. import/export declarations are not
// parsed in either mode: parseStatement has no case for them.
func ParseModule(src string) Result {
	return parse(src, syntax.MODULE)
}

func parse(src string, root syntax.Kind) Result {
	ts, lexDiags := event.NewTokenSource(src)
	p := &Parser{ts: ts, sink: event.NewSink(), src: src}
	for _, d := range lexDiags {
		p.diags = append(p.diags, event.Diagnostic{Offset: d.Offset, Length: d.Length, Message: d.Message})
	}

	m := p.start()
	p.parseStatementList(map[syntax.Kind]bool{syntax.EOF: true})
	m.Complete(p.sink, root)

	return Result{
		Events:      p.sink.Events,
		Raw:         ts.Raw(),
		Diagnostics: p.diags,
		Aborted:     p.halted,
	}
}

// --- marker/token primitives ---

func (p *Parser) start() event.Marker { return p.sink.Start() }

func (p *Parser) nth(n int) syntax.Kind {
	if p.ts.StepCount > maxLookaheadSteps {
		p.halted = true
	}
	return p.ts.NthKind(n)
}

func (p *Parser) at(k syntax.Kind) bool { return p.nth(0) == k }

func (p *Parser) atAny(ks ...syntax.Kind) bool {
	cur := p.nth(0)
	for _, k := range ks {
		if cur == k {
			return true
		}
	}
	return false
}

// atContextual reports whether the current token is an IDENT spelled
// exactly text — the mechanism spec.md §4.2 calls "contextual keywords
// ... resolved by token-string inspection".
func (p *Parser) atContextual(n int, text string) bool {
	return p.nth(n) == syntax.IDENT && p.ts.NthText(n, p.src) == text
}

func (p *Parser) atEnd() bool { return p.at(syntax.EOF) || p.halted }

// bump consumes the current token, recording it in the stream with its own
// kind.
func (p *Parser) bump() {
	p.bumpRemap(p.nth(0))
}

// bumpRemap consumes the current token but records it as kind instead of
// its raw lexer kind — used to turn a contextual-keyword IDENT into its
// keyword SyntaxKind (e.g. GET_KW) at grammar positions that make it one.
func (p *Parser) bumpRemap(kind syntax.Kind) {
	n := p.ts.Bump()
	if n == 0 {
		return
	}
	p.sink.Token(kind, n)
}

// eat consumes the current token and returns true if it matches kind,
// otherwise does nothing and returns false.
func (p *Parser) eat(kind syntax.Kind) bool {
	if p.at(kind) {
		p.bump()
		return true
	}
	return false
}

// expect consumes the current token if it matches kind; otherwise records
// a diagnostic and leaves the cursor where it is.
func (p *Parser) expect(kind syntax.Kind, msg string) bool {
	if p.eat(kind) {
		return true
	}
	p.errorHere(msg)
	return false
}

func (p *Parser) errorHere(msg string) {
	off, length := p.ts.CurrentOffset(), p.ts.CurrentLength()
	d := event.Diagnostic{Offset: uint32(off), Length: uint32(length), Message: msg}
	p.diags = append(p.diags, d)
	p.sink.Error(d)
}

// errRecover reports an error and, unless the current token is in
// recoverySet or is a brace, wraps it in an ERROR_NODE and advances
// (spec.md §4.2 "err_recover").
func (p *Parser) errRecover(msg string, recoverySet map[syntax.Kind]bool) {
	if recoverySet[p.nth(0)] || p.at(syntax.L_BRACE) || p.at(syntax.R_BRACE) || p.atEnd() {
		p.errorHere(msg)
		return
	}
	m := p.start()
	p.errorHere(msg)
	p.bump()
	m.Complete(p.sink, syntax.ERROR_NODE)
}

// synchronize skips tokens until one of the recovery set, a statement
// boundary (';' or '}'), or EOF is reached; used after a top-level
// declaration fails to parse so later statements still get a chance.
func (p *Parser) synchronize(recoverySet map[syntax.Kind]bool) {
	for !p.atEnd() {
		if recoverySet[p.nth(0)] {
			return
		}
		if p.at(syntax.SEMICOLON) {
			p.bump()
			return
		}
		if p.at(syntax.R_BRACE) {
			return
		}
		p.bump()
	}
}

// speculative runs fn to attempt a grammar alternative; if fn returns
// false the parser's token cursor and event stream are rolled back to
// exactly where they were before the attempt, so the caller can try a
// different production instead. This is the backtracking half of the
// cover-grammar technique spec.md §4.2 describes for arrow functions.
func (p *Parser) speculative(fn func() bool) bool {
	tsSnap := p.ts.Snap()
	evSnap := p.sink.Snapshot()
	diagsLen := len(p.diags)
	if fn() {
		return true
	}
	p.ts.Restore(tsSnap)
	p.sink.Truncate(evSnap)
	p.diags = p.diags[:diagsLen]
	return false
}

// semi implements automatic semicolon insertion (spec.md §4.2 "ASI"):
// succeeds explicitly on ';', and implicitly at EOF, before '}', or when a
// line break precedes the current token. Having just consumed a '}' does
// not by itself satisfy it.
func (p *Parser) semi() {
	if p.eat(syntax.SEMICOLON) {
		return
	}
	if p.at(syntax.EOF) || p.at(syntax.R_BRACE) {
		return
	}
	if p.ts.NthHasPrecedingLineBreak(0) {
		return
	}
	p.errorHere("expected ';'")
}
