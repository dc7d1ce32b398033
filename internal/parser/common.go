package parser

import (
	"github.com/jslint-dev/jslint/internal/event"
	"github.com/jslint-dev/jslint/internal/syntax"
)

// parsePropertyKey parses an object literal/pattern property key: a
// computed `[expr]`, a string/number literal, or an identifier — including
// reserved words used as property names, which is legal ECMAScript.
func (p *Parser) parsePropertyKey() {
	switch {
	case p.at(syntax.L_BRACK):
		m := p.start()
		p.bump()
		p.parseAssignExpr()
		p.expect(syntax.R_BRACK, "expected ']' to close computed property name")
		m.Complete(p.sink, syntax.COMPUTED_PROPERTY_NAME)
	case p.atAny(syntax.STRING, syntax.NUMBER):
		p.bump()
	case p.at(syntax.IDENT) || p.nth(0).IsKeyword():
		p.bump()
	default:
		p.errRecover("expected property name", nil)
	}
}

// parseBindingTarget parses a single binding target: an identifier, an
// array pattern, or an object pattern (spec.md §4.2 "binding patterns").
func (p *Parser) parseBindingTarget() event.CompletedMarker {
	switch {
	case p.at(syntax.L_BRACK):
		return p.parseArrayPattern()
	case p.at(syntax.L_BRACE):
		return p.parseObjectPattern()
	default:
		m := p.start()
		if !p.expect(syntax.IDENT, "expected binding identifier") {
			// still consume something so the caller makes progress
			if !p.atEnd() {
				p.bump()
			}
		}
		return m.Complete(p.sink, syntax.NAME)
	}
}

// parseBindingElement parses a binding target optionally followed by a
// `= default` initializer, wrapping the pair in ASSIGN_PATTERN when a
// default is present — shared by array elements, object pattern values,
// and function parameters.
func (p *Parser) parseBindingElement() event.CompletedMarker {
	cm := p.parseBindingTarget()
	if p.eat(syntax.EQ) {
		m := cm.Precede(p.sink)
		p.parseAssignExpr()
		cm = m.Complete(p.sink, syntax.ASSIGN_PATTERN)
	}
	return cm
}

func (p *Parser) parseArrayPattern() event.CompletedMarker {
	m := p.start()
	p.expect(syntax.L_BRACK, "expected '['")
	for !p.at(syntax.R_BRACK) && !p.atEnd() {
		if p.at(syntax.COMMA) {
			p.bump() // elision
			continue
		}
		if p.at(syntax.ELLIPSIS) {
			rm := p.start()
			p.bump()
			p.parseBindingTarget()
			rm.Complete(p.sink, syntax.REST_PATTERN)
		} else {
			p.parseBindingElement()
		}
		if !p.eat(syntax.COMMA) {
			break
		}
	}
	p.expect(syntax.R_BRACK, "expected ']' to close array pattern")
	return m.Complete(p.sink, syntax.ARRAY_PATTERN)
}

func (p *Parser) parseObjectPattern() event.CompletedMarker {
	m := p.start()
	p.expect(syntax.L_BRACE, "expected '{'")
	for !p.at(syntax.R_BRACE) && !p.atEnd() {
		if p.at(syntax.ELLIPSIS) {
			rm := p.start()
			p.bump()
			p.parseBindingTarget()
			rm.Complete(p.sink, syntax.REST_PATTERN)
		} else {
			pm := p.start()
			p.parsePropertyKey()
			if p.eat(syntax.COLON) {
				p.parseBindingElement()
			} else if p.eat(syntax.EQ) {
				p.parseAssignExpr()
			}
			pm.Complete(p.sink, syntax.PROPERTY)
		}
		if !p.eat(syntax.COMMA) {
			break
		}
	}
	p.expect(syntax.R_BRACE, "expected '}' to close object pattern")
	return m.Complete(p.sink, syntax.OBJECT_PATTERN)
}

// parseParamList parses a function's "(" params ")" clause, reusing
// parseBindingElement for each parameter so defaults and destructuring
// patterns are shared with variable declarators.
func (p *Parser) parseParamList() event.CompletedMarker {
	m := p.start()
	p.expect(syntax.L_PAREN, "expected '('")
	for !p.at(syntax.R_PAREN) && !p.atEnd() {
		pm := p.start()
		if p.at(syntax.ELLIPSIS) {
			p.bump()
			p.parseBindingTarget()
			pm.Complete(p.sink, syntax.REST_PATTERN)
		} else {
			p.parseBindingElement()
			pm.Complete(p.sink, syntax.PARAM)
		}
		if !p.eat(syntax.COMMA) {
			break
		}
	}
	p.expect(syntax.R_PAREN, "expected ')' to close parameter list")
	return m.Complete(p.sink, syntax.PARAM_LIST)
}

// binOp describes a binary operator's precedence and associativity for
// the Pratt climbing loop in parseBinaryExpr.
type binOp struct {
	kind       syntax.Kind
	prec       int
	rightAssoc bool
	logical    bool // use LOGIC_EXPR instead of BIN_EXPR for &&/||/??
}

func binOpInfo(k syntax.Kind) (binOp, bool) {
	switch k {
	case syntax.QUESTION2:
		return binOp{k, 1, false, true}, true
	case syntax.PIPE2:
		return binOp{k, 2, false, true}, true
	case syntax.AMP2:
		return binOp{k, 3, false, true}, true
	case syntax.PIPE:
		return binOp{k, 4, false, false}, true
	case syntax.CARET:
		return binOp{k, 5, false, false}, true
	case syntax.AMP:
		return binOp{k, 6, false, false}, true
	case syntax.EQ2, syntax.NEQ, syntax.EQ3, syntax.NEQ2:
		return binOp{k, 7, false, false}, true
	case syntax.LT, syntax.GT, syntax.LTEQ, syntax.GTEQ, syntax.INSTANCEOF_KW, syntax.IN_KW:
		return binOp{k, 8, false, false}, true
	case syntax.SHL, syntax.SHR, syntax.USHR:
		return binOp{k, 9, false, false}, true
	case syntax.PLUS, syntax.MINUS:
		return binOp{k, 10, false, false}, true
	case syntax.STAR, syntax.SLASH, syntax.PERCENT:
		return binOp{k, 11, false, false}, true
	case syntax.STAR2:
		return binOp{k, 12, true, false}, true
	default:
		return binOp{}, false
	}
}

func isAssignOp(k syntax.Kind) bool {
	switch k {
	case syntax.EQ, syntax.PLUSEQ, syntax.MINUSEQ, syntax.STAREQ, syntax.STAR2EQ,
		syntax.SLASHEQ, syntax.PERCENTEQ, syntax.SHLEQ, syntax.SHREQ, syntax.USHREQ,
		syntax.AMPEQ, syntax.PIPEEQ, syntax.CARETEQ, syntax.AMP2EQ, syntax.PIPE2EQ,
		syntax.QUESTION2EQ:
		return true
	default:
		return false
	}
}
