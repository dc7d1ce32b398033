package parser

import (
	"github.com/jslint-dev/jslint/internal/event"
	"github.com/jslint-dev/jslint/internal/syntax"
)

func (p *Parser) parseClassDecl() event.CompletedMarker {
	m := p.start()
	p.parseClassCommon(true)
	return m.Complete(p.sink, syntax.CLASS_DECL)
}

func (p *Parser) parseClassExpr() event.CompletedMarker {
	m := p.start()
	p.parseClassCommon(false)
	return m.Complete(p.sink, syntax.CLASS_EXPR)
}

func (p *Parser) parseClassCommon(nameRequired bool) {
	p.expect(syntax.CLASS_KW, "expected 'class'")
	if p.at(syntax.IDENT) {
		nm := p.start()
		p.bump()
		nm.Complete(p.sink, syntax.NAME)
	} else if nameRequired {
		p.errorHere("expected class name")
	}
	if p.eat(syntax.EXTENDS_KW) {
		p.parseCallMemberExpr()
	}
	p.parseClassBody()
}

func (p *Parser) parseClassBody() event.CompletedMarker {
	m := p.start()
	p.expect(syntax.L_BRACE, "expected '{' to open class body")
	for !p.at(syntax.R_BRACE) && !p.atEnd() {
		if p.eat(syntax.SEMICOLON) {
			continue
		}
		p.parseClassMember()
	}
	p.expect(syntax.R_BRACE, "expected '}' to close class body")
	return m.Complete(p.sink, syntax.CLASS_BODY)
}

// parseClassMember handles static/async/generator/get/set modifiers, methods,
// and fields (including computed keys and private names), per spec.md §4.2's
// class-member grammar.
func (p *Parser) parseClassMember() {
	m := p.start()

	isStatic := p.at(syntax.STATIC_KW) && !p.atAny2(1, syntax.EQ, syntax.SEMICOLON, syntax.L_PAREN)
	if isStatic {
		p.bump()
	}

	isAsync := p.atContextual(0, "async") && !p.atAny2(1, syntax.EQ, syntax.SEMICOLON, syntax.L_PAREN)
	if isAsync {
		p.bump()
	}
	isGen := p.eat(syntax.STAR)

	isGetter := !isAsync && !isGen && p.atContextual(0, "get") && !p.atAny2(1, syntax.EQ, syntax.SEMICOLON, syntax.L_PAREN)
	isSetter := !isAsync && !isGen && !isGetter && p.atContextual(0, "set") && !p.atAny2(1, syntax.EQ, syntax.SEMICOLON, syntax.L_PAREN)
	if isGetter {
		p.bumpRemap(syntax.GET_KW)
	} else if isSetter {
		p.bumpRemap(syntax.SET_KW)
	}

	p.parseClassMemberKey()

	if p.at(syntax.L_PAREN) {
		p.parseParamList()
		p.parseBlockStmt()
		m.Complete(p.sink, syntax.METHOD)
		return
	}

	if p.eat(syntax.EQ) {
		p.parseAssignExpr()
	}
	p.semi()
	m.Complete(p.sink, syntax.FIELD)
}

func (p *Parser) parseClassMemberKey() {
	switch {
	case p.at(syntax.L_BRACK):
		p.parsePropertyKey()
	case p.at(syntax.PRIVATE_NAME):
		p.bump()
	case p.atAny(syntax.STRING, syntax.NUMBER):
		p.bump()
	case p.at(syntax.IDENT) || p.nth(0).IsKeyword():
		p.bump()
	default:
		p.errRecover("expected member name", nil)
	}
}
