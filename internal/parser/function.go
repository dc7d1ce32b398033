package parser

import (
	"github.com/jslint-dev/jslint/internal/event"
	"github.com/jslint-dev/jslint/internal/syntax"
)

// parseFunctionDecl and parseFunctionExpr share nearly all of their grammar;
// the only difference is whether the name is required (declarations) or
// optional (expressions), per spec.md §4.2.
func (p *Parser) parseFunctionDecl() event.CompletedMarker {
	m := p.start()
	p.parseFunctionCommon(true)
	return m.Complete(p.sink, syntax.FN_DECL)
}

func (p *Parser) parseFunctionExpr() event.CompletedMarker {
	m := p.start()
	p.parseFunctionCommon(false)
	return m.Complete(p.sink, syntax.FN_EXPR)
}

// parseFunctionCommon consumes "async"? "function" "*"? name? paramList body.
func (p *Parser) parseFunctionCommon(nameRequired bool) {
	if p.atContextual(0, "async") {
		p.bump()
	}
	p.expect(syntax.FUNCTION_KW, "expected 'function'")
	p.eat(syntax.STAR) // generator
	if p.at(syntax.IDENT) {
		nm := p.start()
		p.bump()
		nm.Complete(p.sink, syntax.NAME)
	} else if nameRequired {
		p.errorHere("expected function name")
	}
	p.parseParamList()
	p.parseBlockStmt()
}
