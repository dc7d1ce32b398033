package parser

import (
	"github.com/jslint-dev/jslint/internal/event"
	"github.com/jslint-dev/jslint/internal/syntax"
)

// parseVarDecl parses a "var"/"let"/"const" declaration list, not including
// the trailing semicolon (callers decide whether ASI applies, since for-loop
// headers use this without one).
func (p *Parser) parseVarDecl() event.CompletedMarker {
	m := p.start()
	p.bump() // var/let/const keyword
	for {
		p.parseDeclarator()
		if !p.eat(syntax.COMMA) {
			break
		}
	}
	return m.Complete(p.sink, syntax.VAR_DECL)
}

func (p *Parser) parseDeclarator() event.CompletedMarker {
	m := p.start()
	p.parseBindingTarget()
	if p.eat(syntax.EQ) {
		p.parseAssignExpr()
	}
	return m.Complete(p.sink, syntax.DECLARATOR)
}
