package parser

import (
	"github.com/jslint-dev/jslint/internal/event"
	"github.com/jslint-dev/jslint/internal/syntax"
)

// parseStatementList parses statements until the current token is in until
// (typically {EOF} at the top level or {R_BRACE} inside a block).
func (p *Parser) parseStatementList(until map[syntax.Kind]bool) {
	for !p.atEnd() && !until[p.nth(0)] {
		before := p.ts.CurrentOffset()
		p.parseStatement()
		if p.ts.CurrentOffset() == before {
			// parseStatement made no progress; force one token forward so
			// the parser can never spin without consuming input.
			if !p.atEnd() {
				p.bump()
			} else {
				break
			}
		}
	}
}

func (p *Parser) parseStatement() {
	switch {
	case p.at(syntax.L_BRACE):
		p.parseBlockStmt()
	case p.at(syntax.VAR_KW), p.at(syntax.LET_KW), p.at(syntax.CONST_KW):
		p.parseVarDecl()
		p.semi()
	case p.at(syntax.FUNCTION_KW):
		p.parseFunctionDecl()
	case p.atContextual(0, "async") && p.nth(1) == syntax.FUNCTION_KW && !p.ts.NthHasPrecedingLineBreak(1):
		p.parseFunctionDecl()
	case p.at(syntax.CLASS_KW):
		p.parseClassDecl()
	case p.at(syntax.IF_KW):
		p.parseIfStmt()
	case p.at(syntax.FOR_KW):
		p.parseForStmt()
	case p.at(syntax.WHILE_KW):
		p.parseWhileStmt()
	case p.at(syntax.DO_KW):
		p.parseDoWhileStmt()
	case p.at(syntax.RETURN_KW):
		p.parseReturnStmt()
	case p.at(syntax.BREAK_KW):
		p.parseBreakContinue(syntax.BREAK_STMT)
	case p.at(syntax.CONTINUE_KW):
		p.parseBreakContinue(syntax.CONTINUE_STMT)
	case p.at(syntax.THROW_KW):
		p.parseThrowStmt()
	case p.at(syntax.TRY_KW):
		p.parseTryStmt()
	case p.at(syntax.SWITCH_KW):
		p.parseSwitchStmt()
	case p.at(syntax.DEBUGGER_KW):
		m := p.start()
		p.bump()
		p.semi()
		m.Complete(p.sink, syntax.DEBUGGER_STMT)
	case p.at(syntax.SEMICOLON):
		m := p.start()
		p.bump()
		m.Complete(p.sink, syntax.EMPTY_STMT)
	case p.at(syntax.IDENT) && p.nth(1) == syntax.COLON:
		p.parseLabelledStmt()
	default:
		p.parseExprStmt()
	}
}

func (p *Parser) parseBlockStmt() event.CompletedMarker {
	m := p.start()
	p.expect(syntax.L_BRACE, "expected '{'")
	p.parseStatementList(map[syntax.Kind]bool{syntax.R_BRACE: true, syntax.EOF: true})
	p.expect(syntax.R_BRACE, "expected '}' to close block")
	return m.Complete(p.sink, syntax.BLOCK_STMT)
}

func (p *Parser) parseIfStmt() event.CompletedMarker {
	m := p.start()
	p.bump() // if
	p.expect(syntax.L_PAREN, "expected '(' after 'if'")
	p.parseExpr()
	p.expect(syntax.R_PAREN, "expected ')' after condition")
	p.parseStatement()
	if p.eat(syntax.ELSE_KW) {
		p.parseStatement()
	}
	return m.Complete(p.sink, syntax.IF_STMT)
}

func (p *Parser) parseWhileStmt() event.CompletedMarker {
	m := p.start()
	p.bump()
	p.expect(syntax.L_PAREN, "expected '(' after 'while'")
	p.parseExpr()
	p.expect(syntax.R_PAREN, "expected ')' after condition")
	p.parseStatement()
	return m.Complete(p.sink, syntax.WHILE_STMT)
}

func (p *Parser) parseDoWhileStmt() event.CompletedMarker {
	m := p.start()
	p.bump() // do
	p.parseStatement()
	p.expect(syntax.WHILE_KW, "expected 'while' after 'do' body")
	p.expect(syntax.L_PAREN, "expected '(' after 'while'")
	p.parseExpr()
	p.expect(syntax.R_PAREN, "expected ')' after condition")
	p.semi()
	return m.Complete(p.sink, syntax.DO_WHILE_STMT)
}

// parseForStmt disambiguates the three for-loop forms. A legacy
// "for (var x = y in obj)" head is flagged with a diagnostic rather than
// rejected outright, matching how the original linter treats it as a rule
// concern rather than a parse error.
func (p *Parser) parseForStmt() event.CompletedMarker {
	m := p.start()
	p.bump() // for
	p.expect(syntax.L_PAREN, "expected '(' after 'for'")

	var headKind syntax.Kind
	switch {
	case p.at(syntax.SEMICOLON):
		p.bump()
		p.parseForTail()
		headKind = syntax.FOR_STMT
	case p.atAny(syntax.VAR_KW, syntax.LET_KW, syntax.CONST_KW):
		declM := p.start()
		p.bump() // var/let/const
		dm := p.start()
		p.parseBindingTarget()
		hadInit := false
		if p.eat(syntax.EQ) {
			hadInit = true
			p.parseAssignExpr()
		}
		dm.Complete(p.sink, syntax.DECLARATOR)
		for p.eat(syntax.COMMA) {
			p.parseDeclarator()
		}
		switch {
		case p.eat(syntax.IN_KW):
			declM.Complete(p.sink, syntax.VAR_DECL)
			if hadInit {
				p.errorHere("for-in loop variable declaration may not have an initializer")
			}
			p.parseExpr()
			headKind = syntax.FOR_IN_STMT
		case p.atContextual(0, "of"):
			declM.Complete(p.sink, syntax.VAR_DECL)
			p.bumpRemap(syntax.OF_KW)
			p.parseAssignExpr()
			headKind = syntax.FOR_OF_STMT
		default:
			declM.Complete(p.sink, syntax.VAR_DECL)
			p.expect(syntax.SEMICOLON, "expected ';' after for-loop initializer")
			p.parseForTail()
			headKind = syntax.FOR_STMT
		}
	default:
		p.parseExpr()
		switch {
		case p.eat(syntax.IN_KW):
			p.parseExpr()
			headKind = syntax.FOR_IN_STMT
		case p.atContextual(0, "of"):
			p.bumpRemap(syntax.OF_KW)
			p.parseAssignExpr()
			headKind = syntax.FOR_OF_STMT
		default:
			p.expect(syntax.SEMICOLON, "expected ';' after for-loop initializer")
			p.parseForTail()
			headKind = syntax.FOR_STMT
		}
	}

	p.expect(syntax.R_PAREN, "expected ')' after for-loop head")
	p.parseStatement()
	return m.Complete(p.sink, headKind)
}

// parseForTail parses the "; test ; update" remainder of a classic
// three-clause for-loop head, having already consumed the first ';'.
func (p *Parser) parseForTail() {
	if !p.at(syntax.SEMICOLON) {
		p.parseExpr()
	}
	p.expect(syntax.SEMICOLON, "expected ';' in for-loop head")
	if !p.at(syntax.R_PAREN) {
		p.parseExpr()
	}
}

func (p *Parser) parseReturnStmt() event.CompletedMarker {
	m := p.start()
	p.bump() // return
	if !p.at(syntax.SEMICOLON) && !p.at(syntax.R_BRACE) && !p.atEnd() && !p.ts.NthHasPrecedingLineBreak(0) {
		p.parseExpr()
	}
	p.semi()
	return m.Complete(p.sink, syntax.RETURN_STMT)
}

func (p *Parser) parseBreakContinue(nodeKind syntax.Kind) event.CompletedMarker {
	m := p.start()
	p.bump()
	if p.at(syntax.IDENT) && !p.ts.NthHasPrecedingLineBreak(0) {
		p.bump()
	}
	p.semi()
	return m.Complete(p.sink, nodeKind)
}

func (p *Parser) parseThrowStmt() event.CompletedMarker {
	m := p.start()
	p.bump() // throw
	if p.ts.NthHasPrecedingLineBreak(0) {
		p.errorHere("no line break allowed after 'throw'")
	}
	p.parseExpr()
	p.semi()
	return m.Complete(p.sink, syntax.THROW_STMT)
}

func (p *Parser) parseTryStmt() event.CompletedMarker {
	m := p.start()
	p.bump() // try
	p.parseBlockStmt()
	if p.at(syntax.CATCH_KW) {
		cm := p.start()
		p.bump()
		if p.eat(syntax.L_PAREN) {
			p.parseBindingTarget()
			p.expect(syntax.R_PAREN, "expected ')' after catch parameter")
		}
		p.parseBlockStmt()
		cm.Complete(p.sink, syntax.CATCH_CLAUSE)
	}
	if p.eat(syntax.FINALLY_KW) {
		p.parseBlockStmt()
	}
	return m.Complete(p.sink, syntax.TRY_STMT)
}

func (p *Parser) parseSwitchStmt() event.CompletedMarker {
	m := p.start()
	p.bump() // switch
	p.expect(syntax.L_PAREN, "expected '(' after 'switch'")
	p.parseExpr()
	p.expect(syntax.R_PAREN, "expected ')' after switch discriminant")
	p.expect(syntax.L_BRACE, "expected '{' to open switch body")

	seenDefault := false
	for !p.at(syntax.R_BRACE) && !p.atEnd() {
		cm := p.start()
		if p.eat(syntax.CASE_KW) {
			p.parseExpr()
		} else if p.eat(syntax.DEFAULT_KW) {
			if seenDefault {
				p.errorHere("switch statement may not have more than one default clause")
			}
			seenDefault = true
		} else {
			p.errRecover("expected 'case' or 'default'", map[syntax.Kind]bool{syntax.R_BRACE: true})
			cm.Abandon(p.sink)
			continue
		}
		p.expect(syntax.COLON, "expected ':' after case clause")
		p.parseStatementList(map[syntax.Kind]bool{
			syntax.CASE_KW: true, syntax.DEFAULT_KW: true, syntax.R_BRACE: true, syntax.EOF: true,
		})
		cm.Complete(p.sink, syntax.SWITCH_CASE)
	}
	p.expect(syntax.R_BRACE, "expected '}' to close switch body")
	return m.Complete(p.sink, syntax.SWITCH_STMT)
}

func (p *Parser) parseLabelledStmt() event.CompletedMarker {
	m := p.start()
	p.bump() // label
	p.bump() // ':'
	p.parseStatement()
	return m.Complete(p.sink, syntax.LABELLED_STMT)
}

func (p *Parser) parseExprStmt() event.CompletedMarker {
	m := p.start()
	p.parseExpr()
	p.semi()
	return m.Complete(p.sink, syntax.EXPR_STMT)
}
