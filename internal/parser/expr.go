package parser

import (
	"github.com/jslint-dev/jslint/internal/event"
	"github.com/jslint-dev/jslint/internal/syntax"
)

// parseExpr parses a full expression, including top-level comma sequences,
// wrapping more than one operand in SEQUENCE_EXPR.
func (p *Parser) parseExpr() event.CompletedMarker {
	m := p.start()
	first := p.parseAssignExpr()
	if !p.at(syntax.COMMA) {
		m.Abandon(p.sink)
		return first
	}
	for p.eat(syntax.COMMA) {
		p.parseAssignExpr()
	}
	return m.Complete(p.sink, syntax.SEQUENCE_EXPR)
}

// parseAssignExpr is the entry point for every non-comma expression
// production: arrow functions (tried speculatively, since "(" ... ")" is
// ambiguous with a parenthesized expression until "=>" is seen or not),
// conditional expressions, and assignment.
func (p *Parser) parseAssignExpr() event.CompletedMarker {
	if cm, ok := p.tryParseArrow(); ok {
		return cm
	}

	if p.at(syntax.YIELD_KW) {
		return p.parseYieldExpr()
	}

	lhs := p.parseConditionalExpr()
	if isAssignOp(p.nth(0)) {
		m := lhs.Precede(p.sink)
		p.bump()
		p.parseAssignExpr()
		return m.Complete(p.sink, syntax.ASSIGN_EXPR)
	}
	return lhs
}

func (p *Parser) parseYieldExpr() event.CompletedMarker {
	m := p.start()
	p.bump() // yield
	p.eat(syntax.STAR) // yield*
	if !p.atEnd() && !p.at(syntax.SEMICOLON) && !p.at(syntax.R_PAREN) && !p.at(syntax.R_BRACE) &&
		!p.at(syntax.R_BRACK) && !p.at(syntax.COMMA) && !p.at(syntax.COLON) &&
		!p.ts.NthHasPrecedingLineBreak(0) {
		p.parseAssignExpr()
	}
	return m.Complete(p.sink, syntax.UNARY_EXPR)
}

// tryParseArrow recognizes the two arrow-function forms: a bare identifier
// ("x => ...") with no backtracking needed, and a parenthesized parameter
// list ("(" ... ")" "=>" ...), which requires full speculative parsing
// per spec.md §4.2 since an arbitrarily complex parenthesized expression is
// a valid alternative parse until "=>" actually appears.
func (p *Parser) tryParseArrow() (event.CompletedMarker, bool) {
	isAsync := p.atContextual(0, "async") && !p.ts.NthHasPrecedingLineBreak(1) &&
		(p.nth(1) == syntax.IDENT || p.nth(1) == syntax.L_PAREN)

	if p.at(syntax.IDENT) && p.nth(1) == syntax.ARROW && !p.ts.NthHasPrecedingLineBreak(1) {
		m := p.start()
		pm := p.start()
		idm := p.start()
		p.bump()
		idm.Complete(p.sink, syntax.NAME)
		pm.Complete(p.sink, syntax.PARAM_LIST)
		p.bump() // =>
		p.parseArrowBody()
		return m.Complete(p.sink, syntax.ARROW_EXPR), true
	}

	if isAsync && p.nth(1) == syntax.IDENT && p.nth(2) == syntax.ARROW {
		m := p.start()
		p.bump() // async
		pm := p.start()
		idm := p.start()
		p.bump()
		idm.Complete(p.sink, syntax.NAME)
		pm.Complete(p.sink, syntax.PARAM_LIST)
		p.bump() // =>
		p.parseArrowBody()
		return m.Complete(p.sink, syntax.ARROW_EXPR), true
	}

	startsParenList := p.at(syntax.L_PAREN) || (isAsync && p.nth(1) == syntax.L_PAREN)
	if !startsParenList {
		return event.CompletedMarker{}, false
	}

	var result event.CompletedMarker
	ok := p.speculative(func() bool {
		m := p.start()
		async := false
		if p.atContextual(0, "async") {
			p.bump()
			async = true
		}
		if !p.at(syntax.L_PAREN) {
			m.Abandon(p.sink)
			return false
		}
		p.parseParamList()
		if !p.at(syntax.ARROW) || p.ts.NthHasPrecedingLineBreak(0) {
			m.Abandon(p.sink)
			return false
		}
		p.bump() // =>
		p.parseArrowBody()
		_ = async
		result = m.Complete(p.sink, syntax.ARROW_EXPR)
		return true
	})
	return result, ok
}

func (p *Parser) parseArrowBody() {
	if p.at(syntax.L_BRACE) {
		p.parseBlockStmt()
		return
	}
	p.parseAssignExpr()
}

func (p *Parser) parseConditionalExpr() event.CompletedMarker {
	cond := p.parseBinaryExpr(1)
	if !p.eat(syntax.QUESTION) {
		return cond
	}
	m := cond.Precede(p.sink)
	p.parseAssignExpr()
	p.expect(syntax.COLON, "expected ':' in conditional expression")
	p.parseAssignExpr()
	return m.Complete(p.sink, syntax.COND_EXPR)
}

// parseBinaryExpr implements precedence climbing via CompletedMarker.Precede,
// the forward-parent mechanism spec.md §4.2 specifies for left-recursive
// binary/logical operator chains.
func (p *Parser) parseBinaryExpr(minPrec int) event.CompletedMarker {
	lhs := p.parseUnaryExpr()
	for {
		op, ok := binOpInfo(p.nth(0))
		if !ok || op.prec < minPrec {
			return lhs
		}
		m := lhs.Precede(p.sink)
		p.bump()
		nextMin := op.prec + 1
		if op.rightAssoc {
			nextMin = op.prec
		}
		p.parseBinaryExpr(nextMin)
		nodeKind := syntax.BIN_EXPR
		if op.logical {
			nodeKind = syntax.LOGIC_EXPR
		}
		lhs = m.Complete(p.sink, nodeKind)
	}
}

func (p *Parser) parseUnaryExpr() event.CompletedMarker {
	switch p.nth(0) {
	case syntax.PLUS, syntax.MINUS, syntax.TILDE, syntax.BANG,
		syntax.TYPEOF_KW, syntax.VOID_KW, syntax.DELETE_KW:
		m := p.start()
		p.bump()
		p.parseUnaryExpr()
		return m.Complete(p.sink, syntax.UNARY_EXPR)
	case syntax.PLUS2, syntax.MINUS2:
		m := p.start()
		p.bump()
		p.parseUnaryExpr()
		return m.Complete(p.sink, syntax.UPDATE_EXPR)
	case syntax.AWAIT_KW:
		m := p.start()
		p.bump()
		p.parseUnaryExpr()
		return m.Complete(p.sink, syntax.UNARY_EXPR)
	default:
		return p.parsePostfixExpr()
	}
}

func (p *Parser) parsePostfixExpr() event.CompletedMarker {
	lhs := p.parseCallMemberExpr()
	if (p.at(syntax.PLUS2) || p.at(syntax.MINUS2)) && !p.ts.NthHasPrecedingLineBreak(0) {
		m := lhs.Precede(p.sink)
		p.bump()
		return m.Complete(p.sink, syntax.UPDATE_EXPR)
	}
	return lhs
}

// parseCallMemberExpr parses new-expressions, member access (dot, bracket,
// optional-chain variants), call expressions, and tagged templates, all of
// which share the same left-to-right postfix loop.
func (p *Parser) parseCallMemberExpr() event.CompletedMarker {
	lhs := p.parseNewOrPrimary()
	for {
		switch {
		case p.at(syntax.DOT):
			m := lhs.Precede(p.sink)
			p.bump()
			p.parseMemberName()
			lhs = m.Complete(p.sink, syntax.MEMBER_EXPR)
		case p.at(syntax.L_BRACK):
			m := lhs.Precede(p.sink)
			p.bump()
			p.parseExpr()
			p.expect(syntax.R_BRACK, "expected ']' to close computed member expression")
			lhs = m.Complete(p.sink, syntax.MEMBER_EXPR)
		case p.at(syntax.QUESTIONDOT):
			m := lhs.Precede(p.sink)
			p.bump()
			switch {
			case p.at(syntax.L_PAREN):
				p.parseArgList()
				lhs = m.Complete(p.sink, syntax.OPTIONAL_CHAIN)
			case p.at(syntax.L_BRACK):
				p.bump()
				p.parseExpr()
				p.expect(syntax.R_BRACK, "expected ']' to close computed member expression")
				lhs = m.Complete(p.sink, syntax.OPTIONAL_CHAIN)
			default:
				p.parseMemberName()
				lhs = m.Complete(p.sink, syntax.OPTIONAL_CHAIN)
			}
		case p.at(syntax.L_PAREN):
			m := lhs.Precede(p.sink)
			p.parseArgList()
			lhs = m.Complete(p.sink, syntax.CALL_EXPR)
		case p.at(syntax.TEMPLATE):
			m := lhs.Precede(p.sink)
			p.bump()
			lhs = m.Complete(p.sink, syntax.TAGGED_TEMPLATE)
		default:
			return lhs
		}
	}
}

// parseMemberName consumes a property name after '.' or '?.', accepting
// reserved words (e.g. "foo.class") and private names ("foo.#bar").
func (p *Parser) parseMemberName() {
	if p.at(syntax.PRIVATE_NAME) || p.at(syntax.IDENT) || p.nth(0).IsKeyword() {
		p.bump()
		return
	}
	p.errRecover("expected property name after '.'", nil)
}

func (p *Parser) parseNewOrPrimary() event.CompletedMarker {
	if p.at(syntax.NEW_KW) {
		if p.nth(1) == syntax.DOT {
			m := p.start()
			p.bump()
			p.bump()
			p.bumpRemap(syntax.TARGET_KW)
			return m.Complete(p.sink, syntax.NEW_TARGET)
		}
		m := p.start()
		p.bump()
		p.parseNewOrPrimary()
		if p.at(syntax.L_PAREN) {
			p.parseArgList()
		}
		return m.Complete(p.sink, syntax.NEW_EXPR)
	}
	return p.parsePrimaryExpr()
}

func (p *Parser) parseArgList() event.CompletedMarker {
	m := p.start()
	p.expect(syntax.L_PAREN, "expected '('")
	for !p.at(syntax.R_PAREN) && !p.atEnd() {
		if p.at(syntax.ELLIPSIS) {
			sm := p.start()
			p.bump()
			p.parseAssignExpr()
			sm.Complete(p.sink, syntax.SPREAD_ELEMENT)
		} else {
			p.parseAssignExpr()
		}
		if !p.eat(syntax.COMMA) {
			break
		}
	}
	p.expect(syntax.R_PAREN, "expected ')' to close argument list")
	return m.Complete(p.sink, syntax.ARG_LIST)
}

func (p *Parser) parsePrimaryExpr() event.CompletedMarker {
	switch {
	case p.atAny(syntax.NUMBER, syntax.STRING, syntax.REGEX, syntax.TEMPLATE,
		syntax.TRUE_KW, syntax.FALSE_KW, syntax.NULL_KW):
		m := p.start()
		p.bump()
		return m.Complete(p.sink, syntax.LITERAL)
	case p.at(syntax.THIS_KW), p.at(syntax.SUPER_KW):
		m := p.start()
		p.bump()
		return m.Complete(p.sink, syntax.LITERAL)
	case p.at(syntax.IDENT):
		m := p.start()
		p.bump()
		return m.Complete(p.sink, syntax.NAME_REF)
	case p.at(syntax.PRIVATE_NAME):
		m := p.start()
		p.bump()
		return m.Complete(p.sink, syntax.NAME_REF)
	case p.at(syntax.L_PAREN):
		m := p.start()
		p.bump()
		p.parseExpr()
		p.expect(syntax.R_PAREN, "expected ')' to close parenthesized expression")
		return m.Complete(p.sink, syntax.GROUPING_EXPR)
	case p.at(syntax.L_BRACK):
		return p.parseArrayLiteral()
	case p.at(syntax.L_BRACE):
		return p.parseObjectLiteral()
	case p.at(syntax.FUNCTION_KW):
		return p.parseFunctionExpr()
	case p.at(syntax.CLASS_KW):
		return p.parseClassExpr()
	case p.atContextual(0, "async") && p.nth(1) == syntax.FUNCTION_KW:
		return p.parseFunctionExpr()
	default:
		m := p.start()
		p.errorHere("expected an expression")
		if !p.atEnd() {
			p.bump()
		}
		return m.Complete(p.sink, syntax.ERROR_NODE)
	}
}

func (p *Parser) parseArrayLiteral() event.CompletedMarker {
	m := p.start()
	p.expect(syntax.L_BRACK, "expected '['")
	for !p.at(syntax.R_BRACK) && !p.atEnd() {
		if p.at(syntax.COMMA) {
			p.bump() // elision
			continue
		}
		if p.at(syntax.ELLIPSIS) {
			sm := p.start()
			p.bump()
			p.parseAssignExpr()
			sm.Complete(p.sink, syntax.SPREAD_ELEMENT)
		} else {
			p.parseAssignExpr()
		}
		if !p.eat(syntax.COMMA) {
			break
		}
	}
	p.expect(syntax.R_BRACK, "expected ']' to close array literal")
	return m.Complete(p.sink, syntax.ARRAY_EXPR)
}

// parseObjectLiteral parses "{" ... "}" including get/set/async/generator
// method shorthand and spread, per spec.md §4.2's object-literal grammar.
func (p *Parser) parseObjectLiteral() event.CompletedMarker {
	m := p.start()
	p.expect(syntax.L_BRACE, "expected '{'")
	for !p.at(syntax.R_BRACE) && !p.atEnd() {
		p.parseObjectMember()
		if !p.eat(syntax.COMMA) {
			break
		}
	}
	p.expect(syntax.R_BRACE, "expected '}' to close object literal")
	return m.Complete(p.sink, syntax.OBJECT_EXPR)
}

func (p *Parser) parseObjectMember() {
	if p.at(syntax.ELLIPSIS) {
		m := p.start()
		p.bump()
		p.parseAssignExpr()
		m.Complete(p.sink, syntax.SPREAD_ELEMENT)
		return
	}

	m := p.start()
	isAsync := p.atContextual(0, "async") && !p.atAny2(1, syntax.COLON, syntax.COMMA, syntax.R_BRACE, syntax.L_PAREN)
	if isAsync {
		p.bump()
	}
	isGen := p.eat(syntax.STAR)
	isGetter := !isAsync && !isGen && p.atContextual(0, "get") && !p.atAny2(1, syntax.COLON, syntax.COMMA, syntax.R_BRACE, syntax.L_PAREN)
	isSetter := !isAsync && !isGen && !isGetter && p.atContextual(0, "set") && !p.atAny2(1, syntax.COLON, syntax.COMMA, syntax.R_BRACE, syntax.L_PAREN)
	if isGetter {
		p.bumpRemap(syntax.GET_KW)
	} else if isSetter {
		p.bumpRemap(syntax.SET_KW)
	}

	p.parsePropertyKey()

	switch {
	case p.at(syntax.L_PAREN):
		p.parseParamList()
		p.parseBlockStmt()
		m.Complete(p.sink, syntax.METHOD)
	case p.eat(syntax.COLON):
		p.parseAssignExpr()
		m.Complete(p.sink, syntax.PROPERTY)
	case p.eat(syntax.EQ):
		// cover-grammar default value, only valid inside a later-reinterpreted
		// destructuring pattern; accepted here so object literals used as
		// patterns don't need a separate grammar.
		p.parseAssignExpr()
		m.Complete(p.sink, syntax.SHORTHAND_PROPERTY)
	default:
		m.Complete(p.sink, syntax.SHORTHAND_PROPERTY)
	}
}

// atAny2 is atAny restricted to a single lookahead position n, used for the
// get/set/async disambiguation lookahead in parseObjectMember.
func (p *Parser) atAny2(n int, ks ...syntax.Kind) bool {
	cur := p.nth(n)
	for _, k := range ks {
		if cur == k {
			return true
		}
	}
	return false
}
