package lexer

import "github.com/jslint-dev/jslint/internal/syntax"

// scanIdentPart advances past identifier-part bytes (and \uXXXX escapes,
// per spec.md §4.1) without classifying the result; used by the
// private-name (#foo) path which never maps to a keyword.
func (l *Lexer) scanIdentPart() {
	for l.pos < len(l.src) {
		if isIdentPartByte(l.src[l.pos]) {
			l.pos++
			continue
		}
		if l.src[l.pos] == '\\' && l.peekByte(1) == 'u' {
			l.pos += 2
			l.skipUnicodeEscapeDigits()
			continue
		}
		break
	}
}

func (l *Lexer) skipUnicodeEscapeDigits() {
	if l.peekCur() == '{' {
		l.pos++
		for l.pos < len(l.src) && l.src[l.pos] != '}' {
			l.pos++
		}
		if l.pos < len(l.src) {
			l.pos++
		}
		return
	}
	for i := 0; i < 4 && isHexDigit(l.peekCur()); i++ {
		l.pos++
	}
}

// scanIdentOrKeyword consumes an identifier and classifies it against the
// reserved-word table; contextual keywords (get/set/of/async/from/as/
// target) are intentionally left as IDENT so the parser can inspect their
// text at the specific grammar positions that make them keywords.
func (l *Lexer) scanIdentOrKeyword(start int) Token {
	l.pos++ // identifier-start byte already classified by the caller
	l.scanIdentPart()
	text := l.src[start:l.pos]
	if kind, ok := syntax.Keywords[text]; ok {
		return Token{Kind: kind, Length: uint32(l.pos - start)}
	}
	return Token{Kind: syntax.IDENT, Length: uint32(l.pos - start)}
}
