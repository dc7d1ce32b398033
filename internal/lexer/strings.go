package lexer

import "github.com/jslint-dev/jslint/internal/syntax"

// scanString implements quote-delimited string literals. Escape sequences
// are consumed verbatim (the lexer does not validate or decode them); an
// unterminated string at EOF or a hard line break produces a diagnostic
// and an ERROR token ending at the break, per spec.md §4.1.
func (l *Lexer) scanString(start int, quote rune) (Token, *Diagnostic) {
	l.pos++ // opening quote
	for l.pos < len(l.src) {
		ch := l.src[l.pos]
		if ch == '\\' {
			l.pos++
			if l.pos < len(l.src) {
				l.pos++
			}
			continue
		}
		if ch == byte(quote) {
			l.pos++
			return l.finish(start, syntax.STRING), nil
		}
		if ch == '\n' {
			return Token{Kind: syntax.ERROR, Length: uint32(l.pos - start)},
				&Diagnostic{Offset: uint32(start), Length: uint32(l.pos - start), Message: "unterminated string literal"}
		}
		l.pos++
	}
	return Token{Kind: syntax.ERROR, Length: uint32(l.pos - start)},
		&Diagnostic{Offset: uint32(start), Length: uint32(l.pos - start), Message: "unterminated string literal"}
}

// scanTemplate consumes an entire template literal as one TEMPLATE token,
// including `${ … }` interpolations, which are balanced by tracking brace
// nesting depth so a nested template literal inside an interpolation lexes
// correctly (spec.md §4.1 "Template literals").
func (l *Lexer) scanTemplate(start int) (Token, *Diagnostic) {
	l.pos++ // opening backtick
	depth := 0
	for l.pos < len(l.src) {
		ch := l.src[l.pos]
		switch {
		case ch == '\\':
			l.pos++
			if l.pos < len(l.src) {
				l.pos++
			}
		case ch == '`' && depth == 0:
			l.pos++
			return l.finish(start, syntax.TEMPLATE), nil
		case ch == '$' && l.peekByte(1) == '{':
			depth++
			l.pos += 2
		case ch == '{' && depth > 0:
			depth++
			l.pos++
		case ch == '}' && depth > 0:
			depth--
			l.pos++
		default:
			l.pos++
		}
	}
	return Token{Kind: syntax.ERROR, Length: uint32(l.pos - start)},
		&Diagnostic{Offset: uint32(start), Length: uint32(l.pos - start), Message: "unterminated template literal"}
}

// scanRegex is only called when regexAllowed() holds. The bracket class
// `[…]` does not nest and `\` escapes the next character, per spec.md
// §4.1. Flags are validated for duplicates among g/i/m/s/u/y.
func (l *Lexer) scanRegex(start int) (Token, *Diagnostic) {
	l.pos++ // opening '/'
	inClass := false
	for l.pos < len(l.src) {
		ch := l.src[l.pos]
		switch {
		case ch == '\\':
			l.pos++
			if l.pos < len(l.src) {
				l.pos++
			}
		case ch == '[':
			inClass = true
			l.pos++
		case ch == ']' && inClass:
			inClass = false
			l.pos++
		case ch == '/' && !inClass:
			l.pos++
			flagsStart := l.pos
			seen := map[byte]bool{}
			var dupDiag *Diagnostic
			for l.pos < len(l.src) && isIdentPartByte(l.src[l.pos]) {
				f := l.src[l.pos]
				if seen[f] || !isValidRegexFlag(f) {
					dupDiag = &Diagnostic{Offset: uint32(flagsStart), Length: uint32(l.pos - flagsStart + 1), Message: "duplicate or invalid regex flag"}
				}
				seen[f] = true
				l.pos++
			}
			return l.finish(start, syntax.REGEX), dupDiag
		case ch == '\n':
			return Token{Kind: syntax.ERROR, Length: uint32(l.pos - start)},
				&Diagnostic{Offset: uint32(start), Length: uint32(l.pos - start), Message: "unterminated regex literal"}
		default:
			l.pos++
		}
	}
	return Token{Kind: syntax.ERROR, Length: uint32(l.pos - start)},
		&Diagnostic{Offset: uint32(start), Length: uint32(l.pos - start), Message: "unterminated regex literal"}
}

func isValidRegexFlag(f byte) bool {
	switch f {
	case 'g', 'i', 'm', 's', 'u', 'y':
		return true
	default:
		return false
	}
}
