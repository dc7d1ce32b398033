// Package lexer turns raw ECMAScript source bytes into a lazy sequence of
// tokens. The lexer never aborts: on malformed input it emits an ERROR
// token spanning the offending bytes plus a recoverable Diagnostic, and
// always advances by at least one byte.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/jslint-dev/jslint/internal/syntax"
)

// Token is a bare kind+length pair. Tokens do not own their text; callers
// recover text by slicing the original source at the token's offset.
type Token struct {
	Kind   syntax.Kind
	Length uint32
}

// Diagnostic is a lexer-level recoverable error, relative to the source the
// Lexer was constructed with.
type Diagnostic struct {
	Offset  uint32
	Length  uint32
	Message string
}

// Lexer is a single-pass, stateful scanner over one file's source text.
type Lexer struct {
	src string
	pos int // byte offset of the next unread byte

	// prevSignificant is the kind of the last non-trivia token emitted; it
	// decides whether '/' starts a regex literal or a division operator.
	prevSignificant syntax.Kind

	// templateStack is not read or written: scanTemplate tracks nested
	// `${ … }` interpolation with a local depth counter instead.
	templateStack []rune

	// lastPos/stuck detect a lexer that fails to advance, mirroring the
	// teacher's own stuckCounter guard in pkgs/lexer/lexer.go.
	lastPos      int
	stuckCounter int
}

// New creates a Lexer over src.
func New(src string) *Lexer {
	return &Lexer{src: src, prevSignificant: syntax.EOF, lastPos: -1}
}

// Done reports whether the lexer has consumed the entire input.
func (l *Lexer) Done() bool { return l.pos >= len(l.src) }

// Next scans and returns the next token. ok is false only once the input is
// fully consumed. diag is non-nil when the token is accompanied by a
// recoverable diagnostic.
func (l *Lexer) Next() (tok Token, diag *Diagnostic, ok bool) {
	if l.pos >= len(l.src) {
		return Token{}, nil, false
	}

	l.guardAgainstStall()

	start := l.pos
	ch := l.src[l.pos]

	switch {
	case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f' || ch == '\v':
		l.scanWhitespace()
		return l.finish(start, syntax.WHITESPACE), nil, true

	case ch == '/' && l.peekByte(1) == '/':
		l.scanLineComment()
		return l.finish(start, syntax.LINE_COMMENT), nil, true

	case ch == '/' && l.peekByte(1) == '*':
		d := l.scanBlockComment(start)
		return l.finish(start, syntax.BLOCK_COMMENT), d, true

	case ch == '/' && l.regexAllowed():
		t, d := l.scanRegex(start)
		l.prevSignificant = t.Kind
		return t, d, true

	case ch == '"' || ch == '\'':
		t, d := l.scanString(start, rune(ch))
		l.prevSignificant = t.Kind
		return t, d, true

	case ch == '`':
		t, d := l.scanTemplate(start)
		l.prevSignificant = t.Kind
		return t, d, true

	case isDigit(ch) || (ch == '.' && isDigit(l.peekByte(1))):
		t, d := l.scanNumber(start)
		l.prevSignificant = t.Kind
		return t, d, true

	case ch == '#':
		l.advanceByte()
		l.scanIdentPart()
		t := l.finish(start, syntax.PRIVATE_NAME)
		l.prevSignificant = t.Kind
		return t, nil, true

	case isIdentStartByte(ch):
		t := l.scanIdentOrKeyword(start)
		l.prevSignificant = t.Kind
		return t, nil, true

	case ch >= 0x80:
		// Possible Unicode identifier start or combining punctuation; decode
		// a rune and fall back to the identifier/unknown paths.
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if unicode.IsLetter(r) {
			t := l.scanIdentOrKeyword(start)
			l.prevSignificant = t.Kind
			return t, nil, true
		}
		l.pos += size
		t := l.finish(start, syntax.ERROR)
		l.prevSignificant = t.Kind
		return t, &Diagnostic{Offset: uint32(start), Length: t.Length, Message: "unexpected character"}, true

	default:
		t, d := l.scanOperatorOrPunct(start, ch)
		l.prevSignificant = t.Kind
		return t, d, true
	}
}

func (l *Lexer) finish(start int, kind syntax.Kind) Token {
	return Token{Kind: kind, Length: uint32(l.pos - start)}
}

// guardAgainstStall panics with an internal invariant violation if the
// cursor fails to advance across repeated calls; this can only happen from
// a bug in a scan* routine, never from malformed user input, since every
// scan* routine below is responsible for advancing by at least one byte.
func (l *Lexer) guardAgainstStall() {
	if l.pos == l.lastPos {
		l.stuckCounter++
		if l.stuckCounter > 4 {
			panic("lexer: internal invariant violated, cursor did not advance")
		}
	} else {
		l.stuckCounter = 0
		l.lastPos = l.pos
	}
}

func (l *Lexer) peekByte(n int) byte {
	if l.pos+n >= len(l.src) {
		return 0
	}
	return l.src[l.pos+n]
}

func (l *Lexer) advanceByte() byte {
	ch := l.src[l.pos]
	l.pos++
	return ch
}

func (l *Lexer) scanWhitespace() {
	for l.pos < len(l.src) {
		ch := l.src[l.pos]
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f' || ch == '\v' {
			l.pos++
			continue
		}
		break
	}
}

func (l *Lexer) scanLineComment() {
	l.pos += 2
	for l.pos < len(l.src) && l.src[l.pos] != '\n' {
		l.pos++
	}
}

func (l *Lexer) scanBlockComment(start int) *Diagnostic {
	l.pos += 2
	for l.pos < len(l.src) {
		if l.src[l.pos] == '*' && l.peekByte(1) == '/' {
			l.pos += 2
			return nil
		}
		l.pos++
	}
	return &Diagnostic{Offset: uint32(start), Length: uint32(l.pos - start), Message: "unterminated block comment"}
}

// regexAllowed reports whether the previous significant token permits an
// expression to start here, which is when '/' begins a regex literal
// instead of the division operator.
func (l *Lexer) regexAllowed() bool {
	switch l.prevSignificant {
	case syntax.IDENT, syntax.NUMBER, syntax.STRING, syntax.REGEX, syntax.TEMPLATE,
		syntax.R_PAREN, syntax.R_BRACK, syntax.THIS_KW, syntax.SUPER_KW,
		syntax.TRUE_KW, syntax.FALSE_KW, syntax.NULL_KW, syntax.PLUS2, syntax.MINUS2:
		return false
	default:
		return true
	}
}

func isDigit(ch byte) bool  { return ch >= '0' && ch <= '9' }
func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
func isIdentStartByte(ch byte) bool {
	return ch == '_' || ch == '$' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
func isIdentPartByte(ch byte) bool {
	return isIdentStartByte(ch) || isDigit(ch)
}
