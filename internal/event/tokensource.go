package event

import (
	"github.com/jslint-dev/jslint/internal/lexer"
	"github.com/jslint-dev/jslint/internal/syntax"
)

// TokenSource is the parser's view of the token stream: lookahead up to 4
// significant (non-trivia) tokens, plus the ability to consume one. It owns
// the raw token buffer (trivia included) so the tree builder can later
// interleave trivia back in without re-lexing, per spec.md §4.2/§4.3.
type TokenSource struct {
	src     string
	raw     []RawToken // every token the lexer produced, trivia included
	offsets []int      // byte offset of raw[i] in src

	// sig holds the index into raw of each non-trivia token, in order, plus
	// one trailing sentinel equal to len(raw) representing EOF.
	sig []int

	// newlineBefore[i] reports whether a line break appears in the trivia
	// immediately preceding sig[i]; newlineBefore has one entry per sig
	// entry (EOF sentinel included, computed from trailing trivia).
	newlineBefore []bool

	cursor        int // index into sig: which significant token is "current"
	rawConsumedTo int // raw tokens with index < rawConsumedTo have been bumped already

	// StepCount counts NthKind lookahead calls (Bump does not add to it);
	// the parser aborts with a
	// recovery error rather than looping forever once this exceeds a cap.
	StepCount int
}

// NewTokenSource lexes src fully and returns a TokenSource over it plus the
// diagnostics the lexer produced along the way (these flow into the final
// parser diagnostic list verbatim).
func NewTokenSource(src string) (*TokenSource, []lexer.Diagnostic) {
	lx := lexer.New(src)
	var raw []RawToken
	var diags []lexer.Diagnostic
	offset := 0
	offsets := []int{}
	for {
		tok, diag, ok := lx.Next()
		if !ok {
			break
		}
		var d *lexer.Diagnostic
		if diag != nil {
			diags = append(diags, *diag)
			d = diag
		}
		offsets = append(offsets, offset)
		offset += int(tok.Length)
		raw = append(raw, RawToken{Kind: tok.Kind, Length: tok.Length, Diag: d})
	}

	sig := make([]int, 0, len(raw))
	for i, t := range raw {
		if !t.Kind.IsTrivia() {
			sig = append(sig, i)
		}
	}

	newlineBefore := make([]bool, len(sig)+1)
	prevEnd := 0
	for k, rawIdx := range sig {
		for j := prevEnd; j < rawIdx; j++ {
			if raw[j].Kind.IsTrivia() && triviaHasNewline(src, offsets[j], int(raw[j].Length), raw[j].Kind) {
				newlineBefore[k] = true
			}
		}
		prevEnd = rawIdx + 1
	}
	for j := prevEnd; j < len(raw); j++ {
		if raw[j].Kind.IsTrivia() && triviaHasNewline(src, offsets[j], int(raw[j].Length), raw[j].Kind) {
			newlineBefore[len(sig)] = true
		}
	}

	sig = append(sig, len(raw)) // EOF sentinel

	return &TokenSource{src: src, raw: raw, sig: sig, newlineBefore: newlineBefore, offsets: offsets}, diags
}

func triviaHasNewline(src string, offset, length int, kind syntax.Kind) bool {
	if kind == syntax.LINE_COMMENT {
		return true // a line comment always ends at a line break (or EOF)
	}
	text := src[offset : offset+length]
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			return true
		}
	}
	return false
}

// Raw returns the full raw token buffer, trivia included; used by the tree
// builder.
func (ts *TokenSource) Raw() []RawToken { return ts.raw }

// NthKind returns the kind of the nth significant token ahead of the
// cursor (0 = current). n is not clamped; any position past the last
// significant token reports EOF.
func (ts *TokenSource) NthKind(n int) syntax.Kind {
	ts.StepCount++
	idx := ts.cursor + n
	if idx >= len(ts.sig)-1 {
		return syntax.EOF
	}
	return ts.raw[ts.sig[idx]].Kind
}

// NthText returns the source slice for the token n ahead of the cursor,
// used for contextual-keyword disambiguation (get/set/of/async/from/as).
func (ts *TokenSource) NthText(n int, src string) string {
	idx := ts.cursor + n
	if idx >= len(ts.sig)-1 {
		return ""
	}
	rawIdx := ts.sig[idx]
	offset := ts.offsets[rawIdx]
	return src[offset : offset+int(ts.raw[rawIdx].Length)]
}

// NthHasPrecedingLineBreak reports whether the trivia immediately before
// the nth token ahead of the cursor contains a line break; this is the
// fact ASI's implicit-semicolon rule (spec.md §4.2) is built on.
func (ts *TokenSource) NthHasPrecedingLineBreak(n int) bool {
	idx := ts.cursor + n
	if idx < 0 || idx >= len(ts.newlineBefore) {
		return false
	}
	return ts.newlineBefore[idx]
}

// Bump consumes the current significant token (and any trivia preceding
// it that has not yet been consumed) and advances the cursor by one. It
// returns the number of raw tokens it folded in, for the parser to emit as
// an Event.Token's NRawTokens.
func (ts *TokenSource) Bump() uint8 {
	if ts.cursor >= len(ts.sig)-1 {
		return 0
	}
	rawIdx := ts.sig[ts.cursor]
	n := rawIdx - ts.rawConsumedTo + 1
	ts.rawConsumedTo = rawIdx + 1
	ts.cursor++
	return uint8(n)
}

// CurrentOffset returns the byte offset of the current (0th) significant
// token, or the length of the source if the cursor is at EOF.
func (ts *TokenSource) CurrentOffset() int {
	idx := ts.cursor
	if idx >= len(ts.sig)-1 {
		return len(ts.src)
	}
	return ts.offsets[ts.sig[idx]]
}

// CurrentLength returns the byte length of the current significant token,
// or 0 at EOF.
func (ts *TokenSource) CurrentLength() int {
	idx := ts.cursor
	if idx >= len(ts.sig)-1 {
		return 0
	}
	return int(ts.raw[ts.sig[idx]].Length)
}

// AtEnd reports whether the cursor has reached the EOF sentinel.
func (ts *TokenSource) AtEnd() bool { return ts.cursor >= len(ts.sig)-1 }

// Snapshot captures enough cursor state to later Restore, for the
// parser's speculative-parse-then-backtrack arrow-function disambiguation
// (spec.md §4.2 "Arrow vs parenthesized expression").
type Snapshot struct {
	cursor        int
	rawConsumedTo int
}

func (ts *TokenSource) Snap() Snapshot {
	return Snapshot{cursor: ts.cursor, rawConsumedTo: ts.rawConsumedTo}
}

func (ts *TokenSource) Restore(s Snapshot) {
	ts.cursor = s.cursor
	ts.rawConsumedTo = s.rawConsumedTo
}

// TrailingTrivia returns the raw tokens after the last bumped token that
// were never folded into a Token event (i.e. trailing whitespace/comments
// at EOF); the tree builder appends these directly as children of the
// root.
func (ts *TokenSource) TrailingTrivia() []RawToken {
	return ts.raw[ts.rawConsumedTo:]
}
