// Package event defines the flat instruction stream the parser emits and
// the tree builder consumes, per spec.md §3/§4.2/§4.3. Encoding tree shape
// as a flat stream (rather than building a tree directly) is what lets the
// parser rewrite an already-completed node as the child of a later-started
// parent — the "forward parent" technique used for operator-precedence
// climbing.
package event

import (
	"github.com/jslint-dev/jslint/internal/lexer"
	"github.com/jslint-dev/jslint/internal/syntax"
)

// Tag discriminates the Event sum type. Go has no tagged unions, so Event
// is one flat struct with a Tag plus the fields relevant to that tag —
// the same discriminated-struct idiom the teacher uses for its AST command
// kinds (ast.Command/WatchCommand/StopCommand).
type Tag uint8

const (
	Start Tag = iota
	Finish
	Token
	Error
	Tombstone
)

// Event is one instruction in the stream produced by the parser.
type Event struct {
	Tag Tag

	// Start fields.
	Kind          syntax.Kind
	ForwardParent int // relative index of a later Start that is the true parent; 0 means none

	// Token fields.
	NRawTokens uint8

	// Error fields.
	Diagnostic Diagnostic
}

// Diagnostic is a parser-level recoverable error attached to an Error
// event; the tree builder copies it onto the current builder position
// without mutating tree shape.
type Diagnostic struct {
	Offset  uint32
	Length  uint32
	Message string
}

// Marker delimits the start of a not-yet-completed node; it is an index
// into the event buffer whose Start event will be back-patched once the
// node's kind and extent are known.
type Marker struct {
	pos       int
	completed bool
}

// CompletedMarker is a Marker after Complete has back-patched its Start
// event and appended a matching Finish event.
type CompletedMarker struct {
	startPos  int
	finishPos int
	kind      syntax.Kind
}

// Sink accumulates events during one parse. It is owned by the parser and
// handed to the tree builder once parsing finishes.
type Sink struct {
	Events []Event
}

// NewSink returns an empty event sink.
func NewSink() *Sink { return &Sink{} }

// Start opens a new, as-yet-unclassified node and returns a Marker for it.
func (s *Sink) Start() Marker {
	pos := len(s.Events)
	s.Events = append(s.Events, Event{Tag: Start, Kind: syntax.TOMBSTONE})
	return Marker{pos: pos}
}

// Token records that nRaw raw lexer tokens (the significant token plus any
// not-yet-consumed trivia before it, as counted by TokenSource.Bump) were
// consumed as a single significant token of kind.
func (s *Sink) Token(kind syntax.Kind, nRaw uint8) {
	s.Events = append(s.Events, Event{Tag: Token, Kind: kind, NRawTokens: nRaw})
}

// Error attaches a recoverable diagnostic to the current stream position.
func (s *Sink) Error(d Diagnostic) {
	s.Events = append(s.Events, Event{Tag: Error, Diagnostic: d})
}

// Snapshot returns the current event count, to be paired with a later
// Truncate call when the parser needs to backtrack out of a speculative
// parse (e.g. a parenthesized expression that turns out not to be an
// arrow function's parameter list).
func (s *Sink) Snapshot() int { return len(s.Events) }

// Truncate discards every event recorded since the matching Snapshot.
func (s *Sink) Truncate(mark int) { s.Events = s.Events[:mark] }

// Complete closes m with kind, back-patching its Start event, and returns
// a CompletedMarker that can later be preceded by a new parent.
func (m Marker) Complete(s *Sink, kind syntax.Kind) CompletedMarker {
	s.Events[m.pos].Kind = kind
	s.Events = append(s.Events, Event{Tag: Finish})
	return CompletedMarker{startPos: m.pos, finishPos: len(s.Events) - 1, kind: kind}
}

// Abandon discards an empty marker: if it is the last event in the stream
// it is deleted outright, otherwise it is converted to a Tombstone so later
// indices remain valid.
func (m Marker) Abandon(s *Sink) {
	if m.pos == len(s.Events)-1 {
		s.Events = s.Events[:m.pos]
		return
	}
	s.Events[m.pos].Tag = Tombstone
}

// Precede opens a new Marker whose node will become cm's parent once
// completed, without touching any event already emitted for cm's subtree.
// It records a forward_parent offset on cm's own Start event pointing at
// the new marker, which the tree builder resolves before opening cm.
func (cm CompletedMarker) Precede(s *Sink) Marker {
	newPos := len(s.Events)
	s.Events = append(s.Events, Event{Tag: Start, Kind: syntax.TOMBSTONE})
	s.Events[cm.startPos].ForwardParent = newPos - cm.startPos
	return Marker{pos: newPos}
}

// Kind returns the node kind this marker was completed with.
func (cm CompletedMarker) Kind() syntax.Kind { return cm.kind }

// UndoComplete reopens a completed marker as an ordinary Marker so the
// parser can append more children before re-completing it; used when a
// cover grammar (e.g. a parenthesized expression) turns out to need more
// structure than originally assumed.
func (cm CompletedMarker) UndoComplete(s *Sink) Marker {
	s.Events[cm.startPos].Kind = syntax.TOMBSTONE
	s.Events[cm.finishPos].Tag = Tombstone
	return Marker{pos: cm.startPos}
}

// RawToken is a lexer token paired with the diagnostic (if any) the lexer
// attached when producing it. The parser's TokenSource buffers these.
type RawToken struct {
	Kind   syntax.Kind
	Length uint32
	Diag   *lexer.Diagnostic
}
