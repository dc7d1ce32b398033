// Package rule defines the contract every lint rule implements, the
// context a rule receives while visiting a file's CST, and the read-only
// registry ("store") the engine iterates. Rules are registered as data at
// init time and never looked up by inheritance, the same "registry built
// once, read thereafter" shape the teacher uses for its decorator registry
// (spec.md §9 "rule store as data, not inheritance").
package rule

import (
	"encoding/json"

	"github.com/jslint-dev/jslint/autofix"
	"github.com/jslint-dev/jslint/diagnostic"
	"github.com/jslint-dev/jslint/internal/red"
)

// Ctx is what a rule's check methods receive for one file. Report appends
// a diagnostic attributed to this rule; Rule callbacks must not retain Ctx
// past the call that received it.
type Ctx struct {
	FileID  uint32
	Source  string
	Options json.RawMessage

	results *Result
}

// NewCtx constructs a Ctx that accumulates into result.
func NewCtx(fileID uint32, source string, options json.RawMessage, result *Result) Ctx {
	return Ctx{FileID: fileID, Source: source, Options: options, results: result}
}

// Report appends a diagnostic at the given red-tree range, defaulting to
// Error severity. Use ReportAt for a custom severity.
func (c Ctx) Report(offset, length uint32, message string) {
	c.ReportAt(diagnostic.Error, offset, length, message)
}

// ReportAt appends a diagnostic of the given severity.
func (c Ctx) ReportAt(sev diagnostic.Severity, offset, length uint32, message string) {
	c.results.Diagnostics = append(c.results.Diagnostics, diagnostic.Diagnostic{
		Severity: sev,
		Primary:  diagnostic.Label{FileID: c.FileID, Offset: offset, Length: length},
		Message:  message,
	})
}

// ReportWithSecondary is ReportAt plus one secondary label elsewhere in the
// file — another range relevant to why the primary range was flagged, e.g.
// the enclosing `if` condition that already coerces its operand to
// boolean. secondaryMessage explains that range's relevance.
func (c Ctx) ReportWithSecondary(sev diagnostic.Severity, offset, length uint32, message string, secondaryOffset, secondaryLength uint32, secondaryMessage string) {
	c.results.Diagnostics = append(c.results.Diagnostics, diagnostic.Diagnostic{
		Severity: sev,
		Primary:  diagnostic.Label{FileID: c.FileID, Offset: offset, Length: length},
		Message:  message,
		SecondaryLabels: []diagnostic.Label{{
			FileID:  c.FileID,
			Offset:  secondaryOffset,
			Length:  secondaryLength,
			Message: secondaryMessage,
		}},
	})
}

// Fix proposes replacing src[start:end] with replacement as the mechanical
// correction for whichever diagnostic this call accompanies. A rule may
// call Fix any number of times per file; conflicting or overlapping fixes
// across rules are reconciled later by package autofix, not here.
func (c Ctx) Fix(ruleName string, start, end uint32, replacement string) {
	c.results.Indels = append(c.results.Indels, autofix.Indel{
		Start: int(start),
		End:   int(end),
		Text:  replacement,
		Rule:  ruleName,
	})
}

// Result accumulates one rule's findings for one file, plus any fix indels
// it proposed alongside them (see package autofix for how these are
// reconciled across rules).
type Result struct {
	Diagnostics []diagnostic.Diagnostic
	Indels      []autofix.Indel
}

// Rule is the contract every lint rule implements. check_node and
// check_token are called once per CST node/token in preorder traversal
// order (spec.md §4.4); check_root is called exactly once per file, before
// traversal begins, for rules that need whole-tree context.
type Rule interface {
	Name() string
	Group() string
	Docs() string
	Tags() []string

	CheckRoot(ctx *Ctx, root *red.Node)
	CheckNode(ctx *Ctx, n *red.Node)
	CheckToken(ctx *Ctx, t *red.Token)
}

// Base provides no-op CheckRoot/CheckNode/CheckToken implementations so a
// rule only needs to override the callbacks it cares about, mirroring the
// teacher's decorator base-struct embedding pattern.
type Base struct{}

func (Base) CheckRoot(ctx *Ctx, root *red.Node)  {}
func (Base) CheckNode(ctx *Ctx, n *red.Node)     {}
func (Base) CheckToken(ctx *Ctx, t *red.Token)   {}

// Store is the read-only registry of available rules, built once at
// startup and iterated by the engine thereafter.
type Store struct {
	byName map[string]Rule
	order  []string
}

// NewStore builds a Store from rules, panicking on a duplicate name since
// that is a programming error in the built-in rule set, never a runtime
// condition.
func NewStore(rules ...Rule) *Store {
	s := &Store{byName: make(map[string]Rule, len(rules))}
	for _, r := range rules {
		if _, dup := s.byName[r.Name()]; dup {
			panic("rule: duplicate rule name " + r.Name())
		}
		s.byName[r.Name()] = r
		s.order = append(s.order, r.Name())
	}
	return s
}

// Lookup returns the rule registered under name, if any.
func (s *Store) Lookup(name string) (Rule, bool) {
	r, ok := s.byName[name]
	return r, ok
}

// Names returns every registered rule name in registration order.
func (s *Store) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// All returns every registered rule in registration order.
func (s *Store) All() []Rule {
	out := make([]Rule, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.byName[name])
	}
	return out
}
