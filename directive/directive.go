// Package directive parses `rslint-ignore` style comments that suppress
// diagnostics, either for an entire file or for specific rule names, per
// spec.md §6's directive grammar.
package directive

import (
	"strconv"
	"strings"
)

// DefaultPrefix is the directive comment prefix recognized when no other
// prefix is configured.
const DefaultPrefix = "rslint-"

// Kind distinguishes a file-wide suppression from a rule-scoped one.
// Invalid marks a directive-prefixed comment whose command didn't parse;
// it suppresses nothing but still carries a diagnostic-worthy Issue.
type Kind int

const (
	IgnoreFile Kind = iota
	IgnoreRules
	Invalid
)

// Issue is a non-fatal problem found while parsing a directive comment:
// an unknown or empty command, or a duplicate rule within one directive
// (unknown rule names are checked later, by the linter). Every
// Issue is a diagnostic-worthy finding per spec.md §7's "Directive
// errors" taxonomy; Warning is false only for commands that don't parse
// at all, which are reported at Error severity.
type Issue struct {
	Message string
	Warning bool
}

// Directive is one parsed directive comment.
type Directive struct {
	Kind   Kind
	Rules  []string // empty for IgnoreFile
	Offset uint32   // byte offset of the comment itself
	Line   int      // 1-based source line the directive appears on

	// Scoped, RangeStart, RangeEnd implement spec.md §3/§6's distinction
	// between IgnoreFile/IgnoreRulesFile (Scoped == false, applies
	// anywhere in the file) and IgnoreNode/IgnoreRules(rules, range)
	// (Scoped == true, applies only within [RangeStart, RangeEnd)): a
	// directive comment that no non-trivia token of the file precedes is
	// file-wide; one that precedes a specific node is scoped to that
	// node's text range.
	Scoped     bool
	RangeStart uint32
	RangeEnd   uint32

	Issues []Issue
}

// ParseComment attempts to parse text (a comment's body, with the comment
// delimiters already stripped) as a directive using prefix. It returns
// ok=false for ordinary comments that don't match the directive grammar at
// all, i.e. ones that don't even start with prefix — those are never
// reported as malformed, only as "not a directive". A comment that does
// start with prefix but whose command word isn't "ignore" still returns
// ok=true, carrying a Kind == Invalid directive with an Issue describing
// the unknown command (spec.md §7 "unknown command").
func ParseComment(prefix, text string) (Directive, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, prefix) {
		return Directive{}, false
	}
	rest := strings.TrimSpace(strings.TrimPrefix(text, prefix))
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return Directive{Kind: Invalid, Issues: []Issue{{Message: "empty directive command"}}}, true
	}
	if fields[0] != "ignore" {
		return Directive{Kind: Invalid, Issues: []Issue{
			{Message: "unknown directive command " + strconv.Quote(fields[0])},
		}}, true
	}

	if len(fields) == 1 {
		return Directive{Kind: IgnoreFile}, true
	}

	list := strings.TrimSpace(strings.TrimPrefix(rest, "ignore"))
	var rules []string
	var issues []Issue
	seen := map[string]bool{}
	for _, r := range strings.Split(list, ",") {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if seen[r] {
			issues = append(issues, Issue{Message: "duplicate rule " + strconv.Quote(r) + " in directive", Warning: true})
			continue
		}
		seen[r] = true
		rules = append(rules, r)
	}
	return Directive{Kind: IgnoreRules, Rules: rules, Issues: issues}, true
}

// Suppresses reports whether d suppresses a diagnostic with the given rule
// name (ruleName == "" for parser-sourced diagnostics, which only a
// file-wide ignore can suppress) at primary range offset.
func (d Directive) Suppresses(ruleName string, offset uint32) bool {
	if !d.names(ruleName) {
		return false
	}
	if !d.Scoped {
		return true
	}
	return offset >= d.RangeStart && offset < d.RangeEnd
}

func (d Directive) names(ruleName string) bool {
	if d.Kind == IgnoreFile {
		return true
	}
	for _, r := range d.Rules {
		if r == ruleName {
			return true
		}
	}
	return false
}
