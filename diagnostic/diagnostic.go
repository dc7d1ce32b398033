// Package diagnostic defines the linter's output value types and renders
// them to text. Rules and the parser never format text themselves; they
// produce Diagnostic values and this package turns them into a short
// one-line form or a long caret-annotated snippet, per spec.md §4.6.
package diagnostic

import "fmt"

// Severity is a small total order: Bug > Error > Warning > Note > Help.
type Severity int

const (
	Help Severity = iota
	Note
	Warning
	Error
	Bug
)

func (s Severity) String() string {
	switch s {
	case Bug:
		return "bug"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	case Help:
		return "help"
	default:
		return "unknown"
	}
}

// Label points at a byte range within a file and carries an optional
// explanatory message, rendered as a caret under that range in long form.
type Label struct {
	FileID  uint32
	Offset  uint32
	Length  uint32
	Message string
}

// Diagnostic is one finding: from the parser (a recoverable syntax error),
// or from a rule (a lint violation). Code is the rule name for rule-sourced
// diagnostics, or "" for parser-sourced ones. Per spec.md §3, a diagnostic
// carries one Primary label plus zero or more SecondaryLabels — other
// ranges relevant to understanding why the primary range was flagged, e.g.
// the `if` condition that already coerces to boolean when the primary
// label points at a redundant `!!x` inside it — distinct from Notes, which
// are free-standing explanatory snippets with no structural relationship
// to the primary range, and from Suggestions, short human-readable
// "did you mean" style strings with no associated text range.
type Diagnostic struct {
	Severity        Severity
	Code            string
	Message         string
	Primary         Label
	SecondaryLabels []Label
	Notes           []Label
	Suggestions     []string
}

// Files is the minimal file-content lookup the formatters need: given a
// file ID, the name to display and the full source text to slice lines
// out of. linter.FileSet implements this.
type Files interface {
	Name(id uint32) string
	Source(id uint32) string
}

// Short renders one line: "path:line:col: severity[code]: message".
func Short(files Files, d Diagnostic) string {
	line, col := lineCol(files.Source(d.Primary.FileID), int(d.Primary.Offset))
	code := ""
	if d.Code != "" {
		code = "[" + d.Code + "]"
	}
	return fmt.Sprintf("%s:%d:%d: %s%s: %s", files.Name(d.Primary.FileID), line, col, d.Severity, code, d.Message)
}

// Long renders the short form followed by a caret-annotated source snippet
// for the primary label and each note, matching the gutter-width-from-max-
// line-number style the teacher's own ParseError snippet renderer uses.
func Long(files Files, d Diagnostic) string {
	out := Short(files, d) + "\n"
	out += renderSnippet(files, d.Primary)
	for _, l := range d.SecondaryLabels {
		out += renderSnippet(files, l)
	}
	for _, n := range d.Notes {
		out += renderSnippet(files, n)
	}
	for _, s := range d.Suggestions {
		out += "help: " + s + "\n"
	}
	return out
}

func renderSnippet(files Files, l Label) string {
	src := files.Source(l.FileID)
	line, col := lineCol(src, int(l.Offset))
	lineText := lineAt(src, line)
	gutter := fmt.Sprintf("%d", line)
	out := fmt.Sprintf(" %s | %s\n", gutter, lineText)
	caretLen := int(l.Length)
	if caretLen < 1 {
		caretLen = 1
	}
	pad := make([]byte, len(gutter)+4+col-1) // " " + gutter + " | " precede lineText
	for i := range pad {
		pad[i] = ' '
	}
	carets := make([]byte, caretLen)
	for i := range carets {
		carets[i] = '^'
	}
	out += string(pad) + string(carets)
	if l.Message != "" {
		out += " " + l.Message
	}
	return out + "\n"
}

// lineCol converts a byte offset to a 1-based line and column, scanning
// the source once; diagnostics render rarely enough that this need not be
// a precomputed table.
func lineCol(src string, offset int) (line, col int) {
	line, col = 1, 1
	for i := 0; i < offset && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return
}

func lineAt(src string, n int) string {
	line := 1
	start := 0
	for i := 0; i < len(src); i++ {
		if line == n {
			start = i
			break
		}
		if src[i] == '\n' {
			line++
		}
	}
	end := start
	for end < len(src) && src[end] != '\n' {
		end++
	}
	return src[start:end]
}
