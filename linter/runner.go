package linter

import (
	"context"
	"runtime"
	"runtime/debug"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/jslint-dev/jslint/autofix"
	"github.com/jslint-dev/jslint/diagnostic"
	"github.com/jslint-dev/jslint/directive"
	"github.com/jslint-dev/jslint/internal/red"
	"github.com/jslint-dev/jslint/internal/syntax"
	"github.com/jslint-dev/jslint/rule"
)

// Outcome summarizes a lint run for exit-code purposes (spec.md §6: 0 =
// clean, 1 = diagnostics at or above Warning, 2 = a Bug-severity internal
// failure, e.g. a rule panic).
type Outcome int

const (
	OutcomeClean Outcome = iota
	OutcomeDiagnostics
	OutcomeInternalError
)

// FileResult is one file's final diagnostics, after directive suppression
// and severity remapping.
type FileResult struct {
	FileID      uint32
	Diagnostics []diagnostic.Diagnostic
	Indels      []autofix.Indel
}

// Result is a whole run's output.
type Result struct {
	Files   []FileResult
	Outcome Outcome
}

// Runner drives the rule store over a FileSet according to Config, with
// two-level bounded parallelism (spec.md §5): one errgroup task per file,
// gated by a semaphore sized to Config.Jobs, and within each file task one
// goroutine per configured rule via a second per-file errgroup.
type Runner struct {
	Store    *rule.Store
	Config   Config
	Logger   *zap.Logger
	Metrics  *Metrics // optional; nil disables all metrics recording
}

// NewRunner returns a Runner with a no-op logger; callers typically
// replace Logger with zap.NewProduction()/zap.NewDevelopment().
func NewRunner(store *rule.Store, cfg Config) *Runner {
	return &Runner{Store: store, Config: cfg, Logger: zap.NewNop()}
}

// Run lints every file in fs concurrently and returns the aggregated
// result. ctx cancellation stops scheduling new file tasks; in-flight
// tasks still finish to avoid leaving a file half-linted.
func (r *Runner) Run(ctx context.Context, fs *FileSet) Result {
	jobs := r.Config.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	sem := semaphore.NewWeighted(int64(jobs))

	files := fs.Files()
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			if err := sem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)
			start := time.Now()
			results[i] = r.lintFile(f)
			if r.Metrics != nil {
				r.Metrics.ObserveDuration(time.Since(start).Seconds())
				r.Metrics.RecordFile(results[i].Diagnostics)
			}
			return nil
		})
	}
	// The only error a task returns is a cancelled semaphore acquire; a file
	// whose task never ran keeps an empty FileResult.
	_ = g.Wait()

	outcome := OutcomeClean
	for _, fr := range results {
		for _, d := range fr.Diagnostics {
			if d.Severity == diagnostic.Bug && outcome < OutcomeInternalError {
				outcome = OutcomeInternalError
			} else if d.Severity >= diagnostic.Warning && outcome < OutcomeDiagnostics {
				outcome = OutcomeDiagnostics
			}
		}
	}
	return Result{Files: results, Outcome: outcome}
}

// lintFile runs every enabled rule over one file's CST, each in its own
// goroutine via a per-file errgroup, then merges and filters the results.
func (r *Runner) lintFile(f *File) FileResult {
	root := f.Tree()

	var active []rule.Rule
	for _, rl := range r.Store.All() {
		cfg, ok := r.Config.Rules[rl.Name()]
		if ok && cfg.Off {
			continue
		}
		if !ok {
			continue
		}
		active = append(active, rl)
	}

	perRule := make([][]diagnostic.Diagnostic, len(active))
	perRuleIndels := make([][]autofix.Indel, len(active))
	g := new(errgroup.Group)
	for i, rl := range active {
		i, rl := i, rl
		g.Go(func() (err error) {
			defer func() {
				if p := recover(); p != nil {
					r.Logger.Error("rule panicked", zap.String("rule", rl.Name()), zap.Stack("stack"))
					_ = debug.Stack()
					perRule[i] = []diagnostic.Diagnostic{{
						Severity: diagnostic.Bug,
						Code:     rl.Name(),
						Message:  "internal error: rule panicked during check",
						Primary:  diagnostic.Label{FileID: f.ID},
					}}
				}
			}()
			result := &rule.Result{}
			ctx := rule.NewCtx(f.ID, f.Source, r.Config.Rules[rl.Name()].Options, result)
			rl.CheckRoot(&ctx, root)
			red.Walk(root, func(n *red.Node) {
				rl.CheckNode(&ctx, n)
			}, func(t *red.Token) {
				rl.CheckToken(&ctx, t)
			})
			for i := range result.Diagnostics {
				result.Diagnostics[i].Code = rl.Name()
			}
			perRule[i] = result.Diagnostics
			perRuleIndels[i] = result.Indels
			return nil
		})
	}
	_ = g.Wait()

	var all []diagnostic.Diagnostic
	var indels []autofix.Indel
	for i, rl := range active {
		cfg := r.Config.Rules[rl.Name()]
		for _, d := range perRule[i] {
			if d.Severity != diagnostic.Bug {
				d.Severity = cfg.Level
			}
			all = append(all, d)
		}
		indels = append(indels, perRuleIndels[i]...)
	}

	directives := collectDirectives(root, r.Config.DirectivePrefix)
	all = suppress(all, directives)
	indels = suppressIndels(indels, directives)
	all = append(all, r.directiveDiagnostics(f.ID, directives)...)

	return FileResult{FileID: f.ID, Diagnostics: all, Indels: indels}
}

// directiveDiagnostics turns a file's parsed directives' own Issues
// (unknown commands, duplicate rule names) plus any rule name they cite
// that isn't registered in the store into diagnostics, per spec.md §7's
// "Directive errors": unknown command, unknown rule name (with a
// Levenshtein-nearest suggestion), duplicate rule in directive (warning).
// These bypass suppress/suppressIndels — a directive can't suppress a
// diagnostic about itself.
func (r *Runner) directiveDiagnostics(fileID uint32, directives []directive.Directive) []diagnostic.Diagnostic {
	known := make(map[string]bool)
	for _, rl := range r.Store.All() {
		known[rl.Name()] = true
	}
	names := make([]string, 0, len(known))
	for n := range known {
		names = append(names, n)
	}
	sort.Strings(names)

	var out []diagnostic.Diagnostic
	for _, d := range directives {
		for _, iss := range d.Issues {
			sev := diagnostic.Error
			if iss.Warning {
				sev = diagnostic.Warning
			}
			out = append(out, diagnostic.Diagnostic{
				Severity: sev,
				Code:     "directive",
				Message:  iss.Message,
				Primary:  diagnostic.Label{FileID: fileID, Offset: d.Offset},
			})
		}
		for _, rn := range d.Rules {
			if known[rn] {
				continue
			}
			msg := "unknown rule " + strconv.Quote(rn) + " in directive"
			var suggestions []string
			if best := directive.FindBestMatch(rn, names); best != "" {
				suggestion := "did you mean " + strconv.Quote(best) + "?"
				msg += "; " + suggestion
				suggestions = []string{suggestion}
			}
			out = append(out, diagnostic.Diagnostic{
				Severity:    diagnostic.Error,
				Code:        "directive",
				Message:     msg,
				Primary:     diagnostic.Label{FileID: fileID, Offset: d.Offset},
				Suggestions: suggestions,
			})
		}
	}
	return out
}

// collectDirectives walks every token in the tree in source order and
// parses any comment matching the directive grammar. A directive comment
// is file-wide (spec.md §6 "file top level") if no non-trivia token
// precedes it anywhere in the file; otherwise it is scoped to the text
// range of the node it leads as trivia (the node that immediately follows
// it in source order), per spec.md §3's IgnoreNode/IgnoreRules(rules,
// range) commands.
func collectDirectives(root *red.Node, prefix string) []directive.Directive {
	if prefix == "" {
		prefix = directive.DefaultPrefix
	}
	var out []directive.Directive
	sawCode := false
	red.Walk(root, nil, func(t *red.Token) {
		if !t.Kind().IsTrivia() {
			sawCode = true
			return
		}
		if t.Kind() != syntax.LINE_COMMENT && t.Kind() != syntax.BLOCK_COMMENT {
			return
		}
		body := stripCommentDelims(t.Text())
		d, ok := directive.ParseComment(prefix, body)
		if !ok {
			return
		}
		start, _ := t.Range()
		d.Offset = uint32(start)
		if sawCode {
			if p := t.Parent(); p != nil {
				rs, re := p.Range()
				d.Scoped = true
				d.RangeStart, d.RangeEnd = uint32(rs), uint32(re)
			}
		}
		out = append(out, d)
	})
	return out
}

func stripCommentDelims(text string) string {
	switch {
	case len(text) >= 2 && text[:2] == "//":
		return text[2:]
	case len(text) >= 4 && text[:2] == "/*" && text[len(text)-2:] == "*/":
		return text[2 : len(text)-2]
	default:
		return text
	}
}

// suppress drops every diagnostic covered by a directive: a file-wide
// directive suppresses its named rules (or all rules) anywhere, a
// node-scoped directive only within its covering range (spec.md §4.4
// "suppresses it if a directive covers the diagnostic's primary range").
func suppress(diags []diagnostic.Diagnostic, directives []directive.Directive) []diagnostic.Diagnostic {
	if len(directives) == 0 {
		return diags
	}
	var out []diagnostic.Diagnostic
	for _, d := range diags {
		suppressed := false
		for _, dir := range directives {
			if dir.Suppresses(d.Code, d.Primary.Offset) {
				suppressed = true
				break
			}
		}
		if !suppressed {
			out = append(out, d)
		}
	}
	return out
}

// suppressIndels applies the same directive scoping as suppress, so a
// suppressed rule never has its fix applied even though the diagnostic it
// would have attached to was dropped.
func suppressIndels(indels []autofix.Indel, directives []directive.Directive) []autofix.Indel {
	if len(directives) == 0 {
		return indels
	}
	var out []autofix.Indel
	for _, id := range indels {
		suppressed := false
		for _, dir := range directives {
			if dir.Suppresses(id.Rule, uint32(id.Start)) {
				suppressed = true
				break
			}
		}
		if !suppressed {
			out = append(out, id)
		}
	}
	return out
}
