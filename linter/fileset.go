// Package linter is the external surface: given a FileSet and a Config, it
// parses each file, runs the configured rules over its CST in parallel,
// remaps severities, applies directive suppressions, and collects the fix
// indels the rules propose, per spec.md §5/§6. The autofix convergence
// loop itself is autofix.Loop, which callers drive.
package linter

import (
	"sync"

	"github.com/jslint-dev/jslint/internal/parser"
	"github.com/jslint-dev/jslint/internal/red"
	"github.com/jslint-dev/jslint/internal/syntax"
	"github.com/jslint-dev/jslint/internal/treebuilder"
)

// File is one source file under lint, identified by a stable ID assigned
// by FileSet.Add.
type File struct {
	ID     uint32
	Name   string
	Path   string
	Source string

	mu          sync.Mutex
	tree        *red.Node
	syntaxDiags []treebuilder.Diagnostic
	aborted     bool
}

// Tree lazily parses and builds the file's CST, caching the result; safe
// for concurrent use by multiple rule goroutines.
func (f *File) Tree() *red.Node {
	f.ensureParsed()
	return f.tree
}

// SyntaxDiagnostics returns the parser/lexer-level diagnostics collected
// while building the file's CST (empty if the file parsed cleanly).
func (f *File) SyntaxDiagnostics() []treebuilder.Diagnostic {
	f.ensureParsed()
	return f.syntaxDiags
}

// Dirty reports whether parsing this file hit the lookahead step cap or
// produced any syntax diagnostic — the autofix safety gate (spec.md §4.5) treats such a file as unsafe to
// rewrite.
func (f *File) Dirty() bool {
	f.ensureParsed()
	return f.aborted || len(f.syntaxDiags) > 0
}

func (f *File) ensureParsed() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tree != nil {
		return
	}
	res := parser.ParseScript(f.Source)
	root, _ := treebuilder.Build(res.Events, res.Raw, f.Source, syntax.SCRIPT)
	f.tree = root
	f.syntaxDiags = res.Diagnostics // lexer and parser diagnostics
	f.aborted = res.Aborted
}

// FileSet owns the stable ID → File mapping for one linter run and
// implements diagnostic.Files so formatters can resolve names/sources by
// ID without threading a map through every call site.
type FileSet struct {
	mu    sync.Mutex
	files []*File
}

// NewFileSet returns an empty file set.
func NewFileSet() *FileSet { return &FileSet{} }

// Add registers a file and returns it with a freshly assigned ID.
func (fs *FileSet) Add(name, path, source string) *File {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	f := &File{ID: uint32(len(fs.files)), Name: name, Path: path, Source: source}
	fs.files = append(fs.files, f)
	return f
}

// Get returns the file with the given ID.
func (fs *FileSet) Get(id uint32) *File {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if int(id) >= len(fs.files) {
		return nil
	}
	return fs.files[id]
}

// Files returns every registered file, in registration order.
func (fs *FileSet) Files() []*File {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	out := make([]*File, len(fs.files))
	copy(out, fs.files)
	return out
}

// Name implements diagnostic.Files.
func (fs *FileSet) Name(id uint32) string {
	if f := fs.Get(id); f != nil {
		return f.Name
	}
	return "<unknown>"
}

// Source implements diagnostic.Files.
func (fs *FileSet) Source(id uint32) string {
	if f := fs.Get(id); f != nil {
		return f.Source
	}
	return ""
}
