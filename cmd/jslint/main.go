// Command jslint is a thin CLI front end over package linter: it resolves
// file globs, builds a hardcoded default rule configuration, runs the
// linter, optionally applies autofix, and prints diagnostics in short or
// long form (spec.md §6).
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jslint-dev/jslint/autofix"
	"github.com/jslint-dev/jslint/diagnostic"
	"github.com/jslint-dev/jslint/linter"
	"github.com/jslint-dev/jslint/rule"
	"github.com/jslint-dev/jslint/rules"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var (
		verbose bool
		fix     bool
		dirty   bool
		format  string
		jobs    int
	)

	exitCode := 0

	cmd := &cobra.Command{
		Use:   "jslint [globs...]",
		Short: "Lint ECMAScript files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.NewNop()
			if verbose {
				l, err := zap.NewDevelopment()
				if err == nil {
					logger = l
				}
			}
			defer logger.Sync()

			paths, err := expandGlobs(args)
			if err != nil {
				return err
			}

			store := defaultStore()
			fs := linter.NewFileSet()
			for _, p := range paths {
				src, err := os.ReadFile(p)
				if err != nil {
					logger.Warn("skipping unreadable file", zap.String("path", p), zap.Error(err))
					continue
				}
				fs.Add(filepath.Base(p), p, string(src))
			}

			cfg := linter.DefaultConfig(store.Names())
			cfg.Jobs = jobs

			if fix {
				// Lint the fixed text, not the text read before fixing.
				fixedFS := linter.NewFileSet()
				for _, f := range fs.Files() {
					src := f.Source
					fixed, ferr := applyFix(store, cfg, f)
					if ferr != nil {
						logger.Warn("autofix did not converge", zap.String("path", f.Path), zap.Error(ferr))
					}
					if fixed != f.Source {
						if err := writeFixed(f.Path, fixed, !dirty); err != nil {
							logger.Warn("failed to write fixed file", zap.String("path", f.Path), zap.Error(err))
						} else {
							src = fixed
						}
					}
					fixedFS.Add(f.Name, f.Path, src)
				}
				fs = fixedFS
			}

			runner := linter.NewRunner(store, cfg)
			runner.Logger = logger
			result := runner.Run(context.Background(), fs)

			for _, fr := range result.Files {
				for _, d := range fr.Diagnostics {
					if format == "long" {
						fmt.Println(diagnostic.Long(fs, d))
					} else {
						fmt.Println(diagnostic.Short(fs, d))
					}
				}
			}

			switch result.Outcome {
			case linter.OutcomeDiagnostics:
				exitCode = 1
			case linter.OutcomeInternalError:
				exitCode = 2
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable development logging")
	cmd.Flags().BoolVar(&fix, "fix", false, "apply safe autofixes before linting")
	cmd.Flags().BoolVar(&dirty, "dirty", false, "skip OS file locking on autofix write-back")
	cmd.Flags().StringVar(&format, "format", "short", "diagnostic format: short|long")
	cmd.Flags().IntVar(&jobs, "jobs", 0, "max files linted concurrently (0 = GOMAXPROCS)")
	cmd.Flags().Bool("no-config", false, "ignore any config file (always true: config-file loading is out of scope)")

	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	return exitCode
}

func defaultStore() *rule.Store {
	return rule.NewStore(
		rules.NoExtraBooleanCast{},
		rules.NoCondAssign{},
		rules.NoDuplicateCase{},
	)
}

func expandGlobs(patterns []string) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	for _, pat := range patterns {
		matches, err := filepath.Glob(pat)
		if err != nil {
			return nil, fmt.Errorf("invalid glob %q: %w", pat, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out, nil
}

// applyFix runs the autofix convergence loop for one file using the
// currently configured rule set, reusing linter.Runner.Run on a throwaway
// single-file FileSet at each iteration.
func applyFix(store *rule.Store, cfg linter.Config, f *linter.File) (string, error) {
	runner := linter.NewRunner(store, cfg)
	return autofix.Loop(f.Source, f.Dirty(), func(src string) []autofix.Indel {
		tmp := linter.NewFileSet()
		tmp.Add(f.Name, f.Path, src)
		result := runner.Run(context.Background(), tmp)
		var indels []autofix.Indel
		for _, fr := range result.Files {
			indels = append(indels, fr.Indels...)
		}
		return indels
	})
}

func writeFixed(path, content string, useLock bool) error {
	if !useLock {
		return os.WriteFile(path, []byte(content), 0o644)
	}
	return writeFixedLocked(path, content)
}
