package linter

import (
	"encoding/json"

	"github.com/jslint-dev/jslint/diagnostic"
)

// RuleConfig is one rule's resolved configuration: its severity level
// (Off disables it entirely) and any rule-specific options, passed through
// verbatim as raw JSON the rule itself decodes.
type RuleConfig struct {
	Level   diagnostic.Severity
	Off     bool
	Options json.RawMessage
}

// Config is the fully resolved rule configuration for a lint run — what a
// config file loader would produce; loading/merging the file itself is out
// of scope (spec.md §1).
type Config struct {
	Rules map[string]RuleConfig

	// DirectivePrefix overrides directive.DefaultPrefix when non-empty.
	DirectivePrefix string

	// Jobs bounds how many files are linted concurrently; 0 means
	// "let the runner pick a default" (GOMAXPROCS-sized).
	Jobs int
}

// DefaultConfig returns a Config with every rule in store enabled at Error
// severity — the CLI's hardcoded default rule set (spec.md §6).
func DefaultConfig(ruleNames []string) Config {
	rules := make(map[string]RuleConfig, len(ruleNames))
	for _, name := range ruleNames {
		rules[name] = RuleConfig{Level: diagnostic.Error}
	}
	return Config{Rules: rules}
}
