package autofix

import (
	"testing"
)

func TestApplyRejectsOverlappingIndelsFirstWins(t *testing.T) {
	src := "abcdef"
	indels := []Indel{
		{Start: 1, End: 3, Text: "X", Rule: "a"},
		{Start: 2, End: 4, Text: "Y", Rule: "b"}, // overlaps the first, dropped
		{Start: 4, End: 5, Text: "Z", Rule: "c"},
	}
	got, accepted := Apply(src, indels)
	want := "aXdZf"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if len(accepted) != 2 {
		t.Fatalf("expected 2 accepted indels, got %d", len(accepted))
	}
}

func TestApplyPureInsertion(t *testing.T) {
	got, _ := Apply("ac", []Indel{{Start: 1, End: 1, Text: "b", Rule: "r"}})
	if got != "abc" {
		t.Fatalf("got %q, want %q", got, "abc")
	}
}

func TestLoopConvergesOnIfDoubleNegation(t *testing.T) {
	src := "if (!!foo) {}"
	calls := 0
	got, err := Loop(src, false, func(cur string) []Indel {
		calls++
		if cur == "if (!!foo) {}" {
			return []Indel{{Start: 4, End: 9, Text: "foo", Rule: "no-extra-boolean-cast"}}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "if (foo) {}" {
		t.Fatalf("got %q, want %q", got, "if (foo) {}")
	}
	if calls != 2 {
		t.Fatalf("expected a second lint pass to confirm no further fixes, got %d calls", calls)
	}
}

func TestLoopSkipsDirtyFiles(t *testing.T) {
	src := "if (!!foo {}" // malformed, would be marked dirty by the caller
	got, err := Loop(src, true, func(string) []Indel {
		t.Fatalf("lintAndFix must not be called when dirty is true")
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != src {
		t.Fatalf("expected source unchanged, got %q", got)
	}
}

func TestLoopReportsNotConverged(t *testing.T) {
	toggle := false
	_, err := Loop("ab", false, func(cur string) []Indel {
		toggle = !toggle
		if toggle {
			return []Indel{{Start: 0, End: 1, Text: "b", Rule: "flip"}}
		}
		return []Indel{{Start: 0, End: 1, Text: "a", Rule: "flip"}}
	})
	if err == nil {
		t.Fatalf("expected ErrNotConverged from a rule pair that oscillates forever")
	}
	if _, ok := err.(*ErrNotConverged); !ok {
		t.Fatalf("expected *ErrNotConverged, got %T", err)
	}
}
