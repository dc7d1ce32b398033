package directive

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FindBestMatch returns the candidate closest to name by case-insensitive
// Levenshtein distance, for use in "unknown rule 'foo-bar', did you mean
// 'foobar'?" diagnostics when a directive names a rule that doesn't exist.
// Returns "" if candidates is empty or the closest candidate is more than a
// third of name's length plus one edits away.
//
// The distance is fuzzy.LevenshteinDistance; ties keep the earliest
// candidate.
func FindBestMatch(name string, candidates []string) string {
	best, bestDist := "", -1
	for _, c := range candidates {
		d := fuzzy.LevenshteinDistance(strings.ToLower(name), strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > len(name)/3+1 {
		return ""
	}
	return best
}
