package explorer

import (
	"sort"
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// minScore is the cutoff below which a candidate is considered
// unrelated to the query.
const minScore = 40

// Substitutions cost two so the ratio degrades the same way for a
// replaced character as for a deleted-plus-inserted pair.
var ratioOptions = levenshtein.Options{
	InsCost: 1,
	DelCost: 1,
	SubCost: 2,
	Matches: levenshtein.IdenticalRunes,
}

// Score rates how closely name resembles query, case-insensitively, on
// a 0–100 scale.
func Score(query, name string) int {
	r := levenshtein.RatioForStrings(
		[]rune(strings.ToLower(query)),
		[]rune(strings.ToLower(name)),
		ratioOptions,
	)
	return int(r * 100)
}

// Filter returns the entries whose names score above the cutoff,
// best match first. Equal scores keep their original list order. An
// empty query returns items as-is, untouched and unsorted.
func Filter(query string, items []Entry) []Entry {
	if query == "" {
		return items
	}

	type match struct {
		score int
		entry Entry
	}
	var matches []match
	for _, item := range items {
		if s := Score(query, item.Name); s > minScore {
			matches = append(matches, match{score: s, entry: item})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	out := make([]Entry, len(matches))
	for i, m := range matches {
		out[i] = m.entry
	}
	return out
}
