// Package rank orders and filters a loaded corpus.
package rank

import (
	"cmp"
	"slices"
	"unicode/utf8"

	"github.com/raphaelgruber/wordrank/internal/corpus"
)

// ByFrequencyDesc sorts c in place, most frequent first. The sort is
// stable, so entries with equal frequency keep their load order; callers
// must not rely on more than the frequency grouping.
func ByFrequencyDesc(c corpus.Corpus) {
	slices.SortStableFunc(c, func(a, b corpus.Entry) int {
		return cmp.Compare(b.Frequency, a.Frequency)
	})
}

// LongerThan returns a predicate matching words of more than n characters.
// Length is counted in runes, not bytes.
func LongerThan(n int) func(corpus.Entry) bool {
	return func(e corpus.Entry) bool {
		return utf8.RuneCountInString(e.Word) > n
	}
}

// Top returns the first n entries of an already ranked corpus, or all of
// them when fewer exist.
func Top(c corpus.Corpus, n int) corpus.Corpus {
	if n < 0 {
		n = 0
	}
	return c[:min(n, len(c))]
}
