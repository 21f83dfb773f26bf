// Package match implements the fuzzy word-set comparison used to give
// immediate feedback on quiz answers. The verdict is display-only: the
// scheduler is driven by the user's self-rating, never by the matcher.
package match

import (
	"regexp"
	"strings"
)

// wordPattern extracts alphanumeric words; punctuation other than
// commas acts as a separator and is otherwise discarded.
var wordPattern = regexp.MustCompile(`[a-zA-Z0-9]+`)

// Acceptance thresholds for partial answers.
const (
	// subsetCoverage is the minimum share of the correct answer's words
	// a user answer must contain when it is a strict subset.
	subsetCoverage = 0.7

	// overlapCoverage is the minimum word-overlap share accepted even
	// when neither answer is a subset of the other.
	overlapCoverage = 0.8
)

// normalize lowercases and strips commas, so "Jinx, the Loose Cannon"
// and "jinx the loose cannon" tokenize identically.
func normalize(text string) string {
	return strings.ToLower(strings.ReplaceAll(text, ",", ""))
}

// words tokenizes a normalized string into its set of alphanumeric words.
func words(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range wordPattern.FindAllString(text, -1) {
		set[w] = struct{}{}
	}
	return set
}

// isSubset reports whether every word of a appears in b.
func isSubset(a, b map[string]struct{}) bool {
	for w := range a {
		if _, ok := b[w]; !ok {
			return false
		}
	}
	return true
}

// IsMatch reports whether a user's answer is close enough to the
// correct card name to count as right for feedback purposes.
//
// After normalization and word-set tokenization, the answer is accepted
// when any of the following holds:
//   - the user supplied at least every word of the correct name,
//     possibly with extras;
//   - the user's words are all part of the correct name and cover at
//     least 70% of it (a sufficiently complete partial answer);
//   - at least 80% of the correct name's words appear in the answer,
//     even if neither side is a subset of the other.
func IsMatch(userAnswer, correctAnswer string) bool {
	userWords := words(normalize(userAnswer))
	correctWords := words(normalize(correctAnswer))

	if len(correctWords) == 0 {
		return false
	}

	if isSubset(correctWords, userWords) {
		return true
	}

	if isSubset(userWords, correctWords) &&
		float64(len(userWords)) >= subsetCoverage*float64(len(correctWords)) {
		return true
	}

	overlap := 0
	for w := range correctWords {
		if _, ok := userWords[w]; ok {
			overlap++
		}
	}
	return float64(overlap)/float64(len(correctWords)) >= overlapCoverage
}
