// Package similarity grades how close a learner's attempt is to a target
// word, as a normalized edit-distance percentage. Used for pronunciation
// and typing practice feedback.
package similarity

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/agext/levenshtein"
)

// Score returns the similarity between a and b as an integer in [0, 100].
// Comparison is case-insensitive. Two empty strings score 100.
func Score(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	maxLen := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 100
	}

	dist := levenshtein.Distance(a, b, nil)
	return int(math.Round(float64(maxLen-dist) / float64(maxLen) * 100))
}
