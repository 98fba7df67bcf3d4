// Package titlecase normalizes free-form song and film titles: whitespace is
// collapsed and each word is title-cased, except for a fixed list of Hindi
// and English joining words that stay lowercase unless they lead the title.
package titlecase

import (
	"strings"
	"unicode"
)

// Joining words kept lowercase anywhere but the first position.
var lowercaseWords = map[string]bool{
	"ka": true, "ki": true, "ke": true, "se": true,
	"aur": true, "ya": true,
	"the": true, "of": true, "in": true, "a": true, "an": true,
}

// Normalize collapses all whitespace runs to single spaces and title-cases
// the result. Empty and all-whitespace input normalizes to "". Normalize is
// idempotent.
func Normalize(title string) string {
	words := strings.Fields(title)
	if len(words) == 0 {
		return ""
	}

	out := make([]string, len(words))
	for i, word := range words {
		lower := strings.ToLower(word)
		if i > 0 && lowercaseWords[lower] {
			out[i] = lower
			continue
		}
		runes := []rune(lower)
		runes[0] = unicode.ToUpper(runes[0])
		out[i] = string(runes)
	}
	return strings.Join(out, " ")
}
