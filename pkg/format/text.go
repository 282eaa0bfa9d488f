package format

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Truncate shortens s to at most limit runes, cutting at a word boundary
// when one exists and appending an ellipsis. Strings within the limit are
// returned unchanged.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	runes := []rune(s)
	cut := runes[:limit]

	// Prefer breaking at the last space inside the window.
	if idx := lastSpace(cut); idx > 0 {
		cut = cut[:idx]
	}

	return strings.TrimRight(string(cut), " ") + "…"
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if unicode.IsSpace(runes[i]) {
			return i
		}
	}
	return -1
}

// Capitalize uppercases the first letter of s, leaving the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// TitleCase capitalizes the first letter of every whitespace-separated word
// and lowercases the remainder of each word.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = Capitalize(strings.ToLower(w))
	}
	return strings.Join(words, " ")
}
