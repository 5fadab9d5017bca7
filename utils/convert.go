package utils

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ToFloat coerces a decoded JSON value to float64. The AI collaborator
// sometimes returns numbers as strings; anything unparseable becomes 0 rather
// than an error, matching the resolver's leniency policy.
func ToFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// TitleCase upper-cases the first rune of every space-separated word.
func TitleCase(s string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
