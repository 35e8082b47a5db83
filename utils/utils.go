package utils

import "unicode/utf8"

func AssertInvariant(condition bool, message string) {
	if !condition {
		panic("invariant violated - " + message)
	}
}

// TruncateRunes shortens s to at most limit runes, appending an ellipsis when
// anything was cut. Slack rejects block text longer than 3000 characters.
func TruncateRunes(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	if limit == 1 {
		return "…"
	}

	runes := []rune(s)
	return string(runes[:limit-1]) + "…"
}
