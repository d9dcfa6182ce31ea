package textutil

import "unicode/utf8"

// Trim cuts s to at most max bytes plus an ellipsis, never splitting a rune.
func Trim(s string, max int) string {
	if len(s) <= max {
		return s
	}

	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}
