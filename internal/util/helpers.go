package util

import "unicode/utf8"

// TruncateRunes shortens s to at most n runes without splitting one.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	rs := []rune(s)
	return string(rs[:n])
}

// Preview returns the first n runes of s followed by an ellipsis.
func Preview(s string, n int) string {
	return TruncateRunes(s, n) + "..."
}
