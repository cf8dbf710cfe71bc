package logutil

import (
	"strings"
	"unicode/utf8"
)

// TruncateForLog truncates a string to at most maxLen bytes, appending "..."
// when cut. The cut never splits a rune and invalid UTF-8 is replaced, so the
// result is always valid UTF-8.
func TruncateForLog(s string, maxLen int) string {
	s = strings.ToValidUTF8(s, "�")
	if maxLen <= 0 {
		return "..."
	}
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
