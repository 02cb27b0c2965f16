package util

import (
	"strings"
	"unicode"
)

// SanitizeLabel strips control and non-printing characters from a reference
// line so it is safe to use as an axis tick label.
func SanitizeLabel(s string) string {
	if s == "" {
		return s
	}
	r := make([]rune, 0, len(s))
	for _, ch := range s {
		if ch < 0x20 || !unicode.IsPrint(ch) {
			continue
		}
		r = append(r, ch)
	}
	return strings.TrimSpace(string(r))
}

// DisplayLabel sanitizes and truncates a label to maxRunes for the y axis,
// where long reference strings would otherwise dominate the figure width.
func DisplayLabel(s string, maxRunes int) string {
	if maxRunes <= 0 {
		maxRunes = 80
	}
	s = SanitizeLabel(s)
	runes := []rune(s)
	if len(runes) > maxRunes {
		return strings.TrimSpace(string(runes[:maxRunes])) + "..."
	}
	return s
}
