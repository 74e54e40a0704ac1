// Package parsing turns extracted document text into Document records.
package parsing

import (
	"strings"
	"unicode"
)

// Normalize lowercases text and replaces every rune outside ASCII letters,
// digits, whitespace and ".,-+#" with a single space. Runs are not collapsed,
// so the output has the same number of runes as the lowercased input.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if isASCIIAlnum(r) || unicode.IsSpace(r) {
			return r
		}
		switch r {
		case '.', ',', '-', '+', '#':
			return r
		}
		return ' '
	}, strings.ToLower(raw))
}

// NormalizeStrict keeps only ASCII letters, digits and whitespace, mapping
// everything else to a space, and lowercases the result. It is applied to
// already-normalized text right before similarity tokenization.
func NormalizeStrict(text string) string {
	if text == "" {
		return ""
	}
	return strings.ToLower(strings.Map(func(r rune) rune {
		if isASCIIAlnum(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, text))
}

func isASCIIAlnum(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}
