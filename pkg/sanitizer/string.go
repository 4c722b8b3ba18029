package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Text is the pipeline applied to every free-text submission field:
// control characters are dropped, the value is NFC-normalized, and
// surrounding whitespace is trimmed.
var Text = Compose(RemoveControlChars, NormalizeUnicode, Trim)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeUnicode converts s to Unicode normalization form C, so that a
// precomposed "é" and "e" + combining accent are stored and counted alike.
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}

// RemoveControlChars removes control characters from a string,
// keeping only printable characters and common whitespace.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}
