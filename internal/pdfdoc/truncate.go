package pdfdoc

import (
	"strings"
	"unicode"
)

// Ellipsis marks text shortened to fit a column.
const Ellipsis = "..."

// TruncateToWidth shortens text one rune at a time until text+Ellipsis fits
// maxWidth under measure. Text that already fits is returned unchanged; if
// not even the ellipsis fits the result is empty.
func TruncateToWidth(text string, maxWidth float64, measure func(string) float64) string {
	if measure(text) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := strings.TrimRightFunc(string(runes), unicode.IsSpace) + Ellipsis
		if measure(candidate) <= maxWidth {
			return candidate
		}
	}
	return ""
}
