package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatCount groups digits the Thai way, e.g. 1,234.
func FormatCount(n int) string {
	return message.NewPrinter(language.Thai).Sprintf("%d", n)
}
