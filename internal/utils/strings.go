package utils

import (
	"strings"

	"guidance-portal/internal/domain"
)

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// OrPlaceholder returns the trimmed value or the "not specified" placeholder.
func OrPlaceholder(v string) string {
	v = NormalizeSpace(v)
	if v == "" {
		return domain.Placeholder
	}
	return v
}

// JoinNonEmpty joins the non-blank parts with sep.
func JoinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = NormalizeSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
