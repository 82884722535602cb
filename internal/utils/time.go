package utils

import (
	"fmt"
	"strings"
	"time"

	"guidance-portal/internal/domain"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04:05"

	buddhistEraOffset = 543
)

var thaiMonths = [...]string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

var dateLayouts = []string{layoutDate, layoutDateTime, time.RFC3339, time.RFC3339Nano, "2006-01-02T15:04:05"}

var clockLayouts = []string{"15:04:05", "15:04", layoutDateTime, time.RFC3339, "2006-01-02T15:04:05"}

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// ThaiLongDate renders t as "1 มิถุนายน 2567".
func ThaiLongDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), thaiMonths[t.Month()-1], t.Year()+buddhistEraOffset)
}

// FormatThaiDate renders a stored date string in Thai long form.
// Unparseable input yields the placeholder; it never fails.
func FormatThaiDate(raw string) string {
	t, ok := parseAny(raw, dateLayouts)
	if !ok {
		return domain.Placeholder
	}
	return ThaiLongDate(t)
}

// FormatThaiTime renders a stored time as "09:30 น.".
func FormatThaiTime(raw string) string {
	t, ok := parseAny(raw, clockLayouts)
	if !ok {
		return domain.Placeholder
	}
	return t.Format("15:04") + " น."
}

// FormatThaiTimeRange renders "09:00 - 12:00 น.", with the placeholder for a
// side that cannot be parsed.
func FormatThaiTimeRange(start, end string) string {
	s, okS := parseAny(start, clockLayouts)
	e, okE := parseAny(end, clockLayouts)
	switch {
	case okS && okE:
		return s.Format("15:04") + " - " + e.Format("15:04") + " น."
	case okS:
		return s.Format("15:04") + " น. - " + domain.Placeholder
	case okE:
		return domain.Placeholder + " - " + e.Format("15:04") + " น."
	default:
		return domain.Placeholder
	}
}

func parseAny(raw string, layouts []string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
