package models

import (
	"fmt"
	"strings"
)

// Status is the lifecycle label of a guidance event.
type Status int

const (
	// StatusLegacy covers empty or retired labels found in older rows.
	StatusLegacy Status = iota
	StatusDraft
	StatusOpen
	StatusFull
	StatusCompleted
	StatusCancelled
)

var statusLabels = map[Status]string{
	StatusLegacy:    "",
	StatusDraft:     "ร่าง",
	StatusOpen:      "เปิดรับสมัคร",
	StatusFull:      "เต็มแล้ว",
	StatusCompleted: "เสร็จสิ้น",
	StatusCancelled: "ยกเลิก",
}

// Label returns the stored Thai label; legacy status has none.
func (s Status) Label() string { return statusLabels[s] }

// Statuses lists every status variant.
func Statuses() []Status {
	return []Status{StatusLegacy, StatusDraft, StatusOpen, StatusFull, StatusCompleted, StatusCancelled}
}

// ParseStatus maps a stored label to its variant. Unknown labels are legacy
// values and resolve to StatusLegacy together with ok=false.
func ParseStatus(label string) (Status, bool) {
	label = trimmed(label)
	for _, s := range Statuses() {
		if s != StatusLegacy && s.Label() == label {
			return s, true
		}
	}
	return StatusLegacy, label == ""
}

// Category is the kind of guidance activity.
type Category int

const (
	// CategoryOther covers labels outside the current catalogue.
	CategoryOther Category = iota
	CategoryOnsite
	CategoryOnline
	CategoryCampusVisit
	CategoryExhibition
)

var categoryLabels = map[Category]string{
	CategoryOther:       "อื่น ๆ",
	CategoryOnsite:      "แนะแนวที่โรงเรียน",
	CategoryOnline:      "แนะแนวออนไลน์",
	CategoryCampusVisit: "เยี่ยมชมมหาวิทยาลัย",
	CategoryExhibition:  "ออกบูธนิทรรศการ",
}

func (c Category) Label() string { return categoryLabels[c] }

func Categories() []Category {
	return []Category{CategoryOther, CategoryOnsite, CategoryOnline, CategoryCampusVisit, CategoryExhibition}
}

// ParseCategory maps a stored label to its variant; unknown labels give
// CategoryOther and ok=false.
func ParseCategory(label string) (Category, bool) {
	label = trimmed(label)
	for _, c := range Categories() {
		if c != CategoryOther && c.Label() == label {
			return c, true
		}
	}
	return CategoryOther, false
}

// ReportType selects a date-range report flavor.
type ReportType string

const (
	ReportActivity ReportType = "activity"
	ReportTeacher  ReportType = "teacher"
	ReportStudent  ReportType = "student"
)

// ParseReportType rejects anything outside the fixed set.
func ParseReportType(raw string) (ReportType, error) {
	switch rt := ReportType(strings.ToLower(trimmed(raw))); rt {
	case ReportActivity, ReportTeacher, ReportStudent:
		return rt, nil
	default:
		return "", fmt.Errorf("unknown report type %q", raw)
	}
}

// Title is the Thai heading printed on the batch report.
func (t ReportType) Title() string {
	switch t {
	case ReportActivity:
		return "รายงานสรุปกิจกรรมแนะแนว"
	case ReportTeacher:
		return "รายงานรายชื่อครูผู้เข้าร่วม"
	case ReportStudent:
		return "รายงานรายชื่อนักเรียนผู้เข้าร่วม"
	default:
		return "รายงาน"
	}
}

func trimmed(s string) string { return strings.TrimSpace(s) }
