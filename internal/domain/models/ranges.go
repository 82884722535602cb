package models

// ActivityRangeRow is one event inside a date range with its student count.
type ActivityRangeRow struct {
	GuidanceID   int64
	Date         string
	SchoolName   string
	StudentCount int
}

// TeacherSchoolRow is one distinct (teacher, school) pairing inside a range.
type TeacherSchoolRow struct {
	TeacherID    int64
	TeacherName  string
	TeacherPhone string
	SchoolName   string
}

// StudentRangeRow is a booking inside a range, carrying its student slots
// plus the event date and school name used to annotate each student.
type StudentRangeRow struct {
	GuidanceID int64
	Date       string
	SchoolName string
	Booking    BookingRow
}

// SummaryCounts backs the action=summary endpoint.
type SummaryCounts struct {
	Guidances       int `json:"guidances"`
	Schools         int `json:"schools"`
	ApprovedSchools int `json:"approvedSchools"`
	Bookings        int `json:"bookings"`
	Teachers        int `json:"teachers"`
}
