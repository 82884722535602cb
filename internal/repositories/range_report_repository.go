package repositories

import (
	"context"
	"database/sql"
	"fmt"

	intconfig "guidance-portal/internal/config"
	"guidance-portal/internal/domain/models"
)

// RangeReportRepository serves the date-range batch reports. Dates are
// YYYY-MM-DD and both bounds are inclusive.
type RangeReportRepository struct {
	DB *sql.DB
}

func (r RangeReportRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// filledSlot counts 1 when both id and name of a student slot are present.
const filledSlot = `(COALESCE(b.student_id_%[1]d, '') <> '' AND COALESCE(b.student_name_%[1]d, '') <> '')`

var activitiesQuery = fmt.Sprintf(`
	SELECT
		g.guidance_id,
		COALESCE(DATE_FORMAT(g.guidance_date, '%%Y-%%m-%%d'), ''),
		COALESCE(s.school_name, ''),
		COALESCE(SUM(%s + %s), 0)
	FROM guidance g
	LEFT JOIN school s ON s.school_id = g.school_id
	LEFT JOIN booking b ON b.guidance_id = g.guidance_id
	WHERE g.guidance_date BETWEEN ? AND ?
	GROUP BY g.guidance_id, g.guidance_date, s.school_name
	ORDER BY g.guidance_date, g.guidance_id
`, fmt.Sprintf(filledSlot, 1), fmt.Sprintf(filledSlot, 2))

// Activities returns one row per event in range with its student count.
func (r RangeReportRepository) Activities(ctx context.Context, start, end string) ([]models.ActivityRangeRow, error) {
	db := r.db()
	if db == nil {
		return nil, errNoDB
	}
	rows, err := db.QueryContext(ctx, activitiesQuery, start, end)
	if err != nil {
		return nil, fmt.Errorf("query activities %s..%s: %w", start, end, err)
	}
	defer rows.Close()

	out := []models.ActivityRangeRow{}
	for rows.Next() {
		var a models.ActivityRangeRow
		if err := rows.Scan(&a.GuidanceID, &a.Date, &a.SchoolName, &a.StudentCount); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// TeacherSchools returns the distinct (teacher, school) pairs booked in range.
func (r RangeReportRepository) TeacherSchools(ctx context.Context, start, end string) ([]models.TeacherSchoolRow, error) {
	db := r.db()
	if db == nil {
		return nil, errNoDB
	}
	rows, err := db.QueryContext(ctx, `
		SELECT DISTINCT
			t.teacher_id,
			TRIM(CONCAT(COALESCE(t.first_name, ''), ' ', COALESCE(t.last_name, ''))) AS teacher_name,
			COALESCE(t.phone, '') AS teacher_phone,
			COALESCE(s.school_name, '') AS school_name
		FROM booking b
		JOIN guidance g ON g.guidance_id = b.guidance_id
		JOIN teacher t ON t.teacher_id = b.teacher_id
		LEFT JOIN school s ON s.school_id = g.school_id
		WHERE g.guidance_date BETWEEN ? AND ?
		ORDER BY school_name, teacher_name
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("query teachers %s..%s: %w", start, end, err)
	}
	defer rows.Close()

	out := []models.TeacherSchoolRow{}
	for rows.Next() {
		var t models.TeacherSchoolRow
		if err := rows.Scan(&t.TeacherID, &t.TeacherName, &t.TeacherPhone, &t.SchoolName); err != nil {
			return nil, fmt.Errorf("scan teacher: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Students returns every booking in range with its event date and school;
// the caller flattens the student slots.
func (r RangeReportRepository) Students(ctx context.Context, start, end string) ([]models.StudentRangeRow, error) {
	db := r.db()
	if db == nil {
		return nil, errNoDB
	}
	rows, err := db.QueryContext(ctx, `
		SELECT
			g.guidance_id,
			COALESCE(DATE_FORMAT(g.guidance_date, '%Y-%m-%d'), ''),
			COALESCE(s.school_name, ''),`+bookingColumns+`
		FROM booking b
		JOIN guidance g ON g.guidance_id = b.guidance_id
		LEFT JOIN teacher t ON t.teacher_id = b.teacher_id
		LEFT JOIN school s ON s.school_id = g.school_id
		WHERE g.guidance_date BETWEEN ? AND ?
		ORDER BY g.guidance_date, g.guidance_id, b.booking_id
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("query students %s..%s: %w", start, end, err)
	}
	defer rows.Close()

	out := []models.StudentRangeRow{}
	for rows.Next() {
		var s models.StudentRangeRow
		dest := append([]any{&s.GuidanceID, &s.Date, &s.SchoolName}, bookingDest(&s.Booking)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan student booking: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
