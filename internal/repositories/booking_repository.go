package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	intconfig "guidance-portal/internal/config"
	"guidance-portal/internal/domain/models"
)

var errNoDB = errors.New("database not connected")

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// bookingColumns selects a booking joined with its teacher, in the order
// bookingDest expects. Requires aliases b (booking) and t (teacher).
const bookingColumns = `
		b.booking_id,
		b.guidance_id,
		b.teacher_id,
		TRIM(CONCAT(COALESCE(t.first_name, ''), ' ', COALESCE(t.last_name, ''))),
		COALESCE(t.phone, ''),
		COALESCE(b.pickup_point, ''),
		COALESCE(b.contact_phone, ''),
		COALESCE(b.student_id_1, ''),
		COALESCE(b.student_name_1, ''),
		COALESCE(b.student_id_2, ''),
		COALESCE(b.student_name_2, '')`

func bookingDest(b *models.BookingRow) []any {
	return []any{
		&b.ID,
		&b.GuidanceID,
		&b.TeacherID,
		&b.TeacherName,
		&b.TeacherPhone,
		&b.PickupPoint,
		&b.ContactPhone,
		&b.Student1ID,
		&b.Student1Name,
		&b.Student2ID,
		&b.Student2Name,
	}
}

// ListForGuidance returns every booking of a guidance event in booking order.
func (r BookingRepository) ListForGuidance(ctx context.Context, guidanceID int64) ([]models.BookingRow, error) {
	db := r.db()
	if db == nil {
		return nil, errNoDB
	}

	rows, err := db.QueryContext(ctx, `
		SELECT`+bookingColumns+`
		FROM booking b
		LEFT JOIN teacher t ON t.teacher_id = b.teacher_id
		WHERE b.guidance_id = ?
		ORDER BY b.booking_id
	`, guidanceID)
	if err != nil {
		return nil, fmt.Errorf("query bookings of guidance %d: %w", guidanceID, err)
	}
	defer rows.Close()

	out := []models.BookingRow{}
	for rows.Next() {
		var b models.BookingRow
		if err := rows.Scan(bookingDest(&b)...); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
