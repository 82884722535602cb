package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var bookingCols = []string{
	"booking_id", "guidance_id", "teacher_id", "teacher_name", "teacher_phone",
	"pickup_point", "contact_phone", "student_id_1", "student_name_1", "student_id_2", "student_name_2",
}

func TestBookingListForGuidance(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM booking b\\s+LEFT JOIN teacher t").WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(bookingCols).
			AddRow(1, 42, 7, "สมชาย ใจดี", "0811111111", "หน้าโรงเรียน", "0811111111", "S1", "เด็กชายเอ", "S2", "เด็กหญิงบี").
			AddRow(2, 42, 9, "สมหญิง รักเรียน", "0822222222", "ตลาด", "", "S3", "เด็กชายซี", "", ""))

	got, err := BookingRepository{DB: db}.ListForGuidance(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d bookings, want 2", len(got))
	}
	if got[0].TeacherID != 7 || got[1].TeacherID != 9 {
		t.Fatalf("booking order not preserved: %+v", got)
	}
	if got[1].Student2ID != "" || got[0].Student2Name != "เด็กหญิงบี" {
		t.Fatalf("student slots scanned wrong: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingListForGuidanceQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	boom := errors.New("connection reset")
	mock.ExpectQuery("FROM booking b").WillReturnError(boom)

	if _, err := (BookingRepository{DB: db}).ListForGuidance(context.Background(), 1); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped query error, got %v", err)
	}
}
