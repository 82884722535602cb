package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestRangeActivities(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("GROUP BY g.guidance_id").WithArgs("2024-06-01", "2024-06-30").
		WillReturnRows(sqlmock.NewRows([]string{"guidance_id", "guidance_date", "school_name", "students"}).
			AddRow(42, "2024-06-01", "โรงเรียนบ้านสวน", "6").
			AddRow(43, "2024-06-15", "", "0"))

	got, err := RangeReportRepository{DB: db}.Activities(context.Background(), "2024-06-01", "2024-06-30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].StudentCount != 6 || got[1].SchoolName != "" {
		t.Fatalf("unexpected rows: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRangeTeacherSchoolsUsesDistinct(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT DISTINCT.*ORDER BY school_name, teacher_name`).WithArgs("2024-06-01", "2024-06-30").
		WillReturnRows(sqlmock.NewRows([]string{"teacher_id", "teacher_name", "teacher_phone", "school_name"}).
			AddRow(7, "สมชาย ใจดี", "0811111111", "โรงเรียนก").
			AddRow(9, "สมหญิง รักเรียน", "0822222222", "โรงเรียนข"))

	got, err := RangeReportRepository{DB: db}.TeacherSchools(context.Background(), "2024-06-01", "2024-06-30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[1].TeacherID != 9 {
		t.Fatalf("unexpected rows: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRangeStudents(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := append([]string{"guidance_id", "guidance_date", "school_name"}, bookingCols...)
	mock.ExpectQuery("ORDER BY g.guidance_date, g.guidance_id, b.booking_id").WithArgs("2024-06-01", "2024-06-30").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(42, "2024-06-01", "โรงเรียนก", 1, 42, 7, "สมชาย ใจดี", "", "", "", "S1", "เอ", "S2", "บี"))

	got, err := RangeReportRepository{DB: db}.Students(context.Background(), "2024-06-01", "2024-06-30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].SchoolName != "โรงเรียนก" || got[0].Booking.Student2Name != "บี" {
		t.Fatalf("unexpected rows: %+v", got)
	}
}
