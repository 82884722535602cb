package services

import (
	"fmt"
	"strconv"

	"guidance-portal/internal/domain/models"
	"guidance-portal/internal/utils"
)

// BatchReport is a date-range report reduced to one table.
type BatchReport struct {
	Type    models.ReportType
	Start   string // YYYY-MM-DD, inclusive
	End     string // YYYY-MM-DD, inclusive
	Headers []string
	Widths  []float64 // relative column ratios
	Rows    [][]string
}

func (b BatchReport) Filename() string {
	return fmt.Sprintf("%s_report_%s_to_%s.pdf", b.Type, b.Start, b.End)
}

func BuildActivityBatch(start, end string, rows []models.ActivityRangeRow) BatchReport {
	out := BatchReport{
		Type:    models.ReportActivity,
		Start:   start,
		End:     end,
		Headers: []string{"รหัสกิจกรรม", "วันที่", "โรงเรียน", "จำนวนนักเรียน"},
		Widths:  []float64{1.4, 2.4, 4.6, 1.6},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		out.Rows = append(out.Rows, []string{
			strconv.FormatInt(r.GuidanceID, 10),
			utils.FormatThaiDate(r.Date),
			utils.OrPlaceholder(r.SchoolName),
			utils.FormatCount(r.StudentCount),
		})
	}
	return out
}

// BuildTeacherBatch lists teacher/school pairs in the order given. The range
// query already orders them by school then teacher under the database
// collation, and Thai names must keep that order.
func BuildTeacherBatch(start, end string, rows []models.TeacherSchoolRow) BatchReport {

	out := BatchReport{
		Type:    models.ReportTeacher,
		Start:   start,
		End:     end,
		Headers: []string{"ลำดับ", "ชื่อ-นามสกุลครู", "เบอร์โทร", "โรงเรียน"},
		Widths:  []float64{0.8, 3.4, 2.2, 3.6},
		Rows:    make([][]string, 0, len(rows)),
	}
	for i, r := range rows {
		out.Rows = append(out.Rows, []string{
			strconv.Itoa(i + 1),
			utils.OrPlaceholder(r.TeacherName),
			utils.OrPlaceholder(r.TeacherPhone),
			utils.OrPlaceholder(r.SchoolName),
		})
	}
	return out
}

// BuildStudentBatch flattens the student slots of every booking in range,
// keeping the booking order.
func BuildStudentBatch(start, end string, rows []models.StudentRangeRow) BatchReport {
	out := BatchReport{
		Type:    models.ReportStudent,
		Start:   start,
		End:     end,
		Headers: []string{"ลำดับ", "รหัสนักเรียน", "ชื่อ-นามสกุล", "วันที่กิจกรรม", "โรงเรียน"},
		Widths:  []float64{0.8, 1.8, 3.0, 2.0, 3.0},
		Rows:    [][]string{},
	}
	for _, r := range rows {
		date := utils.FormatThaiDate(r.Date)
		school := utils.OrPlaceholder(r.SchoolName)
		for _, s := range FlattenStudents([]models.BookingRow{r.Booking}) {
			out.Rows = append(out.Rows, []string{
				strconv.Itoa(len(out.Rows) + 1),
				s.StudentID,
				s.Name,
				date,
				school,
			})
		}
	}
	return out
}
