package services

import (
	"context"
	"fmt"

	"guidance-portal/internal/domain"
	"guidance-portal/internal/domain/models"
	"guidance-portal/internal/repositories"
	"guidance-portal/internal/utils"
)

// BatchFilter is the raw query of a date-range report.
type BatchFilter struct {
	ReportType string
	StartDate  string
	EndDate    string
}

// ReportsService loads report data and hands it to the Composer. It holds no
// state between calls.
type ReportsService struct {
	GuidanceRepo repositories.GuidanceRepository
	BookingRepo  repositories.BookingRepository
	RangeRepo    repositories.RangeReportRepository
	SummaryRepo  repositories.SummaryRepository
	Composer     Composer
	RequestID    string
	Loader       func(ctx context.Context, guidanceID int64) (ReportInput, error)
}

// SingleEventView returns the assembled view model of one event.
func (s ReportsService) SingleEventView(ctx context.Context, guidanceID int64) (ReportViewModel, error) {
	in, err := s.load(ctx, guidanceID)
	if err != nil {
		return ReportViewModel{}, err
	}
	return AssembleReport(in), nil
}

// SingleEventPDF renders the single-event report and names the file after
// the event id and the generation time.
func (s ReportsService) SingleEventPDF(ctx context.Context, guidanceID int64) ([]byte, string, error) {
	vm, err := s.SingleEventView(ctx, guidanceID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "reports", "generate_single", fmt.Sprintf("guidance_id=%d teachers=%d students=%d",
		guidanceID, vm.Summary.Teachers, vm.Summary.Students))

	doc, err := s.Composer.Compose(vm)
	if err != nil {
		utils.LogError(s.RequestID, "reports", "generate_single", err)
		return nil, "", err
	}
	filename := fmt.Sprintf("รายงานกิจกรรม_%d_%d.pdf", guidanceID, s.Composer.now().UnixMilli())
	utils.LogEvent(s.RequestID, "reports", "generate_single", fmt.Sprintf("guidance_id=%d pages=%d bytes=%d",
		guidanceID, doc.Pages, len(doc.Bytes)))
	return doc.Bytes, filename, nil
}

// BatchPDF validates the filter before touching the database, then renders
// the requested date-range report.
func (s ReportsService) BatchPDF(ctx context.Context, f BatchFilter) ([]byte, string, error) {
	rt, start, end, err := ValidateBatchFilter(f)
	if err != nil {
		return nil, "", err
	}

	var batch BatchReport
	switch rt {
	case models.ReportActivity:
		rows, err := s.RangeRepo.Activities(ctx, start, end)
		if err != nil {
			return nil, "", err
		}
		batch = BuildActivityBatch(start, end, rows)
	case models.ReportTeacher:
		rows, err := s.RangeRepo.TeacherSchools(ctx, start, end)
		if err != nil {
			return nil, "", err
		}
		batch = BuildTeacherBatch(start, end, rows)
	case models.ReportStudent:
		rows, err := s.RangeRepo.Students(ctx, start, end)
		if err != nil {
			return nil, "", err
		}
		batch = BuildStudentBatch(start, end, rows)
	}
	utils.LogEvent(s.RequestID, "reports", "generate_batch", fmt.Sprintf("type=%s range=%s..%s rows=%d", rt, start, end, len(batch.Rows)))

	doc, err := s.Composer.ComposeBatch(batch)
	if err != nil {
		utils.LogError(s.RequestID, "reports", "generate_batch", err)
		return nil, "", err
	}
	return doc.Bytes, batch.Filename(), nil
}

// Summary returns the portal-wide counts.
func (s ReportsService) Summary(ctx context.Context) (models.SummaryCounts, error) {
	return s.SummaryRepo.Counts(ctx)
}

// ValidateBatchFilter checks the report type and both dates and returns them
// normalized to YYYY-MM-DD.
func ValidateBatchFilter(f BatchFilter) (models.ReportType, string, string, error) {
	rt, err := models.ParseReportType(f.ReportType)
	if err != nil {
		return "", "", "", domain.ValidationError{Field: "reportType", Msg: "ประเภทรายงานไม่ถูกต้อง", Err: err}
	}
	start, err := utils.ParseDate(f.StartDate)
	if err != nil {
		return "", "", "", domain.ValidationError{Field: "startDate", Msg: "รูปแบบวันที่ต้องเป็น YYYY-MM-DD", Err: err}
	}
	end, err := utils.ParseDate(f.EndDate)
	if err != nil {
		return "", "", "", domain.ValidationError{Field: "endDate", Msg: "รูปแบบวันที่ต้องเป็น YYYY-MM-DD", Err: err}
	}
	if start.After(end) {
		return "", "", "", domain.ValidationError{Field: "startDate", Msg: "วันที่เริ่มต้องไม่เกินวันที่สิ้นสุด"}
	}
	return rt, utils.FormatDate(start), utils.FormatDate(end), nil
}

func (s ReportsService) load(ctx context.Context, guidanceID int64) (ReportInput, error) {
	if s.Loader != nil {
		return s.Loader(ctx, guidanceID)
	}
	g, school, err := s.GuidanceRepo.GetWithSchool(ctx, guidanceID)
	if err != nil {
		return ReportInput{}, err
	}
	bookings, err := s.BookingRepo.ListForGuidance(ctx, guidanceID)
	if err != nil {
		return ReportInput{}, err
	}
	return ReportInput{Guidance: g, School: school, Bookings: bookings}, nil
}
