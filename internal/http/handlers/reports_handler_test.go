package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	intconfig "guidance-portal/internal/config"
	"guidance-portal/internal/domain"
	"guidance-portal/internal/http/middleware"
	"guidance-portal/internal/pdfdoc"
	"guidance-portal/internal/pdfdoc/pdfdoctest"
	"guidance-portal/internal/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	guidanceCols = []string{
		"guidance_id", "guidance_date", "start_time", "end_time", "category", "status",
		"study_plan", "faculty", "professor", "school_id",
		"vehicle_registration", "vehicle_seats", "vehicle_type", "driver_phone",
		"s.school_id", "school_name", "address", "district", "province", "postal_code",
		"phone", "email", "website", "contact_name", "contact_phone", "is_approved",
	}
	bookingCols = []string{
		"booking_id", "guidance_id", "teacher_id", "teacher_name", "teacher_phone",
		"pickup_point", "contact_phone", "student_id_1", "student_name_1", "student_id_2", "student_name_2",
	}
)

func withMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	prev := intconfig.DB
	intconfig.DB = db
	t.Cleanup(func() {
		intconfig.DB = prev
		db.Close()
	})
	return mock
}

func testHandler(timeout time.Duration) ReportsHandler {
	return ReportsHandler{
		Composer: services.Composer{
			Settings: intconfig.DefaultReportSettings(),
			NewSurface: func(string, time.Time) (pdfdoc.Surface, error) {
				return pdfdoctest.New(), nil
			},
			Now: func() time.Time { return time.Date(2024, 6, 1, 10, 0, 0, 0, time.Local) },
		},
		Timeout: timeout,
	}
}

func testEngine(h ReportsHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/api/reports", h.GetReports)
	r.GET("/api/reports/:id/pdf", h.GetReportPDF)
	return r
}

func get(r http.Handler, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

func expectEvent42(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("FROM guidance g").WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(guidanceCols).AddRow(
			42, "2024-06-01", "09:00:00", "12:00:00", "แนะแนวที่โรงเรียน", "เปิดรับสมัคร",
			"", "", "", 5, "", 0, "", "",
			5, "โรงเรียนบ้านสวน", "", "", "ชลบุรี", "", "", "", "", "", "", 1,
		))
	mock.ExpectQuery("FROM booking b").WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(bookingCols).
			AddRow(1, 42, 7, "ครูเอ", "081", "", "", "S1", "หนึ่ง", "S2", "สอง").
			AddRow(2, 42, 7, "ครูเอ", "081", "", "", "S3", "สาม", "S4", "สี่").
			AddRow(3, 42, 9, "ครูบี", "082", "", "", "S5", "ห้า", "S6", "หก"))
}

func TestGetReportsJSON(t *testing.T) {
	mock := withMockDB(t)
	expectEvent42(mock)

	w := get(testEngine(testHandler(time.Second)), "/api/reports?id=42")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Success bool                     `json:"success"`
		Data    services.ReportViewModel `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, services.Summary{Teachers: 2, Students: 6, Total: 8}, body.Data.Summary)
	assert.Equal(t, "โรงเรียนบ้านสวน", body.Data.SchoolInfo.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetReportsPDFInlineAndDownload(t *testing.T) {
	mock := withMockDB(t)
	r := testEngine(testHandler(time.Second))

	expectEvent42(mock)
	w := get(r, "/api/reports?id=42&format=pdf")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Disposition"), "inline;"))
	assert.NotEmpty(t, w.Body.Bytes())

	expectEvent42(mock)
	w = get(r, "/api/reports?id=42&format=pdf&download=1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Disposition"), "attachment;"))

	expectEvent42(mock)
	w = get(r, "/api/reports/42/pdf")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Disposition"), "attachment;"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetReportsBadRequests(t *testing.T) {
	withMockDB(t)
	r := testEngine(testHandler(time.Second))

	for _, url := range []string{
		"/api/reports",
		"/api/reports?id=abc",
		"/api/reports?id=-1",
		"/api/reports/0/pdf",
		"/api/reports?reportType=finance&startDate=2024-06-01&endDate=2024-06-30",
		"/api/reports?reportType=activity&startDate=2024-06-31&endDate=2024-06-30",
		"/api/reports?reportType=activity&startDate=2024-07-01&endDate=2024-06-30",
	} {
		w := get(r, url)
		assert.Equal(t, http.StatusBadRequest, w.Code, url)
		assert.Contains(t, w.Body.String(), `"request_id"`, url)
	}
}

func TestGetReportsNotFound(t *testing.T) {
	mock := withMockDB(t)
	mock.ExpectQuery("FROM guidance g").WithArgs(int64(404)).WillReturnRows(sqlmock.NewRows(guidanceCols))

	w := get(testEngine(testHandler(time.Second)), "/api/reports?id=404&format=pdf")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetReportsTimeout(t *testing.T) {
	mock := withMockDB(t)
	mock.ExpectQuery("FROM guidance g").WithArgs(int64(42)).
		WillDelayFor(100 * time.Millisecond).
		WillReturnRows(sqlmock.NewRows(guidanceCols))

	w := get(testEngine(testHandler(20*time.Millisecond)), "/api/reports?id=42&format=pdf")
	assert.Equal(t, http.StatusGatewayTimeout, w.Code, w.Body.String())
}

func TestWithTimeoutLeavesWorkerRunning(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/reports?id=42&format=pdf", nil)

	seen := make(chan context.Context, 1)
	release := make(chan struct{})
	defer close(release)

	h := ReportsHandler{Timeout: 10 * time.Millisecond}
	_, _, err := h.withTimeout(c, func(ctx context.Context) ([]byte, string, error) {
		seen <- ctx
		<-release
		return []byte("late"), "late.pdf", nil
	})
	require.Error(t, err)
	assert.True(t, domain.IsInternal(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	worker := <-seen
	assert.NoError(t, worker.Err(), "deadline must not cancel in-flight generation")
}

func TestGetReportsBatch(t *testing.T) {
	mock := withMockDB(t)
	mock.ExpectQuery("FROM guidance g").WithArgs("2024-06-01", "2024-06-30").
		WillReturnRows(sqlmock.NewRows([]string{"guidance_id", "date", "school_name", "students"}).
			AddRow(1, "2024-06-05", "โรงเรียนเอ", 4))

	w := get(testEngine(testHandler(time.Second)), "/api/reports?reportType=activity&startDate=2024-06-01&endDate=2024-06-30")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="activity_report_2024-06-01_to_2024-06-30.pdf"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetReportsSummary(t *testing.T) {
	mock := withMockDB(t)
	for range 5 {
		mock.ExpectQuery("information_schema.tables").WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
	}

	w := get(testEngine(testHandler(time.Second)), "/api/reports?action=summary")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"guidances":0`)
}

func TestContentDisposition(t *testing.T) {
	got := contentDisposition("รายงานกิจกรรม_42_1717210800000.pdf", false)
	assert.True(t, strings.HasPrefix(got, `inline; filename="`))
	assert.Contains(t, got, `_42_1717210800000.pdf"`)
	assert.Contains(t, got, "filename*=UTF-8''%E0%B8%A3")
	assert.NotContains(t, got[strings.Index(got, "filename*"):], "ร")

	assert.Equal(t, `attachment; filename="a_b.pdf"; filename*=UTF-8''a%20b.pdf`, contentDisposition("a b.pdf", true))
}
