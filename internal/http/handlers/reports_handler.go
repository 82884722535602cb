package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"guidance-portal/internal/domain"
	"guidance-portal/internal/http/middleware"
	"guidance-portal/internal/repositories"
	"guidance-portal/internal/services"
	"guidance-portal/internal/utils"

	"github.com/gin-gonic/gin"
)

const defaultReportTimeout = 30 * time.Second

// ReportsHandler serves the guidance reports. Each request builds its own
// service; nothing is shared between requests except the Composer settings.
type ReportsHandler struct {
	Composer services.Composer
	Timeout  time.Duration
}

func (h ReportsHandler) service(c *gin.Context) services.ReportsService {
	return services.ReportsService{
		GuidanceRepo: repositories.GuidanceRepository{},
		BookingRepo:  repositories.BookingRepository{},
		RangeRepo:    repositories.RangeReportRepository{},
		SummaryRepo:  repositories.SummaryRepository{},
		Composer:     h.Composer,
		RequestID:    middleware.GetRequestID(c),
	}
}

// GetReports dispatches GET /api/reports on its query string:
// action=summary, id (JSON or format=pdf), or reportType with a date range.
func (h ReportsHandler) GetReports(c *gin.Context) {
	logCaller(c)
	switch {
	case strings.EqualFold(strings.TrimSpace(c.Query("action")), "summary"):
		h.summary(c)
	case strings.TrimSpace(c.Query("id")) != "":
		id, ok := parseGuidanceID(c, c.Query("id"))
		if !ok {
			return
		}
		if strings.EqualFold(strings.TrimSpace(c.Query("format")), "pdf") {
			h.singlePDF(c, id, false)
			return
		}
		h.singleJSON(c, id)
	case strings.TrimSpace(c.Query("reportType")) != "":
		h.batchPDF(c)
	default:
		respondError(c, http.StatusBadRequest, "missing_parameter", "ต้องระบุ id หรือ reportType")
	}
}

// GetReportPDF serves GET /api/reports/:id/pdf, a download by default.
func (h ReportsHandler) GetReportPDF(c *gin.Context) {
	logCaller(c)
	id, ok := parseGuidanceID(c, c.Param("id"))
	if !ok {
		return
	}
	h.singlePDF(c, id, true)
}

func (h ReportsHandler) summary(c *gin.Context) {
	counts, err := h.service(c).Summary(c.Request.Context())
	if err != nil {
		utils.LogError(middleware.GetRequestID(c), "reports", "summary", err)
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": counts})
}

func (h ReportsHandler) singleJSON(c *gin.Context, id int64) {
	vm, err := h.service(c).SingleEventView(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": vm})
}

func (h ReportsHandler) singlePDF(c *gin.Context, id int64, attachmentByDefault bool) {
	svc := h.service(c)
	pdf, filename, err := h.withTimeout(c, func(ctx context.Context) ([]byte, string, error) {
		return svc.SingleEventPDF(ctx, id)
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	writePDF(c, pdf, filename, wantsDownload(c, attachmentByDefault))
}

func (h ReportsHandler) batchPDF(c *gin.Context) {
	svc := h.service(c)
	filter := services.BatchFilter{
		ReportType: c.Query("reportType"),
		StartDate:  c.Query("startDate"),
		EndDate:    c.Query("endDate"),
	}
	// reject bad input before spending a goroutine on it
	if _, _, _, err := services.ValidateBatchFilter(filter); err != nil {
		RespondDomainError(c, err)
		return
	}
	pdf, filename, err := h.withTimeout(c, func(ctx context.Context) ([]byte, string, error) {
		return svc.BatchPDF(ctx, filter)
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	writePDF(c, pdf, filename, wantsDownload(c, false))
}

type pdfResult struct {
	pdf      []byte
	filename string
	err      error
}

// withTimeout races generation against the configured deadline. The worker
// runs on a context the deadline does not cancel, so a late result is only
// dropped; the buffered channel lets the worker exit.
func (h ReportsHandler) withTimeout(c *gin.Context, gen func(ctx context.Context) ([]byte, string, error)) ([]byte, string, error) {
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = defaultReportTimeout
	}
	parent := c.Request.Context()
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	done := make(chan pdfResult, 1)
	go func() {
		pdf, name, err := gen(context.WithoutCancel(parent))
		done <- pdfResult{pdf: pdf, filename: name, err: err}
	}()

	select {
	case r := <-done:
		return r.pdf, r.filename, r.err
	case <-ctx.Done():
		return nil, "", timeoutError(c, timeout, ctx.Err())
	}
}

func timeoutError(c *gin.Context, after time.Duration, cause error) error {
	utils.LogEvent(middleware.GetRequestID(c), "reports", "timeout", fmt.Sprintf("after=%s", after))
	return domain.InternalError{Msg: "สร้างรายงานใช้เวลานานเกินกำหนด", Err: cause}
}

func logCaller(c *gin.Context) {
	if rc, ok := middleware.GetRequestContext(c); ok {
		utils.LogEvent(middleware.GetRequestID(c), "reports", "request", fmt.Sprintf("user_id=%d role=%s", rc.UserID, rc.Role))
	}
}

func parseGuidanceID(c *gin.Context, raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "รหัสกิจกรรมไม่ถูกต้อง")
		return 0, false
	}
	return id, true
}

func wantsDownload(c *gin.Context, def bool) bool {
	raw, ok := c.GetQuery("download")
	if !ok {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

func writePDF(c *gin.Context, pdf []byte, filename string, download bool) {
	c.Header("Content-Disposition", contentDisposition(filename, download))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// contentDisposition sets an ASCII filename for old clients and the UTF-8
// name through filename* (RFC 5987).
func contentDisposition(filename string, download bool) string {
	kind := "inline"
	if download {
		kind = "attachment"
	}
	return fmt.Sprintf(`%s; filename="%s"; filename*=UTF-8''%s`, kind, asciiFilename(filename), encodeRFC5987(filename))
}

func asciiFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func encodeRFC5987(s string) string {
	const attrChars = "!#$&+-.^_`|~"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < 0x80 && (ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9' || strings.IndexByte(attrChars, ch) >= 0) {
			b.WriteByte(ch)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", ch)
	}
	return b.String()
}
