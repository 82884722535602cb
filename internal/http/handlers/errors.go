package handlers

import (
	"context"
	"errors"
	"net/http"

	"guidance-portal/internal/domain"
	"guidance-portal/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	var internal domain.InternalError
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", "ไม่พบข้อมูลกิจกรรม")
	case errors.Is(err, context.DeadlineExceeded):
		respondError(c, http.StatusGatewayTimeout, "timeout", "สร้างรายงานใช้เวลานานเกินกำหนด")
	case errors.As(err, &internal) && internal.Msg != "":
		respondError(c, http.StatusInternalServerError, "internal_error", internal.Msg)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "เกิดข้อผิดพลาดภายในระบบ")
	}
}
