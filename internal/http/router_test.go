package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	intconfig "guidance-portal/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRouterHealthAndGuard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(intconfig.Env{JWTSecret: "secret"}, intconfig.DefaultReportSettings())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/reports?id=1", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouterCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(intconfig.Env{CORSOrigins: []string{"https://portal.example.ac.th"}}, intconfig.DefaultReportSettings())

	req := httptest.NewRequest(http.MethodOptions, "/api/reports", nil)
	req.Header.Set("Origin", "https://portal.example.ac.th")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://portal.example.ac.th", w.Header().Get("Access-Control-Allow-Origin"))
}
