package api

import (
	"log"
	stdhttp "net/http"

	intconfig "guidance-portal/internal/config"
	h "guidance-portal/internal/http/handlers"
	"guidance-portal/internal/http/middleware"
	"guidance-portal/internal/services"

	"github.com/gin-gonic/gin"
)

// reportRoles may read guidance reports.
var reportRoles = []string{"officer", "admin"}

func NewRouter(env intconfig.Env, settings intconfig.ReportSettings) *gin.Engine {
	return newRouter(env, h.ReportsHandler{
		Composer: services.NewComposer(settings),
		Timeout:  env.ReportTimeout,
	})
}

func newRouter(env intconfig.Env, reports h.ReportsHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "ไม่พบเส้นทางที่เรียก",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Reports
		rpt := api.Group("/reports", middleware.RequireRole(env.JWTSecret, reportRoles...))
		rpt.GET("", reports.GetReports)
		// legacy direct download
		rpt.GET("/:id/pdf", reports.GetReportPDF)
	}

	h.SetRouter(r)
	return r
}
