package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// CORS allows the portal front-ends. Content-Disposition is exposed so the
// browser can read the report file name.
func CORS(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		origins = defaultOrigins
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "Accept", "Origin", requestIDHeader},
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length", requestIDHeader},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	})
}
