package handlers

import (
	"net/http"
	"sync"

	intconfig "guidance-portal/internal/config"
	intdb "guidance-portal/internal/db"

	"github.com/gin-gonic/gin"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for /api/routes.
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "guidance report service พร้อมใช้งาน"})
}

func DBCheck(c *gin.Context) {
	db := intconfig.DB
	if db == nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "ยังไม่ได้เชื่อมต่อฐานข้อมูล")
		return
	}
	if err := db.PingContext(c.Request.Context()); err != nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "ติดต่อฐานข้อมูลไม่ได้: "+err.Error())
		return
	}
	tables := gin.H{}
	for _, t := range []string{"guidance", "school", "booking", "teacher"} {
		tables[t] = intdb.HasTable(c.Request.Context(), db, t)
	}
	c.JSON(http.StatusOK, gin.H{"message": "เชื่อมต่อฐานข้อมูลสำเร็จ", "tables": tables})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		respondError(c, http.StatusServiceUnavailable, "router_not_ready", "router ยังไม่พร้อม")
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{"method": rt.Method, "path": rt.Path})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
