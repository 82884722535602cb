package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "guidance-portal/internal/config"
	router "guidance-portal/internal/http"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	settings, err := intconfig.LoadReportSettings(env.ReportSettings)
	if err != nil {
		log.Fatalf("อ่านการตั้งค่ารายงานไม่สำเร็จ: %v", err)
	}

	intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	r := router.NewRouter(env, settings)

	// PDF generation is bounded by REPORT_TIMEOUT; leave room to write the body.
	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      env.ReportTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("เซิร์ฟเวอร์ทำงานที่ http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("เริ่มเซิร์ฟเวอร์ไม่สำเร็จ: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("กำลังปิดเซิร์ฟเวอร์...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("ปิดเซิร์ฟเวอร์ไม่สำเร็จ: %v", err)
	}

	log.Println("ปิดเซิร์ฟเวอร์เรียบร้อย")
}
