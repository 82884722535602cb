package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser     string
	DBPassword string
	DBHost     string
	DBName     string

	JWTSecret      string
	CORSOrigins    []string
	ReportTimeout  time.Duration
	ReportSettings string
}

// LoadEnv reads process env, loading .env first when one is present.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: อ่านไฟล์ .env ไม่สำเร็จ: %v", err)
	}

	return Env{
		AppAddr:        getenv("APP_ADDR", ":8080"),
		GinMode:        getenv("GIN_MODE", ""),
		DBUser:         getenv("DB_USER", "root"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBHost:         getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:         getenv("DB_NAME", "guidance_portal"),
		JWTSecret:      strings.TrimSpace(os.Getenv("JWT_SECRET")),
		CORSOrigins:    splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		ReportTimeout:  getDuration("REPORT_TIMEOUT", 30*time.Second),
		ReportSettings: getenv("REPORT_CONFIG", ""),
	}
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("warning: %s ไม่ถูกต้อง (%q) ใช้ค่า %s แทน", key, raw, def)
		return def
	}
	return d
}

func splitList(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
