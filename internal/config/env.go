package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr            string
	GinMode            string
	DBUser             string
	DBPass             string
	DBHost             string
	DBName             string
	JWTSecret          string
	CORSAllowedOrigins []string
}

// LoadEnv membaca konfigurasi dari environment; file .env (kalau ada) dimuat
// dulu supaya setup lokal tidak perlu export manual.
func LoadEnv() Env {
	_ = godotenv.Load()

	env := Env{
		AppAddr:   getEnv("APP_ADDR", ":8080"),
		GinMode:   strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:    getEnv("DB_USER", "root"),
		DBPass:    strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost:    getEnv("DB_HOST", "127.0.0.1:3306"),
		DBName:    getEnv("DB_NAME", "seaboat_app"),
		JWTSecret: getEnv("JWT_SECRET", "super-secret-key-change-me"),
	}

	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				env.CORSAllowedOrigins = append(env.CORSAllowedOrigins, o)
			}
		}
	}

	return env
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
