package config

import (
	"os"
	"strconv"
	"time"
)

type AppConfig struct {
	Port        string
	JWTSecret   string
	UploadDir   string
	FrontendURL string

	// Password reset
	ResetTokenTTL time.Duration

	// Pollution zone clustering
	ClusterEps       float64
	ClusterMinPoints int

	SMTP SMTPConfig
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func GetAppConfig() *AppConfig {
	return &AppConfig{
		Port:             getEnv("PORT", "5000"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		UploadDir:        getEnv("UPLOAD_DIR", "./uploads"),
		FrontendURL:      getEnv("FRONTEND_URL", "http://localhost:3000"),
		ResetTokenTTL:    getEnvDuration("RESET_TOKEN_TTL", 15*time.Minute),
		ClusterEps:       getEnvFloat("CLUSTER_EPS", 0.01),
		ClusterMinPoints: getEnvInt("CLUSTER_MIN_POINTS", 3),
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
			From:     getEnv("SMTP_FROM", os.Getenv("SMTP_USER")),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
