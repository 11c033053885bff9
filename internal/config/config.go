package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	DBDSN   string
	LogFile string

	// Media blob storage
	MediaBackend string // local | minio
	MediaDir     string
	MinioHost    string
	MinioAccess  string
	MinioSecret  string
	MinioBucket  string
	MinioSSL     bool

	// Owner account seeded at startup; no secrets in source.
	OwnerEmail    string
	OwnerName     string
	OwnerPassword string

	Email EmailConfig
}

type EmailConfig struct {
	Enabled   bool
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	OwnerTo   string
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DBDSN:         getEnv("DB_DSN", "satyaphoto.db"),
		LogFile:       getEnv("LOG_FILE", "./satyaphoto.log"),
		MediaBackend:  getEnv("MEDIA_BACKEND", "local"),
		MediaDir:      getEnv("MEDIA_DIR", "./web/media"),
		MinioHost:     getEnv("MINIO_HOST", "localhost:9000"),
		MinioAccess:   getEnv("MINIO_ACCESS_KEY", ""),
		MinioSecret:   getEnv("MINIO_SECRET_KEY", ""),
		MinioBucket:   getEnv("MINIO_BUCKET", "media"),
		MinioSSL:      getEnvAsBool("MINIO_SSL", false),
		OwnerEmail:    getEnv("OWNER_EMAIL", "owner@satyaphotography.test"),
		OwnerName:     getEnv("OWNER_NAME", "Satya Photography"),
		OwnerPassword: os.Getenv("OWNER_PASSWORD"),
		Email: EmailConfig{
			Enabled:   getEnvAsBool("EMAIL_ENABLED", false),
			SMTPHost:  getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:  getEnvAsInt("SMTP_PORT", 587),
			Username:  getEnv("SMTP_USERNAME", ""),
			Password:  getEnv("SMTP_PASSWORD", ""),
			FromEmail: getEnv("EMAIL_FROM", "noreply@satyaphotography.test"),
			FromName:  getEnv("EMAIL_FROM_NAME", "Satya Photography"),
			OwnerTo:   getEnv("OWNER_NOTIFY_EMAIL", ""),
		},
	}
	log.Printf("[config] PORT=%s DB_DSN=%s MEDIA_BACKEND=%s MEDIA_DIR=%s LOG_FILE=%s EMAIL_ENABLED=%v",
		cfg.Port, cfg.DBDSN, cfg.MediaBackend, cfg.MediaDir, cfg.LogFile, cfg.Email.Enabled)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvAsBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvAsInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
