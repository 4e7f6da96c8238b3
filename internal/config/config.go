package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration of the validator backend.
type Config struct {
	Port           string
	JWTSecret      string
	BatchSize      int
	MaxUploadBytes int64
	SessionTTL     time.Duration
	RateLimit      int // requests per window, per IP
	RateWindow     time.Duration
}

// Load reads configuration from the environment, after loading a .env
// file when one is present. Every value has a working default.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Printf("loaded configuration from .env")
	}

	return &Config{
		Port:           getEnv("PORT", ":8080"),
		JWTSecret:      getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		BatchSize:      getEnvInt("BATCH_SIZE", 10),
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_MB", 800)) * 1024 * 1024,
		SessionTTL:     getEnvDuration("SESSION_TTL", 2*time.Hour),
		RateLimit:      getEnvInt("RATE_LIMIT", 300),
		RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
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
		log.Printf("invalid %s=%q, using default %d", key, v, fallback)
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid %s=%q, using default %s", key, v, fallback)
	}
	return fallback
}
