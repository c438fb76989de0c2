package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseFile  string // Optional: path to SQLite database file (default: ./leasing.db)
	JWTSecret     string // Required: shared secret used to verify bearer tokens
	PublicBaseURL string // Optional: external origin for shareable links (default: http://localhost:8080)

	ContractRendererURL string // Optional: contract-PDF rendering service; rendering disabled when empty
	NotifierURL         string // Optional: notification delivery service; dispatch disabled when empty
	BlobGatewayURL      string // Optional: blob-storage gateway; document uploads disabled when empty

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
	SweepInterval       time.Duration // Background sweep interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		DatabaseFile:  getEnvOrDefault("LEASING_DATABASE_FILE", "leasing.db"),
		JWTSecret:     os.Getenv("LEASING_JWT_SECRET"),
		PublicBaseURL: getEnvOrDefault("LEASING_PUBLIC_BASE_URL", "http://localhost:8080"),

		ContractRendererURL: os.Getenv("LEASING_CONTRACT_RENDERER_URL"),
		NotifierURL:         os.Getenv("LEASING_NOTIFIER_URL"),
		BlobGatewayURL:      os.Getenv("LEASING_BLOB_GATEWAY_URL"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		SweepInterval:       getEnvDurationOrDefault("LEASING_SWEEP_INTERVAL", 1*time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers are treated as minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
