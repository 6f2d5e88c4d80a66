package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	BaseURL       string // Required: externally visible origin used in registration links
	SessionSecret string // Required: HS256 secret for session tokens
	Issuer        string // Optional: issuer claim for session tokens (default: parentsclub-portal)

	SeedAdminUsername string // Optional: first-run admin username
	SeedAdminPassword string // Optional: first-run admin password

	DatabaseFile  string        // Optional: path to SQLite database file (default: ./portal.db)
	PepperFile    string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	InvitationTTL time.Duration // Optional: invitation validity window (default: 72h)
	SessionTTL    time.Duration // Optional: session token lifetime (default: 24h)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Session cleanup interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		BaseURL:       getEnvOrDefault("PORTAL_BASE_URL", "http://localhost:8080"),
		SessionSecret: os.Getenv("PORTAL_SESSION_SECRET"),
		Issuer:        getEnvOrDefault("PORTAL_ISSUER", "parentsclub-portal"),

		SeedAdminUsername: os.Getenv("PORTAL_SEED_ADMIN_USERNAME"),
		SeedAdminPassword: os.Getenv("PORTAL_SEED_ADMIN_PASSWORD"),

		DatabaseFile:  getEnvOrDefault("PORTAL_DATABASE_FILE", "portal.db"),
		PepperFile:    getEnvOrDefault("PORTAL_PEPPER_FILE", "pepper"),
		InvitationTTL: getEnvDurationOrDefault("PORTAL_INVITATION_TTL", 72*time.Hour),
		SessionTTL:    getEnvDurationOrDefault("PORTAL_SESSION_TTL", 24*time.Hour),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	return cfg
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

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer hours for operator convenience
	if hours, err := strconv.Atoi(value); err == nil {
		return time.Duration(hours) * time.Hour
	}

	return defaultValue
}
