package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	AppName    = "Lunchbox"
	AppVersion = "1.0.0"
)

// DefaultTimezone is the zone that decides which calendar day "today" is.
const DefaultTimezone = "Europe/Moscow"

type Config struct {
	Addr            string
	DataDir         string
	DBPath          string
	DatabaseURL     string
	Timezone        string
	LogLevel        string
	LogFormat       string
	NodeID          int64
	RateLimit       int
	CleanupInterval time.Duration
	WebhookPath     string
	CORSOrigins     []string
}

// UsePostgres reports whether the store should be opened through pgx
// instead of the embedded SQLite file.
func (c Config) UsePostgres() bool {
	return c.DatabaseURL != ""
}

func Load() Config {
	dataDir := getEnv("LUNCHBOX_DATA_DIR", "./data")
	dbPath := getEnv("LUNCHBOX_DB_PATH", filepath.Join(dataDir, "lunchbox.db"))

	webhookPath := getEnv("LUNCHBOX_WEBHOOK_PATH", "/exec")
	if !strings.HasPrefix(webhookPath, "/") {
		webhookPath = "/" + webhookPath
	}

	return Config{
		Addr:            getEnv("LUNCHBOX_ADDR", ":8080"),
		DataDir:         filepath.Clean(dataDir),
		DBPath:          filepath.Clean(dbPath),
		DatabaseURL:     os.Getenv("LUNCHBOX_DATABASE_URL"),
		Timezone:        getEnv("LUNCHBOX_TIMEZONE", DefaultTimezone),
		LogLevel:        getEnv("LUNCHBOX_LOG_LEVEL", "info"),
		LogFormat:       getEnv("LUNCHBOX_LOG_FORMAT", "text"),
		NodeID:          int64(getEnvInt("LUNCHBOX_NODE_ID", 1)),
		RateLimit:       getEnvInt("LUNCHBOX_RATE_LIMIT", 20),
		CleanupInterval: getEnvDuration("LUNCHBOX_CLEANUP_INTERVAL", 0),
		WebhookPath:     webhookPath,
		CORSOrigins:     splitList(getEnv("LUNCHBOX_CORS_ORIGINS", "*")),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// getEnvInt falls back when the variable is unset or not a number.
func getEnvInt(key string, fallback int) int {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
