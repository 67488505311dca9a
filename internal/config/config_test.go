package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"lunchbox/backend/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"LUNCHBOX_ADDR", "LUNCHBOX_DATA_DIR", "LUNCHBOX_DB_PATH", "LUNCHBOX_DATABASE_URL",
		"LUNCHBOX_TIMEZONE", "LUNCHBOX_LOG_LEVEL", "LUNCHBOX_NODE_ID", "LUNCHBOX_RATE_LIMIT",
		"LUNCHBOX_CLEANUP_INTERVAL", "LUNCHBOX_WEBHOOK_PATH", "LUNCHBOX_CORS_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := config.Load()
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, filepath.Clean("data/lunchbox.db"), cfg.DBPath)
	require.Equal(t, config.DefaultTimezone, cfg.Timezone)
	require.Equal(t, int64(1), cfg.NodeID)
	require.Equal(t, 20, cfg.RateLimit)
	require.Zero(t, cfg.CleanupInterval)
	require.Equal(t, "/exec", cfg.WebhookPath)
	require.Equal(t, []string{"*"}, cfg.CORSOrigins)
	require.False(t, cfg.UsePostgres())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LUNCHBOX_DATA_DIR", "/var/lib/lunchbox")
	t.Setenv("LUNCHBOX_DB_PATH", "")
	t.Setenv("LUNCHBOX_DATABASE_URL", "postgres://lunch@localhost/lunch")
	t.Setenv("LUNCHBOX_NODE_ID", "7")
	t.Setenv("LUNCHBOX_RATE_LIMIT", "not-a-number")
	t.Setenv("LUNCHBOX_CLEANUP_INTERVAL", "30m")
	t.Setenv("LUNCHBOX_WEBHOOK_PATH", "hook")
	t.Setenv("LUNCHBOX_CORS_ORIGINS", "https://a.example, ,https://b.example")

	cfg := config.Load()
	require.Equal(t, "/var/lib/lunchbox/lunchbox.db", cfg.DBPath)
	require.True(t, cfg.UsePostgres())
	require.Equal(t, int64(7), cfg.NodeID)
	require.Equal(t, 20, cfg.RateLimit)
	require.Equal(t, 30*time.Minute, cfg.CleanupInterval)
	require.Equal(t, "/hook", cfg.WebhookPath)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}
