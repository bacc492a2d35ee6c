package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_DSN", "user:pass@tcp(localhost:3306)/fito?parseTime=true")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("RATELIMIT_ASK_LIMIT", "5")
	t.Setenv("RATELIMIT_ASK_WINDOW", "30s")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.True(t, cfg.OpenAI.Configured())
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.False(t, cfg.Cloudinary.Configured(), "two of three credentials missing")
	assert.Equal(t, "fitoapteka/products", cfg.Cloudinary.Folder)
	assert.Equal(t, 5, cfg.RateLimit.AskLimit)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.AskWindow)
	assert.False(t, cfg.AdminLoginEnabled())
}

func TestLoadRequiresDSN(t *testing.T) {
	t.Setenv("DB_DSN", "")
	_, err := Load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DSN")
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DSN", "x")
	t.Setenv("DB_DRIVER", "oracle")
	_, err := Load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "db:\n  driver: postgres\n  dsn: postgres://localhost/fito\nsite:\n  brand: Test Shop\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load([]string{"--config", path})
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "Test Shop", cfg.Site.Brand)
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Config{Log: LogConfig{Level: "debug"}}.LogLevel())
	assert.Equal(t, slog.LevelInfo, Config{Log: LogConfig{Level: "loud"}}.LogLevel())
}
