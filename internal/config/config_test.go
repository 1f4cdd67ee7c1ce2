package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("WEBHOOK_PUBLIC_URL", "https://example.com/telegram/webhook")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "token", cfg.TelegramToken)
	require.Equal(t, "9095", cfg.Port)
	require.Equal(t, "/app/data/usage.db", cfg.DBPath)
	require.Equal(t, 60*time.Second, cfg.ChartCacheTTL)
	require.False(t, cfg.Debug)
	require.Empty(t, cfg.OpenAIKey)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("WEBHOOK_PUBLIC_URL", "https://example.com/hook")
	t.Setenv("PORT", "8080")
	t.Setenv("DEBUG", "true")
	t.Setenv("CHART_CACHE_TTL", "5m")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.True(t, cfg.Debug)
	require.Equal(t, 5*time.Minute, cfg.ChartCacheTTL)
}

func TestLoadErrors(t *testing.T) {
	t.Run("MISSING_TOKEN", func(t *testing.T) {
		t.Setenv("TELEGRAM_BOT_TOKEN", "")
		t.Setenv("WEBHOOK_PUBLIC_URL", "https://example.com/hook")
		_, err := Load()
		require.Error(t, err)
	})
	t.Run("SHORT_TTL", func(t *testing.T) {
		t.Setenv("TELEGRAM_BOT_TOKEN", "token")
		t.Setenv("WEBHOOK_PUBLIC_URL", "https://example.com/hook")
		t.Setenv("CHART_CACHE_TTL", "10ms")
		_, err := Load()
		require.ErrorContains(t, err, "CHART_CACHE_TTL")
	})
}
