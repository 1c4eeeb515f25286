package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CHATBOT_FALLBACK_ONLY", "")
	t.Setenv("CHATBOT_MIN_INTERVAL", "")
	t.Setenv("CHATBOT_RETENTION", "")

	cfg := Load()

	require.Equal(t, "8080", cfg.Port)
	require.False(t, cfg.Chatbot.FallbackOnly)
	require.Equal(t, 3*time.Second, cfg.Chatbot.MinInterval)
	require.Equal(t, time.Hour, cfg.Chatbot.Retention)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CHATBOT_FALLBACK_ONLY", "true")
	t.Setenv("CHATBOT_MIN_INTERVAL", "5s")
	t.Setenv("CHATBOT_CLEANUP_INTERVAL", "1m")

	cfg := Load()

	require.Equal(t, "9090", cfg.Port)
	require.True(t, cfg.Chatbot.FallbackOnly)
	require.Equal(t, 5*time.Second, cfg.Chatbot.MinInterval)
	require.Equal(t, time.Minute, cfg.Chatbot.CleanupInterval)
}

func TestLoadIgnoresGarbage(t *testing.T) {
	t.Setenv("CHATBOT_FALLBACK_ONLY", "banana")
	t.Setenv("CHATBOT_MIN_INTERVAL", "soon")

	cfg := Load()

	require.False(t, cfg.Chatbot.FallbackOnly)
	require.Equal(t, 3*time.Second, cfg.Chatbot.MinInterval)
}
