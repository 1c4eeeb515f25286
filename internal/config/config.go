package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration for the PizzaChain backend.
type Config struct {
	Port        string
	DatabaseURL string
	OpenAI      OpenAIConfig
	Chatbot     ChatbotConfig
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

type ChatbotConfig struct {
	// FallbackOnly skips the upstream provider entirely and serves
	// canned replies for every message.
	FallbackOnly bool

	MinInterval     time.Duration
	Retention       time.Duration
	CleanupInterval time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Port:        envStr("PORT", "8080"),
		DatabaseURL: envStr("DATABASE_URL", ""),
		OpenAI: OpenAIConfig{
			APIKey: envStr("OPENAI_API_KEY", ""),
			Model:  envStr("OPENAI_MODEL", ""),
		},
		Chatbot: ChatbotConfig{
			FallbackOnly:    envBool("CHATBOT_FALLBACK_ONLY", false),
			MinInterval:     envDuration("CHATBOT_MIN_INTERVAL", 3*time.Second),
			Retention:       envDuration("CHATBOT_RETENTION", time.Hour),
			CleanupInterval: envDuration("CHATBOT_CLEANUP_INTERVAL", 10*time.Minute),
		},
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
