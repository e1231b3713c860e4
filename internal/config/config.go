package config

import (
	"crypto/rand"
	"encoding/base64"
	"os"
	"strconv"

	"go.uber.org/zap"
)

type Config struct {
	Port             string
	TelegramBotToken string
	TelegramChatID   string
	SessionKey       []byte
	CookieSecure     bool
	FeaturedLimit    int
}

// Load reads the configuration from the environment. The only hard
// requirements at runtime are the two Telegram credentials, and even those
// only fail submissions, not startup.
func Load(log *zap.Logger) *Config {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
		CookieSecure:     getEnv("COOKIE_SECURE", "false") == "true",
		FeaturedLimit:    4,
	}

	if v := os.Getenv("FEATURED_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.FeaturedLimit = n
		} else {
			log.Warn("invalid FEATURED_LIMIT, keeping default", zap.String("value", v))
		}
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		log.Warn("invalid PORT, falling back to default", zap.String("value", cfg.Port))
		cfg.Port = "8080"
	}

	if cfg.TelegramBotToken == "" || cfg.TelegramChatID == "" {
		log.Warn("TELEGRAM_BOT_TOKEN / TELEGRAM_CHAT_ID not set; order and custom-print submissions will fail")
	}

	keyStr := os.Getenv("SESSION_KEY")
	if keyStr == "" {
		log.Warn("SESSION_KEY not set, generating a random key; sessions will not survive a restart")
		cfg.SessionKey = randomBytes(32)
	} else {
		decoded, err := base64.StdEncoding.DecodeString(keyStr)
		if err != nil || len(decoded) < 32 {
			log.Warn("SESSION_KEY is invalid or shorter than 32 bytes, generating a random key")
			cfg.SessionKey = randomBytes(32)
		} else {
			cfg.SessionKey = decoded
		}
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func randomBytes(n int) []byte {
	b := make([]byte, n)
	// crypto/rand.Read never fails on supported platforms
	_, _ = rand.Read(b)
	return b
}
