// Package config loads the web service configuration from the environment.
// A local .env file is honoured when present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr     = ":8080"
	defaultBaseURL  = "http://localhost:8080"
	defaultFeedFile = "data/products.json"

	defaultFeedTimeoutMS = 8000
	defaultFeedRetries   = 2

	defaultWhatsApp = "34600111222"
	defaultEmail    = "sales@veltacases.com"

	// Development signing key; override in any real deployment.
	defaultCookieKey = "velta-dev-cookie-key-0123456789a"
)

// Config carries everything cmd/web needs to wire the service.
type Config struct {
	Addr    string
	Dev     bool
	BaseURL string

	FeedURL     string
	FeedFile    string
	FeedTimeout time.Duration
	FeedRetries int

	WhatsApp string
	Email    string

	CookieKey []byte
}

// Load reads .env when present, then the environment, then defaults.
// PORT takes precedence over VELTA_WEB_ADDR the way PaaS runtimes expect.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:        getEnv("VELTA_WEB_ADDR", defaultAddr),
		Dev:         getEnvBool("VELTA_WEB_DEV", false) || getEnvBool("DEV", false),
		BaseURL:     strings.TrimRight(getEnv("VELTA_WEB_BASE_URL", defaultBaseURL), "/"),
		FeedURL:     getEnv("VELTA_WEB_FEED_URL", ""),
		FeedFile:    getEnv("VELTA_WEB_FEED_FILE", defaultFeedFile),
		FeedTimeout: time.Duration(getEnvInt("VELTA_WEB_FEED_TIMEOUT_MS", defaultFeedTimeoutMS)) * time.Millisecond,
		FeedRetries: getEnvInt("VELTA_WEB_FEED_RETRIES", defaultFeedRetries),
		WhatsApp:    getEnv("VELTA_WEB_WHATSAPP", defaultWhatsApp),
		Email:       getEnv("VELTA_WEB_EMAIL", defaultEmail),
		CookieKey:   []byte(getEnv("VELTA_WEB_COOKIE_KEY", defaultCookieKey)),
	}
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		cfg.Addr = ":" + port
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	var problems []string
	if c.FeedTimeout <= 0 {
		problems = append(problems, "feed timeout must be positive")
	}
	if c.FeedRetries < 0 {
		problems = append(problems, "feed retries must not be negative")
	}
	if len(c.CookieKey) < 16 {
		problems = append(problems, "cookie key must be at least 16 bytes")
	}
	if len(problems) > 0 {
		return fmt.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}
