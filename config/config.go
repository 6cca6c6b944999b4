package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Gateway  GatewayConfig
	Session  SessionConfig
	Checkout CheckoutConfig
	Catalog  CatalogConfig
	Redis    RedisConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

type GatewayConfig struct {
	// BaseURL points at the backend that owns all domain data, e.g.
	// http://localhost:8080. Every proxied request is resolved against it.
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	CookieName string
	CookieTTL  time.Duration
	Secure     bool
}

type CheckoutConfig struct {
	// PollInterval is how often an active checkout queries payment status.
	PollInterval time.Duration
	// SessionTTL is how long an idle checkout session survives before the
	// janitor abandons it and stops its watcher.
	SessionTTL time.Duration
	// RedirectDelay is how long the success message stays visible before
	// the client is told to navigate to the success view.
	RedirectDelay time.Duration
}

type CatalogConfig struct {
	CacheTTL time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "3000"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Gateway: GatewayConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
			Timeout: parseDuration(getEnv("API_TIMEOUT", "15s"), 15*time.Second),
		},
		Session: SessionConfig{
			CookieName: getEnv("SESSION_COOKIE_NAME", "auth-token"),
			CookieTTL:  parseDuration(getEnv("SESSION_COOKIE_TTL", "24h"), 24*time.Hour),
			Secure:     getEnv("ENVIRONMENT", "development") == "production",
		},
		Checkout: CheckoutConfig{
			PollInterval:  parseDuration(getEnv("CHECKOUT_POLL_INTERVAL", "3s"), 3*time.Second),
			SessionTTL:    parseDuration(getEnv("CHECKOUT_SESSION_TTL", "30m"), 30*time.Minute),
			RedirectDelay: parseDuration(getEnv("CHECKOUT_REDIRECT_DELAY", "1500ms"), 1500*time.Millisecond),
		},
		Catalog: CatalogConfig{
			CacheTTL: parseDuration(getEnv("CATALOG_CACHE_TTL", "60s"), 60*time.Second),
		},
		Redis: RedisConfig{
			Enabled:  getEnv("REDIS_ENABLED", "false") == "true",
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       parseInt(getEnv("REDIS_DB", "0"), 0),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Invalid duration %s, using default %s", s, fallback)
		return fallback
	}
	return duration
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("Invalid integer %s, using default %d", s, fallback)
		return fallback
	}
	return n
}

func parseSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
