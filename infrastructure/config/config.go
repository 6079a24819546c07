package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration

	ServerPort  string
	ServerHost  string
	Environment string

	// AllowAnyPassword skips password verification after the username
	// resolves. Demo/local use only; it must be enabled explicitly and is
	// logged loudly at startup. Never set in production.
	AllowAnyPassword bool

	RedisURL               string
	RateLimitEnabled       bool
	RateLimitLoginAttempts int
	RateLimitLoginWindow   time.Duration

	LogLevel  string
	LogFormat string

	CORSEnabled        bool
	CORSAllowedOrigins []string
}

var (
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is required")
	ErrMissingJWTSecret   = errors.New("JWT_SECRET is required")
	ErrInvalidTokenTTL    = errors.New("invalid token TTL format")
)

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		ServerPort:       getEnvOrDefault("SERVER_PORT", "8080"),
		ServerHost:       getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
		Environment:      getEnvOrDefault("ENV", "development"),
		AllowAnyPassword: getEnvOrDefaultBool("AUTH_ALLOW_ANY_PASSWORD", false),

		RedisURL:               getEnvOrDefault("REDIS_URL", "redis://localhost:6379/0"),
		RateLimitEnabled:       getEnvOrDefaultBool("RATE_LIMIT_ENABLED", false),
		RateLimitLoginAttempts: getEnvOrDefaultInt("RATE_LIMIT_LOGIN_ATTEMPTS", 10),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "json"),

		CORSEnabled:        getEnvOrDefaultBool("CORS_ENABLED", true),
		CORSAllowedOrigins: parseAllowedOrigins(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "")),
	}

	if cfg.DatabaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}
	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	// Tokens are valid for a fixed 24h window unless overridden (seconds).
	tokenTTL, err := parseTTLSeconds(getEnvOrDefault("JWT_TOKEN_TTL", "86400"))
	if err != nil {
		return nil, ErrInvalidTokenTTL
	}
	cfg.TokenTTL = tokenTTL

	loginWindow, err := parseTTLSeconds(getEnvOrDefault("RATE_LIMIT_LOGIN_WINDOW", "900"))
	if err != nil {
		return nil, ErrInvalidTokenTTL
	}
	cfg.RateLimitLoginWindow = loginWindow

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvOrDefaultBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return parsed
	}
	return defaultValue
}

func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return parsed
	}
	return defaultValue
}

func parseTTLSeconds(value string) (time.Duration, error) {
	seconds, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return time.Duration(seconds) * time.Second, nil
}

func parseAllowedOrigins(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			res = append(res, trimmed)
		}
	}
	return res
}
