package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")

type Config struct {
	Port         string
	DatabaseURL  string
	DatabaseName string // used when the connection string does not name a database
	GinMode      string
	// Logging
	LogDevelopment bool
	// Tokens issued at login; empty secret disables them
	JWTSecret string
	TokenTTL  time.Duration
	// CORS
	AllowedOrigins []string
	// Redis Configuration (login rate limiting)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds int
	LoginRateLimit         int
}

func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_NAME", "studevo")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("LOG_DEVELOPMENT", false)
	v.SetDefault("TOKEN_TTL_HOURS", 24)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")
	v.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)
	v.SetDefault("RATE_LIMIT_LOGIN_THRESHOLD", 10)

	dbURL := v.GetString("DATABASE_URL")
	if dbURL == "" {
		dbURL = v.GetString("MONGODB_URI")
	}

	cfg := &Config{
		Port:                   v.GetString("PORT"),
		DatabaseURL:            strings.TrimSpace(dbURL),
		DatabaseName:           v.GetString("DB_NAME"),
		GinMode:                v.GetString("GIN_MODE"),
		LogDevelopment:         v.GetBool("LOG_DEVELOPMENT"),
		JWTSecret:              v.GetString("JWT_SECRET"),
		TokenTTL:               time.Duration(v.GetInt("TOKEN_TTL_HOURS")) * time.Hour,
		AllowedOrigins:         splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RedisURL:               v.GetString("REDIS_URL"),
		RedisPassword:          v.GetString("REDIS_PASSWORD"),
		RateLimitWindowSeconds: v.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		LoginRateLimit:         v.GetInt("RATE_LIMIT_LOGIN_THRESHOLD"),
	}

	return cfg, nil
}

// Validate reports settings the process cannot start without.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return ErrMissingDatabaseURL
	}
	return nil
}

func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimRight(strings.TrimSpace(item), "/")
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
