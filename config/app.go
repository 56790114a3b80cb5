package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig is everything main needs from the environment.
type AppConfig struct {
	Port           string
	AppEnv         string
	FrontendURL    string
	AllowedOrigins []string

	DatabaseURL string
	RedisURL    string

	JWTSecret   string
	SessionTTL  time.Duration
	SessionIdle time.Duration

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	ResendAPIKey    string
	ResendFromEmail string

	MenuCacheTTL    time.Duration
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// IsProduction reports whether cookies must be Secure and logs quiet.
func (c *AppConfig) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load reads AppConfig from the environment, applying local-development defaults.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		Port:        getEnv("PORT", "8081"),
		AppEnv:      getEnv("APP_ENV", "development"),
		FrontendURL: getEnv("STOREFRONT_FRONTEND_URL", "http://localhost:3000"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),

		JWTSecret:   os.Getenv("JWT_SECRET"),
		SessionTTL:  getDuration("SESSION_TTL", 30*24*time.Hour),
		SessionIdle: getDuration("SESSION_IDLE_TIMEOUT", 2*time.Hour),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8081/api/v1/auth/google/callback"),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),

		ResendAPIKey:    os.Getenv("RESEND_API_KEY"),
		ResendFromEmail: getEnv("RESEND_FROM_EMAIL", "CITY <noreply@city.example>"),

		MenuCacheTTL:    getDuration("MENU_CACHE_TTL", 5*time.Minute),
		RateLimitMax:    getInt("RATE_LIMIT_MAX", 30),
		RateLimitWindow: getDuration("RATE_LIMIT_WINDOW", time.Minute),
	}

	cfg.AllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", cfg.FrontendURL))

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "postgres://" + getEnv("DB_USER", "postgres") + ":" + getEnv("DB_PASSWORD", "") +
			"@" + getEnv("DB_HOST", "localhost") + ":" + getEnv("DB_PORT", "5432") + "/city_food?sslmode=disable"
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable not set")
	}
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
		return nil, errors.New("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set")
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func getInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
