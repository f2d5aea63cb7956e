package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	// BackendBaseURL points at the identity/profile backend. Immutable after
	// Load; every outbound call goes through a client built from it.
	BackendBaseURL string
	BackendTimeout time.Duration

	// DefaultTheme is the palette used whenever the backend's theming cannot
	// be fetched or parsed.
	DefaultTheme DefaultTheme

	AllowedOrigins []string // CORS allowed origins
}

// DefaultTheme holds the fallback color for each named role.
type DefaultTheme struct {
	Primary   string
	Secondary string
	Topbar    string
	Accent    string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort:        getEnv("APP_PORT", "3000"),
		AppEnv:         getEnv("APP_ENV", "development"),
		BackendBaseURL: strings.TrimRight(getEnv("BACKEND_BASE_URL", "http://localhost:8000"), "/"),
		BackendTimeout: time.Duration(getEnvInt("BACKEND_TIMEOUT_SECONDS", 15)) * time.Second,
		DefaultTheme: DefaultTheme{
			Primary:   getEnv("THEME_PRIMARY", "#0ea5e9"),
			Secondary: getEnv("THEME_SECONDARY", "#64748b"),
			Topbar:    getEnv("THEME_TOPBAR", "#0f172a"),
			Accent:    getEnv("THEME_ACCENT", "#22c55e"),
		},
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
