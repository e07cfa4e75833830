// Package config handles application configuration.
//
// Go Pattern: Configuration via environment variables with sensible defaults.
// A struct holds the values and a single Load() function reads them — no
// framework, no global config object. A local .env file is honored for
// development convenience (same workflow as python-dotenv).
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Server settings
	Port    string
	GinMode string // "debug", "release", or "test"

	// Gemini generation settings
	GeminiAPIKey  string
	Model         string // primary model for predictions
	ModelFallback string // tried once if the primary fails

	// Odia PDF font (optional — the renderer degrades to Helvetica without it)
	FontPath string

	// Directory where generated PDF files are written
	OutputDir string

	// Upper bounds on the two externally-controlled calls.
	// Neither upstream sets a useful default, so we impose our own.
	GeocodeTimeout  time.Duration
	GenerateTimeout time.Duration

	// Rate limiting (submissions per client IP per hour)
	RateLimitPerHour int

	// CORS
	AllowedOrigins []string
}

// Load reads configuration from the environment (and .env, if present).
// The Gemini API key is the one hard requirement — without it the process
// refuses to start, because every submission would fail.
func Load() (*Config, error) {
	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		Port:    getEnv("PORT", "5000"),
		GinMode: getEnv("GIN_MODE", "debug"),

		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		Model:         getEnv("GEMINI_MODEL", "models/gemini-1.5-flash"),
		ModelFallback: getEnv("GEMINI_MODEL_FALLBACK", "models/gemini-1.5-flash"),

		FontPath:  getEnv("FONT_PATH", "fonts/NotoSansOriya-Regular.ttf"),
		OutputDir: getEnv("OUTPUT_DIR", "."),

		GeocodeTimeout:  getEnvDuration("GEOCODE_TIMEOUT", 5*time.Second),
		GenerateTimeout: getEnvDuration("GENERATE_TIMEOUT", 60*time.Second),

		RateLimitPerHour: getEnvInt("RATE_LIMIT_PER_HOUR", 30),

		AllowedOrigins: []string{
			getEnv("CORS_ORIGIN", "http://localhost:5173"),
		},
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY missing; set it in the environment or .env")
	}

	return cfg, nil
}

// getEnv reads an environment variable with a fallback default.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// getEnvInt reads an integer environment variable with a fallback.
func getEnvInt(key string, fallback int) int {
	str := getEnv(key, "")
	if str == "" {
		return fallback
	}
	val, err := strconv.Atoi(str)
	if err != nil {
		return fallback
	}
	return val
}

// getEnvDuration reads a duration ("5s", "2m") with a fallback.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	str := getEnv(key, "")
	if str == "" {
		return fallback
	}
	val, err := time.ParseDuration(str)
	if err != nil || val <= 0 {
		return fallback
	}
	return val
}
