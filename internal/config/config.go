// Package config handles application configuration.
//
// Go Pattern: Configuration via environment variables with sensible
// defaults, held in a plain struct. A .env file is loaded first when
// present (local development); real environments set variables directly.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/prepwise/exam-prep-api/internal/services/pdf"
)

// Config holds all application configuration.
type Config struct {
	// Server settings
	Port    string
	GinMode string // "debug", "release", or "test"

	// OpenRouter model settings
	OpenRouterAPIKey  string
	OpenRouterModel   string // Model for both summarization and prediction
	OpenRouterBaseURL string

	// PDF extraction engine: "ledongthuc" (default) or "rscpdf"
	PDFEngine pdf.Engine

	// Optional shared API key; when set, requests must present it
	APIKey string

	// Upload limits
	MaxPDFSizeMB int

	// Rate limiting
	DefaultRateLimit int // Requests per hour per client

	// CORS
	AllowedOrigins []string
}

// Load reads configuration from the environment with sensible defaults.
func Load() (*Config, error) {
	// Best effort — a missing .env just means the environment is already set.
	_ = godotenv.Load()

	cfg := &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),

		OpenRouterAPIKey:  getEnv("OPENROUTER_API_KEY", ""),
		OpenRouterModel:   getEnv("OPENROUTER_MODEL", "google/gemini-2.5-flash"),
		OpenRouterBaseURL: getEnv("OPENROUTER_BASE_URL", ""),

		PDFEngine: pdf.Engine(getEnv("PDF_ENGINE", string(pdf.EngineLedongthuc))),

		APIKey: getEnv("API_KEY", ""),

		MaxPDFSizeMB: getEnvInt("MAX_PDF_SIZE_MB", 10),

		DefaultRateLimit: getEnvInt("DEFAULT_RATE_LIMIT", 100),

		AllowedOrigins: []string{
			getEnv("CORS_ORIGIN", "http://localhost:5173"),
		},
	}

	if !pdf.ValidEngine(cfg.PDFEngine) {
		return nil, fmt.Errorf("unknown PDF_ENGINE %q; use %q or %q",
			cfg.PDFEngine, pdf.EngineLedongthuc, pdf.EngineRSCPDF)
	}

	if cfg.MaxPDFSizeMB <= 0 {
		return nil, fmt.Errorf("MAX_PDF_SIZE_MB must be positive, got %d", cfg.MaxPDFSizeMB)
	}

	// The model key is what makes the service useful — refuse to start a
	// production instance without it. Debug mode may run keyless so the
	// extraction endpoints stay usable.
	if cfg.GinMode == "release" && cfg.OpenRouterAPIKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY must be set in production")
	}

	return cfg, nil
}

// MaxPDFSizeBytes returns the upload limit in bytes.
func (c *Config) MaxPDFSizeBytes() int64 {
	return int64(c.MaxPDFSizeMB) << 20
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
