package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// External APIs
	Polygon PolygonConfig
	Yahoo   YahooConfig

	// Screener
	Screener ScreenerConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// PolygonConfig holds Polygon.io API configuration
type PolygonConfig struct {
	APIKey       string
	BaseURL      string
	PriceTimeout time.Duration
	ChainTimeout time.Duration
	CallSpacing  time.Duration // pacing between consecutive API calls
	ChainLimit   int           // max contracts per chain snapshot request
}

// YahooConfig holds the scraped fallback quote source configuration
type YahooConfig struct {
	BaseURL string
	Enabled bool
}

// ScreenerConfig holds option screening defaults and fixed limits
type ScreenerConfig struct {
	CacheTTL          time.Duration
	ExpiryHorizonDays int
	PremiumFloor      float64
	MaxResults        int

	// Request defaults (overridable per request)
	DefaultSymbol        string
	DefaultMaxDeltaCalls float64
	DefaultMaxDeltaPuts  float64
}

// Load reads configuration from environment variables.
// This function is the only caller of os.Getenv().
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		Polygon: PolygonConfig{
			APIKey:       getEnv("POLYGON_API_KEY", ""),
			BaseURL:      getEnv("POLYGON_BASE_URL", "https://api.polygon.io"),
			PriceTimeout: getEnvAsDuration("POLYGON_PRICE_TIMEOUT", "10s"),
			ChainTimeout: getEnvAsDuration("POLYGON_CHAIN_TIMEOUT", "15s"),
			CallSpacing:  getEnvAsDuration("POLYGON_CALL_SPACING", "500ms"),
			ChainLimit:   getEnvAsInt("POLYGON_CHAIN_LIMIT", 250),
		},

		Yahoo: YahooConfig{
			BaseURL: getEnv("YAHOO_BASE_URL", "https://finance.yahoo.com"),
			Enabled: getEnvAsBool("YAHOO_FALLBACK_ENABLED", true),
		},

		Screener: ScreenerConfig{
			CacheTTL:          getEnvAsDuration("CACHE_TTL", "300s"),
			ExpiryHorizonDays: getEnvAsInt("EXPIRY_HORIZON_DAYS", 90),
			PremiumFloor:      getEnvAsFloat("PREMIUM_FLOOR", 0.05),
			MaxResults:        getEnvAsInt("MAX_RESULTS", 30),

			DefaultSymbol:        getEnv("DEFAULT_SYMBOL", "SPY"),
			DefaultMaxDeltaCalls: getEnvAsFloat("DEFAULT_MAX_DELTA_CALLS", 0.18),
			DefaultMaxDeltaPuts:  getEnvAsFloat("DEFAULT_MAX_DELTA_PUTS", 0.18),
		},

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "debug"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Screener.ExpiryHorizonDays <= 0 {
		return fmt.Errorf("EXPIRY_HORIZON_DAYS must be positive")
	}

	if c.Screener.MaxResults <= 0 {
		return fmt.Errorf("MAX_RESULTS must be positive")
	}

	if c.Screener.PremiumFloor < 0 {
		return fmt.Errorf("PREMIUM_FLOOR must not be negative")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env", // Current directory
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
			filepath.Join(exeDir, "..", "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to default
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
