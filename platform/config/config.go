// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// GeocodeConfig provides settings for the Google Maps geocoding client.
type GeocodeConfig interface {
	GetGoogleMapsAPIKey() string
	GetGeocodeRegion() string
	GetProviderTimeout() time.Duration
}

// ZillowConfig provides settings for the Zillow RapidAPI client.
type ZillowConfig interface {
	GetZillowHost() string
	GetZillowAPIKey() string
	GetProviderTimeout() time.Duration
	GetProviderRetryAttempts() int
	GetProviderRetryBaseDelay() time.Duration
	IsZillowEnabled() bool
}

// AttomConfig provides settings for the ATTOM Data client.
type AttomConfig interface {
	GetAttomAPIKey() string
	GetProviderTimeout() time.Duration
	GetProviderRetryAttempts() int
	GetProviderRetryBaseDelay() time.Duration
	IsAttomEnabled() bool
}

// CompsConfig provides the comp selection tolerances and search policy.
// Every knob is env-tunable because the tolerance constants drift between
// markets.
type CompsConfig interface {
	GetCompCap() int
	GetBedsTolerance() int
	GetBathsTolerance() int
	GetYearBuiltTolerance() int
	GetSqftTolerance() int
	GetRecencyWindow() time.Duration
	GetFallbackRadiusMiles() float64
	GetFallbackMaxResults() int
	GetCompsRequestCount() int
}

// MarketConfig provides settings for the metro market data lookup.
type MarketConfig interface {
	GetMarketDataPath() string
}

// AIConfig provides settings for the Gemini extraction client.
type AIConfig interface {
	GetGeminiAPIKey() string
	GetGeminiModel() string
	IsAIEnabled() bool
}

// =============================================================================
// Concrete Config
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env      string
	HTTPAddr string

	CORSAllowAll   bool
	CORSOrigins    []string
	CORSAllowCreds bool

	GoogleMapsAPIKey string
	GeocodeRegion    string

	ZillowHost   string
	ZillowAPIKey string
	AttomAPIKey  string

	ProviderTimeout        time.Duration
	ProviderRetryAttempts  int
	ProviderRetryBaseDelay time.Duration

	CompCap             int
	BedsTolerance       int
	BathsTolerance      int
	YearBuiltTolerance  int
	SqftTolerance       int
	RecencyWindow       time.Duration
	FallbackRadiusMiles float64
	FallbackMaxResults  int
	CompsRequestCount   int

	MarketDataPath string

	GeminiAPIKey string
	GeminiModel  string
}

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// GeocodeConfig implementation
func (c *Config) GetGoogleMapsAPIKey() string { return c.GoogleMapsAPIKey }
func (c *Config) GetGeocodeRegion() string    { return c.GeocodeRegion }

// ZillowConfig implementation
func (c *Config) GetZillowHost() string   { return c.ZillowHost }
func (c *Config) GetZillowAPIKey() string { return c.ZillowAPIKey }
func (c *Config) IsZillowEnabled() bool   { return c.ZillowAPIKey != "" }

// AttomConfig implementation
func (c *Config) GetAttomAPIKey() string { return c.AttomAPIKey }
func (c *Config) IsAttomEnabled() bool   { return c.AttomAPIKey != "" }

// Shared provider call policy
func (c *Config) GetProviderTimeout() time.Duration        { return c.ProviderTimeout }
func (c *Config) GetProviderRetryAttempts() int            { return c.ProviderRetryAttempts }
func (c *Config) GetProviderRetryBaseDelay() time.Duration { return c.ProviderRetryBaseDelay }

// CompsConfig implementation
func (c *Config) GetCompCap() int                  { return c.CompCap }
func (c *Config) GetBedsTolerance() int            { return c.BedsTolerance }
func (c *Config) GetBathsTolerance() int           { return c.BathsTolerance }
func (c *Config) GetYearBuiltTolerance() int       { return c.YearBuiltTolerance }
func (c *Config) GetSqftTolerance() int            { return c.SqftTolerance }
func (c *Config) GetRecencyWindow() time.Duration  { return c.RecencyWindow }
func (c *Config) GetFallbackRadiusMiles() float64  { return c.FallbackRadiusMiles }
func (c *Config) GetFallbackMaxResults() int       { return c.FallbackMaxResults }
func (c *Config) GetCompsRequestCount() int        { return c.CompsRequestCount }

// MarketConfig implementation
func (c *Config) GetMarketDataPath() string { return c.MarketDataPath }

// AIConfig implementation
func (c *Config) GetGeminiAPIKey() string { return c.GeminiAPIKey }
func (c *Config) GetGeminiModel() string  { return c.GeminiModel }
func (c *Config) IsAIEnabled() bool       { return c.GeminiAPIKey != "" }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:            getEnv("APP_ENV", "development"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:   corsAllowAll,
		CORSOrigins:    corsOrigins,
		CORSAllowCreds: strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),

		GoogleMapsAPIKey: getEnv("GOOGLE_MAPS_API_KEY", ""),
		GeocodeRegion:    getEnv("GEOCODE_REGION", "us"),

		ZillowHost:   getEnv("ZILLOW_RAPIDAPI_HOST", "zillow-com1.p.rapidapi.com"),
		ZillowAPIKey: getEnv("ZILLOW_RAPIDAPI_KEY", ""),
		AttomAPIKey:  getEnv("ATTOM_API_KEY", ""),

		ProviderTimeout:        mustDuration(getEnv("PROVIDER_TIMEOUT", "25s")),
		ProviderRetryAttempts:  mustInt(getEnv("PROVIDER_RETRY_ATTEMPTS", "3")),
		ProviderRetryBaseDelay: mustDuration(getEnv("PROVIDER_RETRY_BASE_DELAY", "1s")),

		CompCap:             mustInt(getEnv("COMP_CAP", "3")),
		BedsTolerance:       mustInt(getEnv("COMP_BEDS_TOLERANCE", "1")),
		BathsTolerance:      mustInt(getEnv("COMP_BATHS_TOLERANCE", "1")),
		YearBuiltTolerance:  mustInt(getEnv("COMP_YEAR_TOLERANCE", "20")),
		SqftTolerance:       mustInt(getEnv("COMP_SQFT_TOLERANCE", "500")),
		RecencyWindow:       mustDuration(getEnv("COMP_RECENCY_WINDOW", "8760h")),
		FallbackRadiusMiles: mustFloat(getEnv("COMP_FALLBACK_RADIUS_MILES", "10")),
		FallbackMaxResults:  mustInt(getEnv("COMP_FALLBACK_MAX_RESULTS", "50")),
		CompsRequestCount:   mustInt(getEnv("COMP_REQUEST_COUNT", "20")),

		MarketDataPath: getEnv("MARKET_DATA_PATH", "reventure-metro-data.csv"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
	}

	if cfg.GoogleMapsAPIKey == "" {
		return nil, fmt.Errorf("GOOGLE_MAPS_API_KEY is required")
	}
	if cfg.ZillowAPIKey == "" && cfg.AttomAPIKey == "" {
		return nil, fmt.Errorf("at least one of ZILLOW_RAPIDAPI_KEY or ATTOM_API_KEY is required")
	}
	if cfg.CompCap < 1 {
		return nil, fmt.Errorf("COMP_CAP must be at least 1")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
