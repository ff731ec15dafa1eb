package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port          int
	LogLevel      string
	LogFormat     string
	Environment   string
	ServiceName   string
	Version       string
	CatalogDBPath string
	MarketBaseURL string
	MarketTTL     time.Duration
	CacheSize     int
	CacheTTL      time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:      getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:     getEnv(EnvLogFormat, DefaultLogFormat),
		Environment:   getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:   getEnv(EnvServiceName, DefaultServiceName),
		Version:       getEnv(EnvVersion, DefaultVersion),
		CatalogDBPath: getEnv(EnvCatalogDBPath, DefaultCatalogDBPath),
		MarketBaseURL: getEnv(EnvMarketBaseURL, DefaultMarketBaseURL),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvPort, err)
	}
	cfg.Port = port

	cacheSize, err := strconv.Atoi(getEnv(EnvCacheSize, DefaultCacheSize))
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvCacheSize, err)
	}
	cfg.CacheSize = cacheSize

	cacheTTL, err := time.ParseDuration(getEnv(EnvCacheTTL, DefaultCacheTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvCacheTTL, err)
	}
	cfg.CacheTTL = cacheTTL

	marketTTL, err := time.ParseDuration(getEnv(EnvMarketTTL, DefaultMarketTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvMarketTTL, err)
	}
	cfg.MarketTTL = marketTTL

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
