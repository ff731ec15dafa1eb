package config

import (
	"fmt"
	"strings"
)

// Validate checks that loaded configuration values are usable.
func (c *Config) Validate() error {
	var problems []string

	if c.Port <= 0 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("%s must be in 1..65535, got %d", EnvPort, c.Port))
	}
	if c.CatalogDBPath == "" {
		problems = append(problems, EnvCatalogDBPath+" must not be empty")
	}
	if c.MarketBaseURL == "" {
		problems = append(problems, EnvMarketBaseURL+" must not be empty")
	}
	if c.CacheSize <= 0 {
		problems = append(problems, fmt.Sprintf("%s must be positive, got %d", EnvCacheSize, c.CacheSize))
	}
	if c.CacheTTL <= 0 {
		problems = append(problems, EnvCacheTTL+" must be positive")
	}
	if c.MarketTTL <= 0 {
		problems = append(problems, EnvMarketTTL+" must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
