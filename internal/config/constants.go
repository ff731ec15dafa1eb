package config

// Environment variable names
const (
	EnvPort          = "PORT"
	EnvLogLevel      = "LOG_LEVEL"
	EnvLogFormat     = "LOG_FORMAT"
	EnvEnvironment   = "ENVIRONMENT"
	EnvServiceName   = "SERVICE_NAME"
	EnvVersion       = "VERSION"
	EnvCatalogDBPath = "CATALOG_DB_PATH"
	EnvMarketBaseURL = "MARKET_BASE_URL"
	EnvMarketTTL     = "MARKET_CACHE_TTL"
	EnvCacheSize     = "CATALOG_CACHE_SIZE"
	EnvCacheTTL      = "CATALOG_CACHE_TTL"
)

// Default values
const (
	DefaultPort          = "8080"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultEnvironment   = "dev"
	DefaultServiceName   = "indyplan"
	DefaultVersion       = "dev"
	DefaultCatalogDBPath = "data/catalog.sqlite"
	DefaultMarketBaseURL = "https://esi.evetech.net/latest"
	DefaultMarketTTL     = "5m"
	DefaultCacheSize     = "4096"
	DefaultCacheTTL      = "1h"
)
