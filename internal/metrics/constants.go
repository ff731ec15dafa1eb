package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Engine metric names
const (
	MetricNameExpansionsTotal      = "bom_expansions_total"
	MetricNameExpansionDuration    = "bom_expansion_duration_seconds"
	MetricNameDepthLimitHits       = "bom_expansion_depth_limit_hits_total"
	MetricNameCatalogDegradations  = "catalog_degradations_total"
	MetricNameInventionEvaluations = "invention_evaluations_total"
	MetricNameDecryptorsCompared   = "decryptor_options_compared_total"
)

// Collaborator metric names
const (
	MetricNameCatalogCacheHits   = "catalog_cache_hits_total"
	MetricNameCatalogCacheMisses = "catalog_cache_misses_total"
	MetricNamePriceFetches       = "market_price_fetches_total"
	MetricNamePriceFetchErrors   = "market_price_fetch_errors_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Engine metric help text
const (
	HelpTextExpansionsTotal      = "Total number of bill-of-materials expansions"
	HelpTextExpansionDuration    = "Bill-of-materials expansion latency in seconds"
	HelpTextDepthLimitHits       = "Total number of subtrees abandoned at the recursion depth limit"
	HelpTextCatalogDegradations  = "Total number of catalog lookups degraded to defaults after an upstream failure"
	HelpTextInventionEvaluations = "Total number of invention outcomes evaluated"
	HelpTextDecryptorsCompared   = "Total number of decryptor options compared by the optimizer"
)

// Collaborator metric help text
const (
	HelpTextCatalogCacheHits   = "Total number of catalog cache hits"
	HelpTextCatalogCacheMisses = "Total number of catalog cache misses"
	HelpTextPriceFetches       = "Total number of market price fetches"
	HelpTextPriceFetchErrors   = "Total number of failed market price fetches"
)

// Label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
)

// HTTPLatencyBuckets are the histogram buckets for HTTP request latency
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}

// ExpansionLatencyBuckets are the histogram buckets for expansion latency
var ExpansionLatencyBuckets = []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5}
