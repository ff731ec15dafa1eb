package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Engine Metrics
var (
	ExpansionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameExpansionsTotal,
			Help: HelpTextExpansionsTotal,
		},
	)

	ExpansionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameExpansionDuration,
			Help:    HelpTextExpansionDuration,
			Buckets: ExpansionLatencyBuckets,
		},
	)

	DepthLimitHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDepthLimitHits,
			Help: HelpTextDepthLimitHits,
		},
	)

	CatalogDegradations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCatalogDegradations,
			Help: HelpTextCatalogDegradations,
		},
	)

	InventionEvaluations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameInventionEvaluations,
			Help: HelpTextInventionEvaluations,
		},
	)

	DecryptorsCompared = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDecryptorsCompared,
			Help: HelpTextDecryptorsCompared,
		},
	)
)

// Collaborator Metrics
var (
	CatalogCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCatalogCacheHits,
			Help: HelpTextCatalogCacheHits,
		},
	)

	CatalogCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCatalogCacheMisses,
			Help: HelpTextCatalogCacheMisses,
		},
	)

	PriceFetches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePriceFetches,
			Help: HelpTextPriceFetches,
		},
	)

	PriceFetchErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePriceFetchErrors,
			Help: HelpTextPriceFetchErrors,
		},
	)
)
