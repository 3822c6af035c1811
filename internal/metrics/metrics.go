package metrics

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arborix/intervals/internal/version"
)

// Operation label values for the queries counter.
const (
	OperationFindOverlaps   = "find_overlaps"
	OperationCountOverlaps  = "count_overlaps"
	OperationFindOverlap    = "find_overlap"
	OperationMaximumOverlap = "maximum_overlap"
)

var (
	// registry is a custom registry to avoid exposing Go runtime metrics.
	registry = prometheus.NewRegistry()

	versionInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "intervalsrv_version_info",
			Help: "Version information",
		},
		[]string{"version"},
	)

	queriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intervalsrv_queries_total",
			Help: "Total number of overlap queries served, by collection, kind, and operation",
		},
		[]string{"collection", "kind", "operation"},
	)

	queriesInvalidTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intervalsrv_queries_invalid_total",
			Help: "Total number of queries rejected for malformed input, by collection",
		},
		[]string{"collection"},
	)

	queryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "intervalsrv_query_duration_seconds",
			Help:    "Query latency in seconds, by collection and operation",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"collection", "operation"},
	)

	queryResultSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "intervalsrv_query_result_size",
			Help:    "Number of intervals returned per find_overlaps query",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
		[]string{"collection"},
	)

	buildsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intervalsrv_builds_total",
			Help: "Total number of collection (re)builds, by collection and kind",
		},
		[]string{"collection", "kind"},
	)

	buildDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "intervalsrv_build_duration_seconds",
			Help:    "Collection build latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"collection", "kind"},
	)

	collectionSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "intervalsrv_collection_size",
			Help: "Number of intervals currently stored in a collection",
		},
		[]string{"collection", "kind"},
	)

	configReloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intervalsrv_config_reloads_total",
			Help: "Total number of configuration reload attempts, by outcome",
		},
		[]string{"success"},
	)
)

// Atomic counters backing the JSON snapshot returned by Get. Kept alongside
// the labeled Prometheus vectors above because a Prometheus registry isn't
// cheap to summarize into a flat, human-friendly shape on every request.
var (
	queriesCount        atomic.Uint64
	queriesInvalidCount atomic.Uint64
	buildsCount         atomic.Uint64
	configReloadsOK     atomic.Uint64
	configReloadsFailed atomic.Uint64
)

func init() {
	registry.MustRegister(
		versionInfo,
		queriesTotal,
		queriesInvalidTotal,
		queryDuration,
		queryResultSize,
		buildsTotal,
		buildDuration,
		collectionSize,
		configReloadsTotal,
	)
	versionInfo.WithLabelValues(version.Get()).Set(1)
}

// collector implements Collector against the package-level Prometheus
// vectors and atomic counters.
type collector struct{}

// NewCollector returns the process-wide metrics collector.
func NewCollector() Collector { return collector{} }

func (collector) RecordQuery(collectionName, kind, operation string, duration time.Duration, resultCount int) {
	queriesTotal.WithLabelValues(collectionName, kind, operation).Inc()
	queryDuration.WithLabelValues(collectionName, operation).Observe(duration.Seconds())
	if operation == OperationFindOverlaps {
		queryResultSize.WithLabelValues(collectionName).Observe(float64(resultCount))
	}
	queriesCount.Add(1)
}

func (collector) RecordInvalidQuery(collectionName string) {
	queriesInvalidTotal.WithLabelValues(collectionName).Inc()
	queriesInvalidCount.Add(1)
}

func (collector) RecordBuild(collectionName, kind string, intervalCount int, duration time.Duration) {
	buildsTotal.WithLabelValues(collectionName, kind).Inc()
	buildDuration.WithLabelValues(collectionName, kind).Observe(duration.Seconds())
	collectionSize.WithLabelValues(collectionName, kind).Set(float64(intervalCount))
	buildsCount.Add(1)
}

func (collector) RecordConfigReload(success bool, _ int) {
	label := "true"
	if !success {
		label = "false"
	}
	configReloadsTotal.WithLabelValues(label).Inc()
	if success {
		configReloadsOK.Add(1)
	} else {
		configReloadsFailed.Add(1)
	}
}

// Snapshot is a flat, JSON-friendly view of the service's metrics.
type Snapshot struct {
	Queries struct {
		Total   uint64 `json:"total"`
		Invalid uint64 `json:"invalid"`
	} `json:"queries"`
	Builds        uint64 `json:"builds"`
	ConfigReloads struct {
		Succeeded uint64 `json:"succeeded"`
		Failed    uint64 `json:"failed"`
	} `json:"config_reloads"`
}

// Get returns a snapshot of the service's metrics for JSON reporting.
func Get() Snapshot {
	var s Snapshot
	s.Queries.Total = queriesCount.Load()
	s.Queries.Invalid = queriesInvalidCount.Load()
	s.Builds = buildsCount.Load()
	s.ConfigReloads.Succeeded = configReloadsOK.Load()
	s.ConfigReloads.Failed = configReloadsFailed.Load()
	return s
}

// Handler returns an HTTP handler for the Prometheus metrics endpoint.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// Reset resets all metrics. Intended for use in tests only.
func Reset() {
	queriesTotal.Reset()
	queriesInvalidTotal.Reset()
	queryDuration.Reset()
	queryResultSize.Reset()
	buildsTotal.Reset()
	buildDuration.Reset()
	collectionSize.Reset()
	configReloadsTotal.Reset()
	versionInfo.Reset()
	versionInfo.WithLabelValues(version.Get()).Set(1)

	queriesCount.Store(0)
	queriesInvalidCount.Store(0)
	buildsCount.Store(0)
	configReloadsOK.Store(0)
	configReloadsFailed.Store(0)
}
