// Package metrics provides Prometheus metrics for the interval index
// service.
package metrics

import "time"

// QueryCollector collects metrics for overlap queries served against a
// collection.
type QueryCollector interface {
	RecordQuery(collectionName, kind, operation string, duration time.Duration, resultCount int)
	RecordInvalidQuery(collectionName string)
}

// BuildCollector collects metrics for collection builds, triggered either
// at startup or by a configuration reload.
type BuildCollector interface {
	RecordBuild(collectionName, kind string, intervalCount int, duration time.Duration)
}

// ConfigReloadCollector collects metrics for configuration reloads.
type ConfigReloadCollector interface {
	RecordConfigReload(success bool, collectionCount int)
}

// Collector combines all metric collection interfaces used by the service.
type Collector interface {
	QueryCollector
	BuildCollector
	ConfigReloadCollector
}
