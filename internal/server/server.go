// Package server contains the HTTP query server for the interval index
// service.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/arborix/intervals/interval"
	"github.com/arborix/intervals/internal/metrics"
	"github.com/arborix/intervals/internal/rangekey"
	"github.com/arborix/intervals/internal/registry"
)

// HTTP server timeout constants
const (
	httpTimeoutRead  = 10 * time.Second
	httpTimeoutWrite = 30 * time.Second
	httpTimeoutIdle  = 30 * time.Second
)

// Fields used in the log messages.
const (
	fieldCollection = "collection"
	fieldOperation  = "operation"
	fieldStatus     = "status"
)

// intervalView is the JSON representation of a stored interval.
type intervalView struct {
	Low          int64 `json:"low"`
	High         int64 `json:"high"`
	LowIncluded  bool  `json:"low_included"`
	HighIncluded bool  `json:"high_included"`
}

func toView(iv *interval.Interval[rangekey.Key]) intervalView {
	return intervalView{
		Low:          int64(iv.Low),
		High:         int64(iv.High),
		LowIncluded:  iv.LowIncluded,
		HighIncluded: iv.HighIncluded,
	}
}

func toViews(refs []*interval.Interval[rangekey.Key]) []intervalView {
	views := make([]intervalView, len(refs))
	for i, ref := range refs {
		views[i] = toView(ref)
	}
	return views
}

// writeJSON encodes v as the response body, logging (but not failing the
// request further) if encoding itself fails partway through.
func writeJSON(writer http.ResponseWriter, status int, v any) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	if err := json.NewEncoder(writer).Encode(v); err != nil {
		log.Error().Err(err).Msg("Cannot write JSON response")
	}
}

// parseQuery builds the query interval from request parameters: either a
// single "point" or a "low"/"high" pair, each endpoint defaulting to
// included unless its matching "*_included=false" is present.
func parseQuery(request *http.Request) (interval.Interval[rangekey.Key], bool) {
	q := request.URL.Query()

	if p := q.Get("point"); p != "" {
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return interval.Interval[rangekey.Key]{}, false
		}
		return interval.Point(rangekey.Key(v)), true
	}

	lowStr, highStr := q.Get("low"), q.Get("high")
	if lowStr == "" || highStr == "" {
		return interval.Interval[rangekey.Key]{}, false
	}
	low, err := strconv.ParseInt(lowStr, 10, 64)
	if err != nil {
		return interval.Interval[rangekey.Key]{}, false
	}
	high, err := strconv.ParseInt(highStr, 10, 64)
	if err != nil {
		return interval.Interval[rangekey.Key]{}, false
	}

	lowIncluded, highIncluded := true, true
	if q.Get("low_included") == "false" {
		lowIncluded = false
	}
	if q.Get("high_included") == "false" {
		highIncluded = false
	}
	if low > high || (low == high && !(lowIncluded && highIncluded)) {
		return interval.Interval[rangekey.Key]{}, false
	}

	return interval.New(rangekey.Key(low), rangekey.Key(high), lowIncluded, highIncluded), true
}

// collectionHandler adapts a function taking a resolved registry entry and
// query interval into an http.HandlerFunc, centralizing name lookup, query
// parsing, and metrics/logging.
func collectionHandler(
	reg *registry.Registry,
	collector metrics.QueryCollector,
	operation string,
	fn func(http.ResponseWriter, *registry.Entry, interval.Interval[rangekey.Key]),
) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		name := request.PathValue("name")

		entry, ok := reg.Get(name)
		if !ok {
			writer.WriteHeader(http.StatusNotFound)
			return
		}

		q, ok := parseQuery(request)
		if !ok {
			log.Warn().Str(fieldCollection, name).Str(fieldOperation, operation).
				Msg("Rejecting malformed query")
			collector.RecordInvalidQuery(name)
			writer.WriteHeader(http.StatusBadRequest)
			return
		}

		fn(writer, entry, q)
	}
}

// recordQuery records a served query's metrics and structured log line.
func recordQuery(
	collector metrics.QueryCollector,
	entry *registry.Entry,
	operation string,
	start time.Time,
	resultCount int,
) {
	duration := time.Since(start)
	collector.RecordQuery(entry.Name, entry.Kind, operation, duration, resultCount)
	log.Info().
		Str(fieldCollection, entry.Name).
		Str(fieldOperation, operation).
		Dur("duration", duration).
		Int("result_count", resultCount).
		Msg("Served query")
}

func getFindOverlaps(reg *registry.Registry, collector metrics.QueryCollector) http.HandlerFunc {
	return collectionHandler(reg, collector, metrics.OperationFindOverlaps,
		func(writer http.ResponseWriter, entry *registry.Entry, q interval.Interval[rangekey.Key]) {
			start := time.Now()
			results := entry.FindOverlapsInterval(q)
			recordQuery(collector, entry, metrics.OperationFindOverlaps, start, len(results))
			writeJSON(writer, http.StatusOK, toViews(results))
		})
}

func getCountOverlaps(reg *registry.Registry, collector metrics.QueryCollector) http.HandlerFunc {
	return collectionHandler(reg, collector, metrics.OperationCountOverlaps,
		func(writer http.ResponseWriter, entry *registry.Entry, q interval.Interval[rangekey.Key]) {
			start := time.Now()
			count := entry.CountOverlaps(q)
			recordQuery(collector, entry, metrics.OperationCountOverlaps, start, count)
			writeJSON(writer, http.StatusOK, map[string]int{"count": count})
		})
}

func getFindOverlap(reg *registry.Registry, collector metrics.QueryCollector) http.HandlerFunc {
	return collectionHandler(reg, collector, metrics.OperationFindOverlap,
		func(writer http.ResponseWriter, entry *registry.Entry, q interval.Interval[rangekey.Key]) {
			start := time.Now()
			found := entry.FindOverlap(q)
			recordQuery(collector, entry, metrics.OperationFindOverlap, start, 0)
			writeJSON(writer, http.StatusOK, map[string]bool{"overlap": found})
		})
}

func getMaximumOverlap(reg *registry.Registry, collector metrics.QueryCollector) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		name := request.PathValue("name")
		entry, ok := reg.Get(name)
		if !ok {
			writer.WriteHeader(http.StatusNotFound)
			return
		}
		if entry.MaxOverlapper == nil {
			writer.WriteHeader(http.StatusNotImplemented)
			return
		}

		start := time.Now()
		max := entry.MaxOverlapper.MaximumOverlap()
		recordQuery(collector, entry, metrics.OperationMaximumOverlap, start, max)
		writeJSON(writer, http.StatusOK, map[string]int{"maximum_overlap": max})
	}
}

// collectionSummary is the JSON representation of one registered
// collection's metadata.
type collectionSummary struct {
	Name                string `json:"name"`
	Kind                string `json:"kind"`
	Count               int    `json:"count"`
	SupportsMaxOverlap  bool   `json:"supports_max_overlap"`
	SupportsSortedQuery bool   `json:"supports_sorted_query"`
}

func getCollections(reg *registry.Registry) http.HandlerFunc {
	return func(writer http.ResponseWriter, _ *http.Request) {
		names := reg.Names()
		summaries := make([]collectionSummary, 0, len(names))
		for _, name := range names {
			entry, ok := reg.Get(name)
			if !ok {
				continue
			}
			summaries = append(summaries, collectionSummary{
				Name:                entry.Name,
				Kind:                entry.Kind,
				Count:               entry.Count(),
				SupportsMaxOverlap:  entry.MaxOverlapper != nil,
				SupportsSortedQuery: entry.Sorted != nil,
			})
		}
		writeJSON(writer, http.StatusOK, summaries)
	}
}

// getHealth returns a 204 status code to indicate that the server is running.
func getHealth(writer http.ResponseWriter, _ *http.Request) {
	writer.WriteHeader(http.StatusNoContent)
}

// getJSONMetrics returns metrics in JSON format.
func getJSONMetrics(writer http.ResponseWriter, _ *http.Request) {
	writeJSON(writer, http.StatusOK, metrics.Get())
}

// New creates a new HTTP server that listens on the given address and
// serves queries against the collections held by reg.
func New(address string, reg *registry.Registry, collector metrics.QueryCollector) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/health", getHealth)
	mux.HandleFunc("GET /v1/metrics", getJSONMetrics)
	mux.HandleFunc("GET /metrics", func(w http.ResponseWriter, r *http.Request) {
		metrics.Handler().ServeHTTP(w, r)
	})

	mux.HandleFunc("GET /v1/collections", getCollections(reg))
	mux.HandleFunc("GET /v1/collections/{name}/overlaps", getFindOverlaps(reg, collector))
	mux.HandleFunc("GET /v1/collections/{name}/count", getCountOverlaps(reg, collector))
	mux.HandleFunc("GET /v1/collections/{name}/contains", getFindOverlap(reg, collector))
	mux.HandleFunc("GET /v1/collections/{name}/max-overlap", getMaximumOverlap(reg, collector))

	return &http.Server{
		Addr:         address,
		Handler:      mux,
		ReadTimeout:  httpTimeoutRead,
		WriteTimeout: httpTimeoutWrite,
		IdleTimeout:  httpTimeoutIdle,
	}
}
