package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arborix/intervals/internal/config"
	"github.com/arborix/intervals/internal/metrics"
	"github.com/arborix/intervals/internal/registry"
)

// assertStatus is a test helper that checks HTTP status codes.
func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("status = %d, want %d", got, want)
	}
}

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	cfg := &config.Configuration{
		Collections: []config.CollectionSpec{
			{
				Name: "events",
				Kind: config.KindDIT,
				Intervals: []config.IntervalSpec{
					{Low: 1, High: 20},
					{Low: 2, High: 5},
					{Low: 6, High: 19},
				},
			},
			{
				Name: "readings",
				Kind: config.KindSIT,
				Intervals: []config.IntervalSpec{
					{Low: 0, High: 100},
				},
			},
		},
	}
	return registry.New(cfg, nil)
}

func serveRequest(t *testing.T, reg *registry.Registry, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	metrics.Reset()
	srv := New(":0", reg, metrics.NewCollector())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	srv.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := serveRequest(t, testRegistry(t), "GET", "/v1/health")
	assertStatus(t, rec.Code, http.StatusNoContent)
}

func TestListCollections(t *testing.T) {
	rec := serveRequest(t, testRegistry(t), "GET", "/v1/collections")
	assertStatus(t, rec.Code, http.StatusOK)

	var summaries []collectionSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summaries); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("collections = %d, want 2", len(summaries))
	}
}

func TestFindOverlapsByPoint(t *testing.T) {
	rec := serveRequest(t, testRegistry(t), "GET", "/v1/collections/events/overlaps?point=8")
	assertStatus(t, rec.Code, http.StatusOK)

	var views []intervalView
	if err := json.Unmarshal(rec.Body.Bytes(), &views); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("overlaps = %d, want 2 (expected [1,20] and [6,19])", len(views))
	}
}

func TestFindOverlapsUnknownCollection(t *testing.T) {
	rec := serveRequest(t, testRegistry(t), "GET", "/v1/collections/nope/overlaps?point=8")
	assertStatus(t, rec.Code, http.StatusNotFound)
}

func TestFindOverlapsMalformedQuery(t *testing.T) {
	rec := serveRequest(t, testRegistry(t), "GET", "/v1/collections/events/overlaps")
	assertStatus(t, rec.Code, http.StatusBadRequest)
}

func TestCountOverlaps(t *testing.T) {
	rec := serveRequest(t, testRegistry(t), "GET", "/v1/collections/events/count?low=0&high=30")
	assertStatus(t, rec.Code, http.StatusOK)

	var body map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["count"] != 3 {
		t.Fatalf("count = %d, want 3", body["count"])
	}
}

func TestMaximumOverlapUnsupportedForSIT(t *testing.T) {
	rec := serveRequest(t, testRegistry(t), "GET", "/v1/collections/readings/max-overlap")
	assertStatus(t, rec.Code, http.StatusNotImplemented)
}

func TestMaximumOverlapForDIT(t *testing.T) {
	rec := serveRequest(t, testRegistry(t), "GET", "/v1/collections/events/max-overlap")
	assertStatus(t, rec.Code, http.StatusOK)

	var body map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["maximum_overlap"] != 2 {
		t.Fatalf("maximum_overlap = %d, want 2", body["maximum_overlap"])
	}
}

func TestPrometheusMetricsEndpoint(t *testing.T) {
	rec := serveRequest(t, testRegistry(t), "GET", "/metrics")
	assertStatus(t, rec.Code, http.StatusOK)
}
