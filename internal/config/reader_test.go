package config_test

import (
	"strings"
	"testing"

	"github.com/arborix/intervals/internal/config"
)

const validConfig = `
collections:
  - name: events
    kind: dit
    allow_reference_duplicates: true
    intervals:
      - low: 1
        high: 20
      - low: 2
        high: 5
        low_included: false

  - name: readings
    kind: sit
    intervals:
      - low: 0
        high: 100
        label: "sensor-1"
`

func TestReadConfigValid(t *testing.T) {
	cfg, err := config.ReadConfig(strings.NewReader(validConfig))
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	if len(cfg.Collections) != 2 {
		t.Fatalf("collections = %d, want 2", len(cfg.Collections))
	}

	events := cfg.Collections[0]
	if events.Name != "events" || events.Kind != config.KindDIT {
		t.Fatalf("collections[0] = %+v", events)
	}
	if !events.AllowReferenceDuplicates {
		t.Fatal("expected allow_reference_duplicates to be true")
	}
	if len(events.Intervals) != 2 {
		t.Fatalf("intervals = %d, want 2", len(events.Intervals))
	}

	low, high := events.Intervals[1].Inclusive()
	if low != false || high != true {
		t.Fatalf("inclusive() = (%v,%v), want (false,true)", low, high)
	}
}

func TestReadConfigDefaultsInclusiveEndpoints(t *testing.T) {
	cfg, err := config.ReadConfig(strings.NewReader(validConfig))
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	low, high := cfg.Collections[0].Intervals[0].Inclusive()
	if !low || !high {
		t.Fatalf("inclusive() = (%v,%v), want (true,true)", low, high)
	}
}

func TestReadConfigRejectsUnknownKind(t *testing.T) {
	const bad = `
collections:
  - name: events
    kind: bogus
    intervals:
      - low: 1
        high: 2
`
	if _, err := config.ReadConfig(strings.NewReader(bad)); err == nil {
		t.Fatal("expected an error for an unknown kind")
	}
}

func TestReadConfigRejectsInvertedInterval(t *testing.T) {
	const bad = `
collections:
  - name: events
    kind: dit
    intervals:
      - low: 10
        high: 2
`
	if _, err := config.ReadConfig(strings.NewReader(bad)); err == nil {
		t.Fatal("expected an error for low > high")
	}
}

func TestReadConfigRejectsMissingName(t *testing.T) {
	const bad = `
collections:
  - kind: dit
    intervals:
      - low: 1
        high: 2
`
	if _, err := config.ReadConfig(strings.NewReader(bad)); err == nil {
		t.Fatal("expected an error for a missing collection name")
	}
}

func TestReadConfigEmptyIntervalsAllowed(t *testing.T) {
	const empty = `
collections:
  - name: events
    kind: lcl
`
	cfg, err := config.ReadConfig(strings.NewReader(empty))
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	if len(cfg.Collections[0].Intervals) != 0 {
		t.Fatalf("intervals = %d, want 0", len(cfg.Collections[0].Intervals))
	}
}

func TestReadConfigMalformedYAML(t *testing.T) {
	if _, err := config.ReadConfig(strings.NewReader("not: [valid")); err == nil {
		t.Fatal("expected a YAML parse error")
	}
}
