// Package registry builds and holds the named interval collections the
// service exposes, and atomically swaps them in when the configuration is
// reloaded.
package registry

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/arborix/intervals/collection"
	"github.com/arborix/intervals/dit"
	"github.com/arborix/intervals/ibs"
	"github.com/arborix/intervals/interval"
	"github.com/arborix/intervals/internal/config"
	"github.com/arborix/intervals/internal/metrics"
	"github.com/arborix/intervals/internal/rangekey"
	"github.com/arborix/intervals/lcl"
	"github.com/arborix/intervals/sit"
)

// Entry is one named, built collection together with the capabilities its
// underlying index variant happens to support.
type Entry struct {
	Name string
	Kind string

	collection.Collection[rangekey.Key]

	// MaxOverlapper is non-nil for the index variants that maintain a
	// maximum-overlap aggregate (dit, ibs, lcl); sit does not.
	MaxOverlapper collection.MaximumOverlapper[rangekey.Key]

	// Sorted is non-nil only for lcl, which is the only variant offering
	// a query that enumerates results in global low/high order.
	Sorted *lcl.Tree[rangekey.Key]
}

// Registry holds the set of currently built collections, indexed by name.
// Rebuild swaps the whole set atomically so readers never observe a
// partially reloaded configuration.
type Registry struct {
	entries atomic.Pointer[map[string]*Entry]
}

// New builds a registry from cfg.
func New(cfg *config.Configuration, collector metrics.BuildCollector) *Registry {
	r := &Registry{}
	_ = r.Rebuild(cfg, collector)
	return r
}

// Rebuild builds every collection in cfg and atomically replaces the
// registry's contents.
func (r *Registry) Rebuild(cfg *config.Configuration, collector metrics.BuildCollector) error {
	next := make(map[string]*Entry, len(cfg.Collections))
	for _, spec := range cfg.Collections {
		if _, dup := next[spec.Name]; dup {
			return fmt.Errorf("registry: duplicate collection name %q", spec.Name)
		}

		start := time.Now()
		entry, err := build(spec)
		if err != nil {
			return fmt.Errorf("registry: building collection %q: %w", spec.Name, err)
		}
		if collector != nil {
			collector.RecordBuild(spec.Name, spec.Kind, len(spec.Intervals), time.Since(start))
		}
		next[spec.Name] = entry
	}

	r.entries.Store(&next)
	return nil
}

// Get returns the named collection, or false if no such collection exists.
func (r *Registry) Get(name string) (*Entry, bool) {
	entries := r.entries.Load()
	if entries == nil {
		return nil, false
	}
	e, ok := (*entries)[name]
	return e, ok
}

// Names returns the names of every currently built collection.
func (r *Registry) Names() []string {
	entries := r.entries.Load()
	if entries == nil {
		return nil
	}
	names := make([]string, 0, len(*entries))
	for name := range *entries {
		names = append(names, name)
	}
	return names
}

// build constructs the refs described by spec and loads them into the
// index variant spec.Kind names.
func build(spec config.CollectionSpec) (*Entry, error) {
	refs := make([]*interval.Interval[rangekey.Key], len(spec.Intervals))
	for i, is := range spec.Intervals {
		lowIncluded, highIncluded := is.Inclusive()
		if is.Low == is.High && !(lowIncluded && highIncluded) {
			return nil, fmt.Errorf("interval %d: a point interval must include both endpoints", i)
		}
		iv := interval.New(
			rangekey.Key(is.Low), rangekey.Key(is.High),
			lowIncluded, highIncluded,
		)
		refs[i] = &iv
	}

	entry := &Entry{Name: spec.Name, Kind: spec.Kind}

	switch spec.Kind {
	case config.KindDIT:
		tree := dit.FromSlice(spec.AllowReferenceDuplicates, refs...)
		entry.Collection = tree
		entry.MaxOverlapper = tree
	case config.KindIBS:
		tree := ibs.Build(refs...)
		entry.Collection = tree
		entry.MaxOverlapper = tree
	case config.KindSIT:
		entry.Collection = sit.Build(refs...)
	case config.KindLCL:
		tree := lcl.Build(refs...)
		// Fill the lazily computed maximum-overlap cache before the entry
		// is shared, so concurrent readers never write to the tree.
		tree.MaximumOverlap()
		entry.Collection = tree
		entry.MaxOverlapper = tree
		entry.Sorted = tree
	default:
		return nil, fmt.Errorf("unknown collection kind %q", spec.Kind)
	}

	return entry, nil
}
