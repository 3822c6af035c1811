// Package lcl implements a layered containment list: a flat, array-based
// static index built once from a batch of intervals, exploiting strict
// containment depth to answer overlap queries, range counts, and sorted
// enumeration without a tree walk.
package lcl

import (
	"github.com/arborix/intervals/collection"
	"github.com/arborix/intervals/interval"
)

// Ref is the handle this index stores: a pointer to a caller-owned
// interval, compared by identity.
type Ref[K interval.Comparable[K]] = collection.Ref[K]

// Tree is the layered containment list. Every interval is assigned a
// containment depth: layer 0 holds the intervals not strictly contained in
// any other stored interval, layer ℓ holds intervals strictly contained in
// some interval at every shallower layer. Each layer is a dense array
// sorted ascending by both low and high.
type Tree[K interval.Comparable[K]] struct {
	layers   [][]Ref[K]
	pointers [][]int
	count    int
	treeSpan *interval.Interval[K]

	maxOverlap     int
	maxOverlapSpan *interval.Interval[K]
	maxOverlapDone bool
}

// LayerCount returns the number of containment layers.
func (t *Tree[K]) LayerCount() int { return len(t.layers) }

// Layer returns the intervals stored at containment depth l, in ascending
// order. It panics if l is out of range.
func (t *Tree[K]) Layer(l int) []Ref[K] { return t.layers[l] }

// Count returns the number of intervals stored.
func (t *Tree[K]) Count() int { return t.count }

// IsEmpty reports whether the index holds no intervals.
func (t *Tree[K]) IsEmpty() bool { return t.count == 0 }

// Span returns the smallest interval covering every stored interval. It
// fails with collection.ErrEmpty when the index holds nothing.
func (t *Tree[K]) Span() (interval.Interval[K], error) {
	if t.treeSpan == nil {
		var zero interval.Interval[K]
		return zero, collection.ErrEmpty
	}
	return *t.treeSpan, nil
}

// Choose returns an arbitrary stored interval. It fails with
// collection.ErrEmpty when the index holds nothing.
func (t *Tree[K]) Choose() (Ref[K], error) {
	if t.count == 0 {
		return nil, collection.ErrEmpty
	}
	return t.layers[0][0], nil
}

// AllowsReferenceDuplicates always reports true: the flag exists for
// interface parity with the mutable collections, but this structure never
// mutates, so it has no observable effect.
func (t *Tree[K]) AllowsReferenceDuplicates() bool { return true }

// Add always fails: this structure is immutable after construction.
func (t *Tree[K]) Add(Ref[K]) error { return collection.ErrReadOnly }

// Remove always fails: this structure is immutable after construction.
func (t *Tree[K]) Remove(Ref[K]) error { return collection.ErrReadOnly }

// Clear always fails: this structure is immutable after construction.
func (t *Tree[K]) Clear() error { return collection.ErrReadOnly }
