// Package endlist implements the endpoint-ordered interval list used by the
// dynamic interval tree to hold, at each node, the intervals whose Low
// endpoint equals the node's key. Intervals sharing an identical High
// endpoint are grouped into one bucket (compared by identity within the
// bucket); buckets are kept ordered by descending High so the list can be
// walked, or pruned, from the highest interval down.
package endlist

import (
	"sort"

	"github.com/arborix/intervals/interval"
	"github.com/arborix/intervals/internal/refset"
)

// Ref is the pointer type every index variant in this module stores:
// a handle to a caller-owned Interval, compared by identity.
type Ref[K interval.Comparable[K]] = *interval.Interval[K]

// bucket groups every Ref sharing the same High endpoint (same value, same
// inclusivity).
type bucket[K interval.Comparable[K]] struct {
	rep   interval.Interval[K]
	items *refset.Set[Ref[K]]
}

// List is a set of Refs bucketed by equal High endpoint, ordered by
// descending High.
type List[K interval.Comparable[K]] struct {
	buckets []*bucket[K]
}

// search returns the index of the first bucket whose representative is not
// strictly higher than iv, i.e. the insertion point that keeps buckets
// sorted by descending High.
func (l *List[K]) search(iv interval.Interval[K]) int {
	return sort.Search(len(l.buckets), func(i int) bool {
		return interval.CompareHigh(l.buckets[i].rep, iv) <= 0
	})
}

// Add inserts ref into the list, creating a new bucket if no existing
// bucket shares ref's High endpoint.
func (l *List[K]) Add(ref Ref[K]) {
	idx := l.search(*ref)
	if idx < len(l.buckets) && interval.CompareHigh(l.buckets[idx].rep, *ref) == 0 {
		l.buckets[idx].items.Add(ref)
		return
	}

	b := &bucket[K]{rep: *ref, items: refset.Of(ref)}
	l.buckets = append(l.buckets, nil)
	copy(l.buckets[idx+1:], l.buckets[idx:])
	l.buckets[idx] = b
}

// Contains reports whether ref is present in the list, by identity.
func (l *List[K]) Contains(ref Ref[K]) bool {
	idx := l.search(*ref)
	if idx >= len(l.buckets) || interval.CompareHigh(l.buckets[idx].rep, *ref) != 0 {
		return false
	}
	return l.buckets[idx].items.Contains(ref)
}

// Remove deletes ref from the list by identity. It reports whether ref was
// present.
func (l *List[K]) Remove(ref Ref[K]) bool {
	idx := l.search(*ref)
	if idx >= len(l.buckets) || interval.CompareHigh(l.buckets[idx].rep, *ref) != 0 {
		return false
	}
	if !l.buckets[idx].items.Remove(ref) {
		return false
	}
	if l.buckets[idx].items.Len() == 0 {
		l.buckets = append(l.buckets[:idx], l.buckets[idx+1:]...)
	}
	return true
}

// IsEmpty reports whether the list holds no intervals.
func (l *List[K]) IsEmpty() bool {
	return len(l.buckets) == 0
}

// Len returns the total number of intervals held across all buckets.
func (l *List[K]) Len() int {
	n := 0
	for _, b := range l.buckets {
		n += b.items.Len()
	}
	return n
}

// Highest returns an arbitrary interval from the bucket with the greatest
// High endpoint. ok is false when the list is empty.
func (l *List[K]) Highest() (ref Ref[K], ok bool) {
	if len(l.buckets) == 0 {
		return ref, false
	}
	return l.buckets[0].items.Choose()
}

// HighestInterval returns the representative interval of the list's
// highest bucket, used by callers that need the bound without an item.
func (l *List[K]) HighestInterval() (iv interval.Interval[K], ok bool) {
	if len(l.buckets) == 0 {
		return iv, false
	}
	return l.buckets[0].rep, true
}

// Each calls fn for every interval in the list, from the highest bucket
// down.
func (l *List[K]) Each(fn func(Ref[K])) {
	for _, b := range l.buckets {
		b.items.Each(fn)
	}
}

// FindOverlaps appends to out every interval held in the prefix of buckets
// (highest High first) whose representative overlaps q, stopping at the
// first bucket that does not: since buckets are ordered by descending
// High, no later bucket can overlap q either.
//
// Every interval in the list shares the same Low endpoint (the owning
// node's key), so a single check against the list's own highest bucket
// covers the "q reaches this Low" side of the overlap test up front;
// the per-bucket loop then only needs the complementary "this High
// reaches q's Low" side.
func (l *List[K]) FindOverlaps(q interval.Interval[K], out []Ref[K]) []Ref[K] {
	if len(l.buckets) == 0 {
		return out
	}
	if interval.CompareHighLow(q, l.buckets[0].rep) < 0 {
		return out
	}
	for _, b := range l.buckets {
		if interval.CompareHighLow(b.rep, q) < 0 {
			break
		}
		b.items.Each(func(ref Ref[K]) { out = append(out, ref) })
	}
	return out
}
