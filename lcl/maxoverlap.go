package lcl

import (
	"container/heap"
	"sort"

	"github.com/arborix/intervals/interval"
)

// MaximumOverlap returns the largest number of stored intervals that share
// a common point. It is computed lazily on first call and cached.
func (t *Tree[K]) MaximumOverlap() int {
	t.computeMaxOverlap()
	return t.maxOverlap
}

// MaximumOverlapSpan returns the interval that witnesses MaximumOverlap:
// the smallest point range over which that many intervals all overlap. It
// fails with collection.ErrEmpty-equivalent behaviour by returning the zero
// value when the index holds nothing.
func (t *Tree[K]) MaximumOverlapSpan() (interval.Interval[K], bool) {
	t.computeMaxOverlap()
	if t.maxOverlapSpan == nil {
		var zero interval.Interval[K]
		return zero, false
	}
	return *t.maxOverlapSpan, true
}

// computeMaxOverlap makes a single sorted pass over every stored interval,
// feeding a min-heap keyed on high: each interval is pushed, then entries
// whose high no longer reaches the current interval's low are popped off.
// The heap's size after each push is the number of intervals simultaneously
// live at that point, and its peak is the maximum overlap; the witness
// span runs from the current interval's low to the high of whatever is
// left at the root of the heap at that peak.
func (t *Tree[K]) computeMaxOverlap() {
	if t.maxOverlapDone {
		return
	}
	t.maxOverlapDone = true

	all := make([]Ref[K], 0, t.count)
	for _, layer := range t.layers {
		all = append(all, layer...)
	}
	sort.Slice(all, func(i, j int) bool { return compareTo(*all[i], *all[j]) < 0 })

	h := &highHeap[K]{}
	for _, cur := range all {
		for h.Len() > 0 && interval.CompareHighLow((*h)[0], *cur) < 0 {
			heap.Pop(h)
		}
		heap.Push(h, *cur)

		if h.Len() > t.maxOverlap {
			t.maxOverlap = h.Len()
			witness := interval.New(cur.Low, (*h)[0].High, cur.LowIncluded, (*h)[0].HighIncluded)
			t.maxOverlapSpan = &witness
		}
	}
}

// highHeap is a container/heap min-heap of intervals ordered by high
// endpoint, used only to track which intervals are still live as the
// sorted pass advances.
type highHeap[K interval.Comparable[K]] []interval.Interval[K]

func (h highHeap[K]) Len() int { return len(h) }
func (h highHeap[K]) Less(i, j int) bool {
	return interval.CompareHigh(h[i], h[j]) < 0
}
func (h highHeap[K]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *highHeap[K]) Push(x any) {
	*h = append(*h, x.(interval.Interval[K]))
}

func (h *highHeap[K]) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}
