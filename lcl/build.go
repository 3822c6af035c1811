package lcl

import (
	"sort"

	"github.com/arborix/intervals/interval"
	"github.com/arborix/intervals/internal/span"
)

// Build constructs a layered containment list from refs.
//
// refs are first sorted by compareTo (low ascending, then high ascending).
// Each is then assigned the deepest layer it can be nested under: walking
// backward from the deepest layer currently in use, the build finds the
// deepest layer whose last-appended interval's high does not precede the
// current interval's high — meaning that interval still contains the
// current one — and places the current interval one layer below it (or at
// layer 0 if none contains it). Because each layer's last-appended high is
// never greater than the previous layer's, that search is a binary search
// over a non-increasing array rather than a linear scan.
func Build[K interval.Comparable[K]](refs ...Ref[K]) *Tree[K] {
	t := &Tree[K]{count: len(refs)}
	if len(refs) == 0 {
		return t
	}

	sorted := append([]Ref[K](nil), refs...)
	sort.Slice(sorted, func(i, j int) bool { return compareTo(*sorted[i], *sorted[j]) < 0 })

	var lastOfLayer []Ref[K]

	for _, cur := range sorted {
		layer := sort.Search(len(lastOfLayer), func(i int) bool {
			return interval.CompareHigh(*lastOfLayer[i], *cur) < 0
		})

		if layer == len(t.layers) {
			t.layers = append(t.layers, nil)
			t.pointers = append(t.pointers, nil)
			lastOfLayer = append(lastOfLayer, nil)
		}

		nextLen := 0
		if layer+1 < len(t.layers) {
			nextLen = len(t.layers[layer+1])
		}
		t.pointers[layer] = append(t.pointers[layer], nextLen)
		t.layers[layer] = append(t.layers[layer], cur)
		lastOfLayer[layer] = cur
	}

	for l := range t.layers {
		nextLen := 0
		if l+1 < len(t.layers) {
			nextLen = len(t.layers[l+1])
		}
		t.pointers[l] = append(t.pointers[l], nextLen)
	}

	if len(t.layers[0]) > 0 {
		first := t.layers[0][0]
		last := t.layers[0][len(t.layers[0])-1]
		t.treeSpan = span.Union(nil, first, last)
	}

	return t
}

// compareTo orders two intervals ascending by low, then by high, the build
// order the layering algorithm relies on.
func compareTo[K interval.Comparable[K]](a, b interval.Interval[K]) int {
	if c := interval.CompareLow(a, b); c != 0 {
		return c
	}
	return interval.CompareHigh(a, b)
}
