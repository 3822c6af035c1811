package lcl

import (
	"sort"

	"github.com/arborix/intervals/interval"
)

// FindOverlapsPoint returns every stored interval overlapping point.
func (t *Tree[K]) FindOverlapsPoint(point K) []Ref[K] {
	return t.FindOverlapsInterval(interval.Point(point))
}

// FindOverlapsInterval returns every stored interval overlapping q. It
// walks the layers top-down: within the current window of a layer, two
// binary searches locate the first and last overlapping index, those are
// emitted in layer order, and the pointer array for that layer narrows the
// window for the next, deeper layer.
func (t *Tree[K]) FindOverlapsInterval(q interval.Interval[K]) []Ref[K] {
	var out []Ref[K]
	if len(t.layers) == 0 {
		return out
	}

	lower, upper := 0, len(t.layers[0])
	for l := 0; l < len(t.layers) && lower < upper; l++ {
		layer := t.layers[l]
		first := searchFirst(layer, lower, upper, q)
		last := searchLast(layer, lower, upper, q)
		out = append(out, layer[first:last]...)

		if l+1 >= len(t.layers) {
			break
		}
		lower, upper = t.pointers[l][first], t.pointers[l][last]
	}
	return out
}

// FindOverlap reports whether any stored interval overlaps q.
func (t *Tree[K]) FindOverlap(q interval.Interval[K]) bool {
	return t.CountOverlaps(q) > 0
}

// CountOverlaps counts the stored intervals overlapping q, summing the
// width of each layer's overlapping window without materializing it.
func (t *Tree[K]) CountOverlaps(q interval.Interval[K]) int {
	count := 0
	if len(t.layers) == 0 {
		return 0
	}

	lower, upper := 0, len(t.layers[0])
	for l := 0; l < len(t.layers) && lower < upper; l++ {
		layer := t.layers[l]
		first := searchFirst(layer, lower, upper, q)
		last := searchLast(layer, lower, upper, q)
		count += last - first

		if l+1 >= len(t.layers) {
			break
		}
		lower, upper = t.pointers[l][first], t.pointers[l][last]
	}
	return count
}

// searchFirst returns the smallest index in [lower, upper) at which
// layer[i]'s high no longer precedes q's low, i.e. the first index the
// interval could possibly reach into q. The layer is sorted ascending by
// high, so this is a plain binary search.
func searchFirst[K interval.Comparable[K]](layer []Ref[K], lower, upper int, q interval.Interval[K]) int {
	return lower + sort.Search(upper-lower, func(i int) bool {
		return interval.CompareHighLow(*layer[lower+i], q) >= 0
	})
}

// searchLast returns the smallest index in [lower, upper) at which q's high
// no longer reaches layer[i], i.e. the exclusive end of the overlapping
// run. The layer is sorted ascending by low, so this is a plain binary
// search too.
func searchLast[K interval.Comparable[K]](layer []Ref[K], lower, upper int, q interval.Interval[K]) int {
	return lower + sort.Search(upper-lower, func(i int) bool {
		return interval.CompareHighLow(q, *layer[lower+i]) < 0
	})
}

// FindOverlapsSorted returns every stored interval overlapping q, in global
// compareTo order (ascending low, then high). It follows the pointer chain
// with an explicit stack so that each parent is emitted immediately before
// the nested intervals it contains, which is what keeps the output in
// sorted order despite interleaving layers.
func (t *Tree[K]) FindOverlapsSorted(q interval.Interval[K]) []Ref[K] {
	var out []Ref[K]
	if len(t.layers) == 0 {
		return out
	}

	type frame struct{ layer, i, last int }

	first0 := searchFirst(t.layers[0], 0, len(t.layers[0]), q)
	last0 := searchLast(t.layers[0], 0, len(t.layers[0]), q)
	if first0 >= last0 {
		return out
	}

	stack := []frame{{layer: 0, i: first0, last: last0}}
	for len(stack) > 0 {
		top := len(stack) - 1
		if stack[top].i >= stack[top].last {
			stack = stack[:top]
			continue
		}

		l, i := stack[top].layer, stack[top].i
		out = append(out, t.layers[l][i])
		stack[top].i++

		if l+1 < len(t.layers) {
			childLower, childUpper := t.pointers[l][i], t.pointers[l][i+1]
			if childLower < childUpper {
				cf := searchFirst(t.layers[l+1], childLower, childUpper, q)
				cl := searchLast(t.layers[l+1], childLower, childUpper, q)
				if cf < cl {
					stack = append(stack, frame{layer: l + 1, i: cf, last: cl})
				}
			}
		}
	}
	return out
}

// findOverlapsSortedRecursive is the straightforward recursive form of
// FindOverlapsSorted: emit each matching interval, then immediately
// recurse into its nested window before moving to the next sibling. It is
// kept as a reference sketch alongside the iterative version above, which
// is the one this package relies on.
func (t *Tree[K]) findOverlapsSortedRecursive(q interval.Interval[K]) []Ref[K] {
	var out []Ref[K]
	var walk func(layer, lower, upper int)
	walk = func(layer, lower, upper int) {
		if layer >= len(t.layers) || lower >= upper {
			return
		}
		first := searchFirst(t.layers[layer], lower, upper, q)
		last := searchLast(t.layers[layer], lower, upper, q)
		for i := first; i < last; i++ {
			out = append(out, t.layers[layer][i])
			if layer+1 < len(t.layers) {
				walk(layer+1, t.pointers[layer][i], t.pointers[layer][i+1])
			}
		}
	}
	walk(0, 0, len(t.layers[0]))
	return out
}
