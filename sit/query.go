package sit

import (
	"github.com/arborix/intervals/interval"
	iclassify "github.com/arborix/intervals/internal/classify"
)

// FindOverlapsPoint returns every stored interval overlapping point.
func (t *Tree[K]) FindOverlapsPoint(point K) []Ref[K] {
	return t.FindOverlapsInterval(interval.Point(point))
}

// FindOverlapsInterval returns every stored interval overlapping q. It
// walks toward the split node — the highest node whose key lies in q —
// filtering each visited node's straddling list against q directly rather
// than relying on the sorted-prefix early exit the tree's own ordering
// would allow: a correctness-first simplification over the binary-search
// windowing the node's ascending/descending lists are built to support.
func (t *Tree[K]) FindOverlapsInterval(q interval.Interval[K]) []Ref[K] {
	var out []Ref[K]
	return collect(t.root, q, out)
}

func collect[K interval.Comparable[K]](n *node[K], q interval.Interval[K], out []Ref[K]) []Ref[K] {
	if n == nil {
		return out
	}
	switch iclassify.Of(n.key, q) {
	case 0:
		for _, ref := range n.leftList {
			if interval.Overlaps(*ref, q) {
				out = append(out, ref)
			}
		}
		out = collect(n.left, q, out)
		out = collect(n.right, q, out)
	case -1:
		for _, ref := range n.rightList {
			if interval.Overlaps(*ref, q) {
				out = append(out, ref)
			}
		}
		out = collect(n.right, q, out)
	default:
		for _, ref := range n.leftList {
			if interval.Overlaps(*ref, q) {
				out = append(out, ref)
			}
		}
		out = collect(n.left, q, out)
	}
	return out
}

// FindOverlap reports whether any stored interval overlaps q.
func (t *Tree[K]) FindOverlap(q interval.Interval[K]) bool {
	return hasOverlap(t.root, q)
}

func hasOverlap[K interval.Comparable[K]](n *node[K], q interval.Interval[K]) bool {
	if n == nil {
		return false
	}
	switch iclassify.Of(n.key, q) {
	case 0:
		for _, ref := range n.leftList {
			if interval.Overlaps(*ref, q) {
				return true
			}
		}
		return hasOverlap(n.left, q) || hasOverlap(n.right, q)
	case -1:
		for _, ref := range n.rightList {
			if interval.Overlaps(*ref, q) {
				return true
			}
		}
		return hasOverlap(n.right, q)
	default:
		for _, ref := range n.leftList {
			if interval.Overlaps(*ref, q) {
				return true
			}
		}
		return hasOverlap(n.left, q)
	}
}

// CountOverlaps counts the stored intervals overlapping q.
func (t *Tree[K]) CountOverlaps(q interval.Interval[K]) int {
	return len(t.FindOverlapsInterval(q))
}
