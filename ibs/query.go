package ibs

import (
	"iter"

	"github.com/arborix/intervals/interval"
	"github.com/arborix/intervals/internal/refset"
)

// FindOverlapsPoint returns every stored interval overlapping point,
// walking the binary search path toward point and consulting the less,
// equal, or greater set at each node passed along the way: any interval
// containing point must carry an equal entry at some node on this path,
// and any less/greater entry reaching across toward point is caught by an
// explicit overlap check rather than assumed.
func (t *Tree[K]) FindOverlapsPoint(p K) []Ref[K] {
	var out []Ref[K]
	var seen refset.Set[Ref[K]]
	n := t.root
	for n != nil {
		out = appendIfOverlapsPoint(n.equal, p, &seen, out)
		switch cmp := n.key.Compare(p); {
		case cmp == 0:
			return out
		case cmp > 0:
			out = appendIfOverlapsPoint(n.less, p, &seen, out)
			n = n.left
		default:
			out = appendIfOverlapsPoint(n.greater, p, &seen, out)
			n = n.right
		}
	}
	return out
}

// appendIfOverlapsPoint appends the members of s that overlap p and are not
// yet in seen, so a ref held at several nodes of the path is reported once.
func appendIfOverlapsPoint[K interval.Comparable[K]](s refset.Set[Ref[K]], p K, seen *refset.Set[Ref[K]], out []Ref[K]) []Ref[K] {
	s.Each(func(ref Ref[K]) {
		if interval.OverlapsPoint(*ref, p) && seen.Add(ref) {
			out = append(out, ref)
		}
	})
	return out
}

// FindOverlapsInterval returns every stored interval overlapping q. Unlike
// the point query, it does not attempt to prune by less/equal/greater
// membership: generalizing the windowed overlap test to an arbitrary query
// interval while keeping it provably correct would need a second
// structure tracking each bucket's own endpoint order (as endlist does for
// the dynamic interval tree), which this index does not keep. Instead it
// walks every endpoint node once, in key order, and tests the single
// interval recorded in its ending set against q; since every stored
// reference has exactly one ending entry, at its own Low endpoint node,
// this visits each stored interval exactly once.
func (t *Tree[K]) FindOverlapsInterval(q interval.Interval[K]) []Ref[K] {
	var out []Ref[K]
	return collectRange(t.root, q, out)
}

func collectRange[K interval.Comparable[K]](n *node[K], q interval.Interval[K], out []Ref[K]) []Ref[K] {
	if n == nil {
		return out
	}
	out = collectRange(n.left, q, out)
	n.ending.Each(func(ref Ref[K]) {
		if interval.Overlaps(*ref, q) {
			out = append(out, ref)
		}
	})
	out = collectRange(n.right, q, out)
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
	if hasOverlap(n.left, q) {
		return true
	}
	found := false
	n.ending.Each(func(ref Ref[K]) {
		if !found && interval.Overlaps(*ref, q) {
			found = true
		}
	})
	if found {
		return true
	}
	return hasOverlap(n.right, q)
}

// CountOverlaps counts the stored intervals overlapping q.
func (t *Tree[K]) CountOverlaps(q interval.Interval[K]) int {
	return len(t.FindOverlapsInterval(q))
}

// All iterates every stored interval in ascending-Low order, using an
// explicit stack sized to the tree's height rather than recursion.
func (t *Tree[K]) All() iter.Seq[Ref[K]] {
	return func(yield func(Ref[K]) bool) {
		if t.root == nil {
			return
		}
		stack := make([]*node[K], 0, t.root.height+2)
		n := t.root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			stop := false
			n.ending.Each(func(ref Ref[K]) {
				if !stop && !yield(ref) {
					stop = true
				}
			})
			if stop {
				return
			}
			n = n.right
		}
	}
}
