package dit

import (
	"iter"

	"github.com/arborix/intervals/interval"
)

// FindOverlapsPoint returns every stored interval overlapping point.
func (t *Tree[K]) FindOverlapsPoint(point K) []Ref[K] {
	return t.FindOverlapsInterval(interval.Point(point))
}

// FindOverlapsInterval returns every stored interval overlapping q.
func (t *Tree[K]) FindOverlapsInterval(q interval.Interval[K]) []Ref[K] {
	return findOverlaps(t.root, q, nil)
}

// FindOverlap reports whether any stored interval overlaps q.
func (t *Tree[K]) FindOverlap(q interval.Interval[K]) bool {
	return hasOverlap(t.root, q)
}

// CountOverlaps counts the stored intervals overlapping q.
func (t *Tree[K]) CountOverlaps(q interval.Interval[K]) int {
	return len(t.FindOverlapsInterval(q))
}

// findOverlaps walks the tree pruning each child by its span before
// descending into it: a child is only visited when its span overlaps q, so
// subtrees with no chance of holding a matching interval are skipped
// entirely. At each visited node, both local lists contribute their own
// prefix via endlist's own high-ordered pruning.
func findOverlaps[K interval.Comparable[K]](n *node[K], q interval.Interval[K], out []Ref[K]) []Ref[K] {
	if n == nil {
		return out
	}
	if n.left != nil && n.left.treeSpan != nil && interval.Overlaps(*n.left.treeSpan, q) {
		out = findOverlaps(n.left, q, out)
	}
	out = n.included.FindOverlaps(q, out)
	out = n.excluded.FindOverlaps(q, out)
	if n.right != nil && n.right.treeSpan != nil && interval.Overlaps(*n.right.treeSpan, q) {
		out = findOverlaps(n.right, q, out)
	}
	return out
}

func hasOverlap[K interval.Comparable[K]](n *node[K], q interval.Interval[K]) bool {
	if n == nil {
		return false
	}
	if n.left != nil && n.left.treeSpan != nil && interval.Overlaps(*n.left.treeSpan, q) && hasOverlap(n.left, q) {
		return true
	}
	if len(n.included.FindOverlaps(q, nil)) > 0 || len(n.excluded.FindOverlaps(q, nil)) > 0 {
		return true
	}
	if n.right != nil && n.right.treeSpan != nil && interval.Overlaps(*n.right.treeSpan, q) && hasOverlap(n.right, q) {
		return true
	}
	return false
}

// All iterates every stored interval in ascending-key order, using an
// explicit stack sized to the tree's height rather than recursion, so
// iteration never materializes the whole collection.
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
			n.included.Each(func(ref Ref[K]) {
				if !stop && !yield(ref) {
					stop = true
				}
			})
			if !stop {
				n.excluded.Each(func(ref Ref[K]) {
					if !stop && !yield(ref) {
						stop = true
					}
				})
			}
			if stop {
				return
			}
			n = n.right
		}
	}
}
