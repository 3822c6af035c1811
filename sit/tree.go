package sit

import (
	"iter"

	"github.com/arborix/intervals/collection"
	"github.com/arborix/intervals/interval"
)

// Tree is the static interval tree: an immutable median-split tree built
// once from a batch of intervals. It supports overlap queries only; every
// mutating method fails with collection.ErrReadOnly.
type Tree[K interval.Comparable[K]] struct {
	root     *node[K]
	treeSpan *interval.Interval[K]
	count    int
}

// Count returns the number of intervals stored.
func (t *Tree[K]) Count() int { return t.count }

// IsEmpty reports whether the tree holds no intervals.
func (t *Tree[K]) IsEmpty() bool { return t.count == 0 }

// Span returns the smallest interval covering every stored interval. It
// fails with collection.ErrEmpty when the tree holds nothing.
func (t *Tree[K]) Span() (interval.Interval[K], error) {
	if t.treeSpan == nil {
		var zero interval.Interval[K]
		return zero, collection.ErrEmpty
	}
	return *t.treeSpan, nil
}

// Choose returns an arbitrary stored interval. It fails with
// collection.ErrEmpty when the tree holds nothing.
func (t *Tree[K]) Choose() (Ref[K], error) {
	if t.root == nil {
		return nil, collection.ErrEmpty
	}
	n := t.root
	for len(n.leftList) == 0 {
		switch {
		case n.left != nil:
			n = n.left
		case n.right != nil:
			n = n.right
		default:
			return nil, collection.ErrEmpty
		}
	}
	return n.leftList[0], nil
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

// All iterates every stored interval in no particular order, using an
// explicit stack rather than recursion.
func (t *Tree[K]) All() iter.Seq[Ref[K]] {
	return func(yield func(Ref[K]) bool) {
		if t.root == nil {
			return
		}
		stack := []*node[K]{t.root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			for _, ref := range n.leftList {
				if !yield(ref) {
					return
				}
			}
			if n.left != nil {
				stack = append(stack, n.left)
			}
			if n.right != nil {
				stack = append(stack, n.right)
			}
		}
	}
}
