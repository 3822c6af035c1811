package dit

import (
	"github.com/arborix/intervals/collection"
	"github.com/arborix/intervals/interval"
)

// Tree is the dynamic interval tree: an AVL-balanced index over a single
// combined tree of low and high endpoints, supporting insertion, removal,
// and overlap queries against the stored intervals.
type Tree[K interval.Comparable[K]] struct {
	root        *node[K]
	count       int
	allowRefDup bool

	// active tracks, per caller-supplied ref, the stack of distinct
	// pointers actually installed in the tree structures for it. The
	// first occurrence installs ref itself; every further Add of the
	// same ref is only accepted when allowRefDup is set, and installs a
	// freshly allocated shadow copy so the identity-keyed containers
	// never have to hold one pointer twice.
	active map[Ref[K]][]Ref[K]
}

// New returns an empty dynamic interval tree. allowRefDup controls whether
// the exact same interval pointer may be added more than once and counted
// as separate occurrences.
func New[K interval.Comparable[K]](allowRefDup bool) *Tree[K] {
	return &Tree[K]{allowRefDup: allowRefDup, active: make(map[Ref[K]][]Ref[K])}
}

// FromSlice builds a tree by adding every interval in refs in order.
func FromSlice[K interval.Comparable[K]](allowRefDup bool, refs ...Ref[K]) *Tree[K] {
	t := New[K](allowRefDup)
	t.AddAll(refs...)
	return t
}

// AllowsReferenceDuplicates reports whether the same pointer can be added
// more than once.
func (t *Tree[K]) AllowsReferenceDuplicates() bool { return t.allowRefDup }

// Count returns the number of intervals stored, counted by identity of the
// original ref argument (a reference duplicate counts once per Add call).
func (t *Tree[K]) Count() int { return t.count }

// IsEmpty reports whether the tree holds no intervals.
func (t *Tree[K]) IsEmpty() bool { return t.count == 0 }

// Clear removes every stored interval.
func (t *Tree[K]) Clear() {
	t.root = nil
	t.count = 0
	t.active = make(map[Ref[K]][]Ref[K])
}

// Add stores ref, performing the low and high endpoint descents described
// for this tree. It returns false when ref is already present by identity
// and the tree does not allow reference duplicates.
func (t *Tree[K]) Add(ref Ref[K]) bool {
	actual := ref
	if _, exists := t.active[ref]; exists {
		if !t.allowRefDup {
			return false
		}
		shadow := *ref
		actual = &shadow
	}

	var added bool
	t.root, added = insertLow(t.root, actual)
	if !added {
		// actual is a fresh identity (either ref's first occurrence, or a
		// newly allocated shadow), so the low descent always succeeds.
		panic("dit: unreachable duplicate on fresh identity")
	}
	t.root = insertHigh(t.root, actual)

	t.active[ref] = append(t.active[ref], actual)
	t.count++
	return true
}

// AddAll adds every ref in refs, in order.
func (t *Tree[K]) AddAll(refs ...Ref[K]) {
	for _, ref := range refs {
		t.Add(ref)
	}
}

// Remove deletes the most recently added occurrence of ref, by identity. It
// reports whether ref was present.
func (t *Tree[K]) Remove(ref Ref[K]) bool {
	stack, exists := t.active[ref]
	if !exists || len(stack) == 0 {
		return false
	}
	actual := stack[len(stack)-1]

	var removed bool
	t.root, removed = removeLow(t.root, actual)
	if !removed {
		return false
	}
	t.root = removeHigh(t.root, actual)

	stack = stack[:len(stack)-1]
	if len(stack) == 0 {
		delete(t.active, ref)
	} else {
		t.active[ref] = stack
	}
	t.count--
	return true
}

// Span returns the smallest interval covering every stored interval. It
// fails with collection.ErrEmpty when the tree holds nothing.
func (t *Tree[K]) Span() (interval.Interval[K], error) {
	if t.root == nil {
		var zero interval.Interval[K]
		return zero, collection.ErrEmpty
	}
	return *t.root.treeSpan, nil
}

// MaximumOverlap returns the largest number of stored intervals
// simultaneously covering any point.
func (t *Tree[K]) MaximumOverlap() int {
	if t.root == nil {
		return 0
	}
	return t.root.counters.Max
}

// Choose returns an arbitrary stored interval. It fails with
// collection.ErrEmpty when the tree holds nothing.
func (t *Tree[K]) Choose() (Ref[K], error) {
	ref, ok := chooseFrom(t.root)
	if !ok {
		return nil, collection.ErrEmpty
	}
	return ref, nil
}

func chooseFrom[K interval.Comparable[K]](n *node[K]) (Ref[K], bool) {
	if n == nil {
		return nil, false
	}
	if ref, ok := n.included.Highest(); ok {
		return ref, true
	}
	if ref, ok := n.excluded.Highest(); ok {
		return ref, true
	}
	if ref, ok := chooseFrom(n.left); ok {
		return ref, true
	}
	return chooseFrom(n.right)
}

func insertLow[K interval.Comparable[K]](n *node[K], ref Ref[K]) (*node[K], bool) {
	if n == nil {
		n = &node[K]{key: ref.Low}
		applyLow(n, ref)
		return rebalance(n), true
	}
	switch c := ref.Low.Compare(n.key); {
	case c < 0:
		added := false
		n.left, added = insertLow(n.left, ref)
		return rebalance(n), added
	case c > 0:
		added := false
		n.right, added = insertLow(n.right, ref)
		return rebalance(n), added
	default:
		if n.containsLow(ref) {
			return n, false
		}
		applyLow(n, ref)
		return rebalance(n), true
	}
}

func insertHigh[K interval.Comparable[K]](n *node[K], ref Ref[K]) *node[K] {
	if n == nil {
		n = &node[K]{key: ref.High}
		applyHigh(n, ref)
		return rebalance(n)
	}
	switch c := ref.High.Compare(n.key); {
	case c < 0:
		n.left = insertHigh(n.left, ref)
	case c > 0:
		n.right = insertHigh(n.right, ref)
	default:
		applyHigh(n, ref)
	}
	return rebalance(n)
}

func applyLow[K interval.Comparable[K]](n *node[K], ref Ref[K]) {
	if ref.LowIncluded {
		n.included.Add(ref)
		n.counters.DeltaAt++
	} else {
		n.excluded.Add(ref)
		n.counters.DeltaAfter++
	}
}

func applyHigh[K interval.Comparable[K]](n *node[K], ref Ref[K]) {
	if ref.HighIncluded {
		n.counters.DeltaAfter--
	} else {
		n.counters.DeltaAt--
	}
}

func (n *node[K]) containsLow(ref Ref[K]) bool {
	if ref.LowIncluded {
		return n.included.Contains(ref)
	}
	return n.excluded.Contains(ref)
}

func removeLow[K interval.Comparable[K]](n *node[K], ref Ref[K]) (*node[K], bool) {
	if n == nil {
		return nil, false
	}
	switch c := ref.Low.Compare(n.key); {
	case c < 0:
		removed := false
		n.left, removed = removeLow(n.left, ref)
		return rebalance(n), removed
	case c > 0:
		removed := false
		n.right, removed = removeLow(n.right, ref)
		return rebalance(n), removed
	default:
		if !undoLow(n, ref) {
			return rebalance(n), false
		}
		if n.isEmpty() {
			return deleteNode(n), true
		}
		return rebalance(n), true
	}
}

func removeHigh[K interval.Comparable[K]](n *node[K], ref Ref[K]) *node[K] {
	if n == nil {
		return nil
	}
	switch c := ref.High.Compare(n.key); {
	case c < 0:
		n.left = removeHigh(n.left, ref)
		return rebalance(n)
	case c > 0:
		n.right = removeHigh(n.right, ref)
		return rebalance(n)
	default:
		if ref.HighIncluded {
			n.counters.DeltaAfter++
		} else {
			n.counters.DeltaAt++
		}
		if n.isEmpty() {
			return deleteNode(n)
		}
		return rebalance(n)
	}
}

func undoLow[K interval.Comparable[K]](n *node[K], ref Ref[K]) bool {
	if ref.LowIncluded {
		if !n.included.Remove(ref) {
			return false
		}
		n.counters.DeltaAt--
	} else {
		if !n.excluded.Remove(ref) {
			return false
		}
		n.counters.DeltaAfter--
	}
	return true
}

// deleteNode splices n out of the tree, swapping it with its in-order
// successor when it has two children. The successor's key, lists, and
// local deltas are copied onto n, but not its child pointers, matching the
// standard AVL two-child deletion.
func deleteNode[K interval.Comparable[K]](n *node[K]) *node[K] {
	if n.left == nil {
		return n.right
	}
	if n.right == nil {
		return n.left
	}

	succ := leftmost(n.right)
	n.key = succ.key
	n.included = succ.included
	n.excluded = succ.excluded
	n.counters.DeltaAt = succ.counters.DeltaAt
	n.counters.DeltaAfter = succ.counters.DeltaAfter

	n.right = deleteLeftmost(n.right)
	return rebalance(n)
}

func leftmost[K interval.Comparable[K]](n *node[K]) *node[K] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func deleteLeftmost[K interval.Comparable[K]](n *node[K]) *node[K] {
	if n.left == nil {
		return n.right
	}
	n.left = deleteLeftmost(n.left)
	return rebalance(n)
}
