package ibs

import (
	"github.com/arborix/intervals/collection"
	"github.com/arborix/intervals/interval"
	"github.com/arborix/intervals/internal/refset"
)

// Tree is the interval binary search tree: an AVL-balanced index over
// every stored interval's endpoints, where each node additionally
// classifies every interval crossing it into a less, equal, or greater
// set. Unlike the dynamic interval tree, it never stores the same
// reference twice.
type Tree[K interval.Comparable[K]] struct {
	root    *node[K]
	count   int
	present refset.Set[Ref[K]]
}

// New returns an empty interval binary search tree.
func New[K interval.Comparable[K]]() *Tree[K] {
	return &Tree[K]{}
}

// FromSlice builds a tree by adding every interval in refs in order,
// silently skipping any that repeat a reference already added.
func FromSlice[K interval.Comparable[K]](refs ...Ref[K]) *Tree[K] {
	t := New[K]()
	t.AddAll(refs...)
	return t
}

// AllowsReferenceDuplicates always reports false: this tree rejects a
// second Add of a reference already present, regardless of caller intent.
func (t *Tree[K]) AllowsReferenceDuplicates() bool { return false }

// Count returns the number of intervals stored.
func (t *Tree[K]) Count() int { return t.count }

// IsEmpty reports whether the tree holds no intervals.
func (t *Tree[K]) IsEmpty() bool { return t.count == 0 }

// Clear removes every stored interval.
func (t *Tree[K]) Clear() {
	t.root = nil
	t.count = 0
	t.present = refset.Set[Ref[K]]{}
}

// Add stores ref. It returns false when ref is already present by
// identity: this tree never holds a reference duplicate.
func (t *Tree[K]) Add(ref Ref[K]) bool {
	if t.present.Contains(ref) {
		return false
	}

	t.root = insertLowEnd(t.root, ref)
	t.root = insertHighEnd(t.root, ref)
	place(t.root, ref)

	t.present.Add(ref)
	t.count++
	return true
}

// AddAll adds every ref in refs, in order.
func (t *Tree[K]) AddAll(refs ...Ref[K]) {
	for _, ref := range refs {
		t.Add(ref)
	}
}

// Remove deletes ref, by identity. It reports whether ref was present.
//
// Removal first retraces ref's own less/equal/greater placement and
// clears it, then splices its endpoint nodes out of the tree if they hold
// nothing else. Splicing a node (directly, or via an in-order successor
// key swap) invalidates the less/equal/greater membership of every other
// interval recorded at the affected node or nodes, since that membership
// was computed against a key that no longer holds there: every such
// reference is collected before the splice, and re-placed against the
// tree's final shape afterward.
func (t *Tree[K]) Remove(ref Ref[K]) bool {
	if !t.present.Contains(ref) {
		return false
	}

	unplace(t.root, ref)

	var orphans []Ref[K]
	t.root = removeLowEnd(t.root, ref, &orphans)
	t.root = removeHighEnd(t.root, ref, &orphans)

	for _, orphan := range orphans {
		place(t.root, orphan)
	}

	t.present.Remove(ref)
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
	if ref, ok := n.ending.Choose(); ok {
		return ref, true
	}
	if ref, ok := chooseFrom(n.left); ok {
		return ref, true
	}
	return chooseFrom(n.right)
}

func insertLowEnd[K interval.Comparable[K]](n *node[K], ref Ref[K]) *node[K] {
	if n == nil {
		n = &node[K]{key: ref.Low}
		applyLowEnd(n, ref)
		return rebalance(n)
	}
	switch c := ref.Low.Compare(n.key); {
	case c < 0:
		n.left = insertLowEnd(n.left, ref)
	case c > 0:
		n.right = insertLowEnd(n.right, ref)
	default:
		applyLowEnd(n, ref)
	}
	return rebalance(n)
}

func insertHighEnd[K interval.Comparable[K]](n *node[K], ref Ref[K]) *node[K] {
	if n == nil {
		n = &node[K]{key: ref.High}
		applyHighEnd(n, ref)
		return rebalance(n)
	}
	switch c := ref.High.Compare(n.key); {
	case c < 0:
		n.left = insertHighEnd(n.left, ref)
	case c > 0:
		n.right = insertHighEnd(n.right, ref)
	default:
		applyHighEnd(n, ref)
	}
	return rebalance(n)
}

// applyLowEnd records ref's contribution at its own Low endpoint node:
// membership in ending, the set iterated for span and Choose, plus the
// MNO delta for that endpoint.
func applyLowEnd[K interval.Comparable[K]](n *node[K], ref Ref[K]) {
	n.ending.Add(ref)
	if ref.LowIncluded {
		n.counters.DeltaAt++
	} else {
		n.counters.DeltaAfter++
	}
}

// applyHighEnd records ref's MNO delta at its own High endpoint node. High
// endpoints never join ending: ref's own Low node already accounts for its
// full span there.
func applyHighEnd[K interval.Comparable[K]](n *node[K], ref Ref[K]) {
	if ref.HighIncluded {
		n.counters.DeltaAfter--
	} else {
		n.counters.DeltaAt--
	}
}

func undoLowEnd[K interval.Comparable[K]](n *node[K], ref Ref[K]) {
	n.ending.Remove(ref)
	if ref.LowIncluded {
		n.counters.DeltaAt--
	} else {
		n.counters.DeltaAfter--
	}
}

func undoHighEnd[K interval.Comparable[K]](n *node[K], ref Ref[K]) {
	if ref.HighIncluded {
		n.counters.DeltaAfter++
	} else {
		n.counters.DeltaAt++
	}
}

func removeLowEnd[K interval.Comparable[K]](n *node[K], ref Ref[K], orphans *[]Ref[K]) *node[K] {
	if n == nil {
		return nil
	}
	switch c := ref.Low.Compare(n.key); {
	case c < 0:
		n.left = removeLowEnd(n.left, ref, orphans)
		return rebalance(n)
	case c > 0:
		n.right = removeLowEnd(n.right, ref, orphans)
		return rebalance(n)
	default:
		undoLowEnd(n, ref)
		if n.isEmpty() {
			return deleteNode(n, orphans)
		}
		return rebalance(n)
	}
}

func removeHighEnd[K interval.Comparable[K]](n *node[K], ref Ref[K], orphans *[]Ref[K]) *node[K] {
	if n == nil {
		return nil
	}
	switch c := ref.High.Compare(n.key); {
	case c < 0:
		n.left = removeHighEnd(n.left, ref, orphans)
		return rebalance(n)
	case c > 0:
		n.right = removeHighEnd(n.right, ref, orphans)
		return rebalance(n)
	default:
		undoHighEnd(n, ref)
		if n.isEmpty() {
			return deleteNode(n, orphans)
		}
		return rebalance(n)
	}
}

// deleteNode splices n out of the tree, swapping it with its in-order
// successor when it has two children. Before any structural change, every
// reference held in the less/equal/greater sets of n (and, on a two-child
// splice, of the successor) is collected into orphans: those memberships
// were computed against a key arrangement that the splice is about to
// invalidate.
func deleteNode[K interval.Comparable[K]](n *node[K], orphans *[]Ref[K]) *node[K] {
	collectLEG(n, orphans)

	if n.left == nil {
		return n.right
	}
	if n.right == nil {
		return n.left
	}

	succ := leftmost(n.right)
	collectLEG(succ, orphans)

	n.key = succ.key
	n.ending = succ.ending
	n.counters.DeltaAt = succ.counters.DeltaAt
	n.counters.DeltaAfter = succ.counters.DeltaAfter
	n.less = refset.Set[Ref[K]]{}
	n.equal = refset.Set[Ref[K]]{}
	n.greater = refset.Set[Ref[K]]{}

	n.right = deleteLeftmost(n.right, orphans)
	return rebalance(n)
}

func leftmost[K interval.Comparable[K]](n *node[K]) *node[K] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// deleteLeftmost splices out the leftmost node of the subtree rooted at
// n, which the caller has already identified as the successor and
// collected into orphans.
func deleteLeftmost[K interval.Comparable[K]](n *node[K], orphans *[]Ref[K]) *node[K] {
	if n.left == nil {
		return n.right
	}
	n.left = deleteLeftmost(n.left, orphans)
	return rebalance(n)
}
