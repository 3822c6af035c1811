// Package dit implements the dynamic interval tree: a mutable, AVL-balanced
// index keyed on interval endpoints that answers overlap queries and tracks
// the maximum number of simultaneously overlapping stored intervals.
package dit

import (
	"github.com/arborix/intervals/collection"
	"github.com/arborix/intervals/interval"
	"github.com/arborix/intervals/internal/avl"
	"github.com/arborix/intervals/internal/endlist"
	"github.com/arborix/intervals/internal/mno"
	"github.com/arborix/intervals/internal/span"
)

// Ref is the handle this tree stores: a pointer to a caller-owned interval,
// compared by identity.
type Ref[K interval.Comparable[K]] = collection.Ref[K]

// node is a single endpoint value reached by either a low or a high
// descent, or both. included and excluded hold the intervals whose low
// endpoint equals key, split by low_included; a node touched only by a
// high descent leaves both empty and only carries MNO deltas.
type node[K interval.Comparable[K]] struct {
	key         K
	left, right *node[K]
	height      int

	included endlist.List[K]
	excluded endlist.List[K]

	localSpan *interval.Interval[K]
	treeSpan  *interval.Interval[K]

	counters mno.Counters
}

func (n *node[K]) GetLeft() *node[K]  { return n.left }
func (n *node[K]) GetRight() *node[K] { return n.right }
func (n *node[K]) SetLeft(m *node[K]) { n.left = m }
func (n *node[K]) SetRight(m *node[K]) {
	n.right = m
}
func (n *node[K]) GetHeight() int  { return n.height }
func (n *node[K]) SetHeight(h int) { n.height = h }

// childSpan returns n's tree span, or nil for an absent child.
func childSpan[K interval.Comparable[K]](n *node[K]) *interval.Interval[K] {
	if n == nil {
		return nil
	}
	return n.treeSpan
}

// childCounters returns n's MNO counters, or the zero value for an absent
// child.
func childCounters[K interval.Comparable[K]](n *node[K]) mno.Counters {
	if n == nil {
		return mno.Counters{}
	}
	return n.counters
}

// recomputeLocalSpan folds every interval recorded at this node (both the
// included and excluded buckets) into the smallest covering interval.
func (n *node[K]) recomputeLocalSpan() {
	var acc *interval.Interval[K]
	n.included.Each(func(ref Ref[K]) { acc = span.Union(acc, ref) })
	n.excluded.Each(func(ref Ref[K]) { acc = span.Union(acc, ref) })
	n.localSpan = acc
}

// Update recomputes local_span, span, the MNO counters, and height from
// this node's own lists and its children's already up-to-date state. It is
// the aggregate-update hook the AVL machinery runs bottom-up after every
// rotation.
func (n *node[K]) Update() {
	n.recomputeLocalSpan()
	n.treeSpan = span.Union(n.localSpan, childSpan(n.left), childSpan(n.right))
	n.counters.Recompute(childCounters(n.left), childCounters(n.right))
	avl.UpdateHeight[*node[K]](n)
}

func rotateLeft[K interval.Comparable[K]](n *node[K]) *node[K] {
	return avl.RotateLeft[*node[K]](n)
}

func rotateRight[K interval.Comparable[K]](n *node[K]) *node[K] {
	return avl.RotateRight[*node[K]](n)
}

func rebalance[K interval.Comparable[K]](n *node[K]) *node[K] {
	return avl.Rebalance[*node[K]](n, rotateLeft[K], rotateRight[K])
}

// isEmpty reports whether a node carries no more information and should be
// spliced out of the tree.
func (n *node[K]) isEmpty() bool {
	return n.counters.DeltaAt == 0 &&
		n.counters.DeltaAfter == 0 &&
		n.included.IsEmpty() &&
		n.excluded.IsEmpty()
}
