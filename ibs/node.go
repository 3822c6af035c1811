// Package ibs implements Hanson and Chaabouni's interval binary search
// tree: an AVL-balanced index that classifies every stored interval into
// the Less, Equal, or Greater set of each node it crosses, answering
// overlap queries and tracking the maximum simultaneous overlap depth.
package ibs

import (
	"github.com/arborix/intervals/collection"
	"github.com/arborix/intervals/interval"
	"github.com/arborix/intervals/internal/avl"
	iclassify "github.com/arborix/intervals/internal/classify"
	"github.com/arborix/intervals/internal/mno"
	"github.com/arborix/intervals/internal/refset"
	"github.com/arborix/intervals/internal/span"
)

// Ref is the handle this tree stores: a pointer to a caller-owned interval,
// compared by identity.
type Ref[K interval.Comparable[K]] = collection.Ref[K]

// node is a single endpoint value. less, equal, and greater hold the other
// stored intervals that cross this node's key from below, at, or above it,
// per the IBS invariants; ending holds the intervals whose own Low endpoint
// equals key. An interval is not recorded in ending at the node of its High
// endpoint.
type node[K interval.Comparable[K]] struct {
	key         K
	left, right *node[K]
	height      int

	less, equal, greater refset.Set[Ref[K]]
	ending               refset.Set[Ref[K]]

	localSpan *interval.Interval[K]
	treeSpan  *interval.Interval[K]

	counters mno.Counters
}

func (n *node[K]) GetLeft() *node[K]  { return n.left }
func (n *node[K]) GetRight() *node[K] { return n.right }
func (n *node[K]) SetLeft(m *node[K])  { n.left = m }
func (n *node[K]) SetRight(m *node[K]) { n.right = m }
func (n *node[K]) GetHeight() int      { return n.height }
func (n *node[K]) SetHeight(h int) { n.height = h }

func childSpan[K interval.Comparable[K]](n *node[K]) *interval.Interval[K] {
	if n == nil {
		return nil
	}
	return n.treeSpan
}

func childCounters[K interval.Comparable[K]](n *node[K]) mno.Counters {
	if n == nil {
		return mno.Counters{}
	}
	return n.counters
}

func (n *node[K]) recomputeLocalSpan() {
	var acc *interval.Interval[K]
	n.ending.Each(func(ref Ref[K]) { acc = span.Union(acc, ref) })
	n.localSpan = acc
}

// Update recomputes local_span, span, the MNO counters, and height. It does
// not touch less/equal/greater: their rebucketing is performed explicitly
// by the rotation and placement logic, and never affects span or MNO.
func (n *node[K]) Update() {
	n.recomputeLocalSpan()
	n.treeSpan = span.Union(n.localSpan, childSpan(n.left), childSpan(n.right))
	n.counters.Recompute(childCounters(n.left), childCounters(n.right))
	avl.UpdateHeight[*node[K]](n)
}

// classify reports how key relates to iv: 0 if key lies within iv, -1 if
// key precedes iv entirely, +1 if key follows iv entirely. It is used to
// place a stored interval into less/equal/greater; the point query compares
// node keys with the query point directly.
func classify[K interval.Comparable[K]](key K, iv interval.Interval[K]) int {
	return iclassify.Of(key, iv)
}

// ibsRotateLeft performs a left rotation around p, applying the IBS
// rebucketing described for this tree before the aggregate-update hook
// runs: p's greater set is folded into c's greater and equal sets, c's
// less set is moved into p's greater set where not already duplicated,
// and any interval already present in c's less set is dropped from p's
// equal and less sets, since it no longer crosses p.
func ibsRotateLeft[K interval.Comparable[K]](p *node[K]) *node[K] {
	c := p.right

	p.greater.Each(func(ref Ref[K]) {
		c.greater.Add(ref)
		c.equal.Add(ref)
	})
	refset.MoveMissing(&p.greater, &c.less)
	p.equal.RemoveAll(&c.less)
	p.less.RemoveAll(&c.less)

	p.right = c.left
	c.left = p
	p.Update()
	c.Update()
	return c
}

// ibsRotateRight is the mirror of ibsRotateLeft.
func ibsRotateRight[K interval.Comparable[K]](p *node[K]) *node[K] {
	c := p.left

	p.less.Each(func(ref Ref[K]) {
		c.less.Add(ref)
		c.equal.Add(ref)
	})
	refset.MoveMissing(&p.less, &c.greater)
	p.equal.RemoveAll(&c.greater)
	p.greater.RemoveAll(&c.greater)

	p.left = c.right
	c.right = p
	p.Update()
	c.Update()
	return c
}

func rebalance[K interval.Comparable[K]](n *node[K]) *node[K] {
	return avl.Rebalance[*node[K]](n, ibsRotateLeft[K], ibsRotateRight[K])
}

// isEmpty reports whether no interval ends at this node, so it may be
// spliced out once its less/equal/greater contributions have been
// redistributed.
func (n *node[K]) isEmpty() bool {
	return n.ending.Len() == 0 && n.counters.DeltaAt == 0 && n.counters.DeltaAfter == 0
}
