// Package mno implements the maximum-number-of-overlaps aggregate shared by
// the dynamic interval tree and the interval binary search tree. Each node
// contributes a local delta at its key and immediately after it; the
// aggregate folds those deltas, bottom-up, into the running total and
// running maximum of simultaneously open intervals across the subtree.
package mno

// Counters holds one node's contribution to the maximum-overlap count
// (DeltaAt, DeltaAfter) and the derived totals for the subtree rooted at
// that node (Sum, Max).
type Counters struct {
	// DeltaAt is the net change in open-interval count at the node's key:
	// +1 for every interval whose included Low endpoint is the key, -1 for
	// every interval whose excluded High endpoint is the key.
	DeltaAt int

	// DeltaAfter is the net change in open-interval count immediately
	// after the node's key: +1 for every interval whose excluded Low
	// endpoint is the key, -1 for every interval whose included High
	// endpoint is the key.
	DeltaAfter int

	// Sum is the total contribution of the subtree rooted at this node:
	// the net number of intervals that start within the subtree and have
	// not yet ended by its right edge.
	Sum int

	// Max is the largest number of simultaneously open intervals at any
	// point spanned by the subtree.
	Max int
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Recompute derives c.Sum and c.Max from c's own local deltas and the
// already up-to-date counters of its left and right children. Absent
// children should be passed as the zero Counters value, which contributes
// nothing.
func (c *Counters) Recompute(left, right Counters) {
	c.Sum = left.Sum + c.DeltaAt + c.DeltaAfter + right.Sum

	m := left.Max
	m = maxInt(m, left.Sum+c.DeltaAt)
	m = maxInt(m, left.Sum+c.DeltaAt+c.DeltaAfter)
	m = maxInt(m, left.Sum+c.DeltaAt+c.DeltaAfter+right.Max)
	c.Max = m
}
