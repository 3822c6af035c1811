// Package sit implements a classical Berg-style static interval tree: an
// immutable, median-split tree built once from a batch of intervals,
// supporting overlap queries only.
package sit

import (
	"github.com/arborix/intervals/collection"
	"github.com/arborix/intervals/interval"
)

// Ref is the handle this tree stores: a pointer to a caller-owned interval,
// compared by identity.
type Ref[K interval.Comparable[K]] = collection.Ref[K]

// node holds the intervals straddling a single median key: every interval
// in leftList and rightList has Low <= key <= High by value (an excluded
// endpoint equal to key still counts as straddling). leftList is sorted ascending by
// Low; rightList holds the same multiset sorted descending by High.
type node[K interval.Comparable[K]] struct {
	key         K
	left, right *node[K]

	leftList  []Ref[K]
	rightList []Ref[K]
}
