// Package classify provides the three-way point/interval classification
// shared by the interval binary search tree and the static interval tree:
// both need to know whether a node's key lies inside, before, or after a
// given interval.
package classify

import "github.com/arborix/intervals/interval"

// Of reports how key relates to iv: 0 if key lies within iv, -1 if key
// precedes iv entirely, +1 if key follows iv entirely.
func Of[K interval.Comparable[K]](key K, iv interval.Interval[K]) int {
	if interval.OverlapsPoint(iv, key) {
		return 0
	}
	// key is outside iv. key <= iv.Low here means key < iv.Low, or
	// key == iv.Low with the low endpoint excluded: either way iv lies
	// entirely after key.
	if key.Compare(iv.Low) <= 0 {
		return -1
	}
	return 1
}
