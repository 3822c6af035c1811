package ibs

import "github.com/arborix/intervals/interval"

// place adds ref to the less, equal, or greater set of every node it
// crosses. At a node whose key lies within ref, ref joins equal and the
// walk continues into both children, since the interval may cover further
// keys on either side. At a node whose key lies outside ref, ref joins
// less or greater, but only once: a one-step lookahead checks whether the
// child on that side classifies the same way, and if so the membership is
// left to that deeper node, so ref ends up recorded at the single deepest
// node of the unbroken chain sharing its classification.
func place[K interval.Comparable[K]](n *node[K], ref Ref[K]) {
	if n == nil {
		return
	}
	switch classify(n.key, *ref) {
	case 0:
		n.equal.Add(ref)
		place(n.left, ref)
		place(n.right, ref)
	case -1:
		if n.right == nil || classify(n.right.key, *ref) != -1 {
			n.greater.Add(ref)
		}
		place(n.right, ref)
	default:
		if n.left == nil || classify(n.left.key, *ref) != 1 {
			n.less.Add(ref)
		}
		place(n.left, ref)
	}
}

// unplace removes ref from the less, equal, and greater sets of every node
// in the subtree, wherever earlier placements and rotations left it.
func unplace[K interval.Comparable[K]](n *node[K], ref Ref[K]) {
	if n == nil {
		return
	}
	n.less.Remove(ref)
	n.equal.Remove(ref)
	n.greater.Remove(ref)
	unplace(n.left, ref)
	unplace(n.right, ref)
}

// collectLEG appends every ref held in n's less, equal, and greater sets
// to orphans, without modifying them. It is the first step of removing or
// key-swapping a node: callers clear the sets afterward and re-place every
// collected ref once the tree has reached its final shape.
func collectLEG[K interval.Comparable[K]](n *node[K], orphans *[]Ref[K]) {
	n.less.Each(func(ref Ref[K]) { *orphans = append(*orphans, ref) })
	n.equal.Each(func(ref Ref[K]) { *orphans = append(*orphans, ref) })
	n.greater.Each(func(ref Ref[K]) { *orphans = append(*orphans, ref) })
}
