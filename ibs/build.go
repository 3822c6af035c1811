package ibs

import (
	"sort"

	"github.com/arborix/intervals/interval"
)

// Build constructs a tree from refs in one pass: every distinct endpoint
// value is collected once and laid out into a balanced skeleton by median
// split, rather than growing the tree through repeated AVL-rebalancing
// inserts. Endpoint contributions and less/equal/greater placement are
// then applied against that fixed shape. A reference already seen earlier
// in refs is skipped, matching Add's no-duplicates rule.
func Build[K interval.Comparable[K]](refs ...Ref[K]) *Tree[K] {
	t := New[K]()
	if len(refs) == 0 {
		return t
	}

	keys := make([]K, 0, 2*len(refs))
	for _, ref := range refs {
		keys = append(keys, ref.Low, ref.High)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Compare(keys[j]) < 0 })

	unique := keys[:0]
	for i, k := range keys {
		if i == 0 || k.Compare(unique[len(unique)-1]) != 0 {
			unique = append(unique, k)
		}
	}

	t.root = buildSkeleton(unique)

	for _, ref := range refs {
		if t.present.Contains(ref) {
			continue
		}
		applyLowEnd(find(t.root, ref.Low), ref)
		applyHighEnd(find(t.root, ref.High), ref)
		t.present.Add(ref)
		t.count++
	}

	updateAll(t.root)

	for _, ref := range refs {
		place(t.root, ref)
	}

	return t
}

func buildSkeleton[K interval.Comparable[K]](keys []K) *node[K] {
	if len(keys) == 0 {
		return nil
	}
	mid := len(keys) / 2
	n := &node[K]{key: keys[mid]}
	n.left = buildSkeleton(keys[:mid])
	n.right = buildSkeleton(keys[mid+1:])
	return n
}

func updateAll[K interval.Comparable[K]](n *node[K]) {
	if n == nil {
		return
	}
	updateAll(n.left)
	updateAll(n.right)
	n.Update()
}

func find[K interval.Comparable[K]](n *node[K], key K) *node[K] {
	for n != nil {
		switch c := key.Compare(n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}
