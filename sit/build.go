package sit

import (
	"math/rand"
	"sort"
	"time"

	"github.com/arborix/intervals/interval"
	"github.com/arborix/intervals/internal/span"
)

// Build constructs a static interval tree from refs by randomized median
// split, seeded from the current time.
func Build[K interval.Comparable[K]](refs ...Ref[K]) *Tree[K] {
	return BuildWithRand(rand.New(rand.NewSource(time.Now().UnixNano())), refs...)
}

// BuildWithRand is Build with a caller-supplied entropy source, so tests
// can reproduce a specific tree shape.
func BuildWithRand[K interval.Comparable[K]](rng *rand.Rand, refs ...Ref[K]) *Tree[K] {
	t := &Tree[K]{count: len(refs)}
	if len(refs) == 0 {
		return t
	}
	t.root, t.treeSpan = buildNode(rng, append([]Ref[K](nil), refs...))
	return t
}

// buildNode picks a median endpoint from refs by quickselect, partitions
// refs into the intervals entirely left of it, entirely right of it, and
// straddling it, recurses on the two partitions, and returns the new node
// together with the span it and its subtrees cover.
func buildNode[K interval.Comparable[K]](rng *rand.Rand, refs []Ref[K]) (*node[K], *interval.Interval[K]) {
	if len(refs) == 0 {
		return nil, nil
	}

	endpoints := make([]K, 0, 2*len(refs))
	for _, ref := range refs {
		endpoints = append(endpoints, ref.Low, ref.High)
	}
	quickselect(rng, endpoints, len(endpoints)/2)
	median := endpoints[len(endpoints)/2]

	var left, right, straddle []Ref[K]
	for _, ref := range refs {
		switch {
		case ref.High.Compare(median) < 0:
			left = append(left, ref)
		case median.Compare(ref.Low) < 0:
			right = append(right, ref)
		default:
			straddle = append(straddle, ref)
		}
	}

	n := &node[K]{
		key:       median,
		leftList:  sortByLow(straddle),
		rightList: sortByHigh(straddle),
	}

	var localSpan *interval.Interval[K]
	for _, ref := range straddle {
		localSpan = span.Union(localSpan, ref)
	}

	var leftSpan, rightSpan *interval.Interval[K]
	n.left, leftSpan = buildNode(rng, left)
	n.right, rightSpan = buildNode(rng, right)

	return n, span.Union(localSpan, leftSpan, rightSpan)
}

func sortByLow[K interval.Comparable[K]](refs []Ref[K]) []Ref[K] {
	out := append([]Ref[K](nil), refs...)
	sort.Slice(out, func(i, j int) bool { return interval.CompareLow(*out[i], *out[j]) < 0 })
	return out
}

func sortByHigh[K interval.Comparable[K]](refs []Ref[K]) []Ref[K] {
	out := append([]Ref[K](nil), refs...)
	sort.Slice(out, func(i, j int) bool { return interval.CompareHigh(*out[i], *out[j]) > 0 })
	return out
}

// partition rearranges keys so that every element before the returned
// index compares no greater than the pivot element (keys[pivot] prior to
// the call) and every element after it compares greater, then returns the
// pivot's final position. Grounded on the Lomuto-style swap loop used for
// k-d tree median selection: the same pivot-to-the-end, single forward
// pass, swap-and-advance structure, generalized from a sort.Interface
// target to a plain comparable slice.
func partition[K interval.Comparable[K]](keys []K, pivot int) int {
	last := len(keys) - 1
	if last < 0 {
		return -1
	}
	keys[pivot], keys[last] = keys[last], keys[pivot]

	index := 0
	for i := 0; i < last; i++ {
		if keys[i].Compare(keys[last]) <= 0 {
			keys[index], keys[i] = keys[i], keys[index]
			index++
		}
	}
	keys[index], keys[last] = keys[last], keys[index]
	return index
}

// quickselect partitions keys in place so that the element at index k is
// the one that would occupy that position in sorted order, using a
// randomly chosen pivot at each step to avoid worst-case partitioning on
// already-sorted input.
func quickselect[K interval.Comparable[K]](rng *rand.Rand, keys []K, k int) {
	start, end := 0, len(keys)
	for end-start > 1 {
		sub := keys[start:end]
		p := partition(sub, rng.Intn(len(sub)))
		switch {
		case p == k-start:
			return
		case k-start < p:
			end = start + p
		default:
			start = start + p + 1
		}
	}
}
