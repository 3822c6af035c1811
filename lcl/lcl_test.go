package lcl_test

import (
	"testing"

	"github.com/arborix/intervals/collection"
	"github.com/arborix/intervals/interval"
	"github.com/arborix/intervals/lcl"
)

type intKey int

func (k intKey) Compare(other intKey) int { return int(k) - int(other) }

func closed(low, high int) *interval.Interval[intKey] {
	iv := interval.Closed(intKey(low), intKey(high))
	return &iv
}

func layerValues(t *testing.T, tree *lcl.Tree[intKey], l int) [][2]int {
	t.Helper()
	var got [][2]int
	for _, ref := range tree.Layer(l) {
		got = append(got, [2]int{int(ref.Low), int(ref.High)})
	}
	return got
}

func assertLayer(t *testing.T, tree *lcl.Tree[intKey], l int, want [][2]int) {
	t.Helper()
	got := layerValues(t, tree, l)
	if len(got) != len(want) {
		t.Fatalf("layer %d = %v, want %v", l, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("layer %d = %v, want %v", l, got, want)
		}
	}
}

// TestS3FiveIntervals builds the scenario from the worked example: a
// 3-layer containment structure with a single root, two children, and two
// grandchildren.
func TestS3FiveIntervals(t *testing.T) {
	tree := lcl.Build[intKey](
		closed(1, 20), closed(2, 5), closed(6, 19), closed(7, 10), closed(11, 18),
	)

	if tree.LayerCount() != 3 {
		t.Fatalf("layer count = %d, want 3", tree.LayerCount())
	}
	assertLayer(t, tree, 0, [][2]int{{1, 20}})
	assertLayer(t, tree, 1, [][2]int{{2, 5}, {6, 19}})
	assertLayer(t, tree, 2, [][2]int{{7, 10}, {11, 18}})

	got := tree.FindOverlapsInterval(interval.Closed(intKey(8), intKey(12)))
	want := [][2]int{{1, 20}, {6, 19}, {7, 10}, {11, 18}}
	if len(got) != len(want) {
		t.Fatalf("find_overlaps([8,12]) = %v, want %v", refPairs(got), want)
	}
	for i, w := range want {
		if int(got[i].Low) != w[0] || int(got[i].High) != w[1] {
			t.Fatalf("find_overlaps([8,12])[%d] = [%d,%d], want [%d,%d]",
				i, got[i].Low, got[i].High, w[0], w[1])
		}
	}
}

func refPairs(refs []*interval.Interval[intKey]) [][2]int {
	out := make([][2]int, len(refs))
	for i, r := range refs {
		out[i] = [2]int{int(r.Low), int(r.High)}
	}
	return out
}

func TestCountOverlapsMatchesFindOverlaps(t *testing.T) {
	tree := lcl.Build[intKey](
		closed(1, 20), closed(2, 5), closed(6, 19), closed(7, 10), closed(11, 18),
	)

	for _, q := range []*interval.Interval[intKey]{
		closed(8, 12), closed(0, 1), closed(3, 3), closed(21, 30),
	} {
		got := tree.CountOverlaps(*q)
		want := len(tree.FindOverlapsInterval(*q))
		if got != want {
			t.Fatalf("count_overlaps(%v) = %d, want %d", *q, got, want)
		}
	}
}

func TestFindOverlapsSortedMatchesCompareToOrder(t *testing.T) {
	tree := lcl.Build[intKey](
		closed(1, 20), closed(2, 5), closed(6, 19), closed(7, 10), closed(11, 18),
	)

	got := tree.FindOverlapsSorted(interval.Closed(intKey(0), intKey(30)))
	want := [][2]int{{1, 20}, {2, 5}, {6, 19}, {7, 10}, {11, 18}}
	if len(got) != len(want) {
		t.Fatalf("find_overlaps_sorted = %v, want %v", refPairs(got), want)
	}
	for i, w := range want {
		if int(got[i].Low) != w[0] || int(got[i].High) != w[1] {
			t.Fatalf("find_overlaps_sorted[%d] = [%d,%d], want [%d,%d]",
				i, got[i].Low, got[i].High, w[0], w[1])
		}
	}
}

func TestMaximumOverlapAndWitness(t *testing.T) {
	tree := lcl.Build[intKey](
		closed(1, 20), closed(2, 5), closed(6, 19), closed(7, 10), closed(11, 18),
	)

	// At point 8: [1,20], [6,19], [7,10] overlap — depth 3.
	if got := tree.MaximumOverlap(); got != 3 {
		t.Fatalf("maximum overlap = %d, want 3", got)
	}
	span, ok := tree.MaximumOverlapSpan()
	if !ok {
		t.Fatal("expected a witness span")
	}
	if !interval.OverlapsPoint(span, intKey(8)) {
		t.Fatalf("witness span %v does not cover the known peak point 8", span)
	}
}

func TestMutationsFailReadOnly(t *testing.T) {
	tree := lcl.Build[intKey](closed(1, 2))

	if err := tree.Add(closed(3, 4)); err != collection.ErrReadOnly {
		t.Fatalf("add: got %v, want ErrReadOnly", err)
	}
	if err := tree.Remove(closed(1, 2)); err != collection.ErrReadOnly {
		t.Fatalf("remove: got %v, want ErrReadOnly", err)
	}
	if err := tree.Clear(); err != collection.ErrReadOnly {
		t.Fatalf("clear: got %v, want ErrReadOnly", err)
	}
}

func TestEmptyTreeSpanAndChooseFail(t *testing.T) {
	tree := lcl.Build[intKey]()

	if _, err := tree.Span(); err != collection.ErrEmpty {
		t.Fatalf("span: got %v, want ErrEmpty", err)
	}
	if _, err := tree.Choose(); err != collection.ErrEmpty {
		t.Fatalf("choose: got %v, want ErrEmpty", err)
	}
	if tree.MaximumOverlap() != 0 {
		t.Fatalf("maximum overlap of empty tree = %d, want 0", tree.MaximumOverlap())
	}
}

func TestSpanCoversLayerZero(t *testing.T) {
	tree := lcl.Build[intKey](closed(1, 20), closed(2, 5), closed(6, 19))

	got, err := tree.Span()
	if err != nil {
		t.Fatalf("span: %v", err)
	}
	if int(got.Low) != 1 || int(got.High) != 20 {
		t.Fatalf("span = [%d,%d], want [1,20]", got.Low, got.High)
	}
}

func TestLayeredStructureAgreesWithBruteForceOverlap(t *testing.T) {
	refs := []*interval.Interval[intKey]{
		closed(0, 10), closed(1, 2), closed(3, 9), closed(4, 4), closed(5, 8),
		closed(6, 7), closed(12, 20), closed(13, 14),
	}
	tree := lcl.Build[intKey](refs...)

	for p := -1; p < 22; p++ {
		want := 0
		for _, ref := range refs {
			if interval.OverlapsPoint(*ref, intKey(p)) {
				want++
			}
		}
		if got := len(tree.FindOverlapsPoint(intKey(p))); got != want {
			t.Fatalf("find_overlaps(%d) = %d, want %d", p, got, want)
		}
	}
}
