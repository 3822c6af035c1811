package dit_test

import (
	"testing"

	"github.com/arborix/intervals/collection"
	"github.com/arborix/intervals/dit"
	"github.com/arborix/intervals/interval"
)

type intKey int

func (k intKey) Compare(other intKey) int { return int(k) - int(other) }

func closed(low, high int) *interval.Interval[intKey] {
	iv := interval.Closed(intKey(low), intKey(high))
	return &iv
}

func point(v int) *interval.Interval[intKey] {
	iv := interval.Point(intKey(v))
	return &iv
}

func TestS1ThreeOverlappingIntervals(t *testing.T) {
	tree := dit.New[intKey](false)
	tree.AddAll(closed(1, 5), closed(3, 7), closed(6, 8))

	if got := tree.CountOverlaps(interval.Point(intKey(4))); got != 2 {
		t.Fatalf("count_overlaps(4) = %d, want 2", got)
	}
	if got := tree.CountOverlaps(interval.Point(intKey(6))); got != 2 {
		t.Fatalf("count_overlaps(6) = %d, want 2", got)
	}
	if got := tree.MaximumOverlap(); got != 2 {
		t.Fatalf("maximum_overlap = %d, want 2", got)
	}

	span, err := tree.Span()
	if err != nil {
		t.Fatalf("span: %v", err)
	}
	if span.Low.Compare(intKey(1)) != 0 || span.High.Compare(intKey(8)) != 0 {
		t.Fatalf("span = [%v,%v], want [1,8]", span.Low, span.High)
	}
}

func TestS5ReferenceDuplicates(t *testing.T) {
	tree := dit.New[intKey](true)
	ref := point(3)

	if !tree.Add(ref) {
		t.Fatal("first add should succeed")
	}
	if !tree.Add(ref) {
		t.Fatal("second add of the same ref should succeed when duplicates allowed")
	}
	if tree.Count() != 2 {
		t.Fatalf("count = %d, want 2", tree.Count())
	}

	if !tree.Remove(ref) {
		t.Fatal("remove should succeed")
	}
	if tree.Count() != 1 {
		t.Fatalf("count after remove = %d, want 1", tree.Count())
	}

	overlaps := tree.FindOverlapsPoint(intKey(3))
	if len(overlaps) != 1 {
		t.Fatalf("find_overlaps(3) returned %d intervals, want 1", len(overlaps))
	}
}

func TestS5DuplicatesRejectedByDefault(t *testing.T) {
	tree := dit.New[intKey](false)
	ref := point(3)

	if !tree.Add(ref) {
		t.Fatal("first add should succeed")
	}
	if tree.Add(ref) {
		t.Fatal("second add of the same ref should fail when duplicates disallowed")
	}
	if tree.Count() != 1 {
		t.Fatalf("count = %d, want 1", tree.Count())
	}
}

func TestS6HalfOpenIntervals(t *testing.T) {
	tree := dit.New[intKey](false)
	a := interval.New(intKey(1), intKey(5), true, false)
	b := interval.New(intKey(5), intKey(9), false, true)
	tree.AddAll(&a, &b)

	if got := tree.FindOverlapsPoint(intKey(5)); len(got) != 0 {
		t.Fatalf("find_overlaps(5) returned %d intervals, want 0", len(got))
	}

	span := interval.Closed(intKey(4), intKey(6))
	if got := tree.FindOverlapsInterval(span); len(got) != 2 {
		t.Fatalf("find_overlaps([4,6]) returned %d intervals, want 2", len(got))
	}

	if got := tree.MaximumOverlap(); got != 1 {
		t.Fatalf("maximum_overlap = %d, want 1", got)
	}
}

func TestRemoveNotPresentReturnsFalse(t *testing.T) {
	tree := dit.New[intKey](false)
	tree.Add(closed(1, 2))

	if tree.Remove(closed(5, 6)) {
		t.Fatal("removing an interval never added should return false")
	}
}

func TestEmptyTreeSpanAndChooseFail(t *testing.T) {
	tree := dit.New[intKey](false)

	if _, err := tree.Span(); err != collection.ErrEmpty {
		t.Fatalf("span on empty tree: got %v, want ErrEmpty", err)
	}
	if _, err := tree.Choose(); err != collection.ErrEmpty {
		t.Fatalf("choose on empty tree: got %v, want ErrEmpty", err)
	}
}

func TestRoundTripLeavesAggregatesUnchanged(t *testing.T) {
	tree := dit.New[intKey](false)
	tree.AddAll(closed(1, 5), closed(3, 7), closed(6, 8))

	wantCount := tree.Count()
	wantSpan, _ := tree.Span()
	wantMax := tree.MaximumOverlap()

	ref := closed(10, 12)
	tree.Add(ref)
	tree.Remove(ref)

	if got := tree.Count(); got != wantCount {
		t.Fatalf("count after round trip = %d, want %d", got, wantCount)
	}
	gotSpan, _ := tree.Span()
	if gotSpan != wantSpan {
		t.Fatalf("span after round trip = %+v, want %+v", gotSpan, wantSpan)
	}
	if got := tree.MaximumOverlap(); got != wantMax {
		t.Fatalf("maximum_overlap after round trip = %d, want %d", got, wantMax)
	}
}

func TestAllIteratesEveryStoredInterval(t *testing.T) {
	tree := dit.New[intKey](false)
	refs := []*interval.Interval[intKey]{closed(1, 5), closed(3, 7), closed(6, 8)}
	tree.AddAll(refs...)

	seen := make(map[*interval.Interval[intKey]]bool)
	for ref := range tree.All() {
		seen[ref] = true
	}
	if len(seen) != len(refs) {
		t.Fatalf("iterated %d intervals, want %d", len(seen), len(refs))
	}
	for _, ref := range refs {
		if !seen[ref] {
			t.Fatalf("missing %+v from iteration", *ref)
		}
	}
}
