package refset_test

import (
	"testing"

	"github.com/arborix/intervals/internal/refset"
)

func TestAddRemoveContains(t *testing.T) {
	a, b := new(int), new(int)
	s := refset.New[*int]()

	if !s.Add(a) {
		t.Fatal("first add must succeed")
	}
	if s.Add(a) {
		t.Fatal("re-adding the same pointer must report false")
	}
	if !s.Contains(a) || s.Contains(b) {
		t.Fatal("containment must be identity-based")
	}
	if s.Len() != 1 {
		t.Fatalf("expected len 1, got %d", s.Len())
	}
	if !s.Remove(a) || s.Contains(a) {
		t.Fatal("remove must delete the item")
	}
}

func TestValueEqualButDistinctIdentity(t *testing.T) {
	a, b := new(int), new(int)
	*a, *b = 42, 42

	s := refset.New[*int]()
	s.Add(a)
	s.Add(b)

	if s.Len() != 2 {
		t.Fatalf("value-equal but distinct pointers must both be counted, got len %d", s.Len())
	}
}

func TestUnionAndDifference(t *testing.T) {
	a, b, c := new(int), new(int), new(int)
	s1 := refset.Of(a, b)
	s2 := refset.Of(b, c)

	u := refset.Union(s1, s2)
	if u.Len() != 3 {
		t.Fatalf("expected union len 3, got %d", u.Len())
	}

	d := refset.Difference(s1, s2)
	if d.Len() != 1 || !d.Contains(a) {
		t.Fatalf("expected difference {a}, got len %d", d.Len())
	}
}

func TestMoveMissing(t *testing.T) {
	a, b, c := new(int), new(int), new(int)
	dst := refset.Of(a)
	src := refset.Of(a, b, c)

	refset.MoveMissing(dst, src)

	if dst.Len() != 3 || !dst.Contains(b) || !dst.Contains(c) {
		t.Fatalf("expected dst to gain b and c, got len %d", dst.Len())
	}
	if src.Len() != 1 || !src.Contains(a) {
		t.Fatalf("expected src to retain only the already-duplicated a, got len %d", src.Len())
	}
}
