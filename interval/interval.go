// Package interval provides the Interval value type shared by every index
// variant in this module: a pair of endpoints over a totally ordered key
// domain, together with the comparison helpers the indexes are built on.
package interval

// Comparable is the minimum requirement an endpoint type must satisfy: a
// total order expressed as a three-way comparison.
type Comparable[K any] interface {
	// Compare returns a negative number if k < other, zero if k == other,
	// and a positive number if k > other.
	Compare(other K) int
}

// Interval is a [Low, High] range over K, with independent inclusivity
// flags for each endpoint. A point interval (Low == High) must include both
// endpoints.
type Interval[K Comparable[K]] struct {
	Low, High    K
	LowIncluded  bool
	HighIncluded bool
}

// New builds an Interval and validates it. It panics if Low is greater than
// High, or if Low == High and either endpoint is excluded: a degenerate
// point interval cannot have an open edge.
func New[K Comparable[K]](low, high K, lowIncluded, highIncluded bool) Interval[K] {
	iv := Interval[K]{
		Low:          low,
		High:         high,
		LowIncluded:  lowIncluded,
		HighIncluded: highIncluded,
	}
	iv.mustBeValid()
	return iv
}

// Closed builds the closed interval [low, high].
func Closed[K Comparable[K]](low, high K) Interval[K] {
	return New(low, high, true, true)
}

// Point builds the degenerate, closed interval [v, v].
func Point[K Comparable[K]](v K) Interval[K] {
	return New(v, v, true, true)
}

// mustBeValid panics if the receiver violates the invariants documented on
// Interval.
func (iv Interval[K]) mustBeValid() {
	switch c := iv.Low.Compare(iv.High); {
	case c > 0:
		panic("interval: low is greater than high")
	case c == 0 && (!iv.LowIncluded || !iv.HighIncluded):
		panic("interval: point interval must include both endpoints")
	}
}

// CompareLow orders two intervals by their Low endpoint. Ties are broken by
// inclusivity: an included Low endpoint sorts before an excluded one at the
// same value, since it reaches one step further to the left.
func CompareLow[K Comparable[K]](a, b Interval[K]) int {
	if c := a.Low.Compare(b.Low); c != 0 {
		return c
	}
	switch {
	case a.LowIncluded == b.LowIncluded:
		return 0
	case a.LowIncluded:
		return -1
	default:
		return 1
	}
}

// CompareHigh orders two intervals by their High endpoint. Ties are broken
// by inclusivity: an included High endpoint sorts after an excluded one at
// the same value, since it reaches one step further to the right.
func CompareHigh[K Comparable[K]](a, b Interval[K]) int {
	if c := a.High.Compare(b.High); c != 0 {
		return c
	}
	switch {
	case a.HighIncluded == b.HighIncluded:
		return 0
	case a.HighIncluded:
		return 1
	default:
		return -1
	}
}

// CompareHighLow compares a's High endpoint against b's Low endpoint. It is
// the core boundary test used by Overlaps: when the values tie, the two
// intervals only touch (rather than overlap) unless both edges at the
// touching point are included, in which case they meet at a shared point.
func CompareHighLow[K Comparable[K]](a, b Interval[K]) int {
	if c := a.High.Compare(b.Low); c != 0 {
		return c
	}
	if a.HighIncluded && b.LowIncluded {
		return 0
	}
	return -1
}

// Overlaps reports whether a and b share at least one point.
func Overlaps[K Comparable[K]](a, b Interval[K]) bool {
	return CompareHighLow(a, b) >= 0 && CompareHighLow(b, a) >= 0
}

// OverlapsPoint reports whether p falls within iv.
func OverlapsPoint[K Comparable[K]](iv Interval[K], p K) bool {
	return Overlaps(iv, Point(p))
}

// StrictlyContains reports whether a strictly contains b: a starts strictly
// before b and ends strictly after b.
func StrictlyContains[K Comparable[K]](a, b Interval[K]) bool {
	return CompareLow(a, b) < 0 && CompareHigh(b, a) < 0
}
