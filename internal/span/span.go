// Package span provides the small combinator every mutable or static index
// uses to maintain its covering span: the smallest interval that contains
// a node's own local intervals together with both of its children's spans.
package span

import "github.com/arborix/intervals/interval"

// Union returns the smallest interval covering every non-nil interval
// passed in. It returns nil if every argument is nil (an empty subtree).
func Union[K interval.Comparable[K]](spans ...*interval.Interval[K]) *interval.Interval[K] {
	var result *interval.Interval[K]
	for _, s := range spans {
		if s == nil {
			continue
		}
		if result == nil {
			v := *s
			result = &v
			continue
		}
		if interval.CompareLow(*s, *result) < 0 {
			result.Low, result.LowIncluded = s.Low, s.LowIncluded
		}
		if interval.CompareHigh(*s, *result) > 0 {
			result.High, result.HighIncluded = s.High, s.HighIncluded
		}
	}
	return result
}
