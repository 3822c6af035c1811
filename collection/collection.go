// Package collection defines the capability every interval index in this
// module implements, and the error taxonomy those indexes surface. It
// deliberately holds no data structures of its own: the dynamic interval
// tree, the interval binary search tree, the static interval tree, and the
// layered containment list are free to be represented however is most
// efficient, as long as they honor this contract.
package collection

import (
	"errors"
	"iter"

	"github.com/arborix/intervals/interval"
)

// ErrEmpty is returned by Span and Choose when the collection holds no
// intervals.
var ErrEmpty = errors.New("collection: empty")

// ErrReadOnly is returned by Add, Remove, and Clear on a structure built
// once and frozen, such as the static interval tree or the layered
// containment list.
var ErrReadOnly = errors.New("collection: read-only")

// Ref is the handle every index stores: a pointer to a caller-owned
// interval, compared across the module by identity rather than value.
type Ref[K interval.Comparable[K]] = *interval.Interval[K]

// Collection is the read-only subset of the interval-collection capability,
// implemented by all four index variants.
type Collection[K interval.Comparable[K]] interface {
	// Count returns the number of intervals currently stored, counted by
	// identity.
	Count() int

	// IsEmpty reports whether Count is zero.
	IsEmpty() bool

	// Span returns the smallest interval covering every stored interval.
	// It fails with ErrEmpty when the collection holds nothing.
	Span() (interval.Interval[K], error)

	// Choose returns an arbitrary stored interval. It fails with ErrEmpty
	// when the collection holds nothing.
	Choose() (Ref[K], error)

	// FindOverlapsPoint returns every stored interval overlapping the
	// given point.
	FindOverlapsPoint(point K) []Ref[K]

	// FindOverlapsInterval returns every stored interval overlapping q.
	FindOverlapsInterval(q interval.Interval[K]) []Ref[K]

	// FindOverlap reports whether any stored interval overlaps q, without
	// collecting the full result set.
	FindOverlap(q interval.Interval[K]) bool

	// CountOverlaps counts the stored intervals overlapping q.
	CountOverlaps(q interval.Interval[K]) int

	// All iterates every stored interval in an implementation-defined
	// order, without materializing the whole collection up front.
	All() iter.Seq[Ref[K]]
}

// Mutable is implemented by the index variants that support insertion and
// removal: the dynamic interval tree and the interval binary search tree.
type Mutable[K interval.Comparable[K]] interface {
	Collection[K]

	// Add stores ref and reports whether it was newly added; it returns
	// false when ref (by identity) is already present and the collection
	// does not allow reference duplicates.
	Add(ref Ref[K]) bool

	// AddAll adds every ref in refs, in order.
	AddAll(refs ...Ref[K])

	// Remove deletes ref, by identity, and reports whether it was
	// present.
	Remove(ref Ref[K]) bool

	// Clear removes every stored interval.
	Clear()

	// AllowsReferenceDuplicates reports whether the same pointer can be
	// added more than once and counted as separate occurrences.
	AllowsReferenceDuplicates() bool
}

// ReadOnly is implemented by the index variants built once and frozen: the
// static interval tree and the layered containment list. Their mutating
// methods are present only to satisfy a uniform capability surface; every
// call fails with ErrReadOnly.
type ReadOnly[K interval.Comparable[K]] interface {
	Collection[K]

	Add(ref Ref[K]) error
	Remove(ref Ref[K]) error
	Clear() error
}

// MaximumOverlapper is implemented by the variants that maintain an MNO
// aggregate: the dynamic interval tree, the interval binary search tree,
// and the layered containment list.
type MaximumOverlapper[K interval.Comparable[K]] interface {
	// MaximumOverlap returns the largest number of stored intervals
	// simultaneously covering any point.
	MaximumOverlap() int
}
