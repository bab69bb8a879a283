// Package partition enumerates restricted integer partitions: every way to
// split N items into exactly K parts, each part bounded by a minimum and a
// maximum size.
//
// A Partition is stored in its canonical non-decreasing form, so the multiset
// {5,2,3} appears exactly once, as (2, 3, 5). Results are returned in
// descending lexicographic order:
//
//	Restricted(10, 3, WithMinSize(2))
//	  → (3, 3, 4) (2, 4, 4) (2, 3, 5) (2, 2, 6)
//
// The first element is always the most balanced split (smallest maximum part)
// and the last the most skewed. Random generators that shrink toward index 0
// therefore shrink toward an even distribution of items.
//
// Validation happens before any enumeration. Each violated precondition has
// its own sentinel (ErrNumItems, ErrNumParts, ErrMinSize, ErrTooFewItems,
// ErrMaxBelowMin, ErrMaxTooSmall); all of them also match ErrInvalidArgument
// through errors.Is. ErrNoPartitions is reserved for the internal-consistency
// case where validated input still produced nothing.
//
// Enumeration is exponential in N. It is intended for the "tens of items"
// regime of randomized test inputs, not for large N.
//
// Memoization is explicit: create a Cache with NewCache and share it between
// the callers that should see each other's results. The Cache is safe for
// concurrent use and collapses parallel computations of the same key.
package partition
