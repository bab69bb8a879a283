// SPDX-License-Identifier: MIT
// Package: graphgen/partition
//
// enumerate.go - lazy enumeration and the uncached Restricted entry point.
//
// Canonical model:
//   • Depth-first search with an explicit stack over positions 0..K-1.
//   • Position i takes values from [parts[i-1], …] in ascending order, so only
//     non-decreasing tuples are produced and each multiset appears once.
//   • The last position takes exactly the remainder.
//   • A value v at position i is abandoned as soon as v*(K-i) exceeds the
//     remainder: every later part is ≥ v, so no completion exists.
//
// Determinism:
//   • Tuples are yielded in ascending lexicographic order.

package partition

import (
	"fmt"
	"iter"
	"slices"
)

const methodRestricted = "Restricted"

// Enumerate returns a restartable lazy sequence of every non-decreasing tuple
// of length p.Parts summing to p.Items with each part ≥ p.MinSize.
// p.MaxSize is ignored here; Restricted applies it as a post-filter.
// Each yielded Partition is a fresh slice owned by the consumer.
//
// Complexity: proportional to the number of tuples produced times p.Parts.
func Enumerate(p Params) iter.Seq[Partition] {
	return func(yield func(Partition) bool) {
		k := p.Parts
		if k < 1 || p.MinSize < 1 || p.Items < k*p.MinSize {
			return
		}

		parts := make([]int, k)
		// rem[i] is what is left to distribute over positions i..k-1.
		rem := make([]int, k)
		rem[0] = p.Items
		parts[0] = p.MinSize - 1

		i := 0
		for i >= 0 {
			if i == k-1 {
				parts[i] = rem[i]
				if !yield(slices.Clone(Partition(parts))) {
					return
				}
				i--
				continue
			}

			parts[i]++
			if parts[i]*(k-i) > rem[i] {
				i-- // exhausted this position; backtrack
				continue
			}
			rem[i+1] = rem[i] - parts[i]
			i++
			if i < k-1 {
				parts[i] = parts[i-1] - 1
			}
		}
	}
}

// Restricted returns every partition of items into exactly parts parts with
// each part within the configured bounds, most balanced first.
// It does not memoize; see Cache.Restricted.
//
// Errors: any Resolve sentinel (all match ErrInvalidArgument), or
// ErrNoPartitions if the validated parameters produced nothing.
func Restricted(items, parts int, opts ...Option) ([]Partition, error) {
	p, err := Resolve(items, parts, opts...)
	if err != nil {
		return nil, err
	}

	return restricted(p)
}

// restricted enumerates, filters by p.MaxSize and reverses.
func restricted(p Params) ([]Partition, error) {
	var out []Partition
	for x := range Enumerate(p) {
		if x.Max() <= p.MaxSize {
			out = append(out, x)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %s: %w", methodRestricted, p, ErrNoPartitions)
	}
	slices.Reverse(out)

	return out, nil
}
