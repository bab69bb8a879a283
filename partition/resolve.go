// SPDX-License-Identifier: MIT
// Package: graphgen/partition
//
// resolve.go - validation and default resolution of enumeration parameters.
//
// Contract:
//   • Checks run in a fixed order and stop at the first violation, so the
//     same bad input always yields the same sentinel.
//   • No enumeration happens before Resolve succeeds.

package partition

import "fmt"

const methodResolve = "Resolve"

// Resolve validates the request and returns its normalized Params.
//
// Order of checks:
//  1. items ≥ 1                          (ErrNumItems)
//  2. parts ≥ 1                          (ErrNumParts)
//  3. minSize ≥ 1                        (ErrMinSize)
//  4. items ≥ parts*minSize              (ErrTooFewItems)
//  5. default maxSize = items-(parts-1)*minSize when omitted
//  6. maxSize ≥ minSize                  (ErrMaxBelowMin)
//  7. maxSize ≥ ceil(items/parts)        (ErrMaxTooSmall)
//
// Complexity: O(len(opts)).
func Resolve(items, parts int, opts ...Option) (Params, error) {
	r := request{minSize: DefaultMinSize}
	for _, opt := range opts {
		opt(&r)
	}

	if items < 1 {
		return Params{}, fmt.Errorf("%s: got %d: %w", methodResolve, items, ErrNumItems)
	}
	if parts < 1 {
		return Params{}, fmt.Errorf("%s: got %d: %w", methodResolve, parts, ErrNumParts)
	}
	if r.minSize < 1 {
		return Params{}, fmt.Errorf("%s: got %d: %w", methodResolve, r.minSize, ErrMinSize)
	}
	// Division keeps the check exact where parts*minSize would overflow.
	if r.minSize > items/parts {
		return Params{}, fmt.Errorf("%s: %d items cannot fill %d parts of at least %d: %w",
			methodResolve, items, parts, r.minSize, ErrTooFewItems)
	}

	maxSize := items - (parts-1)*r.minSize
	if r.maxSet {
		maxSize = r.maxSize
	}
	if maxSize < r.minSize {
		return Params{}, fmt.Errorf("%s: max=%d < min=%d: %w", methodResolve, maxSize, r.minSize, ErrMaxBelowMin)
	}
	if smallest := ceilDiv(items, parts); maxSize < smallest {
		return Params{}, fmt.Errorf("%s: items=%d parts=%d min=%d max=%d; smallest permissible max is %d: %w",
			methodResolve, items, parts, r.minSize, maxSize, smallest, ErrMaxTooSmall)
	}

	return Params{Items: items, Parts: parts, MinSize: r.minSize, MaxSize: maxSize}, nil
}

// SmallestMaxSize returns ceil(items/parts), the least cap an even split fits under.
func SmallestMaxSize(items, parts int) int {
	return ceilDiv(items, parts)
}

// ceilDiv returns ceil(a/b) for a ≥ 0, b > 0 without overflowing near MaxInt.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 {
		q++
	}

	return q
}
