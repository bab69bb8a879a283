// SPDX-License-Identifier: MIT
// Package: graphgen/partition
//
// types.go - Partition value type, normalized Params and functional options.
//
// Design:
//   • Partition is a plain []int in non-decreasing order; values handed out by
//     a Cache are shared and MUST be treated as read-only (use Clone to mutate).
//   • Params is the fully resolved call signature: omitted bounds are replaced
//     by their defaults, so two calls with the same effective bounds compare
//     equal and share a cache entry.
//   • Options only record what the caller supplied; Resolve validates.

package partition

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultMinSize is the minimum part size used when WithMinSize is not given.
const DefaultMinSize = 1

// Partition is one way of splitting a total into parts, stored non-decreasing.
type Partition []int

// Len returns the number of parts.
func (p Partition) Len() int { return len(p) }

// Sum returns the total of all parts.
func (p Partition) Sum() int {
	var s int
	for _, v := range p {
		s += v
	}

	return s
}

// Min returns the smallest part, or 0 for an empty partition.
func (p Partition) Min() int {
	if len(p) == 0 {
		return 0
	}
	m := p[0]
	for _, v := range p[1:] {
		if v < m {
			m = v
		}
	}

	return m
}

// Max returns the largest part, or 0 for an empty partition.
func (p Partition) Max() int {
	if len(p) == 0 {
		return 0
	}
	m := p[0]
	for _, v := range p[1:] {
		if v > m {
			m = v
		}
	}

	return m
}

// Clone returns an independent copy of p.
func (p Partition) Clone() Partition {
	if p == nil {
		return nil
	}
	out := make(Partition, len(p))
	copy(out, p)

	return out
}

// Compare orders partitions lexicographically: it returns -1 if p sorts
// before q, +1 if after and 0 if they are equal. A proper prefix sorts first.
func (p Partition) Compare(q Partition) int {
	n := len(p)
	if len(q) < n {
		n = len(q)
	}
	for i := 0; i < n; i++ {
		switch {
		case p[i] < q[i]:
			return -1
		case p[i] > q[i]:
			return 1
		}
	}
	switch {
	case len(p) < len(q):
		return -1
	case len(p) > len(q):
		return 1
	}

	return 0
}

// String renders p as a tuple, e.g. "(2, 3, 5)".
func (p Partition) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range p {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(')')

	return b.String()
}

// Params is the resolved parameter set of one enumeration.
// It is comparable and serves as the cache key.
type Params struct {
	Items   int // total to split
	Parts   int // exact number of parts
	MinSize int // inclusive lower bound of every part
	MaxSize int // inclusive upper bound of every part
}

// String renders the params in a stable form, used as the singleflight key.
func (p Params) String() string {
	return fmt.Sprintf("items=%d parts=%d min=%d max=%d", p.Items, p.Parts, p.MinSize, p.MaxSize)
}

// request collects the caller-supplied bounds before validation.
type request struct {
	minSize int
	maxSize int
	maxSet  bool
}

// Option customizes the bounds of an enumeration.
type Option func(*request)

// WithMinSize sets the inclusive lower bound of every part (default 1).
func WithMinSize(n int) Option {
	return func(r *request) { r.minSize = n }
}

// WithMaxSize sets the inclusive upper bound of every part. When omitted the
// bound defaults to the largest value one part can take while every other
// part stays at the minimum.
func WithMaxSize(n int) Option {
	return func(r *request) {
		r.maxSize = n
		r.maxSet = true
	}
}

// WithOptionalMaxSize applies WithMaxSize only when n is non-nil.
func WithOptionalMaxSize(n *int) Option {
	return func(r *request) {
		if n != nil {
			WithMaxSize(*n)(r)
		}
	}
}
