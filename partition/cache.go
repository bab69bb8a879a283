// SPDX-License-Identifier: MIT
// Package: graphgen/partition
//
// cache.go - explicit memoization table for Restricted.
//
// Contract:
//   • Keys are resolved Params; omitted and explicitly supplied bounds with the
//     same effective value share one entry.
//   • A hit returns the very slice stored on the miss that computed it.
//     Callers MUST NOT mutate it.
//   • Errors are never cached; validation runs on every call.
//   • Concurrency: entries under mu; concurrent misses for one key are
//     collapsed by singleflight so the enumeration runs once.

package partition

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Cache memoizes Restricted results for the lifetime of the Cache value.
// The zero value is not usable; construct with NewCache.
type Cache struct {
	mu      sync.RWMutex
	entries map[Params][]Partition

	group  singleflight.Group
	hits   atomic.Uint64
	misses atomic.Uint64

	logger *zap.Logger
}

// CacheOption customizes a Cache.
type CacheOption func(*Cache)

// WithLogger attaches a logger; misses are reported at Debug level.
// Panics on nil.
func WithLogger(l *zap.Logger) CacheOption {
	if l == nil {
		panic("partition: WithLogger(nil)")
	}
	return func(c *Cache) { c.logger = l }
}

// CacheStats is a point-in-time snapshot of cache counters.
type CacheStats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// NewCache returns an empty cache.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		entries: make(map[Params][]Partition),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Restricted is the memoized form of the package-level Restricted.
func (c *Cache) Restricted(items, parts int, opts ...Option) ([]Partition, error) {
	p, err := Resolve(items, parts, opts...)
	if err != nil {
		return nil, err
	}

	return c.lookup(p)
}

// Count returns how many partitions Restricted yields for the same arguments,
// filling the cache as a side effect.
func (c *Cache) Count(items, parts int, opts ...Option) (int, error) {
	out, err := c.Restricted(items, parts, opts...)
	if err != nil {
		return 0, err
	}

	return len(out), nil
}

// Lookup returns the partitions for p, computing and storing them on a miss.
// p is validated like Resolve input, so hand-built params that Resolve would
// reject fail with the same ErrInvalidArgument sentinel.
func (c *Cache) Lookup(p Params) ([]Partition, error) {
	if _, err := Resolve(p.Items, p.Parts, WithMinSize(p.MinSize), WithMaxSize(p.MaxSize)); err != nil {
		return nil, err
	}

	return c.lookup(p)
}

// lookup serves already resolved params.
func (c *Cache) lookup(p Params) ([]Partition, error) {
	c.mu.RLock()
	out, ok := c.entries[p]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		return out, nil
	}

	v, err, _ := c.group.Do(p.String(), func() (interface{}, error) {
		// A concurrent caller may have filled the entry between our read and Do.
		c.mu.RLock()
		stored, ok := c.entries[p]
		c.mu.RUnlock()
		if ok {
			c.hits.Add(1)
			return stored, nil
		}

		c.misses.Add(1)
		computed, err := restricted(p)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[p] = computed
		c.mu.Unlock()

		c.logger.Debug("partition cache miss",
			zap.Int("items", p.Items),
			zap.Int("parts", p.Parts),
			zap.Int("minSize", p.MinSize),
			zap.Int("maxSize", p.MaxSize),
			zap.Int("count", len(computed)),
		)

		return computed, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]Partition), nil
}

// Contains reports whether p has a stored entry.
func (c *Cache) Contains(p Params) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[p]

	return ok
}

// Len returns the number of stored entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Clear drops every entry. Counters are kept.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[Params][]Partition)
	c.mu.Unlock()
}

// Stats returns the current counters.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: c.Len(),
	}
}
